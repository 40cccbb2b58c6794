package logic

import (
	"context"
	"errors"
	"net/http"
	"reddit_parrot/dto"
	"reddit_parrot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_gfycat_client.go -package mocks reddit_parrot/logic IGfycatClient

// IGfycatClient looks up renditions of a clip. No credentials needed.
type IGfycatClient interface {
	QueryByName(ctx context.Context, name string) (*dto.GfyItem, error)
}

type gfycatClient struct {
	logger    shared.ILogger
	userAgent shared.IUserAgent
	urls      *shared.UrlBuilder
}

func NewGfycatClient(logger shared.ILogger, userAgent shared.IUserAgent, urls *shared.UrlBuilder) IGfycatClient {
	return &gfycatClient{
		logger:    logger,
		userAgent: userAgent,
		urls:      urls,
	}
}

func (gc *gfycatClient) QueryByName(ctx context.Context, name string) (*dto.GfyItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gc.urls.GfycatQuery(name), nil)
	if err != nil {
		return nil, err
	}
	gc.userAgent.AddUserAgent(req)
	var resp dto.GfycatResponse
	if err = doJsonRequest(req, apiTimeoutSec, &resp); err != nil {
		return nil, err
	}
	if resp.GfyItem.GfyName == "" && resp.GfyItem.Mp4Url == "" && resp.GfyItem.Max2mbGif == "" {
		return nil, errors.New("no such clip: " + name)
	}
	return &resp.GfyItem, nil
}
