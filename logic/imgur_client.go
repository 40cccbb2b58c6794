package logic

import (
	"context"
	"errors"
	"golang.org/x/time/rate"
	"net/http"
	"reddit_parrot/dto"
	"reddit_parrot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_imgur_client.go -package mocks reddit_parrot/logic IImgurClient

// Imgur allows 12,500 requests a day per client; one every few seconds is plenty for us
const imgurRequestsPerSec = 0.5
const imgurBurst = 3

// IImgurClient is the subset of the Imgur API used to resolve album and image links.
type IImgurClient interface {
	Authenticate(ctx context.Context) error
	GetAlbumImages(ctx context.Context, albumId string) ([]*dto.ImgurImage, error)
	GetImage(ctx context.Context, imageId string) (*dto.ImgurImage, error)
}

type imgurClient struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	urls      *shared.UrlBuilder
	limiter   *rate.Limiter
}

func NewImgurClient(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	urls *shared.UrlBuilder,
) IImgurClient {
	return &imgurClient{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		urls:      urls,
		limiter:   rate.NewLimiter(rate.Limit(imgurRequestsPerSec), imgurBurst),
	}
}

func (ic *imgurClient) get(ctx context.Context, url string, obj any) error {
	if ic.cfg.Secrets.ImgurClientId == "" {
		return errors.New("no Imgur client ID configured")
	}
	if err := ic.limiter.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	ic.userAgent.AddUserAgent(req)
	req.Header.Set(headerAuthorize, "Client-ID "+ic.cfg.Secrets.ImgurClientId)
	return doJsonRequest(req, apiTimeoutSec, obj)
}

// Authenticate checks the client credentials by asking for the remaining rate limit credits.
func (ic *imgurClient) Authenticate(ctx context.Context) error {
	var resp dto.ImgurResponse[dto.ImgurCredits]
	if err := ic.get(ctx, ic.urls.ImgurCredits(), &resp); err != nil {
		return err
	}
	if resp.Data.ClientRemaining == 0 {
		ic.logger.Warnf("Imgur client has no remaining credits")
	}
	return nil
}

func (ic *imgurClient) GetAlbumImages(ctx context.Context, albumId string) ([]*dto.ImgurImage, error) {
	var resp dto.ImgurResponse[[]*dto.ImgurImage]
	if err := ic.get(ctx, ic.urls.ImgurAlbumImages(albumId), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (ic *imgurClient) GetImage(ctx context.Context, imageId string) (*dto.ImgurImage, error) {
	var resp dto.ImgurResponse[*dto.ImgurImage]
	if err := ic.get(ctx, ic.urls.ImgurImage(imageId), &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, errors.New("empty image data")
	}
	return resp.Data, nil
}
