package logic

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"reddit_parrot/dal"
	"reddit_parrot/dto"
	"reddit_parrot/shared"
	"strings"
	"time"
)

const (
	mediaPollIntervalSec = 2
	mediaPollMaxAttempts = 30
)

type mastodonPublisher struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	urls      *shared.UrlBuilder
	userName  string
	pollDelay time.Duration
}

func NewMastodonPublisher(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	urls *shared.UrlBuilder,
) IPublisher {
	return &mastodonPublisher{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		urls:      urls,
		pollDelay: mediaPollIntervalSec * time.Second,
	}
}

func (mp *mastodonPublisher) Name() string           { return "Mastodon" }
func (mp *mastodonPublisher) PostNoun() string       { return "toot" }
func (mp *mastodonPublisher) Fidelity() dal.Fidelity { return dal.FidelityHigh }
func (mp *mastodonPublisher) MaxLength() int         { return mp.cfg.Mastodon.MaxLength }

func (mp *mastodonPublisher) authorize(req *http.Request) {
	mp.userAgent.AddUserAgent(req)
	req.Header.Set(headerAuthorize, "Bearer "+mp.cfg.Secrets.MastodonAccessToken)
}

func (mp *mastodonPublisher) VerifyCredentials(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mp.urls.MastodonVerifyCredentials(), nil)
	if err != nil {
		return "", err
	}
	mp.authorize(req)
	var acct dto.MastodonAccount
	if err = doJsonRequest(req, apiTimeoutSec, &acct); err != nil {
		return "", err
	}
	mp.userName = acct.Username
	return acct.Username, nil
}

func (mp *mastodonPublisher) Publish(ctx context.Context, post *dal.Post, caption string, media *dal.ResolvedMedia) (string, error) {

	form := url.Values{}
	form.Set("status", caption)
	form.Set("visibility", mp.cfg.Mastodon.Visibility)
	if media != nil {
		mediaId, err := mp.uploadMedia(ctx, media)
		if err != nil {
			return "", err
		}
		form.Add("media_ids[]", mediaId)
		if mp.cfg.Mastodon.SensitiveMedia || post.Over18 {
			form.Set("sensitive", "true")
		}
		mp.logger.Infof("Posting this on Mastodon with media attachment: %s", caption)
	} else {
		mp.logger.Infof("Posting this on Mastodon: %s", caption)
	}
	// Content warning for adult posts
	if post.Over18 {
		form.Set("spoiler_text", mp.cfg.Mastodon.NsfwSpoilerText)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mp.urls.MastodonStatuses(),
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set(headerContentType, contentTypeForm)
	// Server drops a repeated status with the same key
	req.Header.Set("Idempotency-Key", post.Id)
	mp.authorize(req)
	var status dto.MastodonStatus
	if err = doJsonRequest(req, apiTimeoutSec, &status); err != nil {
		return "", err
	}
	return status.Url, nil
}

// Uploads the file and waits until the server has finished processing it.
func (mp *mastodonPublisher) uploadMedia(ctx context.Context, media *dal.ResolvedMedia) (string, error) {

	req, err := newFileUploadRequest(ctx, mp.urls.MastodonMediaUpload(), "file", media)
	if err != nil {
		return "", err
	}
	mp.authorize(req)
	var att dto.MastodonAttachment
	if err = doJsonRequest(req, uploadTimeoutSec, &att); err != nil {
		return "", err
	}

	// Videos are processed asynchronously: url stays null until done
	for i := 0; att.Url == nil; i++ {
		if i == mediaPollMaxAttempts {
			return "", errors.New("media still processing after upload: " + att.Id)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(mp.pollDelay):
		}
		if req, err = http.NewRequestWithContext(ctx, http.MethodGet, mp.urls.MastodonMedia(att.Id), nil); err != nil {
			return "", err
		}
		mp.authorize(req)
		// 206 while still processing, 200 when done
		if err = doJsonRequest(req, apiTimeoutSec, &att); err != nil {
			return "", err
		}
	}
	return att.Id, nil
}
