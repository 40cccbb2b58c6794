package logic

import (
	"context"
	"net/http"
	"net/url"
	"reddit_parrot/dal"
	"reddit_parrot/dto"
	"reddit_parrot/shared"
	"strings"
)

const uploadTimeoutSec = 120

type twitterPublisher struct {
	cfg        *shared.Config
	logger     shared.ILogger
	userAgent  shared.IUserAgent
	urls       *shared.UrlBuilder
	signer     *oauth1Signer
	screenName string
}

func NewTwitterPublisher(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	urls *shared.UrlBuilder,
) IPublisher {
	s := &cfg.Secrets
	return &twitterPublisher{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		urls:      urls,
		signer: newOAuth1Signer(s.TwitterConsumerKey, s.TwitterConsumerSecret,
			s.TwitterAccessToken, s.TwitterAccessTokenSecret),
	}
}

func (tp *twitterPublisher) Name() string           { return "Twitter" }
func (tp *twitterPublisher) PostNoun() string       { return "tweet" }
func (tp *twitterPublisher) Fidelity() dal.Fidelity { return dal.FidelityCompact }
func (tp *twitterPublisher) MaxLength() int         { return tp.cfg.Twitter.MaxLength }

func (tp *twitterPublisher) VerifyCredentials(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tp.urls.TwitterVerifyCredentials(), nil)
	if err != nil {
		return "", err
	}
	tp.userAgent.AddUserAgent(req)
	tp.signer.sign(req, nil)
	var user dto.TwitterUser
	if err = doJsonRequest(req, apiTimeoutSec, &user); err != nil {
		return "", err
	}
	tp.screenName = user.ScreenName
	return user.ScreenName, nil
}

func (tp *twitterPublisher) Publish(ctx context.Context, post *dal.Post, caption string, media *dal.ResolvedMedia) (string, error) {

	if tp.screenName == "" {
		if _, err := tp.VerifyCredentials(ctx); err != nil {
			return "", err
		}
	}

	form := url.Values{}
	form.Set("status", caption)
	if media != nil {
		mediaId, err := tp.uploadMedia(ctx, media)
		if err != nil {
			return "", err
		}
		form.Set("media_ids", mediaId)
		tp.logger.Infof("Posting this on Twitter with media attachment: %s", caption)
	} else {
		tp.logger.Infof("Posting this on Twitter: %s", caption)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tp.urls.TwitterStatusUpdate(),
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set(headerContentType, contentTypeForm)
	tp.userAgent.AddUserAgent(req)
	tp.signer.sign(req, form)
	var status dto.TwitterStatus
	if err = doJsonRequest(req, apiTimeoutSec, &status); err != nil {
		return "", err
	}
	return tp.urls.TwitterStatusUrl(tp.screenName, status.IdStr), nil
}

func (tp *twitterPublisher) uploadMedia(ctx context.Context, media *dal.ResolvedMedia) (string, error) {
	req, err := newFileUploadRequest(ctx, tp.urls.TwitterMediaUpload(), "media", media)
	if err != nil {
		return "", err
	}
	tp.userAgent.AddUserAgent(req)
	// Multipart fields are not part of the signature
	tp.signer.sign(req, nil)
	var uploaded dto.TwitterMedia
	if err = doJsonRequest(req, uploadTimeoutSec, &uploaded); err != nil {
		return "", err
	}
	return uploaded.MediaIdString, nil
}
