package logic

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"reddit_parrot/dal"
	"reddit_parrot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_publisher.go -package mocks reddit_parrot/logic IPublisher

// IPublisher posts captions, with optional media, to one platform.
type IPublisher interface {
	// Name is the platform's display name, e.g. "Twitter".
	Name() string
	// PostNoun is what the platform calls a post, e.g. "tweet".
	PostNoun() string
	Fidelity() dal.Fidelity
	MaxLength() int
	// VerifyCredentials logs in and returns the account's user name.
	VerifyCredentials(ctx context.Context) (string, error)
	// Publish posts the caption and returns the new post's URL. media may be nil.
	Publish(ctx context.Context, post *dal.Post, caption string, media *dal.ResolvedMedia) (string, error)
}

// NewPublishers returns a publisher for every platform enabled in the config.
func NewPublishers(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	urls *shared.UrlBuilder,
) []IPublisher {
	var res []IPublisher
	if cfg.Twitter.Enabled {
		res = append(res, NewTwitterPublisher(cfg, logger, userAgent, urls))
	}
	if cfg.Mastodon.Enabled {
		res = append(res, NewMastodonPublisher(cfg, logger, userAgent, urls))
	}
	return res
}

// VerifyPublishers logs in to every platform. Any failure is fatal.
func VerifyPublishers(ctx context.Context, logger shared.ILogger, publishers []IPublisher) error {
	for _, pub := range publishers {
		logger.Infof("Attempting to log in to %s...", pub.Name())
		userName, err := pub.VerifyCredentials(ctx)
		if err != nil {
			logger.Errorf("Error while logging into %s: %v", pub.Name(), err)
			return &shared.AuthError{Service: pub.Name(), Err: err}
		}
		logger.Infof("Successfully authenticated on %s as @%s", pub.Name(), userName)
	}
	return nil
}

// Builds a POST request whose multipart body holds the media file.
func newFileUploadRequest(ctx context.Context, url, fieldName string, media *dal.ResolvedMedia) (*http.Request, error) {

	f, err := os.Open(media.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fileName := filepath.Base(media.Path)
	contentType := media.ContentType
	if contentType == "" {
		contentType = contentTypeFromName(fileName)
	}
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldName, fileName))
	hdr.Set(headerContentType, contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(part, f); err != nil {
		return nil, err
	}
	if err = mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerContentType, mw.FormDataContentType())
	return req, nil
}
