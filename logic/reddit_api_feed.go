package logic

import (
	"context"
	"errors"
	"fmt"
	"golang.org/x/time/rate"
	"net/http"
	"net/url"
	"reddit_parrot/dal"
	"reddit_parrot/dto"
	"reddit_parrot/shared"
	"strings"
	"sync"
	"time"
)

const (
	// Reddit allows 100 queries per minute for OAuth clients
	redditRequestsPerSec = 1.5
	redditBurst          = 5
	// Refresh the token this long before Reddit says it expires
	tokenExpiryMarginSec = 60
)

// Reads the hot listing through Reddit's OAuth API with application-only credentials.
type redditApiFeed struct {
	cfg         *shared.Config
	logger      shared.ILogger
	userAgent   shared.IUserAgent
	urls        *shared.UrlBuilder
	limiter     *rate.Limiter
	nowFn       func() time.Time
	muToken     sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewRedditApiFeed(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	urls *shared.UrlBuilder,
) IFeedSource {
	return &redditApiFeed{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		urls:      urls,
		limiter:   rate.NewLimiter(rate.Limit(redditRequestsPerSec), redditBurst),
		nowFn:     time.Now,
	}
}

func (rf *redditApiFeed) FetchHot(ctx context.Context, subreddit string, limit int) ([]*dal.Post, error) {

	token, err := rf.getToken(ctx)
	if err != nil {
		return nil, &shared.AuthError{Service: "Reddit", Err: err}
	}
	if err = rf.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rf.urls.RedditHot(subreddit, limit), nil)
	if err != nil {
		return nil, err
	}
	rf.userAgent.AddUserAgent(req)
	req.Header.Set(headerAuthorize, "Bearer "+token)

	var listing dto.RedditListing
	if err = doJsonRequest(req, feedTimeoutSec, &listing); err != nil {
		var hse *httpStatusError
		if errors.As(err, &hse) && hse.Status == http.StatusUnauthorized {
			rf.dropToken()
		}
		return nil, fmt.Errorf("failed to get hot posts of r/%s: %w", subreddit, err)
	}

	posts := make([]*dal.Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		if child.Kind != "t3" {
			continue
		}
		posts = append(posts, rf.toPost(&child.Data))
	}
	return posts, nil
}

func (rf *redditApiFeed) toPost(data *dto.RedditPostData) *dal.Post {
	post := dal.Post{
		Id:        data.Id,
		Title:     data.Title,
		Permalink: rf.urls.RedditShortlink(data.Id),
		Url:       data.Url,
		Over18:    data.Over18,
		IsSelf:    data.IsSelf,
		Spoiler:   data.Spoiler,
		Stickied:  data.Stickied,
	}
	for _, m := range []*dto.RedditMedia{data.SecureMedia, data.Media} {
		if m != nil && m.RedditVideo != nil && m.RedditVideo.FallbackUrl != "" {
			post.Media = &dal.PostMedia{RedditVideoFallbackUrl: m.RedditVideo.FallbackUrl}
			break
		}
	}
	return &post
}

func (rf *redditApiFeed) dropToken() {
	rf.muToken.Lock()
	defer rf.muToken.Unlock()
	rf.token = ""
}

func (rf *redditApiFeed) getToken(ctx context.Context) (string, error) {

	rf.muToken.Lock()
	defer rf.muToken.Unlock()

	if rf.token != "" && rf.nowFn().Before(rf.tokenExpiry) {
		return rf.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rf.urls.RedditAccessToken(),
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	rf.userAgent.AddUserAgent(req)
	req.Header.Set(headerContentType, contentTypeForm)
	req.SetBasicAuth(rf.cfg.Secrets.RedditClientId, rf.cfg.Secrets.RedditClientSecret)

	var token dto.RedditToken
	if err = doJsonRequest(req, feedTimeoutSec, &token); err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("no access token in response: %s", token.Error)
	}
	rf.token = token.AccessToken
	rf.tokenExpiry = rf.nowFn().Add(time.Duration(token.ExpiresIn-tokenExpiryMarginSec) * time.Second)
	rf.logger.Debugf("Got new Reddit access token, valid for %d seconds", token.ExpiresIn)
	return rf.token, nil
}
