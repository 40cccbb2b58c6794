package logic

import (
	"context"
	"reddit_parrot/dal"
	"reddit_parrot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_feed_source.go -package mocks reddit_parrot/logic IFeedSource

const feedTimeoutSec = 30

// IFeedSource lists the current hot posts of a subreddit.
type IFeedSource interface {
	FetchHot(ctx context.Context, subreddit string, limit int) ([]*dal.Post, error)
}

func NewFeedSource(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	urls *shared.UrlBuilder,
) IFeedSource {
	if cfg.FeedKind == shared.FeedKindRss {
		return NewRedditRssFeed(logger, userAgent, urls)
	}
	return NewRedditApiFeed(cfg, logger, userAgent, urls)
}
