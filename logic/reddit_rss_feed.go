package logic

import (
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"net/http"
	"reddit_parrot/dal"
	"reddit_parrot/shared"
	"strings"
	"time"
)

const (
	redditPostGuidPrefix = "t3_"
	rssLinkAnchorText    = "[link]"
)

// Reads the hot listing from the public RSS feed. No credentials, but the feed carries no
// adult, spoiler or pinned flags and no video metadata.
type redditRssFeed struct {
	logger    shared.ILogger
	userAgent shared.IUserAgent
	urls      *shared.UrlBuilder
}

func NewRedditRssFeed(logger shared.ILogger, userAgent shared.IUserAgent, urls *shared.UrlBuilder) IFeedSource {
	return &redditRssFeed{
		logger:    logger,
		userAgent: userAgent,
		urls:      urls,
	}
}

func (rf *redditRssFeed) FetchHot(ctx context.Context, subreddit string, limit int) ([]*dal.Post, error) {

	feed, err := rf.fetchParseFeed(ctx, rf.urls.RedditHotRss(subreddit, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get hot feed of r/%s: %w", subreddit, err)
	}

	var posts []*dal.Post
	for _, item := range feed.Items {
		post := rf.toPost(item)
		if post == nil {
			rf.logger.Debugf("Ignoring feed item that is not a post: %s", item.GUID)
			continue
		}
		posts = append(posts, post)
		if len(posts) == limit {
			break
		}
	}
	return posts, nil
}

func (rf *redditRssFeed) fetchParseFeed(ctx context.Context, feedUrl string) (feed *gofeed.Feed, err error) {

	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, http.MethodGet, feedUrl, nil); err != nil {
		return nil, err
	}
	rf.userAgent.AddUserAgent(req)

	client := http.Client{}
	client.Timeout = time.Second * feedTimeoutSec
	var resp *http.Response
	if resp, err = client.Do(req); err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %v", resp.StatusCode)
	}

	fp := gofeed.NewParser()
	return fp.Parse(resp.Body)
}

func (rf *redditRssFeed) toPost(item *gofeed.Item) *dal.Post {

	guid := item.GUID
	if !strings.HasPrefix(guid, redditPostGuidPrefix) {
		return nil
	}
	postId := strings.TrimPrefix(guid, redditPostGuidPrefix)

	post := dal.Post{
		Id:        postId,
		Title:     shared.StripHtml(item.Title),
		Permalink: rf.urls.RedditShortlink(postId),
	}

	// Item content ends with "submitted by ... [link] [comments]"; [link] is the submission's URL
	content := item.Content
	if content == "" {
		content = item.Description
	}
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
		doc.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if strings.TrimSpace(s.Text()) != rssLinkAnchorText {
				return true
			}
			post.Url, _ = s.Attr("href")
			return false
		})
	}
	// Text posts link to their own comments page
	if post.Url == "" || strings.TrimRight(post.Url, "/") == strings.TrimRight(item.Link, "/") {
		post.IsSelf = true
		post.Url = item.Link
	}
	return &post
}
