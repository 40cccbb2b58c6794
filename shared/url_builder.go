package shared

import (
	"fmt"
	"net/url"
)

// UrlBuilder knows the endpoints of every service the bot talks to.
// Base URLs are fields so that tests can point them at a local server.
type UrlBuilder struct {
	RedditWww     string
	RedditOAuth   string
	RedditShort   string
	ImgurApi      string
	GfycatApi     string
	GiphyMedia    string
	TwitterApi    string
	TwitterUpload string
	TwitterWeb    string
	Mastodon      string
}

func NewUrlBuilder(cfg *Config) *UrlBuilder {
	return &UrlBuilder{
		RedditWww:     "https://www.reddit.com",
		RedditOAuth:   "https://oauth.reddit.com",
		RedditShort:   "https://redd.it",
		ImgurApi:      "https://api.imgur.com",
		GfycatApi:     "https://api.gfycat.com",
		GiphyMedia:    "https://media.giphy.com",
		TwitterApi:    "https://api.twitter.com",
		TwitterUpload: "https://upload.twitter.com",
		TwitterWeb:    "https://twitter.com",
		Mastodon:      "https://" + cfg.Mastodon.InstanceDomain,
	}
}

func (ub *UrlBuilder) RedditAccessToken() string {
	return ub.RedditWww + "/api/v1/access_token"
}

func (ub *UrlBuilder) RedditHot(subreddit string, limit int) string {
	return fmt.Sprintf("%s/r/%s/hot?limit=%d&raw_json=1", ub.RedditOAuth, url.PathEscape(subreddit), limit)
}

func (ub *UrlBuilder) RedditHotRss(subreddit string, limit int) string {
	return fmt.Sprintf("%s/r/%s/hot/.rss?limit=%d", ub.RedditWww, url.PathEscape(subreddit), limit)
}

func (ub *UrlBuilder) RedditShortlink(postId string) string {
	return ub.RedditShort + "/" + postId
}

func (ub *UrlBuilder) ImgurCredits() string {
	return ub.ImgurApi + "/3/credits"
}

func (ub *UrlBuilder) ImgurAlbumImages(albumId string) string {
	return fmt.Sprintf("%s/3/album/%s/images", ub.ImgurApi, url.PathEscape(albumId))
}

func (ub *UrlBuilder) ImgurImage(imageId string) string {
	return fmt.Sprintf("%s/3/image/%s", ub.ImgurApi, url.PathEscape(imageId))
}

func (ub *UrlBuilder) GfycatQuery(name string) string {
	return fmt.Sprintf("%s/v1/gfycats/%s", ub.GfycatApi, url.PathEscape(name))
}

func (ub *UrlBuilder) GiphyDownsized(id string) string {
	return fmt.Sprintf("%s/media/%s/giphy-downsized.gif", ub.GiphyMedia, id)
}

func (ub *UrlBuilder) GiphyMp4(id string) string {
	return fmt.Sprintf("%s/media/%s/giphy.mp4", ub.GiphyMedia, id)
}

func (ub *UrlBuilder) TwitterVerifyCredentials() string {
	return ub.TwitterApi + "/1.1/account/verify_credentials.json"
}

func (ub *UrlBuilder) TwitterMediaUpload() string {
	return ub.TwitterUpload + "/1.1/media/upload.json"
}

func (ub *UrlBuilder) TwitterStatusUpdate() string {
	return ub.TwitterApi + "/1.1/statuses/update.json"
}

func (ub *UrlBuilder) TwitterStatusUrl(screenName, statusId string) string {
	return fmt.Sprintf("%s/%s/status/%s/", ub.TwitterWeb, screenName, statusId)
}

func (ub *UrlBuilder) MastodonVerifyCredentials() string {
	return ub.Mastodon + "/api/v1/accounts/verify_credentials"
}

func (ub *UrlBuilder) MastodonMediaUpload() string {
	return ub.Mastodon + "/api/v2/media"
}

func (ub *UrlBuilder) MastodonMedia(mediaId string) string {
	return ub.Mastodon + "/api/v1/media/" + url.PathEscape(mediaId)
}

func (ub *UrlBuilder) MastodonStatuses() string {
	return ub.Mastodon + "/api/v1/statuses"
}
