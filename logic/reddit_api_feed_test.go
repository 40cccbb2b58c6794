package logic_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"reddit_parrot/logic"
	"reddit_parrot/shared"
	"reddit_parrot/test"
	"reddit_parrot/test/mocks"
	"testing"
)

const hotListingJson = `{
  "kind": "Listing",
  "data": {
    "after": "t3_zzz",
    "children": [
      {"kind": "t3", "data": {"id": "aaa111", "name": "t3_aaa111", "title": "Cat & dog",
        "url": "https://i.redd.it/cat.png", "over_18": false, "is_self": false, "spoiler": false,
        "stickied": true, "media": null, "secure_media": null}},
      {"kind": "t3", "data": {"id": "bbb222", "name": "t3_bbb222", "title": "A video",
        "url": "https://v.redd.it/vid1", "over_18": true, "is_self": false, "spoiler": true,
        "stickied": false, "media": null,
        "secure_media": {"reddit_video": {"fallback_url": "https://v.redd.it/vid1/DASH_720.mp4?source=fallback", "is_gif": false}}}},
      {"kind": "t1", "data": {"id": "ccc333"}}
    ]
  }
}`

type fakeReddit struct {
	tokenRequests int
	hotRequests   int
	rejectNextHot bool
	tokenStatus   int
}

func (fr *fakeReddit) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", func(w http.ResponseWriter, r *http.Request) {
		fr.tokenRequests++
		id, secret, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", id)
		assert.Equal(t, "client-secret", secret)
		assert.Nil(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		if fr.tokenStatus != 0 {
			http.Error(w, `{"error": "invalid_grant"}`, fr.tokenStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "tkn", "token_type": "bearer", "expires_in": 86400}`))
	})
	mux.HandleFunc("/r/aww/hot", func(w http.ResponseWriter, r *http.Request) {
		fr.hotRequests++
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		if fr.rejectNextHot {
			fr.rejectNextHot = false
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(hotListingJson))
	})
	return mux
}

func setupRedditApiFeedTest(t *testing.T, fr *fakeReddit) (*gomock.Controller, logic.IFeedSource) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	test.StubLogger(mockLogger)
	test.StubUserAgent(mockUserAgent)

	srv := httptest.NewServer(fr.handler(t))
	t.Cleanup(srv.Close)

	cfg := &shared.Config{
		FeedKind: shared.FeedKindApi,
		Secrets:  shared.Secrets{RedditClientId: "client-id", RedditClientSecret: "client-secret"},
	}
	urls := shared.NewUrlBuilder(cfg)
	urls.RedditWww = srv.URL
	urls.RedditOAuth = srv.URL

	return ctrl, logic.NewFeedSource(cfg, mockLogger, mockUserAgent, urls)
}

func TestRedditApiFeedMapsPosts(t *testing.T) {
	fr := &fakeReddit{}
	ctrl, feed := setupRedditApiFeedTest(t, fr)
	defer ctrl.Finish()

	posts, err := feed.FetchHot(context.Background(), "aww", 10)
	assert.Nil(t, err)
	// The comment (t1) is dropped
	assert.Equal(t, 2, len(posts))

	assert.Equal(t, "aaa111", posts[0].Id)
	assert.Equal(t, "Cat & dog", posts[0].Title)
	assert.Equal(t, "https://redd.it/aaa111", posts[0].Permalink)
	assert.Equal(t, "https://i.redd.it/cat.png", posts[0].Url)
	assert.True(t, posts[0].Stickied)
	assert.Nil(t, posts[0].Media)

	assert.True(t, posts[1].Over18)
	assert.True(t, posts[1].Spoiler)
	assert.Equal(t, "https://v.redd.it/vid1/DASH_720.mp4?source=fallback", posts[1].Media.RedditVideoFallbackUrl)
}

func TestRedditApiFeedReusesToken(t *testing.T) {
	fr := &fakeReddit{}
	ctrl, feed := setupRedditApiFeedTest(t, fr)
	defer ctrl.Finish()

	_, err := feed.FetchHot(context.Background(), "aww", 10)
	assert.Nil(t, err)
	_, err = feed.FetchHot(context.Background(), "aww", 10)
	assert.Nil(t, err)
	assert.Equal(t, 1, fr.tokenRequests)
	assert.Equal(t, 2, fr.hotRequests)
}

func TestRedditApiFeedRenewsRejectedToken(t *testing.T) {
	fr := &fakeReddit{}
	ctrl, feed := setupRedditApiFeedTest(t, fr)
	defer ctrl.Finish()

	_, err := feed.FetchHot(context.Background(), "aww", 10)
	assert.Nil(t, err)

	fr.rejectNextHot = true
	_, err = feed.FetchHot(context.Background(), "aww", 10)
	assert.NotNil(t, err)

	_, err = feed.FetchHot(context.Background(), "aww", 10)
	assert.Nil(t, err)
	assert.Equal(t, 2, fr.tokenRequests)
}

func TestRedditApiFeedBadCredentials(t *testing.T) {
	fr := &fakeReddit{tokenStatus: http.StatusUnauthorized}
	ctrl, feed := setupRedditApiFeedTest(t, fr)
	defer ctrl.Finish()

	_, err := feed.FetchHot(context.Background(), "aww", 10)
	var authErr *shared.AuthError
	assert.True(t, errors.As(err, &authErr))
	assert.Equal(t, "Reddit", authErr.Service)
	assert.Equal(t, 0, fr.hotRequests)
}
