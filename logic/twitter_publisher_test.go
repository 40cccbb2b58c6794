package logic_test

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"reddit_parrot/dal"
	"reddit_parrot/dto"
	"reddit_parrot/logic"
	"reddit_parrot/shared"
	"reddit_parrot/test"
	"reddit_parrot/test/mocks"
	"strings"
	"testing"
)

type fakeTwitter struct {
	uploads      int
	contentTypes []string
	statuses     []map[string]string
}

func (ft *fakeTwitter) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	writeJson := func(w http.ResponseWriter, obj any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(obj)
	}
	requireOAuth := func(r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "OAuth "))
	}
	mux.HandleFunc("/1.1/account/verify_credentials.json", func(w http.ResponseWriter, r *http.Request) {
		requireOAuth(r)
		writeJson(w, &dto.TwitterUser{IdStr: "1", ScreenName: "parrotbot"})
	})
	mux.HandleFunc("/1.1/media/upload.json", func(w http.ResponseWriter, r *http.Request) {
		requireOAuth(r)
		f, hdr, err := r.FormFile("media")
		assert.Nil(t, err)
		defer f.Close()
		assert.Equal(t, "p1.png", hdr.Filename)
		ft.contentTypes = append(ft.contentTypes, hdr.Header.Get("Content-Type"))
		ft.uploads++
		writeJson(w, &dto.TwitterMedia{MediaIdString: "m77"})
	})
	mux.HandleFunc("/1.1/statuses/update.json", func(w http.ResponseWriter, r *http.Request) {
		requireOAuth(r)
		assert.Nil(t, r.ParseForm())
		ft.statuses = append(ft.statuses, map[string]string{
			"status":    r.PostForm.Get("status"),
			"media_ids": r.PostForm.Get("media_ids"),
		})
		writeJson(w, &dto.TwitterStatus{IdStr: "99"})
	})
	return mux
}

func setupTwitterTest(t *testing.T, handler http.Handler) (*gomock.Controller, logic.IPublisher) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	test.StubLogger(mockLogger)
	test.StubUserAgent(mockUserAgent)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &shared.Config{
		Twitter: shared.TwitterConfig{Enabled: true, MaxLength: 280},
		Secrets: shared.Secrets{
			TwitterConsumerKey:       "ck",
			TwitterConsumerSecret:    "cs",
			TwitterAccessToken:       "at",
			TwitterAccessTokenSecret: "as",
		},
	}
	urls := shared.NewUrlBuilder(cfg)
	urls.TwitterApi = srv.URL
	urls.TwitterUpload = srv.URL

	return ctrl, logic.NewTwitterPublisher(cfg, mockLogger, mockUserAgent, urls)
}

func TestTwitterPublishWithMedia(t *testing.T) {
	ft := &fakeTwitter{}
	ctrl, pub := setupTwitterTest(t, ft.handler(t))
	defer ctrl.Finish()

	userName, err := pub.VerifyCredentials(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, "parrotbot", userName)

	media := &dal.ResolvedMedia{
		Path:        test.WriteFile(t, t.TempDir(), "p1.png", []byte("webp")),
		Kind:        dal.MediaStatic,
		ContentType: "image/webp",
	}
	post := &dal.Post{Id: "p1"}
	postUrl, err := pub.Publish(context.Background(), post, "Cute cat https://redd.it/p1", media)
	assert.Nil(t, err)
	assert.Equal(t, "https://twitter.com/parrotbot/status/99/", postUrl)
	assert.Equal(t, 1, ft.uploads)
	assert.Equal(t, []string{"image/webp"}, ft.contentTypes)
	assert.Equal(t, 1, len(ft.statuses))
	assert.Equal(t, "Cute cat https://redd.it/p1", ft.statuses[0]["status"])
	assert.Equal(t, "m77", ft.statuses[0]["media_ids"])
}

func TestTwitterPublishTextOnly(t *testing.T) {
	ft := &fakeTwitter{}
	ctrl, pub := setupTwitterTest(t, ft.handler(t))
	defer ctrl.Finish()

	// Logs in on first use
	postUrl, err := pub.Publish(context.Background(), &dal.Post{Id: "p1"}, "Hello", nil)
	assert.Nil(t, err)
	assert.Equal(t, "https://twitter.com/parrotbot/status/99/", postUrl)
	assert.Equal(t, 0, ft.uploads)
	assert.Equal(t, "", ft.statuses[0]["media_ids"])
}

func TestTwitterVerifyCredentialsRejected(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"code":32,"message":"Could not authenticate you."}]}`, http.StatusUnauthorized)
	})
	ctrl, pub := setupTwitterTest(t, handler)
	defer ctrl.Finish()

	_, err := pub.VerifyCredentials(context.Background())
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "401")

	mockLogger := mocks.NewMockILogger(ctrl)
	test.StubLogger(mockLogger)
	err = logic.VerifyPublishers(context.Background(), mockLogger, []logic.IPublisher{pub})
	var authErr *shared.AuthError
	assert.True(t, errors.As(err, &authErr))
	assert.Equal(t, "Twitter", authErr.Service)
}
