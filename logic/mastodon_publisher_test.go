package logic_test

import (
	"context"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reddit_parrot/dal"
	"reddit_parrot/dto"
	"reddit_parrot/logic"
	"reddit_parrot/shared"
	"reddit_parrot/test"
	"reddit_parrot/test/mocks"
	"testing"
	"time"
)

const mastodonToken = "tok-123"

type fakeMastodon struct {
	pendingPolls int // media GETs answered with a null url before processing is done
	polls        int
	statusForms  []url.Values
	idemKeys     []string
	contentTypes []string
}

func (fm *fakeMastodon) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	writeJson := func(w http.ResponseWriter, status int, obj any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(obj)
	}
	checkAuth := func(r *http.Request) {
		assert.Equal(t, "Bearer "+mastodonToken, r.Header.Get("Authorization"))
	}
	doneUrl := "https://files.example/m1.mp4"
	mux.HandleFunc("/api/v1/accounts/verify_credentials", func(w http.ResponseWriter, r *http.Request) {
		checkAuth(r)
		writeJson(w, http.StatusOK, &dto.MastodonAccount{Id: "1", Username: "parrot", Acct: "parrot"})
	})
	mux.HandleFunc("/api/v2/media", func(w http.ResponseWriter, r *http.Request) {
		checkAuth(r)
		f, hdr, err := r.FormFile("file")
		assert.Nil(t, err)
		defer f.Close()
		fm.contentTypes = append(fm.contentTypes, hdr.Header.Get("Content-Type"))
		att := dto.MastodonAttachment{Id: "m1", Type: "video"}
		if fm.pendingPolls == 0 {
			att.Url = &doneUrl
			writeJson(w, http.StatusOK, &att)
		} else {
			writeJson(w, http.StatusAccepted, &att)
		}
	})
	mux.HandleFunc("/api/v1/media/m1", func(w http.ResponseWriter, r *http.Request) {
		checkAuth(r)
		fm.polls++
		att := dto.MastodonAttachment{Id: "m1", Type: "video"}
		if fm.polls <= fm.pendingPolls {
			writeJson(w, http.StatusPartialContent, &att)
			return
		}
		att.Url = &doneUrl
		writeJson(w, http.StatusOK, &att)
	})
	mux.HandleFunc("/api/v1/statuses", func(w http.ResponseWriter, r *http.Request) {
		checkAuth(r)
		assert.Nil(t, r.ParseForm())
		fm.statusForms = append(fm.statusForms, r.PostForm)
		fm.idemKeys = append(fm.idemKeys, r.Header.Get("Idempotency-Key"))
		writeJson(w, http.StatusOK, &dto.MastodonStatus{Id: "42", Url: "https://mastodon.example/@parrot/42"})
	})
	return mux
}

func setupMastodonTest(t *testing.T, fm *fakeMastodon) (*gomock.Controller, *shared.Config, logic.IPublisher) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	test.StubLogger(mockLogger)
	test.StubUserAgent(mockUserAgent)

	srv := httptest.NewServer(fm.handler(t))
	t.Cleanup(srv.Close)

	cfg := &shared.Config{
		Mastodon: shared.MastodonConfig{
			Enabled:         true,
			InstanceDomain:  "mastodon.example",
			Visibility:      "unlisted",
			MaxLength:       500,
			NsfwSpoilerText: "NSFW",
		},
		Secrets: shared.Secrets{MastodonAccessToken: mastodonToken},
	}
	urls := shared.NewUrlBuilder(cfg)
	urls.Mastodon = srv.URL

	pub := logic.NewMastodonPublisher(cfg, mockLogger, mockUserAgent, urls)
	logic.SetMastodonPollDelay(pub, time.Millisecond)
	return ctrl, cfg, pub
}

func TestMastodonVerifyCredentials(t *testing.T) {
	ctrl, _, pub := setupMastodonTest(t, &fakeMastodon{})
	defer ctrl.Finish()

	userName, err := pub.VerifyCredentials(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, "parrot", userName)
}

func TestMastodonPublishWaitsForProcessing(t *testing.T) {
	fm := &fakeMastodon{pendingPolls: 2}
	ctrl, _, pub := setupMastodonTest(t, fm)
	defer ctrl.Finish()

	media := &dal.ResolvedMedia{Path: test.WriteFile(t, t.TempDir(), "p1.mp4", []byte("mp4")), Kind: dal.MediaVideo}
	postUrl, err := pub.Publish(context.Background(), &dal.Post{Id: "p1"}, "Cute cat", media)
	assert.Nil(t, err)
	assert.Equal(t, "https://mastodon.example/@parrot/42", postUrl)
	assert.Equal(t, 3, fm.polls)
	// No detected type: falls back to the extension
	assert.Equal(t, []string{"video/mp4"}, fm.contentTypes)

	form := fm.statusForms[0]
	assert.Equal(t, "Cute cat", form.Get("status"))
	assert.Equal(t, "unlisted", form.Get("visibility"))
	assert.Equal(t, []string{"m1"}, form["media_ids[]"])
	assert.Equal(t, "", form.Get("sensitive"))
	assert.Equal(t, "", form.Get("spoiler_text"))
	assert.Equal(t, "p1", fm.idemKeys[0])
}

func TestMastodonPublishAdultPost(t *testing.T) {
	fm := &fakeMastodon{}
	ctrl, _, pub := setupMastodonTest(t, fm)
	defer ctrl.Finish()

	media := &dal.ResolvedMedia{Path: test.WriteFile(t, t.TempDir(), "p1.png", []byte("png")), Kind: dal.MediaStatic}
	_, err := pub.Publish(context.Background(), &dal.Post{Id: "p1", Over18: true}, "Spicy", media)
	assert.Nil(t, err)
	assert.Equal(t, 0, fm.polls)

	form := fm.statusForms[0]
	assert.Equal(t, "true", form.Get("sensitive"))
	assert.Equal(t, "NSFW", form.Get("spoiler_text"))
}

func TestMastodonPublishSensitiveMediaSetting(t *testing.T) {
	fm := &fakeMastodon{}
	ctrl, cfg, pub := setupMastodonTest(t, fm)
	defer ctrl.Finish()
	cfg.Mastodon.SensitiveMedia = true

	media := &dal.ResolvedMedia{Path: test.WriteFile(t, t.TempDir(), "p1.png", []byte("png")), Kind: dal.MediaStatic}
	_, err := pub.Publish(context.Background(), &dal.Post{Id: "p1"}, "Cat", media)
	assert.Nil(t, err)

	form := fm.statusForms[0]
	assert.Equal(t, "true", form.Get("sensitive"))
	assert.Equal(t, "", form.Get("spoiler_text"))
}

func TestMastodonPublishTextOnly(t *testing.T) {
	fm := &fakeMastodon{}
	ctrl, _, pub := setupMastodonTest(t, fm)
	defer ctrl.Finish()

	_, err := pub.Publish(context.Background(), &dal.Post{Id: "p1"}, "Just words", nil)
	assert.Nil(t, err)
	form := fm.statusForms[0]
	assert.Nil(t, form["media_ids[]"])
	assert.Equal(t, "Just words", form.Get("status"))
}
