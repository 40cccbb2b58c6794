package logic_test

import (
	"context"
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

func setupMediaHostClientsTest(t *testing.T, imgurClientId string) (*gomock.Controller, logic.IImgurClient, logic.IGfycatClient) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	test.StubLogger(mockLogger)
	test.StubUserAgent(mockUserAgent)

	mux := http.NewServeMux()
	checkClientId := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Client-ID imgur-id" {
			http.Error(w, `{"data":{"error":"Invalid client_id"},"success":false,"status":403}`, http.StatusForbidden)
			return false
		}
		return true
	}
	mux.HandleFunc("/3/credits", func(w http.ResponseWriter, r *http.Request) {
		if checkClientId(w, r) {
			_, _ = w.Write([]byte(`{"data":{"UserRemaining":50,"ClientRemaining":12000},"success":true,"status":200}`))
		}
	})
	mux.HandleFunc("/3/album/Alb12/images", func(w http.ResponseWriter, r *http.Request) {
		if checkClientId(w, r) {
			_, _ = w.Write([]byte(`{"data":[{"id":"first","type":"image/png","link":"https://i.imgur.com/first.png"},
				{"id":"second","type":"image/jpeg","link":"https://i.imgur.com/second.jpg"}],"success":true,"status":200}`))
		}
	})
	mux.HandleFunc("/3/image/Gf1", func(w http.ResponseWriter, r *http.Request) {
		if checkClientId(w, r) {
			_, _ = w.Write([]byte(`{"data":{"id":"Gf1","type":"image/gif","link":"https://i.imgur.com/Gf1.gif",
				"mp4":"https://i.imgur.com/Gf1.mp4"},"success":true,"status":200}`))
		}
	})
	mux.HandleFunc("/v1/gfycats/happycat", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"gfyItem":{"gfyName":"HappyCat","max2mbGif":"https://thumbs.gfycat.com/HappyCat-small.gif",
			"mp4Url":"https://giant.gfycat.com/HappyCat.mp4"}}`))
	})
	mux.HandleFunc("/v1/gfycats/nothing", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := &shared.Config{Secrets: shared.Secrets{ImgurClientId: imgurClientId}}
	urls := shared.NewUrlBuilder(cfg)
	urls.ImgurApi = srv.URL
	urls.GfycatApi = srv.URL

	imgur := logic.NewImgurClient(cfg, mockLogger, mockUserAgent, urls)
	gfycat := logic.NewGfycatClient(mockLogger, mockUserAgent, urls)
	return ctrl, imgur, gfycat
}

func TestImgurClient(t *testing.T) {
	ctrl, imgur, _ := setupMediaHostClientsTest(t, "imgur-id")
	defer ctrl.Finish()

	assert.Nil(t, imgur.Authenticate(context.Background()))

	images, err := imgur.GetAlbumImages(context.Background(), "Alb12")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(images))
	assert.Equal(t, "https://i.imgur.com/first.png", images[0].Link)

	img, err := imgur.GetImage(context.Background(), "Gf1")
	assert.Nil(t, err)
	assert.Equal(t, "image/gif", img.Type)
	assert.Equal(t, "https://i.imgur.com/Gf1.mp4", img.Mp4)
}

func TestImgurClientRejected(t *testing.T) {
	ctrl, imgur, _ := setupMediaHostClientsTest(t, "wrong-id")
	defer ctrl.Finish()

	err := imgur.Authenticate(context.Background())
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestImgurClientNotConfigured(t *testing.T) {
	ctrl, imgur, _ := setupMediaHostClientsTest(t, "")
	defer ctrl.Finish()

	assert.NotNil(t, imgur.Authenticate(context.Background()))
}

func TestGfycatClient(t *testing.T) {
	ctrl, _, gfycat := setupMediaHostClientsTest(t, "imgur-id")
	defer ctrl.Finish()

	item, err := gfycat.QueryByName(context.Background(), "happycat")
	assert.Nil(t, err)
	assert.Equal(t, "HappyCat", item.GfyName)
	assert.Equal(t, "https://giant.gfycat.com/HappyCat.mp4", item.Mp4Url)

	_, err = gfycat.QueryByName(context.Background(), "nothing")
	assert.NotNil(t, err)
}
