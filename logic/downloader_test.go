package logic_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reddit_parrot/logic"
	"reddit_parrot/shared"
	"reddit_parrot/test"
	"reddit_parrot/test/mocks"
	"testing"
)

func setupDownloaderTest(t *testing.T) (*gomock.Controller, *httptest.Server, logic.IDownloader) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	test.StubLogger(mockLogger)
	mockUserAgent.EXPECT().AddUserAgent(gomock.Any()).Do(func(req *http.Request) {
		req.Header.Set("User-Agent", "test-agent")
	}).AnyTimes()

	mux := http.NewServeMux()
	mux.HandleFunc("/cat.png", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "image/png")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write([]byte("not really a png"))
	})
	mux.HandleFunc("/gone.png", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return ctrl, srv, logic.NewDownloader(mockLogger, mockUserAgent)
}

func TestDownload(t *testing.T) {
	ctrl, srv, dl := setupDownloaderTest(t)
	defer ctrl.Finish()

	// Target directory is created on demand
	path := filepath.Join(t.TempDir(), "media", "cat.png")
	err := dl.Download(context.Background(), srv.URL+"/cat.png", path)
	assert.Nil(t, err)
	content, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, "not really a png", string(content))
	assert.NoFileExists(t, path+".part")
}

func TestDownloadNotFound(t *testing.T) {
	ctrl, srv, dl := setupDownloaderTest(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "gone.png")
	err := dl.Download(context.Background(), srv.URL+"/gone.png", path)
	var df *shared.DownloadFailed
	assert.True(t, errors.As(err, &df))
	assert.Equal(t, http.StatusNotFound, df.Status)
	assert.NoFileExists(t, path)
}

func TestContentType(t *testing.T) {
	ctrl, srv, dl := setupDownloaderTest(t)
	defer ctrl.Finish()

	contentType, err := dl.ContentType(context.Background(), srv.URL+"/cat.png")
	assert.Nil(t, err)
	assert.Equal(t, "image/png", contentType)

	_, err = dl.ContentType(context.Background(), srv.URL+"/gone.png")
	assert.NotNil(t, err)
}
