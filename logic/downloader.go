package logic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reddit_parrot/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_downloader.go -package mocks reddit_parrot/logic IDownloader

const (
	downloadTimeoutSec = 120
	headTimeoutSec     = 10
	partialFileSuffix  = ".part"
)

// IDownloader fetches media files and media metadata over HTTP.
type IDownloader interface {
	// Download saves the body of a GET request to path, overwriting any existing file.
	// A non-OK status yields *shared.DownloadFailed and leaves no file behind.
	Download(ctx context.Context, url, path string) error
	// ContentType returns the Content-Type the server declares for url, without fetching the body.
	ContentType(ctx context.Context, url string) (string, error)
}

type downloader struct {
	logger    shared.ILogger
	userAgent shared.IUserAgent
}

func NewDownloader(logger shared.ILogger, userAgent shared.IUserAgent) IDownloader {
	return &downloader{
		logger:    logger,
		userAgent: userAgent,
	}
}

func (dl *downloader) Download(ctx context.Context, url, path string) error {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	dl.userAgent.AddUserAgent(req)

	client := http.Client{}
	client.Timeout = downloadTimeoutSec * time.Second
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &shared.DownloadFailed{Url: url, Status: resp.StatusCode}
	}

	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Stream into a side file so an interrupted transfer never looks like a finished download
	partPath := path + partialFileSuffix
	f, err := os.Create(partPath)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, resp.Body)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(partPath)
		return fmt.Errorf("failed to save %s: %w", url, err)
	}
	if err = os.Rename(partPath, path); err != nil {
		_ = os.Remove(partPath)
		return err
	}
	dl.logger.Debugf("Downloaded %s to %s", url, path)
	return nil
}

func (dl *downloader) ContentType(ctx context.Context, url string) (string, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", err
	}
	dl.userAgent.AddUserAgent(req)

	client := http.Client{}
	client.Timeout = headTimeoutSec * time.Second
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &shared.DownloadFailed{Url: url, Status: resp.StatusCode}
	}
	return resp.Header.Get("Content-Type"), nil
}
