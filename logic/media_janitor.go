package logic

import (
	"errors"
	"os"
	"path/filepath"
	"reddit_parrot/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_media_janitor.go -package mocks reddit_parrot/logic IMediaJanitor

// IMediaJanitor removes media files that were left behind when deleting them after a post failed.
type IMediaJanitor interface {
	// PurgeStale deletes files in the media directory older than the configured retention.
	PurgeStale() (int, error)
}

type mediaJanitor struct {
	logger    shared.ILogger
	metrics   IMetrics
	mediaDir  string
	keepHours int
	nowFn     func() time.Time
}

func NewMediaJanitor(cfg *shared.Config, logger shared.ILogger, metrics IMetrics) IMediaJanitor {
	return &mediaJanitor{
		logger:    logger,
		metrics:   metrics,
		mediaDir:  cfg.MediaDir,
		keepHours: cfg.MediaKeepHours,
		nowFn:     time.Now,
	}
}

func (mj *mediaJanitor) PurgeStale() (int, error) {
	if mj.keepHours <= 0 {
		return 0, nil
	}
	count, err := purgeOld(mj.mediaDir, mj.nowFn().Add(-time.Duration(mj.keepHours)*time.Hour))
	if count > 0 {
		mj.logger.Infof("Purged %d stale media files from %s", count, mj.mediaDir)
		mj.metrics.MediaPurged(count)
	}
	return count, err
}

func purgeOld(dir string, cutoff time.Time) (int, error) {
	count := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Nothing to purge before the first download creates the directory
			if errors.Is(err, os.ErrNotExist) && path == dir {
				return filepath.SkipDir
			}
			return err
		}
		if !info.IsDir() && info.ModTime().Before(cutoff) {
			if err = os.Remove(path); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	return count, err
}
