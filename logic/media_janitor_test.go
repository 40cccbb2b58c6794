package logic_test

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"os"
	"path/filepath"
	"reddit_parrot/logic"
	"reddit_parrot/shared"
	"reddit_parrot/test"
	"reddit_parrot/test/mocks"
	"testing"
	"time"
)

func setupMediaJanitorTest(t *testing.T, mediaDir string, keepHours int) (*gomock.Controller, *mocks.MockIMetrics, logic.IMediaJanitor) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	test.StubLogger(mockLogger)
	cfg := &shared.Config{MediaDir: mediaDir, MediaKeepHours: keepHours}
	return ctrl, mockMetrics, logic.NewMediaJanitor(cfg, mockLogger, mockMetrics)
}

func TestMediaJanitorPurgesOldFiles(t *testing.T) {
	dir := t.TempDir()
	stale := test.WriteFile(t, dir, "stale.png", []byte("x"))
	fresh := test.WriteFile(t, dir, "fresh.png", []byte("x"))
	old := time.Now().Add(-3 * time.Hour)
	assert.Nil(t, os.Chtimes(stale, old, old))

	ctrl, mockMetrics, janitor := setupMediaJanitorTest(t, dir, 2)
	defer ctrl.Finish()
	mockMetrics.EXPECT().MediaPurged(1).Times(1)

	count, err := janitor.PurgeStale()
	assert.Nil(t, err)
	assert.Equal(t, 1, count)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
}

func TestMediaJanitorDisabled(t *testing.T) {
	dir := t.TempDir()
	stale := test.WriteFile(t, dir, "stale.png", []byte("x"))
	old := time.Now().Add(-300 * time.Hour)
	assert.Nil(t, os.Chtimes(stale, old, old))

	ctrl, _, janitor := setupMediaJanitorTest(t, dir, 0)
	defer ctrl.Finish()

	count, err := janitor.PurgeStale()
	assert.Nil(t, err)
	assert.Equal(t, 0, count)
	assert.FileExists(t, stale)
}

func TestMediaJanitorMissingDir(t *testing.T) {
	ctrl, _, janitor := setupMediaJanitorTest(t, filepath.Join(t.TempDir(), "nope"), 1)
	defer ctrl.Finish()

	count, err := janitor.PurgeStale()
	assert.Nil(t, err)
	assert.Equal(t, 0, count)
}
