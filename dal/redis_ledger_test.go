package dal

import (
	"fmt"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"io"
	"os"
	"testing"
	"time"
)

// Runs against a live server only: set TEST_REDIS_URL, e.g. redis://localhost:6379/15
func setupRedisLedgerTest(t *testing.T) *RedisLedger {
	redisUrl := os.Getenv("TEST_REDIS_URL")
	if redisUrl == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	prefix := fmt.Sprintf("test-%d:", time.Now().UnixNano())
	ledger, err := NewRedisLedger(redisUrl, prefix, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = ledger.Close() })
	return ledger
}

func TestRedisLedgerSeenAndRecord(t *testing.T) {
	ledger := setupRedisLedgerTest(t)

	seen, err := ledger.Seen("abcdef")
	assert.Nil(t, err)
	assert.False(t, seen)

	assert.Nil(t, ledger.Record("abcdef", "ok"))
	seen, err = ledger.Seen("abcdef")
	assert.Nil(t, err)
	assert.True(t, seen)
	seen, err = ledger.Seen("abc")
	assert.Nil(t, err)
	assert.False(t, seen)

	entries, err := ledger.Entries(5)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, "abcdef", entries[0].PostId)
}

func TestNewRedisLedgerBadUrl(t *testing.T) {
	_, err := NewRedisLedger("not a url", "x:", log.New(io.Discard))
	assert.NotNil(t, err)
}
