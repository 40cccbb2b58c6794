package dal

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
	"reddit_parrot/shared"
	"time"
)

const (
	redisTimeoutSec   = 5
	redisRecentKey    = "recent"
	redisRecentKeep   = 100
	redisFieldTime    = "timestamp"
	redisFieldOutcome = "outcome"
)

// RedisLedger keeps one hash per post, plus a capped list of recent entries.
type RedisLedger struct {
	logger    shared.ILogger
	rdb       *redis.Client
	keyPrefix string
	nowFn     func() time.Time
}

func NewRedisLedger(redisUrl, keyPrefix string, logger shared.ILogger) (*RedisLedger, error) {

	opts, err := redis.ParseURL(redisUrl)
	if err != nil {
		return nil, &shared.ConfigError{Msg: "invalid Redis URL", Err: err}
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeoutSec*time.Second)
	defer cancel()

	if err = rdb.Ping(ctx).Err(); err != nil {
		logger.Errorf("Failed to connect to Redis at %s: %v", opts.Addr, err)
		_ = rdb.Close()
		return nil, err
	}

	return &RedisLedger{
		logger:    logger,
		rdb:       rdb,
		keyPrefix: keyPrefix,
		nowFn:     time.Now,
	}, nil
}

func (ledger *RedisLedger) postKey(postId string) string {
	return ledger.keyPrefix + "post:" + postId
}

func (ledger *RedisLedger) Seen(postId string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeoutSec*time.Second)
	defer cancel()

	n, err := ledger.rdb.Exists(ctx, ledger.postKey(postId)).Result()
	if err != nil {
		return false, fmt.Errorf("redis EXISTS failed: %w", err)
	}
	return n != 0, nil
}

func (ledger *RedisLedger) Record(postId, outcome string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeoutSec*time.Second)
	defer cancel()

	now := ledger.nowFn()
	entryJson, err := json.Marshal(&LedgerEntry{PostId: postId, Timestamp: now, Outcome: outcome})
	if err != nil {
		return err
	}
	recentKey := ledger.keyPrefix + redisRecentKey
	_, err = ledger.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, ledger.postKey(postId),
			redisFieldTime, now.Format(ledgerTimeFormat),
			redisFieldOutcome, outcome)
		pipe.LPush(ctx, recentKey, entryJson)
		pipe.LTrim(ctx, recentKey, 0, redisRecentKeep-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis write failed: %w", err)
	}
	return nil
}

// Entries returns up to limit recent entries, newest first. Only the last 100 are kept.
func (ledger *RedisLedger) Entries(limit int) ([]*LedgerEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeoutSec*time.Second)
	defer cancel()

	items, err := ledger.rdb.LRange(ctx, ledger.keyPrefix+redisRecentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis LRANGE failed: %w", err)
	}
	res := make([]*LedgerEntry, 0, len(items))
	for _, item := range items {
		var e LedgerEntry
		if err = json.Unmarshal([]byte(item), &e); err != nil {
			ledger.logger.Warnf("Skipping malformed recent ledger entry: %v", err)
			continue
		}
		res = append(res, &e)
	}
	return res, nil
}

func (ledger *RedisLedger) Close() error {
	return ledger.rdb.Close()
}
