package dal

import (
	"fmt"
	"reddit_parrot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_ledger.go -package mocks reddit_parrot/dal ILedger

// Layout of timestamps in the ledger, day first.
const ledgerTimeFormat = "02/01/2006 15:04:05"

// ILedger remembers which posts have been handled.
type ILedger interface {
	// Seen tells if postId has an entry, matching whole IDs only.
	Seen(postId string) (bool, error)
	// Record appends an entry. It never deduplicates.
	Record(postId, outcome string) error
}

// IEntryLister is implemented by ledgers that can list what they hold.
type IEntryLister interface {
	Entries(limit int) ([]*LedgerEntry, error)
}

func NewLedger(cfg *shared.Config, logger shared.ILogger) (ILedger, error) {
	var err error
	var ledger ILedger
	switch cfg.Ledger.Kind {
	case shared.LedgerKindCsv:
		var csvLedger *CsvLedger
		if csvLedger, err = NewCsvLedger(cfg.Ledger.CsvFile, logger); err == nil {
			ledger = csvLedger
		}
	case shared.LedgerKindSqlite:
		var sqliteLedger *SqliteLedger
		if sqliteLedger, err = NewSqliteLedger(cfg.Ledger.DbFile, logger); err == nil {
			ledger = sqliteLedger
		}
	case shared.LedgerKindRedis:
		var redisLedger *RedisLedger
		if redisLedger, err = NewRedisLedger(cfg.Secrets.RedisUrl, cfg.Ledger.RedisKeyPrefix, logger); err == nil {
			ledger = redisLedger
		}
	default:
		err = &shared.ConfigError{Msg: fmt.Sprintf("unknown ledger kind '%s'", cfg.Ledger.Kind)}
	}
	if err != nil {
		return nil, err
	}
	logger.Infof("Using %s ledger", cfg.Ledger.Kind)
	return ledger, nil
}
