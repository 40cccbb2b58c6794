package dal

import (
	"database/sql"
	"embed"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"reddit_parrot/shared"
	"sync"
	"time"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

type SqliteLedger struct {
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
	nowFn  func() time.Time
}

func NewSqliteLedger(dbFile string, logger shared.ILogger) (*SqliteLedger, error) {

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", fmt.Sprintf(cstr, dbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", dbFile, err)
		return nil, err
	}

	ledger := SqliteLedger{
		logger: logger,
		db:     db,
		nowFn:  time.Now,
	}
	if err = ledger.initUpdateDb(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &ledger, nil
}

func (ledger *SqliteLedger) initUpdateDb() error {

	dbVer := 0
	sysParamsExists := false

	rows, err := ledger.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		ledger.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		return err
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		ledger.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := ledger.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			ledger.logger.Errorf("Failed to query schema version: %v", err)
			return err
		}
		ledger.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		ledger.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			ledger.logger.Errorf("Failed to read init script %s: %v", fn, err)
			return err
		}
		if _, err = ledger.db.Exec(string(sqlBytes)); err != nil {
			ledger.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			return err
		}
		_, err = ledger.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			ledger.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			return err
		}
	}
	return nil
}

func (ledger *SqliteLedger) Seen(postId string) (bool, error) {

	ledger.muDb.RLock()
	defer ledger.muDb.RUnlock()

	row := ledger.db.QueryRow(`SELECT COUNT(*) FROM ledger WHERE post_id=?`, postId)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

func (ledger *SqliteLedger) Record(postId, outcome string) error {

	ledger.muDb.Lock()
	defer ledger.muDb.Unlock()

	_, err := ledger.db.Exec(`INSERT INTO ledger (post_id, recorded_at, outcome) VALUES(?, ?, ?)`,
		postId, ledger.nowFn().UTC(), outcome)
	return err
}

// Entries returns the most recent entries, newest first.
func (ledger *SqliteLedger) Entries(limit int) ([]*LedgerEntry, error) {

	ledger.muDb.RLock()
	defer ledger.muDb.RUnlock()

	rows, err := ledger.db.Query(`SELECT post_id, recorded_at, outcome FROM ledger ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*LedgerEntry
	for rows.Next() {
		e := LedgerEntry{}
		if err = rows.Scan(&e.PostId, &e.Timestamp, &e.Outcome); err != nil {
			return nil, err
		}
		res = append(res, &e)
	}
	return res, rows.Err()
}

func (ledger *SqliteLedger) Close() error {
	ledger.muDb.Lock()
	defer ledger.muDb.Unlock()
	return ledger.db.Close()
}
