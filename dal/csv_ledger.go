package dal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"reddit_parrot/shared"
	"time"
)

var csvHeader = []string{"identifier", "timestamp", "outcome"}

// CsvLedger keeps entries in a flat file. The file is opened and closed on every call.
type CsvLedger struct {
	fileName string
	logger   shared.ILogger
	nowFn    func() time.Time
}

func NewCsvLedger(fileName string, logger shared.ILogger) (*CsvLedger, error) {
	ledger := CsvLedger{
		fileName: fileName,
		logger:   logger,
		nowFn:    time.Now,
	}
	if err := ledger.initFile(); err != nil {
		return nil, err
	}
	return &ledger, nil
}

func (ledger *CsvLedger) initFile() error {
	_, err := os.Stat(ledger.fileName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check ledger file '%s': %w", ledger.fileName, err)
	}
	ledger.logger.Infof("Creating ledger file %s", ledger.fileName)
	f, err := os.Create(ledger.fileName)
	if err != nil {
		return fmt.Errorf("failed to create ledger file '%s': %w", ledger.fileName, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.Write(csvHeader); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (ledger *CsvLedger) Seen(postId string) (bool, error) {

	f, err := os.Open(ledger.fileName)
	if err != nil {
		return false, fmt.Errorf("failed to open ledger file '%s': %w", ledger.fileName, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	for i := 0; ; i++ {
		row, err := r.Read()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to read ledger file '%s': %w", ledger.fileName, err)
		}
		// Header
		if i == 0 {
			continue
		}
		for _, field := range row {
			if field == postId {
				return true, nil
			}
		}
	}
}

func (ledger *CsvLedger) Record(postId, outcome string) error {

	f, err := os.OpenFile(ledger.fileName, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open ledger file '%s': %w", ledger.fileName, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	ts := ledger.nowFn().Format(ledgerTimeFormat)
	if err = w.Write([]string{postId, ts, outcome}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Entries returns the most recent entries, newest first. Rows whose timestamp doesn't parse keep a zero time.
func (ledger *CsvLedger) Entries(limit int) ([]*LedgerEntry, error) {

	f, err := os.Open(ledger.fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file '%s': %w", ledger.fileName, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file '%s': %w", ledger.fileName, err)
	}

	var res []*LedgerEntry
	// Row 0 is the header
	for i := len(rows) - 1; i > 0 && len(res) < limit; i-- {
		row := rows[i]
		if len(row) < 3 {
			continue
		}
		ts, _ := time.ParseInLocation(ledgerTimeFormat, row[1], time.Local)
		res = append(res, &LedgerEntry{PostId: row[0], Timestamp: ts, Outcome: row[2]})
	}
	return res, nil
}
