// Package store persists weekly ledger records in a local SQLite database,
// one row per distinct week-start date, last write wins. Every upsert also
// appends a ULID-keyed revision row for the audit trail.
package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/rvaldes/tradeweek/internal/id"
	"github.com/rvaldes/tradeweek/ledger"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, persistence("open", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, persistence("init schema", err)
	}

	return &SQLite{db: db}, nil
}

// Upsert writes or overwrites the record for its week-start date and appends
// a revision row, in one transaction. Idempotent per date.
func (s *SQLite) Upsert(rec ledger.Record) error {
	days, err := json.Marshal(rec.Days)
	if err != nil {
		return persistence("encode days", err)
	}

	capital := decimal.Zero
	if rec.InitialCapital != nil {
		capital = *rec.InitialCapital
	}

	tx, err := s.db.Begin()
	if err != nil {
		return persistence("begin", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO weeks (week_start_date, initial_capital, days)
		VALUES (?, ?, ?)`,
		rec.WeekStartDate, capital.String(), string(days),
	); err != nil {
		return persistence("upsert week", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO revisions (revision_id, week_start_date, saved_at)
		VALUES (?, ?, ?)`,
		id.New(), rec.WeekStartDate, time.Now().UTC(),
	); err != nil {
		return persistence("record revision", err)
	}

	if err := tx.Commit(); err != nil {
		return persistence("commit", err)
	}
	return nil
}

// LoadLatest returns the record with the maximum week-start date, or nil if
// the store is empty. Latest is decided by date value, not insertion order:
// re-saving an old week must not make it latest.
func (s *SQLite) LoadLatest() (*ledger.Record, error) {
	row := s.db.QueryRow(`
		SELECT week_start_date, initial_capital, days
		FROM weeks
		ORDER BY week_start_date DESC
		LIMIT 1`)
	return s.scanRecord(row)
}

// LoadByDate returns the record for an exact week-start date, or nil when no
// record exists. A missing week is not an error.
func (s *SQLite) LoadByDate(date string) (*ledger.Record, error) {
	row := s.db.QueryRow(`
		SELECT week_start_date, initial_capital, days
		FROM weeks
		WHERE week_start_date = ?`, date)
	return s.scanRecord(row)
}

func (s *SQLite) scanRecord(row *sql.Row) (*ledger.Record, error) {
	var (
		date    string
		capital string
		days    string
	)
	if err := row.Scan(&date, &capital, &days); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, persistence("load week", err)
	}

	c, err := decimal.NewFromString(capital)
	if err != nil {
		return nil, persistence("decode initial_capital", err)
	}

	rec := ledger.Record{
		WeekStartDate:  date,
		InitialCapital: &c,
	}
	if err := json.Unmarshal([]byte(days), &rec.Days); err != nil {
		return nil, persistence("decode days", err)
	}
	return &rec, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
