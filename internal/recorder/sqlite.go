package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	store sqlStore
	mu    sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets report readers run while the watcher writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{store: sqlStore{db: db}}
	if err := r.store.migrate(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS analysis_runs (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id            TEXT NOT NULL UNIQUE,
		asin              TEXT NOT NULL,
		timestamp         INTEGER NOT NULL,
		title             TEXT,
		category          TEXT,
		demand            INTEGER,
		price             REAL,
		rank              INTEGER,
		quality_score     INTEGER,
		positive_pct      INTEGER,
		neutral_pct       INTEGER,
		negative_pct      INTEGER,
		fake_score        INTEGER,
		fake_level        TEXT,
		review_count      INTEGER,
		estimated_reviews INTEGER,
		data_source       TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_asin_ts ON analysis_runs(asin, timestamp)`,

	`CREATE TABLE IF NOT EXISTS sales_points (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id  TEXT NOT NULL,
		month   TEXT NOT NULL,
		units   INTEGER,
		revenue REAL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_run ON sales_points(run_id)`,
}

func (r *SQLiteRecorder) RecordSnapshot(snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.insert(snap)
}

func (r *SQLiteRecorder) RecentRuns(asin string, limit int) ([]RunSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.recent(asin, limit)
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.store.db.Close()
}
