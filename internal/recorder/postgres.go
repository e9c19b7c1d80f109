package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// PostgresRecorder persists analysis history to PostgreSQL.
type PostgresRecorder struct {
	store sqlStore
}

// NewPostgresRecorder connects, waits for the server to accept connections,
// and runs migrations.
func NewPostgresRecorder(dsn string) (*PostgresRecorder, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	r := &PostgresRecorder{store: sqlStore{db: db, dollarPH: true}}
	if err := r.store.migrate(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Println("[INFO] postgres recorder connected")
	return r, nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS analysis_runs (
		id                SERIAL PRIMARY KEY,
		run_id            UUID NOT NULL UNIQUE,
		asin              VARCHAR(20) NOT NULL,
		timestamp         BIGINT NOT NULL,
		title             TEXT,
		category          TEXT,
		demand            INTEGER,
		price             NUMERIC(12,2),
		rank              INTEGER,
		quality_score     INTEGER,
		positive_pct      INTEGER,
		neutral_pct       INTEGER,
		negative_pct      INTEGER,
		fake_score        INTEGER,
		fake_level        TEXT,
		review_count      INTEGER,
		estimated_reviews BOOLEAN,
		data_source       TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_asin_ts ON analysis_runs(asin, timestamp)`,

	`CREATE TABLE IF NOT EXISTS sales_points (
		id      SERIAL PRIMARY KEY,
		run_id  UUID NOT NULL REFERENCES analysis_runs(run_id) ON DELETE CASCADE,
		month   CHAR(7) NOT NULL,
		units   INTEGER,
		revenue NUMERIC(14,2)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_run ON sales_points(run_id)`,
}

func (r *PostgresRecorder) RecordSnapshot(snap *Snapshot) error {
	return r.store.insert(snap)
}

func (r *PostgresRecorder) RecentRuns(asin string, limit int) ([]RunSummary, error) {
	return r.store.recent(asin, limit)
}

func (r *PostgresRecorder) Close() error {
	log.Println("[INFO] closing postgres recorder")
	return r.store.db.Close()
}
