package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// sqlStore holds the statements shared by the SQLite and Postgres recorders.
// Queries are written with ? placeholders and rebound for Postgres.
type sqlStore struct {
	db       *sql.DB
	dollarPH bool
}

func (s *sqlStore) bind(query string) string {
	if !s.dollarPH {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *sqlStore) migrate(stmts []string) error {
	for _, q := range stmts {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(q), err)
		}
	}
	return nil
}

func (s *sqlStore) insert(snap *Snapshot) error {
	rep := snap.Report
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	runID := snap.RunID.String()
	_, err = tx.Exec(s.bind(`INSERT INTO analysis_runs
		(run_id, asin, timestamp, title, category, demand, price, rank,
		 quality_score, positive_pct, neutral_pct, negative_pct,
		 fake_score, fake_level, review_count, estimated_reviews, data_source)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`),
		runID, rep.Product.ASIN, snap.RecordedAt.Unix(), rep.Product.Title, string(rep.Category),
		rep.EstimatedMonthlyUnits, rep.Product.Price, rep.Product.Rank,
		rep.ListingQuality.Score,
		rep.Reviews.Sentiment.PositivePct, rep.Reviews.Sentiment.NeutralPct, rep.Reviews.Sentiment.NegativePct,
		rep.Reviews.FakeReviewRisk.Score, string(rep.Reviews.FakeReviewRisk.Level),
		rep.Reviews.ReviewCount, rep.Reviews.Estimated, string(rep.DataSource),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, p := range rep.SalesHistory {
		if _, err := tx.Exec(s.bind(`INSERT INTO sales_points (run_id, month, units, revenue) VALUES (?,?,?,?)`),
			runID, p.Month, p.Units, p.Revenue); err != nil {
			return fmt.Errorf("insert sales point: %w", err)
		}
	}
	return tx.Commit()
}

func (s *sqlStore) recent(asin string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(s.bind(`SELECT run_id, asin, timestamp, demand, price, rank,
		quality_score, positive_pct, negative_pct, fake_score, fake_level, data_source
		FROM analysis_runs WHERE asin = ? ORDER BY timestamp DESC, id DESC LIMIT ?`), asin, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		var ts int64
		if err := rows.Scan(&r.RunID, &r.ASIN, &ts, &r.Demand, &r.Price, &r.Rank,
			&r.QualityScore, &r.PositivePct, &r.NegativePct, &r.FakeScore, &r.FakeLevel, &r.DataSource); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.RecordedAt = time.Unix(ts, 0)
		out = append(out, r)
	}
	return out, rows.Err()
}

func firstLine(q string) string {
	q = strings.TrimSpace(q)
	if i := strings.IndexByte(q, '\n'); i > 0 {
		return q[:i]
	}
	return q
}
