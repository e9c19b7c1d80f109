package recorder

import (
	"time"

	"github.com/google/uuid"

	"ListingSentinel/internal/model"
)

// Snapshot is one recorded analysis run.
type Snapshot struct {
	RunID      uuid.UUID
	RecordedAt time.Time
	Report     *model.ProductReport
}

// NewSnapshot stamps a report with a fresh run id.
func NewSnapshot(report *model.ProductReport) *Snapshot {
	return &Snapshot{RunID: uuid.New(), RecordedAt: time.Now(), Report: report}
}

// RunSummary is a flattened row of analysis_runs.
type RunSummary struct {
	RunID        string
	ASIN         string
	RecordedAt   time.Time
	Demand       int
	Price        float64
	Rank         int
	QualityScore int
	PositivePct  int
	NegativePct  int
	FakeScore    int
	FakeLevel    string
	DataSource   string
}

// Recorder persists analysis history.
type Recorder interface {
	RecordSnapshot(snap *Snapshot) error
	RecentRuns(asin string, limit int) ([]RunSummary, error)
	Close() error
}
