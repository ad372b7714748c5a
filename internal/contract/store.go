package contract

import (
	"time"

	"github.com/mbelabs/epiclog/schema"
)

// RunStore persists export run history and the growth events detected in each
// run. The transform pipeline never reads from it; it exists purely so an
// operator can audit past exports. A nil-db implementation backs the "none"
// backend.
type RunStore interface {
	// BeginRun records the start of an export run and returns its ID.
	BeginRun(start time.Time, params map[string]any) (int64, error)

	// EndRun finalizes a run with its end time and the number of series processed.
	EndRun(runID int64, end time.Time, seriesProcessed int) error

	// RecordGrowthEvents stores the growth events detected for one series.
	RecordGrowthEvents(runID int64, seriesName string, result schema.GrowthResult) error

	// GetAllRuns returns every recorded run, oldest first.
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllGrowthEvents returns every recorded growth event, oldest run first.
	GetAllGrowthEvents() ([]schema.GrowthEventRecord, error)

	// GetStatus summarizes the store contents.
	GetStatus() (*schema.StoreStatus, error)

	// Clear removes all recorded history.
	Clear() error

	// Close releases the underlying database handle.
	Close() error
}
