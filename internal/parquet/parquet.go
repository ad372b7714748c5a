// Package parquet provides data structures and functions for exporting run
// history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/mbelabs/epiclog/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single export run with metadata.
// This struct maps to the epiclog_runs database table.
type Run struct {
	// RunID is the unique identifier for this export run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// SeriesProcessed is the number of series processed in this run
	SeriesProcessed int32 `parquet:"series_processed,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// GrowthEvent represents one detected growth interval in a run.
// This struct maps to the epiclog_growth_events database table.
type GrowthEvent struct {
	// RunID references the parent export run
	RunID int64 `parquet:"run_id,snappy"`

	// SeriesName is the event-log series the interval was extracted from
	SeriesName string `parquet:"series_name,snappy"`

	// Object is the growth identifier from the log message
	Object string `parquet:"object,snappy"`

	// StartTime is the timestamp of the start boundary
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is the timestamp of the end boundary
	EndTime time.Time `parquet:"end_time,snappy"`

	// FromStart is the location the holder left at the start boundary
	FromStart string `parquet:"from_start,snappy"`

	// ToEnd is the location the holder reached at the end boundary
	ToEnd string `parquet:"to_end,snappy"`

	// Status is the extraction status of the owning series
	Status string `parquet:"status,snappy"`
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WriteGrowthEventsParquet writes a slice of GrowthEvent structs to a Parquet file.
func WriteGrowthEventsParquet(data []GrowthEvent, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[GrowthEvent](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ConvertRunRecords converts database run records to their Parquet form.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	out := make([]Run, len(records))
	for i, r := range records {
		out[i] = Run{
			RunID:           r.RunID,
			StartTime:       r.StartTime,
			EndTime:         r.EndTime,
			RunDurationMs:   r.RunDurationMs,
			SeriesProcessed: r.SeriesProcessed,
			ConfigParams:    r.ConfigParams,
		}
	}
	return out
}

// ConvertGrowthEventRecords converts database growth event records to their Parquet form.
func ConvertGrowthEventRecords(records []schema.GrowthEventRecord) []GrowthEvent {
	out := make([]GrowthEvent, len(records))
	for i, r := range records {
		out[i] = GrowthEvent{
			RunID:      r.RunID,
			SeriesName: r.SeriesName,
			Object:     r.Object,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			FromStart:  r.FromStart,
			ToEnd:      r.ToEnd,
			Status:     r.Status,
		}
	}
	return out
}
