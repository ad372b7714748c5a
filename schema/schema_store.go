package schema

import "time"

// RunRecord represents a row from the epiclog_runs table.
type RunRecord struct {
	RunID           int64
	StartTime       time.Time
	EndTime         *time.Time
	RunDurationMs   *int32
	SeriesProcessed int32
	ConfigParams    *string // JSON-encoded configuration snapshot
}

// GrowthEventRecord represents a row from the epiclog_growth_events table.
type GrowthEventRecord struct {
	RunID      int64
	SeriesName string
	Object     string
	StartTime  time.Time
	EndTime    time.Time
	FromStart  string // Location at the start boundary
	ToEnd      string // Location at the end boundary
	Status     string
}

// StoreStatus summarizes the run history store for the status command.
type StoreStatus struct {
	Backend    StoreBackend
	TotalRuns  int64
	TableSizes map[string]int64
	LastRun    *time.Time
}
