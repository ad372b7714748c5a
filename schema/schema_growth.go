package schema

import "time"

// GrowthEvent is a detected growth interval: one sample holder moving out of
// storage and back. Boundaries are paired positionally (row order in the
// event log), so an event spanning midnight is indistinguishable from a
// same-day one; daily files are never stitched.
type GrowthEvent struct {
	Object    string    `json:"object"` // Unique growth identifier from the log message
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	StartFrom string    `json:"start_from"` // Location the holder left at the start boundary
	StartTo   string    `json:"start_to"`
	EndFrom   string    `json:"end_from"`
	EndTo     string    `json:"end_to"`
}

// GrowthResult is the structured outcome of growth extraction for one series.
// Diagnostics carry the human-readable boundary report; nothing is printed
// from the core.
type GrowthResult struct {
	Status      GrowthStatus  `json:"status"`
	Message     string        `json:"message"` // Operator-facing status line
	Events      []GrowthEvent `json:"events,omitempty"`
	Diagnostics []string      `json:"diagnostics,omitempty"`
}
