package core

import (
	"time"

	"github.com/mbelabs/epiclog/schema"
)

// baseTime anchors all synthetic series used by the core tests.
var baseTime = time.Date(2024, 3, 17, 8, 0, 0, 0, time.UTC)

// numSeries builds a single-column numeric series with one row per minute.
func numSeries(name, column string, values ...float64) *schema.Series {
	rows := make([]schema.Row, len(values))
	for i, v := range values {
		rows[i] = schema.Row{
			Time:  baseTime.Add(time.Duration(i) * time.Minute),
			Cells: []schema.Cell{schema.NumCell(v)},
		}
	}
	return &schema.Series{Name: name, Columns: []string{column}, Rows: rows}
}

// eventSeries builds a 3-column event-log series with one row per minute.
func eventSeries(messages ...string) *schema.Series {
	rows := make([]schema.Row, len(messages))
	for i, msg := range messages {
		rows[i] = schema.Row{
			Time: baseTime.Add(time.Duration(i) * time.Minute),
			Cells: []schema.Cell{
				schema.TextCell("EPIC"),
				schema.TextCell(msg),
				schema.TextCell("black"),
			},
		}
	}
	return &schema.Series{
		Name:    "Messages",
		Columns: []string{"CallerID", "Message", "Color"},
		Rows:    rows,
	}
}

// rowTimes extracts the retained timestamps of a series.
func rowTimes(s *schema.Series) []time.Time {
	out := make([]time.Time, len(s.Rows))
	for i, row := range s.Rows {
		out[i] = row.Time
	}
	return out
}

// minutes maps row offsets to the timestamps numSeries assigns them.
func minutes(offsets ...int) []time.Time {
	out := make([]time.Time, len(offsets))
	for i, m := range offsets {
		out[i] = baseTime.Add(time.Duration(m) * time.Minute)
	}
	return out
}
