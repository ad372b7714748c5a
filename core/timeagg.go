package core

import (
	"time"

	"github.com/mbelabs/epiclog/schema"
)

// ResampleLast aggregates rows into fixed-width time buckets, keeping the
// last non-missing value per column in each bucket. Buckets with no rows
// produce a row of missing cells so ForwardFill can close the gaps.
func ResampleLast(s *schema.Series, period time.Duration) *schema.Series {
	return resample(s, period, aggregateLast)
}

// ResampleMean aggregates rows into fixed-width time buckets, averaging the
// numeric values per column. Text and missing cells are excluded from the
// mean; a bucket with no numeric values yields a missing cell.
func ResampleMean(s *schema.Series, period time.Duration) *schema.Series {
	return resample(s, period, aggregateMean)
}

// resample walks the rows once, grouping them into buckets aligned on
// multiples of period. Rows are ordered by time (loader invariant), so each
// bucket is a contiguous slice.
func resample(s *schema.Series, period time.Duration, agg func([]schema.Row, int) schema.Cell) *schema.Series {
	if s.Empty() || period <= 0 {
		return s
	}

	first := s.Rows[0].Time.Truncate(period)
	last := s.Rows[len(s.Rows)-1].Time.Truncate(period)

	var out []schema.Row
	i := 0
	for bucket := first; !bucket.After(last); bucket = bucket.Add(period) {
		end := bucket.Add(period)
		start := i
		for i < len(s.Rows) && s.Rows[i].Time.Before(end) {
			i++
		}
		group := s.Rows[start:i]
		cells := make([]schema.Cell, len(s.Columns))
		for j := range cells {
			cells[j] = agg(group, j)
		}
		out = append(out, schema.Row{Time: bucket, Cells: cells})
	}
	return s.WithRows(out)
}

func aggregateLast(group []schema.Row, col int) schema.Cell {
	for k := len(group) - 1; k >= 0; k-- {
		if c := group[k].Cells[col]; !c.IsMissing() {
			return c
		}
	}
	return schema.MissingCell()
}

func aggregateMean(group []schema.Row, col int) schema.Cell {
	var sum float64
	var n int
	for _, row := range group {
		c := row.Cells[col]
		if c.IsText || c.IsMissing() {
			continue
		}
		sum += c.Num
		n++
	}
	if n == 0 {
		return schema.MissingCell()
	}
	return schema.NumCell(sum / float64(n))
}

// ForwardFill replaces missing cells with the last seen value per column.
// Used for state series (shutters) where a value persists until changed;
// cells before the first observation stay missing.
func ForwardFill(s *schema.Series) *schema.Series {
	if s.Empty() {
		return s
	}

	lastSeen := make([]schema.Cell, len(s.Columns))
	for j := range lastSeen {
		lastSeen[j] = schema.MissingCell()
	}

	out := make([]schema.Row, len(s.Rows))
	for i, row := range s.Rows {
		cells := make([]schema.Cell, len(row.Cells))
		for j, c := range row.Cells {
			if c.IsMissing() && !lastSeen[j].IsMissing() {
				cells[j] = lastSeen[j]
				continue
			}
			cells[j] = c
			if !c.IsMissing() {
				lastSeen[j] = c
			}
		}
		out[i] = schema.Row{Time: row.Time, Cells: cells}
	}
	return s.WithRows(out)
}
