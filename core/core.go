// Package core implements the sampling, classification, time-aggregation,
// growth-extraction and merge algorithms that turn raw EPIC log series into
// export-ready tables. Stages return new series and structured results;
// nothing in this package prints.
package core

import (
	"math"
	"time"

	"github.com/mbelabs/epiclog/schema"
)

// changeValue computes the difference between two cells under the given
// mode. Text or missing cells yield NaN: an undefined change, handled by
// each sampler's own substitution rule.
func changeValue(mode schema.ChangeMode, prev, cur schema.Cell) float64 {
	if prev.IsText || cur.IsText || prev.IsMissing() || cur.IsMissing() {
		return math.NaN()
	}
	if mode == schema.RelativeChange {
		return (cur.Num - prev.Num) / prev.Num
	}
	return cur.Num - prev.Num
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// timeFromNanos converts a Unix nanosecond key back to a time.Time in UTC.
func timeFromNanos(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}

// primaryValue returns the numeric value of the first payload column, or NaN
// when the row has no usable primary value.
func primaryValue(row schema.Row) float64 {
	if len(row.Cells) == 0 {
		return math.NaN()
	}
	c := row.Cells[0]
	if c.IsText {
		return math.NaN()
	}
	return c.Num
}
