package core

import (
	"math"

	"github.com/mbelabs/epiclog/schema"
)

// AccumulatedSample retains the rows whose change versus the last retained
// row crosses the threshold. Unlike ThresholdSample, which compares only
// adjacent rows and misses slow drift, the baseline here is the last kept
// point, so many small sub-threshold steps are caught once their sum crosses
// the threshold.
//
// Row 0 of the input is always retained as the seed baseline. The change is
// computed on the primary (first) column only, expressed as a percentage in
// relative mode, and rounded to one decimal place before comparison. Rows
// with no computable change (missing primary value) are dropped.
func AccumulatedSample(s *schema.Series, mode schema.ChangeMode, threshold float64) *schema.Series {
	if s.Empty() {
		return s
	}

	seed := s.Rows[0]
	baseline := primaryValue(seed)
	kept := []schema.Row{seed}
	for _, row := range s.Rows[1:] {
		v := primaryValue(row)
		if math.IsNaN(v) || math.IsNaN(baseline) {
			continue
		}
		change := v - baseline
		if mode == schema.RelativeChange {
			change = change / baseline * 100
		}
		if math.Abs(round1(change)) >= threshold {
			kept = append(kept, row)
			baseline = v
		}
	}

	// A seed with no usable primary value cannot anchor a baseline; the
	// whole table has no computable change and is dropped.
	if math.IsNaN(primaryValue(seed)) {
		return s.WithRows(nil)
	}
	return s.WithRows(kept)
}
