package core

import (
	"math"

	"github.com/mbelabs/epiclog/schema"
)

// ThresholdSample retains the rows whose instantaneous change versus the
// immediately preceding row is significant: at least one column changed at
// all, and the primary (first) column changed by at least threshold in
// absolute terms. Relative mode divides by the previous value, absolute mode
// subtracts.
//
// Row 0 has no preceding row, so its undefined changes are substituted with
// threshold+1. The substitution makes the first row always pass; the same
// rule applies to any later undefined change (missing data), which is
// therefore retained rather than dropped.
func ThresholdSample(s *schema.Series, mode schema.ChangeMode, threshold float64) *schema.Series {
	if s.Empty() {
		return s.WithRows(nil)
	}

	kept := make([]schema.Row, 0, len(s.Rows))
	for i, row := range s.Rows {
		changes := make([]float64, len(row.Cells))
		for j := range row.Cells {
			if i == 0 {
				changes[j] = math.NaN()
			} else {
				changes[j] = changeValue(mode, s.Rows[i-1].Cells[j], row.Cells[j])
			}
		}
		for j, c := range changes {
			if math.IsNaN(c) {
				changes[j] = threshold + 1
			}
		}
		if anyNonZero(changes) && math.Abs(changes[0]) >= threshold {
			kept = append(kept, row)
		}
	}
	return s.WithRows(kept)
}

// anyNonZero reports whether at least one column changed between two rows.
func anyNonZero(changes []float64) bool {
	for _, c := range changes {
		if c != 0 {
			return true
		}
	}
	return false
}
