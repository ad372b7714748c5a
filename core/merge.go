package core

import (
	"sort"

	"github.com/mbelabs/epiclog/schema"
)

// MergeSeries outer-joins all series on timestamp into one table for the
// single-sheet export. The merged row set is the sorted union of every
// series' timestamps; a series with no row at a given timestamp contributes
// missing cells there. Duplicate timestamps within one series collapse to
// the last row. Column names colliding across series are qualified with the
// owning series name.
func MergeSeries(list []*schema.Series) *schema.Series {
	merged := &schema.Series{Name: schema.MergedSheetName}
	if len(list) == 0 {
		return merged
	}

	// Sorted union of all timestamps.
	stampSet := make(map[int64]struct{})
	for _, s := range list {
		for _, row := range s.Rows {
			stampSet[row.Time.UnixNano()] = struct{}{}
		}
	}
	stamps := make([]int64, 0, len(stampSet))
	for t := range stampSet {
		stamps = append(stamps, t)
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i] < stamps[j] })
	rowIdx := make(map[int64]int, len(stamps))
	for i, t := range stamps {
		rowIdx[t] = i
	}

	var columns []string
	used := make(map[string]struct{})
	rows := make([]schema.Row, len(stamps))
	for i, t := range stamps {
		rows[i] = schema.Row{Time: timeFromNanos(t)}
	}

	for _, s := range list {
		base := len(columns)
		for _, col := range s.Columns {
			name := col
			if _, taken := used[name]; taken {
				name = s.Name + "_" + col
			}
			used[name] = struct{}{}
			columns = append(columns, name)
		}
		for i := range rows {
			for range s.Columns {
				rows[i].Cells = append(rows[i].Cells, schema.MissingCell())
			}
		}
		for _, row := range s.Rows {
			i := rowIdx[row.Time.UnixNano()]
			for j, c := range row.Cells {
				if j < len(s.Columns) {
					rows[i].Cells[base+j] = c
				}
			}
		}
	}

	merged.Columns = columns
	merged.Rows = rows
	return merged
}
