package core

import (
	"testing"
	"time"

	"github.com/mbelabs/epiclog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSeries(t *testing.T) {
	a := numSeries("gauge", "IG_pressure", 1, 2)          // rows at minute 0, 1
	b := numSeries("pyro", "Pyro_reading", 600, 610, 620) // rows at minute 0, 1, 2
	b.Rows[2].Time = baseTime.Add(5 * time.Minute)

	got := MergeSeries([]*schema.Series{a, b})

	assert.Equal(t, schema.MergedSheetName, got.Name)
	assert.Equal(t, []string{"IG_pressure", "Pyro_reading"}, got.Columns)
	require.Len(t, got.Rows, 3)

	// Sorted union of both timestamp sets.
	assert.Equal(t, minutes(0, 1, 5), rowTimes(got))

	// The gauge has no row at minute 5.
	assert.Equal(t, 2.0, got.Rows[1].Cells[0].Num)
	assert.True(t, got.Rows[2].Cells[0].IsMissing())
	assert.Equal(t, 620.0, got.Rows[2].Cells[1].Num)
}

func TestMergeSeriesRoundTrip(t *testing.T) {
	// Splitting the merged table by column ownership reproduces each
	// series' timestamp set: a row belongs to a series iff its cell for
	// that series is present.
	a := numSeries("a", "IG_a", 1, 2, 3)
	b := numSeries("b", "PID_b", 7, 8)
	b.Rows[0].Time = baseTime.Add(30 * time.Second)
	b.Rows[1].Time = baseTime.Add(90 * time.Second)

	got := MergeSeries([]*schema.Series{a, b})
	require.Len(t, got.Rows, 5)

	var aTimes, bTimes []time.Time
	for _, row := range got.Rows {
		if !row.Cells[0].IsMissing() {
			aTimes = append(aTimes, row.Time)
		}
		if !row.Cells[1].IsMissing() {
			bTimes = append(bTimes, row.Time)
		}
	}
	assert.Equal(t, rowTimes(a), aTimes)
	assert.Equal(t, rowTimes(b), bTimes)
}

func TestMergeSeriesColumnCollision(t *testing.T) {
	a := numSeries("chamber", "Pressure", 1)
	b := numSeries("loadlock", "Pressure", 2)

	got := MergeSeries([]*schema.Series{a, b})
	assert.Equal(t, []string{"Pressure", "loadlock_Pressure"}, got.Columns)
}

func TestMergeSeriesDuplicateTimestamps(t *testing.T) {
	// Duplicate timestamps within one series collapse to the last row.
	a := numSeries("gauge", "IG_pressure", 1, 2)
	a.Rows[1].Time = a.Rows[0].Time

	got := MergeSeries([]*schema.Series{a})
	require.Len(t, got.Rows, 1)
	assert.Equal(t, 2.0, got.Rows[0].Cells[0].Num)
}

func TestMergeSeriesEmpty(t *testing.T) {
	got := MergeSeries(nil)
	assert.True(t, got.Empty())
	assert.Empty(t, got.Columns)
}
