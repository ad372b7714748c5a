package core

import (
	"testing"
	"time"

	"github.com/mbelabs/epiclog/schema"
	"github.com/stretchr/testify/assert"
)

func TestAccumulatedSample(t *testing.T) {
	tests := []struct {
		name      string
		mode      schema.ChangeMode
		threshold float64
		values    []float64
		want      []time.Time
	}{
		{
			name:      "relative drift against last kept baseline",
			mode:      schema.RelativeChange,
			threshold: 2,
			values:    []float64{10.0, 10.05, 10.5, 11.0},
			// 10.05 is 0.5% from 10.0, below threshold. 10.5 is 5% from
			// 10.0 and becomes the new baseline; 11.0 is ~4.8% from 10.5.
			want: minutes(0, 2, 3),
		},
		{
			name:      "slow drift caught once the sum crosses",
			mode:      schema.RelativeChange,
			threshold: 2,
			values:    []float64{10.0, 10.05, 10.1, 10.15, 10.2, 10.25},
			want:      minutes(0, 4),
		},
		{
			name:      "absolute drift",
			mode:      schema.AbsoluteChange,
			threshold: 0.2,
			values:    []float64{100, 100.04, 100.3, 100.34},
			want:      minutes(0, 2),
		},
		{
			name:      "all rows below threshold keeps only the seed",
			mode:      schema.AbsoluteChange,
			threshold: 5,
			values:    []float64{50, 50.1, 50.2},
			want:      minutes(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := numSeries("test", "IG_pressure", tt.values...)
			got := AccumulatedSample(s, tt.mode, tt.threshold)
			assert.Equal(t, tt.want, rowTimes(got))
		})
	}
}

func TestAccumulatedSampleSeedInvariant(t *testing.T) {
	// Row 0 of any non-empty input is present, unmodified, in the output.
	s := numSeries("test", "PID_temp", 42.5, 42.6, 99)
	got := AccumulatedSample(s, schema.AbsoluteChange, 1)
	assert.NotEmpty(t, got.Rows)
	assert.Equal(t, s.Rows[0], got.Rows[0])
}

func TestAccumulatedSampleEmpty(t *testing.T) {
	s := numSeries("empty", "IG_pressure")
	got := AccumulatedSample(s, schema.RelativeChange, 2)
	assert.True(t, got.Empty())
}

func TestAccumulatedSampleMissingSeed(t *testing.T) {
	// A seed without a usable primary value anchors no baseline; nothing
	// downstream has a computable change.
	s := &schema.Series{
		Name:    "broken",
		Columns: []string{"IG_pressure"},
		Rows: []schema.Row{
			{Time: baseTime, Cells: []schema.Cell{schema.MissingCell()}},
			{Time: baseTime.Add(time.Minute), Cells: []schema.Cell{schema.NumCell(10)}},
		},
	}
	got := AccumulatedSample(s, schema.RelativeChange, 2)
	assert.True(t, got.Empty())
}
