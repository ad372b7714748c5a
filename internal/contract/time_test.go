package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResamplePeriod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "seconds alias", input: "30S", want: 30 * time.Second},
		{name: "lowercase seconds", input: "30s", want: 30 * time.Second},
		{name: "minutes alias", input: "3T", want: 3 * time.Minute},
		{name: "min suffix", input: "5min", want: 5 * time.Minute},
		{name: "hours alias", input: "2H", want: 2 * time.Hour},
		{name: "days alias", input: "1D", want: 24 * time.Hour},
		{name: "go duration", input: "3m30s", want: 3*time.Minute + 30*time.Second},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "sometimes", wantErr: true},
		{name: "zero amount", input: "0S", wantErr: true},
		{name: "negative go duration", input: "-30s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResamplePeriod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// FuzzParseResamplePeriod fuzzes the period parser with arbitrary strings.
func FuzzParseResamplePeriod(f *testing.F) {
	for _, seed := range []string{"30S", "3T", "2H", "1D", "90s", "", "0S", "-5m", "99999999999999999999S"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		d, err := ParseResamplePeriod(s)
		if err == nil && d <= 0 {
			t.Errorf("ParseResamplePeriod(%q) = %v with nil error", s, d)
		}
	})
}
