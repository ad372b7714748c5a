package contract

import (
	"testing"

	"github.com/mbelabs/epiclog/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetPlainStatus(t *testing.T) {
	tests := []struct {
		name   string
		status schema.GrowthStatus
		want   string
	}{
		{name: "single growth", status: schema.GrowthSingle, want: SingleValue},
		{name: "multiple growths", status: schema.GrowthMultiple, want: MultipleValue},
		{name: "no growth", status: schema.GrowthNone, want: NoGrowthValue},
		{name: "duplicate name", status: schema.GrowthDuplicateErr, want: DataErrorValue},
		{name: "unpaired movement", status: schema.GrowthUnpairedErr, want: DataErrorValue},
		{name: "no message log", status: schema.GrowthNoMessageLog, want: NoLogValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPlainStatus(tt.status))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{input: "yes", want: true},
		{input: "YES", want: true},
		{input: "true", want: true},
		{input: "1", want: true},
		{input: "no", want: false},
		{input: "false", want: false},
		{input: "0", want: false},
		{input: "maybe", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "a very ...", TruncateText("a very long comment", 10))
	assert.Equal(t, "ab", TruncateText("ab", 2))
	// maxLen too small for an ellipsis leaves the string alone
	assert.Equal(t, "abcdef", TruncateText("abcdef", 3))
}

func TestTruncateSheetName(t *testing.T) {
	assert.Equal(t, "IG_chamber", TruncateSheetName("IG_chamber"))

	long := "a_series_name_well_over_the_thirty_one_character_limit"
	got := TruncateSheetName(long)
	assert.Len(t, got, 31)
	assert.Equal(t, long[:31], got)
}
