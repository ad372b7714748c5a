package contract

import (
	"testing"
	"time"

	"github.com/mbelabs/epiclog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation, for tests to break
// one field at a time.
func validInput(dataPath string) *ConfigRawInput {
	return &ConfigRawInput{
		DataPathStr:    dataPath,
		Date:           "2024-03-17",
		PercentCut:     DefaultPercentCut,
		ValueCut:       DefaultValueCut,
		PreCut:         DefaultPreCut,
		ResampleMethod: schema.ResampleMethodDiff,
		ResamplePeriod: DefaultPeriod,
		WriteMethod:    string(schema.SheetsWrite),
		Output:         string(schema.TextOut),
		Precision:      DefaultPrecision,
		Color:          "yes",
		StoreBackend:   string(schema.SQLiteBackend),
	}
}

func TestProcessAndValidate(t *testing.T) {
	dataPath := t.TempDir()

	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(_ *ConfigRawInput) {},
			expectError: false,
		},
		{
			name:        "missing date",
			mutate:      func(in *ConfigRawInput) { in.Date = "" },
			expectError: true,
		},
		{
			name:        "date with path separator",
			mutate:      func(in *ConfigRawInput) { in.Date = "../2024-03-17" },
			expectError: true,
		},
		{
			name:        "invalid output format",
			mutate:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: true,
		},
		{
			name:        "invalid write method",
			mutate:      func(in *ConfigRawInput) { in.WriteMethod = "columns" },
			expectError: true,
		},
		{
			name:        "invalid precision (zero)",
			mutate:      func(in *ConfigRawInput) { in.Precision = 0 },
			expectError: true,
		},
		{
			name:        "invalid precision (too high)",
			mutate:      func(in *ConfigRawInput) { in.Precision = 3 },
			expectError: true,
		},
		{
			name:        "negative percent cut",
			mutate:      func(in *ConfigRawInput) { in.PercentCut = -1 },
			expectError: true,
		},
		{
			name:        "zero value cut",
			mutate:      func(in *ConfigRawInput) { in.ValueCut = 0 },
			expectError: true,
		},
		{
			name:        "invalid resampling period",
			mutate:      func(in *ConfigRawInput) { in.ResamplePeriod = "sometimes" },
			expectError: true,
		},
		{
			name:        "invalid color value",
			mutate:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: true,
		},
		{
			name:        "invalid store backend",
			mutate:      func(in *ConfigRawInput) { in.StoreBackend = "oracle" },
			expectError: true,
		},
		{
			name: "mysql backend without connection string",
			mutate: func(in *ConfigRawInput) {
				in.StoreBackend = string(schema.MySQLBackend)
			},
			expectError: true,
		},
		{
			name: "mysql backend with valid connection string",
			mutate: func(in *ConfigRawInput) {
				in.StoreBackend = string(schema.MySQLBackend)
				in.StoreDBConnect = "user:pass@tcp(localhost:3306)/epiclog"
			},
			expectError: false,
		},
		{
			name: "postgresql backend with malformed connection string",
			mutate: func(in *ConfigRawInput) {
				in.StoreBackend = string(schema.PostgreSQLBackend)
				in.StoreDBConnect = "localhost:5432"
			},
			expectError: true,
		},
		{
			name:        "nonexistent data path",
			mutate:      func(in *ConfigRawInput) { in.DataPathStr = "/no/such/folder" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput(dataPath)
			tt.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidatePopulatesConfig(t *testing.T) {
	dataPath := t.TempDir()
	input := validInput(dataPath)
	input.ResampleMethod = ""

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "2024-03-17", cfg.Date)
	assert.Equal(t, dataPath, cfg.DataPath)
	assert.Equal(t, 30*time.Second, cfg.ResamplePeriod)
	assert.Equal(t, schema.ResampleMethodDiff, cfg.ResampleMethod) // empty defaults to diff
	assert.False(t, cfg.TimeBased())
	assert.True(t, cfg.UseColors)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
}

func TestConfigPaths(t *testing.T) {
	cfg := &Config{DataPath: "/data/mbe", Date: "2024-03-17"}

	assert.Equal(t, "/data/mbe/2024-03-17", cfg.DateDir())
	assert.Equal(t, "/data/mbe/mbe_data_2024-03-17.xlsx", cfg.SpreadsheetPath())
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Date: "2024-03-17", PercentCut: 0.5}
	clone := cfg.Clone()
	clone.Date = "2024-03-18"

	assert.Equal(t, "2024-03-17", cfg.Date)
	assert.Equal(t, "2024-03-18", clone.Date)
	assert.Equal(t, cfg.PercentCut, clone.PercentCut)
}
