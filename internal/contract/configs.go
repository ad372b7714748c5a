// Package contract has the validated configuration, shared helpers and store
// contracts used by all parts of epiclog.
package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mbelabs/epiclog/schema"
)

// Default values for configuration.
const (
	DefaultPercentCut = 0.5  // relative accumulated threshold, percent
	DefaultValueCut   = 0.2  // absolute accumulated threshold, fixed units
	DefaultPreCut     = 0.01 // threshold-sampler pre-cut before accumulation
	DefaultPeriod     = "30S"
	DefaultPrecision  = 1
)

// DateTimeFormat is the timestamp representation used in reports and exports.
const DateTimeFormat = "2006-01-02 15:04:05"

// Config holds the runtime configuration for a pipeline run.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath string // Absolute path to the data root folder
	Date     string // Date folder / file-name suffix, e.g. "2024-03-17"

	PercentCut float64 // Relative accumulated threshold (percent)
	ValueCut   float64 // Absolute accumulated threshold (fixed units)
	PreCut     float64 // Threshold-sampler cut applied before accumulation

	ResampleMethod string        // "diff" (change-based, default) or anything else for time-based
	ResamplePeriod time.Duration // Bucket width for time-based aggregation

	WriteMethod schema.WriteMethod // One sheet per series vs single merged sheet
	Output      schema.OutputMode
	OutputFile  string
	Precision   int
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	StoreBackend   schema.StoreBackend
	StoreDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataPathStr string

	Date           string  `mapstructure:"date"`
	PercentCut     float64 `mapstructure:"percent-cut"`
	ValueCut       float64 `mapstructure:"value-cut"`
	PreCut         float64 `mapstructure:"pre-cut"`
	ResampleMethod string  `mapstructure:"resample-method"`
	ResamplePeriod string  `mapstructure:"resampling-period"`
	WriteMethod    string  `mapstructure:"write-method"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Precision      int     `mapstructure:"precision"`
	Width          int     `mapstructure:"width"`
	Color          string  `mapstructure:"color"`
	StoreBackend   string  `mapstructure:"store-backend"`
	StoreDBConnect string  `mapstructure:"store-db-connect"`
}

// TimeBased reports whether fixed-period aggregation was requested instead of
// the change-based default.
func (c *Config) TimeBased() bool {
	return c.ResampleMethod != schema.ResampleMethodDiff
}

// DateDir returns the folder holding the input files for the configured date.
func (c *Config) DateDir() string {
	return filepath.Join(c.DataPath, c.Date)
}

// SpreadsheetPath returns the export destination for the configured date.
func (c *Config) SpreadsheetPath() string {
	return filepath.Join(c.DataPath, "mbe_data_"+c.Date+".xlsx")
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	if err := processResampling(cfg, input); err != nil {
		return err
	}
	if err := validateStoreConfig(cfg, input); err != nil {
		return err
	}
	return resolveDataPath(cfg, input)
}

// validateSimpleInputs processes and validates all non-threshold fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Date validation ---
	date := strings.TrimSpace(input.Date)
	if date == "" {
		return fmt.Errorf("--date is required (folder name under the data path, e.g. 2024-03-17)")
	}
	if strings.ContainsAny(date, `/\`) {
		return fmt.Errorf("invalid date %q: must be a plain folder name, not a path", date)
	}
	cfg.Date = date

	// --- 2. Output validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	cfg.WriteMethod = schema.WriteMethod(strings.ToLower(input.WriteMethod))
	if _, ok := schema.ValidWriteMethods[cfg.WriteMethod]; !ok {
		return fmt.Errorf("invalid write method '%s'. must be sheets, merged", input.WriteMethod)
	}

	// --- 3. Precision and width ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision
	cfg.Width = input.Width

	// --- 4. Color flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	return nil
}

// processThresholds validates the sampling cuts.
func processThresholds(cfg *Config, input *ConfigRawInput) error {
	if input.PercentCut <= 0 {
		return fmt.Errorf("percent-cut must be greater than 0 (received %g)", input.PercentCut)
	}
	if input.ValueCut <= 0 {
		return fmt.Errorf("value-cut must be greater than 0 (received %g)", input.ValueCut)
	}
	if input.PreCut <= 0 {
		return fmt.Errorf("pre-cut must be greater than 0 (received %g)", input.PreCut)
	}
	cfg.PercentCut = input.PercentCut
	cfg.ValueCut = input.ValueCut
	cfg.PreCut = input.PreCut
	return nil
}

// processResampling validates the resample method and parses the period.
func processResampling(cfg *Config, input *ConfigRawInput) error {
	cfg.ResampleMethod = strings.TrimSpace(input.ResampleMethod)
	if cfg.ResampleMethod == "" {
		cfg.ResampleMethod = schema.ResampleMethodDiff
	}

	period, err := ParseResamplePeriod(input.ResamplePeriod)
	if err != nil {
		return fmt.Errorf("invalid resampling-period: %w", err)
	}
	cfg.ResamplePeriod = period
	return nil
}

// validateStoreConfig validates the run store backend configuration.
func validateStoreConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.StoreBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateStoreConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// ValidateStoreConnectionString validates the format of database connection
// strings for the MySQL and PostgreSQL backends.
func ValidateStoreConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// resolveDataPath resolves the data root folder and checks it exists.
func resolveDataPath(cfg *Config, input *ConfigRawInput) error {
	searchPath := input.DataPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absPath = filepath.Clean(absPath)

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("data path does not exist: %s", absPath)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path is not a directory: %s", absPath)
	}

	cfg.DataPath = absPath
	return nil
}

// Clone returns a copy of the configuration, safe to mutate per request.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigParams returns the configuration snapshot recorded with each run.
func (c *Config) ConfigParams() map[string]any {
	return map[string]any{
		"date":            c.Date,
		"data_path":       c.DataPath,
		"percent_cut":     c.PercentCut,
		"value_cut":       c.ValueCut,
		"resample_method": c.ResampleMethod,
		"period":          c.ResamplePeriod.String(),
		"write_method":    string(c.WriteMethod),
	}
}
