package schema

// Custom string types for type safety.
type (
	// ChangeMode selects how the samplers compute the difference between rows.
	ChangeMode string

	// SeriesClass represents the classification bucket of a series.
	SeriesClass string

	// GrowthStatus represents the outcome of growth-event extraction.
	GrowthStatus string

	// OutputMode represents the format of the report output.
	OutputMode string

	// WriteMethod represents how the spreadsheet export is laid out.
	WriteMethod string

	// StoreBackend represents the database backend for run history.
	StoreBackend string
)

// All change modes supported.
const (
	RelativeChange ChangeMode = "relative" // percent change, pressure-like series
	AbsoluteChange ChangeMode = "absolute" // fixed-unit difference, temperature-like series
)

// All classification buckets.
const (
	PressureClass     SeriesClass = "pressure"
	TemperatureClass  SeriesClass = "temperature"
	CategoricalClass  SeriesClass = "categorical"
	UnclassifiedClass SeriesClass = "unclassified"
)

// All growth extraction outcomes. Data-quality violations are statuses, not
// process failures: bad logs are reported and exported as-is.
const (
	GrowthSingle       GrowthStatus = "single"
	GrowthMultiple     GrowthStatus = "multiple"
	GrowthNone         GrowthStatus = "none"
	GrowthDuplicateErr GrowthStatus = "duplicate-name"
	GrowthUnpairedErr  GrowthStatus = "unpaired"
	GrowthNoMessageLog GrowthStatus = "no-message-log"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All spreadsheet write methods supported.
const (
	SheetsWrite WriteMethod = "sheets" // one sheet per series (default)
	MergedWrite WriteMethod = "merged" // single outer-joined sheet
)

// All run store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// ResampleMethodDiff is the default change-based resampling method; any other
// value for resample-method selects fixed-period time aggregation.
const ResampleMethodDiff = "diff"

// MergedSheetName is the sheet name used for single-sheet exports.
const MergedSheetName = "epic_log_data"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidWriteMethods lists all valid spreadsheet write methods.
var ValidWriteMethods = map[WriteMethod]struct{}{
	SheetsWrite: {},
	MergedWrite: {},
}

// ValidStoreBackends lists all valid run store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// IsError reports whether the growth status is a data-quality violation.
func (g GrowthStatus) IsError() bool {
	return g == GrowthDuplicateErr || g == GrowthUnpairedErr || g == GrowthNoMessageLog
}
