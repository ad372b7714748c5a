package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mbelabs/epiclog/schema"
)

// Growth status label constants.
const (
	SingleValue    = "Single"    // one growth interval
	MultipleValue  = "Multiple"  // several growth intervals
	NoGrowthValue  = "None"      // valid terminal state
	DataErrorValue = "DataError" // pairing or naming violation
	NoLogValue     = "NoLog"     // no message column found
)

// Color variables for console output.
var (
	GrowthColor    = color.New(color.FgGreen, color.Bold) // growthColor marks detected intervals.
	NoGrowthColor  = color.New(color.FgCyan)              // noGrowthColor is informational.
	DataErrorColor = color.New(color.FgRed, color.Bold)   // dataErrorColor marks data-quality violations.
	NoLogColor     = color.New(color.FgYellow)            // noLogColor marks missing event logs.
)

// GetPlainStatus returns a plain text label for a growth status. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainStatus(status schema.GrowthStatus) string {
	switch status {
	case schema.GrowthSingle:
		return SingleValue
	case schema.GrowthMultiple:
		return MultipleValue
	case schema.GrowthNone:
		return NoGrowthValue
	case schema.GrowthDuplicateErr, schema.GrowthUnpairedErr:
		return DataErrorValue
	default:
		return NoLogValue
	}
}

// GetColorStatus returns a colored text label for console output (table).
// It uses GetPlainStatus to determine the string, then applies the color.
func GetColorStatus(status schema.GrowthStatus) string {
	text := GetPlainStatus(status)

	switch text {
	case SingleValue, MultipleValue:
		return GrowthColor.Sprint(text)
	case DataErrorValue:
		return DataErrorColor.Sprint(text)
	case NoLogValue:
		return NoLogColor.Sprint(text)
	default: // "None"
		return NoGrowthColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for report output.
// An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for run history.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".epiclog_runs.db"
	}
	return filepath.Join(homeDir, ".epiclog_runs.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// TruncateText shortens a string for table display, appending an ellipsis
// when it was cut.
func TruncateText(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 3 || len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// TruncateSheetName trims a series name to the 31-character limit imposed by
// the xlsx format. Requires no ellipsis: operators match sheets by prefix.
func TruncateSheetName(name string) string {
	const maxSheetName = 31
	runes := []rune(name)
	if len(runes) > maxSheetName {
		return string(runes[:maxSheetName])
	}
	return name
}
