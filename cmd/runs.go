package cmd

import (
	"fmt"

	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mbelabs/epiclog/internal/runstore"
	"github.com/mbelabs/epiclog/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsSetup loads minimal configuration needed for run history operations.
// This is used by commands that need store access without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as the SQLite default
	var backend schema.StoreBackend
	if backendStr == "" {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.StoreBackend(backendStr)
	}
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateStoreConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// openRunStore opens the configured run store.
func openRunStore() contract.RunStore {
	store, err := runstore.NewRunStore(cfg.StoreBackend, cfg.StoreDBConnect)
	if err != nil {
		contract.LogFatal("Failed to open run store", err)
	}
	return store
}

// runsCmd focused on run history management.
//
// Note: Runs subcommands use minimal initialization (runsSetup) instead of the
// full sharedSetup used by the pipeline commands. This avoids date and data
// path validation for simple store operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage export run history and growth event records",
	Long: `Manage the run history recorded with every export.

When enabled, epiclog tracks every export run, storing:
- Run metadata (timestamp, configuration, duration)
- The number of series processed
- Every growth event detected in the event log

This builds a longitudinal record of the growth campaigns processed on a
machine, queryable with ordinary SQL or exported to Parquet for analytics.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  export  - Export history to Parquet for analytics
  clear   - Remove all recorded history
  migrate - Run database schema migrations

Examples:
  # Check run tracking status
  epiclog runs status

  # Export for analysis in pandas/DuckDB
  epiclog runs export --output-file run-history`,
}

// runsStatusCmd shows run store status.
var runsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about the run history store.

Displays:
- Backend type
- Total number of export runs stored
- Last run timestamp
- Database table sizes

Examples:
  # Check run tracking status
  epiclog runs status`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openRunStore()
		defer func() { _ = store.Close() }()
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run store status", err)
		}
		runstore.PrintStatus(status)
	},
}

// runsClearCmd clears the run history.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded run history and growth events",
	Long: `Delete all stored export runs and growth event records.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  epiclog runs export --output-file backup
  epiclog runs clear`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openRunStore()
		defer func() { _ = store.Close() }()
		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// runsExportCmd exports run history to Parquet files.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all recorded run history to Parquet format for use with
analytics tools.

Exports two datasets:
- Runs - metadata about each export execution
- Growth events - every detected growth with its boundaries

Requires: --output-file parameter

Examples:
  # Export all data
  epiclog runs export --output-file run-history

  # Use with DuckDB for analysis
  epiclog runs export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.growth_events.parquet') LIMIT 10"`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openRunStore()
		defer func() { _ = store.Close() }()
		if err := runstore.ExecuteRunsExport(store, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// runsMigrateCmd runs database migrations for the run store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run history store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  epiclog runs migrate

  # Migrate to specific version
  epiclog runs migrate --target-version 1

  # Rollback to initial state
  epiclog runs migrate --target-version 0`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		connStr := cfg.StoreDBConnect
		if cfg.StoreBackend == schema.SQLiteBackend && connStr == "" {
			connStr = contract.GetStoreDBFilePath()
		}
		if err := runstore.Migrate(cfg.StoreBackend, connStr, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
