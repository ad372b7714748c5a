// Package cmd defines the command-line interface for epiclog.
package cmd

import (
	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mbelabs/epiclog/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(growthCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("date", "d", "", "Date folder under the data path (e.g. 2024-03-17)")
	rootCmd.PersistentFlags().Float64("percent-cut", contract.DefaultPercentCut, "Relative accumulated-change threshold in percent for pressure series")
	rootCmd.PersistentFlags().Float64("value-cut", contract.DefaultValueCut, "Absolute accumulated-change threshold for temperature series")
	rootCmd.PersistentFlags().Float64("pre-cut", contract.DefaultPreCut, "Threshold-sampler cut applied before accumulation")
	rootCmd.PersistentFlags().String("resample-method", schema.ResampleMethodDiff, "Resampling method: diff (change-based) or time (fixed-period)")
	rootCmd.PersistentFlags().String("resampling-period", contract.DefaultPeriod, "Bucket width for time-based aggregation (e.g. 30S, 3T, 2H)")
	rootCmd.PersistentFlags().String("write-method", string(schema.SheetsWrite), "Spreadsheet layout: sheets (one per series) or merged (single sheet)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
