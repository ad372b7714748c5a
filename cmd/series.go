package cmd

import (
	"github.com/mbelabs/epiclog/core"
	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/spf13/cobra"
)

// seriesCmd lists the series of a date folder without exporting.
var seriesCmd = &cobra.Command{
	Use:   "series [data-path]",
	Short: "List and classify the log series of one date folder.",
	Long: `Load the log files for the configured date and print an inventory of
the series found, without writing a spreadsheet.

For each series the report shows its classification (pressure, temperature,
categorical or unclassified), the column count, the row counts before and
after resampling, and the operator comment from the file header.

Useful for checking what a date folder contains and how aggressively the
current thresholds compact it before committing to an export.

Examples:
  # Inspect a date folder
  epiclog series --date 2024-03-17 /data/mbe

  # See how a tighter percent cut changes the kept rows
  epiclog series --date 2024-03-17 --percent-cut 0.1 /data/mbe

  # Machine-readable inventory
  epiclog series --date 2024-03-17 --output json /data/mbe`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeries(cfg); err != nil {
			contract.LogFatal("Cannot list series", err)
		}
	},
}
