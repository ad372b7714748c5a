package cmd

import (
	"github.com/mbelabs/epiclog/core"
	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/spf13/cobra"
)

// growthCmd reports growth events without exporting.
var growthCmd = &cobra.Command{
	Use:   "growth [data-path]",
	Short: "Detect growth events in the event log of one date folder.",
	Long: `Scan the event log for sample holder movements and report the growth
events of the configured date, without writing a spreadsheet.

A growth is bounded by a pair of "moved from ... to ..." messages for the
same sample holder; movements of the Mirror fixture are ignored. The report
shows each growth's start and end time and the locations the holder moved
between. Data-quality problems (duplicate holder names, unpaired movements)
are reported as statuses, not failures.

Examples:
  # Report the growths of one day
  epiclog growth --date 2024-03-17 /data/mbe

  # Export the findings as CSV for the lab notebook
  epiclog growth --date 2024-03-17 --output csv --output-file growths.csv /data/mbe`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGrowth(cfg); err != nil {
			contract.LogFatal("Cannot detect growths", err)
		}
	},
}
