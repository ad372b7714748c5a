package cmd

import (
	"github.com/mbelabs/epiclog/core"
	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mbelabs/epiclog/internal/runstore"
	"github.com/spf13/cobra"
)

// exportCmd runs the full pipeline and writes the xlsx workbook.
var exportCmd = &cobra.Command{
	Use:   "export [data-path]",
	Short: "Resample one day of EPIC logs and export them to xlsx.",
	Long: `Load every log file for the configured date, compact each series and
write the result to an xlsx workbook next to the date folder.

Pressure-like series (ion gauges, MIG, PG) are sampled by relative change,
temperature-like series (PID loops, pyrometers) by absolute change. Wide
series such as the event log pass through untouched in the default diff
mode; use --resample-method time for fixed-period aggregation instead.

The event log is scanned for growth events on every run, and the findings
are printed with the batch report and recorded in the run history store.

Examples:
  # Export with the default change-based sampling
  epiclog export --date 2024-03-17 /data/mbe

  # Coarser compaction for long growth campaigns
  epiclog export --date 2024-03-17 --percent-cut 2 --value-cut 0.5 /data/mbe

  # One time-aligned sheet instead of one sheet per series
  epiclog export --date 2024-03-17 --write-method merged /data/mbe

  # Fixed 3-minute buckets
  epiclog export --date 2024-03-17 --resample-method time --resampling-period 3T /data/mbe`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := runstore.NewRunStore(cfg.StoreBackend, cfg.StoreDBConnect)
		if err != nil {
			// Run tracking is best effort; the export still happens.
			contract.LogWarn("opening run store", err)
			store = nil
		}
		if store != nil {
			defer func() { _ = store.Close() }()
		}
		if err := core.ExecuteExport(cfg, store); err != nil {
			contract.LogFatal("Cannot export logs", err)
		}
	},
}
