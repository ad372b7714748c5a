package runstore

import (
	"errors"
	"fmt"

	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mbelabs/epiclog/internal/parquet"
)

// ExecuteRunsExport exports the run history to Parquet files.
func ExecuteRunsExport(store contract.RunStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total growth events: %d\n", status.TableSizes[growthEventsTable])

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	events, err := store.GetAllGrowthEvents()
	if err != nil {
		return fmt.Errorf("failed to retrieve growth events: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetEvents := parquet.ConvertGrowthEventRecords(events)

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	eventsFile := outputFile + ".growth_events.parquet"
	if err := parquet.WriteGrowthEventsParquet(parquetEvents, eventsFile); err != nil {
		return fmt.Errorf("failed to write growth events: %w", err)
	}
	fmt.Printf("Exported %d growth events to: %s\n", len(parquetEvents), eventsFile)

	return nil
}
