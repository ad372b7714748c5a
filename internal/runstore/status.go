package runstore

import (
	"fmt"

	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mbelabs/epiclog/schema"
)

// PrintStatus prints the run history statistics for the status command.
func PrintStatus(status *schema.StoreStatus) {
	fmt.Printf("Run Store Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		fmt.Println("Run tracking is disabled.")
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.LastRun != nil {
		fmt.Printf("Last Run: %s\n", status.LastRun.Format(contract.DateTimeFormat))
	}
	fmt.Println("Table Sizes:")
	for _, table := range []string{runsTable, growthEventsTable} {
		fmt.Printf("  %s: %d rows\n", table, status.TableSizes[table])
	}
}
