package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mbelabs/epiclog/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteGrowthReport outputs the growth findings of the event-log series,
// dispatching based on the output format configured.
func WriteGrowthReport(batch *schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	reports := eventLogReports(batch)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, reports)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGrowthCSV(w, reports)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGrowthTable(w, batch, reports, cfg, duration)
		}, "Wrote table")
	}
}

// eventLogReports filters the batch down to the series that actually carry
// an event log.
func eventLogReports(batch *schema.BatchResult) []schema.SeriesReport {
	var out []schema.SeriesReport
	for _, r := range batch.Reports {
		if r.Growth != nil && r.Growth.Status != schema.GrowthNoMessageLog {
			out = append(out, r)
		}
	}
	return out
}

func writeGrowthCSV(w io.Writer, reports []schema.SeriesReport) error {
	header := []string{"series", "status", "object", "start", "end", "start_from", "start_to", "end_from", "end_to"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range reports {
			status := contract.GetPlainStatus(r.Growth.Status)
			if len(r.Growth.Events) == 0 {
				if err := cw.Write([]string{r.Name, status, "", "", "", "", "", "", ""}); err != nil {
					return err
				}
				continue
			}
			for _, ev := range r.Growth.Events {
				record := []string{
					r.Name,
					status,
					ev.Object,
					ev.Start.Format(contract.DateTimeFormat),
					ev.End.Format(contract.DateTimeFormat),
					ev.StartFrom,
					ev.StartTo,
					ev.EndFrom,
					ev.EndTo,
				}
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func writeGrowthTable(w io.Writer, batch *schema.BatchResult, reports []schema.SeriesReport, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Series", "Object", "Start", "End", "From", "To", "Status"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, r := range reports {
		status := contract.GetPlainStatus(r.Growth.Status)
		if cfg.UseColors {
			status = contract.GetColorStatus(r.Growth.Status)
		}
		if len(r.Growth.Events) == 0 {
			data = append(data, []string{r.Name, "", "", "", "", "", status})
			continue
		}
		for _, ev := range r.Growth.Events {
			data = append(data, []string{
				r.Name,
				ev.Object,
				ev.Start.Format(contract.DateTimeFormat),
				ev.End.Format(contract.DateTimeFormat),
				ev.StartFrom,
				ev.EndTo,
				status,
			})
		}
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, r := range reports {
		fmt.Fprintln(w, r.Growth.Message)
		for _, d := range r.Growth.Diagnostics {
			fmt.Fprintln(w, d)
		}
	}
	_, err := fmt.Fprintf(w, "Scanned %d series for %s in %v\n", len(batch.Reports), batch.Date, duration)
	return err
}
