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

// WriteBatchReport outputs the per-series processing report after an export,
// dispatching based on the output format configured.
func WriteBatchReport(batch *schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, batch)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchCSV(w, batch, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(w, batch, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
}

// writeBatchCSV writes one record per series.
func writeBatchCSV(w io.Writer, batch *schema.BatchResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"series", "class", "rows_in", "rows_out", "columns", "kept_pct", "growth_status", "growth_message"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range batch.Reports {
			var status, message string
			if r.Growth != nil {
				status = contract.GetPlainStatus(r.Growth.Status)
				message = r.Growth.Message
			}
			record := []string{
				r.Name,
				string(r.Class),
				fmt.Sprintf(intFmt, r.RowsIn),
				fmt.Sprintf(intFmt, r.RowsOut),
				fmt.Sprintf(intFmt, r.Columns),
				fmtFloat(keptPercent(r.RowsIn, r.RowsOut)),
				status,
				message,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeBatchTable generates and writes the human-readable table.
func writeBatchTable(w io.Writer, batch *schema.BatchResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Series", "Class", "Rows In", "Rows Out", "Kept %", "Growth"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range batch.Reports {
		var status string
		if r.Growth != nil {
			if cfg.UseColors {
				status = contract.GetColorStatus(r.Growth.Status)
			} else {
				status = contract.GetPlainStatus(r.Growth.Status)
			}
		}
		data = append(data, []string{
			r.Name,
			string(r.Class),
			fmt.Sprintf(intFmt, r.RowsIn),
			fmt.Sprintf(intFmt, r.RowsOut),
			fmtFloat(keptPercent(r.RowsIn, r.RowsOut)),
			status,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	writeGrowthLines(w, batch)
	for _, d := range batch.Diagnostics {
		fmt.Fprintln(w, d)
	}
	if batch.OutputPath != "" {
		fmt.Fprintf(w, "file successfully exported to %s\n", batch.OutputPath)
	}
	_, err := fmt.Fprintf(w, "Processed %d series for %s in %v\n", len(batch.Reports), batch.Date, duration)
	return err
}

// writeGrowthLines prints the growth findings of the event-log series. The
// NoLog status on ordinary numeric series carries no findings and shows up
// only in the table column.
func writeGrowthLines(w io.Writer, batch *schema.BatchResult) {
	for _, r := range batch.Reports {
		g := r.Growth
		if g == nil || g.Status == schema.GrowthNoMessageLog {
			continue
		}
		fmt.Fprintln(w, g.Message)
		for _, d := range g.Diagnostics {
			fmt.Fprintln(w, d)
		}
	}
}
