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

// WriteSeriesReport outputs the series inventory for a date folder,
// dispatching based on the output format configured.
func WriteSeriesReport(batch *schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	_, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, batch)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesCSV(w, batch, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesTable(w, batch, cfg, intFmt, duration)
		}, "Wrote table")
	}
}

func writeSeriesCSV(w io.Writer, batch *schema.BatchResult, intFmt string) error {
	header := []string{"series", "class", "columns", "rows_in", "rows_out", "comment"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range batch.Reports {
			record := []string{
				r.Name,
				string(r.Class),
				fmt.Sprintf(intFmt, r.Columns),
				fmt.Sprintf(intFmt, r.RowsIn),
				fmt.Sprintf(intFmt, r.RowsOut),
				r.Comment,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeSeriesTable(w io.Writer, batch *schema.BatchResult, cfg *contract.Config, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Series", "Class", "Cols", "Rows In", "Rows Out", "Comment"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxComment := getMaxCommentWidth(cfg)
	var data [][]string
	for _, r := range batch.Reports {
		data = append(data, []string{
			r.Name,
			string(r.Class),
			fmt.Sprintf(intFmt, r.Columns),
			fmt.Sprintf(intFmt, r.RowsIn),
			fmt.Sprintf(intFmt, r.RowsOut),
			contract.TruncateText(r.Comment, maxComment),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, d := range batch.Diagnostics {
		fmt.Fprintln(w, d)
	}
	_, err := fmt.Fprintf(w, "Found %d series for %s in %v\n", len(batch.Reports), batch.Date, duration)
	return err
}
