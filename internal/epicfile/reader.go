// Package epicfile reads EPIC log files into series. Each file carries one
// comment line, one column-header line and timestamped data rows.
package epicfile

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mbelabs/epiclog/schema"
)

// dateLayouts are the timestamp formats seen in EPIC logs. EPIC writes
// day-first dates, with occasional variation in the separator.
var dateLayouts = []string{
	"02.01.2006 15:04:05",
	"02/01/2006 15:04:05",
	"02-01-2006 15:04:05",
	"2006-01-02 15:04:05",
	"02.01.2006 15:04",
	"02/01/2006 15:04",
}

// sanitizer normalizes column names: backticks dropped, dots and spaces
// replaced with underscores so the names survive as identifiers everywhere
// downstream.
var sanitizer = strings.NewReplacer("'", "", ".", "_", " ", "_")

// Read loads one EPIC log file into a series. The timestamp column becomes
// the row key and is never a payload column; rows come out ordered by time.
func Read(path string) (*schema.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	commentLine, err := br.ReadString('\n')
	if err != nil && commentLine == "" {
		return nil, fmt.Errorf("reading comment line: %w", err)
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading column header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		name := sanitizer.Replace(strings.TrimSpace(h))
		// Some log generations label the timestamp column differently.
		if name == "Date&Time" {
			name = "Date"
		}
		columns[i] = name
	}

	dateIdx := -1
	for i, c := range columns {
		if c == "Date" {
			dateIdx = i
			break
		}
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("no Date column in header of %s", path)
	}

	payload := make([]string, 0, len(columns)-1)
	for i, c := range columns {
		if i != dateIdx {
			payload = append(payload, c)
		}
	}

	var rows []schema.Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if dateIdx >= len(record) {
			continue
		}
		ts, err := parseTimestamp(record[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		cells := make([]schema.Cell, len(payload))
		k := 0
		for i, field := range record {
			if i == dateIdx {
				continue
			}
			if k == len(payload) {
				break
			}
			cells[k] = parseCell(field)
			k++
		}
		for ; k < len(payload); k++ {
			cells[k] = schema.MissingCell()
		}
		rows = append(rows, schema.Row{Time: ts, Cells: cells})
	}

	// Downstream bucketing assumes time order. Stable, so duplicate
	// timestamps keep their file order.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Time.Before(rows[j].Time) })

	return &schema.Series{
		Name:    SeriesName(path),
		Comment: sanitizeComment(commentLine),
		Columns: payload,
		Rows:    rows,
	}, nil
}

// SeriesName derives the series name from the file path: the stem with dots
// and spaces replaced by underscores, usable as a sheet name.
func SeriesName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.NewReplacer(".", "_", " ", "_").Replace(stem)
}

// sanitizeComment strips the leading marker byte and normalizes dots, same
// treatment as column names.
func sanitizeComment(line string) string {
	if line != "" {
		line = line[1:]
	}
	line = strings.TrimSpace(line)
	return strings.ReplaceAll(line, ".", "_")
}

// parseCell reads a single payload field. Numbers become numeric cells,
// anything else stays text, and an empty field is a missing value.
func parseCell(field string) schema.Cell {
	field = strings.TrimSpace(field)
	if field == "" {
		return schema.MissingCell()
	}
	if v, err := strconv.ParseFloat(field, 64); err == nil {
		return schema.NumCell(v)
	}
	return schema.TextCell(field)
}

func parseTimestamp(field string) (time.Time, error) {
	field = strings.TrimSpace(field)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, field); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", field)
}
