package outwriter

import (
	"fmt"

	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mbelabs/epiclog/schema"
	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes one sheet per series to the spreadsheet for the
// configured date and returns its path. The first column of every sheet is
// the timestamp; missing cells stay blank. Sheet names are truncated to the
// 31-character xlsx limit and deduplicated with a numeric suffix.
func WriteWorkbook(cfg *contract.Config, list []*schema.Series) (string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	used := make(map[string]struct{})
	for _, s := range list {
		name := dedupeSheetName(s.Name, used)
		used[name] = struct{}{}
		if err := writeSheet(f, name, s); err != nil {
			return "", err
		}
	}

	// Drop the workbook's default sheet unless a series claimed the name.
	if _, taken := used["Sheet1"]; !taken {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return "", err
		}
	}

	path := cfg.SpreadsheetPath()
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("writing spreadsheet: %w", err)
	}
	return path, nil
}

func writeSheet(f *excelize.File, name string, s *schema.Series) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	header := make([]any, 0, len(s.Columns)+1)
	header = append(header, "Date")
	for _, c := range s.Columns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, row := range s.Rows {
		cells := make([]any, 0, len(row.Cells)+1)
		cells = append(cells, row.Time.Format(contract.DateTimeFormat))
		for _, c := range row.Cells {
			switch {
			case c.IsMissing():
				cells = append(cells, nil)
			case c.IsText:
				cells = append(cells, c.Text)
			default:
				cells = append(cells, c.Num)
			}
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, axis, &cells); err != nil {
			return err
		}
	}
	return nil
}

// dedupeSheetName truncates a series name to a legal sheet name and keeps it
// unique within the workbook. Truncation can make two long names collide.
func dedupeSheetName(name string, used map[string]struct{}) string {
	candidate := contract.TruncateSheetName(name)
	if _, taken := used[candidate]; !taken {
		return candidate
	}
	for i := 2; ; i++ {
		suffix := fmt.Sprintf("_%d", i)
		base := []rune(contract.TruncateSheetName(name))
		if len(base)+len(suffix) > 31 {
			base = base[:31-len(suffix)]
		}
		candidate = string(base) + suffix
		if _, taken := used[candidate]; !taken {
			return candidate
		}
	}
}
