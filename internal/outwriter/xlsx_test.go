package outwriter

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mbelabs/epiclog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		DataPath:    t.TempDir(),
		Date:        "2024-03-17",
		WriteMethod: schema.SheetsWrite,
	}
}

func TestWriteWorkbook(t *testing.T) {
	gauge := &schema.Series{
		Name:    "IG_chamber",
		Columns: []string{"IG_chamber"},
		Rows: []schema.Row{
			{Time: testStart, Cells: []schema.Cell{schema.NumCell(1.5)}},
			{Time: testStart.Add(time.Minute), Cells: []schema.Cell{schema.MissingCell()}},
		},
	}
	messages := &schema.Series{
		Name:    "Messages",
		Columns: []string{"CallerID", "Message", "Color"},
		Rows: []schema.Row{
			{Time: testStart, Cells: []schema.Cell{
				schema.TextCell("EPIC"),
				schema.TextCell("A moved from storage to GC"),
				schema.TextCell("black"),
			}},
		},
	}

	cfg := testConfig(t)
	path, err := WriteWorkbook(cfg, []*schema.Series{gauge, messages})
	require.NoError(t, err)
	assert.Equal(t, cfg.SpreadsheetPath(), path)
	assert.True(t, strings.HasSuffix(path, "mbe_data_2024-03-17.xlsx"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"IG_chamber", "Messages"}, f.GetSheetList())

	header, err := f.GetCellValue("IG_chamber", "B1")
	require.NoError(t, err)
	assert.Equal(t, "IG_chamber", header)

	ts, err := f.GetCellValue("IG_chamber", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-17 08:00:00", ts)

	val, err := f.GetCellValue("IG_chamber", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1.5", val)

	missing, err := f.GetCellValue("IG_chamber", "B3")
	require.NoError(t, err)
	assert.Empty(t, missing)

	msg, err := f.GetCellValue("Messages", "C2")
	require.NoError(t, err)
	assert.Equal(t, "A moved from storage to GC", msg)
}

func TestWriteWorkbookMergedSheet(t *testing.T) {
	merged := &schema.Series{
		Name:    schema.MergedSheetName,
		Columns: []string{"IG_chamber", "Pyro_reading"},
		Rows: []schema.Row{
			{Time: testStart, Cells: []schema.Cell{schema.NumCell(1.5), schema.MissingCell()}},
		},
	}

	cfg := testConfig(t)
	cfg.WriteMethod = schema.MergedWrite
	path, err := WriteWorkbook(cfg, []*schema.Series{merged})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{schema.MergedSheetName}, f.GetSheetList())
}

func TestDedupeSheetName(t *testing.T) {
	used := map[string]struct{}{}

	long := strings.Repeat("x", 40)
	first := dedupeSheetName(long, used)
	assert.Len(t, first, 31)
	used[first] = struct{}{}

	second := dedupeSheetName(long, used)
	assert.Len(t, second, 31)
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(second, "_2"))
}

func TestDedupeSheetNameMultibyte(t *testing.T) {
	used := map[string]struct{}{}

	// Truncation for the dedupe suffix must not cut through a rune.
	long := strings.Repeat("ö", 40)
	first := dedupeSheetName(long, used)
	used[first] = struct{}{}

	second := dedupeSheetName(long, used)
	assert.True(t, utf8.ValidString(second))
	assert.Len(t, []rune(second), 31)
	assert.True(t, strings.HasSuffix(second, "_2"))
}
