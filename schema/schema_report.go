package schema

// Classification is the closed classification of one series, computed once
// and threaded through the pipeline instead of re-inspecting column names at
// every stage. Pressure and temperature are independent flags: a series whose
// columns match both patterns runs through both samplers.
type Classification struct {
	Pressure    bool `json:"pressure"`
	Temperature bool `json:"temperature"`
	ColumnCount int  `json:"column_count"` // Payload columns, timestamp excluded
}

// Class collapses the flags into a single display bucket. Pressure wins over
// temperature when both match, mirroring the column-pattern order.
func (c Classification) Class() SeriesClass {
	switch {
	case c.Pressure:
		return PressureClass
	case c.Temperature:
		return TemperatureClass
	case c.ColumnCount == 3:
		return CategoricalClass
	default:
		return UnclassifiedClass
	}
}

// SeriesReport summarizes what the pipeline did to one series.
type SeriesReport struct {
	Name        string        `json:"name"`
	Comment     string        `json:"comment,omitempty"`
	Class       SeriesClass   `json:"class"`
	RowsIn      int           `json:"rows_in"`
	RowsOut     int           `json:"rows_out"`
	Columns     int           `json:"columns"`
	Growth      *GrowthResult `json:"growth,omitempty"` // Extraction outcome; NoMessageLog status for series without an event log
	Diagnostics []string      `json:"diagnostics,omitempty"`
}

// BatchResult is the outcome of processing one date folder.
type BatchResult struct {
	Date        string         `json:"date"`
	OutputPath  string         `json:"output_path,omitempty"` // Spreadsheet path when exported
	Reports     []SeriesReport `json:"reports"`
	Diagnostics []string       `json:"diagnostics,omitempty"` // Batch-level diagnostics (unreadable files, ...)
}

// GrowthReports returns the growth results attached to the batch, in series order.
func (b *BatchResult) GrowthReports() []GrowthResult {
	var out []GrowthResult
	for _, r := range b.Reports {
		if r.Growth != nil {
			out = append(out, *r.Growth)
		}
	}
	return out
}
