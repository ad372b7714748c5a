package core

import (
	"time"

	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mbelabs/epiclog/internal/epicfile"
	"github.com/mbelabs/epiclog/internal/outwriter"
	"github.com/mbelabs/epiclog/schema"
)

// RunBatch loads every log file for the configured date, classifies and
// resamples each series, and extracts growth events. It returns the batch
// report alongside the transformed series in file order.
func RunBatch(cfg *contract.Config) (*schema.BatchResult, []*schema.Series, error) {
	seriesList, diags, err := epicfile.ReadBatch(cfg.DateDir())
	if err != nil {
		return nil, nil, err
	}

	batch := &schema.BatchResult{Date: cfg.Date, Diagnostics: diags}
	out := make([]*schema.Series, 0, len(seriesList))
	for _, s := range seriesList {
		transformed, report := TransformSeries(cfg, s)
		out = append(out, transformed)
		batch.Reports = append(batch.Reports, report)
	}
	return batch, out, nil
}

// TransformSeries applies classification, the configured resampling branch
// and growth extraction to one series.
//
// In the default change-based mode only narrow series (timestamp plus one
// data column) are sampled; wider series such as the event log pass through
// untouched. In time-based mode every series is aggregated into fixed
// buckets: event logs (3 columns) and shutter-state series (11 columns) keep
// the last value per bucket, everything else is averaged. Shutter state
// persists until changed, so its empty buckets are forward-filled.
func TransformSeries(cfg *contract.Config, s *schema.Series) (*schema.Series, schema.SeriesReport) {
	cls := Classify(s)
	out := s

	if cfg.TimeBased() {
		switch cls.ColumnCount {
		case 3:
			out = ResampleLast(out, cfg.ResamplePeriod)
		case 11:
			out = ResampleLast(out, cfg.ResamplePeriod)
			out = ForwardFill(out)
		default:
			out = ResampleMean(out, cfg.ResamplePeriod)
		}
	} else if cls.ColumnCount < 3 {
		if cls.Pressure {
			out = ThresholdSample(out, schema.RelativeChange, cfg.PreCut)
			out = AccumulatedSample(out, schema.RelativeChange, cfg.PercentCut)
		}
		if cls.Temperature {
			out = ThresholdSample(out, schema.AbsoluteChange, cfg.PreCut)
			out = AccumulatedSample(out, schema.AbsoluteChange, cfg.ValueCut)
		}
	}

	return out, schema.SeriesReport{
		Name:    s.Name,
		Comment: s.Comment,
		Class:   cls.Class(),
		RowsIn:  len(s.Rows),
		RowsOut: len(out.Rows),
		Columns: cls.ColumnCount,
		Growth:  ExtractGrowth(out),
	}
}

// ExecuteExport runs the full pipeline for one date folder, writes the
// spreadsheet and prints the batch report.
func ExecuteExport(cfg *contract.Config, store contract.RunStore) error {
	start := time.Now()
	batch, seriesList, err := RunBatch(cfg)
	if err != nil {
		return err
	}

	runID := beginRun(store, start, cfg)

	sheets := seriesList
	if cfg.WriteMethod == schema.MergedWrite {
		sheets = []*schema.Series{MergeSeries(seriesList)}
	}
	path, err := outwriter.WriteWorkbook(cfg, sheets)
	if err != nil {
		return err
	}
	batch.OutputPath = path

	finishRun(store, runID, batch)
	return outwriter.WriteBatchReport(batch, cfg, time.Since(start))
}

// ExecuteSeries loads, classifies and resamples the date folder without
// exporting, and prints the series inventory.
func ExecuteSeries(cfg *contract.Config) error {
	start := time.Now()
	batch, _, err := RunBatch(cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteSeriesReport(batch, cfg, time.Since(start))
}

// ExecuteGrowth runs the pipeline and prints only the growth findings.
func ExecuteGrowth(cfg *contract.Config) error {
	start := time.Now()
	batch, _, err := RunBatch(cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteGrowthReport(batch, cfg, time.Since(start))
}

// beginRun records the run start. Run tracking failures degrade to warnings;
// the export itself must not fail because history could not be written.
func beginRun(store contract.RunStore, start time.Time, cfg *contract.Config) int64 {
	if store == nil {
		return 0
	}
	id, err := store.BeginRun(start, cfg.ConfigParams())
	if err != nil {
		contract.LogWarn("recording run start", err)
		return 0
	}
	return id
}

// finishRun records the detected growth events and finalizes the run row.
func finishRun(store contract.RunStore, runID int64, batch *schema.BatchResult) {
	if store == nil || runID == 0 {
		return
	}
	for _, r := range batch.Reports {
		if r.Growth == nil || len(r.Growth.Events) == 0 {
			continue
		}
		if err := store.RecordGrowthEvents(runID, r.Name, *r.Growth); err != nil {
			contract.LogWarn("recording growth events", err)
		}
	}
	if err := store.EndRun(runID, time.Now(), len(batch.Reports)); err != nil {
		contract.LogWarn("recording run end", err)
	}
}
