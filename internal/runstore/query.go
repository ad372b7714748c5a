package runstore

import (
	"fmt"
	"time"

	"github.com/mbelabs/epiclog/schema"
)

// GetAllRuns retrieves all runs from the store, oldest first.
func (rs *RunStoreImpl) GetAllRuns() ([]schema.RunRecord, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(runsTable, rs.backend)
	query := fmt.Sprintf("SELECT run_id, start_time, end_time, run_duration_ms, series_processed, config_params FROM %s ORDER BY run_id", quotedTableName)

	rows, err := rs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RunRecord
	for rows.Next() {
		var record schema.RunRecord

		switch rs.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.RunID, &startTimeStr, &endTimeStr, &record.RunDurationMs, &record.SeriesProcessed, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan run: %w", err)
			}
			startTime, err := time.Parse(time.RFC3339Nano, startTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			record.StartTime = startTime
			if endTimeStr != nil {
				endTime, err := time.Parse(time.RFC3339Nano, *endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.StartTime, &record.EndTime, &record.RunDurationMs, &record.SeriesProcessed, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan run: %w", err)
			}
		}

		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return results, nil
}

// GetAllGrowthEvents retrieves all growth events from the store, oldest run first.
func (rs *RunStoreImpl) GetAllGrowthEvents() ([]schema.GrowthEventRecord, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(growthEventsTable, rs.backend)
	query := fmt.Sprintf("SELECT run_id, series_name, object, start_time, end_time, from_start, to_end, status FROM %s ORDER BY run_id, start_time", quotedTableName)

	rows, err := rs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query growth events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.GrowthEventRecord
	for rows.Next() {
		var record schema.GrowthEventRecord

		switch rs.backend {
		case schema.SQLiteBackend:
			var startTimeStr, endTimeStr string
			if err := rows.Scan(&record.RunID, &record.SeriesName, &record.Object, &startTimeStr, &endTimeStr, &record.FromStart, &record.ToEnd, &record.Status); err != nil {
				return nil, fmt.Errorf("failed to scan growth event: %w", err)
			}
			startTime, err := time.Parse(time.RFC3339Nano, startTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			endTime, err := time.Parse(time.RFC3339Nano, endTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse end_time: %w", err)
			}
			record.StartTime = startTime
			record.EndTime = endTime
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.SeriesName, &record.Object, &record.StartTime, &record.EndTime, &record.FromStart, &record.ToEnd, &record.Status); err != nil {
				return nil, fmt.Errorf("failed to scan growth event: %w", err)
			}
		}

		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating growth events: %w", err)
	}
	return results, nil
}

// GetStatus returns status information about the run store.
func (rs *RunStoreImpl) GetStatus() (*schema.StoreStatus, error) {
	status := &schema.StoreStatus{
		Backend:    rs.backend,
		TableSizes: make(map[string]int64),
	}

	if rs.backend == schema.NoneBackend || rs.db == nil {
		return status, nil
	}

	runsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(runsTable, rs.backend))
	if err := rs.db.QueryRow(runsQuery).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		lastRunQuery := fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id DESC LIMIT 1", quoteTableName(runsTable, rs.backend))
		lastRun, err := scanTime(rs.db.QueryRow(lastRunQuery), rs.backend)
		if err != nil {
			return status, fmt.Errorf("failed to get last run time: %w", err)
		}
		status.LastRun = &lastRun
	}

	for _, table := range []string{runsTable, growthEventsTable} {
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, rs.backend))
		var count int64
		if err := rs.db.QueryRow(countQuery).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}

	return status, nil
}

// Clear removes all recorded history.
func (rs *RunStoreImpl) Clear() error {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil
	}

	for _, table := range []string{growthEventsTable, runsTable} {
		query := fmt.Sprintf("DELETE FROM %s", quoteTableName(table, rs.backend))
		if _, err := rs.db.Exec(query); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}
