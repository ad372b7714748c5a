package core

import (
	"fmt"
	"strings"

	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mbelabs/epiclog/schema"
)

// Markers used by EPIC's event log for holder movements. The mirror is a
// reflector fixture that moves during calibration; only positional-holder
// movements are growth-relevant.
const (
	movedFromMarker = " moved from "
	movedToMarker   = " to "
	mirrorFixture   = "Mirror"
)

// Operator-facing status messages.
const (
	msgNoMessageLog = "Error: No Message log detected, can not determine the number of growth events and the start and end of the growth!"
	msgDuplicate    = "Error: You use the same name for different growth events! Please use unique names for each growth event."
	msgUnpaired     = "The number of growth events is not equal to the number of start and end of the growth events!"
	msgNoGrowth     = "No growth detected."
	msgSingle       = "Single Growth detected."
)

// movement is one parsed "<object> moved from <from> to <to>" log row.
type movement struct {
	object string
	from   string
	to     string
	row    schema.Row
}

// ExtractGrowth parses the free-text message column of an event-log series
// into growth intervals. Each interval is bounded by two movement rows for
// the same object name, paired positionally in row order. Pairing violations
// are a reportable data-quality condition carried in the status, never a
// process failure.
func ExtractGrowth(s *schema.Series) *schema.GrowthResult {
	msgIdx := messageColumnIndex(s)
	if msgIdx < 0 {
		return &schema.GrowthResult{
			Status:  schema.GrowthNoMessageLog,
			Message: msgNoMessageLog,
		}
	}

	moves := parseMovements(s, msgIdx)
	if len(moves) == 0 {
		return &schema.GrowthResult{
			Status:  schema.GrowthNone,
			Message: msgNoGrowth,
		}
	}

	names, counts := countObjects(moves)
	if status := validatePairing(counts); status != "" {
		msg := msgUnpaired
		if status == schema.GrowthDuplicateErr {
			msg = msgDuplicate
		}
		return &schema.GrowthResult{Status: status, Message: msg}
	}

	// All objects appear exactly twice, so the total row count is even and
	// pairs (2k, 2k+1) bound one growth each.
	events := make([]schema.GrowthEvent, 0, len(moves)/2)
	var diags []string
	for i := 0; i+1 < len(moves); i += 2 {
		start, end := moves[i], moves[i+1]
		events = append(events, schema.GrowthEvent{
			Object:    start.object,
			Start:     start.row.Time,
			End:       end.row.Time,
			StartFrom: start.from,
			StartTo:   start.to,
			EndFrom:   end.from,
			EndTo:     end.to,
		})
	}

	if len(moves) == 2 {
		diags = append(diags,
			"Start of the Growth: "+events[0].Start.Format(contract.DateTimeFormat),
			"End of the Growth: "+events[0].End.Format(contract.DateTimeFormat),
		)
		return &schema.GrowthResult{
			Status:      schema.GrowthSingle,
			Message:     msgSingle,
			Events:      events,
			Diagnostics: diags,
		}
	}

	for _, ev := range events {
		diags = append(diags,
			fmt.Sprintf("Start of the Growth %s: %s", ev.Object, ev.Start.Format(contract.DateTimeFormat)),
			fmt.Sprintf("End of the Growth %s: %s", ev.Object, ev.End.Format(contract.DateTimeFormat)),
		)
	}
	return &schema.GrowthResult{
		Status:      schema.GrowthMultiple,
		Message:     fmt.Sprintf("%d growths detected with the names %s.", len(events), strings.Join(names, ",")),
		Events:      events,
		Diagnostics: diags,
	}
}

// messageColumnIndex returns the index of the first column whose name
// contains "Message", or -1.
func messageColumnIndex(s *schema.Series) int {
	for i, name := range s.Columns {
		if strings.Contains(name, "Message") {
			return i
		}
	}
	return -1
}

// parseMovements filters the rows to holder movements and splits each
// message into (object, from, to) via two sequential substring splits.
func parseMovements(s *schema.Series, msgIdx int) []movement {
	var moves []movement
	for _, row := range s.Rows {
		if msgIdx >= len(row.Cells) {
			continue
		}
		cell := row.Cells[msgIdx]
		if !cell.IsText {
			continue
		}
		msg := cell.Text
		if !strings.Contains(msg, "moved from") || strings.Contains(msg, mirrorFixture) {
			continue
		}
		object, rest, ok := strings.Cut(msg, movedFromMarker)
		if !ok {
			continue
		}
		from, to, _ := strings.Cut(rest, movedToMarker)
		moves = append(moves, movement{object: object, from: from, to: to, row: row})
	}
	return moves
}

// countObjects tallies movement rows per object name, preserving first
// appearance order for reporting.
func countObjects(moves []movement) ([]string, map[string]int) {
	var names []string
	counts := make(map[string]int)
	for _, m := range moves {
		if counts[m.object] == 0 {
			names = append(names, m.object)
		}
		counts[m.object]++
	}
	return names, counts
}

// validatePairing checks that every object appears exactly twice. An object
// appearing more than twice means a reused growth name; an object appearing
// once means an unmatched start or end. Returns "" when well-formed.
func validatePairing(counts map[string]int) schema.GrowthStatus {
	var unpaired bool
	for _, n := range counts {
		if n > 2 {
			return schema.GrowthDuplicateErr
		}
		if n != 2 {
			unpaired = true
		}
	}
	if unpaired {
		return schema.GrowthUnpairedErr
	}
	return ""
}
