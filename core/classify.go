package core

import (
	"strings"

	"github.com/mbelabs/epiclog/schema"
)

// Column-name patterns used by EPIC for its measurement channels. Pressure
// gauges (ion gauge, mini ion gauge, Penning gauge) report relative
// quantities; PID controllers and pyrometers report absolute temperatures.
var (
	pressurePatterns    = []string{"IG", "MIG", "PG"}
	temperaturePatterns = []string{"PID", "Pyro"}
)

// Classify inspects the series column names and returns its classification.
// Matching is case-sensitive substring containment, computed once per series
// and threaded through the pipeline. Pressure and temperature are independent
// flags; a series matching both patterns runs through both sampler branches.
//
// Sampling only removes rows, never renames columns, so reclassifying a
// sampled series yields the same buckets.
func Classify(s *schema.Series) schema.Classification {
	c := schema.Classification{ColumnCount: len(s.Columns)}
	for _, name := range s.Columns {
		for _, p := range pressurePatterns {
			if strings.Contains(name, p) {
				c.Pressure = true
			}
		}
		for _, p := range temperaturePatterns {
			if strings.Contains(name, p) {
				c.Temperature = true
			}
		}
	}
	return c
}
