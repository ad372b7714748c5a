package contract

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseResamplePeriod parses a resampling period string. EPIC operators are
// used to the pandas offset aliases ("30S", "3T", "2H", "1D"), so those are
// accepted alongside plain Go durations ("90s", "3m30s").
func ParseResamplePeriod(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("period must not be empty")
	}

	// Split into leading digits and a unit suffix.
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 {
		n, err := strconv.Atoi(s[:i])
		if err == nil && n > 0 {
			var unit time.Duration
			switch strings.ToLower(s[i:]) {
			case "s", "sec":
				unit = time.Second
			case "t", "min":
				unit = time.Minute
			case "h":
				unit = time.Hour
			case "d":
				unit = 24 * time.Hour
			}
			// Guard against overflow on absurd counts.
			if unit != 0 && time.Duration(n) <= time.Duration(1<<62)/unit {
				return time.Duration(n) * unit, nil
			}
		}
	}

	// Fall back to Go duration syntax.
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("unrecognized period %q (expected e.g. 30S, 3T, 2H, 1D or a Go duration)", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("period must be positive (received %s)", d)
	}
	return d, nil
}
