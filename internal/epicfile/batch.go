package epicfile

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mbelabs/epiclog/schema"
)

// ReadBatch loads every log file in a date folder, sorted by file name. A
// file that fails to parse is skipped with a diagnostic rather than failing
// the batch; an empty folder is an error, since it usually means a mistyped
// date.
func ReadBatch(dir string) ([]*schema.Series, []string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no log files found under %s", dir)
	}
	sort.Strings(paths)

	var list []*schema.Series
	var diags []string
	for _, p := range paths {
		s, err := Read(p)
		if err != nil {
			diags = append(diags, fmt.Sprintf("skipping %s: %v", filepath.Base(p), err))
			continue
		}
		list = append(list, s)
	}
	return list, diags, nil
}
