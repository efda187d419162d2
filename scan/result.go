// Package scan holds genome-scan result tables: one LOD score row per
// marker (or per equivalence class, when the scan was computed in
// compressed form), with one or more named score columns.
package scan

import (
	"fmt"
	"math"
)

// Result is an ordered table of association scores. Names labels the rows,
// Columns labels the score columns, and Scores is row-major with
// len(Scores) == len(Names) and len(Scores[i]) == len(Columns). Missing
// scores are NaN.
type Result struct {
	Names   []string
	Columns []string
	Scores  [][]float64
}

// NRows is the number of score rows.
func (r Result) NRows() int {
	return len(r.Scores)
}

// EmptyDataError indicates that a score column holds no non-missing values.
type EmptyDataError struct {
	Column string
}

func (e EmptyDataError) Error() string {
	return fmt.Sprintf("no non-missing values in score column %q", e.Column)
}

// ColumnMax is the maximum of the given score column, ignoring NaN. It
// fails with an EmptyDataError when every value is missing.
func (r Result) ColumnMax(col int) (float64, error) {
	if col < 0 || col >= len(r.Columns) {
		return 0, fmt.Errorf("score column %d does not exist (result has %d columns)", col, len(r.Columns))
	}

	max := math.Inf(-1)
	found := false
	for _, row := range r.Scores {
		if v := row[col]; !math.IsNaN(v) {
			found = true
			if v > max {
				max = v
			}
		}
	}

	if !found {
		return 0, EmptyDataError{Column: r.Columns[col]}
	}

	return max, nil
}
