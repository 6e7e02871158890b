package racemodel

import (
	"gorace/domain/core"
)

// Table holds percentile boundaries for several conditions side by
// side. Rows are indexed by percentile, columns by condition name.
// Columns[c][r] is the RT boundary of column c at Percentiles[r].
type Table struct {
	Names       []string    `json:"names"`
	Percentiles []float64   `json:"percentiles"`
	Columns     [][]float64 `json:"columns"`

	// DroppedNegatives counts negative RTs removed across all input
	// samples before estimation. Advisory.
	DroppedNegatives int `json:"dropped_negatives,omitempty"`
}

// Column returns the boundaries of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	for i, n := range t.Names {
		if n == name {
			return t.Columns[i], nil
		}
	}
	return nil, core.NewDataNotFoundError("column", name)
}

// Row returns the boundaries of all columns at row r, in column order.
func (t *Table) Row(r int) []float64 {
	row := make([]float64, len(t.Columns))
	for c := range t.Columns {
		row[c] = t.Columns[c][r]
	}
	return row
}

// NumRows returns the number of percentile rows.
func (t *Table) NumRows() int { return len(t.Percentiles) }
