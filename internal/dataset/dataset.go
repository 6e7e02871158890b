// Package dataset holds grouped response time observations, typically
// loaded from a spreadsheet with one RT column and one modality column.
package dataset

import (
	"sort"

	"gorace/domain/core"
)

// Record is a single observation: a response time and the stimulus
// modality it was recorded under.
type Record struct {
	RT       float64
	Modality string
}

// Table is an ordered collection of observations across modalities.
type Table struct {
	Records []Record
}

// Modalities returns the distinct modality labels, sorted.
func (t *Table) Modalities() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range t.Records {
		if !seen[r.Modality] {
			seen[r.Modality] = true
			names = append(names, r.Modality)
		}
	}
	sort.Strings(names)
	return names
}

// RTs returns the response times recorded under one modality, in input
// order. An absent modality is ErrDataNotFound.
func (t *Table) RTs(modality string) ([]float64, error) {
	var rts []float64
	for _, r := range t.Records {
		if r.Modality == modality {
			rts = append(rts, r.RT)
		}
	}
	if rts == nil {
		return nil, core.NewDataNotFoundError("modality", modality)
	}
	return rts, nil
}

// Split partitions the table into per-modality RT samples, one per
// name, in the given order. nil names selects all modalities in sorted
// order.
func (t *Table) Split(names []string) ([][]float64, []string, error) {
	if names == nil {
		names = t.Modalities()
	}
	if len(names) == 0 {
		return nil, nil, core.NewInvalidArgumentError("names", "dataset has no modalities")
	}

	samples := make([][]float64, len(names))
	for i, name := range names {
		rts, err := t.RTs(name)
		if err != nil {
			return nil, nil, err
		}
		samples[i] = rts
	}
	return samples, names, nil
}
