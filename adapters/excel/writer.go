package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gorace/domain/racemodel"
	"gorace/internal/profiling"
)

// ResultWriter serializes a race model comparison into an Excel
// workbook: one sheet with the percentile boundary table, one with the
// per-condition sample profiles.
type ResultWriter struct {
	table    *racemodel.Table
	profiles []profiling.SampleProfile
}

// NewResultWriter creates a writer for a comparison table. profiles may
// be nil, in which case the profile sheet is omitted.
func NewResultWriter(table *racemodel.Table, profiles []profiling.SampleProfile) *ResultWriter {
	return &ResultWriter{table: table, profiles: profiles}
}

// Save writes the workbook to path.
func (w *ResultWriter) Save(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeBoundaries(f, DefaultSheet); err != nil {
		return err
	}
	if w.profiles != nil {
		if err := w.writeProfiles(f, "Profiles"); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (w *ResultWriter) writeBoundaries(f *excelize.File, sheet string) error {
	headers := append([]string{"p"}, w.table.Names...)
	for c, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %q: %w", h, err)
		}
	}

	for r := 0; r < w.table.NumRows(); r++ {
		values := append([]float64{w.table.Percentiles[r]}, w.table.Row(r)...)
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", r, err)
			}
		}
	}
	return nil
}

func (w *ResultWriter) writeProfiles(f *excelize.File, sheet string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}

	headers := []string{"condition", "n", "mean", "median", "sd", "min", "max", "q25", "q75"}
	for c, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %q: %w", h, err)
		}
	}

	for r, p := range w.profiles {
		values := []interface{}{p.Name, p.N, p.Mean, p.Median, p.StdDev, p.Min, p.Max, p.Q25, p.Q75}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write profile %q: %w", p.Name, err)
			}
		}
	}
	return nil
}
