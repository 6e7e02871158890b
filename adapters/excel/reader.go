// Package excel reads response time datasets from spreadsheet files and
// writes analysis results back out as workbooks.
package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"gorace/internal/dataset"
)

// Column defaults match the original lab export format.
const (
	DefaultRTColumn       = "RT"
	DefaultModalityColumn = "Modality"
	DefaultSheet          = "Sheet1"
)

// DataReader handles reading Excel and CSV files into an RT dataset.
type DataReader struct {
	filePath       string
	fileType       string // "xlsx" or "csv"
	rtColumn       string
	modalityColumn string
}

// NewDataReader creates a data reader for both Excel and CSV files. The
// file must carry a header row containing the RT and modality columns.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{
		filePath:       filePath,
		fileType:       fileType,
		rtColumn:       DefaultRTColumn,
		modalityColumn: DefaultModalityColumn,
	}
}

// WithColumns overrides the RT and modality column names.
func (r *DataReader) WithColumns(rtColumn, modalityColumn string) *DataReader {
	r.rtColumn = rtColumn
	r.modalityColumn = modalityColumn
	return r
}

// ReadDataset reads the file into a grouped RT table.
func (r *DataReader) ReadDataset() (*dataset.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("file must have a header row and at least one data row")
	}
	return r.processRows(rows)
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(DefaultSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", DefaultSheet, err)
	}
	log.Printf("[DataReader] %s read (%d rows)", r.filePath, len(rows))
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[DataReader] %s read (%d rows)", r.filePath, len(rows))
	return rows, nil
}

// processRows converts raw string rows into a dataset table.
func (r *DataReader) processRows(rows [][]string) (*dataset.Table, error) {
	rtIdx, modIdx := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case r.rtColumn:
			rtIdx = i
		case r.modalityColumn:
			modIdx = i
		}
	}
	if rtIdx < 0 {
		return nil, fmt.Errorf("RT column %q not found in header", r.rtColumn)
	}
	if modIdx < 0 {
		return nil, fmt.Errorf("modality column %q not found in header", r.modalityColumn)
	}

	table := &dataset.Table{}
	for line, row := range rows[1:] {
		if rtIdx >= len(row) || modIdx >= len(row) {
			continue // short row, e.g. trailing blanks in xlsx exports
		}
		rtText := strings.TrimSpace(row[rtIdx])
		modality := strings.TrimSpace(row[modIdx])
		if rtText == "" || modality == "" {
			continue
		}

		rt, err := strconv.ParseFloat(rtText, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid RT value %q: %w", line+2, rtText, err)
		}
		table.Records = append(table.Records, dataset.Record{RT: rt, Modality: modality})
	}

	if len(table.Records) == 0 {
		return nil, fmt.Errorf("no usable observations in %s", r.filePath)
	}
	return table, nil
}
