package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"offerfeat/pkg/contracts/domain"
)

// DefaultSheetName is the worksheet holding the feature table
const DefaultSheetName = "features"

// XLSXWriter writes the feature table to a single-sheet workbook
type XLSXWriter struct {
	sheet  string
	logger *slog.Logger
}

// NewXLSXWriter creates a new workbook writer
func NewXLSXWriter(logger *slog.Logger) *XLSXWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXWriter{sheet: DefaultSheetName, logger: logger}
}

// WriteTable writes a header row followed by one row per feature row.
// Missing values are left as empty cells; numbers keep their numeric type.
func (w *XLSXWriter) WriteTable(filePath string, table *domain.FeatureTable) error {
	cols := Columns(table)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), w.sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(w.sheet)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range table.Rows {
		values := make([]interface{}, len(cols))
		for j, c := range cols {
			values[j] = c.Value(&table.Rows[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("XLSX export written",
		slog.String("file_path", filePath),
		slog.String("sheet", w.sheet),
		slog.Int("record_count", table.Len()))
	return nil
}
