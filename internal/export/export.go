// Package export renders already-aggregated data into spreadsheet
// workbooks. It owns no business rules: callers hand it ordered column
// definitions and rows, and get back an opaque xlsx binary.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Column defines one spreadsheet column.
type Column struct {
	Header string
	Key    string
	Width  float64
}

// Row maps column keys to cell values. Keys missing from a row produce
// empty cells.
type Row map[string]any

// Sheet is a single-worksheet workbook definition.
type Sheet struct {
	Name    string
	Columns []Column
	Rows    []Row

	// Footer, when non-nil, is appended after the data rows in bold.
	Footer Row
}

// ContentType is the MIME type of the produced workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Filename returns "<prefix>_YYYY-MM-DD.xlsx" for the given day.
func Filename(prefix string, day time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, day.Format("2006-01-02"))
}

// Workbook renders the sheet into xlsx bytes. The header row is bold
// and frozen; column widths follow the column definitions.
func Workbook(s Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", s.Name); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	headers := make([]any, len(s.Columns))
	for i, col := range s.Columns {
		headers[i] = col.Header
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("resolving column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(s.Name, name, name, col.Width); err != nil {
			return nil, fmt.Errorf("setting column width: %w", err)
		}
	}
	if err := f.SetSheetRow(s.Name, "A1", &headers); err != nil {
		return nil, fmt.Errorf("writing header row: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating bold style: %w", err)
	}
	if err := f.SetRowStyle(s.Name, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("styling header row: %w", err)
	}

	rowNum := 2
	for _, r := range s.Rows {
		if err := writeRow(f, s, rowNum, r); err != nil {
			return nil, err
		}
		rowNum++
	}

	if s.Footer != nil {
		if err := writeRow(f, s, rowNum, s.Footer); err != nil {
			return nil, err
		}
		if err := f.SetRowStyle(s.Name, rowNum, rowNum, bold); err != nil {
			return nil, fmt.Errorf("styling footer row: %w", err)
		}
	}

	if err := f.SetPanes(s.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freezing header row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, s Sheet, rowNum int, r Row) error {
	values := make([]any, len(s.Columns))
	for i, col := range s.Columns {
		values[i] = r[col.Key]
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("resolving row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", rowNum, err)
	}
	return nil
}
