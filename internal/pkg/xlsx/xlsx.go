// Package xlsx renders tabular report rows as an Excel workbook.
package xlsx

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Rows before the header: title, generated-at, blank
const headerRow = 4

// Column describes one report column
type Column struct {
	Header string
	Width  float64
}

// Sheet is one titled table
type Sheet struct {
	Name    string
	Title   string
	Columns []Column
	Rows    [][]interface{}
}

// Build writes the sheets into a workbook and returns its bytes
func Build(generatedAt time.Time, sheets ...Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		index, err := f.NewSheet(sh.Name)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		if err := writeSheet(f, sh, generatedAt); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sh.Name, err)
		}
	}

	if len(sheets) > 0 && sheets[0].Name != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sh Sheet, generatedAt time.Time) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(sh.Name, "A1", sh.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sh.Name, "A1", "A1", titleStyle); err != nil {
		return err
	}
	if err := f.SetCellValue(sh.Name, "A2", "Generated: "+generatedAt.UTC().Format("2006-01-02 15:04:05")+" UTC"); err != nil {
		return err
	}

	for col, c := range sh.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sh.Name, cell, c.Header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sh.Name, cell, cell, headerStyle); err != nil {
			return err
		}
		width := c.Width
		if width == 0 {
			width = 18
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sh.Name, name, name, width); err != nil {
			return err
		}
	}

	for i, row := range sh.Rows {
		cell, err := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = cellValue(v)
		}
		if err := f.SetSheetRow(sh.Name, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// cellValue flattens pointers and formats times so blank cells stay blank
func cellValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case *string:
		if t == nil {
			return nil
		}
		return *t
	case *float64:
		if t == nil {
			return nil
		}
		return *t
	case *uint:
		if t == nil {
			return nil
		}
		return *t
	case time.Time:
		return t.UTC().Format("2006-01-02 15:04:05")
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.UTC().Format("2006-01-02 15:04:05")
	default:
		return v
	}
}
