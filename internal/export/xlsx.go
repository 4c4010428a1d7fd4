// Package export writes an assembled report to file formats that are not
// plain text: an Excel workbook and a DICOM secondary capture.
package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mrsinham/physioreport/internal/document"
)

// Sheet names of the exported workbook.
const (
	SheetReport = "Report"
	SheetTables = "Tables"
)

type sheetStyles struct {
	title, heading, subheading, header, cell, placeholder int
}

// XLSX renders doc as a workbook. The Report sheet follows the document
// top to bottom; the Tables sheet repeats every table with the heading of
// the section it belongs to.
func XLSX(doc document.Document) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(SheetReport)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetTables); err != nil {
		f.Close()
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	st, err := newSheetStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeReportSheet(f, st, doc); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTablesSheet(f, st, doc); err != nil {
		f.Close()
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteXLSX writes the workbook for doc to w.
func WriteXLSX(w io.Writer, doc document.Document) error {
	data, err := XLSX(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	var st sheetStyles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&st.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 14, Underline: "single"}}},
		{&st.heading, &excelize.Style{Font: &excelize.Font{Bold: true, Underline: "single"}}},
		{&st.subheading, &excelize.Style{Font: &excelize.Font{Italic: true}}},
		{&st.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
			Border:    border,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
		{&st.cell, &excelize.Style{Border: border, Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}}},
		{&st.placeholder, &excelize.Style{Font: &excelize.Font{Color: "#AA0000"}}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return st, fmt.Errorf("creating style: %w", err)
		}
		*d.dst = id
	}
	return st, nil
}

// sheetCursor writes cells row by row.
type sheetCursor struct {
	f     *excelize.File
	sheet string
	row   int
}

func (c *sheetCursor) set(col int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, c.row)
	if err != nil {
		return err
	}
	if err := c.f.SetCellValue(c.sheet, cell, value); err != nil {
		return fmt.Errorf("setting cell %s: %w", cell, err)
	}
	if style != 0 {
		if err := c.f.SetCellStyle(c.sheet, cell, cell, style); err != nil {
			return fmt.Errorf("styling cell %s: %w", cell, err)
		}
	}
	return nil
}

func (c *sheetCursor) table(st sheetStyles, col int, t document.Table) error {
	if t.Title != "" {
		if err := c.set(col, t.Title, st.subheading); err != nil {
			return err
		}
		c.row++
	}
	for i, h := range t.Columns {
		if err := c.set(col+i, h, st.header); err != nil {
			return err
		}
	}
	c.row++
	for _, r := range t.Rows {
		for i, v := range r {
			if err := c.set(col+i, v, st.cell); err != nil {
				return err
			}
		}
		c.row++
	}
	return nil
}

// Report sheet layout: column A holds sentence numbers, text and tables
// start in column B.
func writeReportSheet(f *excelize.File, st sheetStyles, doc document.Document) error {
	c := &sheetCursor{f: f, sheet: SheetReport, row: 1}
	if err := c.set(2, doc.Title, st.title); err != nil {
		return err
	}
	c.row += 2

	for _, sec := range doc.Sections {
		if sec.Heading != "" {
			if err := c.set(2, sec.Heading, st.heading); err != nil {
				return err
			}
			c.row++
		}
		for _, b := range sec.Blocks {
			var err error
			switch b.Kind {
			case document.Sentence:
				if b.Number > 0 {
					err = c.set(1, b.Number, 0)
				}
				if err == nil {
					err = c.set(2, b.Text, 0)
				}
			case document.TableBlock:
				if b.Table != nil {
					err = c.table(st, 2, *b.Table)
					c.row--
				}
			case document.Subheading:
				err = c.set(2, b.Text, st.subheading)
			case document.Placeholder:
				err = c.set(2, b.Text, st.placeholder)
			default:
				err = c.set(2, b.Text, 0)
			}
			if err != nil {
				return err
			}
			c.row++
		}
		c.row++
	}

	if err := f.SetColWidth(SheetReport, "A", "A", 5); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}
	if err := f.SetColWidth(SheetReport, "B", "B", 90); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}
	if err := f.SetColWidth(SheetReport, "C", "H", 16); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}
	return nil
}

// Tables sheet layout: the section heading in column A beside each table.
func writeTablesSheet(f *excelize.File, st sheetStyles, doc document.Document) error {
	c := &sheetCursor{f: f, sheet: SheetTables, row: 1}
	if err := c.set(1, "Section", st.header); err != nil {
		return err
	}
	if err := c.set(2, "Table", st.header); err != nil {
		return err
	}
	c.row++

	for _, sec := range doc.Sections {
		heading := sec.Heading
		for _, b := range sec.Blocks {
			if b.Kind == document.Subheading {
				heading = sec.Heading + " / " + b.Text
				continue
			}
			if b.Kind != document.TableBlock || b.Table == nil {
				continue
			}
			if err := c.set(1, heading, st.subheading); err != nil {
				return err
			}
			if err := c.table(st, 2, *b.Table); err != nil {
				return err
			}
			c.row++
		}
	}

	if err := f.SetColWidth(SheetTables, "A", "A", 40); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}
	if err := f.SetColWidth(SheetTables, "B", "H", 18); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}
	if err := f.SetPanes(SheetTables, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing panes: %w", err)
	}
	return nil
}
