package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mrsinham/physioreport/internal/document"
)

func writeText(w io.Writer, doc document.Document) error {
	ew := &errWriter{w: w}
	if doc.Title != "" {
		ew.println(doc.Title)
		ew.println(strings.Repeat("=", runewidth.StringWidth(doc.Title)))
	}
	for _, sec := range doc.Sections {
		ew.println("")
		if sec.Heading != "" {
			ew.println(sec.Heading)
			ew.println(strings.Repeat("-", runewidth.StringWidth(sec.Heading)))
		}
		for _, b := range sec.Blocks {
			switch b.Kind {
			case document.Sentence:
				ew.println(numbered(b))
			case document.TableBlock:
				if b.Table != nil {
					for _, l := range TextTable(*b.Table) {
						ew.println(l)
					}
				}
			case document.Subheading:
				ew.println("")
				ew.println(b.Text)
			default:
				ew.println(b.Text)
			}
		}
	}
	return ew.err
}

func numbered(b document.Block) string {
	if b.Number == 0 {
		return b.Text
	}
	return strconv.Itoa(b.Number) + ". " + b.Text
}

// TextTable lays out t as aligned columns. Widths are measured in terminal
// cells so that wide characters line up.
func TextTable(t document.Table) []string {
	widths := columnWidths(t)
	var lines []string
	if t.Title != "" {
		lines = append(lines, t.Title)
	}
	lines = append(lines, textRow(t.Columns, widths))

	rule := make([]string, len(widths))
	for i, wd := range widths {
		rule[i] = strings.Repeat("-", wd)
	}
	lines = append(lines, strings.Join(rule, "-+-"))

	for _, row := range t.Rows {
		lines = append(lines, textRow(row, widths))
	}
	return lines
}

func columnWidths(t document.Table) []int {
	n := len(t.Columns)
	for _, row := range t.Rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	measure := func(cells []string) {
		for i, c := range cells {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}
	measure(t.Columns)
	for _, row := range t.Rows {
		measure(row)
	}
	return widths
}

func textRow(cells []string, widths []int) string {
	out := make([]string, len(widths))
	for i, wd := range widths {
		var c string
		if i < len(cells) {
			c = cells[i]
		}
		out[i] = runewidth.FillRight(c, wd)
	}
	return strings.TrimRight(strings.Join(out, " | "), " ")
}
