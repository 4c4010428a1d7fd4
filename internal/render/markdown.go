package render

import (
	"io"
	"strings"

	"github.com/mrsinham/physioreport/internal/document"
)

var mdCellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func writeMarkdown(w io.Writer, doc document.Document) error {
	ew := &errWriter{w: w}
	if doc.Title != "" {
		ew.println("# " + doc.Title)
	}
	for _, sec := range doc.Sections {
		ew.println("")
		if sec.Heading != "" {
			ew.println("## " + sec.Heading)
			ew.println("")
		}
		prev := document.Kind("")
		for _, b := range sec.Blocks {
			// Runs of sentences form a list and runs of lines a paragraph;
			// either needs a blank line before anything else follows.
			if (prev == document.Sentence || prev == document.Line) && b.Kind != prev {
				ew.println("")
			}
			switch b.Kind {
			case document.Sentence:
				ew.println(numbered(b))
			case document.TableBlock:
				if b.Table != nil {
					writeMarkdownTable(ew, *b.Table)
				}
				ew.println("")
			case document.Subheading:
				ew.println("### " + b.Text)
				ew.println("")
			case document.Line:
				ew.println(b.Text + "  ")
			default:
				ew.println(b.Text)
				ew.println("")
			}
			prev = b.Kind
		}
	}
	return ew.err
}

func writeMarkdownTable(ew *errWriter, t document.Table) {
	if t.Title != "" {
		ew.println("**" + t.Title + "**")
		ew.println("")
	}
	ew.println(mdRow(t.Columns))
	sep := make([]string, len(t.Columns))
	for i := range sep {
		sep[i] = "---"
	}
	ew.println(mdRow(sep))
	for _, row := range t.Rows {
		ew.println(mdRow(row))
	}
}

func mdRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = mdCellEscaper.Replace(c)
	}
	return "| " + strings.Join(escaped, " | ") + " |"
}
