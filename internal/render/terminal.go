package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/physioreport/internal/document"
)

var (
	termTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("63"))

	termHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("63")).
				MarginTop(1)

	termSubheadingStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.Color("252"))

	termPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	termTableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("244")).
			Padding(0, 1)

	termNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// TerminalString renders doc with terminal colours. Sentences are wrapped
// to width when width is positive.
func TerminalString(doc document.Document, width int) string {
	var parts []string
	if doc.Title != "" {
		parts = append(parts, termTitleStyle.Render(doc.Title))
	}
	for _, sec := range doc.Sections {
		if sec.Heading != "" {
			parts = append(parts, termHeadingStyle.Render(sec.Heading))
		} else if len(parts) > 0 {
			parts = append(parts, "")
		}
		for _, b := range sec.Blocks {
			parts = append(parts, terminalBlock(b, width))
		}
	}
	return strings.Join(parts, "\n") + "\n"
}

func terminalBlock(b document.Block, width int) string {
	wrap := lipgloss.NewStyle()
	if width > 0 {
		wrap = wrap.Width(width)
	}
	switch b.Kind {
	case document.Sentence:
		if b.Number == 0 {
			return wrap.Render(b.Text)
		}
		return termNumberStyle.Render(numberPrefix(b.Number)) + wrap.Render(b.Text)
	case document.TableBlock:
		if b.Table == nil {
			return ""
		}
		return termTableStyle.Render(strings.Join(TextTable(*b.Table), "\n"))
	case document.Subheading:
		return "\n" + termSubheadingStyle.Render(b.Text)
	case document.Placeholder:
		return termPlaceholderStyle.Render(b.Text)
	}
	return wrap.Render(b.Text)
}

func numberPrefix(n int) string {
	return numbered(document.Block{Number: n})
}
