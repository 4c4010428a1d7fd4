package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/physioreport/cmd/physioreport/wizard/help"
)

var (
	helpPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpDetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

const minPanelWidth = 30

// HelpPanel shows the help text of the focused form field.
type HelpPanel struct {
	field string
	width int
}

// NewHelpPanel creates a help panel with the default width.
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{width: 60}
}

// SetField selects the field whose help is shown.
func (h *HelpPanel) SetField(field string) {
	h.field = field
}

// Field returns the field currently shown.
func (h *HelpPanel) Field() string {
	return h.field
}

// SetWidth resizes the panel, never below a readable minimum.
func (h *HelpPanel) SetWidth(width int) {
	h.width = max(width, minPanelWidth)
}

// View renders the panel.
func (h *HelpPanel) View() string {
	style := helpPanelStyle.Width(h.width - 4)

	text, ok := help.Texts[h.field]
	if !ok {
		return style.Render("Select a field to see help")
	}

	var sb strings.Builder
	sb.WriteString(helpTitleStyle.Render(text.Title))
	sb.WriteString("\n\n")
	sb.WriteString(helpDescStyle.Render(text.Description))
	if text.Details != "" {
		sb.WriteString("\n\n")
		sb.WriteString(helpDetailStyle.Render(text.Details))
	}
	return style.Render(sb.String())
}
