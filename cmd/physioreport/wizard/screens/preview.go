package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/physioreport/cmd/physioreport/wizard/components"
)

// PreviewScreen scrolls through a rendered report.
type PreviewScreen struct {
	lines  []string
	offset int
	height int
	done   bool
}

// NewPreviewScreen shows content, typically render.TerminalString output.
func NewPreviewScreen(content string) *PreviewScreen {
	return &PreviewScreen{
		lines:  strings.Split(strings.TrimRight(content, "\n"), "\n"),
		height: 24,
	}
}

// Init implements tea.Model
func (s *PreviewScreen) Init() tea.Cmd {
	return nil
}

func (s *PreviewScreen) pageSize() int {
	// title and key hint
	return max(s.height-4, 1)
}

func (s *PreviewScreen) maxOffset() int {
	return max(len(s.lines)-s.pageSize(), 0)
}

// Update implements tea.Model
func (s *PreviewScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.height = msg.Height
		s.offset = min(s.offset, s.maxOffset())
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			s.done = true
		case "up", "k":
			s.offset--
		case "down", "j":
			s.offset++
		case "pgup", "b":
			s.offset -= s.pageSize()
		case "pgdown", "f", " ":
			s.offset += s.pageSize()
		case "home", "g":
			s.offset = 0
		case "end", "G":
			s.offset = s.maxOffset()
		}
		s.offset = min(max(s.offset, 0), s.maxOffset())
	}
	return s, nil
}

// View implements tea.Model
func (s *PreviewScreen) View() string {
	end := min(s.offset+s.pageSize(), len(s.lines))
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("PHYSIOREPORT WIZARD - Preview"),
		strings.Join(s.lines[s.offset:end], "\n"),
		"",
		components.KeysStyle.Render("Up/Down: Scroll | PgUp/PgDn: Page | Esc: Back"),
	)
}

// Done reports whether the user left the preview.
func (s *PreviewScreen) Done() bool { return s.done }

// Offset returns the first visible line.
func (s *PreviewScreen) Offset() int { return s.offset }
