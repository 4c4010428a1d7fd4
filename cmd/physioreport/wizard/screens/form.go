// Package screens holds the wizard's bubbletea screens.
package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/physioreport/cmd/physioreport/wizard/components"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// FormScreen is a titled huh form with the contextual help panel. onSubmit
// copies the bound values back into the report once the form completes.
type FormScreen struct {
	title     string
	subtitle  string
	form      *huh.Form
	helpPanel *components.HelpPanel
	onSubmit  func()
	width     int
	height    int
	done      bool
	back      bool
	cancelled bool
}

func newFormScreen(title, subtitle string, onSubmit func(), groups ...*huh.Group) *FormScreen {
	return &FormScreen{
		title:     title,
		subtitle:  subtitle,
		form:      huh.NewForm(groups...).WithShowHelp(false).WithShowErrors(true),
		helpPanel: components.NewHelpPanel(),
		onSubmit:  onSubmit,
	}
}

// Init implements tea.Model
func (s *FormScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *FormScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.back = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetWidth(msg.Width / 2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted && !s.done {
		s.done = true
		if s.onSubmit != nil {
			s.onSubmit()
		}
	}

	return s, cmd
}

// View implements tea.Model
func (s *FormScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(s.title),
		components.SubtitleStyle.Render(s.subtitle),
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.KeysStyle.Render("Tab: Next field | Enter: Submit | Esc: Back | Ctrl+C: Quit"),
	)
}

// Done reports whether the form was submitted.
func (s *FormScreen) Done() bool { return s.done }

// Back reports whether the user asked for the previous screen.
func (s *FormScreen) Back() bool { return s.back }

// Cancelled reports whether the user quit.
func (s *FormScreen) Cancelled() bool { return s.cancelled }

// Submit runs the submit hook without driving the form. Tests and
// non-interactive callers use it to apply the bound values.
func (s *FormScreen) Submit() {
	s.done = true
	if s.onSubmit != nil {
		s.onSubmit()
	}
}

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, ok := textgen.ParseDate(s); !ok {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
