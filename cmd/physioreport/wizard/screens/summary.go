package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/physioreport/cmd/physioreport/wizard/components"
	"github.com/mrsinham/physioreport/internal/report"
)

// SummaryAction is the action picked on the summary screen.
type SummaryAction string

const (
	ActionPreview SummaryAction = "preview"
	ActionCopy    SummaryAction = "copy"
	ActionSave    SummaryAction = "save"
	ActionEdit    SummaryAction = "edit"
	ActionQuit    SummaryAction = "quit"
)

var (
	summaryPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(1, 2)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Width(12)

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)

	summaryWarnStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))
)

// SummaryScreen shows the report at a glance, its warnings and the
// available actions.
type SummaryScreen struct {
	form      *huh.Form
	data      report.ReportData
	warnings  []report.Warning
	status    string
	action    SummaryAction
	done      bool
	cancelled bool
}

// NewSummaryScreen creates the summary for d. status is the outcome of the
// previous action, if any.
func NewSummaryScreen(d report.ReportData, status string) *SummaryScreen {
	s := &SummaryScreen{
		data:     d,
		warnings: report.Validate(d),
		status:   status,
		action:   ActionPreview,
	}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[SummaryAction]().
				Key("action").
				Title("Select an action").
				Options(
					huh.NewOption("Preview report", ActionPreview),
					huh.NewOption("Copy report to clipboard", ActionCopy),
					huh.NewOption("Save report to YAML", ActionSave),
					huh.NewOption("Back to edit", ActionEdit),
					huh.NewOption("Quit", ActionQuit),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)
	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.action = ActionEdit
			s.done = true
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}
	if s.form.State == huh.StateCompleted {
		s.done = true
	}
	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	var sb strings.Builder
	row := func(label, value string) {
		sb.WriteString(summaryLabelStyle.Render(label))
		sb.WriteString(summaryValueStyle.Render(orDash(value)))
		sb.WriteString("\n")
	}
	c := s.data.Initial.Complaints
	row("Patient", s.data.Patient.Name)
	row("Diagnosis", s.data.Diagnosis)
	row("Region", regionLabel(c.Side, c.Location))
	row("Discharge", string(s.data.Discharge.Type))
	row("Items", fmt.Sprintf("%d selected", len(s.data.Discharge.SelectedItems)))

	if len(s.warnings) > 0 {
		sb.WriteString("\n")
		for _, w := range s.warnings {
			sb.WriteString(summaryWarnStyle.Render("! " + w.String()))
			sb.WriteString("\n")
		}
	}

	parts := []string{
		components.TitleStyle.Render("PHYSIOREPORT WIZARD - Summary"),
		summaryPanelStyle.Render(strings.TrimRight(sb.String(), "\n")),
	}
	if s.status != "" {
		parts = append(parts, components.StatusStyle.Render(s.status))
	}
	parts = append(parts, "", s.form.View(), "",
		components.KeysStyle.Render("Enter: Select | Esc: Back to edit | Ctrl+C: Quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// Done reports whether an action was picked.
func (s *SummaryScreen) Done() bool { return s.done }

// Cancelled reports whether the user quit.
func (s *SummaryScreen) Cancelled() bool { return s.cancelled }

// Action returns the picked action.
func (s *SummaryScreen) Action() SummaryAction { return s.action }

// Warnings returns the validation warnings shown on the screen.
func (s *SummaryScreen) Warnings() []report.Warning { return s.warnings }
