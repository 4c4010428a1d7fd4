// Package wizard provides an interactive TUI for editing a report and
// previewing, copying or saving the result.
package wizard

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/physioreport/cmd/physioreport/wizard/components"
	"github.com/mrsinham/physioreport/cmd/physioreport/wizard/screens"
	"github.com/mrsinham/physioreport/internal/comparison"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/render"
	"github.com/mrsinham/physioreport/internal/report"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// Phase represents the current screen of the wizard.
type Phase int

const (
	PhasePatient Phase = iota
	PhaseAssessment
	PhaseDischarge
	PhaseItems
	PhaseSummary
	PhasePreview
	PhaseSave
	PhaseError
)

// DefaultSavePath is offered when the report was not loaded from a file.
const DefaultSavePath = "report.yaml"

var assessmentNames = [...]string{"Initial", "Interim", "Final"}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// Options configure a wizard run.
type Options struct {
	// Assembler builds previews; nil uses an uncached one.
	Assembler *report.Assembler
	// Width wraps the preview; 0 follows the terminal width.
	Width int
}

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	data *report.ReportData
	opts Options

	phase           Phase
	assessmentIndex int

	formScreen    *screens.FormScreen
	itemsScreen   *screens.ItemsScreen
	summaryScreen *screens.SummaryScreen
	previewScreen *screens.PreviewScreen
	errorScreen   *screens.ErrorScreen

	saveForm *huh.Form
	savePath string
	status   string

	width  int
	height int

	cancelled bool
	err       error
}

// NewWizard creates a wizard editing d in place. A nil d starts from an
// empty report. savePath is offered when saving.
func NewWizard(d *report.ReportData, savePath string, opts Options) *Wizard {
	if d == nil {
		empty := report.New()
		d = &empty
	}
	if opts.Assembler == nil {
		opts.Assembler = report.NewAssembler(nil)
	}
	if savePath == "" {
		savePath = DefaultSavePath
	}
	w := &Wizard{data: d, opts: opts, savePath: savePath}
	w.transitionToPatient()
	return w
}

// Data returns the report being edited.
func (w *Wizard) Data() *report.ReportData { return w.data }

// Phase returns the current phase.
func (w *Wizard) Phase() Phase { return w.phase }

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.formScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhasePatient, PhaseAssessment, PhaseDischarge:
		return w.updateForm(msg)
	case PhaseItems:
		return w.updateItems(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhasePreview:
		return w.updatePreview(msg)
	case PhaseSave:
		return w.updateSave(msg)
	case PhaseError:
		return w.updateError(msg)
	}
	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhasePatient, PhaseAssessment, PhaseDischarge:
		return w.formScreen.View()
	case PhaseItems:
		return w.itemsScreen.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhasePreview:
		return w.previewScreen.View()
	case PhaseSave:
		return w.viewSave()
	case PhaseError:
		return w.errorScreen.View()
	}
	return ""
}

func (w *Wizard) transitionToPatient() {
	w.phase = PhasePatient
	w.formScreen = screens.NewPatientScreen(w.data)
}

func (w *Wizard) assessment(i int) *findings.ClinicalFindings {
	return [...]*findings.ClinicalFindings{&w.data.Initial, &w.data.Interim, &w.data.Final}[i]
}

func (w *Wizard) transitionToAssessment(i int) {
	w.phase = PhaseAssessment
	w.assessmentIndex = i
	w.formScreen = screens.NewAssessmentScreen(assessmentNames[i], w.assessment(i))
}

func (w *Wizard) transitionToDischarge() {
	w.phase = PhaseDischarge
	w.formScreen = screens.NewDischargeScreen(&w.data.Discharge)
}

func (w *Wizard) transitionToItems() {
	w.phase = PhaseItems
	w.itemsScreen = screens.NewItemsScreen(&w.data.Discharge, w.comparisonItems())
}

func (w *Wizard) comparisonItems() []comparison.Item {
	return comparison.Compare(w.data.Initial, w.data.Final, textgen.PronounsFor(w.data.Patient.Sex))
}

func (w *Wizard) transitionToSummary() tea.Cmd {
	w.phase = PhaseSummary
	w.summaryScreen = screens.NewSummaryScreen(*w.data, w.status)
	w.status = ""
	return w.summaryScreen.Init()
}

// next moves past the current form screen; prev goes back one.
func (w *Wizard) next() tea.Cmd {
	switch w.phase {
	case PhasePatient:
		w.transitionToAssessment(0)
	case PhaseAssessment:
		if w.assessmentIndex+1 < len(assessmentNames) {
			w.transitionToAssessment(w.assessmentIndex + 1)
		} else {
			w.transitionToDischarge()
		}
	case PhaseDischarge:
		w.transitionToItems()
		return w.itemsScreen.Init()
	}
	return w.formScreen.Init()
}

func (w *Wizard) prev() tea.Cmd {
	switch w.phase {
	case PhaseAssessment:
		if w.assessmentIndex == 0 {
			w.transitionToPatient()
		} else {
			w.transitionToAssessment(w.assessmentIndex - 1)
		}
	case PhaseDischarge:
		w.transitionToAssessment(len(assessmentNames) - 1)
	case PhaseItems:
		w.transitionToDischarge()
	default:
		w.transitionToPatient()
	}
	return w.formScreen.Init()
}

func (w *Wizard) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.formScreen.Update(msg)
	if fs, ok := model.(*screens.FormScreen); ok {
		w.formScreen = fs
	}

	switch {
	case w.formScreen.Cancelled():
		w.cancelled = true
		return w, tea.Quit
	case w.formScreen.Back():
		if w.phase == PhasePatient {
			return w, w.transitionToSummary()
		}
		return w, w.prev()
	case w.formScreen.Done():
		return w, w.next()
	}
	return w, cmd
}

func (w *Wizard) updateItems(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.itemsScreen.Update(msg)
	if is, ok := model.(*screens.ItemsScreen); ok {
		w.itemsScreen = is
	}

	switch {
	case w.itemsScreen.Cancelled():
		w.cancelled = true
		return w, tea.Quit
	case w.itemsScreen.Back():
		return w, w.prev()
	case w.itemsScreen.Done():
		return w, w.transitionToSummary()
	}
	return w, cmd
}

func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}
	if !w.summaryScreen.Done() {
		return w, cmd
	}

	switch w.summaryScreen.Action() {
	case screens.ActionPreview:
		w.phase = PhasePreview
		w.previewScreen = screens.NewPreviewScreen(w.preview())
		if w.height > 0 {
			w.previewScreen.Update(tea.WindowSizeMsg{Width: w.width, Height: w.height})
		}
		return w, w.previewScreen.Init()
	case screens.ActionCopy:
		if err := w.copyReport(); err != nil {
			return w.fail(err)
		}
		w.status = "Report copied to clipboard."
		return w, w.transitionToSummary()
	case screens.ActionSave:
		return w, w.transitionToSave()
	case screens.ActionEdit:
		w.transitionToPatient()
		return w, w.formScreen.Init()
	case screens.ActionQuit:
		return w, tea.Quit
	}
	return w, cmd
}

func (w *Wizard) preview() string {
	width := w.opts.Width
	if width == 0 {
		width = w.width
	}
	return render.TerminalString(w.opts.Assembler.Assemble(*w.data), width)
}

func (w *Wizard) copyReport() error {
	text, err := render.String(w.opts.Assembler.Assemble(*w.data), render.Text)
	if err != nil {
		return err
	}
	if err := copyToClipboard(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

func (w *Wizard) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		w.cancelled = true
		return w, tea.Quit
	}
	w.previewScreen.Update(msg)
	if w.previewScreen.Done() {
		return w, w.transitionToSummary()
	}
	return w, nil
}

func (w *Wizard) transitionToSave() tea.Cmd {
	w.phase = PhaseSave
	w.saveForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("save_path").
				Title("Save report to").
				Description("Path of the YAML report file").
				Value(&w.savePath).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)
	return w.saveForm.Init()
}

func (w *Wizard) updateSave(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return w, w.transitionToSummary()
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveForm = f
	}
	if w.saveForm.State == huh.StateCompleted {
		return w.save()
	}
	return w, cmd
}

func (w *Wizard) save() (tea.Model, tea.Cmd) {
	if err := report.Save(*w.data, w.savePath); err != nil {
		return w.fail(err)
	}
	w.status = "Report saved to " + w.savePath
	return w, w.transitionToSummary()
}

func (w *Wizard) viewSave() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Save Report"),
		"",
		w.saveForm.View(),
		"",
		components.KeysStyle.Render("Enter: Save | Esc: Back"),
	)
}

func (w *Wizard) fail(err error) (tea.Model, tea.Cmd) {
	w.err = err
	w.phase = PhaseError
	w.errorScreen = screens.NewErrorScreen(err)
	return w, nil
}

func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}
	if w.errorScreen.Done() {
		w.err = nil
		return w, tea.Batch(cmd, w.transitionToSummary())
	}
	return w, cmd
}

// Run starts the interactive wizard. If from is set, the report is loaded
// from that YAML file and saved back there by default.
func Run(from string, opts Options) error {
	var data *report.ReportData
	savePath := ""

	if from != "" {
		absPath, err := filepath.Abs(from)
		if err != nil {
			return fmt.Errorf("resolving report path: %w", err)
		}
		loaded, err := report.Load(absPath)
		if err != nil {
			return fmt.Errorf("loading report: %w", err)
		}
		data, savePath = &loaded, absPath
	}

	w := NewWizard(data, savePath, opts)
	p := tea.NewProgram(w, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if fw, ok := finalModel.(*Wizard); ok && !fw.cancelled && fw.err != nil {
		return fw.err
	}
	return nil
}
