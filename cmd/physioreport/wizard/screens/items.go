package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mrsinham/physioreport/cmd/physioreport/wizard/components"
	"github.com/mrsinham/physioreport/internal/comparison"
	"github.com/mrsinham/physioreport/internal/discharge"
)

var (
	itemCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)

	itemOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	itemEditedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// ItemsScreen picks, orders and edits the comparison items that make up the
// numbered summary. Every change goes through the discharge update helpers.
type ItemsScreen struct {
	state *discharge.State
	items []comparison.Item
	cursor int

	editID   string
	editText string
	editForm *huh.Form

	width     int
	done      bool
	back      bool
	cancelled bool
}

// NewItemsScreen reconciles the stored order with the current items.
func NewItemsScreen(s *discharge.State, items []comparison.Item) *ItemsScreen {
	*s = discharge.Reconcile(*s, items)
	return &ItemsScreen{state: s, items: items, width: 100}
}

func (s *ItemsScreen) ordered() []comparison.Item {
	return comparison.Apply(s.state.ItemOrder, s.items)
}

// Init implements tea.Model
func (s *ItemsScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ItemsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = wsm.Width
	}
	if s.editForm != nil {
		return s.updateEdit(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	ordered := s.ordered()
	current := func() (comparison.Item, bool) {
		if s.cursor < len(ordered) {
			return ordered[s.cursor], true
		}
		return comparison.Item{}, false
	}

	switch key.String() {
	case "ctrl+c":
		s.cancelled = true
		return s, tea.Quit
	case "esc":
		s.back = true
	case "enter":
		s.done = true
	case "up", "k":
		s.cursor = max(s.cursor-1, 0)
	case "down", "j":
		s.cursor = min(s.cursor+1, max(len(ordered)-1, 0))
	case " ", "x":
		if it, ok := current(); ok {
			if s.state.IsSelected(it.ID) {
				*s.state = discharge.Deselect(*s.state, it.ID)
			} else {
				*s.state = discharge.Select(*s.state, it.ID)
			}
		}
	case "a":
		*s.state = discharge.SelectAll(*s.state, s.items)
	case "K", "shift+up":
		if it, ok := current(); ok {
			*s.state = discharge.Move(*s.state, s.items, it.ID, -1)
			s.cursor = max(s.cursor-1, 0)
		}
	case "J", "shift+down":
		if it, ok := current(); ok {
			*s.state = discharge.Move(*s.state, s.items, it.ID, 1)
			s.cursor = min(s.cursor+1, len(ordered)-1)
		}
	case "r":
		if it, ok := current(); ok {
			*s.state = discharge.ClearEdit(*s.state, it.ID)
		}
	case "e":
		if it, ok := current(); ok {
			return s, s.startEdit(it)
		}
	}
	return s, nil
}

func (s *ItemsScreen) startEdit(it comparison.Item) tea.Cmd {
	s.editID = it.ID
	s.editText = it.Text
	if edited, ok := s.state.EditedTexts[it.ID]; ok {
		s.editText = edited
	}
	s.editForm = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Key("item_text").
				Title("Edit summary line").
				Description("Leave blank to restore the generated text").
				Value(&s.editText),
		),
	).WithShowHelp(false)
	return s.editForm.Init()
}

func (s *ItemsScreen) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.editForm = nil
			return s, nil
		}
	}

	form, cmd := s.editForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.editForm = f
	}
	if s.editForm.State == huh.StateCompleted {
		s.applyEdit()
		return s, nil
	}
	return s, cmd
}

func (s *ItemsScreen) applyEdit() {
	if strings.TrimSpace(s.editText) == "" {
		*s.state = discharge.ClearEdit(*s.state, s.editID)
	} else {
		*s.state = discharge.Edit(*s.state, s.editID, s.editText)
	}
	s.editForm = nil
	s.editID = ""
}

// View implements tea.Model
func (s *ItemsScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}
	title := components.TitleStyle.Render("PHYSIOREPORT WIZARD - Summary Items")
	if s.editForm != nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.editForm.View(), "",
			components.KeysStyle.Render("Enter: Save | Esc: Discard"))
	}

	ordered := s.ordered()
	var sb strings.Builder
	if len(ordered) == 0 {
		sb.WriteString(itemOffStyle.Render("No changes between the initial and final assessments."))
		sb.WriteString("\n")
	}
	for i, it := range ordered {
		s.writeItem(&sb, i, it)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		components.SubtitleStyle.Render(fmt.Sprintf("%d of %d selected", len(s.state.SelectedItems), len(ordered))),
		sb.String(),
		components.KeysStyle.Render("Space: Toggle | a: All | K/J: Move | e: Edit | r: Revert | Enter: Continue | Esc: Back"),
	)
}

func (s *ItemsScreen) writeItem(sb *strings.Builder, i int, it comparison.Item) {
	cursor := "  "
	if i == s.cursor {
		cursor = itemCursorStyle.Render("> ")
	}
	box := "[ ]"
	if s.state.IsSelected(it.ID) {
		box = "[x]"
	}

	text := it.Text
	style := lipgloss.NewStyle()
	if edited, ok := s.state.EditedTexts[it.ID]; ok && strings.TrimSpace(edited) != "" {
		text = edited
		style = itemEditedStyle
	} else if !s.state.IsSelected(it.ID) {
		style = itemOffStyle
	}
	text = runewidth.Truncate(strings.Join(strings.Fields(text), " "), max(s.width-8, 20), "…")

	sb.WriteString(cursor)
	sb.WriteString(box)
	sb.WriteString(" ")
	sb.WriteString(style.Render(text))
	sb.WriteString("\n")
}

// Done reports whether the user continued.
func (s *ItemsScreen) Done() bool { return s.done }

// Back reports whether the user asked for the previous screen.
func (s *ItemsScreen) Back() bool { return s.back }

// Cancelled reports whether the user quit.
func (s *ItemsScreen) Cancelled() bool { return s.cancelled }
