// Package discharge composes the numbered discharge/progress summary from
// the selected comparison items, user edits and a closing statement.
package discharge

import (
	"fmt"
	"strings"

	"github.com/mrsinham/physioreport/internal/comparison"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// Type is how the episode of care ended, or that it has not.
type Type string

const (
	TypeNone      Type = ""
	TypeCompleted Type = "completed"
	TypeStatic    Type = "static"
	TypeOngoing   Type = "ongoing"
	TypeDefaulted Type = "defaulted"
	TypeCancelled Type = "cancelled"
)

// AllTypes returns every discharge type.
func AllTypes() []Type {
	return []Type{TypeCompleted, TypeStatic, TypeOngoing, TypeDefaulted, TypeCancelled}
}

// Valid reports whether t is unset or a known type.
func (t Type) Valid() bool {
	if t == TypeNone {
		return true
	}
	for _, v := range AllTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// SectionTitle is the report heading for the summary. Episodes that did
// not end in a discharge get a progress summary.
func (t Type) SectionTitle() string {
	switch t {
	case TypeDefaulted, TypeCancelled, TypeOngoing:
		return "PROGRESS SUMMARY"
	default:
		return "DISCHARGE SUMMARY"
	}
}

// Line ids for the entries that are not comparison items.
const (
	IDOtherRelevantChanges = "other_relevant_changes"
	IDDischarge            = "discharge"
)

const (
	phDate   = "[date]"
	phReason = "[reason]"
)

// State holds the user's choices for the summary. Comparison items are not
// stored, only their ids.
type State struct {
	SelectedItems []string          `yaml:"selected_items,omitempty"`
	EditedTexts   map[string]string `yaml:"edited_texts,omitempty"`
	ItemOrder     []string          `yaml:"item_order,omitempty"`

	Type                 Type   `yaml:"discharge_type"`
	DischargeDate        string `yaml:"discharge_date,omitempty"`
	CancellationDate     string `yaml:"cancellation_date,omitempty"`
	AppointmentDate      string `yaml:"appointment_date,omitempty"`
	CancellationReason   string `yaml:"cancellation_reason,omitempty"`
	OtherRelevantChanges string `yaml:"other_relevant_changes,omitempty"`
}

// Line is one numbered entry of the summary. DefaultText is the generated
// text even when an edit overrides it.
type Line struct {
	Number      int
	ID          string
	Text        string
	DefaultText string
	Edited      bool
}

// Compose builds the summary: selected items in the reconciled user order
// with edits applied, then other relevant changes, then the closing
// statement, numbered from 1. Equal inputs give equal output.
func Compose(items []comparison.Item, s State, p textgen.Pronouns) []Line {
	var lines []Line
	ordered := comparison.Apply(comparison.MergeOrder(s.ItemOrder, items), items)
	for _, it := range ordered {
		if !s.IsSelected(it.ID) {
			continue
		}
		line := Line{ID: it.ID, Text: it.Text, DefaultText: it.Text}
		if edited, ok := s.EditedTexts[it.ID]; ok && strings.TrimSpace(edited) != "" {
			line.Text = strings.TrimSpace(edited)
			line.Edited = true
		}
		lines = append(lines, line)
	}

	if other := strings.TrimSpace(s.OtherRelevantChanges); other != "" {
		lines = append(lines, Line{ID: IDOtherRelevantChanges, Text: other, DefaultText: other})
	}

	if sentence := Sentence(s, p); sentence != "" {
		lines = append(lines, Line{ID: IDDischarge, Text: sentence, DefaultText: sentence})
	}

	for i := range lines {
		lines[i].Number = i + 1
	}
	return lines
}

// Sentence returns the closing statement for the state's type, or "" when
// no type is chosen. Missing fields become placeholders.
func Sentence(s State, p textgen.Pronouns) string {
	his := p.LowerHis()
	switch s.Type {
	case TypeCompleted:
		return fmt.Sprintf("%s was discharged from physiotherapy on %s upon completion of treatment.", p.He, date(s.DischargeDate))
	case TypeStatic:
		return fmt.Sprintf("%s was discharged from physiotherapy on %s due to static progress.", p.He, date(s.DischargeDate))
	case TypeOngoing:
		return fmt.Sprintf("%s is still receiving physiotherapy at our department.", p.He)
	case TypeDefaulted:
		return fmt.Sprintf("%s defaulted physiotherapy follow-up since %s and %s case was closed.", p.He, date(s.DischargeDate), his)
	case TypeCancelled:
		reason := textgen.OrPlaceholder(textgen.LowercaseFirstWord(textgen.TrimSentence(s.CancellationReason)), phReason)
		return fmt.Sprintf("On %s, %s cancelled %s physiotherapy appointment scheduled on %s due to %s and %s case was closed.",
			date(s.CancellationDate), p.LowerHe(), his, date(s.AppointmentDate), reason, his)
	}
	return ""
}

func date(iso string) string {
	if strings.TrimSpace(iso) == "" {
		return phDate
	}
	return textgen.FormatDateOr(iso, "N/A")
}

// MissingFields lists the fields the chosen type requires but lacks, by
// their YAML names.
func MissingFields(s State) []string {
	var missing []string
	need := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	switch s.Type {
	case TypeNone:
		missing = append(missing, "discharge_type")
	case TypeCompleted, TypeStatic, TypeDefaulted:
		need("discharge_date", s.DischargeDate)
	case TypeCancelled:
		need("cancellation_date", s.CancellationDate)
		need("appointment_date", s.AppointmentDate)
		need("cancellation_reason", s.CancellationReason)
	}
	return missing
}
