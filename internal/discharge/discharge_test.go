package discharge

import (
	"reflect"
	"testing"

	"github.com/mrsinham/physioreport/internal/comparison"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

var male = textgen.PronounsFor("Male")

func sampleItems() []comparison.Item {
	return []comparison.Item{
		{ID: comparison.IDPain, Category: comparison.CategoryPain, Text: "Pain text."},
		{ID: comparison.IDAROM, Category: comparison.CategoryAROM, Text: "AROM text."},
		{ID: comparison.IDMusclePower, Category: comparison.CategoryMusclePower, Text: "Power text."},
	}
}

func TestCompose_FourLines(t *testing.T) {
	s := State{
		SelectedItems:        []string{comparison.IDAROM, comparison.IDPain},
		Type:                 TypeCompleted,
		DischargeDate:        "2024-03-05",
		OtherRelevantChanges: "He returned to work.",
	}
	lines := Compose(sampleItems(), s, male)
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4: %+v", len(lines), lines)
	}
	wantIDs := []string{comparison.IDPain, comparison.IDAROM, IDOtherRelevantChanges, IDDischarge}
	for i, l := range lines {
		if l.Number != i+1 {
			t.Errorf("line %d numbered %d", i, l.Number)
		}
		if l.ID != wantIDs[i] {
			t.Errorf("line %d id = %q, want %q", i, l.ID, wantIDs[i])
		}
	}
	if lines[3].Text != "He was discharged from physiotherapy on 5 Mar 2024 upon completion of treatment." {
		t.Errorf("discharge sentence = %q", lines[3].Text)
	}
}

func TestCompose_Idempotent(t *testing.T) {
	s := State{SelectedItems: []string{comparison.IDPain}, Type: TypeOngoing}
	a := Compose(sampleItems(), s, male)
	b := Compose(sampleItems(), s, male)
	if !reflect.DeepEqual(a, b) {
		t.Error("Compose is not idempotent")
	}
}

func TestCompose_EditRoundTrip(t *testing.T) {
	initial, final := findings.New(findings.SideRight, findings.LocationKnee), findings.New(findings.SideRight, findings.LocationKnee)
	initial.Complaints.PainIntensity = "8"
	final.Complaints.PainIntensity = "3"
	items := comparison.Compare(initial, final, male)
	generated := items[0].Text

	s := Select(State{}, comparison.IDPain)
	s = Edit(s, comparison.IDPain, "Pain settled.")

	recomputed := comparison.Compare(initial, final, male)
	lines := Compose(recomputed, s, male)
	if lines[0].Text != "Pain settled." || !lines[0].Edited {
		t.Errorf("edit not preserved: %+v", lines[0])
	}
	if lines[0].DefaultText != generated {
		t.Errorf("default text = %q, want %q", lines[0].DefaultText, generated)
	}

	cleared := Compose(recomputed, ClearEdit(s, comparison.IDPain), male)
	if cleared[0].Text != generated || cleared[0].Edited {
		t.Errorf("clearing the edit did not revert: %+v", cleared[0])
	}
}

func TestCompose_RespectsOrderAndSelection(t *testing.T) {
	s := State{
		SelectedItems: []string{comparison.IDPain, comparison.IDMusclePower},
		ItemOrder:     []string{comparison.IDMusclePower, comparison.IDAROM, comparison.IDPain},
	}
	lines := Compose(sampleItems(), s, male)
	var ids []string
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	if !reflect.DeepEqual(ids, []string{comparison.IDMusclePower, comparison.IDPain}) {
		t.Errorf("ids = %v", ids)
	}
}

func TestSentence(t *testing.T) {
	tests := []struct {
		name string
		s    State
		want string
	}{
		{"completed", State{Type: TypeCompleted, DischargeDate: "2024-01-05"}, "He was discharged from physiotherapy on 5 Jan 2024 upon completion of treatment."},
		{"static", State{Type: TypeStatic, DischargeDate: "2024-01-05"}, "He was discharged from physiotherapy on 5 Jan 2024 due to static progress."},
		{"ongoing", State{Type: TypeOngoing}, "He is still receiving physiotherapy at our department."},
		{"defaulted", State{Type: TypeDefaulted, DischargeDate: "2024-02-10"}, "He defaulted physiotherapy follow-up since 10 Feb 2024 and his case was closed."},
		{"cancelled", State{Type: TypeCancelled, CancellationDate: "2024-02-01", AppointmentDate: "2024-02-08", CancellationReason: "Work commitments."},
			"On 1 Feb 2024, he cancelled his physiotherapy appointment scheduled on 8 Feb 2024 due to work commitments and his case was closed."},
		{"missing date", State{Type: TypeCompleted}, "He was discharged from physiotherapy on [date] upon completion of treatment."},
		{"malformed date", State{Type: TypeDefaulted, DischargeDate: "soon"}, "He defaulted physiotherapy follow-up since N/A and his case was closed."},
		{"none", State{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sentence(tt.s, male); got != tt.want {
				t.Errorf("Sentence = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMissingFields(t *testing.T) {
	tests := []struct {
		s    State
		want []string
	}{
		{State{}, []string{"discharge_type"}},
		{State{Type: TypeCompleted}, []string{"discharge_date"}},
		{State{Type: TypeStatic, DischargeDate: "2024-01-01"}, nil},
		{State{Type: TypeOngoing}, nil},
		{State{Type: TypeCancelled, AppointmentDate: "2024-01-01"}, []string{"cancellation_date", "cancellation_reason"}},
	}
	for _, tt := range tests {
		if got := MissingFields(tt.s); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("MissingFields(%q) = %v, want %v", tt.s.Type, got, tt.want)
		}
	}
}

func TestSectionTitle(t *testing.T) {
	for typ, want := range map[Type]string{
		TypeCompleted: "DISCHARGE SUMMARY",
		TypeStatic:    "DISCHARGE SUMMARY",
		TypeNone:      "DISCHARGE SUMMARY",
		TypeOngoing:   "PROGRESS SUMMARY",
		TypeDefaulted: "PROGRESS SUMMARY",
		TypeCancelled: "PROGRESS SUMMARY",
	} {
		if got := typ.SectionTitle(); got != want {
			t.Errorf("%q.SectionTitle() = %q, want %q", typ, got, want)
		}
	}
}

func TestUpdates_DoNotMutateInput(t *testing.T) {
	s := State{SelectedItems: []string{"pain"}, EditedTexts: map[string]string{"pain": "x"}}
	_ = Select(s, "arom")
	_ = Deselect(s, "pain")
	_ = Edit(s, "pain", "y")
	_ = ClearEdit(s, "pain")
	if !reflect.DeepEqual(s.SelectedItems, []string{"pain"}) || s.EditedTexts["pain"] != "x" {
		t.Errorf("input state mutated: %+v", s)
	}
}

func TestMove(t *testing.T) {
	items := sampleItems()
	s := Reconcile(State{}, items)
	if !reflect.DeepEqual(s.ItemOrder, []string{"pain", "arom", "muscle_power"}) {
		t.Fatalf("reconciled order = %v", s.ItemOrder)
	}
	if got := Move(s, items, "muscle_power", -2).ItemOrder; !reflect.DeepEqual(got, []string{"muscle_power", "pain", "arom"}) {
		t.Errorf("move up = %v", got)
	}
	if got := Move(s, items, "pain", 10).ItemOrder; !reflect.DeepEqual(got, []string{"arom", "muscle_power", "pain"}) {
		t.Errorf("move clamped = %v", got)
	}
	if got := Move(s, items, "unknown", 1).ItemOrder; !reflect.DeepEqual(got, s.ItemOrder) {
		t.Errorf("unknown id changed order: %v", got)
	}
}

func TestSelectAll(t *testing.T) {
	s := SelectAll(State{SelectedItems: []string{"pain"}}, sampleItems())
	if !reflect.DeepEqual(s.SelectedItems, []string{"pain", "arom", "muscle_power"}) {
		t.Errorf("SelectAll = %v", s.SelectedItems)
	}
}
