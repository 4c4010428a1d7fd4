package screens

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrsinham/physioreport/internal/comparison"
	"github.com/mrsinham/physioreport/internal/discharge"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/report"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testItems() []comparison.Item {
	return []comparison.Item{
		{ID: comparison.IDPain, Category: comparison.CategoryPain, Text: "There was decrease in pain."},
		{ID: comparison.IDNGRCS, Category: comparison.CategoryNGRCS, Text: "He rated 6 out of 10."},
		{ID: comparison.IDWBStatus, Category: comparison.CategoryWBStatus, Text: "He was full weight bearing."},
	}
}

func TestApplyRegion_NewLocationSeedsRows(t *testing.T) {
	d := report.New()
	ApplyRegion(&d, findings.SideRight, findings.LocationKnee)

	for i, f := range []findings.ClinicalFindings{d.Initial, d.Interim, d.Final} {
		if f.Complaints.Side != findings.SideRight || f.Complaints.Location != findings.LocationKnee {
			t.Errorf("assessment %d region = %s %s", i, f.Complaints.Side, f.Complaints.Location)
		}
		if len(f.Objective.AROMMovements) == 0 {
			t.Errorf("assessment %d has no knee movements", i)
		}
	}
}

func TestApplyRegion_SideOnlyKeepsData(t *testing.T) {
	d := report.WithLocation(report.New(), findings.SideRight, findings.LocationKnee)
	d.Initial.Objective.AROMMovements[0].AROM = "0-90"

	ApplyRegion(&d, findings.SideLeft, findings.LocationKnee)

	if d.Final.Complaints.Side != findings.SideLeft {
		t.Errorf("side not applied: %s", d.Final.Complaints.Side)
	}
	if d.Initial.Objective.AROMMovements[0].AROM != "0-90" {
		t.Error("side change reset the movement table")
	}
}

func TestFormScreen_SubmitAndBack(t *testing.T) {
	d := report.New()
	d.Patient.Name = "  Chan Tai Man "
	s := NewPatientScreen(&d)
	s.Submit()
	if !s.Done() {
		t.Error("Submit did not mark the screen done")
	}
	if d.Patient.Name != "Chan Tai Man" {
		t.Errorf("name not trimmed: %q", d.Patient.Name)
	}

	s = NewAssessmentScreen("Final", &d.Final)
	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !s.Back() || s.Done() {
		t.Errorf("esc: back=%v done=%v", s.Back(), s.Done())
	}

	s = NewDischargeScreen(&d.Discharge)
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !s.Cancelled() || cmd == nil {
		t.Error("ctrl+c did not cancel")
	}
}

func TestValidateDate(t *testing.T) {
	for _, ok := range []string{"", "2024-03-05"} {
		if err := validateDate(ok); err != nil {
			t.Errorf("validateDate(%q) = %v", ok, err)
		}
	}
	if err := validateDate("5/3/2024"); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if err := validateRequired("patient name")(" "); err == nil {
		t.Error("expected error for blank required field")
	}
}

func TestItemsScreen_ToggleAndSelectAll(t *testing.T) {
	var st discharge.State
	s := NewItemsScreen(&st, testItems())
	if len(st.ItemOrder) != 3 {
		t.Fatalf("order not reconciled: %v", st.ItemOrder)
	}

	s.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !st.IsSelected(comparison.IDPain) {
		t.Error("space did not select the item under the cursor")
	}
	s.Update(tea.KeyMsg{Type: tea.KeySpace})
	if st.IsSelected(comparison.IDPain) {
		t.Error("second space did not deselect")
	}

	s.Update(runes("a"))
	if len(st.SelectedItems) != 3 {
		t.Errorf("select all: %v", st.SelectedItems)
	}
}

func TestItemsScreen_Move(t *testing.T) {
	var st discharge.State
	s := NewItemsScreen(&st, testItems())

	s.Update(runes("j"))
	s.Update(runes("K"))
	want := []string{comparison.IDNGRCS, comparison.IDPain, comparison.IDWBStatus}
	if strings.Join(st.ItemOrder, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", st.ItemOrder, want)
	}
	if s.cursor != 0 {
		t.Errorf("cursor did not follow the item: %d", s.cursor)
	}

	s.Update(runes("K"))
	if st.ItemOrder[0] != comparison.IDNGRCS {
		t.Errorf("move past the top changed the order: %v", st.ItemOrder)
	}
}

func TestItemsScreen_EditAndRevert(t *testing.T) {
	var st discharge.State
	s := NewItemsScreen(&st, testItems())

	s.Update(runes("e"))
	if s.editForm == nil || s.editText != "There was decrease in pain." {
		t.Fatalf("edit not started with the generated text: %q", s.editText)
	}
	s.editText = "Pain resolved."
	s.applyEdit()
	if st.EditedTexts[comparison.IDPain] != "Pain resolved." {
		t.Errorf("edit not stored: %v", st.EditedTexts)
	}
	if !strings.Contains(s.View(), "Pain resolved.") {
		t.Error("edited text not shown")
	}

	s.Update(runes("r"))
	if _, ok := st.EditedTexts[comparison.IDPain]; ok {
		t.Error("r did not revert the edit")
	}

	s.Update(runes("e"))
	s.editText = "  "
	s.applyEdit()
	if _, ok := st.EditedTexts[comparison.IDPain]; ok {
		t.Error("blank edit should restore the generated text")
	}
}

func TestItemsScreen_Empty(t *testing.T) {
	var st discharge.State
	s := NewItemsScreen(&st, nil)
	s.Update(tea.KeyMsg{Type: tea.KeySpace})
	s.Update(runes("K"))
	if !strings.Contains(s.View(), "No changes") {
		t.Error("empty list message missing")
	}
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !s.Done() {
		t.Error("enter did not continue")
	}
}

func TestSummaryScreen(t *testing.T) {
	d := report.New()
	s := NewSummaryScreen(d, "Report saved to r.yaml")
	if len(s.Warnings()) == 0 {
		t.Error("empty report should carry warnings")
	}
	view := s.View()
	for _, want := range []string{"Report saved to r.yaml", "patient.name"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !s.Done() || s.Action() != ActionEdit {
		t.Errorf("esc: done=%v action=%s", s.Done(), s.Action())
	}
}

func TestPreviewScreen_Scroll(t *testing.T) {
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, "line")
	}
	s := NewPreviewScreen(strings.Join(lines, "\n"))
	s.Update(tea.WindowSizeMsg{Width: 80, Height: 14})

	s.Update(tea.KeyMsg{Type: tea.KeyUp})
	if s.Offset() != 0 {
		t.Errorf("scrolled above the top: %d", s.Offset())
	}
	s.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if s.Offset() != 10 {
		t.Errorf("page down offset = %d, want 10", s.Offset())
	}
	s.Update(runes("G"))
	if s.Offset() != 40 {
		t.Errorf("end offset = %d, want 40", s.Offset())
	}
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	if s.Offset() != 40 {
		t.Errorf("scrolled past the end: %d", s.Offset())
	}
	s.Update(runes("q"))
	if !s.Done() {
		t.Error("q did not leave the preview")
	}
}

func TestErrorScreen(t *testing.T) {
	s := NewErrorScreen(errors.New("disk full"))
	if !strings.Contains(s.View(), "disk full") {
		t.Error("error message not shown")
	}
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !s.Done() {
		t.Error("enter did not dismiss")
	}
}
