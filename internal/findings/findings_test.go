package findings

import (
	"reflect"
	"testing"
)

func TestSpec_AllLocationsHaveQuestionnaire(t *testing.T) {
	for _, loc := range AllLocations() {
		spec := Spec(loc)
		if spec.Questionnaire == "" {
			t.Errorf("%s has no default questionnaire", loc)
		}
		if _, ok := LookupQuestionnaire(spec.Questionnaire); !ok {
			t.Errorf("%s questionnaire %q is not in the catalogue", loc, spec.Questionnaire)
		}
	}
}

func TestSpec_AROMUnit(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{LocationBack, "of full range"},
		{LocationNeck, "of full range"},
		{LocationShoulder, "degrees"},
		{LocationHand, "degrees"},
		{Location("elsewhere"), "degrees"},
	}
	for _, tt := range tests {
		t.Run(string(tt.loc), func(t *testing.T) {
			if got := Spec(tt.loc).AROMUnit; got != tt.want {
				t.Errorf("Spec(%q).AROMUnit = %q, want %q", tt.loc, got, tt.want)
			}
		})
	}
}

func TestSpec_RegionTraits(t *testing.T) {
	if !Spec(LocationBack).UsesMyotome() || !Spec(LocationNeck).UsesMyotome() {
		t.Error("back and neck should use myotome")
	}
	if Spec(LocationKnee).UsesMyotome() {
		t.Error("knee should not use myotome")
	}
	if !Spec(LocationHand).UsesDigits() || !Spec(LocationFoot).UsesDigits() {
		t.Error("hand and foot should use digits")
	}
	if !Spec(LocationWrist).UsesHandGrip || !Spec(LocationHand).UsesHandGrip {
		t.Error("wrist and hand should use hand grip")
	}
	if got := Spec(LocationBack).MyotomeLevels; !reflect.DeepEqual(got, []string{"L2", "L3", "L4", "L5", "S1"}) {
		t.Errorf("back myotome levels = %v", got)
	}
	if got := Spec(LocationNeck).MyotomeLevels; !reflect.DeepEqual(got, []string{"C5", "C6", "C7", "C8", "T1"}) {
		t.Errorf("neck myotome levels = %v", got)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"shoulder", true},
		{"back", true},
		{"Shoulder", false},
		{"", false},
		{"elbowish", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.input); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSetLocation_ShoulderToAnkle(t *testing.T) {
	f := New(SideRight, LocationShoulder)
	f.Objective.AROMMovements[0].AROM = "120"
	f.Objective.FingersToesData = []Digit{{Name: "Thumb", Joints: []JointRange{{JointType: "MCP", Range: "40"}}}}

	got := SetLocation(f, LocationAnkle)

	want := Spec(LocationAnkle).NewMovements()
	if !reflect.DeepEqual(got.Objective.AROMMovements, want) {
		t.Errorf("AROM movements = %+v, want %+v", got.Objective.AROMMovements, want)
	}
	if got.Objective.FingersToesData != nil {
		t.Errorf("fingers/toes data should be cleared, got %+v", got.Objective.FingersToesData)
	}
	if got.Complaints.Location != LocationAnkle {
		t.Errorf("location = %q, want ankle", got.Complaints.Location)
	}
	if f.Objective.AROMMovements[0].AROM != "120" {
		t.Error("SetLocation mutated its input")
	}
}

func TestSetLocation_PreservesGradedMusclePower(t *testing.T) {
	f := New(SideRight, LocationShoulder)
	f.Objective.MusclePower[1].RightGrade = "4"
	before := cloneSlice(f.Objective.MusclePower)

	got := SetLocation(f, LocationHand)

	if !reflect.DeepEqual(got.Objective.MusclePower, before) {
		t.Errorf("graded muscle power was not preserved: %+v", got.Objective.MusclePower)
	}
	if len(got.Objective.FingersToesData) != 5 {
		t.Errorf("hand should get 5 digits, got %d", len(got.Objective.FingersToesData))
	}
}

func TestSetLocation_ResetsUngradedMusclePower(t *testing.T) {
	f := New(SideLeft, LocationShoulder)
	got := SetLocation(f, LocationKnee)

	want := Spec(LocationKnee).NewMusclePower()
	if !reflect.DeepEqual(got.Objective.MusclePower, want) {
		t.Errorf("muscle power = %+v, want %+v", got.Objective.MusclePower, want)
	}
}

func TestSetLocation_MyotomeForSpinalRegions(t *testing.T) {
	f := New(SideNone, LocationKnee)
	got := SetLocation(f, LocationNeck)
	if len(got.Objective.Myotome) != 5 || got.Objective.Myotome[0].Group != "C5" {
		t.Errorf("neck myotome rows = %+v", got.Objective.Myotome)
	}

	graded := got
	graded.Objective.Myotome = cloneSlice(got.Objective.Myotome)
	graded.Objective.Myotome[2].LeftGrade = "3"
	back := SetLocation(graded, LocationBack)
	if back.Objective.Myotome[0].Group != "C5" {
		t.Error("graded myotome rows should survive a region switch")
	}
}

func TestHasAnyData(t *testing.T) {
	empty := New(SideRight, LocationKnee)
	empty.Date = "2024-02-01"
	if empty.HasAnyData() {
		t.Error("fresh findings with only date/side/location should be empty")
	}

	tests := []struct {
		name string
		edit func(f *ClinicalFindings)
	}{
		{"pain", func(f *ClinicalFindings) { f.Complaints.PainIntensity = "4" }},
		{"symptom", func(f *ClinicalFindings) { f.Complaints.OtherSymptoms = []Symptom{{Symptom: "numbness"}} }},
		{"arom", func(f *ClinicalFindings) { f.Objective.AROMMovements[0].AROM = "90" }},
		{"not tested flag", func(f *ClinicalFindings) { f.Objective.MusclePowerNotTested = true }},
		{"grade", func(f *ClinicalFindings) { f.Objective.MusclePower[0].LeftGrade = "5" }},
		{"grip", func(f *ClinicalFindings) { f.Objective.HandGripStrength.Left.PinchGrip = "3" }},
		{"gait", func(f *ClinicalFindings) { f.Objective.WalkingAid = "stick" }},
		{"slr", func(f *ClinicalFindings) {
			f.Objective.SpecialTests = []SpecialTest{{Kind: TestStraightLegRaise, LeftResult: ResultNegative}}
		}},
		{"symptom intensity only", func(f *ClinicalFindings) { f.Complaints.OtherSymptoms = []Symptom{{Intensity: "3"}} }},
		{"activity aid only", func(f *ClinicalFindings) { f.Complaints.Activities2 = []Activity{{Aid: "stick"}} }},
		{"activity unit only", func(f *ClinicalFindings) { f.Complaints.Activities1 = []Activity{{Unit: "hours"}} }},
		{"splint type", func(f *ClinicalFindings) { f.Objective.SplintType = "knee brace" }},
		{"tenderness area", func(f *ClinicalFindings) { f.Objective.TendernessArea = "medial joint line" }},
		{"swelling area", func(f *ClinicalFindings) { f.Objective.SwellingArea = "patella" }},
		{"temperature area", func(f *ClinicalFindings) { f.Objective.TemperatureArea = "patella" }},
		{"sensation area", func(f *ClinicalFindings) { f.Objective.SensationArea = "lateral calf" }},
		{"sensation percentage", func(f *ClinicalFindings) { f.Objective.SensationPercentage = "50" }},
		{"reflex detail", func(f *ClinicalFindings) { f.Objective.ReflexDetail = "brisk knee jerk" }},
		{"toes rom", func(f *ClinicalFindings) { f.Objective.ToesROM = "full" }},
		{"named test name only", func(f *ClinicalFindings) {
			f.Objective.SpecialTests = []SpecialTest{{Kind: TestNamed, TestName: "Lachman test"}}
		}},
		{"slr angle only", func(f *ClinicalFindings) {
			f.Objective.SpecialTests = []SpecialTest{{Kind: TestStraightLegRaise, Angle: "60"}}
		}},
		{"questionnaire name only", func(f *ClinicalFindings) { f.Objective.Questionnaires = []Questionnaire{{Name: "LEFS"}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := empty.Clone()
			tt.edit(&f)
			if !f.HasAnyData() {
				t.Errorf("%s should count as data", tt.name)
			}
		})
	}

	skeleton := empty.Clone()
	skeleton.Objective.SpecialTests = []SpecialTest{{Kind: TestNamed}}
	if skeleton.HasAnyData() {
		t.Error("a special test row with only its kind should not count as data")
	}
}

func TestClone_IsDeep(t *testing.T) {
	f := New(SideRight, LocationHand)
	f.Objective.FingersToesData[0].Joints[0].Range = "30"
	c := f.Clone()
	c.Objective.FingersToesData[0].Joints[0].Range = "60"
	if f.Objective.FingersToesData[0].Joints[0].Range != "30" {
		t.Error("Clone shares digit joints with the original")
	}
}

func TestLookupQuestionnaire(t *testing.T) {
	q, ok := LookupQuestionnaire(" quickdash ")
	if !ok || q.MaxScore != "100" {
		t.Errorf("LookupQuestionnaire(quickdash) = %+v, %v", q, ok)
	}
	if _, ok := LookupQuestionnaire("SF-36"); ok {
		t.Error("SF-36 should not be a known questionnaire")
	}
}
