package comparison

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

var male = textgen.PronounsFor("Male")

func itemByID(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func pair(side findings.Side, loc findings.Location) (findings.ClinicalFindings, findings.ClinicalFindings) {
	return findings.New(side, loc), findings.New(side, loc)
}

func TestCompare_Pain(t *testing.T) {
	initial, final := pair(findings.SideRight, findings.LocationShoulder)
	initial.Complaints.PainIntensity = "8"
	final.Complaints.PainIntensity = "3"

	it, ok := itemByID(Compare(initial, final, male), IDPain)
	if !ok {
		t.Fatal("no pain item")
	}
	if it.Category != CategoryPain {
		t.Errorf("category = %q", it.Category)
	}
	if !strings.Contains(it.Text, "reduction of") {
		t.Errorf("text %q lacks reduction", it.Text)
	}
	if !strings.HasSuffix(it.Text, "pain intensity 3 out of 10 as charted by NPRS.") {
		t.Errorf("text %q has wrong ending", it.Text)
	}
	want := "There was reduction of pain over his right shoulder from pain intensity 8 out of 10 to pain intensity 3 out of 10 as charted by NPRS."
	if it.Text != want {
		t.Errorf("text = %q, want %q", it.Text, want)
	}
}

// Pain compares the raw strings, so 9 -> 10 reads as a reduction.
func TestCompare_PainUsesStringOrdering(t *testing.T) {
	initial, final := pair(findings.SideLeft, findings.LocationKnee)
	initial.Complaints.PainIntensity = "9"
	final.Complaints.PainIntensity = "10"
	it, _ := itemByID(Compare(initial, final, male), IDPain)
	if !strings.Contains(it.Text, "reduction of") {
		t.Errorf("text = %q, want string-ordered reduction", it.Text)
	}
}

func TestCompare_PainNeedsBothSides(t *testing.T) {
	initial, final := pair(findings.SideLeft, findings.LocationKnee)
	final.Complaints.PainIntensity = "3"
	if _, ok := itemByID(Compare(initial, final, male), IDPain); ok {
		t.Error("pain item emitted without an initial value")
	}
}

func TestCompare_NGRCS(t *testing.T) {
	initial, final := pair(findings.SideLeft, findings.LocationKnee)
	final.Complaints.OverallImprovement = "7"
	it, ok := itemByID(Compare(initial, final, male), IDNGRCS)
	if !ok || it.Text != "He rated his overall improvement as 7 out of 10 as charted by NGRCS." {
		t.Errorf("ngrcs item = %+v, %v", it, ok)
	}
	final.Complaints.OverallImprovement = "0"
	if _, ok := itemByID(Compare(initial, final, male), IDNGRCS); ok {
		t.Error("NGRCS 0 must not be reported")
	}
}

func TestCompare_SymptomsAndActivities(t *testing.T) {
	initial, final := pair(findings.SideRight, findings.LocationHip)
	initial.Complaints.OtherSymptoms = []findings.Symptom{{Symptom: "Numbness", Intensity: "6"}}
	final.Complaints.OtherSymptoms = []findings.Symptom{{Symptom: "numbness", Intensity: "2"}, {Symptom: "tingling", Intensity: "1"}}
	initial.Complaints.Activities2 = []findings.Activity{{Activity: "Walking", Duration: "15", Aid: "stick"}}
	final.Complaints.Activities2 = []findings.Activity{{Activity: "walking", Duration: "1", Unit: "hour"}}
	initial.Complaints.Activities1 = []findings.Activity{{Activity: "Sitting", Duration: "45"}}
	final.Complaints.Activities1 = []findings.Activity{{Activity: "Sitting", Duration: "30"}}

	items := Compare(initial, final, male)

	sym, ok := itemByID(items, "symptom_numbness")
	if !ok {
		t.Fatalf("no symptom item in %+v", items)
	}
	if sym.Text != "There was reduction of numbness over his right hip from intensity 6 out of 10 to intensity 2 out of 10." {
		t.Errorf("symptom text = %q", sym.Text)
	}
	if _, ok := itemByID(items, "symptom_tingling"); ok {
		t.Error("symptom without a baseline must not be compared")
	}

	walk, ok := itemByID(items, "activity_walking")
	if !ok {
		t.Fatal("no walking item")
	}
	if walk.Text != "There was increase of walking tolerance from 15 minutes with stick to 1 hour without aid." {
		t.Errorf("walking text = %q", walk.Text)
	}
	sit, _ := itemByID(items, "activity_sitting")
	if sit.Text != "There was reduction of sitting tolerance from 45 minutes to 30 minutes." {
		t.Errorf("sitting text = %q", sit.Text)
	}
}

func TestCompare_LimitationAndWB(t *testing.T) {
	initial, final := pair(findings.SideRight, findings.LocationKnee)
	initial.Complaints.OtherFunctionalLimitation = "Squatting."
	final.Complaints.OtherFunctionalLimitation = "Kneeling"
	initial.Objective.WBStatus = "partial weight bearing"
	final.Objective.WBStatus = "full weight bearing"

	items := Compare(initial, final, male)
	lim, _ := itemByID(items, IDOtherFunctionalLimitation)
	if lim.Text != "His other functional limitation changed from squatting initially to kneeling at final assessment." {
		t.Errorf("limitation text = %q", lim.Text)
	}
	wb, _ := itemByID(items, IDWBStatus)
	if wb.Text != "His weight bearing status changed from partial weight bearing to full weight bearing." {
		t.Errorf("wb text = %q", wb.Text)
	}
}

func TestCompare_AROMMovements(t *testing.T) {
	initial, final := pair(findings.SideRight, findings.LocationShoulder)
	initial.Objective.AROMMovements[0].AROM = "90"
	final.Objective.AROMMovements[0].AROM = "150"
	initial.Objective.AROMMovements[2].AROM = "80"
	final.Objective.AROMMovements[2].AROM = "80"
	final.Objective.AROMMovements[3].AROM = "30"

	it, ok := itemByID(Compare(initial, final, male), IDAROM)
	if !ok {
		t.Fatal("no arom item")
	}
	want := "AROM of his right shoulder showed increase of flexion from 90 to 150 degrees and no change of abduction at 80 degrees."
	if it.Text != want {
		t.Errorf("text = %q, want %q", it.Text, want)
	}
}

func TestCompare_AROMNotTestedTransition(t *testing.T) {
	initial, final := pair(findings.SideRight, findings.LocationShoulder)
	initial.Objective.AROMNotTested = true
	final.Objective.AROMMovements = []findings.Movement{{Movement: "Flexion", AROM: "90"}}

	it, ok := itemByID(Compare(initial, final, male), IDAROM)
	if !ok {
		t.Fatal("no arom item for not-tested transition")
	}
	if !strings.Contains(it.Text, "flexion to 90") {
		t.Errorf("text %q lacks flexion to 90", it.Text)
	}
	if strings.Contains(it.Text, "from") {
		t.Errorf("text %q must not mention a baseline", it.Text)
	}
}

func TestCompare_AROMSpinalUnitAndAnkleToes(t *testing.T) {
	initial, final := pair(findings.SideNone, findings.LocationBack)
	initial.Objective.AROMMovements[0].AROM = "1/2"
	final.Objective.AROMMovements[0].AROM = "3/4"
	it, _ := itemByID(Compare(initial, final, male), IDAROM)
	if it.Text != "AROM of his back showed increase of flexion from 1/2 to 3/4 of full range." {
		t.Errorf("back text = %q", it.Text)
	}

	ia, fa := pair(findings.SideLeft, findings.LocationAnkle)
	ia.Objective.AROMMovements[0].AROM = "5"
	fa.Objective.AROMMovements[0].AROM = "15"
	ia.Objective.ToesROM = "50%"
	fa.Objective.ToesROM = "80%"
	it, _ = itemByID(Compare(ia, fa, male), IDAROM)
	if it.Text != "AROM of his left ankle showed increase of dorsiflexion from 5 to 15 degrees and increase of toes from 50% to 80%." {
		t.Errorf("ankle text = %q", it.Text)
	}
}

func TestCompare_AROMDigits(t *testing.T) {
	initial, final := pair(findings.SideRight, findings.LocationHand)
	initial.Objective.FingersToesData = []findings.Digit{{Name: "INDEX FINGER", Joints: []findings.JointRange{{JointType: "mcp", Range: "60"}}}}
	final.Objective.FingersToesData[1].Joints[0].Range = "80"
	final.Objective.FingersToesData[2].Joints[0].Range = "70"

	items := Compare(initial, final, male)
	it, ok := itemByID(items, "arom_index_finger")
	if !ok {
		t.Fatalf("no index finger item in %+v", items)
	}
	if it.Text != "AROM of his right index finger showed increase of MCP from 60 to 80 degrees." {
		t.Errorf("digit text = %q", it.Text)
	}
	if _, ok := itemByID(items, "arom_middle_finger"); ok {
		t.Error("digit without baseline must not be compared")
	}
}

func TestCompare_WristGrossFingersAndPower(t *testing.T) {
	initial, final := pair(findings.SideLeft, findings.LocationWrist)
	initial.Objective.GrossFingersROM = "50%"
	final.Objective.GrossFingersROM = "90%"
	initial.Objective.MusclePower[0].LeftGrade = "3"
	final.Objective.MusclePower[0].LeftGrade = "4"
	initial.Objective.HandGripStrength.Left.HandGrip = "10"
	final.Objective.HandGripStrength.Left.HandGrip = "15"
	initial.Objective.HandGripStrength.Right.HandGrip = "30"
	final.Objective.HandGripStrength.Right.HandGrip = "31"

	items := Compare(initial, final, male)
	gf, _ := itemByID(items, IDGrossFingersROM)
	if gf.Text != "There was increase of gross fingers AROM of his left hand from 50% to 90%." {
		t.Errorf("gross fingers text = %q", gf.Text)
	}
	mp, _ := itemByID(items, IDWristMusclePower)
	if mp.Text != "Muscle power of his left wrist showed increase of left flexors from 3/5 to 4/5." {
		t.Errorf("wrist power text = %q", mp.Text)
	}
	grip, _ := itemByID(items, IDHandGrip)
	if grip.Text != "There was increase of hand grip strength of his left hand from 10 to 15 kgf." {
		t.Errorf("grip text = %q", grip.Text)
	}
	if strings.Contains(grip.Text, "right") {
		t.Error("grip must be filtered to the complaint side")
	}
}

func TestCompare_MyotomeAndMuscleGroups(t *testing.T) {
	initial, final := pair(findings.SideNone, findings.LocationBack)
	initial.Objective.Myotome[3].LeftGrade = "3"
	final.Objective.Myotome[3].LeftGrade = "5"
	initial.Objective.Myotome[3].RightGrade = "4"
	final.Objective.Myotome[3].RightGrade = "4"
	it, _ := itemByID(Compare(initial, final, male), IDMyotome)
	want := "Myotome of his lower limbs showed increase of left L5 myotome from 3/5 to 5/5 and no change of right L5 myotome at 4/5."
	if it.Text != want {
		t.Errorf("myotome text = %q, want %q", it.Text, want)
	}

	ik, fk := pair(findings.SideBilateral, findings.LocationKnee)
	ik.Objective.MusclePower[0].LeftGrade = "3"
	fk.Objective.MusclePower[0].LeftGrade = "4"
	ik.Objective.MusclePower[1].RightGrade = "4"
	fk.Objective.MusclePower[1].RightGrade = "5"
	ik.Objective.MusclePower[1].LeftGrade = "5"
	fk.Objective.MusclePower[1].LeftGrade = "4"
	it, _ = itemByID(Compare(ik, fk, male), IDMusclePower)
	want = "Muscle power of his bilateral knee showed increase of left flexors from 3/5 to 4/5, reduction of left extensors from 5/5 to 4/5 and increase of right extensors from 4/5 to 5/5."
	if it.Text != want {
		t.Errorf("muscle power text = %q, want %q", it.Text, want)
	}
}

func TestCompare_MuscleGroupsIgnoreComplaintSide(t *testing.T) {
	initial, final := pair(findings.SideRight, findings.LocationKnee)
	initial.Objective.MusclePower[0].LeftGrade = "3"
	final.Objective.MusclePower[0].LeftGrade = "4"
	initial.Objective.MusclePower[0].RightGrade = "4"
	final.Objective.MusclePower[0].RightGrade = "5"
	it, _ := itemByID(Compare(initial, final, male), IDMusclePower)
	want := "Muscle power of his right knee showed increase of left flexors from 3/5 to 4/5 and increase of right flexors from 4/5 to 5/5."
	if it.Text != want {
		t.Errorf("muscle power text = %q, want %q", it.Text, want)
	}
}

func TestCompare_MusclePowerNotTestedTransition(t *testing.T) {
	initial, final := pair(findings.SideRight, findings.LocationElbow)
	initial.Objective.MusclePowerNotTested = true
	final.Objective.MusclePower[0].RightGrade = "4"
	it, ok := itemByID(Compare(initial, final, male), IDMusclePower)
	if !ok {
		t.Fatal("no muscle power item")
	}
	if it.Text != "Muscle power of his right elbow was not tested initially and reached right flexors to 4/5 at final assessment." {
		t.Errorf("text = %q", it.Text)
	}
}

func TestCompare_StableIDsAcrossRecomputation(t *testing.T) {
	initial, final := pair(findings.SideRight, findings.LocationShoulder)
	initial.Complaints.PainIntensity = "7"
	final.Complaints.PainIntensity = "2"
	initial.Objective.AROMMovements[0].AROM = "90"
	final.Objective.AROMMovements[0].AROM = "120"

	before := IDs(Compare(initial, final, male))
	final.Complaints.OtherSymptoms = []findings.Symptom{{Symptom: "ache", Intensity: "2"}}
	initial.Complaints.OtherSymptoms = []findings.Symptom{{Symptom: "ache", Intensity: "5"}}
	final.Objective.AROMMovements[0].AROM = "130"
	after := IDs(Compare(initial, final, male))

	if !reflect.DeepEqual(before, []string{IDPain, IDAROM}) {
		t.Errorf("before = %v", before)
	}
	if !reflect.DeepEqual(after, []string{IDPain, "symptom_ache", IDAROM}) {
		t.Errorf("after = %v", after)
	}
}

func TestCategoryRank(t *testing.T) {
	if CategoryPain.Rank() != 1 || CategoryMusclePower.Rank() != 8 || Category("other").Rank() != UnknownRank {
		t.Error("unexpected category ranks")
	}
}
