// Package findings holds the clinical findings model for one assessment time point.
package findings

// Side is the side of the body a complaint refers to.
type Side string

const (
	SideNone      Side = ""
	SideRight     Side = "right"
	SideLeft      Side = "left"
	SideBilateral Side = "bilateral"
)

// AllSides returns every selectable side.
func AllSides() []Side {
	return []Side{SideRight, SideLeft, SideBilateral}
}

// Valid reports whether s is unset or one of the known sides.
func (s Side) Valid() bool {
	if s == SideNone {
		return true
	}
	for _, v := range AllSides() {
		if v == s {
			return true
		}
	}
	return false
}

// SensationStatus is the outcome of a sensation examination.
type SensationStatus string

const (
	SensationUnset          SensationStatus = ""
	SensationIntact         SensationStatus = "intact"
	SensationReduced        SensationStatus = "reduced"
	SensationHypersensitive SensationStatus = "hypersensitive"
)

// ReflexStatus is the outcome of a reflex examination.
type ReflexStatus string

const (
	ReflexUnset    ReflexStatus = ""
	ReflexNormal   ReflexStatus = "normal"
	ReflexAbnormal ReflexStatus = "abnormal"
)

// TestKind distinguishes the straight leg raise from other named special tests.
type TestKind string

const (
	TestNamed            TestKind = "named"
	TestStraightLegRaise TestKind = "straight_leg_raise"
)

// TestResult is a positive/negative special test outcome.
type TestResult string

const (
	ResultUnset    TestResult = ""
	ResultPositive TestResult = "positive"
	ResultNegative TestResult = "negative"
)

// ClinicalFindings is one assessment (initial, interim or final).
type ClinicalFindings struct {
	Date       string     `yaml:"date"`
	Complaints Complaints `yaml:"complaints"`
	Objective  Objective  `yaml:"objective_findings"`
}

// Complaints holds the subjective part of an assessment.
type Complaints struct {
	Side          Side      `yaml:"side"`
	Location      Location  `yaml:"location"`
	PainIntensity string    `yaml:"pain_intensity"`
	OtherSymptoms []Symptom `yaml:"other_symptoms,omitempty"`
	// Activities1 covers sitting/reading tolerance.
	Activities1 []Activity `yaml:"activities1,omitempty"`
	// Activities2 covers walking/standing tolerance and carries a walking aid.
	Activities2               []Activity `yaml:"activities2,omitempty"`
	OtherFunctionalLimitation string     `yaml:"other_functional_limitation,omitempty"`
	// OverallImprovement is the NGRCS score, 0-10.
	OverallImprovement string `yaml:"overall_improvement,omitempty"`
}

// Symptom is a non-pain complaint with an optional 0-10 intensity.
type Symptom struct {
	Symptom   string `yaml:"symptom"`
	Intensity string `yaml:"intensity,omitempty"`
}

// Activity is a functional tolerance entry such as "walking for 30 minutes".
type Activity struct {
	Activity string `yaml:"activity"`
	Duration string `yaml:"duration"`
	Unit     string `yaml:"unit,omitempty"`
	Aid      string `yaml:"aid,omitempty"`
}

// Objective holds the region-conditional objective findings.
type Objective struct {
	AROMNotTested   bool       `yaml:"arom_not_tested,omitempty"`
	AROMMovements   []Movement `yaml:"arom_movements,omitempty"`
	ToesROM         string     `yaml:"toes_rom,omitempty"`
	GrossFingersROM string     `yaml:"gross_fingers_rom,omitempty"`
	FingersToesData []Digit    `yaml:"fingers_toes_data,omitempty"`

	MusclePowerNotTested bool          `yaml:"muscle_power_not_tested,omitempty"`
	MusclePower          []MuscleGrade `yaml:"muscle_power,omitempty"`
	Myotome              []MuscleGrade `yaml:"myotome,omitempty"`

	HandGripNotTested bool             `yaml:"hand_grip_not_tested,omitempty"`
	HandGripStrength  HandGripStrength `yaml:"hand_grip_strength,omitempty"`

	SplintInclude bool   `yaml:"splint_include,omitempty"`
	SplintType    string `yaml:"splint_type,omitempty"`

	TendernessInclude bool   `yaml:"tenderness_include,omitempty"`
	TendernessArea    string `yaml:"tenderness_area,omitempty"`

	SwellingInclude bool   `yaml:"swelling_include,omitempty"`
	SwellingArea    string `yaml:"swelling_area,omitempty"`

	TemperatureInclude bool   `yaml:"temperature_include,omitempty"`
	TemperatureArea    string `yaml:"temperature_area,omitempty"`

	SensationInclude    bool            `yaml:"sensation_include,omitempty"`
	SensationStatus     SensationStatus `yaml:"sensation_status,omitempty"`
	SensationArea       string          `yaml:"sensation_area,omitempty"`
	SensationPercentage string          `yaml:"sensation_percentage,omitempty"`

	ReflexStatus ReflexStatus `yaml:"reflex_status,omitempty"`
	ReflexDetail string       `yaml:"reflex_detail,omitempty"`

	WBStatus         string `yaml:"wb_status,omitempty"`
	WalkingAid       string `yaml:"walking_aid,omitempty"`
	WalkingStability string `yaml:"walking_stability,omitempty"`

	SpecialTests   []SpecialTest   `yaml:"special_tests,omitempty"`
	Questionnaires []Questionnaire `yaml:"questionnaires,omitempty"`
}

// Movement is one row of the range of motion table.
type Movement struct {
	Movement string `yaml:"movement"`
	AROM     string `yaml:"arom,omitempty"`
	PROM     string `yaml:"prom,omitempty"`
}

// Digit is a finger or toe with its measured joints.
type Digit struct {
	Name   string       `yaml:"name"`
	Joints []JointRange `yaml:"joints"`
}

// JointRange is the AROM of a single joint of a digit.
type JointRange struct {
	JointType string `yaml:"joint_type"`
	Range     string `yaml:"range,omitempty"`
}

// MuscleGrade is a muscle group or myotome level graded 0-5 on each side.
type MuscleGrade struct {
	Group      string `yaml:"group"`
	LeftGrade  string `yaml:"left_grade,omitempty"`
	RightGrade string `yaml:"right_grade,omitempty"`
}

// GripSet holds the three grip measurements of one hand, in kgf.
type GripSet struct {
	HandGrip     string `yaml:"hand_grip,omitempty"`
	PinchGrip    string `yaml:"pinch_grip,omitempty"`
	LateralPinch string `yaml:"lateral_pinch,omitempty"`
}

// HandGripStrength holds grip measurements for both hands.
type HandGripStrength struct {
	Right GripSet `yaml:"right,omitempty"`
	Left  GripSet `yaml:"left,omitempty"`
}

// Side returns the grip set of the given side. Any side other than left
// resolves to the right hand.
func (h HandGripStrength) Side(s Side) GripSet {
	if s == SideLeft {
		return h.Left
	}
	return h.Right
}

// SpecialTest is either a straight leg raise with a result per leg or a
// named test with a single result.
type SpecialTest struct {
	Kind        TestKind   `yaml:"kind"`
	TestName    string     `yaml:"test_name,omitempty"`
	Result      string     `yaml:"result,omitempty"`
	LeftResult  TestResult `yaml:"left_result,omitempty"`
	RightResult TestResult `yaml:"right_result,omitempty"`
	// Angle is the hip flexion range at which a positive SLR was produced.
	Angle string `yaml:"angle,omitempty"`
}

// Questionnaire is a patient-reported outcome score.
type Questionnaire struct {
	Name  string `yaml:"name"`
	Score string `yaml:"score"`
}
