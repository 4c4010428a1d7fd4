package findings

// Location is the body region an assessment is about.
type Location string

const (
	LocationNone     Location = ""
	LocationShoulder Location = "shoulder"
	LocationElbow    Location = "elbow"
	LocationWrist    Location = "wrist"
	LocationHand     Location = "hand"
	LocationHip      Location = "hip"
	LocationKnee     Location = "knee"
	LocationAnkle    Location = "ankle"
	LocationFoot     Location = "foot"
	LocationBack     Location = "back"
	LocationNeck     Location = "neck"
)

// AllLocations returns all supported locations.
func AllLocations() []Location {
	return []Location{
		LocationShoulder, LocationElbow, LocationWrist, LocationHand,
		LocationHip, LocationKnee, LocationAnkle, LocationFoot,
		LocationBack, LocationNeck,
	}
}

// IsValid checks if a location string is a supported location.
func IsValid(l string) bool {
	for _, valid := range AllLocations() {
		if string(valid) == l {
			return true
		}
	}
	return false
}

// IsSpinal reports whether the location is graded by myotome (back, neck).
func (l Location) IsSpinal() bool {
	return l == LocationBack || l == LocationNeck
}

// UsesDigits reports whether AROM is recorded per finger or toe.
func (l Location) UsesDigits() bool {
	return l == LocationHand || l == LocationFoot
}

// DigitSpec is a finger or toe and the joints measured on it.
type DigitSpec struct {
	Name   string
	Joints []string
}

// RegionSpec groups everything that varies by body region.
type RegionSpec struct {
	Location Location

	// Movements is the canonical AROM movement list.
	Movements []string

	// MuscleGroups is the canonical muscle power list.
	MuscleGroups []string

	// MyotomeLevels replaces MuscleGroups for spinal regions.
	MyotomeLevels []string

	// Digits replaces Movements for hand and foot.
	Digits []DigitSpec

	// AROMUnit is "degrees" or "of full range".
	AROMUnit string

	// LimbPhrase names the limbs examined for spinal regions.
	LimbPhrase string

	// Questionnaire is the default outcome questionnaire.
	Questionnaire string

	UsesHandGrip bool
}

const (
	unitDegrees   = "degrees"
	unitFullRange = "of full range"
)

var (
	spinalMovements = []string{
		"Flexion", "Extension",
		"Side flexion (right)", "Side flexion (left)",
		"Rotation (right)", "Rotation (left)",
	}

	fingerJoints = []string{"MCP", "PIP", "DIP"}
	toeJoints    = []string{"MTP", "PIP", "DIP"}

	handDigits = []DigitSpec{
		{Name: "Thumb", Joints: []string{"CMC", "MCP", "IP"}},
		{Name: "Index finger", Joints: fingerJoints},
		{Name: "Middle finger", Joints: fingerJoints},
		{Name: "Ring finger", Joints: fingerJoints},
		{Name: "Little finger", Joints: fingerJoints},
	}

	footDigits = []DigitSpec{
		{Name: "Big toe", Joints: []string{"MTP", "IP"}},
		{Name: "Second toe", Joints: toeJoints},
		{Name: "Third toe", Joints: toeJoints},
		{Name: "Fourth toe", Joints: toeJoints},
		{Name: "Fifth toe", Joints: toeJoints},
	}
)

var regions = map[Location]RegionSpec{
	LocationShoulder: {
		Movements:     []string{"Flexion", "Extension", "Abduction", "Adduction", "Internal rotation", "External rotation"},
		MuscleGroups:  []string{"Flexors", "Extensors", "Abductors", "Adductors", "Internal rotators", "External rotators"},
		Questionnaire: QuickDASH,
	},
	LocationElbow: {
		Movements:     []string{"Flexion", "Extension", "Pronation", "Supination"},
		MuscleGroups:  []string{"Flexors", "Extensors", "Pronators", "Supinators"},
		Questionnaire: QuickDASH,
	},
	LocationWrist: {
		Movements:     []string{"Flexion", "Extension", "Radial deviation", "Ulnar deviation", "Pronation", "Supination"},
		MuscleGroups:  []string{"Flexors", "Extensors", "Radial deviators", "Ulnar deviators"},
		Questionnaire: QuickDASH,
		UsesHandGrip:  true,
	},
	LocationHand: {
		Digits:        handDigits,
		Questionnaire: QuickDASH,
		UsesHandGrip:  true,
	},
	LocationHip: {
		Movements:     []string{"Flexion", "Extension", "Abduction", "Adduction", "Internal rotation", "External rotation"},
		MuscleGroups:  []string{"Flexors", "Extensors", "Abductors", "Adductors"},
		Questionnaire: LEFS,
	},
	LocationKnee: {
		Movements:     []string{"Flexion", "Extension"},
		MuscleGroups:  []string{"Flexors", "Extensors"},
		Questionnaire: LEFS,
	},
	LocationAnkle: {
		Movements:     []string{"Dorsiflexion", "Plantarflexion", "Inversion", "Eversion"},
		MuscleGroups:  []string{"Dorsiflexors", "Plantarflexors", "Invertors", "Evertors"},
		Questionnaire: LEFS,
	},
	LocationFoot: {
		Digits:        footDigits,
		MuscleGroups:  []string{"Toe flexors", "Toe extensors"},
		Questionnaire: LEFS,
	},
	LocationBack: {
		Movements:     spinalMovements,
		MyotomeLevels: []string{"L2", "L3", "L4", "L5", "S1"},
		LimbPhrase:    "lower limbs",
		Questionnaire: RMDQ,
	},
	LocationNeck: {
		Movements:     spinalMovements,
		MyotomeLevels: []string{"C5", "C6", "C7", "C8", "T1"},
		LimbPhrase:    "upper limbs",
		Questionnaire: NPQ,
	},
}

// Spec returns the region spec for a location. Unknown or unset locations
// get an empty spec measured in degrees.
func Spec(l Location) RegionSpec {
	spec, ok := regions[l]
	if !ok {
		return RegionSpec{Location: l, AROMUnit: unitDegrees}
	}
	spec.Location = l
	if l.IsSpinal() {
		spec.AROMUnit = unitFullRange
	} else {
		spec.AROMUnit = unitDegrees
	}
	return spec
}

// UsesMyotome reports whether the region is graded by myotome level.
func (r RegionSpec) UsesMyotome() bool {
	return len(r.MyotomeLevels) > 0
}

// UsesDigits reports whether AROM is recorded per finger or toe.
func (r RegionSpec) UsesDigits() bool {
	return len(r.Digits) > 0
}

// NewMovements returns the empty AROM rows for a region.
func (r RegionSpec) NewMovements() []Movement {
	if len(r.Movements) == 0 {
		return nil
	}
	rows := make([]Movement, len(r.Movements))
	for i, m := range r.Movements {
		rows[i] = Movement{Movement: m}
	}
	return rows
}

// NewDigits returns the empty finger/toe skeleton for a region.
func (r RegionSpec) NewDigits() []Digit {
	if len(r.Digits) == 0 {
		return nil
	}
	digits := make([]Digit, len(r.Digits))
	for i, d := range r.Digits {
		joints := make([]JointRange, len(d.Joints))
		for j, jt := range d.Joints {
			joints[j] = JointRange{JointType: jt}
		}
		digits[i] = Digit{Name: d.Name, Joints: joints}
	}
	return digits
}

// NewMusclePower returns the empty muscle group rows for a region.
func (r RegionSpec) NewMusclePower() []MuscleGrade {
	return newGradeRows(r.MuscleGroups)
}

// NewMyotome returns the empty myotome rows for a region.
func (r RegionSpec) NewMyotome() []MuscleGrade {
	return newGradeRows(r.MyotomeLevels)
}

func newGradeRows(names []string) []MuscleGrade {
	if len(names) == 0 {
		return nil
	}
	rows := make([]MuscleGrade, len(names))
	for i, n := range names {
		rows[i] = MuscleGrade{Group: n}
	}
	return rows
}
