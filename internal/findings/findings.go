package findings

import "strings"

// New returns the canonical empty findings for a side and location.
func New(side Side, loc Location) ClinicalFindings {
	spec := Spec(loc)
	return ClinicalFindings{
		Complaints: Complaints{Side: side, Location: loc},
		Objective: Objective{
			AROMMovements:   spec.NewMovements(),
			FingersToesData: spec.NewDigits(),
			MusclePower:     spec.NewMusclePower(),
			Myotome:         spec.NewMyotome(),
		},
	}
}

// SetLocation returns a copy of f moved to a new location. Region-dependent
// rows are reset to the new region's empty shape. Muscle power and myotome
// rows that already carry a grade are kept as they are.
func SetLocation(f ClinicalFindings, loc Location) ClinicalFindings {
	out := f.Clone()
	spec := Spec(loc)

	out.Complaints.Location = loc
	out.Objective.AROMMovements = spec.NewMovements()
	out.Objective.FingersToesData = spec.NewDigits()
	if !HasGrades(f.Objective.MusclePower) {
		out.Objective.MusclePower = spec.NewMusclePower()
	}
	if !HasGrades(f.Objective.Myotome) {
		out.Objective.Myotome = spec.NewMyotome()
	}
	return out
}

// Clone returns a deep copy of f.
func (f ClinicalFindings) Clone() ClinicalFindings {
	out := f
	c := &out.Complaints
	c.OtherSymptoms = cloneSlice(f.Complaints.OtherSymptoms)
	c.Activities1 = cloneSlice(f.Complaints.Activities1)
	c.Activities2 = cloneSlice(f.Complaints.Activities2)

	o := &out.Objective
	o.AROMMovements = cloneSlice(f.Objective.AROMMovements)
	o.MusclePower = cloneSlice(f.Objective.MusclePower)
	o.Myotome = cloneSlice(f.Objective.Myotome)
	o.SpecialTests = cloneSlice(f.Objective.SpecialTests)
	o.Questionnaires = cloneSlice(f.Objective.Questionnaires)
	if f.Objective.FingersToesData != nil {
		o.FingersToesData = make([]Digit, len(f.Objective.FingersToesData))
		for i, d := range f.Objective.FingersToesData {
			o.FingersToesData[i] = Digit{Name: d.Name, Joints: cloneSlice(d.Joints)}
		}
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// HasGrades reports whether any row carries a left or right grade.
func HasGrades(rows []MuscleGrade) bool {
	for _, r := range rows {
		if !blank(r.LeftGrade) || !blank(r.RightGrade) {
			return true
		}
	}
	return false
}

// HasHandGripData reports whether a hand grip value is recorded on either side.
func (h HandGripStrength) HasHandGripData() bool {
	return !blank(h.Right.HandGrip) || !blank(h.Left.HandGrip)
}

// HasPinchData reports whether pinch or lateral pinch is recorded on either side.
func (h HandGripStrength) HasPinchData() bool {
	return !blank(h.Right.PinchGrip) || !blank(h.Right.LateralPinch) ||
		!blank(h.Left.PinchGrip) || !blank(h.Left.LateralPinch)
}

// IsEmpty reports whether no grip value is recorded.
func (g GripSet) IsEmpty() bool {
	return blank(g.HandGrip) && blank(g.PinchGrip) && blank(g.LateralPinch)
}

// HasData reports whether at least one joint of the digit has a range.
func (d Digit) HasData() bool {
	for _, j := range d.Joints {
		if !blank(j.Range) {
			return true
		}
	}
	return false
}

// HasData reports whether the movement has an AROM or PROM value.
func (m Movement) HasData() bool {
	return !blank(m.AROM) || !blank(m.PROM)
}

// HasAnyData reports whether any complaint or objective field was filled
// in. Side, location and date are context and do not count.
func (f ClinicalFindings) HasAnyData() bool {
	return f.Complaints.hasData() || f.Objective.hasData()
}

func (c Complaints) hasData() bool {
	if anyFilled(c.PainIntensity, c.OtherFunctionalLimitation, c.OverallImprovement) {
		return true
	}
	for _, s := range c.OtherSymptoms {
		if anyFilled(s.Symptom, s.Intensity) {
			return true
		}
	}
	for _, list := range [][]Activity{c.Activities1, c.Activities2} {
		for _, a := range list {
			if anyFilled(a.Activity, a.Duration, a.Unit, a.Aid) {
				return true
			}
		}
	}
	return false
}

// hasData ignores the region-seeded row names (movements, digits, joints,
// muscle groups); only values entered against them count.
func (o Objective) hasData() bool {
	if o.AROMNotTested || o.MusclePowerNotTested || o.HandGripNotTested {
		return true
	}
	if o.SplintInclude || o.TendernessInclude || o.SwellingInclude || o.TemperatureInclude || o.SensationInclude {
		return true
	}
	if anyFilled(
		o.ToesROM, o.GrossFingersROM,
		o.SplintType, o.TendernessArea, o.SwellingArea, o.TemperatureArea,
		string(o.SensationStatus), o.SensationArea, o.SensationPercentage,
		string(o.ReflexStatus), o.ReflexDetail,
		o.WBStatus, o.WalkingAid, o.WalkingStability,
	) {
		return true
	}
	for _, m := range o.AROMMovements {
		if m.HasData() {
			return true
		}
	}
	for _, d := range o.FingersToesData {
		if d.HasData() {
			return true
		}
	}
	if HasGrades(o.MusclePower) || HasGrades(o.Myotome) {
		return true
	}
	if !o.HandGripStrength.Right.IsEmpty() || !o.HandGripStrength.Left.IsEmpty() {
		return true
	}
	for _, t := range o.SpecialTests {
		if anyFilled(t.TestName, t.Result, t.Angle, string(t.LeftResult), string(t.RightResult)) {
			return true
		}
	}
	for _, q := range o.Questionnaires {
		if anyFilled(q.Name, q.Score) {
			return true
		}
	}
	return false
}

func anyFilled(values ...string) bool {
	for _, v := range values {
		if !blank(v) {
			return true
		}
	}
	return false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
