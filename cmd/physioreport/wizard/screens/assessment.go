package screens

import (
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/physioreport/internal/findings"
)

// NewAssessmentScreen edits the commonly charted fields of one assessment.
// Region tables stay in the YAML file.
func NewAssessmentScreen(name string, f *findings.ClinicalFindings) *FormScreen {
	c, o := &f.Complaints, &f.Objective
	return newFormScreen("PHYSIOREPORT WIZARD - "+name+" Assessment", regionLabel(c.Side, c.Location), nil,
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Assessment Date").
				Placeholder("YYYY-MM-DD").
				Value(&f.Date).
				Validate(validateDate),
			huh.NewInput().
				Key("pain_intensity").
				Title("Pain Intensity (NPRS)").
				Value(&c.PainIntensity),
			huh.NewInput().
				Key("overall_improvement").
				Title("Overall Improvement (NGRCS)").
				Value(&c.OverallImprovement),
			huh.NewInput().
				Key("other_limitation").
				Title("Other Functional Limitation").
				Value(&c.OtherFunctionalLimitation),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("wb_status").
				Title("Weight Bearing Status").
				Value(&o.WBStatus),
			huh.NewInput().
				Key("walking_aid").
				Title("Walking Aid").
				Value(&o.WalkingAid),
			huh.NewConfirm().
				Key("arom_not_tested").
				Title("AROM not tested?").
				Value(&o.AROMNotTested),
			huh.NewConfirm().
				Key("power_not_tested").
				Title("Muscle power not tested?").
				Value(&o.MusclePowerNotTested),
		),
	)
}

func regionLabel(side findings.Side, loc findings.Location) string {
	switch {
	case loc == findings.LocationNone:
		return "No region chosen"
	case side == findings.SideNone:
		return string(loc)
	default:
		return string(side) + " " + string(loc)
	}
}
