package screens

import (
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/physioreport/internal/discharge"
)

// NewDischargeScreen edits the discharge type and its dates.
func NewDischargeScreen(s *discharge.State) *FormScreen {
	opts := []huh.Option[discharge.Type]{huh.NewOption("Not set", discharge.TypeNone)}
	for _, t := range discharge.AllTypes() {
		opts = append(opts, huh.NewOption(string(t), t))
	}

	return newFormScreen("PHYSIOREPORT WIZARD - Discharge", "How the episode of care ended", nil,
		huh.NewGroup(
			huh.NewSelect[discharge.Type]().
				Key("discharge_type").
				Title("Discharge Type").
				Options(opts...).
				Value(&s.Type),
			huh.NewInput().
				Key("discharge_date").
				Title("Discharge Date").
				Placeholder("YYYY-MM-DD").
				Value(&s.DischargeDate).
				Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("cancellation_date").
				Title("Cancellation Date").
				Placeholder("YYYY-MM-DD").
				Value(&s.CancellationDate).
				Validate(validateDate),
			huh.NewInput().
				Key("appointment_date").
				Title("Appointment Date").
				Placeholder("YYYY-MM-DD").
				Value(&s.AppointmentDate).
				Validate(validateDate),
			huh.NewInput().
				Key("cancellation_reason").
				Title("Cancellation Reason").
				Value(&s.CancellationReason),
			huh.NewText().
				Key("other_relevant_changes").
				Title("Other Relevant Changes").
				Value(&s.OtherRelevantChanges),
		),
	)
}
