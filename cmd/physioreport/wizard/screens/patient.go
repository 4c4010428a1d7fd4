package screens

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/report"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// NewPatientScreen edits the letter header, demographics, diagnosis and
// region of d.
func NewPatientScreen(d *report.ReportData) *FormScreen {
	side := d.Initial.Complaints.Side
	loc := d.Initial.Complaints.Location

	sideOpts := []huh.Option[findings.Side]{huh.NewOption("Not set", findings.SideNone)}
	for _, s := range findings.AllSides() {
		sideOpts = append(sideOpts, huh.NewOption(textgen.Capitalize(string(s)), s))
	}
	locOpts := []huh.Option[findings.Location]{huh.NewOption("Not set", findings.LocationNone)}
	for _, l := range findings.AllLocations() {
		locOpts = append(locOpts, huh.NewOption(textgen.Capitalize(string(l)), l))
	}

	submit := func() {
		d.Patient.Name = strings.TrimSpace(d.Patient.Name)
		ApplyRegion(d, side, loc)
	}

	return newFormScreen("PHYSIOREPORT WIZARD - Patient", "Letter header, demographics and region", submit,
		huh.NewGroup(
			huh.NewInput().
				Key("report_date").
				Title("Report Date").
				Placeholder("YYYY-MM-DD").
				Value(&d.Header.Date).
				Validate(validateDate),
			huh.NewInput().
				Key("reference").
				Title("Our Reference").
				Value(&d.Header.Reference),
			huh.NewInput().
				Key("to").
				Title("To").
				Value(&d.Header.To),
			huh.NewInput().
				Key("from").
				Title("From").
				Value(&d.Header.From),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("patient_name").
				Title("Patient Name").
				Value(&d.Patient.Name).
				Validate(validateRequired("patient name")),
			huh.NewSelect[string]().
				Key("sex").
				Title("Sex").
				Options(
					huh.NewOption("Male", "Male"),
					huh.NewOption("Female", "Female"),
					huh.NewOption("Unspecified", ""),
				).
				Value(&d.Patient.Sex),
			huh.NewInput().
				Key("age").
				Title("Age").
				Value(&d.Patient.Age),
			huh.NewInput().
				Key("id_number").
				Title("ID Number").
				Value(&d.Patient.IDNumber),
			huh.NewInput().
				Key("hospital_number").
				Title("Hospital Number").
				Value(&d.Patient.HospitalNumber),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("diagnosis").
				Title("Diagnosis").
				Value(&d.Diagnosis),
			huh.NewSelect[findings.Side]().
				Key("side").
				Title("Side").
				Options(sideOpts...).
				Value(&side),
			huh.NewSelect[findings.Location]().
				Key("location").
				Title("Location").
				Options(locOpts...).
				Value(&loc),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("first_attendance").
				Title("First Attendance").
				Placeholder("YYYY-MM-DD").
				Value(&d.Duration.FirstAttendance).
				Validate(validateDate),
			huh.NewInput().
				Key("last_attendance").
				Title("Last Attendance").
				Placeholder("YYYY-MM-DD").
				Value(&d.Duration.LastAttendance).
				Validate(validateDate),
			huh.NewInput().
				Key("sessions_attended").
				Title("Sessions Attended").
				Value(&d.Duration.SessionsAttended),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("therapist_name").
				Title("Therapist").
				Value(&d.Therapist.Name),
			huh.NewInput().
				Key("therapist_position").
				Title("Position").
				Value(&d.Therapist.Position),
			huh.NewInput().
				Key("consent_date").
				Title("Consent Date").
				Placeholder("YYYY-MM-DD").
				Value(&d.Therapist.ConsentDate).
				Validate(validateDate),
		),
	)
}

// ApplyRegion sets the side and location of every assessment. A new
// location reseeds the region rows; a new side only relabels them.
func ApplyRegion(d *report.ReportData, side findings.Side, loc findings.Location) {
	switch {
	case loc != d.Initial.Complaints.Location:
		*d = report.WithLocation(*d, side, loc)
	case side != d.Initial.Complaints.Side:
		for _, f := range []*findings.ClinicalFindings{&d.Initial, &d.Interim, &d.Final} {
			f.Complaints.Side = side
		}
	}
}
