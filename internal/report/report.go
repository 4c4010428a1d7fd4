// Package report holds the ReportData aggregate and assembles it into a
// renderer-agnostic document.
package report

import (
	"strings"

	"github.com/mrsinham/physioreport/internal/discharge"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// ReportData is everything needed to produce one report. The generators
// never modify it.
type ReportData struct {
	Header         Header                    `yaml:"header"`
	Patient        Patient                   `yaml:"patient"`
	Diagnosis      string                    `yaml:"diagnosis"`
	Referrals      []Referral                `yaml:"referrals,omitempty"`
	Duration       Duration                  `yaml:"duration"`
	Initial        findings.ClinicalFindings `yaml:"initial"`
	Interim        findings.ClinicalFindings `yaml:"interim"`
	Final          findings.ClinicalFindings `yaml:"final"`
	Treatments     []Treatment               `yaml:"treatments,omitempty"`
	OtherTreatment string                    `yaml:"other_treatment,omitempty"`
	Discharge      discharge.State           `yaml:"discharge"`
	Therapist      Therapist                 `yaml:"therapist"`
}

// Header is the letter header.
type Header struct {
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	YourRef   string `yaml:"your_ref,omitempty"`
	Reference string `yaml:"reference"`
	Date      string `yaml:"date"`
}

// Patient holds the demographics printed in the report.
type Patient struct {
	Name     string `yaml:"name"`
	Sex      string `yaml:"sex"`
	Age      string `yaml:"age,omitempty"`
	IDNumber string `yaml:"id_number,omitempty"`
	// HospitalNumber is the department's own patient number.
	HospitalNumber string `yaml:"hospital_number,omitempty"`
}

// Referral is one referral episode. Episode is a label like "1st".
type Referral struct {
	Episode string `yaml:"episode"`
	Source  string `yaml:"source"`
	Date    string `yaml:"date"`
}

// Duration describes the treatment period.
type Duration struct {
	FirstAttendance    string `yaml:"first_attendance"`
	LastAttendance     string `yaml:"last_attendance"`
	SessionsAttended   string `yaml:"sessions_attended"`
	SessionsDefaulted  string `yaml:"sessions_defaulted,omitempty"`
	SessionsCancelled  string `yaml:"sessions_cancelled,omitempty"`
	TreatmentFrequency string `yaml:"treatment_frequency,omitempty"`
}

// Treatment is one treatment method applied to an area.
type Treatment struct {
	Method string `yaml:"method"`
	Area   string `yaml:"area,omitempty"`
}

// Therapist holds the declaration and signature fields.
type Therapist struct {
	Name        string `yaml:"name"`
	Position    string `yaml:"position"`
	Department  string `yaml:"department,omitempty"`
	Hospital    string `yaml:"hospital,omitempty"`
	ConsentDate string `yaml:"consent_date"`
}

// New returns an empty report with no region chosen.
func New() ReportData {
	return ReportData{}
}

// WithLocation moves all three assessments to a side and location. Graded
// muscle power rows are kept, see findings.SetLocation.
func WithLocation(d ReportData, side findings.Side, loc findings.Location) ReportData {
	out := d
	for _, f := range []*findings.ClinicalFindings{&out.Initial, &out.Interim, &out.Final} {
		*f = findings.SetLocation(*f, loc)
		f.Complaints.Side = side
	}
	out.Referrals = append([]Referral(nil), d.Referrals...)
	out.Treatments = append([]Treatment(nil), d.Treatments...)
	out.Discharge = d.Discharge.Clone()
	return out
}

var exerciseWords = []string{"exercise", "training", "stretching", "strengthening", "programme"}

// IsExercise reports whether a treatment method reads as an exercise, which
// puts the area before the method ("shoulder strengthening exercise").
func IsExercise(method string) bool {
	m := strings.ToLower(method)
	for _, w := range exerciseWords {
		if strings.Contains(m, w) {
			return true
		}
	}
	return false
}

// Phrase renders a treatment: exercises as "{area} {method}", other
// methods as "{method} to {area}".
func (t Treatment) Phrase() string {
	method, area := strings.TrimSpace(t.Method), strings.TrimSpace(t.Area)
	switch {
	case method == "":
		return ""
	case area == "":
		return method
	case IsExercise(method):
		return area + " " + textgen.LowercaseFirstWord(method)
	default:
		return method + " to " + area
	}
}
