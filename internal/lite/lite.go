// Package lite imports records exported by the companion "lite" app and
// maps its field names and enum spellings onto report.ReportData.
package lite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mrsinham/physioreport/internal/discharge"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/report"
)

// ErrEmpty is returned for an empty lite export.
var ErrEmpty = errors.New("empty lite export")

// Lite is the lite app's export format.
type Lite struct {
	PatientName    string `json:"patientName"`
	Sex            string `json:"sex"`
	Age            string `json:"age"`
	IDNumber       string `json:"hkid"`
	HospitalNumber string `json:"hospitalNo"`
	Diagnosis      string `json:"diagnosis"`

	ReportTo   string `json:"to"`
	ReportFrom string `json:"from"`
	YourRef    string `json:"yourRef"`
	OurRef     string `json:"ourRef"`
	ReportDate string `json:"reportDate"`

	Referrals []Referral `json:"referrals"`

	FirstAttendance    string `json:"firstAttendance"`
	LastAttendance     string `json:"lastAttendance"`
	SessionsAttended   string `json:"sessionsAttended"`
	SessionsDefaulted  string `json:"sessionsDefaulted"`
	SessionsCancelled  string `json:"sessionsCancelled"`
	TreatmentFrequency string `json:"frequency"`

	Side     string     `json:"side"`
	Location string     `json:"location"`
	Initial  Assessment `json:"initialAssessment"`
	Final    Assessment `json:"finalAssessment"`

	Treatments     []Treatment `json:"treatments"`
	OtherTreatment string      `json:"otherTreatment"`

	DischargeType        string `json:"dischargeType"`
	DischargeDate        string `json:"dischargeDate"`
	CancellationDate     string `json:"cancellationDate"`
	AppointmentDate      string `json:"appointmentDate"`
	CancellationReason   string `json:"cancellationReason"`
	OtherRelevantChanges string `json:"otherRelevantChanges"`

	TherapistName string `json:"therapistName"`
	Position      string `json:"therapistPosition"`
	Department    string `json:"department"`
	Hospital      string `json:"hospital"`
	ConsentDate   string `json:"consentDate"`
}

// Referral is one lite referral episode. Episode is spelled out, e.g.
// "First".
type Referral struct {
	Episode string `json:"episode"`
	Source  string `json:"source"`
	Date    string `json:"date"`
}

// Assessment carries the handful of findings the lite app records.
type Assessment struct {
	Date               string `json:"date"`
	Pain               string `json:"painScore"`
	WalkingTolerance   string `json:"walkingTolerance"`
	SittingTolerance   string `json:"sittingTolerance"`
	WalkingAid         string `json:"walkingAid"`
	WeightBearing      string `json:"wbStatus"`
	Limitation         string `json:"functionalLimitation"`
	OverallImprovement string `json:"ngrcs"`
}

// Treatment is one lite treatment row.
type Treatment struct {
	Method string `json:"method"`
	Area   string `json:"area"`
}

// Parse decodes a lite export. Unknown fields are ignored since the lite
// app adds fields between releases.
func Parse(data []byte) (Lite, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Lite{}, ErrEmpty
	}
	var l Lite
	if err := json.Unmarshal(data, &l); err != nil {
		return Lite{}, fmt.Errorf("parsing lite export: %w", err)
	}
	return l, nil
}

var dischargeTypes = map[string]discharge.Type{
	"discharged": discharge.TypeCompleted,
	"completed":  discharge.TypeCompleted,
	"static":     discharge.TypeStatic,
	"ongoing":    discharge.TypeOngoing,
	"defaulted":  discharge.TypeDefaulted,
	"cancelled":  discharge.TypeCancelled,
	"canceled":   discharge.TypeCancelled,
}

// DischargeType maps a lite discharge type. Unknown values map to no type.
func DischargeType(s string) discharge.Type {
	return dischargeTypes[strings.ToLower(strings.TrimSpace(s))]
}

var episodeWords = []string{"first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth", "tenth"}

// Episode maps "First" to "1st" and so on. Anything else is kept.
func Episode(s string) string {
	w := strings.ToLower(strings.TrimSpace(s))
	for i, word := range episodeWords {
		if w == word {
			return humanize.Ordinal(i + 1)
		}
	}
	return strings.TrimSpace(s)
}

// Sex maps "M" and "F" to the report spellings.
func Sex(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M", "MALE":
		return "Male"
	case "F", "FEMALE":
		return "Female"
	}
	return ""
}

// Side maps "R", "L", "B" and the spelled-out sides.
func Side(s string) findings.Side {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "R", "RIGHT", "RT":
		return findings.SideRight
	case "L", "LEFT", "LT":
		return findings.SideLeft
	case "B", "BILATERAL", "BOTH":
		return findings.SideBilateral
	}
	return findings.SideNone
}

// Location maps a lite location name; unknown names map to none.
func Location(s string) findings.Location {
	l := strings.ToLower(strings.TrimSpace(s))
	if findings.IsValid(l) {
		return findings.Location(l)
	}
	return findings.LocationNone
}

// ToReportData converts a lite export into report data.
func ToReportData(l Lite) report.ReportData {
	d := report.WithLocation(report.New(), Side(l.Side), Location(l.Location))

	d.Header = report.Header{From: l.ReportFrom, To: l.ReportTo, YourRef: l.YourRef, Reference: l.OurRef, Date: l.ReportDate}
	d.Patient = report.Patient{
		Name:           strings.TrimSpace(l.PatientName),
		Sex:            Sex(l.Sex),
		Age:            l.Age,
		IDNumber:       l.IDNumber,
		HospitalNumber: l.HospitalNumber,
	}
	d.Diagnosis = l.Diagnosis
	for _, r := range l.Referrals {
		d.Referrals = append(d.Referrals, report.Referral{Episode: Episode(r.Episode), Source: r.Source, Date: r.Date})
	}
	d.Duration = report.Duration{
		FirstAttendance:    l.FirstAttendance,
		LastAttendance:     l.LastAttendance,
		SessionsAttended:   l.SessionsAttended,
		SessionsDefaulted:  l.SessionsDefaulted,
		SessionsCancelled:  l.SessionsCancelled,
		TreatmentFrequency: l.TreatmentFrequency,
	}

	applyAssessment(&d.Initial, l.Initial)
	applyAssessment(&d.Final, l.Final)

	for _, t := range l.Treatments {
		d.Treatments = append(d.Treatments, report.Treatment{Method: t.Method, Area: t.Area})
	}
	d.OtherTreatment = l.OtherTreatment

	d.Discharge = discharge.State{
		Type:                 DischargeType(l.DischargeType),
		DischargeDate:        l.DischargeDate,
		CancellationDate:     l.CancellationDate,
		AppointmentDate:      l.AppointmentDate,
		CancellationReason:   l.CancellationReason,
		OtherRelevantChanges: l.OtherRelevantChanges,
	}
	d.Therapist = report.Therapist{
		Name:        l.TherapistName,
		Position:    l.Position,
		Department:  l.Department,
		Hospital:    l.Hospital,
		ConsentDate: l.ConsentDate,
	}
	return d
}

// applyAssessment fills the lite fields into f. Tolerances are minutes.
func applyAssessment(f *findings.ClinicalFindings, a Assessment) {
	f.Date = a.Date
	c := &f.Complaints
	c.PainIntensity = strings.TrimSpace(a.Pain)
	c.OtherFunctionalLimitation = a.Limitation
	c.OverallImprovement = strings.TrimSpace(a.OverallImprovement)
	if v := strings.TrimSpace(a.WalkingTolerance); v != "" {
		c.Activities2 = append(c.Activities2, findings.Activity{Activity: "walking", Duration: v, Unit: "minutes", Aid: a.WalkingAid})
	}
	if v := strings.TrimSpace(a.SittingTolerance); v != "" {
		c.Activities1 = append(c.Activities1, findings.Activity{Activity: "sitting", Duration: v, Unit: "minutes"})
	}
	f.Objective.WBStatus = a.WeightBearing
	f.Objective.WalkingAid = a.WalkingAid
}
