package report

import (
	"fmt"
	"strings"

	"github.com/mrsinham/physioreport/internal/discharge"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// Warning is an advisory problem with the report data. Warnings never stop
// a report from being generated.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}

// Validate runs presence checks and the date ordering check on d.
func Validate(d ReportData) []Warning {
	var ws []Warning
	warn := func(field, format string, args ...any) {
		ws = append(ws, Warning{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(d.Patient.Name) == "" {
		warn("patient.name", "patient name is empty")
	}
	if strings.TrimSpace(d.Diagnosis) == "" {
		warn("diagnosis", "diagnosis is empty")
	}
	if strings.TrimSpace(d.Initial.Date) == "" {
		warn("initial.date", "initial assessment date is empty")
	}

	for _, tp := range []struct {
		name string
		f    findings.ClinicalFindings
	}{
		{"initial", d.Initial},
		{"interim", d.Interim},
		{"final", d.Final},
	} {
		c := tp.f.Complaints
		if !c.Side.Valid() {
			warn(tp.name+".complaints.side", "unknown side %q", c.Side)
		}
		if c.Location != findings.LocationNone && !findings.IsValid(string(c.Location)) {
			warn(tp.name+".complaints.location", "unknown location %q", c.Location)
		}
	}

	initial, ok := textgen.ParseDate(d.Initial.Date)
	if ok {
		for _, tp := range []struct {
			name string
			date string
		}{
			{"interim", d.Interim.Date},
			{"final", d.Final.Date},
		} {
			if t, ok := textgen.ParseDate(tp.date); ok && t.Before(initial) {
				warn(tp.name+".date", "%s assessment date %s is before the initial assessment", tp.name, textgen.FormatDate(tp.date))
			}
		}
	}

	if !d.Discharge.Type.Valid() {
		warn("discharge.discharge_type", "unknown discharge type %q", d.Discharge.Type)
	} else {
		for _, field := range discharge.MissingFields(d.Discharge) {
			warn("discharge."+field, "required for %s summary", typeLabel(d.Discharge.Type))
		}
	}
	return ws
}

func typeLabel(t discharge.Type) string {
	if t == discharge.TypeNone {
		return "a"
	}
	return "a " + string(t)
}
