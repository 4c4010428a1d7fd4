// Package narrative turns one ClinicalFindings record into the numbered
// sentences and tables of the "Patient's Complaints" and "Objective
// Findings" sections.
package narrative

import (
	"strings"

	"github.com/mrsinham/physioreport/internal/document"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// Section headings. Sentence numbering restarts in each.
const (
	HeadingComplaints = "I. Patient's Complaints"
	HeadingObjective  = "II. Objective Findings"
)

// Placeholders for missing values.
const (
	phPain      = "[X or X–Y]"
	phIntensity = "[X]"
	phArea      = "[area]"
	phAROM      = "[AROM]"
	phScore     = "[score]"
	phKgf       = "[X]"
	phSplint    = "[splint/brace/cast]"
	phSensation = "[intact/reduced/hypersensitive]"
	phReflex    = "[normal/abnormal]"
	phPercent   = "[X%]"
	phAid       = "[unaided/with walking aid]"
	phStability = "[stable/unsteady]"
)

// Narrative is the generated text for one assessment.
type Narrative struct {
	Complaints document.Section
	Objective  document.Section
}

// Sections returns the complaints and objective sections in order.
func (n Narrative) Sections() []document.Section {
	return []document.Section{n.Complaints, n.Objective}
}

// Generate builds the narrative for f. It never fails: missing values are
// rendered as bracketed placeholders.
func Generate(f findings.ClinicalFindings, p textgen.Pronouns) Narrative {
	g := newGenerator(f, p)
	return Narrative{
		Complaints: g.complaints(),
		Objective:  g.objective(),
	}
}

type generator struct {
	f      findings.ClinicalFindings
	o      findings.Objective
	p      textgen.Pronouns
	spec   findings.RegionSpec
	side   findings.Side
	loc    findings.Location
	region string
	// his is the lowercase possessive used mid-sentence.
	his string
}

func newGenerator(f findings.ClinicalFindings, p textgen.Pronouns) *generator {
	side, loc := f.Complaints.Side, f.Complaints.Location
	return &generator{
		f:      f,
		o:      f.Objective,
		p:      p,
		spec:   findings.Spec(loc),
		side:   side,
		loc:    loc,
		region: textgen.RegionText(side, loc, textgen.FallbackForm),
		his:    p.LowerHis(),
	}
}

func (g *generator) objective() document.Section {
	b := document.NewBuilder(HeadingObjective)
	g.arom(b)
	g.musclePower(b)
	g.splint(b)
	g.tenderness(b)
	g.swellingTemperature(b)
	g.sensation(b)
	g.specialTests(b)
	g.gait(b)
	g.questionnaires(b)
	return b.Section()
}

// limbTarget names what the muscle power "not tested" sentence refers to.
func (g *generator) limbTarget() string {
	switch {
	case g.loc.IsSpinal():
		return g.spec.LimbPhrase
	case g.loc == findings.LocationHand:
		return "hand"
	default:
		return g.region
	}
}

// sideHand names the hand(s) on the complaint side, e.g. "right hand".
func (g *generator) sideHand() string {
	switch g.side {
	case findings.SideLeft, findings.SideRight:
		return string(g.side) + " hand"
	case findings.SideBilateral:
		return "both hands"
	default:
		return "hand"
	}
}

func trim(s string) string { return strings.TrimSpace(s) }

func isBlank(s string) bool { return trim(s) == "" }

// dashIfBlank is used for table cells that have no value.
func dashIfBlank(s string) string {
	if isBlank(s) {
		return "-"
	}
	return trim(s)
}
