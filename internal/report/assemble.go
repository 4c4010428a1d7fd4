package report

import (
	"fmt"
	"strings"

	"github.com/mrsinham/physioreport/internal/comparison"
	"github.com/mrsinham/physioreport/internal/discharge"
	"github.com/mrsinham/physioreport/internal/document"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/narrative"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// Title is the document title.
const Title = "PHYSIOTHERAPY REPORT"

// Section headings in report order.
const (
	HeadingDiagnosis   = "DIAGNOSIS"
	HeadingReferral    = "REFERRAL"
	HeadingDuration    = "DURATION OF TREATMENT"
	HeadingInitial     = "INITIAL ASSESSMENT"
	HeadingInterim     = "INTERIM ASSESSMENT"
	HeadingFinal       = "FINAL ASSESSMENT"
	HeadingTreatment   = "TREATMENT"
	HeadingDeclaration = "DECLARATION"
)

const (
	phRecipient = "[Recipient]"
	phSender    = "[Sender]"
	phReference = "[Reference]"
	phDate      = "[Date]"
	phPatient   = "[Patient name]"
	phDiagnosis = "[Diagnosis]"
	phReferral  = "[Referral source]"
	phSessions  = "[X]"
	phTreatment = "[Treatment]"
	phTherapist = "[Therapist name]"
	phPosition  = "[Position]"
	phSummary   = "[Discharge summary]"
)

// Assembler builds documents, optionally reusing narratives through a cache.
type Assembler struct {
	cache *narrative.Cache
}

// NewAssembler returns an assembler. A nil cache generates every narrative.
func NewAssembler(cache *narrative.Cache) *Assembler {
	return &Assembler{cache: cache}
}

// Assemble builds the document for d without a cache.
func Assemble(d ReportData) document.Document {
	return NewAssembler(nil).Assemble(d)
}

// Assemble builds the document for d. The interim assessment is included
// only when at least one of its complaint or objective fields is filled in.
func (a *Assembler) Assemble(d ReportData) document.Document {
	p := textgen.PronounsFor(d.Patient.Sex)
	doc := document.Document{Title: Title}

	doc.Sections = append(doc.Sections,
		headerSection(d),
		diagnosisSection(d),
		referralSection(d, p),
		durationSection(d, p),
		a.assessmentSection(HeadingInitial, d.Initial, p),
	)
	if d.Interim.HasAnyData() {
		doc.Sections = append(doc.Sections, a.assessmentSection(HeadingInterim, d.Interim, p))
	}
	doc.Sections = append(doc.Sections,
		a.assessmentSection(HeadingFinal, d.Final, p),
		treatmentSection(d),
		SummarySection(d, p),
		declarationSection(d, p),
	)
	return doc
}

func (a *Assembler) narrativeFor(f findings.ClinicalFindings, p textgen.Pronouns) narrative.Narrative {
	if a.cache != nil {
		return a.cache.Generate(f, p)
	}
	return narrative.Generate(f, p)
}

func headerSection(d ReportData) document.Section {
	h := d.Header
	b := document.NewBuilder("")
	b.Line("To: " + textgen.OrPlaceholder(h.To, phRecipient))
	b.Line("From: " + textgen.OrPlaceholder(h.From, phSender))
	if strings.TrimSpace(h.YourRef) != "" {
		b.Line("Your ref: " + strings.TrimSpace(h.YourRef))
	}
	b.Line("Our ref: " + textgen.OrPlaceholder(h.Reference, phReference))
	b.Line("Date: " + textgen.OrPlaceholder(textgen.FormatDate(h.Date), phDate))
	b.Line("Re: " + patientLine(d.Patient))
	return b.Section()
}

func patientLine(pt Patient) string {
	s := textgen.OrPlaceholder(pt.Name, phPatient)
	var ids []string
	for _, v := range []string{pt.IDNumber, pt.HospitalNumber} {
		if v = strings.TrimSpace(v); v != "" {
			ids = append(ids, v)
		}
	}
	if len(ids) > 0 {
		s += " (" + strings.Join(ids, ", ") + ")"
	}
	return s
}

// patientRef is the title and name, e.g. "Mr. Chan Tai Man".
func patientRef(d ReportData, p textgen.Pronouns) string {
	return p.Title + " " + textgen.OrPlaceholder(d.Patient.Name, phPatient)
}

func diagnosisSection(d ReportData) document.Section {
	b := document.NewBuilder(HeadingDiagnosis)
	if diag := strings.TrimSpace(d.Diagnosis); diag != "" {
		b.Line(diag)
	} else {
		b.Placeholder(phDiagnosis)
	}
	return b.Section()
}

// referralSection uses a sentence for a single referral and a table when
// there are several.
func referralSection(d ReportData, p textgen.Pronouns) document.Section {
	b := document.NewBuilder(HeadingReferral)
	var refs []Referral
	for _, r := range d.Referrals {
		if strings.TrimSpace(r.Source) != "" || strings.TrimSpace(r.Date) != "" {
			refs = append(refs, r)
		}
	}

	switch len(refs) {
	case 0:
		b.Line(fmt.Sprintf("%s was referred to our department by %s for physiotherapy.", patientRef(d, p), phReferral))
	case 1:
		r := refs[0]
		text := fmt.Sprintf("%s was referred to our department by %s", patientRef(d, p), textgen.OrPlaceholder(r.Source, phReferral))
		if date := textgen.FormatDate(r.Date); date != "" {
			text += " on " + date
		}
		b.Line(text + " for physiotherapy.")
	default:
		b.Line(fmt.Sprintf("%s was referred to our department for physiotherapy on the following occasions:", patientRef(d, p)))
		t := document.Table{Columns: []string{"Episode", "Referral source", "Date of referral"}}
		for i, r := range refs {
			t.Rows = append(t.Rows, []string{
				textgen.OrPlaceholder(r.Episode, textgen.Ordinal(i+1)),
				textgen.OrPlaceholder(r.Source, phReferral),
				textgen.FormatDateOr(r.Date, "N/A"),
			})
		}
		b.Table(t)
	}
	return b.Section()
}

func durationSection(d ReportData, p textgen.Pronouns) document.Section {
	du := d.Duration
	b := document.NewBuilder(HeadingDuration)

	first := textgen.OrPlaceholder(textgen.FormatDate(du.FirstAttendance), phDate)
	last := textgen.OrPlaceholder(textgen.FormatDate(du.LastAttendance), phDate)
	text := fmt.Sprintf("%s attended physiotherapy at our department from %s to %s with a total of %s sessions",
		patientRef(d, p), first, last, textgen.OrPlaceholder(du.SessionsAttended, phSessions))
	if freq := strings.TrimSpace(du.TreatmentFrequency); freq != "" {
		text += " at a frequency of " + freq
	}
	b.Line(text + ".")

	t := document.Table{
		Columns: []string{"First attendance", "Last attendance", "Sessions attended", "Sessions defaulted", "Sessions cancelled"},
		Rows: [][]string{{
			textgen.FormatDateOr(du.FirstAttendance, "N/A"),
			textgen.FormatDateOr(du.LastAttendance, "N/A"),
			orDash(du.SessionsAttended),
			orDash(du.SessionsDefaulted),
			orDash(du.SessionsCancelled),
		}},
	}
	b.Table(t)
	return b.Section()
}

func orDash(s string) string {
	return textgen.OrPlaceholder(s, "-")
}

func (a *Assembler) assessmentSection(heading string, f findings.ClinicalFindings, p textgen.Pronouns) document.Section {
	if date := textgen.FormatDate(f.Date); date != "" {
		heading += " (" + date + ")"
	}
	b := document.NewBuilder(heading)
	for _, sec := range a.narrativeFor(f, p).Sections() {
		b.Subheading(sec.Heading)
		b.Append(sec.Blocks...)
	}
	return b.Section()
}

func treatmentSection(d ReportData) document.Section {
	b := document.NewBuilder(HeadingTreatment)
	for _, t := range d.Treatments {
		if phrase := t.Phrase(); phrase != "" {
			b.Sentence(textgen.Capitalize(phrase) + ".")
		}
	}
	if other := textgen.TrimSentence(d.OtherTreatment); other != "" {
		b.Sentence(textgen.Capitalize(other) + ".")
	}
	if len(b.Section().Blocks) == 0 {
		b.Placeholder(phTreatment)
	}
	return b.Section()
}

// SummarySection is the discharge or progress summary: the selected
// comparison items between initial and final assessment followed by the
// closing statement.
func SummarySection(d ReportData, p textgen.Pronouns) document.Section {
	b := document.NewBuilder(d.Discharge.Type.SectionTitle())
	lines := discharge.Compose(comparison.Compare(d.Initial, d.Final, p), d.Discharge, p)
	for _, l := range lines {
		b.Numbered(l.Number, l.Text)
	}
	if len(lines) == 0 {
		b.Placeholder(phSummary)
	}
	return b.Section()
}

func declarationSection(d ReportData, p textgen.Pronouns) document.Section {
	th := d.Therapist
	b := document.NewBuilder(HeadingDeclaration)
	consent := textgen.OrPlaceholder(textgen.FormatDate(th.ConsentDate), phDate)
	b.Line(fmt.Sprintf("%s gave consent on %s for the release of this report.", patientRef(d, p), consent))
	b.Line("")
	b.Line("____________________")
	b.Line(textgen.OrPlaceholder(th.Name, phTherapist))
	b.Line(textgen.OrPlaceholder(th.Position, phPosition))
	for _, v := range []string{th.Department, th.Hospital} {
		if v = strings.TrimSpace(v); v != "" {
			b.Line(v)
		}
	}
	return b.Section()
}
