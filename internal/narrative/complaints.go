package narrative

import (
	"fmt"
	"strings"

	"github.com/mrsinham/physioreport/internal/document"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

const defaultActivityUnit = "minutes"

func (g *generator) complaints() document.Section {
	c := g.f.Complaints
	b := document.NewBuilder(HeadingComplaints)

	b.Sentence(fmt.Sprintf("%s complained of pain over %s %s with pain intensity %s out of 10 as charted by NPRS.",
		g.p.He, g.his, g.region, textgen.OrPlaceholder(c.PainIntensity, phPain)))

	for _, s := range c.OtherSymptoms {
		if isBlank(s.Symptom) {
			continue
		}
		text := fmt.Sprintf("%s also complained of %s over %s %s", g.p.He, trim(s.Symptom), g.his, g.region)
		if !isBlank(s.Intensity) {
			text += fmt.Sprintf(" with intensity %s out of 10", trim(s.Intensity))
		}
		b.Sentence(text + ".")
	}

	if items := activityItems(c); len(items) > 0 {
		b.Sentence(fmt.Sprintf("%s could tolerate %s.", g.p.He, textgen.JoinWithAnd(items)))
	}

	if !isBlank(c.OtherFunctionalLimitation) {
		b.Sentence(fmt.Sprintf("%s other functional limitation included %s.",
			g.p.His, textgen.LowercaseFirstWord(textgen.TrimSentence(c.OtherFunctionalLimitation))))
	}

	if ngrcs := trim(c.OverallImprovement); ngrcs != "" && ngrcs != "0" {
		b.Sentence(fmt.Sprintf("%s rated %s overall improvement as %s out of 10 as charted by NGRCS.",
			g.p.He, g.his, ngrcs))
	}
	return b.Section()
}

// activityItems lists walking/standing tolerance (with the aid clause)
// before sitting/reading tolerance. Entries lacking an activity or a
// duration are skipped.
func activityItems(c findings.Complaints) []string {
	var items []string
	for _, a := range c.Activities2 {
		if isBlank(a.Activity) || isBlank(a.Duration) {
			continue
		}
		items = append(items, activityPhrase(a)+" "+aidClause(a.Aid))
	}
	for _, a := range c.Activities1 {
		if isBlank(a.Activity) || isBlank(a.Duration) {
			continue
		}
		items = append(items, activityPhrase(a))
	}
	return items
}

func activityPhrase(a findings.Activity) string {
	unit := trim(a.Unit)
	if unit == "" {
		unit = defaultActivityUnit
	}
	return fmt.Sprintf("%s for %s %s", textgen.LowercaseFirstWord(trim(a.Activity)), trim(a.Duration), unit)
}

func aidClause(aid string) string {
	if isUnaided(aid) {
		return "without aid"
	}
	return "with " + trim(aid)
}

func isUnaided(aid string) bool {
	switch strings.ToLower(trim(aid)) {
	case "", "unaided", "without aid", "none", "nil":
		return true
	}
	return false
}
