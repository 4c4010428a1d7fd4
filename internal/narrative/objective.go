package narrative

import (
	"fmt"
	"strings"

	"github.com/mrsinham/physioreport/internal/document"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

const defaultSLRAngle = "70-80"

func (g *generator) splint(b *document.Builder) {
	if !g.o.SplintInclude {
		return
	}
	b.Sentence(fmt.Sprintf("%s was wearing a %s over %s %s.",
		g.p.He, textgen.OrPlaceholder(g.o.SplintType, phSplint), g.his, g.region))
}

func (g *generator) tenderness(b *document.Builder) {
	if !g.o.TendernessInclude {
		return
	}
	b.Sentence(fmt.Sprintf("Tenderness was noted over %s.", textgen.OrPlaceholder(g.o.TendernessArea, phArea)))
}

// swellingTemperature merges the two findings into one sentence when they
// share an area.
func (g *generator) swellingTemperature(b *document.Builder) {
	sw, temp := g.o.SwellingInclude, g.o.TemperatureInclude
	swArea := textgen.OrPlaceholder(g.o.SwellingArea, phArea)
	tempArea := textgen.OrPlaceholder(g.o.TemperatureArea, phArea)

	if sw && temp && strings.EqualFold(swArea, tempArea) {
		b.Sentence(fmt.Sprintf("Swelling and increased temperature were noted over %s.", swArea))
		return
	}
	if sw {
		b.Sentence(fmt.Sprintf("Swelling was noted over %s.", swArea))
	}
	if temp {
		b.Sentence(fmt.Sprintf("Increased temperature was noted over %s.", tempArea))
	}
}

// sensation is always reported for back and neck, together with reflex.
// Elsewhere it is reported only when included.
func (g *generator) sensation(b *document.Builder) {
	if g.loc.IsSpinal() {
		b.Sentence(fmt.Sprintf("Sensation of %s %s was %s and reflex was %s.",
			g.his, g.spec.LimbPhrase, g.sensationPredicate(), g.reflexPredicate()))
		return
	}
	if !g.o.SensationInclude {
		return
	}
	b.Sentence(fmt.Sprintf("Sensation of %s %s was %s.", g.his, g.region, g.sensationPredicate()))
}

func (g *generator) sensationPredicate() string {
	area := textgen.OrPlaceholder(g.o.SensationArea, phArea)
	switch g.o.SensationStatus {
	case findings.SensationIntact:
		return "intact"
	case findings.SensationReduced:
		pct := textgen.OrPlaceholder(textgen.AutoAddPercent(g.o.SensationPercentage), phPercent)
		return fmt.Sprintf("reduced by %s over %s", pct, area)
	case findings.SensationHypersensitive:
		return "hypersensitive over " + area
	default:
		return phSensation
	}
}

func (g *generator) reflexPredicate() string {
	switch g.o.ReflexStatus {
	case findings.ReflexNormal:
		return "normal"
	case findings.ReflexAbnormal:
		if d := trim(g.o.ReflexDetail); d != "" {
			return fmt.Sprintf("abnormal (%s)", d)
		}
		return "abnormal"
	default:
		return phReflex
	}
}

func (g *generator) specialTests(b *document.Builder) {
	for _, t := range g.o.SpecialTests {
		switch t.Kind {
		case findings.TestStraightLegRaise:
			if s := g.straightLegRaise(t); s != "" {
				b.Sentence(s)
			}
		default:
			if isBlank(t.TestName) || isBlank(t.Result) {
				continue
			}
			b.Sentence(fmt.Sprintf("%s was %s.", trim(t.TestName), textgen.TrimSentence(t.Result)))
		}
	}
}

// straightLegRaise groups the legs by outcome: positive legs first, then
// " while " and the normal legs. A test with no recorded result on either
// leg produces nothing.
func (g *generator) straightLegRaise(t findings.SpecialTest) string {
	var positive, normal []string
	for _, leg := range []struct {
		name   string
		result findings.TestResult
	}{
		{"left", t.LeftResult},
		{"right", t.RightResult},
	} {
		switch leg.result {
		case findings.ResultPositive:
			positive = append(positive, leg.name)
		case findings.ResultNegative:
			normal = append(normal, leg.name)
		}
	}

	angle := textgen.OrPlaceholder(t.Angle, defaultSLRAngle)
	var clauses []string
	if len(positive) > 0 {
		clauses = append(clauses, fmt.Sprintf("straight leg raise of %s %s was positive when raising to %s degrees of hip flexion",
			g.his, legs(positive), angle))
	}
	if len(normal) > 0 {
		clauses = append(clauses, fmt.Sprintf("straight leg raise of %s %s was normal", g.his, legs(normal)))
	}
	if len(clauses) == 0 {
		return ""
	}
	return textgen.Capitalize(strings.Join(clauses, " while ")) + "."
}

func legs(sides []string) string {
	if len(sides) == 1 {
		return sides[0] + " leg"
	}
	return textgen.JoinWithAnd(sides) + " legs"
}

// gait is always reported.
func (g *generator) gait(b *document.Builder) {
	var aid string
	switch {
	case isBlank(g.o.WalkingAid):
		aid = phAid
	case isUnaided(g.o.WalkingAid):
		aid = "unaided"
	default:
		aid = "with " + trim(g.o.WalkingAid)
	}

	text := fmt.Sprintf("%s walked %s", g.p.He, aid)
	if wb := trim(g.o.WBStatus); wb != "" {
		text += " under " + wb
	}
	stability := textgen.OrPlaceholder(textgen.LowercaseFirstWord(g.o.WalkingStability), phStability)
	b.Sentence(fmt.Sprintf("%s with %s gait.", text, stability))
}

func (g *generator) questionnaires(b *document.Builder) {
	for _, q := range g.o.Questionnaires {
		if isBlank(q.Name) {
			continue
		}
		b.Sentence(QuestionnaireSentence(q))
	}
}

// QuestionnaireSentence renders the scoring sentence for one questionnaire.
func QuestionnaireSentence(q findings.Questionnaire) string {
	score := textgen.OrPlaceholder(q.Score, phScore)
	if info, ok := findings.LookupQuestionnaire(q.Name); ok {
		return fmt.Sprintf("%s (%s) was charted as %s out of %s.", info.FullName, info.Name, score, info.MaxScore)
	}
	return fmt.Sprintf("%s was charted as %s.", trim(q.Name), score)
}
