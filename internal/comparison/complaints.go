package comparison

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// pain keeps raw string ordering of the intensities.
func (c *comparer) pain() []Item {
	iv, fv := trim(c.i.Complaints.PainIntensity), trim(c.f.Complaints.PainIntensity)
	if iv == "" || fv == "" {
		return nil
	}
	text := fmt.Sprintf("There was %s pain over %s %s from pain intensity %s out of 10 to pain intensity %s out of 10 as charted by NPRS.",
		textgen.CompareRaw(iv, fv).Phrase(), c.his, c.region, iv, fv)
	return []Item{{ID: IDPain, Category: CategoryPain, Text: text}}
}

// ngrcs is usually only rated at final assessment; a lone final rating is
// reported as is.
func (c *comparer) ngrcs() []Item {
	iv, fv := trim(c.i.Complaints.OverallImprovement), trim(c.f.Complaints.OverallImprovement)
	if fv == "" || fv == "0" {
		return nil
	}
	var text string
	if iv == "" || iv == "0" {
		text = fmt.Sprintf("%s rated %s overall improvement as %s out of 10 as charted by NGRCS.", c.p.He, c.his, fv)
	} else {
		text = fmt.Sprintf("There was %s overall improvement from %s out of 10 to %s out of 10 as charted by NGRCS.",
			textgen.CompareMeasure(iv, fv).Phrase(), iv, fv)
	}
	return []Item{{ID: IDNGRCS, Category: CategoryNGRCS, Text: text}}
}

func (c *comparer) symptoms() []Item {
	var items []Item
	seen := map[string]bool{}
	for _, fs := range c.f.Complaints.OtherSymptoms {
		id := symptomPrefix + textgen.Slug(fs.Symptom)
		if isBlank(fs.Symptom) || isBlank(fs.Intensity) || seen[id] {
			continue
		}
		is, ok := findSymptom(c.i.Complaints.OtherSymptoms, fs.Symptom)
		if !ok || isBlank(is.Intensity) {
			continue
		}
		seen[id] = true
		iv, fv := trim(is.Intensity), trim(fs.Intensity)
		items = append(items, Item{
			ID:       id,
			Category: CategoryOtherSymptoms,
			Text: fmt.Sprintf("There was %s %s over %s %s from intensity %s out of 10 to intensity %s out of 10.",
				textgen.CompareMeasure(iv, fv).Phrase(), lowerFirst(fs.Symptom), c.his, c.region, iv, fv),
		})
	}
	return items
}

func findSymptom(list []findings.Symptom, name string) (findings.Symptom, bool) {
	for _, s := range list {
		if strings.EqualFold(trim(s.Symptom), trim(name)) {
			return s, true
		}
	}
	return findings.Symptom{}, false
}

type activityEntry struct {
	findings.Activity
	// withAid is set for walking/standing entries, which report the aid.
	withAid bool
}

func activityEntries(c findings.Complaints) []activityEntry {
	var out []activityEntry
	for _, a := range c.Activities2 {
		out = append(out, activityEntry{Activity: a, withAid: true})
	}
	for _, a := range c.Activities1 {
		out = append(out, activityEntry{Activity: a})
	}
	return out
}

func (c *comparer) activities() []Item {
	initial := activityEntries(c.i.Complaints)
	var items []Item
	seen := map[string]bool{}
	for _, fa := range activityEntries(c.f.Complaints) {
		id := activityPrefix + textgen.Slug(fa.Activity.Activity)
		if isBlank(fa.Activity.Activity) || isBlank(fa.Duration) || seen[id] {
			continue
		}
		var ia activityEntry
		found := false
		for _, cand := range initial {
			if strings.EqualFold(trim(cand.Activity.Activity), trim(fa.Activity.Activity)) && !isBlank(cand.Duration) {
				ia, found = cand, true
				break
			}
		}
		if !found {
			continue
		}
		seen[id] = true
		items = append(items, Item{
			ID:       id,
			Category: CategoryFunctionalActivity,
			Text: fmt.Sprintf("There was %s %s tolerance from %s to %s.",
				compareDuration(ia.Activity, fa.Activity).Phrase(), lowerFirst(fa.Activity.Activity),
				durationPhrase(ia), durationPhrase(fa)),
		})
	}
	return items
}

func durationPhrase(a activityEntry) string {
	unit := trim(a.Unit)
	if unit == "" {
		unit = "minutes"
	}
	s := trim(a.Duration) + " " + unit
	if !a.withAid {
		return s
	}
	aid := trim(a.Aid)
	switch strings.ToLower(aid) {
	case "", "unaided", "without aid", "none", "nil":
		return s + " without aid"
	}
	return s + " with " + aid
}

// compareDuration normalises both durations to minutes before comparing.
func compareDuration(i, f findings.Activity) textgen.Change {
	im, okI := minutes(i.Duration, i.Unit)
	fm, okF := minutes(f.Duration, f.Unit)
	if !okI || !okF {
		return textgen.CompareMeasure(i.Duration, f.Duration)
	}
	switch {
	case fm < im:
		return textgen.Reduction
	case fm > im:
		return textgen.Increase
	default:
		return textgen.NoChange
	}
}

func minutes(duration, unit string) (float64, bool) {
	v, err := strconv.ParseFloat(trim(duration), 64)
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(trim(unit)) {
	case "", "min", "mins", "minute", "minutes":
		return v, true
	case "h", "hr", "hrs", "hour", "hours":
		return v * 60, true
	case "s", "sec", "secs", "second", "seconds":
		return v / 60, true
	}
	return 0, false
}

func (c *comparer) otherLimitation() []Item {
	iv := textgen.TrimSentence(c.i.Complaints.OtherFunctionalLimitation)
	fv := textgen.TrimSentence(c.f.Complaints.OtherFunctionalLimitation)
	if iv == "" || fv == "" {
		return nil
	}
	var text string
	if strings.EqualFold(iv, fv) {
		text = fmt.Sprintf("There was no change of %s other functional limitation of %s.", c.his, textgen.LowercaseFirstWord(fv))
	} else {
		text = fmt.Sprintf("%s other functional limitation changed from %s initially to %s at final assessment.",
			c.p.His, textgen.LowercaseFirstWord(iv), textgen.LowercaseFirstWord(fv))
	}
	return []Item{{ID: IDOtherFunctionalLimitation, Category: CategoryOtherFunctionalLimitation, Text: text}}
}

func (c *comparer) wbStatus() []Item {
	iv, fv := trim(c.i.Objective.WBStatus), trim(c.f.Objective.WBStatus)
	if iv == "" || fv == "" {
		return nil
	}
	var text string
	if strings.EqualFold(iv, fv) {
		text = fmt.Sprintf("There was no change of %s weight bearing status of %s.", c.his, fv)
	} else {
		text = fmt.Sprintf("%s weight bearing status changed from %s to %s.", c.p.His, iv, fv)
	}
	return []Item{{ID: IDWBStatus, Category: CategoryWBStatus, Text: text}}
}
