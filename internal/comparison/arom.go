package comparison

import (
	"fmt"
	"strings"

	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// arom branches by region: per digit for hand and foot, movements plus toes
// for the ankle, movements only elsewhere. The wrist also reports gross
// fingers AROM.
func (c *comparer) arom() []Item {
	if c.f.Objective.AROMNotTested {
		return nil
	}
	var items []Item
	if c.spec.UsesDigits() {
		items = c.digitsAROM()
	} else if it, ok := c.movementAROM(); ok {
		items = append(items, it)
	}
	if c.loc == findings.LocationWrist {
		if it, ok := c.grossFingers(); ok {
			items = append(items, it)
		}
	}
	return items
}

func (c *comparer) movementAROM() (Item, bool) {
	unit := c.spec.AROMUnit
	notTested := c.i.Objective.AROMNotTested
	var clauses []string
	for _, fm := range c.f.Objective.AROMMovements {
		fv := trim(fm.AROM)
		if fv == "" {
			continue
		}
		name := strings.ToLower(trim(fm.Movement))
		if notTested {
			clauses = append(clauses, fmt.Sprintf("%s to %s %s", name, fv, unit))
			continue
		}
		im, ok := findMovement(c.i.Objective.AROMMovements, fm.Movement)
		if !ok || isBlank(im.AROM) {
			continue
		}
		clauses = append(clauses, changeClause(name, trim(im.AROM), fv, unit))
	}

	if c.loc == findings.LocationAnkle {
		iv, fv := trim(c.i.Objective.ToesROM), trim(c.f.Objective.ToesROM)
		switch {
		case fv == "":
		case notTested:
			clauses = append(clauses, fmt.Sprintf("toes to %s", fv))
		case iv != "":
			clauses = append(clauses, changeClause("toes", iv, fv, ""))
		}
	}

	if len(clauses) == 0 {
		return Item{}, false
	}
	return Item{ID: IDAROM, Category: CategoryAROM, Text: c.aromSentence(c.region, clauses, notTested)}, true
}

func (c *comparer) aromSentence(subject string, clauses []string, notTested bool) string {
	if notTested {
		return fmt.Sprintf("AROM of %s %s was not tested initially and reached %s at final assessment.",
			c.his, subject, textgen.JoinWithAnd(clauses))
	}
	return fmt.Sprintf("AROM of %s %s showed %s.", c.his, subject, textgen.JoinWithAnd(clauses))
}

// changeClause renders "increase of flexion from 90 to 120 degrees".
func changeClause(name, iv, fv, unit string) string {
	change := textgen.CompareMeasure(iv, fv)
	var s string
	if change == textgen.NoChange {
		s = fmt.Sprintf("%s %s at %s", change.Phrase(), name, fv)
	} else {
		s = fmt.Sprintf("%s %s from %s to %s", change.Phrase(), name, iv, fv)
	}
	if unit != "" {
		s += " " + unit
	}
	return s
}

func findMovement(list []findings.Movement, name string) (findings.Movement, bool) {
	for _, m := range list {
		if strings.EqualFold(trim(m.Movement), trim(name)) {
			return m, true
		}
	}
	return findings.Movement{}, false
}

// digitsAROM emits one item per final digit, matching the initial digit by
// name and then each joint by joint type, both case-insensitively.
func (c *comparer) digitsAROM() []Item {
	unit := c.spec.AROMUnit
	notTested := c.i.Objective.AROMNotTested
	var items []Item
	seen := map[string]bool{}
	for _, fd := range c.f.Objective.FingersToesData {
		id := aromPrefix + textgen.Slug(fd.Name)
		if seen[id] {
			continue
		}
		initialDigit, matched := findDigit(c.i.Objective.FingersToesData, fd.Name)
		var clauses []string
		for _, fj := range fd.Joints {
			fv := trim(fj.Range)
			if fv == "" {
				continue
			}
			if notTested {
				clauses = append(clauses, fmt.Sprintf("%s to %s %s", trim(fj.JointType), fv, unit))
				continue
			}
			if !matched {
				continue
			}
			ij, ok := findJoint(initialDigit.Joints, fj.JointType)
			if !ok || isBlank(ij.Range) {
				continue
			}
			clauses = append(clauses, changeClause(trim(fj.JointType), trim(ij.Range), fv, unit))
		}
		if len(clauses) == 0 {
			continue
		}
		seen[id] = true
		items = append(items, Item{
			ID:       id,
			Category: CategoryAROM,
			Text:     c.aromSentence(c.digitSubject(fd.Name), clauses, notTested),
		})
	}
	return items
}

func (c *comparer) digitSubject(name string) string {
	d := strings.ToLower(trim(name))
	if c.side == findings.SideLeft || c.side == findings.SideRight {
		return string(c.side) + " " + d
	}
	return d
}

func findDigit(list []findings.Digit, name string) (findings.Digit, bool) {
	for _, d := range list {
		if strings.EqualFold(trim(d.Name), trim(name)) {
			return d, true
		}
	}
	return findings.Digit{}, false
}

func findJoint(list []findings.JointRange, jointType string) (findings.JointRange, bool) {
	for _, j := range list {
		if strings.EqualFold(trim(j.JointType), trim(jointType)) {
			return j, true
		}
	}
	return findings.JointRange{}, false
}

func (c *comparer) grossFingers() (Item, bool) {
	iv, fv := trim(c.i.Objective.GrossFingersROM), trim(c.f.Objective.GrossFingersROM)
	if fv == "" {
		return Item{}, false
	}
	var text string
	switch {
	case c.i.Objective.AROMNotTested:
		text = fmt.Sprintf("Gross fingers AROM of %s %s was not tested initially and reached %s at final assessment.",
			c.his, c.sideHand(), fv)
	case iv == "":
		return Item{}, false
	default:
		text = fmt.Sprintf("There was %s gross fingers AROM of %s %s from %s to %s.",
			textgen.CompareMeasure(iv, fv).Phrase(), c.his, c.sideHand(), iv, fv)
	}
	return Item{ID: IDGrossFingersROM, Category: CategoryAROM, Text: text}, true
}
