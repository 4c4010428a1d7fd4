package comparison

import (
	"fmt"
	"strings"

	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// musclePower branches by region: myotome for back and neck, grip strength
// for hand and wrist (plus muscle groups at the wrist), muscle groups
// elsewhere.
func (c *comparer) musclePower() []Item {
	var items []Item
	switch {
	case c.loc.IsSpinal():
		if it, ok := c.gradeItem(IDMyotome, c.i.Objective.Myotome, c.f.Objective.Myotome, "myotome", "Myotome of "+c.his+" "+c.spec.LimbPhrase); ok {
			items = append(items, it)
		}
	case c.loc == findings.LocationHand:
		if it, ok := c.handGrip(); ok {
			items = append(items, it)
		}
	case c.loc == findings.LocationWrist:
		if it, ok := c.gradeItem(IDWristMusclePower, c.i.Objective.MusclePower, c.f.Objective.MusclePower, "", "Muscle power of "+c.his+" "+c.region); ok {
			items = append(items, it)
		}
		if it, ok := c.handGrip(); ok {
			items = append(items, it)
		}
	default:
		if it, ok := c.gradeItem(IDMusclePower, c.i.Objective.MusclePower, c.f.Objective.MusclePower, "", "Muscle power of "+c.his+" "+c.region); ok {
			items = append(items, it)
		}
	}
	return items
}

// gradeItem diffs graded rows left and right independently. Every side with
// a value on both assessments gets its own clause, whatever the complaint
// side: a right-sided complaint still reports a left grade change even
// though the narrative table only shows the right column.
func (c *comparer) gradeItem(id string, initial, final []findings.MuscleGrade, suffix, subject string) (Item, bool) {
	if c.f.Objective.MusclePowerNotTested {
		return Item{}, false
	}
	notTested := c.i.Objective.MusclePowerNotTested
	var clauses []string
	for _, fr := range final {
		ir, matched := findGrade(initial, fr.Group)
		for _, side := range []struct {
			name   string
			iv, fv string
		}{
			{"left", ir.LeftGrade, fr.LeftGrade},
			{"right", ir.RightGrade, fr.RightGrade},
		} {
			fv := trim(side.fv)
			if fv == "" {
				continue
			}
			name := side.name + " " + gradeName(fr.Group, suffix)
			if notTested {
				clauses = append(clauses, fmt.Sprintf("%s to %s", name, textgen.FormatGrade(fv)))
				continue
			}
			iv := trim(side.iv)
			if !matched || iv == "" {
				continue
			}
			clauses = append(clauses, changeClause(name, textgen.FormatGrade(iv), textgen.FormatGrade(fv), ""))
		}
	}
	if len(clauses) == 0 {
		return Item{}, false
	}
	var text string
	if notTested {
		text = fmt.Sprintf("%s was not tested initially and reached %s at final assessment.", subject, textgen.JoinWithAnd(clauses))
	} else {
		text = fmt.Sprintf("%s showed %s.", subject, textgen.JoinWithAnd(clauses))
	}
	return Item{ID: id, Category: CategoryMusclePower, Text: text}, true
}

func gradeName(group, suffix string) string {
	name := group
	if strings.ToUpper(group) != group {
		name = strings.ToLower(group)
	}
	if suffix != "" {
		name += " " + suffix
	}
	return name
}

func findGrade(list []findings.MuscleGrade, group string) (findings.MuscleGrade, bool) {
	for _, g := range list {
		if strings.EqualFold(trim(g.Group), trim(group)) {
			return g, true
		}
	}
	return findings.MuscleGrade{}, false
}

// handGrip reports only the hand on the complaint side. A bilateral or unset
// side reports both hands.
func (c *comparer) handGrip() (Item, bool) {
	fo, io := c.f.Objective, c.i.Objective
	if fo.HandGripNotTested || (c.loc == findings.LocationHand && fo.MusclePowerNotTested) {
		return Item{}, false
	}
	notTested := io.HandGripNotTested || (c.loc == findings.LocationHand && io.MusclePowerNotTested)

	var sides []findings.Side
	switch c.side {
	case findings.SideLeft, findings.SideRight:
		sides = []findings.Side{c.side}
	default:
		sides = []findings.Side{findings.SideRight, findings.SideLeft}
	}

	measures := []struct {
		name string
		get  func(findings.GripSet) string
	}{
		{"hand grip strength", func(s findings.GripSet) string { return s.HandGrip }},
		{"pinch grip strength", func(s findings.GripSet) string { return s.PinchGrip }},
		{"lateral pinch strength", func(s findings.GripSet) string { return s.LateralPinch }},
	}

	var clauses []string
	for _, side := range sides {
		iset, fset := io.HandGripStrength.Side(side), fo.HandGripStrength.Side(side)
		for _, m := range measures {
			fv := trim(m.get(fset))
			if fv == "" {
				continue
			}
			name := fmt.Sprintf("%s of %s %s hand", m.name, c.his, side)
			if notTested {
				clauses = append(clauses, fmt.Sprintf("%s to %s kgf", name, fv))
				continue
			}
			iv := trim(m.get(iset))
			if iv == "" {
				continue
			}
			clauses = append(clauses, changeClause(name, iv, fv, "kgf"))
		}
	}
	if len(clauses) == 0 {
		return Item{}, false
	}
	var text string
	if notTested {
		text = fmt.Sprintf("Grip strength was not tested initially and reached %s at final assessment.", textgen.JoinWithAnd(clauses))
	} else {
		text = fmt.Sprintf("There was %s.", textgen.JoinWithAnd(clauses))
	}
	return Item{ID: IDHandGrip, Category: CategoryMusclePower, Text: text}, true
}
