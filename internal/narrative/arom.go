package narrative

import (
	"fmt"

	"github.com/mrsinham/physioreport/internal/document"
	"github.com/mrsinham/physioreport/internal/findings"
)

func (g *generator) arom(b *document.Builder) {
	if g.o.AROMNotTested {
		b.Sentence(fmt.Sprintf("Active range of motion (AROM) of %s %s was not tested.", g.his, g.region))
		return
	}

	b.Sentence(fmt.Sprintf("Active range of motion (AROM) of %s %s was as follows:", g.his, g.region))
	if g.spec.UsesDigits() {
		b.Table(g.digitTable())
	} else {
		b.Table(g.movementTable())
	}

	if g.loc == findings.LocationWrist && !isBlank(g.o.GrossFingersROM) {
		b.Sentence(fmt.Sprintf("Gross fingers AROM of %s %s was %s.", g.his, g.sideHand(), trim(g.o.GrossFingersROM)))
	}
}

func (g *generator) movementTable() document.Table {
	unit := g.spec.AROMUnit
	var rows []findings.Movement
	for _, m := range g.o.AROMMovements {
		if m.HasData() {
			rows = append(rows, m)
		}
	}
	withToes := g.loc == findings.LocationAnkle && !isBlank(g.o.ToesROM)
	skeleton := len(rows) == 0 && !withToes
	if len(rows) == 0 {
		rows = g.o.AROMMovements
		if len(rows) == 0 {
			rows = g.spec.NewMovements()
		}
		if len(rows) == 0 && skeleton {
			rows = []findings.Movement{{Movement: "[Movement]"}}
		}
	}

	withPROM := false
	for _, m := range rows {
		if !isBlank(m.PROM) {
			withPROM = true
			break
		}
	}

	t := document.Table{Columns: []string{"Movement", fmt.Sprintf("AROM (%s)", unit)}}
	if withPROM {
		t.Columns = append(t.Columns, fmt.Sprintf("PROM (%s)", unit))
	}
	for _, m := range rows {
		arom := dashIfBlank(m.AROM)
		if skeleton {
			arom = phAROM
		}
		row := []string{trim(m.Movement), arom}
		if withPROM {
			row = append(row, dashIfBlank(m.PROM))
		}
		t.Rows = append(t.Rows, row)
	}

	if withToes {
		row := []string{"Toes", trim(g.o.ToesROM)}
		if withPROM {
			row = append(row, "-")
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// digitTable renders hand and foot AROM. A single digit gets a two-column
// table titled with its name. Several digits share one table with a column
// per digit and a row per joint type.
func (g *generator) digitTable() document.Table {
	unit := g.spec.AROMUnit
	var digits []findings.Digit
	for _, d := range g.o.FingersToesData {
		if d.HasData() {
			digits = append(digits, d)
		}
	}
	skeleton := len(digits) == 0
	if skeleton {
		digits = g.o.FingersToesData
		if len(digits) == 0 {
			digits = g.spec.NewDigits()
		}
	}
	cell := func(r string) string {
		if skeleton {
			return phAROM
		}
		return dashIfBlank(r)
	}

	if len(digits) == 1 {
		d := digits[0]
		t := document.Table{
			Title:   d.Name,
			Columns: []string{"Joint", fmt.Sprintf("AROM (%s)", unit)},
		}
		for _, j := range d.Joints {
			t.Rows = append(t.Rows, []string{j.JointType, cell(j.Range)})
		}
		return t
	}

	t := document.Table{Columns: []string{"Joint"}}
	var joints []string
	seen := map[string]bool{}
	for _, d := range digits {
		t.Columns = append(t.Columns, d.Name)
		for _, j := range d.Joints {
			if !seen[j.JointType] {
				seen[j.JointType] = true
				joints = append(joints, j.JointType)
			}
		}
	}
	for _, jt := range joints {
		row := []string{jt}
		for _, d := range digits {
			value, ok := jointRange(d, jt)
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, cell(value))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func jointRange(d findings.Digit, jointType string) (string, bool) {
	for _, j := range d.Joints {
		if j.JointType == jointType {
			return j.Range, true
		}
	}
	return "", false
}
