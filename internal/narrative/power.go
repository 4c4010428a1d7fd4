package narrative

import (
	"fmt"
	"strings"

	"github.com/mrsinham/physioreport/internal/document"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// musclePower emits the strength block. Back and neck are graded by
// myotome, the hand by grip strength, the wrist by muscle groups plus a
// grip sentence, and every other region by muscle groups.
func (g *generator) musclePower(b *document.Builder) {
	switch {
	case g.loc.IsSpinal():
		if g.o.MusclePowerNotTested {
			g.powerNotTested(b)
			return
		}
		b.Sentence(fmt.Sprintf("Myotome of %s %s was as follows:", g.his, g.spec.LimbPhrase))
		b.Table(g.myotomeTable())

	case g.loc == findings.LocationHand:
		if g.o.MusclePowerNotTested || g.o.HandGripNotTested {
			g.powerNotTested(b)
			return
		}
		g.handGrip(b)

	case g.loc == findings.LocationWrist:
		if g.o.MusclePowerNotTested {
			g.powerNotTested(b)
		} else {
			b.Sentence(fmt.Sprintf("Muscle power of %s %s was as follows:", g.his, g.region))
			b.Table(g.muscleGroupTable())
		}
		if g.o.HandGripNotTested {
			b.Sentence(fmt.Sprintf("Hand grip strength of %s %s was not tested.", g.his, g.sideHand()))
			return
		}
		if g.o.HandGripStrength.HasHandGripData() {
			b.Sentence(g.gripSentence())
		}

	default:
		if g.o.MusclePowerNotTested {
			g.powerNotTested(b)
			return
		}
		b.Sentence(fmt.Sprintf("Muscle power of %s %s was as follows:", g.his, g.region))
		b.Table(g.muscleGroupTable())
	}
}

func (g *generator) powerNotTested(b *document.Builder) {
	b.Sentence(fmt.Sprintf("Muscle power of %s %s was not tested.", g.his, g.limbTarget()))
}

func (g *generator) myotomeTable() document.Table {
	rows := gradedRows(g.o.Myotome, true, true)
	if len(rows) == 0 {
		rows = g.o.Myotome
		if len(rows) == 0 {
			rows = g.spec.NewMyotome()
		}
	}
	t := document.Table{Columns: []string{"Myotome", "Left", "Right"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Group, textgen.FormatGrade(r.LeftGrade), textgen.FormatGrade(r.RightGrade)})
	}
	return t
}

// muscleGroupTable shows only the complaint side's column for a unilateral
// complaint and both columns otherwise.
func (g *generator) muscleGroupTable() document.Table {
	left := g.side != findings.SideRight
	right := g.side != findings.SideLeft

	rows := gradedRows(g.o.MusclePower, left, right)
	if len(rows) == 0 {
		rows = g.o.MusclePower
		if len(rows) == 0 {
			rows = g.spec.NewMusclePower()
		}
	}

	t := document.Table{Columns: []string{"Muscle group"}}
	if left {
		t.Columns = append(t.Columns, "Left")
	}
	if right {
		t.Columns = append(t.Columns, "Right")
	}
	for _, r := range rows {
		row := []string{r.Group}
		if left {
			row = append(row, textgen.FormatGrade(r.LeftGrade))
		}
		if right {
			row = append(row, textgen.FormatGrade(r.RightGrade))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func gradedRows(rows []findings.MuscleGrade, left, right bool) []findings.MuscleGrade {
	var out []findings.MuscleGrade
	for _, r := range rows {
		if (left && !isBlank(r.LeftGrade)) || (right && !isBlank(r.RightGrade)) {
			out = append(out, r)
		}
	}
	return out
}

// handGrip renders the hand region's strength block. Pinch or lateral pinch
// data calls for a table. Hand grip alone collapses to a sentence.
func (g *generator) handGrip(b *document.Builder) {
	h := g.o.HandGripStrength
	switch {
	case h.HasPinchData():
		b.Sentence(fmt.Sprintf("Grip strength of %s %s was as follows:", g.his, g.gripHands()))
		b.Table(gripTable(h))
	case h.HasHandGripData():
		b.Sentence(g.gripSentence())
	default:
		b.Sentence(g.gripPlaceholderSentence())
	}
}

func (g *generator) gripHands() string {
	h := g.o.HandGripStrength
	switch {
	case !h.Right.IsEmpty() && !h.Left.IsEmpty():
		return "hands"
	case !h.Left.IsEmpty():
		return "left hand"
	default:
		return "right hand"
	}
}

func gripTable(h findings.HandGripStrength) document.Table {
	right, left := !h.Right.IsEmpty(), !h.Left.IsEmpty()
	t := document.Table{Columns: []string{"Grip"}}
	if right {
		t.Columns = append(t.Columns, "Right (kgf)")
	}
	if left {
		t.Columns = append(t.Columns, "Left (kgf)")
	}
	measures := []struct {
		name string
		get  func(findings.GripSet) string
	}{
		{"Hand grip", func(s findings.GripSet) string { return s.HandGrip }},
		{"Pinch grip", func(s findings.GripSet) string { return s.PinchGrip }},
		{"Lateral pinch", func(s findings.GripSet) string { return s.LateralPinch }},
	}
	for _, m := range measures {
		r, l := m.get(h.Right), m.get(h.Left)
		if isBlank(r) && isBlank(l) {
			continue
		}
		row := []string{m.name}
		if right {
			row = append(row, dashIfBlank(r))
		}
		if left {
			row = append(row, dashIfBlank(l))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// gripSentence states hand grip only, in the two-hand or one-hand form.
func (g *generator) gripSentence() string {
	h := g.o.HandGripStrength
	r, l := trim(h.Right.HandGrip), trim(h.Left.HandGrip)
	switch {
	case r != "" && l != "":
		return fmt.Sprintf("Hand grip strength of %s right hand and left hand was %s and %s respectively.",
			g.his, kgf(r), kgf(l))
	case l != "":
		return fmt.Sprintf("Hand grip strength of %s left hand was %s.", g.his, kgf(l))
	default:
		return fmt.Sprintf("Hand grip strength of %s right hand was %s.", g.his, kgf(r))
	}
}

func (g *generator) gripPlaceholderSentence() string {
	switch g.side {
	case findings.SideBilateral:
		return fmt.Sprintf("Hand grip strength of %s right hand and left hand was %s and %s respectively.",
			g.his, kgf(phKgf), kgf(phKgf))
	case findings.SideLeft:
		return fmt.Sprintf("Hand grip strength of %s left hand was %s.", g.his, kgf(phKgf))
	default:
		return fmt.Sprintf("Hand grip strength of %s right hand was %s.", g.his, kgf(phKgf))
	}
}

func kgf(v string) string {
	if strings.HasSuffix(strings.ToLower(v), "kgf") {
		return v
	}
	return v + " kgf"
}
