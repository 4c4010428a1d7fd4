// Package comparison diffs an initial and a final assessment into an ordered
// list of change statements for the discharge summary.
package comparison

import (
	"strings"

	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// Category groups comparison items and fixes their default order.
type Category string

const (
	CategoryPain                      Category = "pain"
	CategoryNGRCS                     Category = "ngrcs"
	CategoryOtherSymptoms             Category = "other_symptoms"
	CategoryFunctionalActivity        Category = "functional_activity"
	CategoryOtherFunctionalLimitation Category = "other_functional_limitation"
	CategoryWBStatus                  Category = "wb_status"
	CategoryAROM                      Category = "arom"
	CategoryMusclePower               Category = "muscle_power"
)

// UnknownRank sorts unrecognised categories last.
const UnknownRank = 999

var ranks = map[Category]int{
	CategoryPain:                      1,
	CategoryNGRCS:                     2,
	CategoryOtherSymptoms:             3,
	CategoryFunctionalActivity:        4,
	CategoryOtherFunctionalLimitation: 5,
	CategoryWBStatus:                  6,
	CategoryAROM:                      7,
	CategoryMusclePower:               8,
}

// Rank returns the default position of the category.
func (c Category) Rank() int {
	if r, ok := ranks[c]; ok {
		return r
	}
	return UnknownRank
}

// Stable item ids. Per-entry ids add a slug suffix, e.g. "symptom_numbness".
const (
	IDPain                      = "pain"
	IDNGRCS                     = "ngrcs"
	IDOtherFunctionalLimitation = "other_functional_limitation"
	IDWBStatus                  = "wb_status"
	IDAROM                      = "arom"
	IDGrossFingersROM           = "gross_fingers_rom"
	IDMyotome                   = "myotome"
	IDMusclePower               = "muscle_power"
	IDWristMusclePower          = "wrist_muscle_power"
	IDHandGrip                  = "hand_grip"

	symptomPrefix  = "symptom_"
	activityPrefix = "activity_"
	aromPrefix     = "arom_"
)

// Item is one change statement. ID is derived from the domain, never from
// list position, so user selections keyed by it survive recomputation.
type Item struct {
	ID       string
	Category Category
	Text     string
}

// Compare diffs initial against final. Values are compared only when both
// sides have one, except that a measure not tested initially and recorded at
// final produces a "not tested initially" statement. Items come back in
// default order.
func Compare(initial, final findings.ClinicalFindings, p textgen.Pronouns) []Item {
	c := newComparer(initial, final, p)
	var items []Item
	items = append(items, c.pain()...)
	items = append(items, c.ngrcs()...)
	items = append(items, c.symptoms()...)
	items = append(items, c.activities()...)
	items = append(items, c.otherLimitation()...)
	items = append(items, c.wbStatus()...)
	items = append(items, c.arom()...)
	items = append(items, c.musclePower()...)
	return DefaultOrder(items)
}

type comparer struct {
	i, f   findings.ClinicalFindings
	p      textgen.Pronouns
	side   findings.Side
	loc    findings.Location
	spec   findings.RegionSpec
	region string
	his    string
}

func newComparer(initial, final findings.ClinicalFindings, p textgen.Pronouns) *comparer {
	side, loc := final.Complaints.Side, final.Complaints.Location
	if loc == findings.LocationNone {
		loc = initial.Complaints.Location
	}
	if side == findings.SideNone {
		side = initial.Complaints.Side
	}
	return &comparer{
		i:      initial,
		f:      final,
		p:      p,
		side:   side,
		loc:    loc,
		spec:   findings.Spec(loc),
		region: textgen.RegionText(side, loc, textgen.FallbackReport),
		his:    p.LowerHis(),
	}
}

// sideHand names the complaint-side hand, e.g. "right hand".
func (c *comparer) sideHand() string {
	switch c.side {
	case findings.SideLeft, findings.SideRight:
		return string(c.side) + " hand"
	case findings.SideBilateral:
		return "hands"
	default:
		return "hand"
	}
}

func trim(s string) string { return strings.TrimSpace(s) }

func isBlank(s string) bool { return trim(s) == "" }

func lowerFirst(s string) string { return textgen.LowercaseFirstWord(trim(s)) }
