package textgen

import (
	"strconv"
	"strings"
)

// Change classifies a final value against an initial one.
type Change int

const (
	NoChange Change = iota
	Reduction
	Increase
)

// Phrase returns the sentence fragment for the change, e.g. "reduction of".
func (c Change) Phrase() string {
	switch c {
	case Reduction:
		return "reduction of"
	case Increase:
		return "increase of"
	default:
		return "no change of"
	}
}

// CompareRaw compares two values with plain string ordering. "9" sorts after
// "10" under this rule. Pain intensity is compared this way.
func CompareRaw(initial, final string) Change {
	switch {
	case final < initial:
		return Reduction
	case final > initial:
		return Increase
	default:
		return NoChange
	}
}

// CompareMeasure compares two measurements numerically when both parse
// (plain numbers, "20%", "3/4", "90 degrees") and falls back to CompareRaw
// otherwise.
func CompareMeasure(initial, final string) Change {
	a, okA := ParseMeasure(initial)
	b, okB := ParseMeasure(final)
	if !okA || !okB {
		return CompareRaw(strings.TrimSpace(initial), strings.TrimSpace(final))
	}
	switch {
	case b < a:
		return Reduction
	case b > a:
		return Increase
	default:
		return NoChange
	}
}

var measureSuffixes = []string{"degrees", "degree", "kgf", "°", "%"}

// ParseMeasure extracts a number from a measurement string.
func ParseMeasure(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	for _, suf := range measureSuffixes {
		s = strings.TrimSpace(strings.TrimSuffix(s, suf))
	}
	if s == "" {
		return 0, false
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, err2 := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
