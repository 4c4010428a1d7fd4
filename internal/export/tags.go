package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/suyashkumar/dicom/pkg/tag"
)

// HeaderTag is a DICOM attribute the caller may set on an exported report.
type HeaderTag struct {
	Name string
	Tag  tag.Tag
}

// headerTags maps lowercase names to the attributes open to overrides.
// Patient identity comes from the report; UIDs and pixel attributes are
// never overridable.
var headerTags = map[string]HeaderTag{
	"patientbirthdate":            {Name: "PatientBirthDate", Tag: tag.PatientBirthDate},
	"studydescription":            {Name: "StudyDescription", Tag: tag.StudyDescription},
	"seriesdescription":           {Name: "SeriesDescription", Tag: tag.SeriesDescription},
	"institutionname":             {Name: "InstitutionName", Tag: tag.InstitutionName},
	"institutionaldepartmentname": {Name: "InstitutionalDepartmentName", Tag: tag.InstitutionalDepartmentName},
	"referringphysicianname":      {Name: "ReferringPhysicianName", Tag: tag.ReferringPhysicianName},
	"performingphysicianname":     {Name: "PerformingPhysicianName", Tag: tag.PerformingPhysicianName},
	"operatorsname":               {Name: "OperatorsName", Tag: tag.OperatorsName},
	"accessionnumber":             {Name: "AccessionNumber", Tag: tag.AccessionNumber},
	"stationname":                 {Name: "StationName", Tag: tag.StationName},
	"bodypartexamined":            {Name: "BodyPartExamined", Tag: tag.BodyPartExamined},
	"manufacturer":                {Name: "Manufacturer", Tag: tag.Manufacturer},
	"manufacturermodelname":       {Name: "ManufacturerModelName", Tag: tag.ManufacturerModelName},
}

// HeaderTagNames returns the overridable attribute names, sorted.
func HeaderTagNames() []string {
	names := make([]string, 0, len(headerTags))
	for _, t := range headerTags {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// LookupHeaderTag finds an overridable attribute by name, ignoring case.
// Unknown names get the closest known name as a suggestion.
func LookupHeaderTag(name string) (HeaderTag, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if t, ok := headerTags[normalized]; ok {
		return t, nil
	}
	if suggestion := closestTagName(normalized); suggestion != "" {
		return HeaderTag{}, fmt.Errorf("unknown tag %q, did you mean %q?", name, suggestion)
	}
	return HeaderTag{}, fmt.Errorf("unknown tag %q", name)
}

// ParseTagOverrides parses "Name=Value" pairs. Later pairs win.
func ParseTagOverrides(pairs []string) (map[tag.Tag]string, error) {
	out := make(map[tag.Tag]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid tag override %q, expected Name=Value", p)
		}
		t, err := LookupHeaderTag(name)
		if err != nil {
			return nil, err
		}
		out[t.Tag] = strings.TrimSpace(value)
	}
	return out, nil
}

// closestTagName returns the known name within edit distance 5, or "".
func closestTagName(input string) string {
	const maxDistance = 5
	best, match := maxDistance+1, ""
	for _, key := range sortedKeys() {
		if d := levenshtein(input, key); d < best {
			best, match = d, headerTags[key].Name
		}
	}
	return match
}

func sortedKeys() []string {
	keys := make([]string, 0, len(headerTags))
	for k := range headerTags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
