// Package textgen provides the small text-building primitives shared by the
// narrative generators, the comparison engine and the report assembler.
package textgen

import "strings"

// Pronouns holds the forms used to refer to the patient.
type Pronouns struct {
	He    string
	His   string
	Him   string
	Title string
}

// PronounsFor returns the pronoun set for a patient sex. Anything other than
// "Male" or "Female" gets the combined forms.
func PronounsFor(sex string) Pronouns {
	switch sex {
	case "Male":
		return Pronouns{He: "He", His: "His", Him: "him", Title: "Mr."}
	case "Female":
		return Pronouns{He: "She", His: "Her", Him: "her", Title: "Ms."}
	default:
		return Pronouns{He: "He/She", His: "His/Her", Him: "him/her", Title: "Mr./Ms."}
	}
}

// LowerHe returns the subject pronoun for use mid-sentence.
func (p Pronouns) LowerHe() string { return strings.ToLower(p.He) }

// LowerHis returns the possessive pronoun for use mid-sentence.
func (p Pronouns) LowerHis() string { return strings.ToLower(p.His) }
