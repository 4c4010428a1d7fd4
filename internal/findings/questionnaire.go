package findings

import "strings"

// Questionnaire names with a known scoring template.
const (
	QuickDASH = "QuickDASH"
	LEFS      = "LEFS"
	RMDQ      = "RMDQ"
	NPQ       = "NPQ"
)

// QuestionnaireInfo describes how a questionnaire score is reported.
type QuestionnaireInfo struct {
	Name     string
	FullName string
	// MaxScore is appended after "out of" in the scoring sentence.
	MaxScore string
}

var questionnaires = []QuestionnaireInfo{
	{Name: QuickDASH, FullName: "Quick Disabilities of the Arm, Shoulder, and Hand questionnaire", MaxScore: "100"},
	{Name: LEFS, FullName: "Lower Extremity Functional Scale", MaxScore: "80"},
	{Name: RMDQ, FullName: "Roland-Morris Disability Questionnaire", MaxScore: "24"},
	{Name: NPQ, FullName: "Northwick Park Neck Pain Questionnaire", MaxScore: "100%"},
}

// AllQuestionnaires returns the questionnaires with a known template.
func AllQuestionnaires() []QuestionnaireInfo {
	out := make([]QuestionnaireInfo, len(questionnaires))
	copy(out, questionnaires)
	return out
}

// LookupQuestionnaire finds a known questionnaire by name, ignoring case.
func LookupQuestionnaire(name string) (QuestionnaireInfo, bool) {
	name = strings.TrimSpace(name)
	for _, q := range questionnaires {
		if strings.EqualFold(q.Name, name) {
			return q, true
		}
	}
	return QuestionnaireInfo{}, false
}
