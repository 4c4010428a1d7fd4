package help

// HelpText describes one wizard field.
type HelpText struct {
	Title       string
	Description string
	Details     string
}

const dateFormat = "Format: YYYY-MM-DD. Printed as \"5 Mar 2024\"."

// Texts holds the help of every wizard field, keyed by form field key.
var Texts = map[string]HelpText{
	"report_date": {
		Title:       "REPORT DATE",
		Description: "Date printed in the letter header.",
		Details:     dateFormat,
	},
	"reference": {
		Title:       "OUR REFERENCE",
		Description: "The department's reference for this report.",
	},
	"to": {
		Title:       "TO",
		Description: "Recipient of the report, e.g. the referring clinic.",
	},
	"from": {
		Title:       "FROM",
		Description: "Sending department.",
	},
	"patient_name": {
		Title:       "PATIENT NAME",
		Description: "Name as printed in the report.",
		Details:     "Required. Also used as the DICOM patient name on export.",
	},
	"sex": {
		Title:       "SEX",
		Description: "Chooses the pronouns used in the narrative.",
		Details: `Male: Mr. / He / His
Female: Ms. / She / Her
Unspecified: Mr./Ms. / He/She / His/Her`,
	},
	"age": {
		Title:       "AGE",
		Description: "Patient age in years.",
	},
	"id_number": {
		Title:       "ID NUMBER",
		Description: "Identity document number.",
	},
	"hospital_number": {
		Title:       "HOSPITAL NUMBER",
		Description: "The hospital's own patient number.",
		Details:     "Preferred over the ID number as the DICOM patient ID.",
	},
	"diagnosis": {
		Title:       "DIAGNOSIS",
		Description: "Printed as its own report section.",
	},
	"side": {
		Title:       "SIDE",
		Description: "Side of the affected region, applied to all assessments.",
		Details:     "Bilateral produces \"both\" wording and two-sided tables.",
	},
	"location": {
		Title:       "LOCATION",
		Description: "Body region, applied to all assessments.",
		Details: `Changing it reseeds movements, digits and myotome levels.
Graded muscle power rows are kept.`,
	},
	"first_attendance": {
		Title:       "FIRST ATTENDANCE",
		Description: "Date of the first treatment session.",
		Details:     dateFormat,
	},
	"last_attendance": {
		Title:       "LAST ATTENDANCE",
		Description: "Date of the last treatment session.",
		Details:     dateFormat,
	},
	"sessions_attended": {
		Title:       "SESSIONS ATTENDED",
		Description: "Number of sessions the patient attended.",
	},
	"therapist_name": {
		Title:       "THERAPIST",
		Description: "Name printed in the declaration.",
	},
	"therapist_position": {
		Title:       "POSITION",
		Description: "Therapist's position, e.g. Physiotherapist I.",
	},
	"consent_date": {
		Title:       "CONSENT DATE",
		Description: "Date the patient consented to the release of the report.",
		Details:     dateFormat,
	},
	"date": {
		Title:       "ASSESSMENT DATE",
		Description: "Printed in the assessment heading.",
		Details:     dateFormat + " Interim and final dates should not precede the initial one.",
	},
	"pain_intensity": {
		Title:       "PAIN INTENSITY",
		Description: "Numeric pain rating scale, 0 to 10.",
		Details:     "Compared between initial and final assessments as charted by NPRS.",
	},
	"overall_improvement": {
		Title:       "OVERALL IMPROVEMENT",
		Description: "Numeric global rating of change scale, 0 to 10.",
		Details:     "Only reported from the final assessment.",
	},
	"other_limitation": {
		Title:       "OTHER FUNCTIONAL LIMITATION",
		Description: "Free text, e.g. \"difficulty climbing stairs\".",
	},
	"wb_status": {
		Title:       "WEIGHT BEARING STATUS",
		Description: "E.g. full weight bearing, partial weight bearing.",
	},
	"walking_aid": {
		Title:       "WALKING AID",
		Description: "E.g. stick, frame. Leave blank or \"unaided\" when none.",
	},
	"arom_not_tested": {
		Title:       "AROM NOT TESTED",
		Description: "Replaces the range of motion table with a not-tested sentence.",
	},
	"power_not_tested": {
		Title:       "MUSCLE POWER NOT TESTED",
		Description: "Replaces the muscle power tables with a not-tested sentence.",
	},
	"discharge_type": {
		Title:       "DISCHARGE TYPE",
		Description: "How the episode ended, or that it is still ongoing.",
		Details: `Completed / static: discharge summary, needs discharge date
Defaulted: needs discharge date
Cancelled: needs cancellation date and reason
Ongoing: progress summary, needs next appointment date`,
	},
	"discharge_date": {
		Title:       "DISCHARGE DATE",
		Description: "Date the patient was discharged.",
		Details:     dateFormat,
	},
	"cancellation_date": {
		Title:       "CANCELLATION DATE",
		Description: "Date the treatment was cancelled.",
		Details:     dateFormat,
	},
	"appointment_date": {
		Title:       "NEXT APPOINTMENT",
		Description: "Date of the next appointment for ongoing treatment.",
		Details:     dateFormat,
	},
	"cancellation_reason": {
		Title:       "CANCELLATION REASON",
		Description: "Printed after \"due to\" in the summary sentence.",
	},
	"other_relevant_changes": {
		Title:       "OTHER RELEVANT CHANGES",
		Description: "Free text added as its own numbered summary line.",
	},
	"selected_items": {
		Title:       "SUMMARY ITEMS",
		Description: "Changes between initial and final assessments to include.",
		Details:     "Items are listed in their default order. Edit item_order in the YAML file to reorder.",
	},
	"action": {
		Title:       "ACTION",
		Description: "Preview, copy or save the report.",
		Details:     "Copy puts the plain text rendering on the system clipboard.",
	},
	"save_path": {
		Title:       "SAVE PATH",
		Description: "Where the report YAML is written.",
		Details:     "Parent directories are created. The file can be passed back with --from.",
	},
}
