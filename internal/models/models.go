package models

// Stage is the categorical status of an outreach relationship.
// The set is closed: sheets get a Stage column constraint built from Stages().
type Stage string

const (
	StageSendNote        Stage = "Send Note"
	StageStart           Stage = "Start"
	StageAfterReply      Stage = "After Reply"
	StageReferralRequest Stage = "Referral Request"
	StageFollowUp        Stage = "Follow-up"
)

// Stages returns every stage in display order.
func Stages() []Stage {
	return []Stage{StageSendNote, StageStart, StageAfterReply, StageReferralRequest, StageFollowUp}
}

// StageValues returns the stage names as plain strings, for column constraints.
func StageValues() []string {
	stages := Stages()
	values := make([]string, len(stages))
	for i, s := range stages {
		values[i] = string(s)
	}
	return values
}

// ValidStage reports whether s names a known stage.
func ValidStage(s string) bool {
	for _, stage := range Stages() {
		if string(stage) == s {
			return true
		}
	}
	return false
}

// Prospect sheet layout. Role and Stage carry store-side value constraints.
var ProspectHeader = []string{"Prospect Name", "Profile Link", "Company", "Role", "Stage"}

const (
	ColProspectName = 0
	ColProfileLink  = 1
	ColCompany      = 2
	ColRole         = 3
	ColStage        = 4
)

// Prospect is one tracked contact in an identity's sheet.
// Name is the natural key, unique within the identity.
type Prospect struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profile_url"`
	Company    string `json:"company"`
	Role       string `json:"role"`
	Stage      Stage  `json:"stage"`
}

// Row maps the prospect onto the 5-column sheet layout.
func (p Prospect) Row() []string {
	return []string{p.Name, p.ProfileURL, p.Company, p.Role, string(p.Stage)}
}

// ProspectFromRow builds a prospect from a sheet row, tolerating short rows
// the way a partially filled spreadsheet row reads back.
func ProspectFromRow(row []string) Prospect {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return Prospect{
		Name:       cell(ColProspectName),
		ProfileURL: cell(ColProfileLink),
		Company:    cell(ColCompany),
		Role:       cell(ColRole),
		Stage:      Stage(cell(ColStage)),
	}
}

// Application log sheet layout: 10 fixed columns, no enum constraints.
var LogHeader = []string{
	"Date", "Company", "Role", "Job ID", "Recruiter Name",
	"Recruiter Email", "Subject", "Motivation", "JD Link", "Status",
}

// ApplicationEntry is one append-only row in the per-identity application log,
// written once per send attempt and never mutated.
type ApplicationEntry struct {
	Date              string `json:"date"`
	Company           string `json:"company"`
	Role              string `json:"role"`
	JobID             string `json:"job_id"`
	RecruiterName     string `json:"recruiter_name"`
	RecruiterEmail    string `json:"recruiter_email"`
	Subject           string `json:"subject"`
	Motivation        string `json:"motivation"`
	JobDescriptionRef string `json:"job_description_ref"`
	Status            string `json:"status"`
}

// StatusSent is the only status written today; the column stays free-form.
const StatusSent = "Sent"

// Row maps the entry onto the 10-column log layout.
func (e ApplicationEntry) Row() []string {
	return []string{
		e.Date, e.Company, e.Role, e.JobID, e.RecruiterName,
		e.RecruiterEmail, e.Subject, e.Motivation, e.JobDescriptionRef, e.Status,
	}
}
