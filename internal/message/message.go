// Stage-template resolution and rendering for LinkedIn outreach messages.

package message

import (
	"regexp"
	"strings"

	"go-outreach-automation/internal/models"
	"go-outreach-automation/internal/registry"
)

// Fields are the values substituted into a resolved template.
type Fields struct {
	Name    string
	Company string
	Role    string
	Sender  string
}

// Resolve maps (identity, stage) to a template. A stage without an
// identity-specific template falls back to the identity's greeting, and an
// identity without a greeting falls back to the generic one; resolution
// never fails.
func Resolve(id *registry.Identity, stage models.Stage) string {
	switch stage {
	case models.StageSendNote:
		if t, ok := sendNoteTemplates[id.Username]; ok {
			return t
		}
	case models.StageAfterReply, models.StageReferralRequest, models.StageFollowUp:
		if t, ok := sharedTemplates[stage]; ok {
			return t
		}
	}
	if t, ok := startTemplates[id.Username]; ok {
		return t
	}
	return defaultStart
}

// Render substitutes the named placeholders into the template. It is pure
// and total: same inputs always yield the same string, and field contents
// pass through unvalidated.
func Render(tmpl string, f Fields) string {
	r := strings.NewReplacer(
		"{Name}", f.Name,
		"{Company}", f.Company,
		"{Role}", f.Role,
		"{Sender}", f.Sender,
	)
	return r.Replace(tmpl)
}

var placeholderRe = regexp.MustCompile(`\{[A-Za-z]+\}`)

// Unresolved reports any placeholder tokens left in rendered text.
func Unresolved(text string) []string {
	return placeholderRe.FindAllString(text, -1)
}
