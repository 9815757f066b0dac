// Content-strategy dispatch for application emails: a closed lookup table
// keyed by (identity, role) feeds a master email frame and a master
// cover-letter template. Content is selected verbatim, never generated.

package compose

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-outreach-automation/internal/registry"
)

var ErrUnknownRole = errors.New("no content bundle for role")

// Bundle is the fixed content for one (identity, role) pair.
type Bundle struct {
	Pitch      string // role-specific HTML paragraphs inside the email frame
	Bullets    [3]string
	Highlights string
	CTA        string // call to action; may reference {Company}
}

// Params are the per-application inputs. Only CTA and narrative fields vary
// with them; bullets and highlights are fixed per (identity, role).
type Params struct {
	Recruiter  string
	Company    string
	RoleName   string // official role name as per the job posting
	Motivation string // "why this company"
	Today      time.Time // zero value means time.Now()
}

// Draft is the composed output, ready for the renderer collaborators.
type Draft struct {
	EmailBody  string
	Letter     string
	Bullets    [3]string
	Highlights string
	CTA        string
}

const defaultMotivation = "I admire your commitment to innovation and data-driven decision-making."

// Compose resolves the (identity, role) bundle and renders the email body
// and cover-letter text. An unknown role for a known identity is a
// configuration error; there is no silent default.
func Compose(id *registry.Identity, role string, p Params) (*Draft, error) {
	roleBundles, ok := bundles[id.Username]
	if !ok {
		return nil, fmt.Errorf("%w: identity %q has no content bundles", ErrUnknownRole, id.Username)
	}
	b, ok := roleBundles[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q for identity %q", ErrUnknownRole, role, id.Username)
	}

	today := p.Today
	if today.IsZero() {
		today = time.Now()
	}
	hiringManager := strings.TrimSpace(p.Recruiter)
	if hiringManager == "" {
		hiringManager = "Hiring Manager"
	}
	motivation := strings.TrimSpace(p.Motivation)
	if motivation == "" {
		motivation = defaultMotivation
	}

	cta := strings.ReplaceAll(b.CTA, "{Company}", p.Company)

	pitch := strings.NewReplacer(
		"{Company}", p.Company,
		"{RoleName}", p.RoleName,
	).Replace(b.Pitch)

	emailBody := strings.NewReplacer(
		"{Recruiter}", hiringManager,
		"{RoleName}", p.RoleName,
		"{Company}", p.Company,
		"{Pitch}", pitch,
		"{SenderName}", id.FullName,
		"{SenderPhone}", id.Phone,
		"{SenderSignOff}", signOffLinks(id),
	).Replace(emailFrame)

	letter := strings.NewReplacer(
		"{today}", today.Format("January 2, 2006"),
		"{hiring_manager}", hiringManager,
		"{role}", p.RoleName,
		"{company}", p.Company,
		"{highlights}", b.Highlights,
		"{why_company}", motivation,
		"{bullet1}", b.Bullets[0],
		"{bullet2}", b.Bullets[1],
		"{bullet3}", b.Bullets[2],
		"{cta}", cta,
		"{signature}", letterSignature(id),
	).Replace(letterTemplate)

	return &Draft{
		EmailBody:  emailBody,
		Letter:     letter,
		Bullets:    b.Bullets,
		Highlights: b.Highlights,
		CTA:        cta,
	}, nil
}

// Subject applies the subject-line policy: custom wins, then the job-id
// variant, then the plain variant.
func Subject(roleName, jobID, custom string) string {
	if custom != "" {
		return custom
	}
	if jobID == "" {
		return fmt.Sprintf("%s Role Application – Resume & Cover Letter", roleName)
	}
	return fmt.Sprintf("%s Application [%s] – Resume & Cover Letter", roleName, jobID)
}

func signOffLinks(id *registry.Identity) string {
	if id.LinkURL == "" {
		return ""
	}
	return fmt.Sprintf("<br>\n<a href=\"%s\">%s</a>", id.LinkURL, id.LinkLabel)
}

func letterSignature(id *registry.Identity) string {
	sig := fmt.Sprintf("<b>Best regards,</b>\n<b>%s</b>\n%s | ✉ %s", id.FullName, id.Phone, id.Email)
	if id.LinkURL != "" {
		sig += fmt.Sprintf("\n<a href=\"%s\">%s</a>", id.LinkURL, id.LinkLabel)
	}
	return sig
}

// emailFrame is shared by every application email; the role-specific pitch
// and the identity signature slot into it.
const emailFrame = `<p>Hi {Recruiter},</p>

<p>I’d like to express my interest in the <b>{RoleName}</b> role at <b>{Company}</b>.
I came across your contact information on LinkedIn and wanted to reach out directly.
Thank you for taking the time to consider my application.</p>

{Pitch}

<p><b>Best regards,</b><br>
<b>{SenderName}</b><br>
Ph: <a href="tel:{SenderPhone}">{SenderPhone}</a>{SenderSignOff}</p>`

// letterTemplate is the master cover-letter template. Placeholders match the
// application form fields plus the per-role bundle.
const letterTemplate = `{today}
Hiring Manager
{company}

Dear {hiring_manager},

I’m enthusiastic about applying for the <b>{role}</b> role at <b>{company}</b>, where I see a strong alignment between my skills and the team’s culture.

I specialize in {highlights}, and I’ve used these skills to deliver measurable impact.

Why {company}?

{why_company}

My experience has equipped me with skills directly relevant to this role:

• <b>{bullet1}</b>

• <b>{bullet2}</b>

• <b>{bullet3}</b>

{cta}

{signature}`
