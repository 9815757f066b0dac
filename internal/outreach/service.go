// Orchestration layer: ties the store, composer, PDF renderer, mailer, and
// Telegram reporter together behind the operations the HTTP API exposes.

package outreach

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"go-outreach-automation/internal/applog"
	"go-outreach-automation/internal/compose"
	"go-outreach-automation/internal/config"
	"go-outreach-automation/internal/mailer"
	"go-outreach-automation/internal/message"
	"go-outreach-automation/internal/models"
	"go-outreach-automation/internal/pdf"
	"go-outreach-automation/internal/prospects"
	"go-outreach-automation/internal/provision"
	"go-outreach-automation/internal/registry"
	"go-outreach-automation/internal/store"
)

var (
	ErrProspectNotFound = errors.New("prospect not found")
	ErrMissingInput     = errors.New("missing required application field")
	ErrNoRecipients     = errors.New("at least one recipient is required")
)

// MailSender delivers one email. Satisfied by mailer.Mailer.
type MailSender interface {
	Send(ctx context.Context, from, to, subject, htmlBody string, attachments []mailer.Attachment) error
}

// PDFGenerator renders a cover letter. Satisfied by pdf.Generator.
type PDFGenerator interface {
	Generate(letter *pdf.Letter) ([]byte, error)
}

// Reporter posts best-effort notifications. Satisfied by reporter.TelegramReporter.
type Reporter interface {
	SendApplication(sender string, entry models.ApplicationEntry) error
	SendError(err error) error
}

// Service wires the collaborators. Mail, PDF, and Reporter may be nil when
// the corresponding feature is not configured; operations that need a nil
// collaborator fail, except the reporter which degrades silently.
type Service struct {
	Store    store.Store
	Mail     MailSender
	PDF      PDFGenerator
	Reporter Reporter
	Cfg      *config.Config
}

// AddProspect provisions the identity's sheet on demand and appends the
// validated record.
func (s *Service) AddProspect(ctx context.Context, username string, p models.Prospect) error {
	id, err := registry.Get(username)
	if err != nil {
		return err
	}
	if _, err := provision.EnsureProspectSheet(ctx, s.Store, id); err != nil {
		return err
	}
	return prospects.Append(ctx, s.Store, id, p)
}

// ListProspects returns the identity's records narrowed by the query.
func (s *Service) ListProspects(ctx context.Context, username string, q prospects.Query) ([]models.Prospect, error) {
	id, err := registry.Get(username)
	if err != nil {
		return nil, err
	}
	if _, err := provision.EnsureProspectSheet(ctx, s.Store, id); err != nil {
		return nil, err
	}
	records, err := prospects.List(ctx, s.Store, id.Username)
	if err != nil {
		return nil, err
	}
	return prospects.Filter(records, q), nil
}

// MessageDraft is a rendered outreach message for one prospect.
type MessageDraft struct {
	Prospect   models.Prospect `json:"prospect"`
	Stage      models.Stage    `json:"stage"`
	Text       string          `json:"text"`
	Unresolved []string        `json:"unresolved,omitempty"`
}

// DraftMessage renders the stage-appropriate message for the named prospect.
// An empty stage uses the stage recorded on the prospect.
func (s *Service) DraftMessage(ctx context.Context, username, prospectName, stage string) (*MessageDraft, error) {
	id, err := registry.Get(username)
	if err != nil {
		return nil, err
	}
	records, err := prospects.List(ctx, s.Store, id.Username)
	if err != nil {
		return nil, err
	}
	record, ok := prospects.SelectByName(records, prospectName)
	if !ok {
		return nil, fmt.Errorf("%w: %q for %q", ErrProspectNotFound, prospectName, username)
	}

	effective := record.Stage
	if stage != "" {
		if !models.ValidStage(stage) {
			return nil, fmt.Errorf("%w: %q", prospects.ErrInvalidStage, stage)
		}
		effective = models.Stage(stage)
	}

	text := message.Render(message.Resolve(id, effective), message.Fields{
		Name:    record.Name,
		Company: record.Company,
		Role:    record.Role,
		Sender:  id.FullName,
	})

	return &MessageDraft{
		Prospect:   record,
		Stage:      effective,
		Text:       text,
		Unresolved: message.Unresolved(text),
	}, nil
}

// Recipient is one recruiter an application email goes to.
type Recipient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Submission is one job application: company, role, and any number of
// recruiters who each get their own personalized email and letter.
type Submission struct {
	Company    string      `json:"company"`
	Role       string      `json:"role"`       // one of the identity's allowed roles
	RoleTitle  string      `json:"role_title"` // official posting title; defaults to Role
	JobID      string      `json:"job_id"`
	Motivation string      `json:"motivation"`
	JDLink     string      `json:"jd_link"`
	Subject    string      `json:"subject"` // custom subject, optional
	Recipients []Recipient `json:"recipients"`
}

// SendFailure records one recipient the submission could not deliver to.
type SendFailure struct {
	Recipient Recipient `json:"recipient"`
	Reason    string    `json:"reason"`
}

// SubmitResult reports per-recipient outcomes of a submission.
type SubmitResult struct {
	Sent   []models.ApplicationEntry `json:"sent"`
	Failed []SendFailure             `json:"failed,omitempty"`
}

// SubmitApplication composes, renders, mails, and logs one application per
// recipient. Delivery is per-recipient: one failed send does not abort the
// rest. A send that succeeds but fails to log is reported as sent, with a
// warning; the log is a record, not a gate.
func (s *Service) SubmitApplication(ctx context.Context, username string, sub Submission) (*SubmitResult, error) {
	id, err := registry.Get(username)
	if err != nil {
		return nil, err
	}
	if sub.Company == "" || sub.Role == "" {
		return nil, fmt.Errorf("%w: company and role", ErrMissingInput)
	}
	if len(sub.Recipients) == 0 {
		return nil, ErrNoRecipients
	}
	for _, r := range sub.Recipients {
		if strings.TrimSpace(r.Email) == "" {
			return nil, fmt.Errorf("%w: recipient email", ErrMissingInput)
		}
	}
	if s.Mail == nil || s.PDF == nil {
		return nil, errors.New("mail delivery is not configured")
	}

	roleTitle := sub.RoleTitle
	if roleTitle == "" {
		roleTitle = sub.Role
	}
	subject := compose.Subject(roleTitle, sub.JobID, sub.Subject)
	now := time.Now()

	result := &SubmitResult{}
	for _, rcpt := range sub.Recipients {
		entry, err := s.sendOne(ctx, id, sub, rcpt, roleTitle, subject, now)
		if err != nil {
			log.Printf("⚠️ send to %s failed: %v", rcpt.Email, err)
			result.Failed = append(result.Failed, SendFailure{Recipient: rcpt, Reason: err.Error()})
			if s.Reporter != nil {
				if rerr := s.Reporter.SendError(err); rerr != nil {
					log.Printf("⚠️ telegram error report failed: %v", rerr)
				}
			}
			continue
		}

		if err := applog.Append(ctx, s.Store, id.Username, entry); err != nil {
			log.Printf("⚠️ sent to %s but failed to log: %v", rcpt.Email, err)
		}
		if s.Reporter != nil {
			if rerr := s.Reporter.SendApplication(id.FullName, entry); rerr != nil {
				log.Printf("⚠️ telegram confirmation failed: %v", rerr)
			}
		}
		result.Sent = append(result.Sent, entry)
	}

	if len(result.Sent) == 0 {
		return result, fmt.Errorf("all %d sends failed", len(result.Failed))
	}
	return result, nil
}

func (s *Service) sendOne(ctx context.Context, id *registry.Identity, sub Submission, rcpt Recipient, roleTitle, subject string, now time.Time) (models.ApplicationEntry, error) {
	draft, err := compose.Compose(id, sub.Role, compose.Params{
		Recruiter:  rcpt.Name,
		Company:    sub.Company,
		RoleName:   roleTitle,
		Motivation: sub.Motivation,
		Today:      now,
	})
	if err != nil {
		return models.ApplicationEntry{}, err
	}

	letterPDF, err := s.PDF.Generate(&pdf.Letter{
		Name:     id.FullName,
		Headline: id.Headline,
		Blocks:   pdf.Blocks(draft.Letter),
	})
	if err != nil {
		return models.ApplicationEntry{}, fmt.Errorf("failed to render cover letter: %w", err)
	}

	letterPath := filepath.Join(s.Cfg.OutputDir, letterFileName(id.Username, sub.Company, now))
	if err := pdf.SaveToFile(letterPDF, letterPath); err != nil {
		return models.ApplicationEntry{}, err
	}

	attachments := []mailer.Attachment{{Path: letterPath}}
	if id.ResumeFile != "" {
		attachments = append(attachments, mailer.Attachment{
			Path: filepath.Join(s.Cfg.ResumeDir, id.ResumeFile),
		})
	}

	if err := s.Mail.Send(ctx, id.Email, rcpt.Email, subject, draft.EmailBody, attachments); err != nil {
		return models.ApplicationEntry{}, err
	}
	log.Printf("📧 application sent: %s -> %s (%s @ %s)", id.Email, rcpt.Email, roleTitle, sub.Company)

	return models.ApplicationEntry{
		Date:              now.Format("2006-01-02"),
		Company:           sub.Company,
		Role:              roleTitle,
		JobID:             sub.JobID,
		RecruiterName:     rcpt.Name,
		RecruiterEmail:    rcpt.Email,
		Subject:           subject,
		Motivation:        sub.Motivation,
		JobDescriptionRef: sub.JDLink,
		Status:            models.StatusSent,
	}, nil
}

func letterFileName(username, company string, now time.Time) string {
	slug := strings.ToLower(strings.Join(strings.Fields(company), "-"))
	return fmt.Sprintf("%s-cover-letter-%s-%s.pdf", username, slug, now.Format("20060102-150405"))
}
