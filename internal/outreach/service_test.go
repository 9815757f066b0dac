package outreach

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-outreach-automation/internal/applog"
	"go-outreach-automation/internal/config"
	"go-outreach-automation/internal/mailer"
	"go-outreach-automation/internal/models"
	"go-outreach-automation/internal/pdf"
	"go-outreach-automation/internal/prospects"
	"go-outreach-automation/internal/registry"
	"go-outreach-automation/internal/store"
)

type sentMail struct {
	from, to, subject, body string
	attachments             []mailer.Attachment
}

type fakeMail struct {
	sent    []sentMail
	failFor map[string]error // recipient -> error
}

func (f *fakeMail) Send(ctx context.Context, from, to, subject, htmlBody string, attachments []mailer.Attachment) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, sentMail{from: from, to: to, subject: subject, body: htmlBody, attachments: attachments})
	return nil
}

type fakePDF struct {
	letters []*pdf.Letter
}

func (f *fakePDF) Generate(letter *pdf.Letter) ([]byte, error) {
	f.letters = append(f.letters, letter)
	return []byte("%PDF-fake"), nil
}

type fakeReporter struct {
	applications int
	errs         int
}

func (f *fakeReporter) SendApplication(sender string, entry models.ApplicationEntry) error {
	f.applications++
	return nil
}

func (f *fakeReporter) SendError(err error) error {
	f.errs++
	return nil
}

func newService(t *testing.T) (*Service, *fakeMail, *fakePDF, *fakeReporter) {
	t.Helper()
	mail := &fakeMail{failFor: map[string]error{}}
	gen := &fakePDF{}
	rep := &fakeReporter{}
	svc := &Service{
		Store:    store.NewMemory(),
		Mail:     mail,
		PDF:      gen,
		Reporter: rep,
		Cfg: &config.Config{
			ResumeDir: t.TempDir(),
			OutputDir: t.TempDir(),
		},
	}
	return svc, mail, gen, rep
}

func TestAddAndListProspects(t *testing.T) {
	svc, _, _, _ := newService(t)
	ctx := context.Background()

	p := models.Prospect{
		Name:       "Asha Rao",
		ProfileURL: "https://linkedin.com/in/asha",
		Company:    "Orbit",
		Role:       "Frontend Developer",
		Stage:      models.StageStart,
	}
	require.NoError(t, svc.AddProspect(ctx, "sai", p))

	all, err := svc.ListProspects(ctx, "sai", prospects.Query{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	none, err := svc.ListProspects(ctx, "sai", prospects.Query{Company: "Lumen"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAddProspectUnknownIdentity(t *testing.T) {
	svc, _, _, _ := newService(t)
	err := svc.AddProspect(context.Background(), "ghost", models.Prospect{})
	assert.ErrorIs(t, err, registry.ErrUnknownIdentity)
}

func TestDraftMessage(t *testing.T) {
	svc, _, _, _ := newService(t)
	ctx := context.Background()

	p := models.Prospect{
		Name:       "Asha Rao",
		ProfileURL: "https://linkedin.com/in/asha",
		Company:    "Orbit",
		Role:       "Frontend Developer",
		Stage:      models.StageStart,
	}
	require.NoError(t, svc.AddProspect(ctx, "sai", p))

	draft, err := svc.DraftMessage(ctx, "sai", "asha rao", "")
	require.NoError(t, err)
	assert.Equal(t, models.StageStart, draft.Stage)
	assert.Contains(t, draft.Text, "Asha Rao")
	assert.Contains(t, draft.Text, "Orbit")
	assert.Empty(t, draft.Unresolved)

	//stage override without touching the stored record
	followUp, err := svc.DraftMessage(ctx, "sai", "Asha Rao", "Follow-up")
	require.NoError(t, err)
	assert.Equal(t, models.StageFollowUp, followUp.Stage)
	assert.NotEqual(t, draft.Text, followUp.Text)

	_, err = svc.DraftMessage(ctx, "sai", "Asha Rao", "Hired")
	assert.ErrorIs(t, err, prospects.ErrInvalidStage)

	_, err = svc.DraftMessage(ctx, "sai", "nobody", "")
	assert.ErrorIs(t, err, ErrProspectNotFound)
}

func submission() Submission {
	return Submission{
		Company:    "Orbit",
		Role:       "Data Engineer",
		JobID:      "J-42",
		Motivation: "Strong data culture.",
		JDLink:     "https://orbit.example/jobs/42",
		Recipients: []Recipient{{Name: "Priya", Email: "priya@orbit.example"}},
	}
}

func TestSubmitApplication(t *testing.T) {
	svc, mail, gen, rep := newService(t)
	ctx := context.Background()

	result, err := svc.SubmitApplication(ctx, "vishnu", submission())
	require.NoError(t, err)
	require.Len(t, result.Sent, 1)
	assert.Empty(t, result.Failed)

	entry := result.Sent[0]
	assert.Equal(t, "Orbit", entry.Company)
	assert.Equal(t, models.StatusSent, entry.Status)
	assert.Equal(t, "Data Engineer Application [J-42] – Resume & Cover Letter", entry.Subject)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "priya@orbit.example", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].body, "Hi Priya,")
	//cover letter plus resume
	assert.Len(t, mail.sent[0].attachments, 2)

	require.Len(t, gen.letters, 1)
	assert.Equal(t, "Vishnuvardhan Chowhan", gen.letters[0].Name)

	assert.Equal(t, 1, rep.applications)

	//every send is one log row
	logged, err := applog.List(ctx, svc.Store, "vishnu")
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Equal(t, entry, logged[0])
}

func TestSubmitApplicationMultipleRecipients(t *testing.T) {
	svc, mail, _, _ := newService(t)
	ctx := context.Background()

	sub := submission()
	sub.Recipients = append(sub.Recipients, Recipient{Name: "Dev", Email: "dev@orbit.example"})

	result, err := svc.SubmitApplication(ctx, "vishnu", sub)
	require.NoError(t, err)
	assert.Len(t, result.Sent, 2)
	assert.Len(t, mail.sent, 2)

	logged, err := applog.List(ctx, svc.Store, "vishnu")
	require.NoError(t, err)
	assert.Len(t, logged, 2)
}

func TestSubmitApplicationPartialFailure(t *testing.T) {
	svc, mail, _, rep := newService(t)
	ctx := context.Background()

	mail.failFor["dead@orbit.example"] = errors.New("mailbox unavailable")

	sub := submission()
	sub.Recipients = append(sub.Recipients, Recipient{Name: "Dead", Email: "dead@orbit.example"})

	result, err := svc.SubmitApplication(ctx, "vishnu", sub)
	require.NoError(t, err)
	assert.Len(t, result.Sent, 1)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "dead@orbit.example", result.Failed[0].Recipient.Email)
	assert.Equal(t, 1, rep.errs)

	//only the delivered send got logged
	logged, err := applog.List(ctx, svc.Store, "vishnu")
	require.NoError(t, err)
	assert.Len(t, logged, 1)
}

func TestSubmitApplicationAllFail(t *testing.T) {
	svc, mail, _, _ := newService(t)
	mail.failFor["priya@orbit.example"] = errors.New("mailbox unavailable")

	result, err := svc.SubmitApplication(context.Background(), "vishnu", submission())
	require.Error(t, err)
	assert.Empty(t, result.Sent)
	assert.Len(t, result.Failed, 1)
}

func TestSubmitApplicationValidation(t *testing.T) {
	svc, _, _, _ := newService(t)
	ctx := context.Background()

	noCompany := submission()
	noCompany.Company = ""
	_, err := svc.SubmitApplication(ctx, "vishnu", noCompany)
	assert.ErrorIs(t, err, ErrMissingInput)

	noRecipients := submission()
	noRecipients.Recipients = nil
	_, err = svc.SubmitApplication(ctx, "vishnu", noRecipients)
	assert.ErrorIs(t, err, ErrNoRecipients)

	blankEmail := submission()
	blankEmail.Recipients = []Recipient{{Name: "x"}}
	_, err = svc.SubmitApplication(ctx, "vishnu", blankEmail)
	assert.ErrorIs(t, err, ErrMissingInput)

	badRole := submission()
	badRole.Role = "Astronaut"
	result, err := svc.SubmitApplication(ctx, "vishnu", badRole)
	require.Error(t, err)
	assert.Empty(t, result.Sent)
}
