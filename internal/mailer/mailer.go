// SMTP delivery through per-sender app passwords. Each identity sends from
// its own mailbox, so the credential is looked up by the From address.

package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Attachment is a file already written to disk, attached by path.
type Attachment struct {
	Path string
}

// Mailer sends HTML mail over a single SMTP host with per-sender auth.
type Mailer struct {
	host      string
	port      int
	passwords map[string]string // sender address -> app password
}

func New(host string, port int, passwords map[string]string) *Mailer {
	return &Mailer{host: host, port: port, passwords: passwords}
}

// Send delivers one HTML email from the given sender to one recipient.
// A sender without a configured password is a configuration error.
func (m *Mailer) Send(ctx context.Context, from, to, subject, htmlBody string, attachments []Attachment) error {
	password, ok := m.passwords[from]
	if !ok {
		return fmt.Errorf("no SMTP password configured for sender %q", from)
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	for _, a := range attachments {
		msg.AttachFile(a.Path)
	}

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(from),
		mail.WithPassword(password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail to %q: %w", to, err)
	}
	return nil
}
