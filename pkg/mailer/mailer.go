package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/alexporto/portfolio-backend/pkg/config"
)

// Mailer sends best-effort notification mail to the admin. Callers fire it
// from a goroutine and log failures; a failed send never reaches the client.
type Mailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
	adminTo  string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		adminTo:  cfg.AdminEmail,
	}
}

// Enabled reports whether SMTP is configured at all.
func (m *Mailer) Enabled() bool {
	return m.host != "" && m.from != "" && m.adminTo != ""
}

// SendCommentNotification mails the admin about a new comment.
func (m *Mailer) SendCommentNotification(itemTitle, commenterName, content string) error {
	if !m.Enabled() {
		return nil
	}

	subject := fmt.Sprintf("New comment on %q", itemTitle)
	body := fmt.Sprintf(`A new comment has been posted on %q.

Commenter: %s
Comment: %s

Visit your portfolio to view and manage comments.
`, itemTitle, commenterName, content)

	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", m.from, m.adminTo, subject, body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	if err := smtp.SendMail(addr, auth, m.from, []string{m.adminTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
