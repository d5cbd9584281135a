package mail

import (
	"fmt"
	"net/smtp"

	"github.com/rensdev/urenregistratie-api/internal/config"
)

// Mailer delivers a single message; the contact handler only needs that.
type Mailer interface {
	Send(subject, body string) error
}

type SMTPMailer struct {
	addr string
	host string
	user string
	pass string
	from string
	to   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		addr: cfg.SMTPAddr(),
		host: cfg.SMTPHost,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.SMTPUser,
		to:   cfg.ContactTo,
	}
}

func (m *SMTPMailer) Send(subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, m.to, subject, body,
	)

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(m.addr, auth, m.from, []string{m.to}, []byte(msg))
}
