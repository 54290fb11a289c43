package service

import (
	"jobmatch_backend/internal/config"

	gomail "gopkg.in/gomail.v2"
)

// MailMessage is the plain-text message handed to the notifier.
type MailMessage struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer delivers a message. Its mechanism is opaque to callers; only the
// success or failure of delivery is reported back.
type Mailer interface {
	Send(msg MailMessage) error
}

type SMTPSender struct {
	host string
	port int
	user string
	pass string
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		host: cfg.Host,
		port: cfg.Port,
		user: cfg.User,
		pass: cfg.Password,
	}
}

func (s *SMTPSender) Send(msg MailMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	return d.DialAndSend(m)
}
