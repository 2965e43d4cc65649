package notify

import (
	"jobboard_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail through a plain SMTP relay.
type SMTPProvider struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		host:     cfg.Email.SMTPHost,
		port:     cfg.Email.SMTPPort,
		username: cfg.Email.SMTPUsername,
		password: cfg.Email.SMTPPassword,
		from:     cfg.Email.FromEmail,
		fromName: cfg.Email.FromName,
	}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.from, p.fromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(p.host, p.port, p.username, p.password)
	return d.DialAndSend(m)
}
