package digest

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rogerio-castellano/asset-inventory/internal/config"
)

type Mailer interface {
	Send(subject, html string) error
}

// SMTPMailer sends HTML mail through a plain SMTP relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(subject, html string) error {
	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + m.cfg.To,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		html,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", m.cfg.Server, m.cfg.Port)
	var auth smtp.Auth
	if !m.cfg.AuthDisabled {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Server)
	}

	to := strings.Split(m.cfg.To, ",")
	for i := range to {
		to[i] = strings.TrimSpace(to[i])
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, to, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send digest email: %w", err)
	}
	return nil
}
