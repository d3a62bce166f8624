package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/joshijay655/justdostuff/pkg/utils"

	"go.uber.org/zap"
)

// Mailer sends transactional HTML email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
	log  *zap.Logger
}

type logMailer struct {
	log *zap.Logger
}

// NewMailer returns an SMTP-backed mailer, or a log-only mailer when SMTP
// is not configured so local development works without a mail server.
func NewMailer(config utils.SMTPConfig, log *zap.Logger) Mailer {
	if config.Host == "" {
		log.Warn("smtp not configured, emails will only be logged")
		return &logMailer{log: log.With(zap.String("component", "mailer"))}
	}

	var auth smtp.Auth
	if config.User != "" {
		auth = smtp.PlainAuth("", config.User, config.Password, config.Host)
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", config.Host, config.Port),
		auth: auth,
		from: config.From,
		log:  log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		m.log.Error("send mail failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.log.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (m *logMailer) Send(to, subject, htmlBody string) error {
	m.log.Info("mail (log only)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(htmlBody)),
	)
	return nil
}
