package notification

import (
	"net/smtp"
	"os"
)

type EmailConfig struct {
	From     string
	Password string
	SMTPHost string
	SMTPPort string
}

// ConfigFromEnv returns the SMTP settings, or false when SMTP_HOST is
// unset and email is disabled.
func ConfigFromEnv() (EmailConfig, bool) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return EmailConfig{}, false
	}
	return EmailConfig{
		From:     os.Getenv("SMTP_FROM"),
		Password: os.Getenv("SMTP_PASSWORD"),
		SMTPHost: host,
		SMTPPort: os.Getenv("SMTP_PORT"),
	}, true
}

func SendEmail(to string, subject string, body string, config EmailConfig) error {
	auth := smtp.PlainAuth("", config.From, config.Password, config.SMTPHost)

	message := []byte("Subject: " + subject + "\r\n\r\n" + body)

	err := smtp.SendMail(config.SMTPHost+":"+config.SMTPPort, auth, config.From, []string{to}, message)
	return err
}

// Mailer adapts EmailConfig to the service layer's Mailer interface.
type Mailer struct {
	config EmailConfig
}

func NewMailer(config EmailConfig) *Mailer {
	return &Mailer{config: config}
}

func (m *Mailer) Send(to, subject, body string) error {
	return SendEmail(to, subject, body, m.config)
}
