package helper

import (
	"fmt"
	"net/smtp"
	"os"
)

// Mailer sends transactional mail over plain SMTP. All fields come from
// the environment; callers treat delivery as fire-and-forget.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	BaseURL  string
}

func NewMailerFromEnv() *Mailer {
	return &Mailer{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		BaseURL:  os.Getenv("HOST_NAME"),
	}
}

func (m *Mailer) SendVerificationEmail(to, name, token string) error {
	subject := "Verify your PrideHub account"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nWelcome to PrideHub! Verify your email by opening:\r\n%s/api/verify-email/%s\r\n\r\nIf you did not sign up, ignore this mail.\r\n",
		name, m.BaseURL, token,
	)
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.From, to, subject, body))

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, msg)
}
