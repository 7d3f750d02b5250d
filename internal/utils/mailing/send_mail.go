package mailing

import (
	"fmt"
	"strconv"

	"nutritrack-backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type (
	Mailer interface {
		Send(toEmail string, subject string, body string) error
		SendVerificationEmail(toEmail string, token string) error
	}

	smtpMailer struct{}
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func NewSMTPMailer() Mailer {
	return &smtpMailer{}
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func (m *smtpMailer) Send(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func (m *smtpMailer) SendVerificationEmail(toEmail string, token string) error {
	emailConfig := LoadMailConfig()
	link := fmt.Sprintf("%s/api/v1/users/verify?token=%s", emailConfig.AppURL, token)
	body := fmt.Sprintf(
		"<p>Welcome to NutriTrack!</p><p>Please verify your email by clicking <a href=\"%s\">here</a>.</p>",
		link,
	)
	return m.Send(toEmail, "Verify your NutriTrack account", body)
}
