package mailing

import (
	"Tastebook-Backend/internal/utils"
	"strconv"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	appURL     string
	host       string
	port       string
	senderName string
	authEmail  string
	authPass   string
}

func NewMailer() *Mailer {
	return &Mailer{
		appURL:     utils.GetConfig("APP_URL"),
		host:       utils.GetConfig("SMTP_HOST"),
		port:       utils.GetConfig("SMTP_PORT"),
		senderName: utils.GetConfig("SMTP_SENDER_NAME"),
		authEmail:  utils.GetConfig("SMTP_AUTH_EMAIL"),
		authPass:   utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func (m *Mailer) AppURL() string {
	return m.appURL
}

func (m *Mailer) Send(toEmail string, subject string, body string) error {
	port, err := strconv.Atoi(m.port)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.authEmail)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, port, m.authEmail, m.authPass)
	return dialer.DialAndSend(msg)
}
