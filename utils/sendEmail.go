package utils

import (
	"fmt"
	"strconv"

	"inventory-sync-backend/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Initialize the SMTP mailer once and store it in a global variable
var mailer *gomail.Dialer

// InitializeMailer sets up the mailer using environment variables
func InitializeMailer() {
	mailHost := config.GetEnv("SMTP_HOST")
	mailPort := config.GetEnv("SMTP_PORT")
	mailUser := config.GetEnv("SMTP_USER")
	mailPassword := config.GetEnv("SMTP_PASSWORD")

	port, err := strconv.Atoi(mailPort)
	if err != nil {
		config.Logger.Error("Invalid SMTP_PORT value, defaulting to port 25",
			zap.String("provided_port", mailPort),
			zap.Error(err),
		)
		port = 25
	}

	mailer = gomail.NewDialer(mailHost, port, mailUser, mailPassword)
	config.Logger.Info("Mailer initialized successfully")
}

// GetMailer returns the shared dialer, nil when InitializeMailer has not run.
func GetMailer() *gomail.Dialer {
	return mailer
}

// SendEmail sends a plain-text notification. downloadLink, when non-empty,
// is appended to the body so the recipient can fetch the error report.
func SendEmail(recipient, message, subject, downloadLink string) error {
	if mailer == nil {
		return fmt.Errorf("mailer not initialized")
	}

	body := message
	if downloadLink != "" {
		body = fmt.Sprintf("%s\n\nDownload the error report here: %s", message, downloadLink)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.GetEnv("SMTP_FROM"))
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := mailer.DialAndSend(m); err != nil {
		config.Logger.Error("Failed to send email",
			zap.String("recipient", recipient),
			zap.Error(err),
		)
		return err
	}
	return nil
}
