package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/ManuelReschke/PropertiPro/internal/pkg/env"
)

// SMTPMailer sends HTML mails through the SMTP server configured in the environment
type SMTPMailer struct{}

func NewSMTPMailer() SMTPMailer {
	return SMTPMailer{}
}

// Send delivers one mail. The context only guards the start of the
// exchange; net/smtp has no cancellation of its own.
func (SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return SendMail(to, subject, body)
}

func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = "no-reply@localhost"
		slog.Warn("[Mail] SMTP_SENDER not set, using default sender", "sender", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		slog.Error("[Mail] SMTP send error", "addr", addr, "error", err)
	} else {
		slog.Info("[Mail] sent", "addr", addr)
	}
	return err
}
