package notify

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"wisefeed/internal/config"
)

// SendSummary mails a plain-text run summary to the configured
// recipients. Callers treat an error here as non-fatal; the fetch
// output already exists on disk by the time we notify.
func SendSummary(cfg config.Config, subject, body string) error {
	if strings.TrimSpace(cfg.SenderEmail) == "" || strings.TrimSpace(cfg.SenderPassword) == "" {
		return errors.New("sender email settings are not configured")
	}

	recipients := make([]string, 0)
	for _, r := range strings.Split(cfg.DefaultRecipients, ",") {
		r = strings.TrimSpace(r)
		if r != "" {
			recipients = append(recipients, r)
		}
	}
	if len(recipients) == 0 {
		return errors.New("no notification recipients configured")
	}

	msg := strings.Builder{}
	msg.WriteString("From: " + cfg.SenderEmail + "\r\n")
	msg.WriteString("To: " + strings.Join(recipients, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", cfg.SMTPServer, cfg.SMTPPort)
	auth := smtp.PlainAuth("", cfg.SenderEmail, cfg.SenderPassword, cfg.SMTPServer)
	return smtp.SendMail(addr, auth, cfg.SenderEmail, recipients, []byte(msg.String()))
}
