package main

import (
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
)

// ---------------------------------------------------------------------------
// Email
// ---------------------------------------------------------------------------

// Attachment is an in-memory file attached to an outgoing mail.
type Attachment struct {
	Filename string
	Data     []byte
}

// newInvoiceMessage builds the mail carrying the rendered invoices.
func newInvoiceMessage(cfg *Config, subject string, attachments ...Attachment) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.Email.From)
	msg.SetHeader("To", cfg.Email.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", "Please find your invoice attached.<br>")

	for _, a := range attachments {
		data := a.Data
		msg.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}
	return msg
}

// sendEmail sends the generated PDFs via SMTP.
func sendEmail(cfg *Config, subject string, attachments ...Attachment) error {
	msg := newInvoiceMessage(cfg, subject, attachments...)
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send invoice mail: %w", err)
	}
	return nil
}
