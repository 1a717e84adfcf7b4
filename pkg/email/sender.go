package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"roi-srv/pkg/log"
)

// ISender delivers rendered emails.
type ISender interface {
	Send(ctx context.Context, e Email) error
}

// SMTPConfig holds the SMTP relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpSender struct {
	l   log.Logger
	cfg SMTPConfig
}

// NewSMTPSender creates an ISender backed by a plain-auth SMTP relay.
func NewSMTPSender(l log.Logger, cfg SMTPConfig) ISender {
	return &smtpSender{l: l, cfg: cfg}
}

func (s *smtpSender) Send(ctx context.Context, e Email) error {
	msg, err := buildMessage(s.cfg.From, e)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	recipients := append([]string{e.Recipient}, e.CC...)
	if err := smtp.SendMail(addr, auth, s.cfg.From, recipients, msg); err != nil {
		s.l.Errorf(ctx, "email.Send: SendMail to %s failed: %v", e.Recipient, err)
		return err
	}

	s.l.Infof(ctx, "email.Send: delivered %q to %s", e.Subject, e.Recipient)
	return nil
}

// buildMessage assembles a multipart/mixed MIME message with the HTML
// body and any attachments.
func buildMessage(from string, e Email) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\n", from, e.Recipient)
	for _, cc := range e.CC {
		headers += fmt.Sprintf("Cc: %s\r\n", cc)
	}
	headers += fmt.Sprintf("Subject: %s\r\nMIME-Version: 1.0\r\nContent-Type: multipart/mixed; boundary=%q\r\n\r\n", e.Subject, w.Boundary())

	bodyHeader := textproto.MIMEHeader{}
	bodyHeader.Set("Content-Type", "text/html; charset=utf-8")
	part, err := w.CreatePart(bodyHeader)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte(e.Body)); err != nil {
		return nil, err
	}

	for _, a := range e.Attachments {
		attHeader := textproto.MIMEHeader{}
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		attHeader.Set("Content-Type", contentType)
		attHeader.Set("Content-Transfer-Encoding", "base64")
		attHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Filename))
		part, err := w.CreatePart(attHeader)
		if err != nil {
			return nil, err
		}
		encoded := base64.StdEncoding.EncodeToString(a.Data)
		if _, err := part.Write([]byte(encoded)); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return append([]byte(headers), buf.Bytes()...), nil
}
