package email

import (
	"strings"
	"testing"
)

func TestNewEmail(t *testing.T) {
	t.Run("renders proposal template", func(t *testing.T) {
		data := ProposalData{
			RecipientName: "Dana",
			PropertyNames: "News Site",
			Scenario:      "moderate",
			MonthlyUplift: "$7,803",
			AnnualUplift:  "$93,636",
			PaybackMonths: "3.2 months",
			PreparedDate:  "August 28, 2026",
			SenderName:    "Alex Rivera",
			SenderEmail:   "alex@example.com",
		}
		e, err := NewEmail(EmailMeta{
			Recipient:    "dana@example.com",
			CC:           []string{"ops@example.com"},
			TemplateType: ProposalTemplate,
		}, data)
		if err != nil {
			t.Fatalf("NewEmail: %v", err)
		}
		if e.Recipient != "dana@example.com" {
			t.Errorf("Recipient = %q", e.Recipient)
		}
		if e.Subject != "Revenue Uplift Proposal - News Site" {
			t.Errorf("Subject = %q", e.Subject)
		}
		for _, want := range []string{"Dana", "News Site", "$7,803", "$93,636", "3.2 months", "moderate"} {
			if !strings.Contains(e.Body, want) {
				t.Errorf("body missing %q", want)
			}
		}
	})

	t.Run("unknown template fails", func(t *testing.T) {
		if _, err := NewEmail(EmailMeta{TemplateType: "missing"}, ProposalData{}); err == nil {
			t.Fatal("expected error for unknown template")
		}
	})
}

func TestBuildMessage(t *testing.T) {
	e := Email{
		Recipient: "dana@example.com",
		CC:        []string{"ops@example.com"},
		Subject:   "Revenue Uplift Proposal - News Site",
		Body:      "<html><body>hello</body></html>",
		Attachments: []Attachment{
			{Filename: "proposal.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")},
		},
	}
	msg, err := buildMessage("sender@example.com", e)
	if err != nil {
		t.Fatalf("buildMessage: %v", err)
	}
	s := string(msg)
	for _, want := range []string{
		"From: sender@example.com",
		"To: dana@example.com",
		"Cc: ops@example.com",
		"Subject: Revenue Uplift Proposal - News Site",
		"multipart/mixed",
		"text/html; charset=utf-8",
		"application/pdf",
		`filename="proposal.pdf"`,
		"Content-Transfer-Encoding: base64",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("message missing %q", want)
		}
	}
}
