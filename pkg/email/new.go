package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// NewEmail renders the embedded template for the given meta and data.
func NewEmail(e EmailMeta, data ProposalData) (Email, error) {
	tmpl, err := getEmailTemplate(e.TemplateType)
	if err != nil {
		return Email{}, err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return Email{}, err
	}

	return Email{
		Recipient: e.Recipient,
		CC:        e.CC,
		Subject:   getEmailSubject(e.TemplateType, data),
		Body:      body.String(),
	}, nil
}

func getEmailTemplate(templateType string) (*template.Template, error) {
	tmplFile := fmt.Sprintf("%s.tmpl", templateType)
	tmplPath := fmt.Sprintf("templates/%s", tmplFile)
	return template.New(tmplFile).ParseFS(emailTemplates, tmplPath)
}

func getEmailSubject(templateType string, data ProposalData) string {
	switch templateType {
	case ProposalTemplate:
		return fmt.Sprintf("Revenue Uplift Proposal - %s", data.PropertyNames)
	}
	return ""
}
