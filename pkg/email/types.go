package email

type EmailMeta struct {
	Recipient    string
	CC           []string
	TemplateType string
}

type Email struct {
	Recipient   string
	Subject     string
	Body        string
	CC          []string
	Attachments []Attachment
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProposalData is applied to the proposal email template.
type ProposalData struct {
	RecipientName string
	PropertyNames string
	Scenario      string
	MonthlyUplift string
	AnnualUplift  string
	PaybackMonths string
	PreparedDate  string
	SenderName    string
	SenderEmail   string
}
