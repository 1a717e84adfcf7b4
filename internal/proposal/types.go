package proposal

import (
	"time"

	"roi-srv/internal/calculator"
)

// EmailRequest asks for the rendered proposal to be mailed out after
// generation. Delivery failure does not fail the proposal itself.
type EmailRequest struct {
	Recipient     string   `json:"recipient"`
	RecipientName string   `json:"recipient_name"`
	CC            []string `json:"cc,omitempty"`
}

type GenerateInput struct {
	Calculation  calculator.CalculateInput
	Title        string
	PreparedFor  string
	PreparedBy   string
	ContactEmail string
	Email        *EmailRequest
}

type GenerateOutput struct {
	ProposalID  string                     `json:"proposal_id"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Title       string                     `json:"title"`
	Results     *calculator.UnifiedResults `json:"results"`
	PDF         []byte                     `json:"pdf"`

	EmailRequested bool   `json:"email_requested"`
	EmailDelivered bool   `json:"email_delivered"`
	EmailError     string `json:"email_error,omitempty"`
}
