package http

import (
	"time"

	"roi-srv/internal/calculator"
	"roi-srv/internal/proposal"
)

// generateReq is the body for POST /proposals. PDF generation always
// runs; Email is optional.
type generateReq struct {
	Inputs       calculator.Inputs               `json:"inputs"`
	Scenario     calculator.ScenarioState        `json:"scenario" binding:"required"`
	RiskScenario calculator.RiskScenario         `json:"risk_scenario" binding:"required"`
	Overrides    *calculator.AssumptionOverrides `json:"overrides"`

	Title        string                 `json:"title"`
	PreparedFor  string                 `json:"prepared_for"`
	PreparedBy   string                 `json:"prepared_by"`
	ContactEmail string                 `json:"contact_email"`
	Email        *proposal.EmailRequest `json:"email"`
}

func (r generateReq) toInput() proposal.GenerateInput {
	return proposal.GenerateInput{
		Calculation: calculator.CalculateInput{
			Inputs:       r.Inputs,
			Scenario:     r.Scenario,
			RiskScenario: r.RiskScenario,
			Overrides:    r.Overrides,
		},
		Title:        r.Title,
		PreparedFor:  r.PreparedFor,
		PreparedBy:   r.PreparedBy,
		ContactEmail: r.ContactEmail,
		Email:        r.Email,
	}
}

// generateResp carries the proposal and its PDF. The PDF bytes are
// base64-encoded by the JSON marshaler.
type generateResp struct {
	ProposalID  string                     `json:"proposal_id"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Title       string                     `json:"title"`
	Results     *calculator.UnifiedResults `json:"results"`
	PDF         []byte                     `json:"pdf"`

	EmailRequested bool   `json:"email_requested"`
	EmailDelivered bool   `json:"email_delivered"`
	EmailError     string `json:"email_error,omitempty"`
}

func newGenerateResp(out proposal.GenerateOutput) generateResp {
	return generateResp{
		ProposalID:     out.ProposalID,
		GeneratedAt:    out.GeneratedAt,
		Title:          out.Title,
		Results:        out.Results,
		PDF:            out.PDF,
		EmailRequested: out.EmailRequested,
		EmailDelivered: out.EmailDelivered,
		EmailError:     out.EmailError,
	}
}
