package http

import "roi-srv/internal/calculator"

// calculateReq is the body for POST /calculate.
type calculateReq struct {
	Inputs       calculator.Inputs               `json:"inputs"`
	Scenario     calculator.ScenarioState        `json:"scenario" binding:"required"`
	RiskScenario calculator.RiskScenario         `json:"risk_scenario" binding:"required"`
	Overrides    *calculator.AssumptionOverrides `json:"overrides"`
}

func (r calculateReq) toInput() calculator.CalculateInput {
	return calculator.CalculateInput{
		Inputs:       r.Inputs,
		Scenario:     r.Scenario,
		RiskScenario: r.RiskScenario,
		Overrides:    r.Overrides,
	}
}

// projectionReq is the body for POST /projection. Months defaults to 12.
type projectionReq struct {
	calculateReq
	Months int `json:"months"`
}

// projectionResp wraps the projection series.
type projectionResp struct {
	Months     int                            `json:"months"`
	Projection []calculator.MonthlyProjection `json:"projection"`
}
