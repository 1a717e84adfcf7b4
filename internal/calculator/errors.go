package calculator

import "errors"

var (
	ErrUnknownRiskScenario = errors.New("unknown risk scenario")
	ErrUnknownDeployment   = errors.New("unknown deployment breadth")
	ErrUnknownScope        = errors.New("unknown capability scope")
	ErrInvalidProjection   = errors.New("projection horizon must be 12 or 36 months")
)
