package http

import (
	"errors"

	"roi-srv/internal/calculator"
	"roi-srv/internal/proposal"
	pkgErrors "roi-srv/pkg/errors"
)

var (
	errInvalidBody         = pkgErrors.NewHTTPError(400, "Invalid request body")
	errEmailRecipient      = pkgErrors.NewHTTPError(400, "Email recipient is required")
	errUnknownRiskScenario = pkgErrors.NewHTTPError(400, "Unknown risk scenario")
	errUnknownDeployment   = pkgErrors.NewHTTPError(400, "Unknown deployment breadth")
	errUnknownScope        = pkgErrors.NewHTTPError(400, "Unknown capability scope")
	errRendererUnavailable = pkgErrors.NewHTTPError(503, "PDF rendering is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, proposal.ErrEmailRecipient):
		return errEmailRecipient
	case errors.Is(err, proposal.ErrRendererUnavailable):
		return errRendererUnavailable
	case errors.Is(err, calculator.ErrUnknownRiskScenario):
		return errUnknownRiskScenario
	case errors.Is(err, calculator.ErrUnknownDeployment):
		return errUnknownDeployment
	case errors.Is(err, calculator.ErrUnknownScope):
		return errUnknownScope
	default:
		return err
	}
}
