package http

import (
	"errors"

	"roi-srv/internal/calculator"
	pkgErrors "roi-srv/pkg/errors"
)

var (
	errInvalidBody         = pkgErrors.NewHTTPError(400, "Invalid request body")
	errUnknownRiskScenario = pkgErrors.NewHTTPError(400, "Unknown risk scenario")
	errUnknownDeployment   = pkgErrors.NewHTTPError(400, "Unknown deployment breadth")
	errUnknownScope        = pkgErrors.NewHTTPError(400, "Unknown capability scope")
	errInvalidProjection   = pkgErrors.NewHTTPError(400, "Projection horizon must be 12 or 36 months")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calculator.ErrUnknownRiskScenario):
		return errUnknownRiskScenario
	case errors.Is(err, calculator.ErrUnknownDeployment):
		return errUnknownDeployment
	case errors.Is(err, calculator.ErrUnknownScope):
		return errUnknownScope
	case errors.Is(err, calculator.ErrInvalidProjection):
		return errInvalidProjection
	default:
		return err
	}
}
