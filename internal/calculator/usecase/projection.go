package usecase

import (
	"context"

	"roi-srv/internal/calculator"
)

// MonthlyProjection calculates and projects the ramped uplift over 12 or
// 36 months.
func (uc *implUseCase) MonthlyProjection(ctx context.Context, input calculator.CalculateInput, months int) ([]calculator.MonthlyProjection, error) {
	if months != 12 && months != 36 {
		return nil, calculator.ErrInvalidProjection
	}

	res, err := uc.Calculate(ctx, input)
	if err != nil {
		return nil, err
	}

	return GenerateMonthlyProjection(res, months), nil
}

// GenerateMonthlyProjection derives the per-month ramp series from a
// calculation result. The 12-month variant additionally carries the ROI
// columns against the POC cost for the POC months and the full-contract
// cost afterwards.
func GenerateMonthlyProjection(res *calculator.UnifiedResults, months int) []calculator.MonthlyProjection {
	projection := make([]calculator.MonthlyProjection, 0, months)

	for month := 1; month <= months; month++ {
		ramp := rampFactor(res.Risk.RampUpMonths, month)
		uplift := res.Totals.MonthlyUplift * ramp

		p := calculator.MonthlyProjection{
			Month:            month,
			RampFactor:       ramp,
			ProjectedRevenue: res.Totals.CurrentMonthlyRevenue + uplift,
			Uplift:           uplift,
		}

		if months == 12 {
			cost := res.Pricing.FullContractMonthlyFee
			if month <= res.Pricing.POCDurationMonths {
				cost = res.Pricing.POCMonthlyEquivalent
			}
			if cost > 0 {
				p.ROIMultiple = uplift / cost
			}
			p.NetROI = uplift - cost
		}

		projection = append(projection, p)
	}

	return projection
}

// rampFactor is the piecewise step curve keyed by the scenario's ramp-up
// months. Slow deployments are still ramping at month 12.
func rampFactor(rampUpMonths float64, month int) float64 {
	switch {
	case rampUpMonths <= 6:
		switch {
		case month <= 2:
			return 0.30
		case month <= 4:
			return 0.60
		default:
			return 1.0
		}
	case rampUpMonths <= 12:
		switch {
		case month <= 3:
			return 0.25
		case month <= 6:
			return 0.50
		case month <= 9:
			return 0.75
		default:
			return 1.0
		}
	default:
		switch {
		case month <= 3:
			return 0.15
		case month <= 6:
			return 0.30
		case month <= 9:
			return 0.50
		case month <= 12:
			return 0.70
		default:
			return 1.0
		}
	}
}
