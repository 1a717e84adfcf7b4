package usecase

import (
	"context"
	"testing"

	"roi-srv/internal/calculator"
)

func TestMonthlyProjection(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	t.Run("invalid horizon", func(t *testing.T) {
		if _, err := uc.MonthlyProjection(ctx, singleInput(), 24); err != calculator.ErrInvalidProjection {
			t.Errorf("got %v, want ErrInvalidProjection", err)
		}
	})

	t.Run("moderate ramp at twelve months", func(t *testing.T) {
		// Moderate ramps over 9 months: 25/50/75/100 at 3/6/9.
		proj, err := uc.MonthlyProjection(ctx, singleInput(), 12)
		if err != nil {
			t.Fatal(err)
		}
		if len(proj) != 12 {
			t.Fatalf("got %d months, want 12", len(proj))
		}

		wantRamp := map[int]float64{1: 0.25, 3: 0.25, 4: 0.50, 7: 0.75, 10: 1.0, 12: 1.0}
		for month, want := range wantRamp {
			almostEqual(t, "ramp factor", proj[month-1].RampFactor, want)
		}

		res, err := uc.Calculate(ctx, singleInput())
		if err != nil {
			t.Fatal(err)
		}
		almostEqual(t, "month 12 uplift", proj[11].Uplift, res.Totals.MonthlyUplift)
		almostEqual(t, "month 12 revenue", proj[11].ProjectedRevenue,
			res.Totals.CurrentMonthlyRevenue+res.Totals.MonthlyUplift)

		// POC cost for months 1-3, full contract afterwards.
		pocCost := 25_000.0 / 3
		almostEqual(t, "month 2 roi multiple", proj[1].ROIMultiple, proj[1].Uplift/pocCost)
		almostEqual(t, "month 2 net roi", proj[1].NetROI, proj[1].Uplift-pocCost)
		almostEqual(t, "month 6 roi multiple", proj[5].ROIMultiple, proj[5].Uplift/15_000)
	})

	t.Run("optimistic uses the fast curve", func(t *testing.T) {
		input := singleInput()
		input.RiskScenario = calculator.RiskOptimistic
		proj, err := uc.MonthlyProjection(ctx, input, 12)
		if err != nil {
			t.Fatal(err)
		}
		almostEqual(t, "month 1", proj[0].RampFactor, 0.30)
		almostEqual(t, "month 3", proj[2].RampFactor, 0.60)
		almostEqual(t, "month 5", proj[4].RampFactor, 1.0)
	})

	t.Run("inflated ramp is still climbing at month 12", func(t *testing.T) {
		input := singleInput()
		input.RiskScenario = calculator.RiskConservative
		input.Overrides = &calculator.AssumptionOverrides{
			Readiness: &calculator.ReadinessFactors{ResourceAvailability: floatPtr(0.4)},
		}
		proj, err := uc.MonthlyProjection(ctx, input, 36)
		if err != nil {
			t.Fatal(err)
		}
		if len(proj) != 36 {
			t.Fatalf("got %d months, want 36", len(proj))
		}
		almostEqual(t, "month 12", proj[11].RampFactor, 0.70)
		almostEqual(t, "month 13", proj[12].RampFactor, 1.0)
		// 36-month variant carries no ROI columns.
		almostEqual(t, "month 6 roi multiple", proj[5].ROIMultiple, 0)
	})
}
