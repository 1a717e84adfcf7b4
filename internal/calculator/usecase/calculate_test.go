package usecase

import (
	"context"
	"reflect"
	"testing"

	"roi-srv/internal/calculator"
)

func TestCalculateCanonicalFixture(t *testing.T) {
	// Single property, 5M pageviews, 3.2 ads/page, $4.50/$12.00 CPMs,
	// 80/20 split, id-only scope, single deployment, moderate risk.
	uc := newTestUseCase(t)
	ctx := context.Background()

	res, err := uc.Calculate(ctx, singleInput())
	if err != nil {
		t.Fatal(err)
	}

	// 12.8M display impressions at $4.50 + 3.2M video at $12.00
	almostEqual(t, "current monthly revenue", res.Totals.CurrentMonthlyRevenue, 96_000)

	// Newly addressable: 16M x 35% x 20% = 1.12M impressions, split 80/20.
	almostEqual(t, "newly addressable impressions",
		res.IDInfrastructure.Details["newly_addressable_impressions"], 1_120_000)
	// (896k/1000 x 4.50 + 224k/1000 x 12.00) x 25% = 1680
	almostEqual(t, "incremental cpm revenue",
		res.IDInfrastructure.Details["incremental_cpm_revenue"], 1_680)
	// $25k CDP base cost x 30% reduction
	almostEqual(t, "cdp savings", res.IDInfrastructure.Details["cdp_savings"], 7_500)
	// Base (1680 + 7500) x 1.0 deployment
	almostEqual(t, "base monthly uplift",
		res.IDInfrastructure.Details["base_monthly_uplift"], 9_180)
	// Moderate: components x 0.85 risk, then x 0.75 adoption
	almostEqual(t, "risk adjusted uplift",
		res.IDInfrastructure.Details["risk_adjusted_monthly_uplift"], 7_803)
	almostEqual(t, "adopted monthly uplift", res.IDInfrastructure.MonthlyUplift, 5_852.25)

	almostEqual(t, "total monthly uplift", res.Totals.MonthlyUplift, 5_852.25)
	almostEqual(t, "annual uplift", res.Totals.AnnualUplift, 70_227)
	almostEqual(t, "three year uplift", res.Totals.ThreeYearUplift, 210_681)
	almostEqual(t, "percent improvement", res.Totals.PercentImprovement, 5_852.25/96_000*100)

	// Optimistic, no overrides: (1680 + 7500) x 0.95 x 0.90 = 7848.9
	almostEqual(t, "unadjusted uplift", res.RiskComparison.UnadjustedMonthlyUplift, 7_848.9)
	almostEqual(t, "adjustment percent", res.RiskComparison.AdjustmentPercent,
		(7_848.9-5_852.25)/7_848.9*100)
}

func TestCalculateDeterminism(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	input := singleInput()
	input.Scenario.Scope = calculator.ScopeIDCAPIPerformance
	input.Overrides = &calculator.AssumptionOverrides{
		CPMUpliftFactor: floatPtr(0.30),
		Readiness:       &calculator.ReadinessFactors{SalesReadiness: floatPtr(0.7)},
	}

	first, err := uc.Calculate(ctx, input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := uc.Calculate(ctx, input)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two calls with identical arguments produced different results")
	}
}

func TestCalculateZeroDomainInvariant(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	for name, ids := range map[string][]string{
		"empty selection": nil,
		"only unknown":    {"missing-1", "missing-2"},
	} {
		t.Run(name, func(t *testing.T) {
			input := singleInput()
			input.Inputs.SelectedPropertyIDs = ids
			input.Scenario.Scope = calculator.ScopeIDCAPIPerformance

			res, err := uc.Calculate(ctx, input)
			if err != nil {
				t.Fatal(err)
			}

			almostEqual(t, "current revenue", res.Totals.CurrentMonthlyRevenue, 0)
			almostEqual(t, "monthly uplift", res.Totals.MonthlyUplift, 0)
			almostEqual(t, "percent improvement", res.Totals.PercentImprovement, 0)
			almostEqual(t, "id uplift", res.IDInfrastructure.MonthlyUplift, 0)
			if res.Breakdown != (calculator.BreakdownPercents{}) {
				t.Errorf("expected zero breakdown, got %+v", res.Breakdown)
			}
		})
	}
}

func TestCalculateScopeGating(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	t.Run("id-only omits capi and performance", func(t *testing.T) {
		res, err := uc.Calculate(ctx, singleInput())
		if err != nil {
			t.Fatal(err)
		}
		if res.CAPICapabilities != nil {
			t.Error("capi result present under id-only scope")
		}
		if res.MediaPerformance != nil {
			t.Error("performance result present under id-only scope")
		}
		almostEqual(t, "total equals id alone", res.Totals.MonthlyUplift, res.IDInfrastructure.MonthlyUplift)
	})

	t.Run("id-capi omits performance only", func(t *testing.T) {
		input := singleInput()
		input.Scenario.Scope = calculator.ScopeIDCAPI
		res, err := uc.Calculate(ctx, input)
		if err != nil {
			t.Fatal(err)
		}
		if res.CAPICapabilities == nil {
			t.Fatal("capi result missing under id-capi scope")
		}
		if res.MediaPerformance != nil {
			t.Error("performance result present under id-capi scope")
		}
		almostEqual(t, "total is id + capi", res.Totals.MonthlyUplift,
			res.IDInfrastructure.MonthlyUplift+res.CAPICapabilities.MonthlyUplift)
	})
}

func TestCalculateBreakdownSumsTo100(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	input := singleInput()
	input.Scenario.Scope = calculator.ScopeIDCAPIPerformance
	res, err := uc.Calculate(ctx, input)
	if err != nil {
		t.Fatal(err)
	}

	sum := res.Breakdown.IDInfrastructurePercent +
		res.Breakdown.CAPIPercent +
		res.Breakdown.PerformancePercent
	almostEqual(t, "breakdown sum", sum, 100)
}

func TestCalculateMonotonicity(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	base, err := uc.Calculate(ctx, singleInput())
	if err != nil {
		t.Fatal(err)
	}

	input := singleInput()
	input.Overrides = &calculator.AssumptionOverrides{CPMUpliftFactor: floatPtr(0.40)}
	boosted, err := uc.Calculate(ctx, input)
	if err != nil {
		t.Fatal(err)
	}

	if boosted.IDInfrastructure.MonthlyUplift <= base.IDInfrastructure.MonthlyUplift {
		t.Errorf("raising cpm uplift factor did not raise id uplift: %.2f -> %.2f",
			base.IDInfrastructure.MonthlyUplift, boosted.IDInfrastructure.MonthlyUplift)
	}
}

func TestCalculateScenarioOrdering(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	for _, scope := range []calculator.Scope{
		calculator.ScopeIDOnly,
		calculator.ScopeIDCAPI,
		calculator.ScopeIDCAPIPerformance,
	} {
		input := singleInput()
		input.Scenario.Scope = scope

		input.RiskScenario = calculator.RiskConservative
		conservative, err := uc.Calculate(ctx, input)
		if err != nil {
			t.Fatal(err)
		}

		input.RiskScenario = calculator.RiskOptimistic
		optimistic, err := uc.Calculate(ctx, input)
		if err != nil {
			t.Fatal(err)
		}

		if optimistic.Totals.MonthlyUplift < conservative.Totals.MonthlyUplift {
			t.Errorf("scope %s: optimistic %.2f below conservative %.2f", scope,
				optimistic.Totals.MonthlyUplift, conservative.Totals.MonthlyUplift)
		}
		optBase := optimistic.IDInfrastructure.Details["base_monthly_uplift"]
		consBase := conservative.IDInfrastructure.Details["base_monthly_uplift"]
		if optBase < consBase {
			t.Errorf("scope %s: optimistic base %.2f below conservative base %.2f", scope, optBase, consBase)
		}
	}
}

func TestCalculateValidation(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	t.Run("unknown deployment", func(t *testing.T) {
		input := singleInput()
		input.Scenario.Deployment = "galactic"
		if _, err := uc.Calculate(ctx, input); err != calculator.ErrUnknownDeployment {
			t.Errorf("got %v, want ErrUnknownDeployment", err)
		}
	})

	t.Run("unknown scope", func(t *testing.T) {
		input := singleInput()
		input.Scenario.Scope = "everything"
		if _, err := uc.Calculate(ctx, input); err != calculator.ErrUnknownScope {
			t.Errorf("got %v, want ErrUnknownScope", err)
		}
	})

	t.Run("unknown risk scenario", func(t *testing.T) {
		input := singleInput()
		input.RiskScenario = "reckless"
		if _, err := uc.Calculate(ctx, input); err != calculator.ErrUnknownRiskScenario {
			t.Errorf("got %v, want ErrUnknownRiskScenario", err)
		}
	})
}

func TestCalculateROIAnalysis(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	res, err := uc.Calculate(ctx, singleInput())
	if err != nil {
		t.Fatal(err)
	}

	benefit := res.Totals.MonthlyUplift
	// POC: $25k over 3 months
	almostEqual(t, "poc monthly cost", res.ROIAnalysis.POC.MonthlyCost, 25_000.0/3)
	almostEqual(t, "poc net monthly", res.ROIAnalysis.POC.NetMonthlyROI, benefit-25_000.0/3)
	almostEqual(t, "poc multiple", res.ROIAnalysis.POC.ROIMultiple, benefit/(25_000.0/3))
	almostEqual(t, "poc payback", res.ROIAnalysis.POC.PaybackMonths, 25_000/benefit)

	almostEqual(t, "full monthly cost", res.ROIAnalysis.FullContract.MonthlyCost, 15_000)
	almostEqual(t, "full multiple", res.ROIAnalysis.FullContract.ROIMultiple, benefit/15_000)
}

func TestCalculateDeploymentMultiplier(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	uplifts := map[calculator.Deployment]float64{}
	for _, d := range []calculator.Deployment{
		calculator.DeploymentSingle,
		calculator.DeploymentMulti,
		calculator.DeploymentFullNetwork,
	} {
		input := singleInput()
		input.Scenario.Deployment = d
		res, err := uc.Calculate(ctx, input)
		if err != nil {
			t.Fatal(err)
		}
		uplifts[d] = res.Totals.MonthlyUplift
	}

	if !(uplifts[calculator.DeploymentSingle] < uplifts[calculator.DeploymentMulti] &&
		uplifts[calculator.DeploymentMulti] < uplifts[calculator.DeploymentFullNetwork]) {
		t.Errorf("expected single < multi < full-network, got %+v", uplifts)
	}
}
