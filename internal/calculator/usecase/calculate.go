package usecase

import (
	"context"

	"roi-srv/internal/calculator"
	"roi-srv/internal/model"
)

// Properties returns the static property catalog.
func (uc *implUseCase) Properties(_ context.Context) []model.Property {
	return uc.cfg.Catalog.Properties
}

// Calculate is the engine entry point. Pure and deterministic: a fresh
// UnifiedResults is built from a snapshot of the arguments on every call.
//
// Sequence: aggregate -> resolve risk -> baseline revenue -> per-category
// base uplift -> risk adjustment -> adoption scaling -> totals/breakdown ->
// pricing/ROI -> optimistic-unadjusted comparison.
func (uc *implUseCase) Calculate(_ context.Context, input calculator.CalculateInput) (*calculator.UnifiedResults, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	risk, err := uc.resolveRisk(input.RiskScenario, readinessOf(input.Overrides))
	if err != nil {
		return nil, err
	}

	agg := uc.aggregate(input.Inputs)

	res := &calculator.UnifiedResults{
		Scenario:     input.Scenario,
		RiskScenario: input.RiskScenario,
		Inputs:       input.Inputs,
		Overrides:    input.Overrides,
		Aggregated:   agg,
		Risk:         risk,
	}

	// Zero-domain guard: empty (or fully unknown) selection yields all-zero
	// uplift and revenue without dividing anywhere.
	if agg.TotalImpressions == 0 {
		res.IDInfrastructure = calculator.CategoryResult{Details: map[string]float64{}}
		res.Pricing = uc.pricingTiers(nil)
		res.ROIAnalysis = roiAnalysis(0, res.Pricing)
		return res, nil
	}

	currentRevenue := agg.DisplayImpressions/1000*agg.DisplayCPM +
		agg.VideoImpressions/1000*agg.VideoCPM

	id, capi, perf, total := uc.adoptedCategories(
		input.Inputs, input.Scenario, input.RiskScenario, risk, input.Overrides, agg, currentRevenue)

	res.IDInfrastructure = id
	res.CAPICapabilities = capi
	res.MediaPerformance = perf

	res.Totals = calculator.Totals{
		CurrentMonthlyRevenue: currentRevenue,
		MonthlyUplift:         total,
		AnnualUplift:          total * 12,
		ThreeYearUplift:       total * 12 * 3,
	}
	if currentRevenue > 0 {
		res.Totals.PercentImprovement = total / currentRevenue * 100
	}

	res.Breakdown = breakdownOf(id, capi, perf, total)
	res.Pricing = uc.pricingTiers(capi)
	res.ROIAnalysis = roiAnalysis(total, res.Pricing)

	// Informational comparison: the same totals under the optimistic bundle
	// with no overrides, reusing the same base category functions.
	optimistic := uc.cfg.RiskScenarios[calculator.RiskOptimistic]
	_, _, _, unadjusted := uc.adoptedCategories(
		input.Inputs, input.Scenario, calculator.RiskOptimistic, optimistic, nil, agg, currentRevenue)
	if unadjusted > 0 {
		res.RiskComparison = calculator.RiskComparison{
			UnadjustedMonthlyUplift: unadjusted,
			AdjustmentPercent:       (unadjusted - total) / unadjusted * 100,
		}
	}

	return res, nil
}

// adoptedCategories runs the in-scope category calculators and layers the
// risk adjustment and then the adoption rate onto each. The two passes are
// intentional sequencing: the unadjusted comparison depends on replaying
// them with a different bundle over the same base functions.
func (uc *implUseCase) adoptedCategories(
	in calculator.Inputs,
	scenario calculator.ScenarioState,
	riskName calculator.RiskScenario,
	risk calculator.RiskMultipliers,
	overrides *calculator.AssumptionOverrides,
	agg calculator.AggregatedDomains,
	currentRevenue float64,
) (calculator.CategoryResult, *calculator.CAPIResult, *calculator.CategoryResult, float64) {
	id := uc.idInfrastructure(agg, scenario, overrides)
	dm := id.Details["deployment_multiplier"]
	idAdjusted := (id.Details["incremental_cpm_revenue"]*risk.AddressabilityEfficiency +
		id.Details["cdp_savings"]*risk.CDPSavingsRealization) * dm
	id = adoptCategory(id, idAdjusted, risk.AdoptionRate)
	total := id.MonthlyUplift

	var capi *calculator.CAPIResult
	if scenario.Scope.IncludesCAPI() {
		c := uc.capiCapability(in, scenario, riskName, overrides)
		adjusted := c.MonthlyUplift * risk.CAPIDeploymentRate * risk.SalesEffectiveness
		c.CategoryResult = adoptCategory(c.CategoryResult, adjusted, risk.AdoptionRate)
		capi = &c
		total += c.MonthlyUplift
	}

	var perf *calculator.CategoryResult
	if scenario.Scope.IncludesPerformance() {
		p := uc.mediaPerformance(agg, scenario, currentRevenue, overrides)
		adjusted := p.MonthlyUplift * risk.PremiumInventoryFactor * risk.CPMUpliftRealization
		p = adoptCategory(p, adjusted, risk.AdoptionRate)
		perf = &p
		total += p.MonthlyUplift
	}

	return id, capi, perf, total
}

// adoptCategory records the base and risk-adjusted values in the details,
// then promotes the adopted figure to the category's headline uplift.
func adoptCategory(c calculator.CategoryResult, riskAdjusted, adoptionRate float64) calculator.CategoryResult {
	c.Details["base_monthly_uplift"] = c.MonthlyUplift
	c.Details["risk_adjusted_monthly_uplift"] = riskAdjusted
	c.Details["adoption_rate"] = adoptionRate
	c.MonthlyUplift = riskAdjusted * adoptionRate
	c.AnnualUplift = c.MonthlyUplift * 12
	return c
}

func breakdownOf(
	id calculator.CategoryResult,
	capi *calculator.CAPIResult,
	perf *calculator.CategoryResult,
	total float64,
) calculator.BreakdownPercents {
	var b calculator.BreakdownPercents
	if total <= 0 {
		return b
	}
	b.IDInfrastructurePercent = id.MonthlyUplift / total * 100
	if capi != nil {
		b.CAPIPercent = capi.MonthlyUplift / total * 100
	}
	if perf != nil {
		b.PerformancePercent = perf.MonthlyUplift / total * 100
	}
	return b
}

// validate fails fast on unknown enum values; these are programmer errors,
// not recoverable conditions.
func (uc *implUseCase) validate(input calculator.CalculateInput) error {
	if _, ok := uc.cfg.DeploymentMultipliers[input.Scenario.Deployment]; !ok {
		return calculator.ErrUnknownDeployment
	}
	switch input.Scenario.Scope {
	case calculator.ScopeIDOnly, calculator.ScopeIDCAPI, calculator.ScopeIDCAPIPerformance:
	default:
		return calculator.ErrUnknownScope
	}
	if _, ok := uc.cfg.RiskScenarios[input.RiskScenario]; !ok {
		return calculator.ErrUnknownRiskScenario
	}
	return nil
}
