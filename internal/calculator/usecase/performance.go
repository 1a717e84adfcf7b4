package usecase

import "roi-srv/internal/calculator"

// mediaPerformance computes the yield/performance base uplift: premium
// inventory pricing power plus make-good savings on all revenue. Returns
// the pre-risk-adjustment value.
func (uc *implUseCase) mediaPerformance(
	agg calculator.AggregatedDomains,
	scenario calculator.ScenarioState,
	currentMonthlyRevenue float64,
	overrides *calculator.AssumptionOverrides,
) calculator.CategoryResult {
	bm := uc.cfg.Benchmarks

	premiumShare := bm.PremiumInventoryShare
	yieldUplift := bm.PremiumYieldUplift
	if overrides != nil {
		premiumShare = orDefault(overrides.PremiumInventoryShare, premiumShare)
		yieldUplift = orDefault(overrides.PremiumYieldUplift, yieldUplift)
	}

	premiumDisplayRevenue := agg.DisplayImpressions * premiumShare / 1000 * agg.DisplayCPM
	premiumVideoRevenue := agg.VideoImpressions * premiumShare / 1000 * agg.VideoCPM
	premiumPricingPower := (premiumDisplayRevenue + premiumVideoRevenue) * yieldUplift

	// Make-good savings apply to all revenue, not just the premium share.
	makeGoodSavings := currentMonthlyRevenue * (bm.MakeGoodBaselineRate - bm.MakeGoodImprovedRate)

	dm := uc.cfg.DeploymentMultipliers[scenario.Deployment]
	monthly := (premiumPricingPower + makeGoodSavings) * dm

	// ROAS improvement is display-only and informational.
	var roasImprovementPercent float64
	if displayRevenue := agg.DisplayImpressions / 1000 * agg.DisplayCPM; displayRevenue > 0 {
		roasImprovementPercent = premiumDisplayRevenue * yieldUplift / displayRevenue * 100
	}

	return calculator.CategoryResult{
		MonthlyUplift: monthly,
		AnnualUplift:  monthly * 12,
		Details: map[string]float64{
			"premium_inventory_share":  premiumShare,
			"premium_yield_uplift":     yieldUplift,
			"premium_pricing_power":    premiumPricingPower,
			"make_good_baseline_rate":  bm.MakeGoodBaselineRate,
			"make_good_improved_rate":  bm.MakeGoodImprovedRate,
			"make_good_savings":        makeGoodSavings,
			"roas_improvement_percent": roasImprovementPercent,
			"deployment_multiplier":    dm,
		},
	}
}
