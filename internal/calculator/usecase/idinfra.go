package usecase

import "roi-srv/internal/calculator"

// idInfrastructure computes the identity/addressability base uplift.
//
// Safari share and the addressability baselines are applied as fixed
// benchmark constants, not the aggregator's weighted audience values; the
// business model deliberately prices the Safari opportunity uniformly.
//
// The returned value is pre-risk-adjustment: callers layer the efficiency,
// CDP-realization, and adoption multipliers on top and must not treat this
// output as final.
func (uc *implUseCase) idInfrastructure(
	agg calculator.AggregatedDomains,
	scenario calculator.ScenarioState,
	overrides *calculator.AssumptionOverrides,
) calculator.CategoryResult {
	bm := uc.cfg.Benchmarks

	cpmUplift := bm.CPMUpliftFactor
	cdpRate := bm.CDPCostReductionRate
	baseline := bm.BaselineAddressability
	target := bm.SafariAddressabilityTarget
	if overrides != nil {
		cpmUplift = orDefault(overrides.CPMUpliftFactor, cpmUplift)
		cdpRate = orDefault(overrides.CDPCostReductionRate, cdpRate)
		baseline = orDefault(overrides.BaselineAddressability, baseline)
		target = orDefault(overrides.SafariAddressabilityTarget, target)
	}

	// Newly addressable Safari impressions, split across display/video by
	// the aggregated ratio.
	newlyAddressable := agg.TotalImpressions * bm.SafariShare * target
	newlyAddressableDisplay := newlyAddressable * agg.DisplayShare
	newlyAddressableVideo := newlyAddressable * agg.VideoShare

	incrementalCPMRevenue := (newlyAddressableDisplay/1000*agg.DisplayCPM +
		newlyAddressableVideo/1000*agg.VideoCPM) * cpmUplift

	cdpSavings := bm.CDPBaseMonthlyCost * cdpRate

	dm := uc.cfg.DeploymentMultipliers[scenario.Deployment]
	monthly := (incrementalCPMRevenue + cdpSavings) * dm

	return calculator.CategoryResult{
		MonthlyUplift: monthly,
		AnnualUplift:  monthly * 12,
		Details: map[string]float64{
			"safari_share":                  bm.SafariShare,
			"baseline_addressability":       baseline,
			"current_safari_addressability": bm.CurrentSafariAddressability,
			"safari_addressability_target":  target,
			"newly_addressable_impressions": newlyAddressable,
			"newly_addressable_display":     newlyAddressableDisplay,
			"newly_addressable_video":       newlyAddressableVideo,
			"cpm_uplift_factor":             cpmUplift,
			"incremental_cpm_revenue":       incrementalCPMRevenue,
			"cdp_savings":                   cdpSavings,
			"deployment_multiplier":         dm,
		},
	}
}
