package usecase

import (
	"math"

	"roi-srv/internal/calculator"
)

const pocRampMonths = 3

// capiVolumeSource is the tagged manual/auto branch for deriving campaign
// volume. Branch selection is by presence of the override fields, not their
// value: a supplied zero is still manual.
type capiVolumeSource struct {
	tag           calculator.CapiVolumeSource
	campaignCount *int     // manual
	campaignSpend *float64 // manual
	readiness     capiReadiness
}

type capiReadiness struct {
	sales    float64
	training float64
	buyIn    float64
	market   float64
}

// capiVolumeSourceOf picks the branch: manual when the caller supplied a
// campaign count or spend (overrides win over inputs), otherwise
// auto-derived from readiness factors with scenario defaults filling gaps.
func capiVolumeSourceOf(
	in calculator.Inputs,
	overrides *calculator.AssumptionOverrides,
	defaults calculator.ReadinessDefaults,
) capiVolumeSource {
	count := in.CAPICampaignCount
	spend := in.CAPIAvgCampaignSpend
	if overrides != nil {
		if overrides.CAPICampaignCount != nil {
			count = overrides.CAPICampaignCount
		}
		if overrides.CAPIAvgCampaignSpend != nil {
			spend = overrides.CAPIAvgCampaignSpend
		}
	}
	if count != nil || spend != nil {
		return capiVolumeSource{
			tag:           calculator.CapiVolumeManual,
			campaignCount: count,
			campaignSpend: spend,
		}
	}

	r := capiReadiness{
		sales:    defaults.SalesReadiness,
		training: defaults.TrainingGap,
		buyIn:    defaults.AdvertiserBuyIn,
		market:   defaults.MarketConditions,
	}
	if rf := readinessOf(overrides); rf != nil {
		r.sales = orDefault(rf.SalesReadiness, r.sales)
		r.training = orDefault(rf.TrainingGap, r.training)
		r.buyIn = orDefault(rf.AdvertiserBuyIn, r.buyIn)
		r.market = orDefault(rf.MarketConditions, r.market)
	}
	return capiVolumeSource{tag: calculator.CapiVolumeAutoDerived, readiness: r}
}

// deriveCapiConfiguration turns the volume source into a campaign plan.
func (uc *implUseCase) deriveCapiConfiguration(src capiVolumeSource) calculator.CapiConfiguration {
	bm := uc.cfg.Benchmarks

	cfg := calculator.CapiConfiguration{Source: src.tag}

	switch src.tag {
	case calculator.CapiVolumeManual:
		// Manual values are taken as-is; no readiness adjustment.
		yearly := bm.CAPIBaseYearlyCampaigns
		if src.campaignCount != nil {
			yearly = float64(*src.campaignCount)
		}
		cfg.YearlyCampaigns = int(yearly)
		cfg.AvgCampaignSpend = orDefault(src.campaignSpend, bm.CAPIBaseAvgCampaignSpend)
		cfg.VolumeMultiplier = 1
		cfg.SpendMultiplier = 1

	default:
		r := src.readiness
		salesMult := clamp(0.7+(r.sales-0.5)*1.5, 0.5, 1.5)
		trainingMult := clamp(0.8+(r.training-0.5)*1.0, 0.6, 1.3)
		buyInMult := clamp(0.7+(r.buyIn-0.5)*1.2, 0.5, 1.3)

		// The product is clamped into a global band, compressing variance
		// versus the old step-function design.
		cfg.VolumeMultiplier = clamp(salesMult*trainingMult*buyInMult, 0.7, 1.4)

		spendMult := clamp(0.7+(r.market-0.5)*1.0, 0.6, 1.2)
		if spendMult > bm.CAPIMaxSpendMultiplier {
			spendMult = bm.CAPIMaxSpendMultiplier
		}
		cfg.SpendMultiplier = spendMult

		cfg.YearlyCampaigns = int(math.Round(bm.CAPIBaseYearlyCampaigns * cfg.VolumeMultiplier))
		if cfg.YearlyCampaigns < 2 {
			cfg.YearlyCampaigns = 2
		}
		cfg.AvgCampaignSpend = math.Round(bm.CAPIBaseAvgCampaignSpend * cfg.SpendMultiplier)
	}

	cfg.MonthlyDistribution = make([]float64, len(bm.CAPIRampWeights))
	var pocWeight float64
	for i, w := range bm.CAPIRampWeights {
		cfg.MonthlyDistribution[i] = float64(cfg.YearlyCampaigns) * w
		if i < pocRampMonths {
			pocWeight += w
		}
	}
	cfg.POCCampaigns = float64(cfg.YearlyCampaigns) * pocWeight

	return cfg
}

// capiCapability computes the campaign-tracking base uplift.
//
// Fee rule: the service fee is the revenue-share rate applied to the
// incremental conversion revenue, capped by a single aggregated monthly cap
// (not per campaign). Returns the pre-risk-adjustment value.
func (uc *implUseCase) capiCapability(
	in calculator.Inputs,
	scenario calculator.ScenarioState,
	riskName calculator.RiskScenario,
	overrides *calculator.AssumptionOverrides,
) calculator.CAPIResult {
	bm := uc.cfg.Benchmarks

	// The scenario name, not the mutated bundle, keys the default-readiness
	// lookup for the auto-derived path.
	defaults := uc.cfg.RiskScenarios[riskName].DefaultReadiness
	capiCfg := uc.deriveCapiConfiguration(capiVolumeSourceOf(in, overrides, defaults))

	matchImprovement := bm.CAPIMatchRateImproved / bm.CAPIMatchRateBaseline
	feeRate := bm.CAPIServiceFeeRate
	lineItemShare := bm.CAPILineItemShare
	if in.CAPILineItemShare != nil {
		lineItemShare = *in.CAPILineItemShare
	}
	if overrides != nil {
		if overrides.CAPIMatchRate != nil {
			matchImprovement = *overrides.CAPIMatchRate / bm.CAPIMatchRateBaseline
		}
		feeRate = orDefault(overrides.CAPIServiceFeeRate, feeRate)
		lineItemShare = orDefault(overrides.CAPILineItemShare, lineItemShare)
	}

	monthlyEligibleSpend := float64(capiCfg.YearlyCampaigns) / 12 *
		capiCfg.AvgCampaignSpend * lineItemShare

	conversionTrackingRevenue := monthlyEligibleSpend * bm.CAPIConversionImprovement

	serviceFees := conversionTrackingRevenue * feeRate
	if serviceFees > bm.CAPIMonthlyFeeCap {
		serviceFees = bm.CAPIMonthlyFeeCap
	}

	dm := uc.cfg.DeploymentMultipliers[scenario.Deployment]
	monthly := (conversionTrackingRevenue + bm.CAPILaborSavings - serviceFees) * dm

	return calculator.CAPIResult{
		CategoryResult: calculator.CategoryResult{
			MonthlyUplift: monthly,
			AnnualUplift:  monthly * 12,
			Details: map[string]float64{
				"match_rate_improvement":      matchImprovement,
				"line_item_share":             lineItemShare,
				"monthly_eligible_spend":      monthlyEligibleSpend,
				"conversion_improvement":      bm.CAPIConversionImprovement,
				"conversion_tracking_revenue": conversionTrackingRevenue,
				"service_fee_rate":            feeRate,
				"service_fees":                serviceFees,
				"labor_savings":               bm.CAPILaborSavings,
				"deployment_multiplier":       dm,
			},
		},
		CapiConfiguration: capiCfg,
		// Reporting only; never folded into the uplift total.
		NetNewCampaignRevenue: conversionTrackingRevenue * bm.CAPINetNewRate,
	}
}
