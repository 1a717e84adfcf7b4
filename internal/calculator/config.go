package calculator

// Benchmarks holds the industry baseline constants the engine consumes.
// Injected configuration: defaults below, overridable from the YAML file.
// The keys and default values are load-bearing inputs to the formulas and
// must stay stable for output compatibility.
type Benchmarks struct {
	// Addressability baselines. SafariShare and SafariAddressabilityTarget
	// are deliberate business simplifications applied as fixed constants,
	// not derived from the aggregated audience mix.
	SafariShare                 float64 `mapstructure:"safari_share"`
	BaselineAddressability      float64 `mapstructure:"baseline_addressability"`
	CurrentSafariAddressability float64 `mapstructure:"current_safari_addressability"`
	SafariAddressabilityTarget  float64 `mapstructure:"safari_addressability_target"`
	CPMUpliftFactor             float64 `mapstructure:"cpm_uplift_factor"`

	// CDP savings: fixed platform cost reduced by the reduction rate.
	CDPBaseMonthlyCost   float64 `mapstructure:"cdp_base_monthly_cost"`
	CDPCostReductionRate float64 `mapstructure:"cdp_cost_reduction_rate"`

	// CAPI base parameters.
	CAPIBaseYearlyCampaigns   float64   `mapstructure:"capi_base_yearly_campaigns"`
	CAPIBaseAvgCampaignSpend  float64   `mapstructure:"capi_base_avg_campaign_spend"`
	CAPILineItemShare         float64   `mapstructure:"capi_line_item_share"`
	CAPIMatchRateBaseline     float64   `mapstructure:"capi_match_rate_baseline"`
	CAPIMatchRateImproved     float64   `mapstructure:"capi_match_rate_improved"`
	CAPIConversionImprovement float64   `mapstructure:"capi_conversion_improvement"`
	CAPIServiceFeeRate        float64   `mapstructure:"capi_service_fee_rate"`
	CAPIMonthlyFeeCap         float64   `mapstructure:"capi_monthly_fee_cap"`
	CAPILaborSavings          float64   `mapstructure:"capi_labor_savings"`
	CAPINetNewRate            float64   `mapstructure:"capi_net_new_rate"`
	CAPIMaxSpendMultiplier    float64   `mapstructure:"capi_max_spend_multiplier"`
	CAPIRampWeights           []float64 `mapstructure:"capi_ramp_weights"`

	// Media performance baselines.
	PremiumInventoryShare float64 `mapstructure:"premium_inventory_share"`
	PremiumYieldUplift    float64 `mapstructure:"premium_yield_uplift"`
	MakeGoodBaselineRate  float64 `mapstructure:"make_good_baseline_rate"`
	MakeGoodImprovedRate  float64 `mapstructure:"make_good_improved_rate"`
}

// ContractPricing holds the static contract fee tiers.
type ContractPricing struct {
	POCFee                 float64 `mapstructure:"poc_fee"`
	POCDurationMonths      int     `mapstructure:"poc_duration_months"`
	FullContractMonthlyFee float64 `mapstructure:"full_contract_monthly_fee"`
}

// DefaultBenchmarks returns the benchmark constants the product ships with.
func DefaultBenchmarks() Benchmarks {
	return Benchmarks{
		SafariShare:                 0.35,
		BaselineAddressability:      0.65,
		CurrentSafariAddressability: 0.0,
		SafariAddressabilityTarget:  0.20,
		CPMUpliftFactor:             0.25,

		CDPBaseMonthlyCost:   25000,
		CDPCostReductionRate: 0.30,

		CAPIBaseYearlyCampaigns:   24,
		CAPIBaseAvgCampaignSpend:  45000,
		CAPILineItemShare:         0.65,
		CAPIMatchRateBaseline:     0.40,
		CAPIMatchRateImproved:     0.80,
		CAPIConversionImprovement: 0.40,
		CAPIServiceFeeRate:        0.125,
		CAPIMonthlyFeeCap:         30000,
		CAPILaborSavings:          2500,
		CAPINetNewRate:            0.80,
		CAPIMaxSpendMultiplier:    1.2,
		// Twelve monthly ramp weights, summing to 1.0. The first three
		// cover the POC phase.
		CAPIRampWeights: []float64{0.02, 0.04, 0.06, 0.08, 0.09, 0.09, 0.10, 0.10, 0.10, 0.10, 0.11, 0.11},

		PremiumInventoryShare: 0.30,
		PremiumYieldUplift:    0.25,
		MakeGoodBaselineRate:  0.05,
		MakeGoodImprovedRate:  0.02,
	}
}

// DefaultContractPricing returns the shipped contract pricing.
func DefaultContractPricing() ContractPricing {
	return ContractPricing{
		POCFee:                 25000,
		POCDurationMonths:      3,
		FullContractMonthlyFee: 15000,
	}
}

// DefaultDeploymentMultipliers returns the breadth multipliers
// (single < multi < full-network).
func DefaultDeploymentMultipliers() map[Deployment]float64 {
	return map[Deployment]float64{
		DeploymentSingle:      1.0,
		DeploymentMulti:       1.6,
		DeploymentFullNetwork: 2.5,
	}
}

// DefaultRiskScenarios returns the risk-scenario multiplier table.
// Entries are read-only; ResolveRisk hands out copies.
func DefaultRiskScenarios() map[RiskScenario]RiskMultipliers {
	return map[RiskScenario]RiskMultipliers{
		RiskConservative: {
			RampUpMonths:             12,
			AdoptionRate:             0.60,
			AddressabilityEfficiency: 0.70,
			CPMUpliftRealization:     0.65,
			PremiumInventoryFactor:   0.70,
			SalesEffectiveness:       0.70,
			CAPIDeploymentRate:       0.60,
			CDPSavingsRealization:    0.70,
			DefaultReadiness: ReadinessDefaults{
				SalesReadiness:   0.40,
				TrainingGap:      0.40,
				AdvertiserBuyIn:  0.40,
				MarketConditions: 0.40,
			},
		},
		RiskModerate: {
			RampUpMonths:             9,
			AdoptionRate:             0.75,
			AddressabilityEfficiency: 0.85,
			CPMUpliftRealization:     0.80,
			PremiumInventoryFactor:   0.85,
			SalesEffectiveness:       0.85,
			CAPIDeploymentRate:       0.80,
			CDPSavingsRealization:    0.85,
			DefaultReadiness: ReadinessDefaults{
				SalesReadiness:   0.60,
				TrainingGap:      0.60,
				AdvertiserBuyIn:  0.60,
				MarketConditions: 0.60,
			},
		},
		RiskOptimistic: {
			RampUpMonths:             6,
			AdoptionRate:             0.90,
			AddressabilityEfficiency: 0.95,
			CPMUpliftRealization:     0.95,
			PremiumInventoryFactor:   0.95,
			SalesEffectiveness:       0.95,
			CAPIDeploymentRate:       0.95,
			CDPSavingsRealization:    0.95,
			DefaultReadiness: ReadinessDefaults{
				SalesReadiness:   0.80,
				TrainingGap:      0.80,
				AdvertiserBuyIn:  0.80,
				MarketConditions: 0.80,
			},
		},
	}
}
