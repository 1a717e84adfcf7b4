package calculator

import "roi-srv/internal/model"

// Deployment is the breadth of the rollout across the publisher's portfolio.
type Deployment string

const (
	DeploymentSingle      Deployment = "single"
	DeploymentMulti       Deployment = "multi"
	DeploymentFullNetwork Deployment = "full-network"
)

// Scope is the capability scope of the engagement. The enumeration is
// nested: performance requires CAPI, CAPI requires identity.
type Scope string

const (
	ScopeIDOnly            Scope = "id-only"
	ScopeIDCAPI            Scope = "id-capi"
	ScopeIDCAPIPerformance Scope = "id-capi-performance"
)

// IncludesCAPI reports whether the CAPI category is in scope.
func (s Scope) IncludesCAPI() bool {
	return s == ScopeIDCAPI || s == ScopeIDCAPIPerformance
}

// IncludesPerformance reports whether the media-performance category is in scope.
func (s Scope) IncludesPerformance() bool {
	return s == ScopeIDCAPIPerformance
}

// ScenarioState selects deployment breadth and capability scope.
type ScenarioState struct {
	Deployment Deployment `json:"deployment"`
	Scope      Scope      `json:"scope"`
}

// RiskScenario names a multiplier bundle from the risk table.
type RiskScenario string

const (
	RiskConservative RiskScenario = "conservative"
	RiskModerate     RiskScenario = "moderate"
	RiskOptimistic   RiskScenario = "optimistic"
)

// ReadinessDefaults holds the scenario's default readiness factors, used
// only when the CAPI volume is auto-derived and the caller supplied no
// readiness overrides.
type ReadinessDefaults struct {
	SalesReadiness   float64 `json:"sales_readiness" mapstructure:"sales_readiness"`
	TrainingGap      float64 `json:"training_gap" mapstructure:"training_gap"`
	AdvertiserBuyIn  float64 `json:"advertiser_buy_in" mapstructure:"advertiser_buy_in"`
	MarketConditions float64 `json:"market_conditions" mapstructure:"market_conditions"`
}

// RiskMultipliers is a risk scenario's multiplier bundle. Resolved copies
// are mutated by readiness overrides; the table entries themselves are
// read-only configuration.
type RiskMultipliers struct {
	RampUpMonths             float64           `json:"ramp_up_months" mapstructure:"ramp_up_months"`
	AdoptionRate             float64           `json:"adoption_rate" mapstructure:"adoption_rate"`
	AddressabilityEfficiency float64           `json:"addressability_efficiency" mapstructure:"addressability_efficiency"`
	CPMUpliftRealization     float64           `json:"cpm_uplift_realization" mapstructure:"cpm_uplift_realization"`
	PremiumInventoryFactor   float64           `json:"premium_inventory_factor" mapstructure:"premium_inventory_factor"`
	SalesEffectiveness       float64           `json:"sales_effectiveness" mapstructure:"sales_effectiveness"`
	CAPIDeploymentRate       float64           `json:"capi_deployment_rate" mapstructure:"capi_deployment_rate"`
	CDPSavingsRealization    float64           `json:"cdp_savings_realization" mapstructure:"cdp_savings_realization"`
	DefaultReadiness         ReadinessDefaults `json:"default_readiness" mapstructure:"default_readiness"`
}

// ReadinessFactors are optional organizational-execution overrides layered
// onto the resolved risk bundle. Nil fields fall back to scenario defaults.
type ReadinessFactors struct {
	SalesReadiness            *float64 `json:"sales_readiness,omitempty"`
	TechnicalDeploymentMonths *float64 `json:"technical_deployment_months,omitempty"`
	AdvertiserBuyIn           *float64 `json:"advertiser_buy_in,omitempty"`
	OrganizationalOwnership   *float64 `json:"organizational_ownership,omitempty"`
	MarketConditions          *float64 `json:"market_conditions,omitempty"`
	TrainingGap               *float64 `json:"training_gap,omitempty"`
	IntegrationDelay          *float64 `json:"integration_delay,omitempty"`
	ResourceAvailability      *float64 `json:"resource_availability,omitempty"`
}

// AssumptionOverrides is a sparse record of manual overrides. A present
// (non-nil) value always wins over the scenario/benchmark default at the
// point it is consumed; absent fields fall back to benchmarks, never zero.
type AssumptionOverrides struct {
	BaselineAddressability     *float64          `json:"baseline_addressability,omitempty"`
	SafariAddressabilityTarget *float64          `json:"safari_addressability_target,omitempty"`
	CPMUpliftFactor            *float64          `json:"cpm_uplift_factor,omitempty"`
	CDPCostReductionRate       *float64          `json:"cdp_cost_reduction_rate,omitempty"`
	CAPIServiceFeeRate         *float64          `json:"capi_service_fee_rate,omitempty"`
	CAPIMatchRate              *float64          `json:"capi_match_rate,omitempty"`
	PremiumInventoryShare      *float64          `json:"premium_inventory_share,omitempty"`
	PremiumYieldUplift         *float64          `json:"premium_yield_uplift,omitempty"`
	CAPICampaignCount          *int              `json:"capi_campaign_count,omitempty"`
	CAPIAvgCampaignSpend       *float64          `json:"capi_avg_campaign_spend,omitempty"`
	CAPILineItemShare          *float64          `json:"capi_line_item_share,omitempty"`
	Readiness                  *ReadinessFactors `json:"readiness,omitempty"`
}

// Inputs is the user-editable configuration snapshot passed into every
// calculation. Never mutated by the engine.
type Inputs struct {
	SelectedPropertyIDs  []string           `json:"selected_property_ids"`
	DisplayCPM           *float64           `json:"display_cpm,omitempty"`
	VideoCPM             *float64           `json:"video_cpm,omitempty"`
	CAPICampaignCount    *int               `json:"capi_campaign_count,omitempty"`
	CAPIAvgCampaignSpend *float64           `json:"capi_avg_campaign_spend,omitempty"`
	CAPILineItemShare    *float64           `json:"capi_line_item_share,omitempty"`
	PageviewOverrides    map[string]float64 `json:"pageview_overrides,omitempty"`
	SafariShareOverrides map[string]float64 `json:"safari_share_overrides,omitempty"`
}

// CalculateInput bundles everything the engine entry point needs.
type CalculateInput struct {
	Inputs       Inputs               `json:"inputs"`
	Scenario     ScenarioState        `json:"scenario"`
	RiskScenario RiskScenario         `json:"risk_scenario"`
	Overrides    *AssumptionOverrides `json:"overrides,omitempty"`
}

// AggregatedDomains is the weighted roll-up of the selected properties.
type AggregatedDomains struct {
	TotalPageviews     float64 `json:"total_pageviews"`
	TotalImpressions   float64 `json:"total_impressions"`
	DisplayCPM         float64 `json:"display_cpm"`
	VideoCPM           float64 `json:"video_cpm"`
	DisplayShare       float64 `json:"display_share"`
	VideoShare         float64 `json:"video_share"`
	DisplayImpressions float64 `json:"display_impressions"`
	VideoImpressions   float64 `json:"video_impressions"`
	SafariShare        float64 `json:"safari_share"`
	PropertyCount      int     `json:"property_count"`
}

// CategoryResult is one category's computed uplift. MonthlyUplift is the
// final adopted value; Details carries the named intermediates (base,
// risk-adjusted, components) for display and audit.
type CategoryResult struct {
	MonthlyUplift float64            `json:"monthly_uplift"`
	AnnualUplift  float64            `json:"annual_uplift"`
	Details       map[string]float64 `json:"details"`
}

// CapiVolumeSource tags how the CAPI campaign volume was derived.
type CapiVolumeSource string

const (
	CapiVolumeManual      CapiVolumeSource = "manual"
	CapiVolumeAutoDerived CapiVolumeSource = "auto-derived"
)

// CapiConfiguration is the derived CAPI campaign plan.
type CapiConfiguration struct {
	Source              CapiVolumeSource `json:"source"`
	YearlyCampaigns     int              `json:"yearly_campaigns"`
	AvgCampaignSpend    float64          `json:"avg_campaign_spend"`
	POCCampaigns        float64          `json:"poc_campaigns"`
	MonthlyDistribution []float64        `json:"monthly_distribution"`
	VolumeMultiplier    float64          `json:"volume_multiplier"`
	SpendMultiplier     float64          `json:"spend_multiplier"`
}

// CAPIResult extends CategoryResult with the campaign configuration and the
// informational net-new revenue figure (not part of the uplift total).
type CAPIResult struct {
	CategoryResult
	CapiConfiguration     CapiConfiguration `json:"capi_configuration"`
	NetNewCampaignRevenue float64           `json:"net_new_campaign_revenue"`
}

// Totals is the summed uplift block.
type Totals struct {
	CurrentMonthlyRevenue float64 `json:"current_monthly_revenue"`
	MonthlyUplift         float64 `json:"monthly_uplift"`
	AnnualUplift          float64 `json:"annual_uplift"`
	ThreeYearUplift       float64 `json:"three_year_uplift"`
	PercentImprovement    float64 `json:"percent_improvement"`
}

// BreakdownPercents is each category's share of the adopted uplift.
type BreakdownPercents struct {
	IDInfrastructurePercent float64 `json:"id_infrastructure_percent"`
	CAPIPercent             float64 `json:"capi_percent"`
	PerformancePercent      float64 `json:"performance_percent"`
}

// PricingTiers carries the contract fee tiers and derived CAPI fee figures.
type PricingTiers struct {
	POCFee                 float64 `json:"poc_fee"`
	POCDurationMonths      int     `json:"poc_duration_months"`
	POCMonthlyEquivalent   float64 `json:"poc_monthly_equivalent"`
	FullContractMonthlyFee float64 `json:"full_contract_monthly_fee"`
	CAPIServiceFeeRate     float64 `json:"capi_service_fee_rate"`
	MonthlyCAPISpend       float64 `json:"monthly_capi_spend"`
	MonthlyCAPIServiceFees float64 `json:"monthly_capi_service_fees"`
}

// PhaseROI is the ROI view for one cost phase. CAPI service fees are
// already netted out of the CAPI uplift, so only the platform fee is
// subtracted here.
type PhaseROI struct {
	MonthlyCost   float64 `json:"monthly_cost"`
	NetMonthlyROI float64 `json:"net_monthly_roi"`
	NetAnnualROI  float64 `json:"net_annual_roi"`
	ROIMultiple   float64 `json:"roi_multiple"`
	PaybackMonths float64 `json:"payback_months"`
}

// ROIAnalysis covers the POC and full-contract phases.
type ROIAnalysis struct {
	POC          PhaseROI `json:"poc"`
	FullContract PhaseROI `json:"full_contract"`
}

// RiskComparison reports the optimistic-unadjusted total next to the
// risk-adjusted one.
type RiskComparison struct {
	UnadjustedMonthlyUplift float64 `json:"unadjusted_monthly_uplift"`
	AdjustmentPercent       float64 `json:"adjustment_percent"`
}

// UnifiedResults is the immutable output of one engine run. Constructed
// fresh per Calculate call, read-only thereafter.
type UnifiedResults struct {
	Scenario     ScenarioState        `json:"scenario"`
	RiskScenario RiskScenario         `json:"risk_scenario"`
	Inputs       Inputs               `json:"inputs"`
	Overrides    *AssumptionOverrides `json:"overrides,omitempty"`

	Aggregated AggregatedDomains `json:"aggregated"`
	Risk       RiskMultipliers   `json:"risk"`

	IDInfrastructure CategoryResult  `json:"id_infrastructure"`
	CAPICapabilities *CAPIResult     `json:"capi_capabilities,omitempty"`
	MediaPerformance *CategoryResult `json:"media_performance,omitempty"`

	Totals         Totals            `json:"totals"`
	Breakdown      BreakdownPercents `json:"breakdown"`
	Pricing        PricingTiers      `json:"pricing"`
	ROIAnalysis    ROIAnalysis       `json:"roi_analysis"`
	RiskComparison RiskComparison    `json:"risk_comparison"`
}

// MonthlyProjection is one month of the ramp-up series. ROIMultiple and
// NetROI are populated only in the 12-month variant.
type MonthlyProjection struct {
	Month            int     `json:"month"`
	RampFactor       float64 `json:"ramp_factor"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	Uplift           float64 `json:"uplift"`
	ROIMultiple      float64 `json:"roi_multiple,omitempty"`
	NetROI           float64 `json:"net_roi,omitempty"`
}

// Catalog resolves property IDs against the static catalog.
type Catalog struct {
	Properties []model.Property
	byID       map[string]model.Property
}

// NewCatalog builds a Catalog with its lookup index.
func NewCatalog(properties []model.Property) Catalog {
	byID := make(map[string]model.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}
	return Catalog{Properties: properties, byID: byID}
}

// Lookup returns the property for id, if known.
func (c Catalog) Lookup(id string) (model.Property, bool) {
	p, ok := c.byID[id]
	return p, ok
}
