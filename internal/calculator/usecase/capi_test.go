package usecase

import (
	"testing"

	"roi-srv/internal/calculator"
)

func TestCapiVolumeSource(t *testing.T) {
	defaults := calculator.ReadinessDefaults{
		SalesReadiness: 0.6, TrainingGap: 0.6, AdvertiserBuyIn: 0.6, MarketConditions: 0.6,
	}

	t.Run("manual when count supplied", func(t *testing.T) {
		src := capiVolumeSourceOf(calculator.Inputs{CAPICampaignCount: intPtr(10)}, nil, defaults)
		if src.tag != calculator.CapiVolumeManual {
			t.Errorf("got %s, want manual", src.tag)
		}
	})

	t.Run("a supplied zero is still manual", func(t *testing.T) {
		src := capiVolumeSourceOf(calculator.Inputs{CAPIAvgCampaignSpend: floatPtr(0)}, nil, defaults)
		if src.tag != calculator.CapiVolumeManual {
			t.Errorf("got %s, want manual", src.tag)
		}
	})

	t.Run("override count wins over input count", func(t *testing.T) {
		src := capiVolumeSourceOf(
			calculator.Inputs{CAPICampaignCount: intPtr(10)},
			&calculator.AssumptionOverrides{CAPICampaignCount: intPtr(30)},
			defaults,
		)
		if *src.campaignCount != 30 {
			t.Errorf("got %d, want 30", *src.campaignCount)
		}
	})

	t.Run("auto-derived otherwise", func(t *testing.T) {
		src := capiVolumeSourceOf(calculator.Inputs{}, nil, defaults)
		if src.tag != calculator.CapiVolumeAutoDerived {
			t.Errorf("got %s, want auto-derived", src.tag)
		}
		almostEqual(t, "default sales readiness", src.readiness.sales, 0.6)
	})
}

func TestDeriveCapiConfiguration(t *testing.T) {
	uc := newTestUseCase(t)

	t.Run("manual path uses values directly", func(t *testing.T) {
		cfg := uc.deriveCapiConfiguration(capiVolumeSource{
			tag:           calculator.CapiVolumeManual,
			campaignCount: intPtr(36),
			campaignSpend: floatPtr(60000),
		})
		if cfg.YearlyCampaigns != 36 {
			t.Errorf("yearly campaigns: got %d, want 36", cfg.YearlyCampaigns)
		}
		almostEqual(t, "avg spend", cfg.AvgCampaignSpend, 60000)
		// POC phase = yearly count x sum of the first three ramp weights
		almostEqual(t, "poc campaigns", cfg.POCCampaigns, 36*0.12)
		if len(cfg.MonthlyDistribution) != 12 {
			t.Fatalf("monthly distribution length: got %d, want 12", len(cfg.MonthlyDistribution))
		}
		almostEqual(t, "first month distribution", cfg.MonthlyDistribution[0], 36*0.02)
	})

	t.Run("volume multiplier bounded for extreme readiness", func(t *testing.T) {
		for _, r := range []float64{0, 0.1, 0.5, 0.9, 1.0} {
			cfg := uc.deriveCapiConfiguration(capiVolumeSource{
				tag:       calculator.CapiVolumeAutoDerived,
				readiness: capiReadiness{sales: r, training: r, buyIn: r, market: r},
			})
			if cfg.VolumeMultiplier < 0.7 || cfg.VolumeMultiplier > 1.4 {
				t.Errorf("readiness %.1f: volume multiplier %.3f outside [0.7, 1.4]", r, cfg.VolumeMultiplier)
			}
			if cfg.SpendMultiplier < 0.6 || cfg.SpendMultiplier > 1.2 {
				t.Errorf("readiness %.1f: spend multiplier %.3f outside [0.6, 1.2]", r, cfg.SpendMultiplier)
			}
			if cfg.YearlyCampaigns < 2 {
				t.Errorf("readiness %.1f: yearly campaigns %d below floor", r, cfg.YearlyCampaigns)
			}
		}
	})

	t.Run("neutral readiness keeps base volume", func(t *testing.T) {
		cfg := uc.deriveCapiConfiguration(capiVolumeSource{
			tag:       calculator.CapiVolumeAutoDerived,
			readiness: capiReadiness{sales: 0.5, training: 0.5, buyIn: 0.5, market: 0.5},
		})
		// 0.7 * 0.8 * 0.7 = 0.392, clamped up to the 0.7 floor
		almostEqual(t, "volume multiplier", cfg.VolumeMultiplier, 0.7)
		if cfg.YearlyCampaigns != 17 {
			t.Errorf("yearly campaigns: got %d, want 17", cfg.YearlyCampaigns)
		}
	})
}

func TestCapiCapabilityFeeCap(t *testing.T) {
	uc := newTestUseCase(t)

	// $1M of monthly CAPI-eligible spend: 240 campaigns/yr at $50k, all
	// line items eligible.
	in := calculator.Inputs{
		SelectedPropertyIDs:  []string{"news-site"},
		CAPICampaignCount:    intPtr(240),
		CAPIAvgCampaignSpend: floatPtr(50000),
		CAPILineItemShare:    floatPtr(1.0),
	}
	scenario := calculator.ScenarioState{
		Deployment: calculator.DeploymentSingle,
		Scope:      calculator.ScopeIDCAPI,
	}

	res := uc.capiCapability(in, scenario, calculator.RiskModerate, nil)

	almostEqual(t, "monthly eligible spend", res.Details["monthly_eligible_spend"], 1_000_000)
	// 40% incremental conversion revenue
	almostEqual(t, "conversion tracking revenue", res.Details["conversion_tracking_revenue"], 400_000)
	// Uncapped 12.5% fee would be $50k; the $30k monthly cap applies.
	almostEqual(t, "service fees", res.Details["service_fees"], 30_000)
	// Publisher nets $370k plus labor savings.
	almostEqual(t, "monthly uplift", res.MonthlyUplift, 400_000+2500-30_000)
	almostEqual(t, "net new campaign revenue", res.NetNewCampaignRevenue, 320_000)
}

func TestCapiCapabilityOverrides(t *testing.T) {
	uc := newTestUseCase(t)

	in := calculator.Inputs{
		CAPICampaignCount:    intPtr(24),
		CAPIAvgCampaignSpend: floatPtr(45000),
	}
	scenario := calculator.ScenarioState{
		Deployment: calculator.DeploymentSingle,
		Scope:      calculator.ScopeIDCAPI,
	}

	base := uc.capiCapability(in, scenario, calculator.RiskModerate, nil)

	t.Run("lower service fee raises uplift", func(t *testing.T) {
		cheaper := uc.capiCapability(in, scenario, calculator.RiskModerate,
			&calculator.AssumptionOverrides{CAPIServiceFeeRate: floatPtr(0.05)})
		if cheaper.MonthlyUplift <= base.MonthlyUplift {
			t.Errorf("expected uplift to rise: %.2f -> %.2f", base.MonthlyUplift, cheaper.MonthlyUplift)
		}
	})

	t.Run("more campaigns raise uplift", func(t *testing.T) {
		bigger := uc.capiCapability(in, scenario, calculator.RiskModerate,
			&calculator.AssumptionOverrides{CAPICampaignCount: intPtr(48)})
		if bigger.MonthlyUplift <= base.MonthlyUplift {
			t.Errorf("expected uplift to rise: %.2f -> %.2f", base.MonthlyUplift, bigger.MonthlyUplift)
		}
	})

	t.Run("match rate override carried in details", func(t *testing.T) {
		res := uc.capiCapability(in, scenario, calculator.RiskModerate,
			&calculator.AssumptionOverrides{CAPIMatchRate: floatPtr(0.60)})
		almostEqual(t, "match rate improvement", res.Details["match_rate_improvement"], 0.60/0.40)
	})
}
