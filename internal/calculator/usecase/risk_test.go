package usecase

import (
	"testing"

	"roi-srv/internal/calculator"
)

func TestResolveRisk(t *testing.T) {
	uc := newTestUseCase(t)

	t.Run("unknown scenario fails fast", func(t *testing.T) {
		if _, err := uc.resolveRisk("reckless", nil); err != calculator.ErrUnknownRiskScenario {
			t.Errorf("got %v, want ErrUnknownRiskScenario", err)
		}
	})

	t.Run("no overrides returns the scenario bundle", func(t *testing.T) {
		m, err := uc.resolveRisk(calculator.RiskModerate, nil)
		if err != nil {
			t.Fatal(err)
		}
		almostEqual(t, "adoption rate", m.AdoptionRate, 0.75)
		almostEqual(t, "ramp up months", m.RampUpMonths, 9)
	})

	t.Run("table entry is not mutated", func(t *testing.T) {
		rf := &calculator.ReadinessFactors{SalesReadiness: floatPtr(0.1)}
		if _, err := uc.resolveRisk(calculator.RiskModerate, rf); err != nil {
			t.Fatal(err)
		}
		again, _ := uc.resolveRisk(calculator.RiskModerate, nil)
		almostEqual(t, "cpm realization after repeated calls", again.CPMUpliftRealization, 0.80)
	})

	t.Run("sales readiness scales cpm realization and premium factor", func(t *testing.T) {
		m, _ := uc.resolveRisk(calculator.RiskModerate, &calculator.ReadinessFactors{
			SalesReadiness: floatPtr(1.0),
		})
		// 0.4 + 1.0*0.8 = 1.2x up-weight
		almostEqual(t, "cpm realization", m.CPMUpliftRealization, 0.80*1.2)
		almostEqual(t, "premium factor", m.PremiumInventoryFactor, 0.85*1.2)
		almostEqual(t, "sales effectiveness", m.SalesEffectiveness, 0.85*1.0)
	})

	t.Run("buy-in compounds with sales readiness on cpm realization", func(t *testing.T) {
		m, _ := uc.resolveRisk(calculator.RiskModerate, &calculator.ReadinessFactors{
			SalesReadiness:  floatPtr(1.0),
			AdvertiserBuyIn: floatPtr(0.5),
		})
		// Step 1 then step 3, multiplicative onto the running value.
		almostEqual(t, "cpm realization", m.CPMUpliftRealization, 0.80*1.2*(0.5+0.5*0.7))
		almostEqual(t, "capi deployment rate", m.CAPIDeploymentRate, 0.80*0.5)
	})

	t.Run("technical months replace ramp outright", func(t *testing.T) {
		m, _ := uc.resolveRisk(calculator.RiskConservative, &calculator.ReadinessFactors{
			TechnicalDeploymentMonths: floatPtr(4),
		})
		almostEqual(t, "ramp up months", m.RampUpMonths, 4)
	})

	t.Run("low resource availability inflates ramp capped at 18", func(t *testing.T) {
		m, _ := uc.resolveRisk(calculator.RiskConservative, &calculator.ReadinessFactors{
			ResourceAvailability: floatPtr(0.25),
		})
		// 12 * (1 + 0.5) = 18, at the cap
		almostEqual(t, "ramp up months", m.RampUpMonths, 18)
		almostEqual(t, "adoption rate", m.AdoptionRate, 0.60*0.25)

		m, _ = uc.resolveRisk(calculator.RiskConservative, &calculator.ReadinessFactors{
			ResourceAvailability: floatPtr(0.10),
		})
		almostEqual(t, "ramp up months at cap", m.RampUpMonths, 18)
	})

	t.Run("market conditions applied last as global dampener", func(t *testing.T) {
		m, _ := uc.resolveRisk(calculator.RiskModerate, &calculator.ReadinessFactors{
			TrainingGap:      floatPtr(1.0),
			MarketConditions: floatPtr(0.5),
		})
		// Step 2 (0.5 + 1.0*0.6 = 1.1) then step 8.
		almostEqual(t, "addressability efficiency", m.AddressabilityEfficiency, 0.85*1.1*0.5)
		almostEqual(t, "cpm realization", m.CPMUpliftRealization, 0.80*0.5)
		almostEqual(t, "cdp realization", m.CDPSavingsRealization, 0.85*0.5)
	})
}
