package usecase

import "roi-srv/internal/calculator"

// Ramp-up never stretches past 18 months, however low resource
// availability goes.
const maxRampUpMonths = 18

// resolveRisk returns a copy of the named scenario's multiplier bundle with
// the readiness-factor overrides layered on top.
//
// The eight steps run in a fixed order and every scaling is multiplicative
// onto the running value, not onto the scenario constant, so later steps
// compound with earlier ones. Reordering changes the output.
func (uc *implUseCase) resolveRisk(name calculator.RiskScenario, rf *calculator.ReadinessFactors) (calculator.RiskMultipliers, error) {
	base, ok := uc.cfg.RiskScenarios[name]
	if !ok {
		return calculator.RiskMultipliers{}, calculator.ErrUnknownRiskScenario
	}

	// Copy before adjusting; the table entry is shared configuration.
	m := base

	if rf == nil {
		return m, nil
	}

	// 1. Sales readiness: bounded linear on CPM realization and premium
	// share (0 -> 0.4x, 1 -> 1.2x), direct on sales effectiveness.
	if rf.SalesReadiness != nil {
		scale := 0.4 + *rf.SalesReadiness*0.8
		m.CPMUpliftRealization *= scale
		m.PremiumInventoryFactor *= scale
		m.SalesEffectiveness *= *rf.SalesReadiness
	}

	// 2. Training gaps: adoption and addressability efficiency.
	if rf.TrainingGap != nil {
		scale := 0.5 + *rf.TrainingGap*0.6
		m.AdoptionRate *= scale
		m.AddressabilityEfficiency *= scale
	}

	// 3. Advertiser buy-in: compounds with step 1 on CPM realization,
	// direct on CAPI deployment rate.
	if rf.AdvertiserBuyIn != nil {
		m.CPMUpliftRealization *= 0.5 + *rf.AdvertiserBuyIn*0.7
		m.CAPIDeploymentRate *= *rf.AdvertiserBuyIn
	}

	// 4. Organizational ownership: compounds with step 2 on adoption.
	if rf.OrganizationalOwnership != nil {
		m.AdoptionRate *= *rf.OrganizationalOwnership
	}

	// 5. Technical deployment months replace the ramp outright.
	if rf.TechnicalDeploymentMonths != nil {
		m.RampUpMonths = *rf.TechnicalDeploymentMonths
	}

	// 6. Integration delay: compounds with step 2 on efficiency.
	if rf.IntegrationDelay != nil {
		m.AddressabilityEfficiency *= *rf.IntegrationDelay
	}

	// 7. Resource availability: adoption directly; below 0.75 it also
	// inflates the ramp, capped at 18 months.
	if rf.ResourceAvailability != nil {
		m.AdoptionRate *= *rf.ResourceAvailability
		if *rf.ResourceAvailability < 0.75 {
			m.RampUpMonths *= 1 + (0.75 - *rf.ResourceAvailability)
			if m.RampUpMonths > maxRampUpMonths {
				m.RampUpMonths = maxRampUpMonths
			}
		}
	}

	// 8. Market conditions: global dampener, applied last.
	if rf.MarketConditions != nil {
		m.AddressabilityEfficiency *= *rf.MarketConditions
		m.CPMUpliftRealization *= *rf.MarketConditions
		m.CDPSavingsRealization *= *rf.MarketConditions
	}

	return m, nil
}

// readinessOf extracts the readiness overrides, if any.
func readinessOf(o *calculator.AssumptionOverrides) *calculator.ReadinessFactors {
	if o == nil {
		return nil
	}
	return o.Readiness
}
