package usecase

import "roi-srv/internal/calculator"

// paybackSentinel is reported when the benefit never pays the fee back.
const paybackSentinel = 999

// pricingTiers derives the contract fee tiers plus the CAPI spend/fee
// figures from the category result (zero when CAPI is out of scope).
func (uc *implUseCase) pricingTiers(capi *calculator.CAPIResult) calculator.PricingTiers {
	p := uc.cfg.Pricing

	tiers := calculator.PricingTiers{
		POCFee:                 p.POCFee,
		POCDurationMonths:      p.POCDurationMonths,
		FullContractMonthlyFee: p.FullContractMonthlyFee,
		CAPIServiceFeeRate:     uc.cfg.Benchmarks.CAPIServiceFeeRate,
	}
	if p.POCDurationMonths > 0 {
		tiers.POCMonthlyEquivalent = p.POCFee / float64(p.POCDurationMonths)
	}
	if capi != nil {
		tiers.MonthlyCAPISpend = capi.Details["monthly_eligible_spend"]
		tiers.MonthlyCAPIServiceFees = capi.Details["service_fees"]
		tiers.CAPIServiceFeeRate = capi.Details["service_fee_rate"]
	}
	return tiers
}

// roiAnalysis computes the two-phase ROI from the total monthly benefit.
// CAPI service fees are already netted out of the CAPI uplift; only the
// platform fee is subtracted here.
func roiAnalysis(totalMonthlyBenefit float64, tiers calculator.PricingTiers) calculator.ROIAnalysis {
	return calculator.ROIAnalysis{
		POC:          phaseROI(totalMonthlyBenefit, tiers.POCMonthlyEquivalent, tiers.POCFee),
		FullContract: phaseROI(totalMonthlyBenefit, tiers.FullContractMonthlyFee, tiers.FullContractMonthlyFee),
	}
}

func phaseROI(benefit, monthlyCost, flatFee float64) calculator.PhaseROI {
	roi := calculator.PhaseROI{
		MonthlyCost:   monthlyCost,
		NetMonthlyROI: benefit - monthlyCost,
		NetAnnualROI:  (benefit - monthlyCost) * 12,
		PaybackMonths: paybackSentinel,
	}
	if monthlyCost > 0 && benefit > 0 {
		roi.ROIMultiple = benefit / monthlyCost
	}
	if benefit > 0 {
		roi.PaybackMonths = flatFee / benefit
	}
	return roi
}
