package usecase

import (
	"fmt"
	"strings"
	"time"

	"roi-srv/internal/calculator"
)

const paybackSentinel = 999

func buildSubtitle(preparedFor, preparedBy string, t time.Time) string {
	parts := []string{}
	if preparedFor != "" {
		parts = append(parts, "Prepared for "+preparedFor)
	}
	if preparedBy != "" {
		parts = append(parts, "by "+preparedBy)
	}
	parts = append(parts, t.Format("January 2, 2006"))
	return strings.Join(parts, " · ")
}

func buildBadges(res *calculator.UnifiedResults) []string {
	return []string{
		titleCase(string(res.RiskScenario)) + " Scenario",
		scopeLabel(res.Scenario.Scope),
		deploymentLabel(res.Scenario.Deployment),
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func scopeLabel(s calculator.Scope) string {
	switch s {
	case calculator.ScopeIDOnly:
		return "ID Infrastructure"
	case calculator.ScopeIDCAPI:
		return "ID + CAPI"
	case calculator.ScopeIDCAPIPerformance:
		return "ID + CAPI + Performance"
	}
	return string(s)
}

func deploymentLabel(d calculator.Deployment) string {
	switch d {
	case calculator.DeploymentSingle:
		return "Single Property"
	case calculator.DeploymentMulti:
		return "Multi Property"
	case calculator.DeploymentFullNetwork:
		return "Full Network"
	}
	return string(d)
}

// buildMarkdown assembles the proposal body from one engine run plus its
// 12-month projection.
func buildMarkdown(res *calculator.UnifiedResults, projection []calculator.MonthlyProjection) string {
	var b strings.Builder

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "The modeled portfolio currently generates %s in monthly ad revenue. ", money(res.Totals.CurrentMonthlyRevenue))
	fmt.Fprintf(&b, "Under the %s scenario we estimate an incremental **%s per month** (%s annually), a %s improvement over the current baseline.\n\n",
		res.RiskScenario, money(res.Totals.MonthlyUplift), money(res.Totals.AnnualUplift), pct(res.Totals.PercentImprovement))
	fmt.Fprintf(&b, "Over a three-year horizon the cumulative uplift reaches %s.\n\n", money(res.Totals.ThreeYearUplift))

	b.WriteString("## Portfolio Profile\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Properties | %d |\n", res.Aggregated.PropertyCount)
	fmt.Fprintf(&b, "| Monthly pageviews | %s |\n", number(res.Aggregated.TotalPageviews))
	fmt.Fprintf(&b, "| Monthly impressions | %s |\n", number(res.Aggregated.TotalImpressions))
	fmt.Fprintf(&b, "| Display CPM | $%.2f |\n", res.Aggregated.DisplayCPM)
	fmt.Fprintf(&b, "| Video CPM | $%.2f |\n", res.Aggregated.VideoCPM)
	fmt.Fprintf(&b, "| Display share | %s |\n", pct(res.Aggregated.DisplayShare*100))
	fmt.Fprintf(&b, "| Safari / iOS share | %s |\n\n", pct(res.Aggregated.SafariShare*100))

	b.WriteString("## Category Breakdown\n\n")
	b.WriteString("| Category | Monthly Uplift | Annual Uplift | Share |\n|---|---|---|---|\n")
	fmt.Fprintf(&b, "| ID Infrastructure | %s | %s | %s |\n",
		money(res.IDInfrastructure.MonthlyUplift), money(res.IDInfrastructure.AnnualUplift), pct(res.Breakdown.IDInfrastructurePercent))
	if res.CAPICapabilities != nil {
		fmt.Fprintf(&b, "| CAPI Capabilities | %s | %s | %s |\n",
			money(res.CAPICapabilities.MonthlyUplift), money(res.CAPICapabilities.AnnualUplift), pct(res.Breakdown.CAPIPercent))
	}
	if res.MediaPerformance != nil {
		fmt.Fprintf(&b, "| Media Performance | %s | %s | %s |\n",
			money(res.MediaPerformance.MonthlyUplift), money(res.MediaPerformance.AnnualUplift), pct(res.Breakdown.PerformancePercent))
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | 100%% |\n\n",
		money(res.Totals.MonthlyUplift), money(res.Totals.AnnualUplift))

	if res.CAPICapabilities != nil {
		capi := res.CAPICapabilities
		b.WriteString("## CAPI Campaign Plan\n\n")
		b.WriteString("| Item | Value |\n|---|---|\n")
		fmt.Fprintf(&b, "| Volume source | %s |\n", capi.CapiConfiguration.Source)
		fmt.Fprintf(&b, "| Yearly campaigns | %d |\n", capi.CapiConfiguration.YearlyCampaigns)
		fmt.Fprintf(&b, "| Average campaign spend | %s |\n", money(capi.CapiConfiguration.AvgCampaignSpend))
		fmt.Fprintf(&b, "| POC campaigns | %.1f |\n", capi.CapiConfiguration.POCCampaigns)
		fmt.Fprintf(&b, "| Net-new campaign revenue | %s per month |\n\n", money(capi.NetNewCampaignRevenue))
	}

	b.WriteString("## Pricing\n\n")
	b.WriteString("| Tier | Fee |\n|---|---|\n")
	fmt.Fprintf(&b, "| Proof of concept (%d months) | %s |\n", res.Pricing.POCDurationMonths, money(res.Pricing.POCFee))
	fmt.Fprintf(&b, "| Full contract | %s per month |\n", money(res.Pricing.FullContractMonthlyFee))
	fmt.Fprintf(&b, "| CAPI service fee | %s of conversion revenue |\n", pct(res.Pricing.CAPIServiceFeeRate*100))
	if res.Pricing.MonthlyCAPIServiceFees > 0 {
		fmt.Fprintf(&b, "| Estimated monthly CAPI fees | %s |\n", money(res.Pricing.MonthlyCAPIServiceFees))
	}
	b.WriteString("\n")

	b.WriteString("## Return on Investment\n\n")
	b.WriteString("| Phase | Monthly Cost | Net Monthly ROI | ROI Multiple | Payback |\n|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| Proof of concept | %s | %s | %s | %s |\n",
		money(res.ROIAnalysis.POC.MonthlyCost), money(res.ROIAnalysis.POC.NetMonthlyROI),
		multiple(res.ROIAnalysis.POC.ROIMultiple), paybackLabel(res.ROIAnalysis.POC.PaybackMonths))
	fmt.Fprintf(&b, "| Full contract | %s | %s | %s | %s |\n\n",
		money(res.ROIAnalysis.FullContract.MonthlyCost), money(res.ROIAnalysis.FullContract.NetMonthlyROI),
		multiple(res.ROIAnalysis.FullContract.ROIMultiple), paybackLabel(res.ROIAnalysis.FullContract.PaybackMonths))

	b.WriteString("## Risk Adjustment\n\n")
	fmt.Fprintf(&b, "An unadjusted optimistic run of the same inputs yields %s per month. ", money(res.RiskComparison.UnadjustedMonthlyUplift))
	fmt.Fprintf(&b, "The figures above apply the %s risk multipliers, a %s reduction against that ceiling.\n\n",
		res.RiskScenario, pct(res.RiskComparison.AdjustmentPercent))

	if len(projection) > 0 {
		b.WriteString("## First-Year Ramp\n\n")
		b.WriteString("| Month | Ramp | Monthly Uplift | Projected Revenue |\n|---|---|---|---|\n")
		for _, m := range projection {
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", m.Month, pct(m.RampFactor*100), money(m.Uplift), money(m.ProjectedRevenue))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Assumptions\n\n")
	fmt.Fprintf(&b, "Figures assume a %.0f-month ramp-up, %s adoption and %s addressability efficiency. ",
		res.Risk.RampUpMonths, pct(res.Risk.AdoptionRate*100), pct(res.Risk.AddressabilityEfficiency*100))
	b.WriteString("All estimates are deterministic outputs of the stated inputs and benchmarks, not revenue guarantees.\n")

	return b.String()
}

func propertyLabel(preparedFor string, res *calculator.UnifiedResults) string {
	if preparedFor != "" {
		return preparedFor
	}
	if res.Aggregated.PropertyCount == 1 {
		return "1 property"
	}
	return fmt.Sprintf("%d properties", res.Aggregated.PropertyCount)
}

// money formats a dollar amount with thousands separators, keeping cents
// only when present.
func money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	totalCents := int64(v*100 + 0.5)
	s := group(totalCents / 100)
	if cents := totalCents % 100; cents != 0 {
		s = fmt.Sprintf("%s.%02d", s, cents)
	}
	if neg {
		return "-$" + s
	}
	return "$" + s
}

func number(v float64) string {
	return group(int64(v + 0.5))
}

func group(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []string
	for len(s) > 3 {
		out = append([]string{s[len(s)-3:]}, out...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(out, ",")
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func multiple(v float64) string {
	return fmt.Sprintf("%.1fx", v)
}

func paybackLabel(v float64) string {
	if v >= paybackSentinel {
		return "n/a"
	}
	return fmt.Sprintf("%.1f months", v)
}
