package usecase

import "roi-srv/internal/calculator"

// aggregate rolls the selected properties up into weighted totals.
// CPMs are pageview-weighted, the display split and Safari share are
// impression-weighted. Explicit CPM overrides win over the weighted
// averages. Unknown property IDs are silently ignored; an empty selection
// yields all-zero aggregates.
func (uc *implUseCase) aggregate(in calculator.Inputs) calculator.AggregatedDomains {
	var agg calculator.AggregatedDomains
	var displayCPMWeighted, videoCPMWeighted float64
	var displayShareWeighted, safariShareWeighted float64

	for _, id := range in.SelectedPropertyIDs {
		prop, ok := uc.cfg.Catalog.Lookup(id)
		if !ok {
			continue
		}

		pageviews := prop.MonthlyPageviews
		if ov, ok := in.PageviewOverrides[id]; ok {
			pageviews = ov
		}
		safariShare := prop.SafariShare
		if ov, ok := in.SafariShareOverrides[id]; ok {
			safariShare = ov
		}
		impressions := pageviews * prop.AdsPerPage

		agg.TotalPageviews += pageviews
		agg.TotalImpressions += impressions
		agg.PropertyCount++

		displayCPMWeighted += prop.DisplayCPM * pageviews
		videoCPMWeighted += prop.VideoCPM * pageviews
		displayShareWeighted += prop.DisplayShare * impressions
		safariShareWeighted += safariShare * impressions
	}

	// Guard the weighted-average denominators: an empty selection must not
	// divide by zero.
	if agg.TotalPageviews > 0 {
		agg.DisplayCPM = displayCPMWeighted / agg.TotalPageviews
		agg.VideoCPM = videoCPMWeighted / agg.TotalPageviews
	}
	if agg.TotalImpressions > 0 {
		agg.DisplayShare = displayShareWeighted / agg.TotalImpressions
		agg.VideoShare = 1 - agg.DisplayShare
		agg.SafariShare = safariShareWeighted / agg.TotalImpressions
	}

	if in.DisplayCPM != nil {
		agg.DisplayCPM = *in.DisplayCPM
	}
	if in.VideoCPM != nil {
		agg.VideoCPM = *in.VideoCPM
	}

	agg.DisplayImpressions = agg.TotalImpressions * agg.DisplayShare
	agg.VideoImpressions = agg.TotalImpressions * agg.VideoShare

	return agg
}
