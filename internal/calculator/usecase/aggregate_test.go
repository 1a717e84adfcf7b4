package usecase

import (
	"testing"

	"roi-srv/internal/calculator"
)

func TestAggregate(t *testing.T) {
	uc := newTestUseCase(t)

	t.Run("single property", func(t *testing.T) {
		agg := uc.aggregate(calculator.Inputs{SelectedPropertyIDs: []string{"news-site"}})

		almostEqual(t, "total pageviews", agg.TotalPageviews, 5_000_000)
		almostEqual(t, "total impressions", agg.TotalImpressions, 16_000_000)
		almostEqual(t, "display cpm", agg.DisplayCPM, 4.50)
		almostEqual(t, "video cpm", agg.VideoCPM, 12.00)
		almostEqual(t, "display share", agg.DisplayShare, 0.80)
		almostEqual(t, "display impressions", agg.DisplayImpressions, 12_800_000)
		almostEqual(t, "video impressions", agg.VideoImpressions, 3_200_000)
		almostEqual(t, "safari share", agg.SafariShare, 0.38)
	})

	t.Run("weighted averages across properties", func(t *testing.T) {
		agg := uc.aggregate(calculator.Inputs{SelectedPropertyIDs: []string{"news-site", "lifestyle-site"}})

		almostEqual(t, "total pageviews", agg.TotalPageviews, 7_000_000)
		almostEqual(t, "total impressions", agg.TotalImpressions, 21_000_000)
		// Pageview-weighted: (4.50*5M + 3.00*2M) / 7M
		almostEqual(t, "display cpm", agg.DisplayCPM, (4.50*5+3.00*2)/7)
		// Impression-weighted: (0.80*16M + 0.60*5M) / 21M
		almostEqual(t, "display share", agg.DisplayShare, (0.80*16+0.60*5)/21)
		if agg.PropertyCount != 2 {
			t.Errorf("property count: got %d, want 2", agg.PropertyCount)
		}
	})

	t.Run("explicit cpm overrides win", func(t *testing.T) {
		agg := uc.aggregate(calculator.Inputs{
			SelectedPropertyIDs: []string{"news-site", "lifestyle-site"},
			DisplayCPM:          floatPtr(6.00),
			VideoCPM:            floatPtr(15.00),
		})

		almostEqual(t, "display cpm", agg.DisplayCPM, 6.00)
		almostEqual(t, "video cpm", agg.VideoCPM, 15.00)
	})

	t.Run("per-property overrides", func(t *testing.T) {
		agg := uc.aggregate(calculator.Inputs{
			SelectedPropertyIDs:  []string{"news-site"},
			PageviewOverrides:    map[string]float64{"news-site": 1_000_000},
			SafariShareOverrides: map[string]float64{"news-site": 0.50},
		})

		almostEqual(t, "total pageviews", agg.TotalPageviews, 1_000_000)
		almostEqual(t, "total impressions", agg.TotalImpressions, 3_200_000)
		almostEqual(t, "safari share", agg.SafariShare, 0.50)
	})

	t.Run("unknown ids silently ignored", func(t *testing.T) {
		agg := uc.aggregate(calculator.Inputs{SelectedPropertyIDs: []string{"news-site", "nope"}})

		if agg.PropertyCount != 1 {
			t.Errorf("property count: got %d, want 1", agg.PropertyCount)
		}
		almostEqual(t, "total pageviews", agg.TotalPageviews, 5_000_000)
	})

	t.Run("empty selection returns zeros without dividing", func(t *testing.T) {
		agg := uc.aggregate(calculator.Inputs{})

		if agg != (calculator.AggregatedDomains{}) {
			t.Errorf("expected zero aggregates, got %+v", agg)
		}
	})
}
