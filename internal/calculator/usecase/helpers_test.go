package usecase

import (
	"math"
	"testing"

	"roi-srv/internal/calculator"
	"roi-srv/internal/model"
)

// testProperty is the canonical regression fixture property: 5M pageviews,
// 3.2 ads/page, $4.50/$12.00 CPMs, 80/20 display/video split.
var testProperty = model.Property{
	ID:               "news-site",
	Name:             "News Site",
	MonthlyPageviews: 5_000_000,
	AdsPerPage:       3.2,
	DisplayCPM:       4.50,
	VideoCPM:         12.00,
	DisplayShare:     0.80,
	Category:         "news",
	SafariShare:      0.38,
}

var secondProperty = model.Property{
	ID:               "lifestyle-site",
	Name:             "Lifestyle Site",
	MonthlyPageviews: 2_000_000,
	AdsPerPage:       2.5,
	DisplayCPM:       3.00,
	VideoCPM:         9.00,
	DisplayShare:     0.60,
	Category:         "lifestyle",
	SafariShare:      0.30,
}

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()
	uc := New(nil, Config{
		Catalog: calculator.NewCatalog([]model.Property{testProperty, secondProperty}),
	})
	return uc.(*implUseCase)
}

func singleInput() calculator.CalculateInput {
	return calculator.CalculateInput{
		Inputs: calculator.Inputs{
			SelectedPropertyIDs: []string{"news-site"},
		},
		Scenario: calculator.ScenarioState{
			Deployment: calculator.DeploymentSingle,
			Scope:      calculator.ScopeIDOnly,
		},
		RiskScenario: calculator.RiskModerate,
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func almostEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s: got %.4f, want %.4f", name, got, want)
	}
}
