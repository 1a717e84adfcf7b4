package usecase

import (
	"roi-srv/internal/calculator"
	"roi-srv/pkg/log"
)

// Config holds the injected configuration tables the engine computes from.
// Zero-value sections fall back to the shipped defaults.
type Config struct {
	Catalog               calculator.Catalog
	Benchmarks            calculator.Benchmarks
	Pricing               calculator.ContractPricing
	DeploymentMultipliers map[calculator.Deployment]float64
	RiskScenarios         map[calculator.RiskScenario]calculator.RiskMultipliers
}

type implUseCase struct {
	l   log.Logger
	cfg Config
}

// New creates the calculation engine UseCase.
func New(l log.Logger, cfg Config) calculator.UseCase {
	if cfg.Benchmarks.SafariShare == 0 {
		cfg.Benchmarks = calculator.DefaultBenchmarks()
	}
	if cfg.Pricing == (calculator.ContractPricing{}) {
		cfg.Pricing = calculator.DefaultContractPricing()
	}
	if cfg.DeploymentMultipliers == nil {
		cfg.DeploymentMultipliers = calculator.DefaultDeploymentMultipliers()
	}
	if cfg.RiskScenarios == nil {
		cfg.RiskScenarios = calculator.DefaultRiskScenarios()
	}

	return &implUseCase{
		l:   l,
		cfg: cfg,
	}
}

// orDefault returns *p when present, else def. Presence wins even when the
// supplied value is zero.
func orDefault(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
