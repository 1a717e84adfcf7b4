package calculator

import (
	"context"

	"roi-srv/internal/model"
)

// UseCase is the calculation engine boundary. Calculate is pure and
// deterministic: identical arguments produce identical results.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Properties(ctx context.Context) []model.Property
	Calculate(ctx context.Context, input CalculateInput) (*UnifiedResults, error)
	MonthlyProjection(ctx context.Context, input CalculateInput, months int) ([]MonthlyProjection, error)
}
