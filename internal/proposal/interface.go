package proposal

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
