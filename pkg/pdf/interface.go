package pdf

import "context"

// IRenderer turns proposal documents into PDF bytes.
type IRenderer interface {
	// Render converts a markdown document into a print-ready PDF.
	Render(ctx context.Context, doc Document) ([]byte, error)
}
