package port

import (
	"context"

	"capbot/internal/core/domain"
)

type CaptionGenerator interface {
	// Generate produces exactly three captions for a submission. It is total:
	// backend failures resolve to the local fallback, never to an error.
	Generate(ctx context.Context, content []domain.ContentItem, platform string) []domain.Caption
}

type TextCompleter interface {
	// Complete sends a prompt to the text-completion backend and returns the
	// raw completion string.
	Complete(ctx context.Context, prompt string) (string, error)
}
