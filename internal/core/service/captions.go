package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"capbot/internal/core/domain"
	"capbot/internal/core/port"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// CaptionCount is the fixed size of every generation result.
const CaptionCount = 3

// CaptionService produces captions through the configured backend and falls
// back to a deterministic local generator whenever the backend is missing,
// unreachable or returns unusable output.
type CaptionService struct {
	completer port.TextCompleter
}

// NewCaptionService wires the backend completer. A nil completer means no
// backend is configured and every request takes the local path.
func NewCaptionService(completer port.TextCompleter) *CaptionService {
	return &CaptionService{completer: completer}
}

func (s *CaptionService) Generate(ctx context.Context,
	content []domain.ContentItem, platform string) []domain.Caption {
	contextText := domain.FlattenContent(content)

	if s.completer != nil {
		id, _ := uuid.NewV4()
		l := log.With().
			Str("requestId", id.String()).
			Str("platform", platform).
			Logger()

		completion, err := s.completer.Complete(ctx, domain.BuildPrompt(platform, content))
		if err != nil {
			l.Warn().Err(err).Msg("backend request failed, using local generator")
		} else {
			captions, err := parseCaptions(completion)
			if err != nil {
				l.Warn().Err(err).Str("completion", completion).
					Msg("backend returned unusable output, using local generator")
			} else {
				l.Debug().Msg("captions generated by backend")
				return captions
			}
		}
	}

	return fallbackCaptions(contextText)
}

// parseCaptions applies a single strict parse to the completion: strip code
// fences, decode a JSON array, require exactly three caption objects.
func parseCaptions(completion string) ([]domain.Caption, error) {
	cleaned := strings.ReplaceAll(completion, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var captions []domain.Caption
	if err := json.Unmarshal([]byte(cleaned), &captions); err != nil {
		return nil, fmt.Errorf("error unmarshalling completion: %w", err)
	}

	if len(captions) != CaptionCount {
		return nil, fmt.Errorf("expected %d captions, got %d", CaptionCount, len(captions))
	}

	return captions, nil
}

const contextPreviewLength = 60

func fallbackCaptions(contextText string) []domain.Caption {
	preview := contextText
	if runes := []rune(preview); len(runes) > contextPreviewLength {
		preview = string(runes[:contextPreviewLength])
	}

	hooks := []string{
		"Make them stop scrolling — " + preview,
		"You won't believe this — " + preview,
		"Quick tip: " + preview,
	}
	bodies := []string{
		contextText + ". Keep it concise and add value in the first two lines.",
		contextText + ". Tell a short story and relate to the audience.",
		contextText + ". Ask a question to boost comments and engagement.",
	}
	ctas := []string{"Learn more", "Save this", "Share your thoughts"}
	hashtags := []string{"#viral", "#tips", "#content"}

	captions := make([]domain.Caption, CaptionCount)
	for i := range captions {
		captions[i] = domain.Caption{
			Hook:     hooks[i],
			Body:     bodies[i],
			CTA:      ctas[i],
			Hashtags: hashtags[i],
		}
	}

	return captions
}
