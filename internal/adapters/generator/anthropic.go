package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
)

// CompletionTimeout bounds every backend call.
const CompletionTimeout = 30 * time.Second

const MaxTokens = 800

const temperature = 0.2

// Claude wraps the Anthropic completion endpoint behind the TextCompleter
// port.
type Claude struct {
	client *anthropic.Client
	model  string
}

func NewClaude(apiKey, model string, opts ...anthropic.ClientOption) *Claude {
	return &Claude{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
	}
}

func (c *Claude) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, CompletionTimeout)
	defer cancel()

	temp := float32(temperature)

	resp, err := c.client.CreateComplete(ctx, anthropic.CompleteRequest{
		Model:             anthropic.Model(c.model),
		Prompt:            prompt,
		MaxTokensToSample: MaxTokens,
		Temperature:       &temp,
	})
	if err != nil {
		return "", fmt.Errorf("claude API error: %w", err)
	}

	return resp.Completion, nil
}
