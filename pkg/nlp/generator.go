package nlp

import (
	"context"
	"log/slog"
)

// FailureSentinel is substituted for the completion output on any
// transport-level failure. Callers parse it like any other response; it
// will fail the two-line contract and trigger their parse fallback.
const FailureSentinel = "Sorry, I couldn't respond right now."

// Generator produces free-text completions for the pipeline. Complete
// never returns an error; failures yield the fixed sentinel.
type Generator struct {
	client Client
	logger *slog.Logger
}

// NewGenerator creates a generator over the given client.
func NewGenerator(client Client, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{client: client, logger: logger}
}

// Complete returns the completion for the prompt, bounded by maxTokens.
func (g *Generator) Complete(ctx context.Context, prompt string, maxTokens int) string {
	resp, err := g.client.Chat(ctx, []Message{NewUserMessage(prompt)}, maxTokens)
	if err != nil {
		g.logger.Error("completion failed", "error", err)
		return FailureSentinel
	}
	return resp.Content
}
