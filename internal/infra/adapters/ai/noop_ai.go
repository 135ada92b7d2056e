package ai

import (
	"context"
	"time"

	"oracle-veil/internal/domain/ports/adapter"
)

var _ adapter.AIServiceAdapter = (*NoopAIAdapter)(nil)

// NoopAIAdapter serves a canned reading for local development so the whole
// flow works without any provider credential.
type NoopAIAdapter struct{}

func NewNoopAIAdapter() *NoopAIAdapter {
	return &NoopAIAdapter{}
}

func (a *NoopAIAdapter) Provider() string { return "noop" }

func (a *NoopAIAdapter) Generate(ctx context.Context, model, systemInstruction, prompt string) (string, adapter.Usage, error) {
	// Simulate slight processing time and respect ctx
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return "", adapter.Usage{}, ctx.Err()
	}
	return "ဤသည်မှာ စမ်းသပ်မှု ဖတ်ရှုချက်ဖြစ်သည်။ (development placeholder reading)", adapter.Usage{}, nil
}
