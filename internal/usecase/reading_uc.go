package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"oracle-veil/internal/domain"
	"oracle-veil/internal/domain/model"
	"oracle-veil/internal/domain/ports/adapter"
	"oracle-veil/internal/infra/metrics"
)

// Compile-time check
var _ ReadingUseCase = (*readingUC)(nil)

type ReadingUseCase interface {
	// Generate validates a three-card selection and returns the model text
	// verbatim. ErrAINotConfigured when no provider is wired;
	// ErrAIUnavailable for any provider failure.
	Generate(ctx context.Context, cards []string) (string, error)
}

type readingUC struct {
	ai      adapter.AIServiceAdapter
	model   string
	timeout time.Duration
	log     *zerolog.Logger
}

// NewReadingUseCase constructs the reading proxy. ai may be nil when no
// provider credential is configured; every Generate call then fails fast.
func NewReadingUseCase(ai adapter.AIServiceAdapter, model string, timeout time.Duration, logger *zerolog.Logger) *readingUC {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &readingUC{ai: ai, model: model, timeout: timeout, log: logger}
}

func (uc *readingUC) Generate(ctx context.Context, cards []string) (string, error) {
	spread, err := model.NewSpread(cards)
	if err != nil {
		metrics.IncReading("invalid")
		return "", err
	}
	if uc.ai == nil {
		metrics.IncReading("not_configured")
		return "", domain.ErrAINotConfigured
	}

	// The provider call is the only slow path in the backend; bound it so a
	// wedged upstream cannot pin request handlers.
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	text, usage, err := uc.ai.Generate(ctx, uc.model, readingSystemInstruction, readingPrompt(spread))
	latencyMs := int(time.Since(start).Milliseconds())
	metrics.ObserveReading(uc.ai.Provider(), uc.model, usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens, latencyMs, err == nil)

	if err != nil {
		metrics.IncReading("failed")
		uc.log.Error().Err(err).
			Str("provider", uc.ai.Provider()).
			Str("model", uc.model).
			Msg("reading generation failed")
		return "", fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}

	metrics.IncReading("ok")
	uc.log.Debug().
		Str("provider", uc.ai.Provider()).
		Int("total_tokens", usage.TotalTokens).
		Int("latency_ms", latencyMs).
		Msg("reading generated")
	return text, nil
}
