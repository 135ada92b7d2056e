package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"oracle-veil/internal/domain"
	"oracle-veil/internal/domain/ports/adapter"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(nil)
	return &logger
}

func TestReadingUseCase_Generate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cards := []string{"The Fool", "The Tower", "The Star"}

	t.Run("returns provider text verbatim", func(t *testing.T) {
		mock := &mockAIAdapter{reply: "a deep reading", usage: adapter.Usage{TotalTokens: 42}}
		uc := NewReadingUseCase(mock, "gemini-1.5-flash", time.Second, newTestLogger())

		got, err := uc.Generate(ctx, cards)
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if got != "a deep reading" {
			t.Fatalf("expected verbatim text, got %q", got)
		}
	})

	t.Run("empty provider text is not an error", func(t *testing.T) {
		mock := &mockAIAdapter{reply: ""}
		uc := NewReadingUseCase(mock, "gemini-1.5-flash", time.Second, newTestLogger())

		got, err := uc.Generate(ctx, cards)
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if got != "" {
			t.Fatalf("expected empty text, got %q", got)
		}
	})

	t.Run("prompt places the cards in past, present and future slots", func(t *testing.T) {
		mock := &mockAIAdapter{reply: "ok"}
		uc := NewReadingUseCase(mock, "gemini-1.5-flash", time.Second, newTestLogger())

		if _, err := uc.Generate(ctx, cards); err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		prompt := mock.lastPrompt
		iPast := strings.Index(prompt, "The Fool")
		iPresent := strings.Index(prompt, "The Tower")
		iFuture := strings.Index(prompt, "The Star")
		if iPast < 0 || iPresent < 0 || iFuture < 0 {
			t.Fatalf("prompt missing card names: %q", prompt)
		}
		if !(iPast < iPresent && iPresent < iFuture) {
			t.Fatalf("cards out of slot order in prompt: %q", prompt)
		}
		if mock.lastSystem == "" {
			t.Fatal("expected a system instruction to be sent")
		}
	})

	t.Run("invalid selections never reach the provider", func(t *testing.T) {
		for _, bad := range [][]string{
			nil,
			{},
			{"One"},
			{"One", "Two"},
			{"One", "Two", "Three", "Four"},
			{"One", "", "Three"},
		} {
			mock := &mockAIAdapter{reply: "never"}
			uc := NewReadingUseCase(mock, "gemini-1.5-flash", time.Second, newTestLogger())
			if _, err := uc.Generate(ctx, bad); !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("cards=%v: expected ErrInvalidArgument, got %v", bad, err)
			}
			if mock.callCount() != 0 {
				t.Fatalf("cards=%v: provider must not be called", bad)
			}
		}
	})

	t.Run("nil adapter fails fast with not-configured", func(t *testing.T) {
		uc := NewReadingUseCase(nil, "gemini-1.5-flash", time.Second, newTestLogger())
		if _, err := uc.Generate(ctx, cards); !errors.Is(err, domain.ErrAINotConfigured) {
			t.Fatalf("expected ErrAINotConfigured, got %v", err)
		}
	})

	t.Run("provider failure maps to unavailable", func(t *testing.T) {
		mock := &mockAIAdapter{err: errors.New("quota exhausted")}
		uc := NewReadingUseCase(mock, "gemini-1.5-flash", time.Second, newTestLogger())
		if _, err := uc.Generate(ctx, cards); !errors.Is(err, domain.ErrAIUnavailable) {
			t.Fatalf("expected ErrAIUnavailable, got %v", err)
		}
	})
}
