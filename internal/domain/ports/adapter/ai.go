package adapter

import "context"

// Usage for a single generation call, as reported by the provider.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// AIServiceAdapter is the port for one-shot text generation. The reading
// proxy sends a system instruction plus a single user prompt and returns the
// model text verbatim.
type AIServiceAdapter interface {
	// Provider names the backing service for logs and metrics.
	Provider() string

	// Generate returns the model text and usage as reported by the provider
	// (best-effort when the provider omits usage).
	Generate(ctx context.Context, model, systemInstruction, prompt string) (string, Usage, error)
}
