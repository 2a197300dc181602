// Package llm abstracts the generative-AI text oracle. The oracle is an
// opaque completion service: it takes a natural-language instruction and
// returns text, with no schema enforcement on its side. Contract validation
// of the returned text belongs to the contract package, not here.
package llm

import "context"

// Provider is the oracle abstraction. Implementations exist for Gemini,
// OpenAI-compatible APIs, Anthropic, and a deterministic mock.
type Provider interface {
	// Generate sends the request and returns the raw text completion.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Request describes a single oracle invocation.
type Request struct {
	// System sets the oracle's role and constraints.
	System string

	// Prompt is the user instruction. Generation here is single-turn; there
	// is no conversation history to carry.
	Prompt string

	// MaxTokens bounds the completion length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Response holds the oracle's output.
type Response struct {
	// Text is the raw completion. May be wrapped in markdown fences, may
	// be malformed JSON — callers must treat it as untrusted.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
