// Package genai wraps the optional text generation service. Every call site
// in the engine carries a deterministic fallback, so nothing here is on the
// critical path for a turn completing.
package genai

import "context"

// Generator produces free-text replies from a system prompt and user text.
type Generator interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}
