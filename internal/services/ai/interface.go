// File: internal/services/ai/interface.go
package ai

import "context"

// CompletionProvider is the generation collaborator: an opaque
// text-completion function with unspecified latency and no guaranteed
// determinism. Callers own timeout and cancellation via ctx.
type CompletionProvider interface {
	GetCompletion(ctx context.Context, prompt string, maxTokens int) (string, error)
}
