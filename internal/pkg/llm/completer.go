package llm

import "context"

// Completer is the single capability the rest of the service needs from the
// model provider: one stateless prompt in, one text blob out. No retries.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)

	// ModelID returns the model identifier this completer is configured to use.
	ModelID() string
}
