package repositories

import "context"

// Advisor is the outbound port to the language-model collaborator. The core's
// responsibility ends at constructing the prompt; the returned text is
// rendered as-is with no structured parsing.
type Advisor interface {
	GenerateAdvice(ctx context.Context, prompt string) (string, error)
}
