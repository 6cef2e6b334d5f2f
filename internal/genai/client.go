/*
Package genai wraps the outbound language-model providers behind a single
Client contract: one structured-output generation call in, raw text out.

Failure semantics are deliberately split in two: transport-level problems
(unreachable provider, missing credential, non-success status) surface as
ErrUnavailable or ErrQuotaExceeded so callers can return a real service
error, while unusable content is NOT this package's concern — the pipeline
stages decide what to do with text that fails to parse.
*/
package genai

import (
	"context"
	"errors"
	"time"
)

// Request describes one generation call.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int

	// Temperature must be in [0,1].
	Temperature float64

	// Model overrides the client's default model when non-empty.
	Model string
}

// Client issues exactly one logical generation call per Generate invocation.
// Implementations may retry transient transport failures internally but never
// retry on content problems (they cannot see them).
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

var (
	// ErrUnavailable covers an unreachable, misconfigured or erroring
	// provider — including a missing API key and an empty completion.
	ErrUnavailable = errors.New("generation provider unavailable")

	// ErrQuotaExceeded is returned when the provider reports rate or quota
	// limiting, so callers can back off instead of retrying blindly.
	ErrQuotaExceeded = errors.New("generation provider quota exceeded")
)

const (
	maxAttempts    = 3
	initialBackoff = 1 * time.Second
	requestTimeout = 30 * time.Second
)

// backoffDelay doubles per attempt: 1s, 2s, 4s.
func backoffDelay(attempt int) time.Duration {
	return initialBackoff << attempt
}
