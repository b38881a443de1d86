// Package llm implements the optional clue polisher. The polisher only
// rewrites how a clue is phrased; classification, selection, topics and
// answer words are fixed before it runs and are never changed by it.
package llm

import "context"

// Provider is a chat-completion backend that rewrites clue text.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Rewrite returns a rephrased version of the clue text. The answer
	// blank must be preserved verbatim.
	Rewrite(ctx context.Context, req RewriteRequest) (string, error)
}

// RewriteRequest carries one clue to rephrase.
type RewriteRequest struct {
	// ClueText is the template- or sentence-derived clue, blank included.
	ClueText string

	// Kind is "fact", "bias" or "omission"; the tone hint for the model.
	Kind string

	// MaxWords caps the rewritten clue length.
	MaxWords int
}

// Config holds provider configuration.
type Config struct {
	Model             string
	APIKey            string
	BaseURL           string // OpenAI-compatible endpoint override
	TimeoutSeconds    int
	RequestsPerSecond float64
	Burst             int
}
