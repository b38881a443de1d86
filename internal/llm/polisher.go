package llm

import (
	"context"
	"strings"

	"golang.org/x/time/rate"

	"github.com/vparshin/greenclue/internal/model"
)

// Polisher rewrites the phrasing of an already composed clue set. API
// calls are throttled by a token bucket so batch runs stay inside
// provider rate limits. Any per-clue failure keeps the original text;
// polishing never fails a run and never changes category, topic, answer
// word or selection.
type Polisher struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewPolisher creates a polisher over the given provider.
func NewPolisher(provider Provider, requestsPerSecond float64, burst int) *Polisher {
	if burst <= 0 {
		burst = 1
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &Polisher{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Polish rewrites each clue's text in place and reports whether any
// clue was actually changed.
func (p *Polisher) Polish(ctx context.Context, clues *model.ClueSet) bool {
	changed := false

	for i := range clues.Items {
		if err := p.limiter.Wait(ctx); err != nil {
			return changed
		}

		c := &clues.Items[i]
		rewritten, err := p.provider.Rewrite(ctx, RewriteRequest{
			ClueText: c.Text,
			Kind:     string(c.Kind),
			MaxWords: 15,
		})
		if err != nil {
			continue
		}
		if !acceptRewrite(rewritten, c.Word) {
			continue
		}
		if rewritten != c.Text {
			c.Text = rewritten
			changed = true
		}
	}

	return changed
}

// acceptRewrite rejects rewrites that drop the blank or leak the answer.
func acceptRewrite(text, word string) bool {
	if strings.Count(text, "_______") != 1 {
		return false
	}
	if word != "" && strings.Contains(strings.ToLower(text), strings.ToLower(word)) {
		return false
	}
	return true
}
