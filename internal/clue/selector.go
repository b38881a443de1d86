// Package clue samples classified sentences and composes the
// fill-in-the-blank clue set for a game round.
package clue

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/vparshin/greenclue/internal/model"
)

// Selector draws clue candidates from the classified sentence pool.
// The random source is injected so selection is reproducible under a
// fixed seed. A mutex guards the source: batch mode analyzes documents
// in parallel and math/rand sources are not goroutine-safe.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector. A nil seed means time-seeded.
func NewSelector(seed *int64) *Selector {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	return &Selector{rng: rand.New(rand.NewSource(s))}
}

func (s *Selector) perm(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Perm(n)
}

func (s *Selector) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Select draws up to n distinct relevant sentences uniformly at random
// without replacement. An empty or all-irrelevant pool yields an empty
// slice, never an error. Duplicate texts in the input count once.
func (s *Selector) Select(sentences []model.Sentence, n int) []model.Sentence {
	pool := relevantPool(sentences)
	if len(pool) == 0 || n <= 0 {
		return nil
	}

	if n > len(pool) {
		n = len(pool)
	}

	picked := make([]model.Sentence, 0, n)
	for _, i := range s.perm(len(pool))[:n] {
		picked = append(picked, pool[i])
	}
	return picked
}

// relevantPool filters out irrelevant sentences and collapses exact
// duplicates (case-insensitive) so no clue can appear twice.
func relevantPool(sentences []model.Sentence) []model.Sentence {
	seen := make(map[string]bool)
	var pool []model.Sentence

	for _, s := range sentences {
		if !s.Relevant() {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(s.Text))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		pool = append(pool, s)
	}

	return pool
}
