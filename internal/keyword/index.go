// Package keyword implements the topic trigger index used to decide
// whether a sentence is relevant to any sustainability theme.
package keyword

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vparshin/greenclue/internal/model"
)

// Match is the result of a successful index lookup.
type Match struct {
	Topic   string // topic name
	Trigger string // trigger term that matched
}

// Index maps trigger terms to topics. Immutable after construction and
// safe for concurrent lookups.
type Index struct {
	topics []model.Topic
}

// NewIndex builds an index from the given topics. Triggers are matched
// case-insensitively; the topic list must not be empty.
func NewIndex(topics []model.Topic) (*Index, error) {
	if len(topics) == 0 {
		return nil, model.ErrNoTopics
	}

	// Normalize triggers up front so Lookup only lowers the sentence.
	normalized := make([]model.Topic, len(topics))
	for i, t := range topics {
		triggers := make([]string, 0, len(t.Triggers))
		for _, trig := range t.Triggers {
			trig = strings.ToLower(strings.TrimSpace(trig))
			if trig != "" {
				triggers = append(triggers, trig)
			}
		}
		normalized[i] = model.Topic{Name: t.Name, Triggers: triggers}
	}

	return &Index{topics: normalized}, nil
}

// Lookup scans the sentence against every topic's triggers and returns
// the best match. Single-token triggers match on word boundaries,
// multi-word triggers as substrings. The longest matching trigger wins;
// ties keep topic declaration order. Deterministic for a fixed index.
func (idx *Index) Lookup(text string) (Match, bool) {
	lower := strings.ToLower(text)

	var best Match
	found := false

	for _, topic := range idx.topics {
		for _, trigger := range topic.Triggers {
			if !triggerMatches(lower, trigger) {
				continue
			}
			if !found || len(trigger) > len(best.Trigger) {
				best = Match{Topic: topic.Name, Trigger: trigger}
				found = true
			}
		}
	}

	return best, found
}

// Topics returns the indexed topic set.
func (idx *Index) Topics() []model.Topic {
	return idx.topics
}

func triggerMatches(lowerText, trigger string) bool {
	if strings.ContainsRune(trigger, ' ') {
		return strings.Contains(lowerText, trigger)
	}
	return containsWord(lowerText, trigger)
}

// containsWord reports whether word occurs in text delimited by
// non-letter, non-digit runes. Hyphens inside triggers (e.g. "net-zero")
// are handled because the boundary check only inspects the neighbors.
// Neighbors are decoded as runes, not bytes, so a multi-byte letter
// next to a candidate match still counts as part of the word.
func containsWord(text, word string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)

		leftOK := i == 0
		if !leftOK {
			r, _ := utf8.DecodeLastRuneInString(text[:i])
			leftOK = isBoundary(r)
		}
		rightOK := end == len(text)
		if !rightOK {
			r, _ := utf8.DecodeRuneInString(text[end:])
			rightOK = isBoundary(r)
		}
		if leftOK && rightOK {
			return true
		}
		start = i + 1
	}
}

func isBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
