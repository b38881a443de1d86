// Package classify implements the lexical fact/bias sentence classifier.
package classify

import (
	"regexp"
	"strings"

	"github.com/vparshin/greenclue/internal/keyword"
	"github.com/vparshin/greenclue/internal/model"
)

// numericSignal matches percentages, money amounts and year-like
// numbers. Any bare digit also counts as a fact signal, checked
// separately since it is cheaper.
var numericSignal = regexp.MustCompile(`\d+%|\$\d+|\b(19|20)\d{2}\b`)

// unitTokens are measurement terms that mark a sentence as data-bearing
// even without digits (e.g. "reduced emissions by ten percent").
var unitTokens = []string{
	"percent", "tons", "tonnes", "metric tons",
	"mwh", "gwh", "kwh", "megawatt", "gigawatt",
	"m3", "cubic meters", "megaliters", "hectares", "tco2e",
}

// biasLexicon holds the subjective qualifier vocabulary. A topical
// sentence using any of these without numeric backing reads as a
// marketing claim rather than a disclosure.
var biasLexicon = []string{
	"proud", "leader", "leading", "committed", "commitment", "vision",
	"believe", "dedication", "dedicated", "best", "forefront",
	"innovative", "unique", "excellence", "world-class", "best-in-class",
	"ambitious", "significant", "passionate",
}

// Classifier tags sentences as Fact, Bias or Irrelevant using the topic
// index and fixed lexicons. Safe for concurrent use: all state is
// read-only after construction.
type Classifier struct {
	index    *keyword.Index
	minWords int
}

// New creates a classifier over the given index. Sentences with fewer
// than minWords words are always Irrelevant, keeping PDF extraction
// fragments out of the pool.
func New(index *keyword.Index, minWords int) *Classifier {
	return &Classifier{index: index, minWords: minWords}
}

// Classify tags a single sentence. The decision order is:
//
//  1. Too short (or empty) → Irrelevant.
//  2. No trigger match → Irrelevant.
//  3. Numeric/unit signal → Fact.
//  4. Subjective lexicon hit → Bias.
//  5. Otherwise → Bias.
//
// The final default is a deliberate policy: topic relevance without
// quantification is treated as a qualitative claim. Changing it shifts
// the fact/bias distribution of every downstream clue set.
func (c *Classifier) Classify(text string) model.Sentence {
	s := model.Sentence{Text: strings.TrimSpace(text), Category: model.CategoryIrrelevant}

	if len(strings.Fields(s.Text)) < c.minWords {
		return s
	}

	match, ok := c.index.Lookup(s.Text)
	if !ok {
		return s
	}
	s.Topic = match.Topic
	s.Trigger = match.Trigger

	if sig := factSignal(s.Text); sig != "" {
		s.Category = model.CategoryFact
		s.Heuristic = sig
		return s
	}

	if term := biasSignal(s.Text); term != "" {
		s.Category = model.CategoryBias
		s.Heuristic = "qualifier:" + term
		return s
	}

	s.Category = model.CategoryBias
	s.Heuristic = "default:unquantified"
	return s
}

// ClassifyAll classifies every sentence, preserving document order and
// recording each sentence's position.
func (c *Classifier) ClassifyAll(sentences []string) []model.Sentence {
	out := make([]model.Sentence, 0, len(sentences))
	for i, text := range sentences {
		s := c.Classify(text)
		s.Index = i
		out = append(out, s)
	}
	return out
}

func factSignal(text string) string {
	if numericSignal.MatchString(text) {
		return "numeric"
	}
	if strings.ContainsAny(text, "0123456789") {
		return "digit"
	}
	lower := strings.ToLower(text)
	for _, unit := range unitTokens {
		if strings.Contains(lower, unit) {
			return "unit:" + unit
		}
	}
	return ""
}

func biasSignal(text string) string {
	lower := strings.ToLower(text)
	for _, term := range biasLexicon {
		if strings.Contains(lower, term) {
			return term
		}
	}
	return ""
}
