package clue

import (
	"strings"
	"testing"

	"github.com/vparshin/greenclue/internal/model"
)

func seedPtr(v int64) *int64 { return &v }

func relevantSentences(n int) []model.Sentence {
	out := make([]model.Sentence, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Sentence{
			Text:     "Sentence number " + strings.Repeat("x", i+1) + " about carbon.",
			Topic:    "Carbon",
			Trigger:  "carbon",
			Category: model.CategoryFact,
			Index:    i,
		})
	}
	return out
}

func TestSelector_NeverExceedsNOrPool(t *testing.T) {
	s := NewSelector(seedPtr(1))

	pool := relevantSentences(10)
	picked := s.Select(pool, 5)
	if len(picked) != 5 {
		t.Errorf("expected 5 picks, got %d", len(picked))
	}

	picked = s.Select(relevantSentences(3), 5)
	if len(picked) != 3 {
		t.Errorf("expected all 3 of a small pool, got %d", len(picked))
	}
}

func TestSelector_PairwiseDistinct(t *testing.T) {
	s := NewSelector(seedPtr(2))

	picked := s.Select(relevantSentences(20), 10)
	seen := make(map[string]bool)
	for _, p := range picked {
		if seen[p.Text] {
			t.Errorf("duplicate pick: %q", p.Text)
		}
		seen[p.Text] = true
	}
}

func TestSelector_DuplicateTextsCountOnce(t *testing.T) {
	s := NewSelector(seedPtr(3))

	dup := model.Sentence{Text: "Carbon use fell 10% overall.", Category: model.CategoryFact}
	picked := s.Select([]model.Sentence{dup, dup, dup}, 5)
	if len(picked) != 1 {
		t.Errorf("expected duplicates collapsed to 1, got %d", len(picked))
	}
}

func TestSelector_FiltersIrrelevant(t *testing.T) {
	s := NewSelector(seedPtr(4))

	pool := append(relevantSentences(2), model.Sentence{
		Text:     "Nothing to see here at all.",
		Category: model.CategoryIrrelevant,
	})

	picked := s.Select(pool, 5)
	if len(picked) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(picked))
	}
	for _, p := range picked {
		if !p.Relevant() {
			t.Errorf("irrelevant sentence selected: %q", p.Text)
		}
	}
}

func TestSelector_EmptyPoolYieldsEmpty(t *testing.T) {
	s := NewSelector(seedPtr(5))

	if got := s.Select(nil, 5); len(got) != 0 {
		t.Errorf("expected empty selection from nil pool, got %d", len(got))
	}

	onlyIrrelevant := []model.Sentence{
		{Text: "Off topic filler sentence one.", Category: model.CategoryIrrelevant},
		{Text: "Off topic filler sentence two.", Category: model.CategoryIrrelevant},
	}
	if got := s.Select(onlyIrrelevant, 5); len(got) != 0 {
		t.Errorf("expected empty selection from all-irrelevant pool, got %d", len(got))
	}
}

func TestSelector_DeterministicUnderFixedSeed(t *testing.T) {
	pool := relevantSentences(15)

	first := NewSelector(seedPtr(42)).Select(pool, 5)
	second := NewSelector(seedPtr(42)).Select(pool, 5)

	if len(first) != len(second) {
		t.Fatalf("selection sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("pick %d differs under same seed: %q vs %q", i, first[i].Text, second[i].Text)
		}
	}
}
