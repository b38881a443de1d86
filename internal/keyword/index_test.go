package keyword

import (
	"errors"
	"testing"

	"github.com/vparshin/greenclue/internal/model"
)

func testTopics() []model.Topic {
	return []model.Topic{
		{Name: "Carbon", Triggers: []string{"carbon", "net-zero", "greenhouse gas"}},
		{Name: "Water", Triggers: []string{"water", "water recycling"}},
	}
}

func TestNewIndex_EmptyTopics(t *testing.T) {
	_, err := NewIndex(nil)
	if !errors.Is(err, model.ErrNoTopics) {
		t.Errorf("expected ErrNoTopics, got %v", err)
	}
}

func TestIndex_Lookup_CaseInsensitive(t *testing.T) {
	idx, err := NewIndex(testTopics())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	match, ok := idx.Lookup("Our CARBON footprint shrank.")
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Topic != "Carbon" {
		t.Errorf("expected topic Carbon, got %s", match.Topic)
	}
	if match.Trigger != "carbon" {
		t.Errorf("expected trigger carbon, got %s", match.Trigger)
	}
}

func TestIndex_Lookup_NoMatch(t *testing.T) {
	idx, _ := NewIndex(testTopics())

	if _, ok := idx.Lookup("Quarterly revenue grew again."); ok {
		t.Error("expected no match for off-topic sentence")
	}
}

func TestIndex_Lookup_WordBoundary(t *testing.T) {
	idx, _ := NewIndex(testTopics())

	// "waterfall" must not trigger the Water topic
	if _, ok := idx.Lookup("The project used a waterfall methodology."); ok {
		t.Error("expected no match inside a larger word")
	}
}

func TestIndex_Lookup_MultibyteNeighbor(t *testing.T) {
	idx, _ := NewIndex(testTopics())

	// An accented letter glued to the trigger is part of the same word,
	// not a boundary, even though it spans multiple bytes.
	if _, ok := idx.Lookup("The écarbon initiative expanded."); ok {
		t.Error("expected no match when a multi-byte letter precedes the trigger")
	}
	if _, ok := idx.Lookup("The carboné initiative expanded."); ok {
		t.Error("expected no match when a multi-byte letter follows the trigger")
	}

	// Multi-byte punctuation is still a valid boundary.
	match, ok := idx.Lookup("They promised “carbon” reductions.")
	if !ok {
		t.Fatal("expected a match delimited by curly quotes")
	}
	if match.Trigger != "carbon" {
		t.Errorf("expected trigger carbon, got %q", match.Trigger)
	}
}

func TestIndex_Lookup_LongestTriggerWins(t *testing.T) {
	idx, _ := NewIndex(testTopics())

	match, ok := idx.Lookup("We invested in water recycling facilities.")
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Trigger != "water recycling" {
		t.Errorf("expected longest trigger to win, got %q", match.Trigger)
	}
}

func TestIndex_Lookup_HyphenatedTrigger(t *testing.T) {
	idx, _ := NewIndex(testTopics())

	match, ok := idx.Lookup("We pledged a net-zero target.")
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Trigger != "net-zero" {
		t.Errorf("expected trigger net-zero, got %q", match.Trigger)
	}
}

func TestIndex_Lookup_Deterministic(t *testing.T) {
	idx, _ := NewIndex(testTopics())

	text := "Water and carbon both appear in this sentence."
	first, ok := idx.Lookup(text)
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 10; i++ {
		next, ok := idx.Lookup(text)
		if !ok || next != first {
			t.Fatalf("lookup not deterministic: got %+v then %+v", first, next)
		}
	}
}
