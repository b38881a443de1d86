package model

// Category classifies a sentence relative to the topic index.
type Category string

const (
	// CategoryFact marks a topical sentence carrying quantitative evidence.
	CategoryFact Category = "fact"
	// CategoryBias marks a topical sentence making a qualitative or
	// subjective claim without supporting data.
	CategoryBias Category = "bias"
	// CategoryIrrelevant marks sentences with no topic match, or fragments
	// too short to classify.
	CategoryIrrelevant Category = "irrelevant"
)

// Sentence is one classified sentence from a document. It is created by
// the splitter, classified exactly once, and never mutated afterwards.
type Sentence struct {
	Text      string   `json:"text"`
	Topic     string   `json:"topic,omitempty"`     // matched topic name, empty if irrelevant
	Trigger   string   `json:"trigger,omitempty"`   // trigger term that matched
	Category  Category `json:"category"`
	Heuristic string   `json:"heuristic,omitempty"` // which signal decided the category
	Index     int      `json:"index,omitempty"`     // sentence position in the document (0-based)
}

// Relevant reports whether the sentence qualifies for clue selection.
func (s Sentence) Relevant() bool {
	return s.Category != CategoryIrrelevant
}
