package model

// ClueKind distinguishes how a clue was produced.
type ClueKind string

const (
	ClueKindFact ClueKind = "fact"
	ClueKindBias ClueKind = "bias"
	// ClueKindOmission marks a clue about a disclosure standard the
	// document never mentions; it has no source sentence.
	ClueKindOmission ClueKind = "omission"
)

// Clue is one fill-in-the-blank puzzle entry. Word is the hidden answer,
// Text is the presented clue with the answer blanked out.
type Clue struct {
	Word     string   `json:"word"`
	Text     string   `json:"text"`
	Kind     ClueKind `json:"kind"`
	Topic    string   `json:"topic,omitempty"`
	Original string   `json:"original,omitempty"` // source sentence, empty for omission clues
}

// ClueSet is the sampled clue collection for one game round. Built fresh
// per run; every member comes from the relevant (non-irrelevant) pool.
type ClueSet struct {
	Items []Clue `json:"items"`
}

// Size returns the number of clues in the set.
func (c ClueSet) Size() int { return len(c.Items) }

// Empty reports whether no clues were available.
func (c ClueSet) Empty() bool { return len(c.Items) == 0 }
