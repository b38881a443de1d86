package model

import "time"

// Report is the complete analysis result for one document.
type Report struct {
	Source     string    `json:"source"`      // file path or caller-supplied label
	AnalyzedAt time.Time `json:"analyzed_at"`
	Stats      Stats     `json:"stats"`

	Facts    []Sentence `json:"facts,omitempty"`
	Biases   []Sentence `json:"biases,omitempty"`
	Findings []Finding  `json:"findings,omitempty"` // standards audit results

	Clues ClueSet `json:"clues"`

	Polished bool `json:"polished,omitempty"` // clue phrasing rewritten by the LLM polisher
}

// Stats summarizes the classification pass with transparent counters.
type Stats struct {
	Sentences  int `json:"sentences"`
	Facts      int `json:"facts"`
	Biases     int `json:"biases"`
	Irrelevant int `json:"irrelevant"`
}

// FindingStatus is the audit verdict for one disclosure standard.
type FindingStatus string

const (
	// StatusMissing means neither keywords nor metrics for the standard
	// appear anywhere in the document.
	StatusMissing FindingStatus = "missing"
	// StatusUnquantified means the standard is mentioned but no required
	// metric backs it up.
	StatusUnquantified FindingStatus = "unquantified"
	// StatusCovered means both keywords and at least one metric appear.
	StatusCovered FindingStatus = "covered"
)

// Finding is the audit result for a single disclosure standard.
type Finding struct {
	Code     string        `json:"code"`
	Title    string        `json:"title"`
	Status   FindingStatus `json:"status"`
	Keywords []string      `json:"keywords,omitempty"` // keywords found in the document
	Expected []string      `json:"expected,omitempty"` // the standard's own checklist keywords
	Reason   string        `json:"reason,omitempty"`
}
