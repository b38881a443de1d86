package clue

import (
	"regexp"
	"strings"

	"github.com/vparshin/greenclue/internal/model"
)

// preferredClueBytes: shorter sentences make better puzzle clues; longer
// ones are only used when nothing shorter matched a word.
const preferredClueBytes = 200

// Composer turns selected sentences and audit findings into the final
// fill-in-the-blank clue set.
type Composer struct {
	selector    *Selector
	clueCount   int
	maxOmission int
}

// NewComposer creates a composer drawing through the given selector.
func NewComposer(selector *Selector, clueCount, maxOmission int) *Composer {
	return &Composer{selector: selector, clueCount: clueCount, maxOmission: maxOmission}
}

// Compose builds a clue set of at most clueCount entries: up to
// maxOmission clues about missing standards, the rest sampled from the
// relevant sentence pool with the matched trigger blanked out. Answer
// words are unique within one set. Too few candidates degrade to a
// smaller set, never an error.
func (c *Composer) Compose(sentences []model.Sentence, missing []model.Finding) model.ClueSet {
	var items []model.Clue
	usedWords := make(map[string]bool)

	for _, f := range shuffleFindings(c.selector, missing) {
		if len(items) >= c.maxOmission || len(items) >= c.clueCount {
			break
		}
		word := strings.ToUpper(answerWordForStandard(f))
		if word == "" || usedWords[word] {
			continue
		}
		usedWords[word] = true
		items = append(items, model.Clue{
			Word: word,
			Text: omissionTemplates[c.selector.intn(len(omissionTemplates))],
			Kind: model.ClueKindOmission,
		})
	}

	// Oversample the sentence pool: blanking can discard candidates whose
	// answer word repeats one already taken. Short sentences are tried
	// first, they make better clues.
	for _, s := range shortFirst(c.selector.Select(sentences, c.clueCount*2)) {
		if len(items) >= c.clueCount {
			break
		}
		word := strings.ToUpper(s.Trigger)
		if word == "" || usedWords[word] {
			continue
		}

		blanked, ok := blankWord(s.Text, s.Trigger)
		if !ok {
			continue
		}

		usedWords[word] = true
		items = append(items, model.Clue{
			Word:     word,
			Text:     blanked,
			Kind:     kindFor(s.Category),
			Topic:    s.Topic,
			Original: s.Text,
		})
	}

	return model.ClueSet{Items: items}
}

// blankWord replaces every occurrence of the answer word in the
// sentence with the blank placeholder, case-insensitively.
func blankWord(sentence, word string) (string, bool) {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return "", false
	}
	if !re.MatchString(sentence) {
		// Multi-word triggers match as substrings during lookup; fall back
		// to a plain case-insensitive replacement.
		idx := strings.Index(strings.ToLower(sentence), strings.ToLower(word))
		if idx < 0 {
			return "", false
		}
		return sentence[:idx] + Blank + sentence[idx+len(word):], true
	}
	return re.ReplaceAllString(sentence, Blank), true
}

// answerWordForStandard picks the puzzle word for an omission clue: the
// first keyword of the standard's own checklist, or the title when the
// checklist is empty. Finding.Keywords holds document hits, which are
// empty for an absent standard.
func answerWordForStandard(f model.Finding) string {
	if len(f.Expected) > 0 {
		return f.Expected[0]
	}
	return f.Title
}

// shortFirst reorders a selection so sentences within the preferred
// length come before longer ones, keeping relative order otherwise.
func shortFirst(sentences []model.Sentence) []model.Sentence {
	out := make([]model.Sentence, 0, len(sentences))
	for _, s := range sentences {
		if len(s.Text) <= preferredClueBytes {
			out = append(out, s)
		}
	}
	for _, s := range sentences {
		if len(s.Text) > preferredClueBytes {
			out = append(out, s)
		}
	}
	return out
}

func kindFor(c model.Category) model.ClueKind {
	if c == model.CategoryFact {
		return model.ClueKindFact
	}
	return model.ClueKindBias
}

func shuffleFindings(s *Selector, findings []model.Finding) []model.Finding {
	if len(findings) == 0 {
		return nil
	}
	out := make([]model.Finding, 0, len(findings))
	for _, i := range s.perm(len(findings)) {
		out = append(out, findings[i])
	}
	return out
}
