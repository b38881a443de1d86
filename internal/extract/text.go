package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// Sentence length bounds in bytes. PDF extraction tends to produce both
// fragment noise and run-on page headers; both are dropped here.
const (
	minSentenceBytes = 20
	maxSentenceBytes = 500
)

// CleanText collapses all whitespace runs into single spaces.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// SplitSentences splits cleaned document text into sentences on
// terminator punctuation followed by whitespace. Fragments outside the
// length bounds are discarded.
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			// Look ahead to avoid splitting on abbreviations
			if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
				if s := acceptSentence(current.String()); s != "" {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
	}

	if current.Len() > 0 {
		if s := acceptSentence(current.String()); s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}

func acceptSentence(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) < minSentenceBytes || len(s) > maxSentenceBytes {
		return ""
	}
	return s
}

// Text extracts the visible text from an HTML document, skipping
// scripts and styles. Used when a caller hands over an HTML export of a
// report instead of plain text.
func Text(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return buf.String(), nil
}
