package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/vparshin/greenclue/internal/model"
)

// Renderer writes reports as JSON, Markdown and a stdout summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Sustainability Audit: %s\n\n", report.Source)
	fmt.Fprintf(&b, "Analyzed: %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04 UTC"))

	fmt.Fprintf(&b, "## Classification\n\n")
	fmt.Fprintf(&b, "| Sentences | Facts | Biases | Irrelevant |\n")
	fmt.Fprintf(&b, "|---:|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d |\n\n",
		report.Stats.Sentences, report.Stats.Facts, report.Stats.Biases, report.Stats.Irrelevant)

	if len(report.Findings) > 0 {
		fmt.Fprintf(&b, "## Disclosure Standards\n\n")
		for _, f := range report.Findings {
			marker := "✓"
			switch f.Status {
			case model.StatusMissing:
				marker = "✗"
			case model.StatusUnquantified:
				marker = "⚠"
			}
			fmt.Fprintf(&b, "- %s **%s** (%s)", marker, f.Title, f.Code)
			if f.Reason != "" {
				fmt.Fprintf(&b, " — %s", f.Reason)
			}
			fmt.Fprintf(&b, "\n")
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "## Clues\n\n")
	if report.Clues.Empty() {
		fmt.Fprintf(&b, "No clues available: the document has no relevant sentences.\n\n")
	}
	for i, c := range report.Clues.Items {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, strings.ToUpper(string(c.Kind)), c.Text)
		fmt.Fprintf(&b, "   - answer: `%s`\n", c.Word)
		if c.Topic != "" {
			fmt.Fprintf(&b, "   - topic: %s\n", c.Topic)
		}
	}
	fmt.Fprintf(&b, "\n")

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n")
		fmt.Fprintf(&b, "Generated by greenclue. Categories are lexical heuristics, not judgments of truth.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a short result overview to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n=== %s ===\n", report.Source)
	fmt.Printf("Sentences: %d (%d facts, %d biases, %d irrelevant)\n",
		report.Stats.Sentences, report.Stats.Facts, report.Stats.Biases, report.Stats.Irrelevant)

	missing := 0
	for _, f := range report.Findings {
		if f.Status == model.StatusMissing {
			missing++
		}
	}
	if missing > 0 {
		fmt.Printf("Missing standards: %d\n", missing)
	}

	fmt.Printf("Clues: %d\n", report.Clues.Size())
	for _, c := range report.Clues.Items {
		fmt.Printf("  WORD: %-18s TYPE: %-8s CLUE: %s\n", c.Word, strings.ToUpper(string(c.Kind)), c.Text)
	}
}
