// Package audit checks a document against a disclosure standard
// checklist and reports what is missing or mentioned without data.
package audit

import (
	"fmt"
	"strings"

	"github.com/vparshin/greenclue/internal/model"
)

// Auditor scans full document text for disclosure standard coverage.
// Stateless apart from its checklist; safe for concurrent use.
type Auditor struct {
	standards []model.Standard
}

// New creates an auditor over the given checklist. An empty checklist
// is allowed and simply yields no findings.
func New(standards []model.Standard) *Auditor {
	return &Auditor{standards: standards}
}

// Check evaluates every standard against the document text. A standard
// is missing when none of its keywords or metrics appear, unquantified
// when keywords appear without any metric, and covered otherwise.
func (a *Auditor) Check(text string) []model.Finding {
	lower := strings.ToLower(text)

	findings := make([]model.Finding, 0, len(a.standards))
	for _, std := range a.standards {
		var keywordsFound []string
		for _, kw := range std.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				keywordsFound = append(keywordsFound, kw)
			}
		}

		metricFound := false
		for _, m := range std.Metrics {
			if strings.Contains(lower, strings.ToLower(m)) {
				metricFound = true
				break
			}
		}

		f := model.Finding{Code: std.Code, Title: std.Title, Keywords: keywordsFound, Expected: std.Keywords}
		switch {
		case len(keywordsFound) == 0 && !metricFound:
			f.Status = model.StatusMissing
			f.Reason = fmt.Sprintf("no keywords or metrics found for %s", std.Title)
		case !metricFound:
			f.Status = model.StatusUnquantified
			f.Reason = fmt.Sprintf("mentions %s but lacks quantitative metrics", strings.Join(firstN(keywordsFound, 2), ", "))
		default:
			f.Status = model.StatusCovered
		}
		findings = append(findings, f)
	}

	return findings
}

// Missing filters findings down to absent standards, the omission clue
// candidates.
func Missing(findings []model.Finding) []model.Finding {
	var out []model.Finding
	for _, f := range findings {
		if f.Status == model.StatusMissing {
			out = append(out, f)
		}
	}
	return out
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
