// Package pipeline orchestrates the analysis of one document: clean,
// split, classify, audit, select and compose clues, render.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/vparshin/greenclue/internal/audit"
	"github.com/vparshin/greenclue/internal/cache"
	"github.com/vparshin/greenclue/internal/classify"
	"github.com/vparshin/greenclue/internal/clue"
	"github.com/vparshin/greenclue/internal/extract"
	"github.com/vparshin/greenclue/internal/keyword"
	"github.com/vparshin/greenclue/internal/llm"
	"github.com/vparshin/greenclue/internal/model"
)

// Pipeline wires the analysis stages together. Safe for concurrent use
// across documents: every stage is read-only after construction and the
// composer guards its random source.
type Pipeline struct {
	classifier *classify.Classifier
	auditor    *audit.Auditor
	composer   *clue.Composer
	polisher   *llm.Polisher // nil when disabled
	reports    cache.Cache   // nil when disabled
	config     *model.Config
}

// New builds a pipeline from a validated configuration.
func New(cfg *model.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	index, err := keyword.NewIndex(cfg.Topics)
	if err != nil {
		return nil, fmt.Errorf("keyword index: %w", err)
	}

	selector := clue.NewSelector(cfg.Seed)

	p := &Pipeline{
		classifier: classify.New(index, cfg.MinSentenceWords),
		auditor:    audit.New(cfg.Standards),
		composer:   clue.NewComposer(selector, cfg.ClueCount, cfg.MaxOmissionClues),
		config:     cfg,
	}

	if cfg.Cache.Enabled {
		p.reports = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
	}

	if cfg.LLM.Enabled {
		provider, err := llm.NewOpenAIProvider(llm.Config{
			Model:          cfg.LLM.Model,
			APIKey:         cfg.LLM.APIKey,
			BaseURL:        cfg.LLM.BaseURL,
			TimeoutSeconds: cfg.LLM.TimeoutSeconds,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM polisher disabled: %v\n", err)
		} else {
			p.polisher = llm.NewPolisher(provider, cfg.LLM.RequestsPerSecond, cfg.LLM.Burst)
		}
	}

	return p, nil
}

// Analyze runs the full pass over one document's extracted text.
// Empty input is an error; a document with no relevant sentences is
// not — it yields a report with an empty clue set.
func (p *Pipeline) Analyze(ctx context.Context, source, text string) (*model.Report, error) {
	cleaned := extract.CleanText(text)
	if cleaned == "" {
		return nil, fmt.Errorf("analyze %s: %w", source, model.ErrEmptyDocument)
	}

	if p.reports != nil {
		if data, ok := p.reports.Get(cache.Key(cleaned)); ok {
			var cached model.Report
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.Source = source
				return &cached, nil
			}
		}
	}

	sentences := p.classifier.ClassifyAll(extract.SplitSentences(cleaned))

	report := &model.Report{
		Source:     source,
		AnalyzedAt: time.Now().UTC(),
	}
	for _, s := range sentences {
		report.Stats.Sentences++
		switch s.Category {
		case model.CategoryFact:
			report.Stats.Facts++
			report.Facts = append(report.Facts, s)
		case model.CategoryBias:
			report.Stats.Biases++
			report.Biases = append(report.Biases, s)
		default:
			report.Stats.Irrelevant++
		}
	}

	report.Findings = p.auditor.Check(cleaned)
	report.Clues = p.composer.Compose(sentences, audit.Missing(report.Findings))

	// Polishing runs last and only touches phrasing.
	if p.polisher != nil && !report.Clues.Empty() {
		report.Polished = p.polisher.Polish(ctx, &report.Clues)
	}

	if p.reports != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = p.reports.Set(cache.Key(cleaned), data, p.config.Cache.TTL)
		}
	}

	return report, nil
}

// AnalyzeFile reads a document from disk ("-" means stdin), strips HTML
// when the extension says so, and analyzes it.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	text, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return p.Analyze(ctx, path, text)
}
