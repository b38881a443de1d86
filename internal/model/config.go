package model

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the two failure kinds the core can produce.
// Content shortfalls (no matches, small pools) are not errors.
var (
	// ErrEmptyDocument is returned when the input text is empty or
	// whitespace-only.
	ErrEmptyDocument = errors.New("empty document text")

	// ErrNoTopics is returned when the topic index would be empty.
	ErrNoTopics = errors.New("no topics configured")

	// ErrInvalidClueCount is returned for a non-positive clue count.
	ErrInvalidClueCount = errors.New("clue count must be positive")

	// ErrInvalidMinWords is returned for a negative minimum word floor.
	ErrInvalidMinWords = errors.New("min sentence words must not be negative")
)

// Config holds the complete run configuration. Built once from defaults,
// config file, environment and flags; treated as immutable afterwards.
type Config struct {
	Topics    []Topic    `yaml:"topics" mapstructure:"topics"`
	Standards []Standard `yaml:"standards" mapstructure:"standards"`

	ClueCount        int    `yaml:"clue_count" mapstructure:"clue_count"`
	MinSentenceWords int    `yaml:"min_sentence_words" mapstructure:"min_sentence_words"`
	MaxOmissionClues int    `yaml:"max_omission_clues" mapstructure:"max_omission_clues"`
	Seed             *int64 `yaml:"seed,omitempty" mapstructure:"seed"` // nil = time-seeded

	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// Standard describes one disclosure standard for the omission audit.
type Standard struct {
	Code     string   `json:"code" yaml:"code"`
	Title    string   `json:"title" yaml:"title"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Metrics  []string `json:"metrics" yaml:"metrics"` // quantitative terms expected alongside the keywords
}

// CacheConfig controls the in-process report cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// LLMConfig controls the optional clue polisher. The polisher only
// rewrites clue phrasing; it never affects classification or selection.
type LLMConfig struct {
	Enabled           bool    `yaml:"enabled" mapstructure:"enabled"`
	Model             string  `yaml:"model" mapstructure:"model"`
	APIKey            string  `yaml:"-" mapstructure:"-"` // from environment only, never serialized
	BaseURL           string  `yaml:"base_url,omitempty" mapstructure:"base_url"`
	TimeoutSeconds    int     `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// ConcurrencyConfig controls batch processing parallelism.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Topics:           DefaultTopics(),
		Standards:        DefaultStandards(),
		ClueCount:        5,
		MinSentenceWords: 4,
		MaxOmissionClues: 2,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		LLM: LLMConfig{
			Enabled:           false,
			Model:             "gpt-4o-mini",
			TimeoutSeconds:    30,
			RequestsPerSecond: 2,
			Burst:             2,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}

// DefaultStandards returns the built-in disclosure standard checklist.
func DefaultStandards() []Standard {
	return []Standard{
		{
			Code:     "GRI-304",
			Title:    "Biodiversity",
			Keywords: []string{"biodiversity", "species", "habitat", "ecosystem"},
			Metrics:  []string{"hectares", "protected areas", "restored"},
		},
		{
			Code:     "GRI-412",
			Title:    "Human Rights",
			Keywords: []string{"human rights", "forced labor", "child labor", "modern slavery"},
			Metrics:  []string{"audits", "grievances", "incidents"},
		},
		{
			Code:     "GRI-305-3",
			Title:    "Scope 3 Emissions",
			Keywords: []string{"scope 3", "indirect emissions", "value chain emissions"},
			Metrics:  []string{"tco2e", "tons co2", "metric tons"},
		},
		{
			Code:     "GRI-303",
			Title:    "Water Recycling",
			Keywords: []string{"water recycling", "recycled water", "water reuse", "effluent"},
			Metrics:  []string{"megaliters", "cubic meters", "m3"},
		},
		{
			Code:     "GRI-405",
			Title:    "Gender Pay",
			Keywords: []string{"gender pay", "pay gap", "equal pay", "remuneration"},
			Metrics:  []string{"ratio", "median", "percent"},
		},
	}
}

// Validate checks the configuration and fails fast on the first problem.
func (c *Config) Validate() error {
	if len(c.Topics) == 0 {
		return ErrNoTopics
	}
	for _, t := range c.Topics {
		if t.Name == "" || len(t.Triggers) == 0 {
			return fmt.Errorf("topic %q: %w", t.Name, ErrNoTopics)
		}
	}
	if c.ClueCount <= 0 {
		return fmt.Errorf("clue_count %d: %w", c.ClueCount, ErrInvalidClueCount)
	}
	if c.MinSentenceWords < 0 {
		return fmt.Errorf("min_sentence_words %d: %w", c.MinSentenceWords, ErrInvalidMinWords)
	}
	return nil
}
