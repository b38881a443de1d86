package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vparshin/greenclue/internal/model"
	"github.com/vparshin/greenclue/internal/pipeline"
)

var (
	outJSON    string
	outMD      string
	clueCount  int
	minWords   int
	seed       int64
	noCache    bool
	noFooter   bool
	llmEnabled bool
	llmModel   string
	llmBaseURL string
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit <file>",
	Short: "Audit a single report and generate game clues",
	Long: `Audit analyzes the extracted text of one sustainability report:
- Split the document into sentences
- Classify topical sentences as facts or biases
- Check the disclosure standard checklist for omissions
- Sample a deduplicated set of fill-in-the-blank clues

Use "-" to read from stdin. Files ending in .html/.htm are reduced to
visible text first; everything else is treated as plain extracted text.

Example:
  greenclue audit report.txt
  greenclue audit report.txt --clues 8 --seed 42 --json report.json
  pdftotext report.pdf - | greenclue audit -`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	// Output flags
	auditCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	auditCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	auditCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Core flags
	auditCmd.Flags().IntVar(&clueCount, "clues", 5, "number of clues to generate")
	auditCmd.Flags().IntVar(&minWords, "min-words", 4, "minimum words for a sentence to be classifiable")
	auditCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible clue selection")
	auditCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the in-process report cache")

	// LLM flags
	auditCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM clue polishing (phrasing only)")
	auditCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	auditCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "OpenAI-compatible endpoint override")
}

// buildConfig merges defaults, config file values and flags.
func buildConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg := model.DefaultConfig()

	// Config file overrides defaults, flags override both.
	if viper.IsSet("topics") {
		var topics []model.Topic
		if err := viper.UnmarshalKey("topics", &topics); err != nil {
			return nil, fmt.Errorf("config topics: %w", err)
		}
		cfg.Topics = topics
	}
	if viper.IsSet("standards") {
		var standards []model.Standard
		if err := viper.UnmarshalKey("standards", &standards); err != nil {
			return nil, fmt.Errorf("config standards: %w", err)
		}
		cfg.Standards = standards
	}
	if viper.IsSet("clue_count") && !cmd.Flags().Changed("clues") {
		cfg.ClueCount = viper.GetInt("clue_count")
	} else {
		cfg.ClueCount = clueCount
	}
	if viper.IsSet("min_sentence_words") && !cmd.Flags().Changed("min-words") {
		cfg.MinSentenceWords = viper.GetInt("min_sentence_words")
	} else {
		cfg.MinSentenceWords = minWords
	}

	if cmd.Flags().Changed("seed") {
		s := seed
		cfg.Seed = &s
	}

	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Enabled = true
		cfg.LLM.Model = llmModel
		cfg.LLM.BaseURL = llmBaseURL
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" && cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}

func runAudit(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Auditing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Topics: %d, standards: %d, clues: %d\n",
			len(cfg.Topics), len(cfg.Standards), cfg.ClueCount)
	}

	report, err := p.AnalyzeFile(ctx, path)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Classified %d sentences (%d facts, %d biases)\n",
			report.Stats.Sentences, report.Stats.Facts, report.Stats.Biases)
		fmt.Fprintf(os.Stderr, "✓ Composed %d clues\n", report.Clues.Size())
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(report)
	return nil
}
