package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vparshin/greenclue/internal/model"
)

const sampleReport = `Our carbon emissions fell 12% in 2023. ` +
	`We are committed to leading water stewardship across every region. ` +
	`Renewable energy covered 40% of total demand last year. ` +
	`The cafeteria menu was refreshed twice during the summer. ` +
	`Yes. ` +
	`We believe our climate strategy sets the industry benchmark.`

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	seed := int64(42)
	cfg.Seed = &seed
	cfg.Standards = nil // keep omission clues out unless a test wants them
	cfg.Cache.Enabled = false
	return cfg
}

func TestPipeline_New_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.ClueCount = 0

	if _, err := New(cfg); !errors.Is(err, model.ErrInvalidClueCount) {
		t.Errorf("expected ErrInvalidClueCount, got %v", err)
	}

	cfg = testConfig()
	cfg.Topics = nil
	if _, err := New(cfg); !errors.Is(err, model.ErrNoTopics) {
		t.Errorf("expected ErrNoTopics, got %v", err)
	}
}

func TestPipeline_Analyze_EmptyInput(t *testing.T) {
	p, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, text := range []string{"", "   \n\t  "} {
		if _, err := p.Analyze(context.Background(), "test", text); !errors.Is(err, model.ErrEmptyDocument) {
			t.Errorf("%q: expected ErrEmptyDocument, got %v", text, err)
		}
	}
}

func TestPipeline_Analyze_ClassifiesAndSelects(t *testing.T) {
	p, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	report, err := p.Analyze(context.Background(), "sample", sampleReport)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.Stats.Facts < 2 {
		t.Errorf("expected at least 2 facts, got %d", report.Stats.Facts)
	}
	if report.Stats.Biases < 2 {
		t.Errorf("expected at least 2 biases, got %d", report.Stats.Biases)
	}
	if report.Stats.Irrelevant < 1 {
		t.Errorf("expected at least 1 irrelevant sentence, got %d", report.Stats.Irrelevant)
	}

	if report.Clues.Empty() {
		t.Fatal("expected clues")
	}
	if report.Clues.Size() > 5 {
		t.Errorf("expected at most 5 clues, got %d", report.Clues.Size())
	}
	for _, c := range report.Clues.Items {
		if c.Kind == model.ClueKindOmission {
			t.Errorf("unexpected omission clue with empty checklist: %+v", c)
		}
	}
}

func TestPipeline_Analyze_SmallPoolDegrades(t *testing.T) {
	p, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Three relevant sentences, clue count five: set contains all three.
	text := "Our carbon emissions fell 12% in 2023. " +
		"Water withdrawal dropped 8% at manufacturing sites. " +
		"Renewable energy covered 40% of total demand last year."

	report, err := p.Analyze(context.Background(), "small", text)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Clues.Size() != 3 {
		t.Errorf("expected exactly 3 clues, got %d", report.Clues.Size())
	}
}

func TestPipeline_Analyze_NoRelevantSentences(t *testing.T) {
	p, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	report, err := p.Analyze(context.Background(), "offtopic",
		"The annual gala dinner was held downtown. Attendance doubled compared with the previous event.")
	if err != nil {
		t.Fatalf("no-match input must not fail, got %v", err)
	}
	if !report.Clues.Empty() {
		t.Errorf("expected empty clue set, got %d", report.Clues.Size())
	}
}

func TestPipeline_Analyze_DeterministicWithSeed(t *testing.T) {
	first, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	r1, err := first.Analyze(context.Background(), "a", sampleReport)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	r2, err := second.Analyze(context.Background(), "a", sampleReport)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if r1.Clues.Size() != r2.Clues.Size() {
		t.Fatalf("clue counts differ: %d vs %d", r1.Clues.Size(), r2.Clues.Size())
	}
	for i := range r1.Clues.Items {
		if r1.Clues.Items[i] != r2.Clues.Items[i] {
			t.Errorf("clue %d differs under same seed", i)
		}
	}
}

func TestPipeline_Analyze_OmissionCluesFromChecklist(t *testing.T) {
	cfg := testConfig()
	cfg.Standards = model.DefaultStandards()

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// sampleReport never mentions human rights, gender pay etc.
	report, err := p.Analyze(context.Background(), "sample", sampleReport)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	omissions := 0
	for _, c := range report.Clues.Items {
		if c.Kind == model.ClueKindOmission {
			omissions++
		}
	}
	if omissions == 0 {
		t.Error("expected omission clues for unmentioned standards")
	}
	if omissions > cfg.MaxOmissionClues {
		t.Errorf("omission clues exceed cap: %d > %d", omissions, cfg.MaxOmissionClues)
	}
}

func TestPipeline_Analyze_CacheHit(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	r1, err := p.Analyze(context.Background(), "first.txt", sampleReport)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// Same content under a different label: served from cache with the
	// new source name.
	r2, err := p.Analyze(context.Background(), "second.txt", sampleReport)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if r2.Source != "second.txt" {
		t.Errorf("cached report kept stale source: %s", r2.Source)
	}
	if r1.Clues.Size() != r2.Clues.Size() {
		t.Errorf("cached report differs: %d vs %d clues", r1.Clues.Size(), r2.Clues.Size())
	}
}

func TestPipeline_AnalyzeFile_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	if err := os.WriteFile(path, []byte(sampleReport), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	report, err := p.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Source != path {
		t.Errorf("expected source %s, got %s", path, report.Source)
	}
	if report.Clues.Empty() {
		t.Error("expected clues from file input")
	}
}

func TestPipeline_AnalyzeFile_HTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.html")
	html := `<html><body><p>` + sampleReport + `</p><script>var x = "Waste rose 99% in 1999.";</script></body></html>`
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	report, err := p.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, f := range report.Facts {
		if f.Text == `var x = "Waste rose 99% in 1999.";` {
			t.Error("script content leaked into classification")
		}
	}
	if report.Clues.Empty() {
		t.Error("expected clues from HTML input")
	}
}
