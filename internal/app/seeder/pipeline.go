package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/tupa/internal/domain"
	"github.com/heartmarshall/tupa/internal/seeder/corpus"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"verify", "corpus"}

// errVerifyFailed marks a corpus phase skipped because verification found
// mismatches and AllowMismatches is not set.
var errVerifyFailed = errors.New("corpus verification failed")

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline parses one corpus file, checks it against the decoder and
// inserts it in batches.
type Pipeline struct {
	log      *slog.Logger
	repo     RefSyllableBulkRepo
	tx       TxManager
	verifier Verifier
	cfg      Config
	results  map[string]PhaseResult

	parsed *corpus.ParseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo RefSyllableBulkRepo, tx TxManager, verifier Verifier, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log,
		repo:     repo,
		tx:       tx,
		verifier: verifier,
		cfg:      cfg,
		results:  make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. Unknown phase names are an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "verify":
			result = p.runVerify(ctx)
		case "corpus":
			result = p.runCorpus(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		filter[ph] = true
	}
	for ph := range filter {
		if !isKnownPhase(ph) {
			return nil, fmt.Errorf("unknown phase %q", ph)
		}
	}

	var filtered []string
	for _, ph := range allPhases {
		if filter[ph] {
			filtered = append(filtered, ph)
		}
	}
	return filtered, nil
}

func isKnownPhase(name string) bool {
	for _, ph := range allPhases {
		if ph == name {
			return true
		}
	}
	return false
}

// parse reads the corpus file once and caches it for later phases.
func (p *Pipeline) parse() (*corpus.ParseResult, error) {
	if p.parsed != nil {
		return p.parsed, nil
	}
	if p.cfg.CorpusPath == "" {
		return nil, fmt.Errorf("corpus path not configured")
	}

	parsed, err := corpus.Parse(p.cfg.CorpusPath, p.cfg.SourceSlug)
	if err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	p.log.Info("corpus parsed",
		slog.String("source", p.cfg.SourceSlug),
		slog.Int("syllables", len(parsed.Syllables)),
		slog.Int("total_lines", parsed.Stats.TotalLines),
		slog.Int("invalid_lines", parsed.Stats.InvalidLines),
		slog.Int("duplicates", parsed.Stats.Duplicates),
	)
	for _, le := range parsed.Invalid {
		p.log.Warn("invalid corpus line",
			slog.Int("line", le.Line),
			slog.String("text", le.Text),
			slog.String("error", le.Err.Error()),
		)
	}

	p.parsed = &parsed
	return p.parsed, nil
}

// runVerify decodes every parsed spelling and counts those that do not
// round-trip to their description.
func (p *Pipeline) runVerify(ctx context.Context) PhaseResult {
	parsed, err := p.parse()
	if err != nil {
		return PhaseResult{Skipped: 1, Err: err}
	}

	report, err := p.verifier.VerifySyllables(ctx, parsed.Syllables, p.cfg.PrintLimit)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("verify corpus: %w", err)}
	}

	for _, f := range report.Failures {
		attrs := []any{
			slog.String("spelling", f.Spelling),
			slog.String("expected", f.Expected),
			slog.String("actual", f.Actual),
		}
		if f.Err != nil {
			attrs = append(attrs, slog.String("error", f.Err.Error()))
		}
		p.log.Warn("corpus mismatch", attrs...)
	}

	return PhaseResult{
		Skipped: len(parsed.Invalid),
		Errors:  report.Failed,
	}
}

// runCorpus inserts the parsed syllables batch by batch, each batch in its
// own transaction.
func (p *Pipeline) runCorpus(ctx context.Context) PhaseResult {
	if !p.cfg.AllowMismatches {
		if v, ok := p.results["verify"]; ok && (v.Err != nil || v.Errors > 0) {
			return PhaseResult{Skipped: 1, Err: errVerifyFailed}
		}
	}

	parsed, err := p.parse()
	if err != nil {
		return PhaseResult{Skipped: 1, Err: err}
	}

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(parsed.Syllables)}
	}

	before, err := p.repo.CountBySource(ctx, p.cfg.SourceSlug)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("count existing: %w", err)}
	}

	inserted, err := batchProcess(parsed.Syllables, p.cfg.BatchSize, func(batch []domain.RefSyllable) (int, error) {
		var n int
		err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
			var err error
			n, err = p.repo.BulkInsert(ctx, batch)
			return err
		})
		return n, err
	})
	if err != nil {
		return PhaseResult{Inserted: inserted, Err: fmt.Errorf("insert syllables: %w", err)}
	}

	p.log.Info("corpus stored",
		slog.String("source", p.cfg.SourceSlug),
		slog.Int("existing", before),
		slog.Int("inserted", inserted),
	)

	return PhaseResult{
		Inserted: inserted,
		Skipped:  len(parsed.Syllables) - inserted,
	}
}

// batchProcess splits items into chunks of batchSize and calls fn for each chunk.
// Returns the total count from all fn calls.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
