package decoding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tupa/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Verify decodes every reference syllable stored under the source and
// compares the result with the recorded description.
func (s *Service) Verify(ctx context.Context, in VerifyInput) (Report, error) {
	if err := in.Validate(); err != nil {
		return Report{}, err
	}

	refs, err := s.corpus.ListBySource(ctx, in.Source)
	if err != nil {
		return Report{}, fmt.Errorf("list corpus %q: %w", in.Source, err)
	}
	if len(refs) == 0 {
		return Report{}, fmt.Errorf("corpus %q: %w", in.Source, domain.ErrNotFound)
	}

	limit := s.cfg.PrintLimit
	if in.PrintLimit != nil {
		limit = *in.PrintLimit
	}

	report, err := s.VerifySyllables(ctx, refs, limit)
	if err != nil {
		return Report{}, err
	}

	s.log.InfoContext(ctx, "corpus verified",
		slog.String("source", in.Source),
		slog.Int("run", report.Run),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

type outcome struct {
	expected domain.Position
	parseErr error
	actual   domain.Position
	err      error
}

// VerifySyllables runs the round-trip check over refs without touching the
// repository. At most printLimit failures are kept (0 = all). Corpus
// entries may be marginal, so every marginal kind is admitted.
func (s *Service) VerifySyllables(ctx context.Context, refs []domain.RefSyllable, printLimit int) (Report, error) {
	outcomes := make([]outcome, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for i, ref := range refs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var o outcome
			o.expected, o.parseErr = domain.ParseDescription(ref.Description, domain.AllMarginalKinds)
			o.actual, o.err = s.decoder.Decode(domain.NormalizeSyllable(ref.Spelling), domain.AllMarginalKinds)
			outcomes[i] = o
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var report Report
	for i, o := range outcomes {
		report.Run++

		f := Failure{Spelling: refs[i].Spelling, Expected: refs[i].Description}
		switch {
		case o.parseErr != nil:
			f.Err = o.parseErr
		case o.err != nil:
			f.Err = o.err
		case !o.actual.Equal(o.expected):
		default:
			continue
		}
		if o.err == nil {
			f.Actual = o.actual.Description()
		}

		report.Failed++
		if printLimit == 0 || len(report.Failures) < printLimit {
			report.Failures = append(report.Failures, f)
		}
	}
	return report, nil
}
