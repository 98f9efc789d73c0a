package decoding

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/tupa/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Decode decodes a single syllable. Input is trimmed and lowercased first.
// Decoder failures are returned unchanged as *tupa.Error.
func (s *Service) Decode(ctx context.Context, in DecodeInput) (domain.Position, error) {
	if err := in.Validate(); err != nil {
		return domain.Position{}, err
	}

	syllable := domain.NormalizeSyllable(in.Syllable)
	pos, err := s.decoder.Decode(syllable, s.kinds(in.Marginal))
	if err != nil {
		s.log.DebugContext(ctx, "syllable rejected",
			slog.String("syllable", syllable),
			slog.String("error", err.Error()),
		)
		return domain.Position{}, err
	}

	s.log.DebugContext(ctx, "syllable decoded",
		slog.String("syllable", syllable),
		slog.String("position", pos.Description()),
	)
	return pos, nil
}

// DecodeBatch decodes every syllable of the batch. Per-item failures are
// carried in the results, which keep the input order; only validation and
// context cancellation fail the whole call.
func (s *Service) DecodeBatch(ctx context.Context, in BatchInput) ([]Result, error) {
	if err := in.Validate(s.cfg.BatchLimit); err != nil {
		return nil, err
	}

	kinds := s.kinds(in.Marginal)
	results := make([]Result, len(in.Syllables))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for i, raw := range in.Syllables {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			syllable := domain.NormalizeSyllable(raw)
			pos, err := s.decoder.Decode(syllable, kinds)
			results[i] = Result{Syllable: syllable, Position: pos, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.log.DebugContext(ctx, "batch decoded",
		slog.Int("count", len(results)),
		slog.Int("failed", failed),
	)
	return results, nil
}
