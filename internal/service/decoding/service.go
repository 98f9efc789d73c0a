package decoding

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/tupa/internal/domain"
)

// positionDecoder decodes a single normalized TUPA syllable.
type positionDecoder interface {
	Decode(syllable string, kinds domain.MarginalKinds) (domain.Position, error)
}

// corpusRepo defines the reference corpus repository needed by the decoding service.
type corpusRepo interface {
	ListBySource(ctx context.Context, sourceSlug string) ([]domain.RefSyllable, error)
}

// Config holds decoding service limits.
type Config struct {
	// MarginalKinds is used when a request does not choose its own.
	MarginalKinds domain.MarginalKinds
	BatchLimit    int
	Workers       int
	PrintLimit    int
}

// Service implements single, batch and corpus-wide decoding.
type Service struct {
	log     *slog.Logger
	decoder positionDecoder
	corpus  corpusRepo
	cfg     Config
}

// NewService creates a new decoding service instance. corpus may be nil
// when only offline operations are used.
func NewService(
	logger *slog.Logger,
	decoder positionDecoder,
	corpus corpusRepo,
	cfg Config,
) *Service {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Service{
		log:     logger.With("service", "decoding"),
		decoder: decoder,
		corpus:  corpus,
		cfg:     cfg,
	}
}

func (s *Service) kinds(override *domain.MarginalKinds) domain.MarginalKinds {
	if override != nil {
		return *override
	}
	return s.cfg.MarginalKinds
}
