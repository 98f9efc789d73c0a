// Package seeder orchestrates loading reference syllable corpora into the
// database.
package seeder

import (
	"context"

	"github.com/heartmarshall/tupa/internal/domain"
	"github.com/heartmarshall/tupa/internal/service/decoding"
)

// RefSyllableBulkRepo defines the batch repository contract consumed by the
// seeder pipeline. Implemented by refsyllable.Repo.
type RefSyllableBulkRepo interface {
	// BulkInsert skips rows that already exist (ON CONFLICT DO NOTHING).
	BulkInsert(ctx context.Context, syllables []domain.RefSyllable) (int, error)
	CountBySource(ctx context.Context, sourceSlug string) (int, error)
}

// TxManager runs fn in a single database transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Verifier round-trips reference syllables through the decoder.
// Implemented by decoding.Service.
type Verifier interface {
	VerifySyllables(ctx context.Context, refs []domain.RefSyllable, printLimit int) (decoding.Report, error)
}
