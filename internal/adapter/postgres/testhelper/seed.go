package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tupa/internal/domain"
)

// UniqueSource returns a source slug no other test uses.
func UniqueSource(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedRefSyllables inserts (spelling, description) pairs under source and
// returns the inserted rows.
func SeedRefSyllables(t *testing.T, pool *pgxpool.Pool, source string, pairs ...[2]string) []domain.RefSyllable {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	out := make([]domain.RefSyllable, 0, len(pairs))
	for _, p := range pairs {
		s := domain.RefSyllable{
			ID:          uuid.New(),
			Spelling:    p[0],
			Description: p[1],
			SourceSlug:  source,
			CreatedAt:   now,
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO ref_syllables (id, spelling, description, source_slug, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			s.ID, s.Spelling, s.Description, s.SourceSlug, s.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRefSyllables: %v", err)
		}
		out = append(out, s)
	}
	return out
}
