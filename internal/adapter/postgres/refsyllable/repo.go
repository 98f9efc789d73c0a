// Package refsyllable stores reference syllable corpora in PostgreSQL.
// Rows are immutable once seeded: a source is replaced by deleting it and
// seeding again.
package refsyllable

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/tupa/internal/adapter/postgres"
	"github.com/heartmarshall/tupa/internal/domain"
)

const table = "ref_syllables"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "spelling", "description", "source_slug", "created_at"}

// Repo provides reference syllable persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new reference syllable repository. db is usually the pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListBySource returns every syllable of the source ordered by spelling,
// then description.
func (r *Repo) ListBySource(ctx context.Context, sourceSlug string) ([]domain.RefSyllable, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"source_slug": sourceSlug}).
		OrderBy("spelling", "description").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "ref_syllables", sourceSlug)
	}
	defer rows.Close()

	var out []domain.RefSyllable
	for rows.Next() {
		var s domain.RefSyllable
		if err := rows.Scan(&s.ID, &s.Spelling, &s.Description, &s.SourceSlug, &s.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "ref_syllables", sourceSlug)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "ref_syllables", sourceSlug)
	}

	return out, nil
}

// CountBySource returns the number of syllables stored for the source.
func (r *Repo) CountBySource(ctx context.Context, sourceSlug string) (int, error) {
	query, args, err := psql.Select("count(*)").
		From(table).
		Where(sq.Eq{"source_slug": sourceSlug}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "ref_syllables", sourceSlug)
	}
	return int(n), nil
}

// Sources lists every seeded source with its syllable count, ordered by slug.
func (r *Repo) Sources(ctx context.Context) ([]domain.CorpusSource, error) {
	query, args, err := psql.Select("source_slug", "count(*)").
		From(table).
		GroupBy("source_slug").
		OrderBy("source_slug").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "ref_syllables", "sources")
	}
	defer rows.Close()

	var out []domain.CorpusSource
	for rows.Next() {
		var (
			src domain.CorpusSource
			n   int64
		)
		if err := rows.Scan(&src.Slug, &n); err != nil {
			return nil, postgres.MapError(err, "ref_syllables", "sources")
		}
		src.Count = int(n)
		out = append(out, src)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "ref_syllables", "sources")
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// Batch insert (pgx.Batch API)
// ---------------------------------------------------------------------------

// BulkInsert inserts syllables using pgx.Batch. Rows that already exist
// (same spelling, description and source) are skipped via ON CONFLICT DO
// NOTHING. Returns the number of actually inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, syllables []domain.RefSyllable) (int, error) {
	if len(syllables) == 0 {
		return 0, nil
	}

	now := r.now().UTC()
	batch := &pgx.Batch{}
	for _, s := range syllables {
		createdAt := s.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		query, args, err := psql.Insert(table).
			Columns(columns...).
			Values(s.ID, s.Spelling, s.Description, s.SourceSlug, createdAt).
			Suffix("ON CONFLICT (spelling, description, source_slug) DO NOTHING").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build insert: %w", err)
		}
		batch.Queue(query, args...)
	}

	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, "ref_syllables", "batch")
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

// DeleteBySource removes every syllable of the source and returns the
// number of deleted rows.
func (r *Repo) DeleteBySource(ctx context.Context, sourceSlug string) (int64, error) {
	query, args, err := psql.Delete(table).
		Where(sq.Eq{"source_slug": sourceSlug}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "ref_syllables", sourceSlug)
	}
	return tag.RowsAffected(), nil
}
