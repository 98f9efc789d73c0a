package domain

import (
	"time"

	"github.com/google/uuid"
)

// RefSyllable is one attested (spelling, position) pair of a reference
// corpus. Description is the position description, e.g. 端開二麻上.
type RefSyllable struct {
	ID          uuid.UUID
	Spelling    string
	Description string
	SourceSlug  string
	CreatedAt   time.Time
}

// CorpusSource is a seeded corpus and the number of syllables it holds.
type CorpusSource struct {
	Slug  string
	Count int
}
