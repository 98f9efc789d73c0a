package tupa

import (
	"fmt"
	"strings"
)

// Kind classifies a decoding failure.
type Kind string

const (
	KindStructural            Kind = "STRUCTURAL"
	KindUnknownInitial        Kind = "UNKNOWN_INITIAL"
	KindUnknownCodaOrTone     Kind = "UNKNOWN_CODA_OR_TONE"
	KindDeprecatedSpelling    Kind = "DEPRECATED_SPELLING"
	KindUnrecognizedVowel     Kind = "UNRECOGNIZED_VOWEL"
	KindMedialConstraint      Kind = "MEDIAL_CONSTRAINT"
	KindSpellingHarmony       Kind = "SPELLING_HARMONY"
	KindUnrecognizedRhymeBase Kind = "UNRECOGNIZED_RHYME_BASE"
	KindIllegalPosition       Kind = "ILLEGAL_POSITION"
	KindInternal              Kind = "INTERNAL"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindStructural, KindUnknownInitial, KindUnknownCodaOrTone, KindDeprecatedSpelling,
		KindUnrecognizedVowel, KindMedialConstraint, KindSpellingHarmony,
		KindUnrecognizedRhymeBase, KindIllegalPosition, KindInternal:
		return true
	}
	return false
}

// Error is returned for every rejected syllable. Message holds the
// diagnostic without hints; Hints holds the corrective suggestions that
// Error() renders in 【提示：…】.
type Error struct {
	Kind     Kind
	Syllable string
	Message  string
	Hints    []string
	// Err is the position model's rejection for KindIllegalPosition.
	Err error

	hintSep string
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrStructural            = &Error{Kind: KindStructural}
	ErrUnknownInitial        = &Error{Kind: KindUnknownInitial}
	ErrUnknownCodaOrTone     = &Error{Kind: KindUnknownCodaOrTone}
	ErrDeprecatedSpelling    = &Error{Kind: KindDeprecatedSpelling}
	ErrUnrecognizedVowel     = &Error{Kind: KindUnrecognizedVowel}
	ErrMedialConstraint      = &Error{Kind: KindMedialConstraint}
	ErrSpellingHarmony       = &Error{Kind: KindSpellingHarmony}
	ErrUnrecognizedRhymeBase = &Error{Kind: KindUnrecognizedRhymeBase}
	ErrIllegalPosition       = &Error{Kind: KindIllegalPosition}
	ErrInternal              = &Error{Kind: KindInternal}
)

func (e *Error) Error() string {
	if e.Message == "" {
		return "tupa: " + strings.ToLower(string(e.Kind))
	}
	if len(e.Hints) == 0 {
		return e.Message
	}
	sep := e.hintSep
	if sep == "" {
		sep = "，"
	}
	return e.Message + "【提示：" + strings.Join(e.Hints, sep) + "】"
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the per-kind sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Message != "" {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, syllable string, hints []string, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Syllable: syllable,
		Message:  fmt.Sprintf(format, args...),
		Hints:    hints,
	}
}

func hint(h string) []string { return []string{h} }
