package decoding

import (
	"strings"

	"github.com/heartmarshall/tupa/internal/domain"
)

const maxSyllableLen = 32

// DecodeInput holds parameters for a single decode.
type DecodeInput struct {
	Syllable string
	// Marginal overrides the configured marginal kinds (nil = use config).
	Marginal *domain.MarginalKinds
}

// Validate validates the decode input.
func (i DecodeInput) Validate() error {
	if msg := checkSyllable(i.Syllable); msg != "" {
		return domain.NewValidationError("syllable", msg)
	}
	return nil
}

// BatchInput holds parameters for a batch decode.
type BatchInput struct {
	Syllables []string
	Marginal  *domain.MarginalKinds
}

// Validate validates the batch input against the configured item limit.
func (i BatchInput) Validate(limit int) error {
	if len(i.Syllables) == 0 {
		return domain.NewValidationError("syllables", "required")
	}
	if limit > 0 && len(i.Syllables) > limit {
		return domain.NewValidationError("syllables", "too many items")
	}

	var errs []domain.FieldError
	for _, s := range i.Syllables {
		if len(s) > maxSyllableLen {
			errs = append(errs, domain.FieldError{Field: "syllables", Message: "item too long"})
			break
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VerifyInput holds parameters for a corpus verification run.
type VerifyInput struct {
	Source string
	// PrintLimit caps the failures kept in the report (nil = config, 0 = all).
	PrintLimit *int
}

// Validate validates the verify input.
func (i VerifyInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Source) == "" {
		errs = append(errs, domain.FieldError{Field: "source", Message: "required"})
	}
	if i.PrintLimit != nil && *i.PrintLimit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkSyllable(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return "required"
	case len(s) > maxSyllableLen:
		return "too long"
	}
	return ""
}
