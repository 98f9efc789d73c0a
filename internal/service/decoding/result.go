package decoding

import (
	"errors"

	"github.com/heartmarshall/tupa/internal/domain"
	"github.com/heartmarshall/tupa/internal/tupa"
)

// Result is the outcome of decoding one syllable of a batch.
type Result struct {
	Syllable string
	Position domain.Position
	Err      error
}

// Kind returns the decoder's failure kind, or "" for a success or a
// failure that did not come from the decoder.
func (r Result) Kind() tupa.Kind {
	return ErrorKind(r.Err)
}

// ErrorKind extracts the *tupa.Error kind from err.
func ErrorKind(err error) tupa.Kind {
	var te *tupa.Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}

// Failure is one mismatch of a corpus verification run.
type Failure struct {
	Spelling string
	Expected string
	// Actual is empty when decoding failed.
	Actual string
	Err    error
}

// Report summarizes a corpus verification run.
type Report struct {
	Run      int
	Failed   int
	Failures []Failure
}

// Passed reports whether every syllable decoded to its expected position.
func (r Report) Passed() bool { return r.Failed == 0 }

// InvalidFailure is a known-invalid spelling whose outcome did not match.
type InvalidFailure struct {
	Spelling string
	Pattern  string
	// Got is the error message, or the decoded description when the
	// spelling was wrongly accepted.
	Got string
}

// InvalidReport summarizes a CheckInvalid run.
type InvalidReport struct {
	Run      int
	Failed   int
	Failures []InvalidFailure
}

// Passed reports whether every invalid spelling failed as expected.
func (r InvalidReport) Passed() bool { return r.Failed == 0 }
