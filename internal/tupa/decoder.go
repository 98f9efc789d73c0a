// Package tupa decodes TUPA romanized Middle Chinese syllables into
// phonological positions.
package tupa

import (
	"strings"

	"github.com/heartmarshall/tupa/internal/domain"
)

// PositionFactory constructs a position from decoded attributes and owns
// the legality rules. Decode never second-guesses its verdict.
type PositionFactory interface {
	NewPosition(initial domain.Initial, openness domain.Openness, grade domain.Grade, class domain.Class,
		rhyme domain.Rhyme, tone domain.Tone, kinds domain.MarginalKinds) (domain.Position, error)
}

// FactoryFunc adapts a function to PositionFactory.
type FactoryFunc func(initial domain.Initial, openness domain.Openness, grade domain.Grade, class domain.Class,
	rhyme domain.Rhyme, tone domain.Tone, kinds domain.MarginalKinds) (domain.Position, error)

func (f FactoryFunc) NewPosition(initial domain.Initial, openness domain.Openness, grade domain.Grade, class domain.Class,
	rhyme domain.Rhyme, tone domain.Tone, kinds domain.MarginalKinds) (domain.Position, error) {
	return f(initial, openness, grade, class, rhyme, tone, kinds)
}

// Decoder decodes syllables. It holds no mutable state and is safe for
// concurrent use.
type Decoder struct {
	factory PositionFactory
}

// New creates a Decoder. A nil factory uses domain.NewPosition.
func New(factory PositionFactory) *Decoder {
	if factory == nil {
		factory = FactoryFunc(domain.NewPosition)
	}
	return &Decoder{factory: factory}
}

var defaultDecoder = New(nil)

// Decode decodes a single syllable with the default position constructor.
func Decode(syllable string, kinds domain.MarginalKinds) (domain.Position, error) {
	return defaultDecoder.Decode(syllable, kinds)
}

// Decode decodes a single syllable. The input is case-insensitive. Every
// failure is an *Error.
func (d *Decoder) Decode(syllable string, kinds domain.MarginalKinds) (domain.Position, error) {
	s := strings.ToLower(syllable)

	p, err := split(s)
	if err != nil {
		return domain.Position{}, err
	}

	f, err := resolveFrame(p.frame, p.coda, s)
	if err != nil {
		return domain.Position{}, err
	}

	if err := checkHarmony(p.initial, f, p.coda, s); err != nil {
		return domain.Position{}, err
	}

	openness := normalizeOpenness(f, p.coda)

	rhyme, err := classifyRhyme(p.initial, f, openness, p.coda, s)
	if err != nil {
		return domain.Position{}, err
	}

	c := canonicalize(p.initial, f.gradeClass, openness, rhyme, p.tone)
	pos, err := d.factory.NewPosition(c.initial, c.openness, c.grade, c.class, c.rhyme, c.tone, kinds)
	if err != nil {
		return domain.Position{}, explainRejection(c, f.vowel, s, err)
	}
	return pos, nil
}
