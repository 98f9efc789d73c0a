package domain

import (
	"fmt"
	"strings"
)

// Position is a validated phonological position (音韻地位). Values are
// immutable and comparable; construct them with NewPosition or
// ParseDescription.
type Position struct {
	initial  Initial
	openness Openness
	grade    Grade
	class    Class
	rhyme    Rhyme
	tone     Tone
}

// NewPosition validates the attributes against the legality rules and
// returns the position. Positions that are legal only as a marginal kind
// are admitted when kinds selects that kind. Rejections are *PositionError.
func NewPosition(initial Initial, openness Openness, grade Grade, class Class, rhyme Rhyme, tone Tone, kinds MarginalKinds) (Position, error) {
	p := Position{
		initial:  initial,
		openness: openness,
		grade:    grade,
		class:    class,
		rhyme:    rhyme,
		tone:     tone,
	}
	if reason := p.check(kinds); reason != "" {
		return Position{}, &PositionError{Description: p.Description(), Reason: reason}
	}
	return p, nil
}

func (p Position) Initial() Initial   { return p.initial }
func (p Position) Openness() Openness { return p.openness }
func (p Position) Grade() Grade       { return p.grade }
func (p Position) Class() Class       { return p.class }
func (p Position) Rhyme() Rhyme       { return p.rhyme }
func (p Position) Tone() Tone         { return p.tone }

// IsZero reports whether p is the zero Position.
func (p Position) IsZero() bool { return p == Position{} }

// Equal reports whether both positions carry the same attributes.
func (p Position) Equal(other Position) bool { return p == other }

// Description renders the position in the traditional order, e.g. 端開二麻上.
func (p Position) Description() string {
	return Describe(p.initial, p.openness, p.grade, p.class, p.rhyme, p.tone)
}

func (p Position) String() string { return p.Description() }

// Describe renders raw attributes the way Description does, without
// validating them.
func Describe(initial Initial, openness Openness, grade Grade, class Class, rhyme Rhyme, tone Tone) string {
	var b strings.Builder
	b.WriteString(initial.String())
	b.WriteString(openness.String())
	b.WriteString(grade.String())
	b.WriteString(class.String())
	b.WriteString(rhyme.String())
	b.WriteString(tone.String())
	return b.String()
}

// ParseDescription parses a description such as 見開三A支平 or 幫三C蒸平
// and validates it with NewPosition.
func ParseDescription(s string, kinds MarginalKinds) (Position, error) {
	runes := []rune(strings.TrimSpace(s))
	invalid := func() (Position, error) {
		return Position{}, NewValidationError("description", fmt.Sprintf("malformed position description %q", s))
	}

	i := 0
	next := func() (rune, bool) {
		if i >= len(runes) {
			return 0, false
		}
		r := runes[i]
		i++
		return r, true
	}
	peek := func() rune {
		if i >= len(runes) {
			return 0
		}
		return runes[i]
	}

	r, ok := next()
	if !ok {
		return invalid()
	}
	initial, ok := ParseInitial(r)
	if !ok {
		return invalid()
	}

	openness, ok := ParseOpenness(peek())
	if ok {
		i++
	}

	r, _ = next()
	grade, ok := ParseGrade(r)
	if !ok {
		return invalid()
	}

	class, ok := ParseClass(peek())
	if ok {
		i++
	}

	r, _ = next()
	rhyme, ok := ParseRhyme(r)
	if !ok {
		return invalid()
	}

	r, _ = next()
	tone, ok := ParseTone(r)
	if !ok || i != len(runes) {
		return invalid()
	}

	return NewPosition(initial, openness, grade, class, rhyme, tone, kinds)
}
