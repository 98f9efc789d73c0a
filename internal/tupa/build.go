package tupa

import (
	"errors"
	"fmt"

	"github.com/heartmarshall/tupa/internal/domain"
)

// candidate holds the attributes handed to the position constructor.
type candidate struct {
	initial  domain.Initial
	openness domain.Openness
	grade    domain.Grade
	class    domain.Class
	rhyme    domain.Rhyme
	tone     domain.Tone
}

func (c candidate) description() string {
	return domain.Describe(c.initial, c.openness, c.grade, c.class, c.rhyme, c.tone)
}

// canonicalize splits the grade-or-class and applies the neutralizations
// driven by the initial.
func canonicalize(initial domain.Initial, gc gradeClass, openness domain.Openness, rhyme domain.Rhyme, tone domain.Tone) candidate {
	grade, class := gc.split()
	c := candidate{
		initial:  initial,
		openness: openness,
		grade:    grade,
		class:    class,
		rhyme:    rhyme,
		tone:     tone,
	}
	switch {
	case initial.IsLabial():
		c.openness = domain.OpennessNone
	case !initial.IsGrave():
		c.class = domain.ClassNone
		if initial.IsDentalStop() && c.grade == domain.Grade三 {
			c.grade = domain.Grade四
		}
	}
	return c
}

// explainRejection wraps a position-model rejection into a diagnostic with
// corrective hints.
func explainRejection(c candidate, v mainVowel, syllable string, cause error) *Error {
	var hints []string
	if (c.class == domain.ClassA || c.class == domain.ClassB) && !v.isFront() {
		hints = append(hints, "用C類")
	}
	if c.grade != domain.Grade一 {
		switch c.rhyme {
		case domain.Rhyme泰:
			hints = append(hints, "廢韻用 y/uoj")
		case domain.Rhyme寒:
			hints = append(hints, "元韻用 y/uon")
		case domain.Rhyme談:
			if c.initial.IsLabial() {
				hints = append(hints, "凡韻用 uom")
			} else {
				hints = append(hints, "嚴韻用 yom")
			}
		}
	}
	if c.grade == domain.Grade四 && c.rhyme == domain.Rhyme脂 && !c.initial.IsDentalStop() {
		hints = append(hints, "齊韻用 (w)ej")
	}

	reason := cause.Error()
	var perr *domain.PositionError
	if errors.As(cause, &perr) {
		reason = perr.Reason
	}

	return &Error{
		Kind:     KindIllegalPosition,
		Syllable: syllable,
		Message:  fmt.Sprintf("音韻地位「%s」不合法 (%s): %s", c.description(), syllable, reason),
		Hints:    hints,
		Err:      cause,
		hintSep:  "；",
	}
}
