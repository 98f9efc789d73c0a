package tupa

import (
	"github.com/heartmarshall/tupa/internal/domain"
)

// classifyRhyme looks up the base rhyme of the main vowel and coda and
// applies the grade, openness and initial overrides in order.
func classifyRhyme(initial domain.Initial, f frame, openness domain.Openness, c coda, syllable string) (domain.Rhyme, error) {
	rhyme := rhymeTable[f.vowel][c]
	if rhyme == 0 {
		return 0, newError(KindUnrecognizedRhymeBase, syllable, rhymeBaseHints(f.vowel, c),
			"無法識別韻基 %s%s (%s)", f.vowel, c, syllable)
	}

	if openness != domain.OpennessNone && rhyme == domain.Rhyme鍾 {
		rhyme = domain.Rhyme登
	}
	if f.gradeClass == gradeClass一 || f.gradeClass == gradeClass四 {
		if r, ok := outerGradeRhymes[rhyme]; ok {
			rhyme = r
		}
	}
	if openness == domain.Openness合 {
		if r, ok := closedRhymes[rhyme]; ok {
			rhyme = r
		}
	}
	if rhyme == domain.Rhyme庚 && f.gradeClass == gradeClassA {
		rhyme = domain.Rhyme清
	} else if rhyme == domain.Rhyme真 && openness == domain.Openness開 && initial.IsRetroflexSibilant() {
		rhyme = domain.Rhyme臻
	}
	return rhyme, nil
}

func rhymeBaseHints(v mainVowel, c coda) []string {
	switch {
	case c == codaW && v == vowelO:
		return hint("豪韻用 aw，侯韻用 ou")
	case c == codaW && v == vowelY:
		return hint("尤韻用 u，幽韻用 (y)iw")
	case c == codaW && v == vowelU:
		return hint("尤韻用 u")
	case c == codaJ && v == vowelI:
		return hint("脂韻用 i")
	}
	return nil
}
