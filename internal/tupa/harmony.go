package tupa

import (
	"github.com/heartmarshall/tupa/internal/domain"
)

// checkHarmony rejects onset and vowel-frame combinations spelled wrongly
// for the class of the initial.
func checkHarmony(initial domain.Initial, f frame, c coda, syllable string) error {
	if initial.IsLabial() {
		return checkLabial(f, c, syllable)
	}
	if !initial.IsGrave() {
		return checkSharp(initial, f, c, syllable)
	}
	return nil
}

func checkLabial(f frame, c coda, syllable string) error {
	switch {
	case f.vowel == vowelO:
		if f.spelling == "weo" {
			return newError(KindSpellingHarmony, syllable, hint("用開口形式"), "脣音不拼 weo 形式 (%s)", syllable)
		}
		if f.openness == domain.Openness開 && c != codaNG {
			return newError(KindSpellingHarmony, syllable, hint("用合口形式"),
				"脣音除 -ng(k) 尾外不拼 %s 形式 (%s)", f.spelling, syllable)
		}
	case f.vowel == vowelA && f.gradeClass == gradeClassC:
		if f.openness == domain.Openness開 {
			return newError(KindSpellingHarmony, syllable, hint("用合口形式"), "脣音不拼 %s 形式 (%s)", f.spelling, syllable)
		}
	case f.vowel != vowelU:
		if f.openness == domain.Openness合 {
			return newError(KindSpellingHarmony, syllable, hint("用開口形式"), "脣音不拼 %s 形式 (%s)", f.spelling, syllable)
		}
	}
	return nil
}

func checkSharp(initial domain.Initial, f frame, c coda, syllable string) error {
	if f.gradeClass == gradeClass四 && f.vowel == vowelI && initial.IsDentalStop() {
		h := "用原形式 (w)i"
		if c == codaNone {
			h = "脂韻用原形式 (w)i，齊韻用 (w)ej"
		}
		return newError(KindSpellingHarmony, syllable, hint(h), "端組聲母不拼 (w)ei 形式 (%s)", syllable)
	}

	if (f.gradeClass == gradeClassA || f.gradeClass == gradeClassB) && !f.vowel.isFront() {
		return newError(KindSpellingHarmony, syllable, hint("用C類形式"), "銳音聲母不拼 %s 形式 (%s)", f.spelling, syllable)
	}

	retroflex := initial.IsRetroflexSibilant()
	if f.gradeClass == gradeClassA && retroflex {
		return newError(KindSpellingHarmony, syllable, nil, "莊組聲母應拼B類拼寫形式 (%s)", syllable)
	}
	if f.gradeClass == gradeClassB && !retroflex {
		return newError(KindSpellingHarmony, syllable, nil, "莊組以外銳音聲母不拼B類拼寫形式 (%s)", syllable)
	}
	return nil
}
