package tupa

import (
	"strings"

	"github.com/heartmarshall/tupa/internal/domain"
)

// frame is a resolved vowel frame. Openness and grade-or-class are read
// off the spelling and are not yet the phonological values.
type frame struct {
	spelling   string
	vowel      mainVowel
	openness   domain.Openness
	gradeClass gradeClass
}

// resolveFrame disambiguates the main vowel, openness and grade-or-class
// of a vowel frame, using the coda as context.
func resolveFrame(spelling string, c coda, syllable string) (frame, error) {
	if spelling == "oi" {
		return frame{}, newError(KindDeprecatedSpelling, syllable, hint("用 oy"), "元音 oi 已棄用 (%s)", syllable)
	}

	for _, rule := range frameRules {
		vs := rule.vowel.String()
		if !strings.HasSuffix(spelling, vs) {
			continue
		}

		f := frame{
			spelling:   spelling,
			vowel:      rule.vowel,
			openness:   rule.openness,
			gradeClass: rule.gradeClass,
		}

		prefix := strings.TrimSuffix(spelling, vs)
		if prefix == "" {
			return f, nil
		}

		ind, ok := indicatorSpellings[prefix]
		if !ok || !rule.allows(ind) {
			var hints []string
			if c == codaNone && (rule.vowel == vowelI || rule.vowel == vowelU) && endsInNucleus(prefix) {
				hints = hint("切韻拼音用 -j -w 尾")
			}
			return frame{}, newError(KindUnrecognizedVowel, syllable, hints, "無法識別元音 %s (%s)", spelling, syllable)
		}

		return applyIndicator(f, rule, ind, c, syllable)
	}

	return frame{}, newError(KindUnrecognizedVowel, syllable, nil, "無法識別元音 %s (%s)", spelling, syllable)
}

func endsInNucleus(s string) bool {
	return s != "" && strings.ContainsRune("aeiouy", rune(s[len(s)-1]))
}

func applyIndicator(f frame, rule frameRule, ind indicator, c coda, syllable string) (frame, error) {
	switch ind {
	case indicatorI, indicatorWI:
		f.gradeClass = gradeClassA
		f.openness = opennessOf(ind == indicatorI)

	case indicatorY, indicatorU:
		if rule.gradeClass == gradeClass一 {
			f.gradeClass = gradeClassC
		} else {
			f.gradeClass = gradeClassB
		}
		f.openness = opennessOf(ind == indicatorY)

	case indicatorW:
		if f.vowel == vowelY && c != codaNone && c != codaNG {
			return frame{}, newError(KindMedialConstraint, syllable, nil, "元音 wy 僅可用於無尾或 -ng(k) 尾 (%s)", syllable)
		}
		f.openness = domain.Openness合

	case indicatorE, indicatorWE:
		switch f.vowel {
		case vowelO:
			if ind == indicatorE && (c == codaW || c == codaM) {
				return frame{}, newError(KindMedialConstraint, syllable, hint("用 o"), "元音 eo 不用於 -w/-m(p) 尾 (%s)", syllable)
			}
			if ind == indicatorWE && c != codaNG {
				return frame{}, newError(KindMedialConstraint, syllable, nil, "元音 weo 僅可用於 -ng(k) 尾 (%s)", syllable)
			}
		case vowelI:
			f.gradeClass = gradeClass四
		}
		f.openness = opennessOf(ind == indicatorE)

	case indicatorO:
		f.gradeClass = gradeClass一

	default:
		prefix := strings.TrimSuffix(f.spelling, f.vowel.String())
		return frame{}, newError(KindInternal, syllable, nil, "內部錯誤：介音拼寫未處理 %s-%s", prefix, f.vowel)
	}
	return f, nil
}

func opennessOf(open bool) domain.Openness {
	if open {
		return domain.Openness開
	}
	return domain.Openness合
}
