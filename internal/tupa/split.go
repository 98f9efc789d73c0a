package tupa

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/tupa/internal/domain"
)

var (
	vowelFramePattern = regexp.MustCompile(`w?[aeiouy]+`)
	codaTonePattern   = regexp.MustCompile(`^((?:ng|[jnwm])?)([qh]?)$`)
)

// parts is a syllable split into its spelled components.
type parts struct {
	initial domain.Initial
	frame   string
	coda    coda
	tone    domain.Tone
}

// split isolates the onset, vowel frame, coda and tone of a lowercase
// syllable.
func split(syllable string) (parts, error) {
	loc := vowelFramePattern.FindStringIndex(syllable)
	if loc == nil {
		return parts{}, newError(KindStructural, syllable, nil, "無法識別音節結構")
	}

	p := parts{frame: syllable[loc[0]:loc[1]]}

	initial, err := parseInitial(syllable[:loc[0]], syllable)
	if err != nil {
		return parts{}, err
	}
	p.initial = initial

	p.coda, p.tone, err = parseCodaTone(syllable[loc[1]:], syllable)
	if err != nil {
		return parts{}, err
	}

	if p.initial == domain.Initial云 && isWrittenZeroInitial(p.frame) {
		return parts{}, newError(KindUnrecognizedVowel, syllable, hint("云母不寫"),
			"無法識別元音 %s (%s)", p.frame, syllable)
	}
	return p, nil
}

// isWrittenZeroInitial reports frames that spell 云 as a w glide.
func isWrittenZeroInitial(frame string) bool {
	return strings.HasPrefix(frame, "wu") || (strings.HasPrefix(frame, "wy") && len(frame) > 2)
}

func parseInitial(spelling, syllable string) (domain.Initial, error) {
	if spelling == "" {
		return domain.Initial云, nil
	}
	if initial, ok := initialSpellings[spelling]; ok {
		return initial, nil
	}

	var hints []string
	for _, c := range initialCorrections[spelling] {
		hints = append(hints, fmt.Sprintf("%s母為 %s", initialSpellings[c], c))
	}
	return 0, newError(KindUnknownInitial, syllable, hints, "無法識別聲母 %s (%s)", spelling, syllable)
}

func parseCodaTone(spelling, syllable string) (coda, domain.Tone, error) {
	if c, ok := stopFinals[spelling]; ok {
		return c, domain.Tone入, nil
	}
	if m := codaTonePattern.FindStringSubmatch(spelling); m != nil {
		c, _ := parseCoda(m[1])
		return c, toneMarks[m[2]], nil
	}
	if strings.HasSuffix(spelling, "x") {
		return 0, 0, newError(KindDeprecatedSpelling, syllable, hint("上聲用 -q"), "無法識別聲調 -x (%s)", syllable)
	}
	return 0, 0, newError(KindUnknownCodaOrTone, syllable, nil, "無法識別韻尾/聲調 -%s (%s)", spelling, syllable)
}
