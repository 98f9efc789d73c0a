package tupa

import "github.com/heartmarshall/tupa/internal/domain"

// normalizeOpenness turns the openness read off the spelling into the
// phonological openness for the frames that spell it differently.
func normalizeOpenness(f frame, c coda) domain.Openness {
	switch {
	case f.spelling == "o" && (c == codaW || c == codaM):
		return domain.Openness開
	case f.spelling == "uo" && c == codaNG:
		return domain.OpennessNone
	case (f.spelling == "u" || f.spelling == "ou" || f.spelling == "o") && (c == codaNone || c == codaNG):
		return domain.OpennessNone
	}
	return f.openness
}
