package decoding

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/heartmarshall/tupa/internal/tupa"
)

type invalidCase struct {
	spelling string
	kind     tupa.Kind
	pattern  *regexp.Regexp
}

// knownInvalid lists misspellings users commonly produce, each with the
// diagnostic the decoder must give for it.
var knownInvalid = []invalidCase{
	{"ngiox", tupa.KindDeprecatedSpelling, regexp.MustCompile(`【提示：上聲用 -q】$`)},
	{"ngioq", tupa.KindIllegalPosition, regexp.MustCompile(`魚韻無A類【提示：用C類】$`)},
	{"ngyan", tupa.KindIllegalPosition, regexp.MustCompile(`【提示：元韻用 y/uon】$`)},
	{"qow", tupa.KindUnrecognizedRhymeBase, regexp.MustCompile(`^無法識別韻基 ow .*【提示：豪韻用 aw，侯韻用 ou】$`)},
	{"qyw", tupa.KindUnrecognizedRhymeBase, regexp.MustCompile(`^無法識別韻基 yw .*幽韻用 \(y\)iw】$`)},
	{"qai", tupa.KindUnrecognizedVowel, regexp.MustCompile(`^無法識別元音 ai .*【提示：切韻拼音用 -j -w 尾】$`)},
	{"tshryet", tupa.KindUnknownInitial, regexp.MustCompile(`^無法識別聲母 tshr .*【提示：初母為 tsrh】$`)},
	{"cyang", tupa.KindUnknownInitial, regexp.MustCompile(`【提示：精母為 ts，章母為 tj】$`)},
	{"kyung", tupa.KindIllegalPosition, regexp.MustCompile(`不合法.*【提示：用C類】$`)},
	{"kwyn", tupa.KindMedialConstraint, regexp.MustCompile(`^元音 wy 僅可用於無尾或 -ng\(k\) 尾`)},
	{"pwan", tupa.KindSpellingHarmony, regexp.MustCompile(`^脣音不拼 wa 形式 .*【提示：用開口形式】$`)},
	{"tryin", tupa.KindSpellingHarmony, regexp.MustCompile(`^莊組以外銳音聲母不拼B類拼寫形式`)},
	{"wuo", tupa.KindUnrecognizedVowel, regexp.MustCompile(`^無法識別元音 wuo .*【提示：云母不寫】$`)},
}

// CheckInvalid decodes the built-in known-invalid spellings with no
// marginal kinds and reports every one that was accepted or failed with
// an unexpected kind or message.
func (s *Service) CheckInvalid(ctx context.Context) (InvalidReport, error) {
	var report InvalidReport

	for _, tc := range knownInvalid {
		if err := ctx.Err(); err != nil {
			return InvalidReport{}, err
		}
		report.Run++

		pos, err := s.decoder.Decode(tc.spelling, 0)
		if err == nil {
			report.Failed++
			report.Failures = append(report.Failures, InvalidFailure{
				Spelling: tc.spelling,
				Pattern:  tc.pattern.String(),
				Got:      pos.Description(),
			})
			continue
		}

		if ErrorKind(err) != tc.kind || !tc.pattern.MatchString(err.Error()) {
			report.Failed++
			report.Failures = append(report.Failures, InvalidFailure{
				Spelling: tc.spelling,
				Pattern:  tc.pattern.String(),
				Got:      err.Error(),
			})
		}
	}

	s.log.InfoContext(ctx, "invalid spellings checked",
		slog.Int("run", report.Run),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}
