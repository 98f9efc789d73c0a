package tupa

import (
	"testing"

	"github.com/heartmarshall/tupa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		syllable string
		want     parts
	}{
		{"tshyangq", parts{initial: domain.Initial清, frame: "ya", coda: codaNG, tone: domain.Tone上}},
		{"kak", parts{initial: domain.Initial見, frame: "a", coda: codaNG, tone: domain.Tone入}},
		{"pet", parts{initial: domain.Initial幫, frame: "e", coda: codaN, tone: domain.Tone入}},
		{"ghwaew", parts{initial: domain.Initial匣, frame: "wae", coda: codaW, tone: domain.Tone平}},
		{"ngoeuk", parts{initial: domain.Initial疑, frame: "oeu", coda: codaNG, tone: domain.Tone入}},
		{"ae", parts{initial: domain.Initial云, frame: "ae", coda: codaNone, tone: domain.Tone平}},
		{"jiemh", parts{initial: domain.Initial以, frame: "ie", coda: codaM, tone: domain.Tone去}},
	}
	for _, tt := range tests {
		t.Run(tt.syllable, func(t *testing.T) {
			t.Parallel()

			got, err := split(tt.syllable)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFrame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spelling   string
		coda       coda
		vowel      mainVowel
		openness   domain.Openness
		gradeClass gradeClass
	}{
		{"oeu", codaNG, vowelOEU, domain.OpennessNone, gradeClass二},
		{"wi", codaNone, vowelI, domain.Openness合, gradeClassA},
		{"ei", codaN, vowelI, domain.Openness開, gradeClass四},
		{"eo", codaNG, vowelO, domain.Openness開, gradeClass一},
		{"weo", codaNG, vowelO, domain.Openness合, gradeClass一},
		{"ou", codaNone, vowelU, domain.Openness合, gradeClass一},
		{"yu", codaNG, vowelU, domain.Openness開, gradeClassB},
		{"ya", codaNG, vowelA, domain.Openness開, gradeClassC},
		{"ua", codaN, vowelA, domain.Openness合, gradeClassC},
		{"ie", codaNone, vowelE, domain.Openness開, gradeClassA},
		{"ye", codaN, vowelE, domain.Openness開, gradeClassB},
		{"wae", codaNone, vowelAE, domain.Openness合, gradeClass二},
		{"oy", codaNone, vowelY, domain.Openness開, gradeClass一},
	}
	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			t.Parallel()

			got, err := resolveFrame(tt.spelling, tt.coda, "x"+tt.spelling)
			require.NoError(t, err)
			assert.Equal(t, tt.vowel, got.vowel)
			assert.Equal(t, tt.openness, got.openness)
			assert.Equal(t, tt.gradeClass, got.gradeClass)
		})
	}
}

func TestNormalizeOpenness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spelling string
		coda     coda
		want     domain.Openness
	}{
		{"o", codaW, domain.Openness開},
		{"o", codaM, domain.Openness開},
		{"o", codaNone, domain.OpennessNone},
		{"o", codaN, domain.Openness合},
		{"uo", codaNG, domain.OpennessNone},
		{"uo", codaNone, domain.Openness合},
		{"ou", codaNG, domain.OpennessNone},
		{"u", codaN, domain.Openness合},
	}
	for _, tt := range tests {
		f, err := resolveFrame(tt.spelling, tt.coda, tt.spelling)
		require.NoError(t, err)
		assert.Equal(t, tt.want, normalizeOpenness(f, tt.coda), "%s-%s", tt.spelling, tt.coda)
	}
}

func TestClassifyRhyme_Overrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		initial  domain.Initial
		spelling string
		coda     coda
		want     domain.Rhyme
	}{
		{"鍾 with openness becomes 登", domain.Initial見, "eo", codaNG, domain.Rhyme登},
		{"grade 一 鍾 becomes 冬", domain.Initial見, "o", codaNG, domain.Rhyme冬},
		{"grade 四 仙 becomes 先", domain.Initial見, "e", codaN, domain.Rhyme先},
		{"closed 嚴 becomes 凡", domain.Initial見, "uo", codaM, domain.Rhyme凡},
		{"class A 庚 becomes 清", domain.Initial見, "iae", codaNG, domain.Rhyme清},
		{"retroflex 真 becomes 臻", domain.Initial生, "yi", codaN, domain.Rhyme臻},
		{"plain 真", domain.Initial見, "yi", codaN, domain.Rhyme真},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := resolveFrame(tt.spelling, tt.coda, tt.spelling)
			require.NoError(t, err)
			got, err := classifyRhyme(tt.initial, f, normalizeOpenness(f, tt.coda), tt.coda, tt.spelling)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
