package tupa

import "github.com/heartmarshall/tupa/internal/domain"

// mainVowel is the nucleus of a vowel frame.
type mainVowel uint8

const (
	vowelOEU mainVowel = iota
	vowelEE
	vowelAE
	vowelI
	vowelY
	vowelU
	vowelE
	vowelO
	vowelA
)

var mainVowelSpellings = [...]string{
	vowelOEU: "oeu",
	vowelEE:  "ee",
	vowelAE:  "ae",
	vowelI:   "i",
	vowelY:   "y",
	vowelU:   "u",
	vowelE:   "e",
	vowelO:   "o",
	vowelA:   "a",
}

func (v mainVowel) String() string { return mainVowelSpellings[v] }

// isFront reports whether v may carry an A/B class spelling after a sharp
// initial.
func (v mainVowel) isFront() bool {
	return v == vowelI || v == vowelE || v == vowelEE || v == vowelAE
}

// coda is the normalized final of a syllable. Stop finals are folded into
// their nasal counterparts.
type coda uint8

const (
	codaNone coda = iota
	codaNG
	codaJ
	codaN
	codaW
	codaM

	codaCount
)

var codaSpellings = [...]string{
	codaNone: "",
	codaNG:   "ng",
	codaJ:    "j",
	codaN:    "n",
	codaW:    "w",
	codaM:    "m",
}

func (c coda) String() string { return codaSpellings[c] }

func parseCoda(s string) (coda, bool) {
	for i, sp := range codaSpellings {
		if sp == s {
			return coda(i), true
		}
	}
	return 0, false
}

var stopFinals = map[string]coda{
	"k": codaNG,
	"t": codaN,
	"p": codaM,
}

var toneMarks = map[string]domain.Tone{
	"":  domain.Tone平,
	"q": domain.Tone上,
	"h": domain.Tone去,
}

// indicator is the part of a vowel frame in front of the main vowel.
type indicator uint8

const (
	indicatorNone indicator = iota
	indicatorW
	indicatorI
	indicatorWI
	indicatorY
	indicatorU
	indicatorE
	indicatorWE
	indicatorO
)

var indicatorSpellings = map[string]indicator{
	"":   indicatorNone,
	"w":  indicatorW,
	"i":  indicatorI,
	"wi": indicatorWI,
	"y":  indicatorY,
	"u":  indicatorU,
	"e":  indicatorE,
	"we": indicatorWE,
	"o":  indicatorO,
}

// gradeClass is the grade-or-class carried by a spelling before it is split
// into a grade and a class.
type gradeClass uint8

const (
	gradeClass一 gradeClass = iota + 1
	gradeClass二
	gradeClass四
	gradeClassA
	gradeClassB
	gradeClassC
)

func (g gradeClass) String() string {
	switch g {
	case gradeClass一:
		return "一"
	case gradeClass二:
		return "二"
	case gradeClass四:
		return "四"
	case gradeClassA:
		return "A"
	case gradeClassB:
		return "B"
	case gradeClassC:
		return "C"
	}
	return "?"
}

func (g gradeClass) isClass() bool { return g >= gradeClassA }

// split returns the canonical grade and class.
func (g gradeClass) split() (domain.Grade, domain.Class) {
	switch g {
	case gradeClass一:
		return domain.Grade一, domain.ClassNone
	case gradeClass二:
		return domain.Grade二, domain.ClassNone
	case gradeClass四:
		return domain.Grade四, domain.ClassNone
	case gradeClassA:
		return domain.Grade三, domain.ClassA
	case gradeClassB:
		return domain.Grade三, domain.ClassB
	case gradeClassC:
		return domain.Grade三, domain.ClassC
	}
	return 0, domain.ClassNone
}

// frameRule describes one main vowel: its default reading and the
// indicators it may be preceded by.
type frameRule struct {
	vowel      mainVowel
	openness   domain.Openness
	gradeClass gradeClass
	indicators []indicator
}

var commonIndicators = []indicator{indicatorW, indicatorI, indicatorWI, indicatorY, indicatorU}

// frameRules is scanned in order; the first suffix match wins.
var frameRules = []frameRule{
	{vowelOEU, domain.OpennessNone, gradeClass二, nil},
	{vowelEE, domain.Openness開, gradeClass二, commonIndicators},
	{vowelAE, domain.Openness開, gradeClass二, commonIndicators},
	{vowelI, domain.Openness開, gradeClassA, []indicator{indicatorW, indicatorY, indicatorU, indicatorE, indicatorWE}},
	{vowelY, domain.Openness開, gradeClassC, []indicator{indicatorW, indicatorO}},
	{vowelU, domain.Openness合, gradeClassC, []indicator{indicatorO, indicatorI, indicatorY}},
	{vowelE, domain.Openness開, gradeClass四, commonIndicators},
	{vowelO, domain.Openness合, gradeClass一, []indicator{indicatorE, indicatorWE, indicatorI, indicatorWI, indicatorY, indicatorU}},
	{vowelA, domain.Openness開, gradeClass一, commonIndicators},
}

func (r frameRule) allows(ind indicator) bool {
	for _, a := range r.indicators {
		if a == ind {
			return true
		}
	}
	return false
}

var initialSpellings = map[string]domain.Initial{
	"p": domain.Initial幫, "ph": domain.Initial滂, "b": domain.Initial並, "m": domain.Initial明,
	"t": domain.Initial端, "th": domain.Initial透, "d": domain.Initial定, "n": domain.Initial泥, "l": domain.Initial來,
	"tr": domain.Initial知, "trh": domain.Initial徹, "dr": domain.Initial澄, "nr": domain.Initial孃,
	"k": domain.Initial見, "kh": domain.Initial溪, "g": domain.Initial羣, "ng": domain.Initial疑,
	"q": domain.Initial影, "h": domain.Initial曉, "gh": domain.Initial匣,
	"ts": domain.Initial精, "tsh": domain.Initial清, "dz": domain.Initial從, "s": domain.Initial心, "z": domain.Initial邪,
	"tsr": domain.Initial莊, "tsrh": domain.Initial初, "dzr": domain.Initial崇, "sr": domain.Initial生, "zr": domain.Initial俟,
	"tj": domain.Initial章, "tjh": domain.Initial昌, "dj": domain.Initial常, "sj": domain.Initial書, "zj": domain.Initial船, "nj": domain.Initial日,
	"j": domain.Initial以,
}

// initialCorrections maps common misspellings of an initial to the
// spellings the writer most likely meant.
var initialCorrections = map[string][]string{
	"thr":  {"trh"},
	"tshr": {"tsrh"},
	"thj":  {"tjh"},
	"tsj":  {"tj"},
	"tsjh": {"tjh"},
	"tshj": {"tjh"},
	"dzj":  {"dj"},
	"x":    {"h", "gh"},
	"c":    {"ts", "tj"},
	"ch":   {"tsh", "tjh"},
	"sh":   {"sj"},
	"zh":   {"zj"},
}

// rhymeTable maps a main vowel and coda to the base rhyme; 0 marks an
// unused combination.
var rhymeTable = [...][codaCount]domain.Rhyme{
	//         none         ng           j            n            w            m
	vowelI:   {domain.Rhyme脂, domain.Rhyme蒸, 0, domain.Rhyme真, domain.Rhyme幽, domain.Rhyme侵},
	vowelY:   {domain.Rhyme之, domain.Rhyme蒸, domain.Rhyme微, domain.Rhyme殷, 0, 0},
	vowelU:   {domain.Rhyme尤, domain.Rhyme東, domain.Rhyme微, domain.Rhyme文, 0, 0},
	vowelE:   {domain.Rhyme支, domain.Rhyme青, domain.Rhyme祭, domain.Rhyme仙, domain.Rhyme宵, domain.Rhyme鹽},
	vowelO:   {domain.Rhyme魚, domain.Rhyme鍾, domain.Rhyme廢, domain.Rhyme元, 0, domain.Rhyme嚴},
	vowelEE:  {domain.Rhyme佳, domain.Rhyme耕, domain.Rhyme皆, domain.Rhyme山, 0, domain.Rhyme咸},
	vowelOEU: {0, domain.Rhyme江, 0, 0, 0, 0},
	vowelAE:  {domain.Rhyme麻, domain.Rhyme庚, domain.Rhyme夬, domain.Rhyme刪, domain.Rhyme肴, domain.Rhyme銜},
	vowelA:   {domain.Rhyme歌, domain.Rhyme陽, domain.Rhyme泰, domain.Rhyme寒, domain.Rhyme豪, domain.Rhyme談},
}

// Rhymes of grades 一 and 四 that share a spelling with a grade-三 rhyme.
var outerGradeRhymes = map[domain.Rhyme]domain.Rhyme{
	domain.Rhyme尤: domain.Rhyme侯,
	domain.Rhyme祭: domain.Rhyme齊,
	domain.Rhyme仙: domain.Rhyme先,
	domain.Rhyme宵: domain.Rhyme蕭,
	domain.Rhyme鹽: domain.Rhyme添,
	domain.Rhyme魚: domain.Rhyme模,
	domain.Rhyme鍾: domain.Rhyme冬,
	domain.Rhyme廢: domain.Rhyme咍,
	domain.Rhyme元: domain.Rhyme痕,
	domain.Rhyme嚴: domain.Rhyme覃,
	domain.Rhyme陽: domain.Rhyme唐,
}

// Rhymes that split by openness.
var closedRhymes = map[domain.Rhyme]domain.Rhyme{
	domain.Rhyme魚: domain.Rhyme虞,
	domain.Rhyme咍: domain.Rhyme灰,
	domain.Rhyme痕: domain.Rhyme魂,
	domain.Rhyme嚴: domain.Rhyme凡,
}
