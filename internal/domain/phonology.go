package domain

// Initial is the onset class (母) of a Middle Chinese syllable.
// The zero value is not a valid initial.
type Initial uint8

const (
	Initial幫 Initial = iota + 1
	Initial滂
	Initial並
	Initial明
	Initial端
	Initial透
	Initial定
	Initial泥
	Initial來
	Initial知
	Initial徹
	Initial澄
	Initial孃
	Initial精
	Initial清
	Initial從
	Initial心
	Initial邪
	Initial莊
	Initial初
	Initial崇
	Initial生
	Initial俟
	Initial章
	Initial昌
	Initial常
	Initial書
	Initial船
	Initial日
	Initial見
	Initial溪
	Initial羣
	Initial疑
	Initial影
	Initial曉
	Initial匣
	Initial云
	Initial以
)

var initialGlyphs = []rune("幫滂並明端透定泥來知徹澄孃精清從心邪莊初崇生俟章昌常書船日見溪羣疑影曉匣云以")

// Initials returns all initials in traditional order.
func Initials() []Initial {
	out := make([]Initial, len(initialGlyphs))
	for i := range initialGlyphs {
		out[i] = Initial(i + 1)
	}
	return out
}

func (i Initial) IsValid() bool { return i >= Initial幫 && i <= Initial以 }

func (i Initial) String() string {
	if !i.IsValid() {
		return "?"
	}
	return string(initialGlyphs[i-1])
}

// ParseInitial returns the initial written with glyph r.
func ParseInitial(r rune) (Initial, bool) {
	for idx, g := range initialGlyphs {
		if g == r {
			return Initial(idx + 1), true
		}
	}
	return 0, false
}

// IsLabial reports whether i is one of 幫滂並明.
func (i Initial) IsLabial() bool { return i >= Initial幫 && i <= Initial明 }

// IsDentalStop reports whether i belongs to the 端 group.
func (i Initial) IsDentalStop() bool { return i >= Initial端 && i <= Initial泥 }

// IsRetroflexStop reports whether i belongs to the 知 group.
func (i Initial) IsRetroflexStop() bool { return i >= Initial知 && i <= Initial孃 }

// IsDentalSibilant reports whether i belongs to the 精 group.
func (i Initial) IsDentalSibilant() bool { return i >= Initial精 && i <= Initial邪 }

// IsRetroflexSibilant reports whether i belongs to the 莊 group.
func (i Initial) IsRetroflexSibilant() bool { return i >= Initial莊 && i <= Initial俟 }

// IsPalatal reports whether i belongs to the 章 group (日 included).
func (i Initial) IsPalatal() bool { return i >= Initial章 && i <= Initial日 }

// IsVelar reports whether i belongs to the 見 group.
func (i Initial) IsVelar() bool { return i >= Initial見 && i <= Initial疑 }

// IsLaryngeal reports whether i is one of 影曉匣云.
func (i Initial) IsLaryngeal() bool { return i >= Initial影 && i <= Initial云 }

// IsGrave reports whether i is a grave (鈍音) initial: labials, velars and
// laryngeals. Every other initial, 以 included, is sharp (銳音).
func (i Initial) IsGrave() bool { return i.IsLabial() || i.IsVelar() || i.IsLaryngeal() }

// Openness is the 呼 of a syllable. OpennessNone means not distinctive.
type Openness uint8

const (
	OpennessNone Openness = iota
	Openness開
	Openness合
)

func (o Openness) IsValid() bool { return o <= Openness合 }

func (o Openness) String() string {
	switch o {
	case Openness開:
		return "開"
	case Openness合:
		return "合"
	}
	return ""
}

// ParseOpenness returns the openness written with glyph r.
func ParseOpenness(r rune) (Openness, bool) {
	switch r {
	case '開':
		return Openness開, true
	case '合':
		return Openness合, true
	}
	return OpennessNone, false
}

// Grade is the rime-table grade (等). The zero value is not a valid grade.
type Grade uint8

const (
	Grade一 Grade = iota + 1
	Grade二
	Grade三
	Grade四
)

var gradeGlyphs = []rune("一二三四")

func (g Grade) IsValid() bool { return g >= Grade一 && g <= Grade四 }

func (g Grade) String() string {
	if !g.IsValid() {
		return "?"
	}
	return string(gradeGlyphs[g-1])
}

// ParseGrade returns the grade written with glyph r.
func ParseGrade(r rune) (Grade, bool) {
	for idx, g := range gradeGlyphs {
		if g == r {
			return Grade(idx + 1), true
		}
	}
	return 0, false
}

// Class is the grade-三 subclass (類). ClassNone outside grade 三.
type Class uint8

const (
	ClassNone Class = iota
	ClassA
	ClassB
	ClassC
)

func (c Class) IsValid() bool { return c <= ClassC }

func (c Class) String() string {
	switch c {
	case ClassA:
		return "A"
	case ClassB:
		return "B"
	case ClassC:
		return "C"
	}
	return ""
}

// ParseClass returns the class written with letter r.
func ParseClass(r rune) (Class, bool) {
	switch r {
	case 'A':
		return ClassA, true
	case 'B':
		return ClassB, true
	case 'C':
		return ClassC, true
	}
	return ClassNone, false
}

// Tone is the 聲 of a syllable. The zero value is not a valid tone.
type Tone uint8

const (
	Tone平 Tone = iota + 1
	Tone上
	Tone去
	Tone入
)

var toneGlyphs = []rune("平上去入")

func (t Tone) IsValid() bool { return t >= Tone平 && t <= Tone入 }

func (t Tone) String() string {
	if !t.IsValid() {
		return "?"
	}
	return string(toneGlyphs[t-1])
}

// ParseTone returns the tone written with glyph r.
func ParseTone(r rune) (Tone, bool) {
	for idx, g := range toneGlyphs {
		if g == r {
			return Tone(idx + 1), true
		}
	}
	return 0, false
}
