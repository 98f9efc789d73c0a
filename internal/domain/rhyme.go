package domain

// Rhyme is a traditional rhyme group (韻). The zero value is not a valid rhyme.
type Rhyme uint8

const (
	Rhyme東 Rhyme = iota + 1
	Rhyme冬
	Rhyme鍾
	Rhyme江
	Rhyme支
	Rhyme脂
	Rhyme之
	Rhyme微
	Rhyme魚
	Rhyme虞
	Rhyme模
	Rhyme齊
	Rhyme祭
	Rhyme泰
	Rhyme佳
	Rhyme皆
	Rhyme夬
	Rhyme灰
	Rhyme咍
	Rhyme廢
	Rhyme真
	Rhyme臻
	Rhyme文
	Rhyme殷
	Rhyme元
	Rhyme魂
	Rhyme痕
	Rhyme寒
	Rhyme刪
	Rhyme山
	Rhyme先
	Rhyme仙
	Rhyme蕭
	Rhyme宵
	Rhyme肴
	Rhyme豪
	Rhyme歌
	Rhyme麻
	Rhyme陽
	Rhyme唐
	Rhyme庚
	Rhyme耕
	Rhyme清
	Rhyme青
	Rhyme蒸
	Rhyme登
	Rhyme尤
	Rhyme侯
	Rhyme幽
	Rhyme侵
	Rhyme覃
	Rhyme談
	Rhyme鹽
	Rhyme添
	Rhyme咸
	Rhyme銜
	Rhyme嚴
	Rhyme凡
)

var rhymeGlyphs = []rune("東冬鍾江支脂之微魚虞模齊祭泰佳皆夬灰咍廢真臻文殷元魂痕寒刪山先仙蕭宵肴豪歌麻陽唐庚耕清青蒸登尤侯幽侵覃談鹽添咸銜嚴凡")

// Rhymes returns all rhymes in traditional order.
func Rhymes() []Rhyme {
	out := make([]Rhyme, len(rhymeGlyphs))
	for i := range rhymeGlyphs {
		out[i] = Rhyme(i + 1)
	}
	return out
}

func (r Rhyme) IsValid() bool { return r >= Rhyme東 && r <= Rhyme凡 }

func (r Rhyme) String() string {
	if !r.IsValid() {
		return "?"
	}
	return string(rhymeGlyphs[r-1])
}

// ParseRhyme returns the rhyme written with glyph g.
func ParseRhyme(g rune) (Rhyme, bool) {
	for idx, c := range rhymeGlyphs {
		if c == g {
			return Rhyme(idx + 1), true
		}
	}
	return 0, false
}

type gradeSet uint8

func gradesOf(gs ...Grade) gradeSet {
	var s gradeSet
	for _, g := range gs {
		s |= 1 << g
	}
	return s
}

func (s gradeSet) has(g Grade) bool { return s&(1<<g) != 0 }

type classSet uint8

func classesOf(cs ...Class) classSet {
	var s classSet
	for _, c := range cs {
		s |= 1 << c
	}
	return s
}

func (s classSet) has(c Class) bool { return s&(1<<c) != 0 }

type opennessRule uint8

const (
	opennessEither opennessRule = iota
	opennessNeutral
	opennessOpen
	opennessClosed
)

// rhymeInfo carries the per-rhyme facts the position constructor checks.
type rhymeInfo struct {
	grades    gradeSet
	classes   classSet // grave initials in grade 三
	openness  opennessRule
	nasal     bool // takes the entering tone
	departing bool // only 去
}

var (
	g1  = gradesOf(Grade一)
	g2  = gradesOf(Grade二)
	g3  = gradesOf(Grade三)
	g4  = gradesOf(Grade四)
	g13 = gradesOf(Grade一, Grade三)
	g23 = gradesOf(Grade二, Grade三)

	cA  = classesOf(ClassA)
	cB  = classesOf(ClassB)
	cC  = classesOf(ClassC)
	cAB = classesOf(ClassA, ClassB)
	cBC = classesOf(ClassB, ClassC)
)

var rhymeTable = [...]rhymeInfo{
	Rhyme東: {grades: g13, classes: cC, openness: opennessNeutral, nasal: true},
	Rhyme冬: {grades: g1, openness: opennessNeutral, nasal: true},
	Rhyme鍾: {grades: g3, classes: cC, openness: opennessNeutral, nasal: true},
	Rhyme江: {grades: g2, openness: opennessNeutral, nasal: true},
	Rhyme支: {grades: g3, classes: cAB},
	Rhyme脂: {grades: g3, classes: cAB},
	Rhyme之: {grades: g3, classes: cC, openness: opennessOpen},
	Rhyme微: {grades: g3, classes: cC},
	Rhyme魚: {grades: g3, classes: cC, openness: opennessOpen},
	Rhyme虞: {grades: g3, classes: cC, openness: opennessClosed},
	Rhyme模: {grades: g1, openness: opennessNeutral},
	Rhyme齊: {grades: g4},
	Rhyme祭: {grades: g3, classes: cAB, departing: true},
	Rhyme泰: {grades: g1, departing: true},
	Rhyme佳: {grades: g2},
	Rhyme皆: {grades: g2},
	Rhyme夬: {grades: g2, departing: true},
	Rhyme灰: {grades: g1, openness: opennessClosed},
	Rhyme咍: {grades: g1, openness: opennessOpen},
	Rhyme廢: {grades: g3, classes: cC, departing: true},
	Rhyme真: {grades: g3, classes: cAB, nasal: true},
	Rhyme臻: {grades: g3, openness: opennessOpen, nasal: true},
	Rhyme文: {grades: g3, classes: cC, openness: opennessClosed, nasal: true},
	Rhyme殷: {grades: g3, classes: cC, openness: opennessOpen, nasal: true},
	Rhyme元: {grades: g3, classes: cC, nasal: true},
	Rhyme魂: {grades: g1, openness: opennessClosed, nasal: true},
	Rhyme痕: {grades: g1, openness: opennessOpen, nasal: true},
	Rhyme寒: {grades: g1, nasal: true},
	Rhyme刪: {grades: g2, nasal: true},
	Rhyme山: {grades: g2, nasal: true},
	Rhyme先: {grades: g4, nasal: true},
	Rhyme仙: {grades: g3, classes: cAB, nasal: true},
	Rhyme蕭: {grades: g4},
	Rhyme宵: {grades: g3, classes: cAB},
	Rhyme肴: {grades: g2},
	Rhyme豪: {grades: g1},
	Rhyme歌: {grades: g13, classes: cC},
	Rhyme麻: {grades: g23, classes: cA},
	Rhyme陽: {grades: g3, classes: cC, nasal: true},
	Rhyme唐: {grades: g1, nasal: true},
	Rhyme庚: {grades: g23, classes: cB, nasal: true},
	Rhyme耕: {grades: g2, nasal: true},
	Rhyme清: {grades: g3, classes: cA, nasal: true},
	Rhyme青: {grades: g4, nasal: true},
	Rhyme蒸: {grades: g3, classes: cBC, nasal: true},
	Rhyme登: {grades: g1, nasal: true},
	Rhyme尤: {grades: g3, classes: cC, openness: opennessNeutral},
	Rhyme侯: {grades: g1, openness: opennessNeutral},
	Rhyme幽: {grades: g3, classes: cAB, openness: opennessOpen},
	Rhyme侵: {grades: g3, classes: cAB, nasal: true},
	Rhyme覃: {grades: g1, nasal: true},
	Rhyme談: {grades: g1, nasal: true},
	Rhyme鹽: {grades: g3, classes: cAB, nasal: true},
	Rhyme添: {grades: g4, nasal: true},
	Rhyme咸: {grades: g2, nasal: true},
	Rhyme銜: {grades: g2, nasal: true},
	Rhyme嚴: {grades: g3, classes: cC, openness: opennessOpen, nasal: true},
	Rhyme凡: {grades: g3, classes: cC, openness: opennessClosed, nasal: true},
}

// IsNasal reports whether the rhyme ends in -ng, -n or -m and so has
// entering-tone counterparts.
func (r Rhyme) IsNasal() bool { return r.IsValid() && rhymeTable[r].nasal }

// HasGrade reports whether the rhyme occurs in grade g.
func (r Rhyme) HasGrade(g Grade) bool { return r.IsValid() && rhymeTable[r].grades.has(g) }
