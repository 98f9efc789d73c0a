package domain

import "fmt"

// check returns the reason p is not a legal position under kinds, or "".
// Rules run in a fixed order and the first violation wins.
func (p Position) check(kinds MarginalKinds) string {
	switch {
	case !p.initial.IsValid():
		return "聲母不合法"
	case !p.openness.IsValid():
		return "呼不合法"
	case !p.grade.IsValid():
		return "等不合法"
	case !p.class.IsValid():
		return "類不合法"
	case !p.rhyme.IsValid():
		return "韻不合法"
	case !p.tone.IsValid():
		return "聲調不合法"
	}

	for _, rule := range positionRules {
		if reason := rule(p, kinds); reason != "" {
			return reason
		}
	}
	return ""
}

type positionRule func(p Position, kinds MarginalKinds) string

var positionRules = []positionRule{
	checkOpenness,
	checkClass,
	checkInitialGrade,
	checkRhymeGrade,
	checkRhymeInitial,
	checkTone,
}

func checkOpenness(p Position, _ MarginalKinds) string {
	info := rhymeTable[p.rhyme]
	switch {
	case p.initial.IsLabial():
		if p.openness != OpennessNone {
			return "脣音不分開合"
		}
	case info.openness == opennessNeutral:
		if p.openness != OpennessNone {
			return fmt.Sprintf("%s韻不分開合", p.rhyme)
		}
	case info.openness == opennessOpen:
		if p.openness != Openness開 {
			return fmt.Sprintf("%s韻限開口", p.rhyme)
		}
	case info.openness == opennessClosed:
		if p.openness != Openness合 {
			return fmt.Sprintf("%s韻限合口", p.rhyme)
		}
	default:
		if p.openness == OpennessNone {
			return fmt.Sprintf("%s韻須分開合", p.rhyme)
		}
	}
	return ""
}

func checkClass(p Position, _ MarginalKinds) string {
	if p.grade != Grade三 {
		if p.class != ClassNone {
			return "非三等不分類"
		}
		return ""
	}
	if !p.initial.IsGrave() {
		if p.class != ClassNone {
			return "銳音聲母不分類"
		}
		return ""
	}
	if p.class == ClassNone {
		return "三等鈍音須分類"
	}
	if !rhymeTable[p.rhyme].classes.has(p.class) {
		return fmt.Sprintf("%s韻無%s類", p.rhyme, p.class)
	}
	return ""
}

// marginal reports a position that is admitted only under the given kind.
func marginal(p Position, kinds MarginalKinds, kind MarginalKinds) string {
	if kinds.Has(kind) {
		return ""
	}
	return fmt.Sprintf("%s母%s等為%s邊緣地位", p.initial, p.grade, kind)
}

func checkInitialGrade(p Position, kinds MarginalKinds) string {
	i, g := p.initial, p.grade
	switch {
	case i.IsRetroflexSibilant():
		if g == Grade一 || g == Grade四 {
			return marginal(p, kinds, MarginalRegular)
		}
		if i == Initial俟 && g != Grade三 {
			return marginal(p, kinds, MarginalFramework)
		}
	case i.IsPalatal(), i == Initial以:
		if g != Grade三 {
			return fmt.Sprintf("%s母限三等", i)
		}
	case i.IsDentalSibilant():
		if g == Grade二 {
			return marginal(p, kinds, MarginalRegular)
		}
		if i == Initial邪 && g != Grade三 {
			return marginal(p, kinds, MarginalFramework)
		}
	case i.IsRetroflexStop():
		if g == Grade一 || g == Grade四 {
			return marginal(p, kinds, MarginalOriginal)
		}
	case i.IsDentalStop():
		if g == Grade三 {
			return marginal(p, kinds, MarginalOriginal)
		}
	case i == Initial云:
		if g != Grade三 {
			return marginal(p, kinds, MarginalFramework)
		}
	case i == Initial匣:
		if g == Grade三 {
			return marginal(p, kinds, MarginalFramework)
		}
	case i == Initial羣:
		if g != Grade三 {
			return marginal(p, kinds, MarginalFramework)
		}
	}
	return ""
}

func checkRhymeGrade(p Position, _ MarginalKinds) string {
	grades := rhymeTable[p.rhyme].grades
	if grades.has(p.grade) {
		return ""
	}
	// Dental stops are written in grade 四 for grade-三 rhymes.
	if p.initial.IsDentalStop() && p.grade == Grade四 && grades.has(Grade三) {
		return ""
	}
	return fmt.Sprintf("%s韻無%s等", p.rhyme, p.grade)
}

func checkRhymeInitial(p Position, _ MarginalKinds) string {
	if p.rhyme == Rhyme臻 && !p.initial.IsRetroflexSibilant() {
		return "臻韻限莊組聲母"
	}
	return ""
}

func checkTone(p Position, _ MarginalKinds) string {
	info := rhymeTable[p.rhyme]
	if p.tone == Tone入 && !info.nasal {
		return fmt.Sprintf("%s韻無入聲", p.rhyme)
	}
	if info.departing && p.tone != Tone去 {
		return fmt.Sprintf("%s韻限去聲", p.rhyme)
	}
	return ""
}
