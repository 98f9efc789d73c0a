package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPosition_Legal(t *testing.T) {
	t.Parallel()

	pos, err := NewPosition(Initial端, Openness開, Grade二, ClassNone, Rhyme麻, Tone上, 0)
	require.NoError(t, err)

	assert.Equal(t, "端開二麻上", pos.Description())
	assert.Equal(t, Initial端, pos.Initial())
	assert.Equal(t, Openness開, pos.Openness())
	assert.Equal(t, Grade二, pos.Grade())
	assert.Equal(t, ClassNone, pos.Class())
	assert.Equal(t, Rhyme麻, pos.Rhyme())
	assert.Equal(t, Tone上, pos.Tone())
	assert.False(t, pos.IsZero())
}

func TestNewPosition_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		initial  Initial
		openness Openness
		grade    Grade
		class    Class
		rhyme    Rhyme
		tone     Tone
		kinds    MarginalKinds
		reason   string
	}{
		{"invalid initial", 0, Openness開, Grade一, ClassNone, Rhyme寒, Tone平, 0, "聲母不合法"},
		{"invalid tone", Initial見, Openness開, Grade一, ClassNone, Rhyme寒, 0, 0, "聲調不合法"},
		{"labial openness", Initial幫, Openness開, Grade三, ClassC, Rhyme蒸, Tone平, 0, "脣音不分開合"},
		{"neutral rhyme", Initial見, Openness開, Grade三, ClassB, Rhyme東, Tone平, 0, "東韻不分開合"},
		{"openness required", Initial見, OpennessNone, Grade一, ClassNone, Rhyme寒, Tone平, 0, "寒韻須分開合"},
		{"open only", Initial見, Openness合, Grade一, ClassNone, Rhyme咍, Tone平, 0, "咍韻限開口"},
		{"closed only", Initial見, Openness開, Grade一, ClassNone, Rhyme灰, Tone平, 0, "灰韻限合口"},
		{"class outside grade three", Initial見, Openness開, Grade二, ClassA, Rhyme麻, Tone平, 0, "非三等不分類"},
		{"class on sharp initial", Initial來, Openness開, Grade三, ClassA, Rhyme支, Tone平, 0, "銳音聲母不分類"},
		{"class required", Initial見, Openness開, Grade三, ClassNone, Rhyme支, Tone平, 0, "三等鈍音須分類"},
		{"class not in rhyme", Initial見, Openness開, Grade三, ClassC, Rhyme支, Tone平, 0, "支韻無C類"},
		{"palatal outside three", Initial章, Openness開, Grade一, ClassNone, Rhyme唐, Tone平, 0, "章母限三等"},
		{"grade not in rhyme", Initial見, Openness開, Grade二, ClassNone, Rhyme唐, Tone平, 0, "唐韻無二等"},
		{"zhen needs retroflex sibilant", Initial來, Openness開, Grade三, ClassNone, Rhyme臻, Tone平, 0, "臻韻限莊組聲母"},
		{"entering on open rhyme", Initial見, Openness開, Grade一, ClassNone, Rhyme歌, Tone入, 0, "歌韻無入聲"},
		{"departing only", Initial見, Openness開, Grade一, ClassNone, Rhyme泰, Tone平, 0, "泰韻限去聲"},
		{"dental stop in three", Initial端, Openness開, Grade三, ClassNone, Rhyme支, Tone平, MarginalRegular, "端母三等為原貌邊緣地位"},
		{"xia in three", Initial匣, Openness開, Grade三, ClassA, Rhyme支, Tone平, MarginalOriginal, "匣母三等為框架邊緣地位"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pos, err := NewPosition(tt.initial, tt.openness, tt.grade, tt.class, tt.rhyme, tt.tone, tt.kinds)
			require.Error(t, err)
			assert.True(t, pos.IsZero())
			assert.ErrorIs(t, err, ErrIllegalPosition)

			var perr *PositionError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.reason, perr.Reason)
		})
	}
}

func TestNewPosition_Marginal(t *testing.T) {
	t.Parallel()

	_, err := NewPosition(Initial端, Openness開, Grade三, ClassNone, Rhyme支, Tone平, 0)
	require.ErrorIs(t, err, ErrIllegalPosition)

	pos, err := NewPosition(Initial端, Openness開, Grade三, ClassNone, Rhyme支, Tone平, MarginalOriginal)
	require.NoError(t, err)
	assert.Equal(t, "端開三支平", pos.Description())
}

func TestNewPosition_DentalStopGradeFour(t *testing.T) {
	t.Parallel()

	pos, err := NewPosition(Initial端, OpennessNone, Grade四, ClassNone, Rhyme尤, Tone平, 0)
	require.NoError(t, err)
	assert.Equal(t, "端四尤平", pos.Description())

	_, err = NewPosition(Initial來, OpennessNone, Grade四, ClassNone, Rhyme尤, Tone平, 0)
	require.ErrorIs(t, err, ErrIllegalPosition)
}

func TestPositionError_Error(t *testing.T) {
	t.Parallel()

	_, err := NewPosition(Initial見, Openness開, Grade四, ClassNone, Rhyme脂, Tone平, 0)
	require.Error(t, err)
	assert.Equal(t, "音韻地位「見開四脂平」: 脂韻無四等", err.Error())
}

func TestParseDescription(t *testing.T) {
	t.Parallel()

	tests := []string{"端開二麻上", "幫三C蒸平", "見開三A支平", "清開三之平", "莊開三臻平", "端四尤平", "見一冬平"}
	for _, desc := range tests {
		t.Run(desc, func(t *testing.T) {
			t.Parallel()

			pos, err := ParseDescription(desc, 0)
			require.NoError(t, err)
			assert.Equal(t, desc, pos.Description())
			assert.Equal(t, desc, pos.String())

			again, err := ParseDescription(" "+desc+" ", 0)
			require.NoError(t, err)
			assert.True(t, pos.Equal(again))
		})
	}
}

func TestParseDescription_Malformed(t *testing.T) {
	t.Parallel()

	for _, desc := range []string{"", "端", "端開", "X開二麻上", "端開五麻上", "端開二麻上上", "端開二麻", "端開二Q麻上"} {
		_, err := ParseDescription(desc, AllMarginalKinds)
		assert.ErrorIs(t, err, ErrValidation, desc)
	}
}

func TestParseDescription_Illegal(t *testing.T) {
	t.Parallel()

	_, err := ParseDescription("見開四脂平", AllMarginalKinds)
	assert.ErrorIs(t, err, ErrIllegalPosition)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestPosition_Equal(t *testing.T) {
	t.Parallel()

	a, err := ParseDescription("見開一歌平", 0)
	require.NoError(t, err)
	b, err := NewPosition(Initial見, Openness開, Grade一, ClassNone, Rhyme歌, Tone平, AllMarginalKinds)
	require.NoError(t, err)
	c, err := ParseDescription("見開一歌上", 0)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
