package types

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLevelSubsumes(t *testing.T) {
	testCases := []struct {
		name   string
		lhs    TypeLevel
		rhs    TypeLevel
		want   bool
		strict bool
	}{
		{
			name:   "smaller level subsumes larger",
			lhs:    TypeLevel{Level: 1},
			rhs:    TypeLevel{Level: 2},
			want:   true,
			strict: true,
		},
		{
			name:   "larger level does not subsume smaller",
			lhs:    TypeLevel{Level: 3},
			rhs:    TypeLevel{Level: 2},
			want:   false,
			strict: false,
		},
		{
			name:   "identical scope subsumes itself non-strictly",
			lhs:    TypeLevel{Level: 2, SubLevel: 1},
			rhs:    TypeLevel{Level: 2, SubLevel: 1},
			want:   true,
			strict: false,
		},
		{
			name:   "earlier sibling sublevel is strictly larger",
			lhs:    TypeLevel{Level: 2, SubLevel: 1},
			rhs:    TypeLevel{Level: 2, SubLevel: 2},
			want:   false,
			strict: true,
		},
		{
			name:   "later sibling sublevel subsumes nothing",
			lhs:    TypeLevel{Level: 2, SubLevel: 2},
			rhs:    TypeLevel{Level: 2, SubLevel: 1},
			want:   false,
			strict: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.lhs.Subsumes(tc.rhs))
			assert.Equal(t, tc.strict, tc.lhs.SubsumesStrict(tc.rhs))
		})
	}
}

func TestLevelIncrement(t *testing.T) {
	l := TypeLevel{Level: 1, SubLevel: 4}
	assert.Equal(t, TypeLevel{Level: 2}, l.Increment(), "increment resets the sublevel")
}

func TestLevelMinMax(t *testing.T) {
	outer := TypeLevel{Level: 1}
	inner := TypeLevel{Level: 3}

	assert.Equal(t, outer, MinLevel(outer, inner))
	assert.Equal(t, outer, MinLevel(inner, outer))
	assert.Equal(t, inner, MaxLevel(outer, inner))
	assert.Equal(t, inner, MaxLevel(inner, outer))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "(2, 1)", TypeLevel{Level: 2, SubLevel: 1}.String())
}
