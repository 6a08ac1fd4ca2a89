package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(l *Layout, keys []Key) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, l.Name(k))
	}
	return out
}

func TestStandard_Neighbors(t *testing.T) {
	l := Standard()
	require.Equal(t, 18, l.Size())

	tests := []struct {
		key  string
		want []string
	}{
		{key: "A", want: []string{"H", "L"}},
		{key: "B", want: []string{"I", "K", "M"}},
		{key: "C", want: []string{"F", "J", "L", "N"}},
		{key: "D", want: []string{"G", "M", "O"}},
		{key: "E", want: []string{"H", "N"}},
		{key: "F", want: []string{"C", "M", "1"}},
		{key: "G", want: []string{"D", "N", "2"}},
		{key: "H", want: []string{"A", "E", "K", "O", "1", "3"}},
		{key: "I", want: []string{"B", "L", "2"}},
		{key: "J", want: []string{"C", "M", "3"}},
		{key: "K", want: []string{"B", "H", "2"}},
		{key: "L", want: []string{"A", "C", "I", "3"}},
		{key: "M", want: []string{"B", "D", "F", "J"}},
		{key: "N", want: []string{"C", "E", "G", "1"}},
		{key: "O", want: []string{"D", "H", "2"}},
		{key: "1", want: []string{"F", "H", "N"}},
		{key: "2", want: []string{"G", "I", "K", "O"}},
		{key: "3", want: []string{"H", "J", "L"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			k, ok := l.Lookup(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, names(l, l.Neighbors(k)))
		})
	}
}

func TestStandard_NeighborSymmetry(t *testing.T) {
	l := Standard()
	adjacent := func(p, q Key) bool {
		for _, n := range l.Neighbors(p) {
			if n == q {
				return true
			}
		}
		return false
	}

	for _, p := range l.Keys() {
		for _, q := range l.Keys() {
			assert.Equal(t, adjacent(p, q), adjacent(q, p),
				"adjacency of %s and %s is not symmetric", l.Name(p), l.Name(q))
		}
		assert.False(t, adjacent(p, p), "%s is its own neighbor", l.Name(p))
		n := len(l.Neighbors(p))
		assert.True(t, n >= 2 && n <= 8, "%s has %d neighbors", l.Name(p), n)
	}
}

func TestStandard_Vowels(t *testing.T) {
	l := Standard()
	var vowels []string
	for _, k := range l.Keys() {
		if l.IsVowel(k) {
			vowels = append(vowels, l.Name(k))
		}
	}
	assert.Equal(t, []string{"A", "E", "I", "O"}, vowels)
}

func TestStandard_Deterministic(t *testing.T) {
	a, err := New(StandardCells)
	require.NoError(t, err)
	for _, k := range a.Keys() {
		assert.Equal(t, names(a, a.Neighbors(k)), names(Standard(), Standard().Neighbors(k)))
	}
}

func TestNew_Invalid(t *testing.T) {
	tooMany := make([]Cell, MaxKeys+1)
	for i := range tooMany {
		tooMany[i] = Cell{Name: string(rune('a' + i%26)), Row: i / 26, Col: i % 26}
	}

	tests := []struct {
		name  string
		cells []Cell
	}{
		{name: "Empty", cells: nil},
		{name: "TooMany", cells: tooMany},
		{name: "MissingName", cells: []Cell{{Row: 1, Col: 1}}},
		{name: "DuplicateName", cells: []Cell{{Name: "X", Row: 1, Col: 1}, {Name: "X", Row: 1, Col: 2}}},
		{name: "DuplicateCoordinate", cells: []Cell{{Name: "X", Row: 1, Col: 1}, {Name: "Y", Row: 1, Col: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cells)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestNew_SmallLayout(t *testing.T) {
	l, err := New([]Cell{
		{Name: "X", Row: 1, Col: 1},
		{Name: "V", Row: 2, Col: 3, Vowel: true},
		{Name: "Y", Row: 3, Col: 1},
	})
	require.NoError(t, err)

	x, _ := l.Lookup("X")
	v, _ := l.Lookup("V")
	y, _ := l.Lookup("Y")

	assert.Equal(t, []Key{v}, l.Neighbors(x))
	assert.Equal(t, []Key{x, y}, l.Neighbors(v))
	assert.Equal(t, []Key{v}, l.Neighbors(y))
	assert.True(t, l.IsVowel(v))
	assert.False(t, l.IsVowel(x))

	_, ok := l.Lookup("Z")
	assert.False(t, ok)
}
