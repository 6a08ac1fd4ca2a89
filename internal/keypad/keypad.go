// Package keypad models the fixed keypad the sequence counter walks.
//
// A Layout is a closed set of labelled cells on a grid. Knight-move adjacency
// and vowel membership are computed once when the layout is built, so lookups
// during counting are plain slice indexing.
package keypad

import (
	"errors"
	"fmt"
)

// MaxKeys is the largest layout supported. Key indices must fit in a byte
// with one value left over for the counter's start state.
const MaxKeys = 255

// ErrInvalidLayout is returned by New when the cells do not form a usable layout.
var ErrInvalidLayout = errors.New("invalid keypad layout")

// Key is the index of a cell within its Layout.
type Key uint8

// Cell describes one key: its label, grid coordinate and vowel flag.
type Cell struct {
	Name  string
	Row   int
	Col   int
	Vowel bool
}

// knightOffsets are the eight (row, col) deltas of a chess knight.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

// Layout is an immutable keypad. It is safe for concurrent use.
type Layout struct {
	cells     []Cell
	keys      []Key
	neighbors [][]Key
	vowels    []bool
	byName    map[string]Key
}

// New builds a layout from cells. Cell order defines key indices and the
// order neighbors are reported in.
func New(cells []Cell) (*Layout, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrInvalidLayout)
	}
	if len(cells) > MaxKeys {
		return nil, fmt.Errorf("%w: %d cells, at most %d supported", ErrInvalidLayout, len(cells), MaxKeys)
	}

	l := &Layout{
		cells:     make([]Cell, len(cells)),
		keys:      make([]Key, len(cells)),
		neighbors: make([][]Key, len(cells)),
		vowels:    make([]bool, len(cells)),
		byName:    make(map[string]Key, len(cells)),
	}
	copy(l.cells, cells)

	byCoord := make(map[[2]int]Key, len(cells))
	for i, c := range cells {
		k := Key(i)
		if c.Name == "" {
			return nil, fmt.Errorf("%w: cell %d has no name", ErrInvalidLayout, i)
		}
		if _, dup := l.byName[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidLayout, c.Name)
		}
		coord := [2]int{c.Row, c.Col}
		if other, dup := byCoord[coord]; dup {
			return nil, fmt.Errorf("%w: %q and %q share coordinate (%d,%d)",
				ErrInvalidLayout, cells[other].Name, c.Name, c.Row, c.Col)
		}
		l.byName[c.Name] = k
		byCoord[coord] = k
		l.keys[i] = k
		l.vowels[i] = c.Vowel
	}

	for i, c := range cells {
		var adj []Key
		for _, other := range l.keys {
			oc := cells[other]
			if isKnightMove(c.Row, c.Col, oc.Row, oc.Col) {
				adj = append(adj, other)
			}
		}
		l.neighbors[i] = adj
	}

	return l, nil
}

func isKnightMove(r1, c1, r2, c2 int) bool {
	for _, off := range knightOffsets {
		if r1+off[0] == r2 && c1+off[1] == c2 {
			return true
		}
	}
	return false
}

// Size returns the number of keys.
func (l *Layout) Size() int { return len(l.cells) }

// Keys returns every key in layout order. The slice must not be modified.
func (l *Layout) Keys() []Key { return l.keys }

// Neighbors returns the keys one knight move away from k, in layout order.
// The slice is shared and must not be modified.
func (l *Layout) Neighbors(k Key) []Key { return l.neighbors[k] }

// IsVowel reports whether k belongs to the vowel subset.
func (l *Layout) IsVowel(k Key) bool { return l.vowels[k] }

// Cell returns the description of k.
func (l *Layout) Cell(k Key) Cell { return l.cells[k] }

// Name returns the label of k.
func (l *Layout) Name(k Key) string { return l.cells[k].Name }

// Lookup resolves a key by its label.
func (l *Layout) Lookup(name string) (Key, bool) {
	k, ok := l.byName[name]
	return k, ok
}
