package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackKey(t *testing.T) {
	tests := []struct {
		name     string
		position int
		length   int
		budget   int
	}{
		{name: "start", position: startPosition, length: 10, budget: 2},
		{name: "first key", position: 0, length: 1, budget: 0},
		{name: "last key", position: 17, length: 32, budget: 1},
		{name: "max budget", position: 254, length: 1 << 20, budget: MaxVowelBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := packKey(tt.position, tt.length, tt.budget)
			assert.Equal(t, tt.position, k.position())
			assert.Equal(t, tt.length, k.length())
			assert.Equal(t, tt.budget, k.budget())
		})
	}
}

func TestPackKey_Distinct(t *testing.T) {
	seen := make(map[memoKey]bool)
	for pos := 0; pos < 18; pos++ {
		for length := 1; length <= 40; length++ {
			for budget := 0; budget <= 2; budget++ {
				k := packKey(pos, length, budget)
				assert.False(t, seen[k], "key collision for (%d,%d,%d)", pos, length, budget)
				seen[k] = true
			}
		}
	}
	for length := 1; length <= 40; length++ {
		k := packKey(startPosition, length, 2)
		assert.False(t, seen[k], "start key collides at length %d", length)
		seen[k] = true
	}
}
