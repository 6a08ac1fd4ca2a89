package sequence

import (
	"fmt"
	"runtime"
)

const (
	// DefaultVowelBudget is the number of vowel keys allowed in one sequence.
	DefaultVowelBudget = 2

	// DefaultSequentialCutoff is the remaining length at or below which
	// branches are counted inline instead of being forked.
	DefaultSequentialCutoff = 4

	// MaxVowelBudget is the largest budget that fits in a memo key.
	MaxVowelBudget = 0xFF

	// shardsPerWorker sets the default cache concurrency level.
	shardsPerWorker = 4

	// maxPresizedEntries caps the derived cache size hint.
	maxPresizedEntries = 1 << 20
)

// Options controls a Counter.
type Options struct {
	// Workers bounds the goroutines counting in parallel, the caller's
	// included. 1 counts sequentially; 0 or negative uses runtime.NumCPU().
	Workers int

	// VowelBudget is the number of vowel keys one sequence may contain.
	VowelBudget int

	// SequentialCutoff is the remaining length at or below which children
	// are counted inline. Negative values are treated as 0.
	SequentialCutoff int

	// CacheShards is the memo cache concurrency level. 0 derives it from Workers.
	CacheShards int

	// ExpectedEntries pre-sizes the memo cache. 0 derives it from the length
	// being counted.
	ExpectedEntries int

	// Progress, if set, receives human-readable status lines from Run.
	Progress func(string)
}

// DefaultOptions returns the reference configuration: vowel budget 2 and
// the given worker count.
func DefaultOptions(workers int) Options {
	return Options{
		Workers:          workers,
		VowelBudget:      DefaultVowelBudget,
		SequentialCutoff: DefaultSequentialCutoff,
	}
}

// normalize fills derived defaults and validates opts.
func (o Options) normalize() (Options, error) {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.VowelBudget < 0 || o.VowelBudget > MaxVowelBudget {
		return o, fmt.Errorf("%w: vowel budget %d outside [0, %d]", ErrInvalidArgument, o.VowelBudget, MaxVowelBudget)
	}
	if o.SequentialCutoff < 0 {
		o.SequentialCutoff = 0
	}
	if o.CacheShards < 0 {
		return o, fmt.Errorf("%w: cache shards %d is negative", ErrInvalidArgument, o.CacheShards)
	}
	if o.CacheShards == 0 {
		o.CacheShards = o.Workers * shardsPerWorker
	}
	if o.ExpectedEntries < 0 {
		return o, fmt.Errorf("%w: expected entries %d is negative", ErrInvalidArgument, o.ExpectedEntries)
	}
	return o, nil
}
