// Package sequence counts knight-move key sequences on a keypad.
//
// A sequence starts on any key and every following press is one knight move
// away from the previous one. At most VowelBudget presses in a sequence may be
// vowel keys. Counting is a memoized recursion over (position, remaining
// length, remaining budget); independent branches are forked onto a bounded
// set of goroutines and joined before summing.
//
// Counts are uint64 and wrap silently once they exceed 2^64-1. For the
// standard keypad that happens well past length 32.
package sequence

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"knight-sequences/internal/keypad"
)

// Graph is the keypad the counter walks.
type Graph interface {
	Size() int
	Neighbors(k keypad.Key) []keypad.Key
	IsVowel(k keypad.Key) bool
}

// Result is the outcome of one Run.
type Result struct {
	Length       int
	Count        uint64
	VowelBudget  int
	Workers      int
	CacheEntries int
	CacheHits    uint64
	CacheMisses  uint64
	Elapsed      time.Duration
}

// Counter counts sequences on one graph. A Counter holds no per-run state and
// may be used by several goroutines at once; every Run gets its own cache.
type Counter struct {
	graph Graph
	opts  Options
	all   []keypad.Key
}

// New returns a Counter for graph.
func New(graph Graph, opts Options) (*Counter, error) {
	if graph == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidArgument)
	}
	size := graph.Size()
	if size < 1 || size > keypad.MaxKeys {
		return nil, fmt.Errorf("%w: graph has %d keys, want 1..%d", ErrInvalidArgument, size, keypad.MaxKeys)
	}

	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	all := make([]keypad.Key, size)
	for i := range all {
		all[i] = keypad.Key(i)
	}

	return &Counter{graph: graph, opts: opts, all: all}, nil
}

// Options returns the normalized options the counter runs with.
func (c *Counter) Options() Options { return c.opts }

// Count returns the number of valid sequences of the given length. Lengths
// of zero or below count the empty sequence only and return 1.
func (c *Counter) Count(ctx context.Context, length int) (uint64, error) {
	res, err := c.Run(ctx, length)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// Run is Count with cache statistics and timing.
func (c *Counter) Run(ctx context.Context, length int) (Result, error) {
	start := time.Now()
	res := Result{
		Length:      length,
		VowelBudget: c.opts.VowelBudget,
		Workers:     c.opts.Workers,
	}

	if length <= 0 {
		res.Count = 1
		res.Elapsed = time.Since(start)
		return res, nil
	}

	c.progress(fmt.Sprintf("Counting sequences of length %d (workers=%d, vowel budget=%d)",
		length, c.opts.Workers, c.opts.VowelBudget))

	expected := c.opts.ExpectedEntries
	if expected == 0 {
		expected = maxPresizedEntries
		if length < maxPresizedEntries {
			expected = min((c.graph.Size()+1)*length*(c.opts.VowelBudget+1), maxPresizedEntries)
		}
	}

	r := &run{
		graph:  c.graph,
		all:    c.all,
		cutoff: c.opts.SequentialCutoff,
		cache:  newMemoCache(c.opts.CacheShards, expected),
	}
	if c.opts.Workers > 1 {
		// The calling goroutine is one of the workers.
		r.spawn = semaphore.NewWeighted(int64(c.opts.Workers - 1))
	}

	count, err := r.count(ctx, startPosition, length, c.opts.VowelBudget)
	if err != nil {
		return Result{}, fmt.Errorf("count sequences of length %d: %w", length, err)
	}

	res.Count = count
	res.CacheEntries = r.cache.len()
	res.CacheHits = r.cache.hits.Load()
	res.CacheMisses = r.cache.misses.Load()
	res.Elapsed = time.Since(start)

	c.progress(fmt.Sprintf("Counted %d sequences (%d cache entries, %d hits, %d misses) in %s",
		res.Count, res.CacheEntries, res.CacheHits, res.CacheMisses, res.Elapsed))

	return res, nil
}

func (c *Counter) progress(msg string) {
	if c.opts.Progress != nil {
		c.opts.Progress(msg)
	}
}

// run is the state shared by all branches of one top-level count.
type run struct {
	graph  Graph
	all    []keypad.Key
	cutoff int
	cache  *memoCache
	spawn  *semaphore.Weighted // nil when counting sequentially
}

// count returns the number of valid completions of length presses from
// position with budget vowels left.
func (r *run) count(ctx context.Context, position, length, budget int) (uint64, error) {
	if length <= 0 {
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	key := packKey(position, length, budget)
	if v, ok := r.cache.load(key); ok {
		return v, nil
	}

	next := r.all
	if position != startPosition {
		next = r.graph.Neighbors(keypad.Key(position))
	}

	var (
		sum uint64
		err error
	)
	if r.spawn != nil && length-1 > r.cutoff {
		sum, err = r.forkJoin(ctx, next, length-1, budget)
	} else {
		sum, err = r.inline(ctx, next, length-1, budget)
	}
	if err != nil {
		return 0, err
	}

	r.cache.store(key, sum)
	return sum, nil
}

// step applies pressing k to budget. It returns false when k is a vowel and
// no vowels are left.
func (r *run) step(k keypad.Key, budget int) (int, bool) {
	if !r.graph.IsVowel(k) {
		return budget, true
	}
	if budget <= 0 {
		return 0, false
	}
	return budget - 1, true
}

func (r *run) inline(ctx context.Context, next []keypad.Key, length, budget int) (uint64, error) {
	var sum uint64
	for _, k := range next {
		b, ok := r.step(k, budget)
		if !ok {
			continue
		}
		v, err := r.count(ctx, int(k), length, b)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// forkJoin counts each child on a new goroutine while spawn slots are free
// and inline otherwise, then waits for all of them. Taking slots with
// TryAcquire keeps the goroutine count bounded without a parent ever blocking
// on a slot held by its own descendants.
func (r *run) forkJoin(ctx context.Context, next []keypad.Key, length, budget int) (uint64, error) {
	g, gctx := errgroup.WithContext(ctx)
	counts := make([]uint64, len(next))

	var inlineErr error
	for i, k := range next {
		b, ok := r.step(k, budget)
		if !ok {
			continue
		}

		if r.spawn.TryAcquire(1) {
			g.Go(func() error {
				defer r.spawn.Release(1)
				v, err := r.count(gctx, int(k), length, b)
				counts[i] = v
				return err
			})
			continue
		}

		v, err := r.count(gctx, int(k), length, b)
		if err != nil {
			inlineErr = err
			break
		}
		counts[i] = v
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	if inlineErr != nil {
		return 0, inlineErr
	}

	var sum uint64
	for _, v := range counts {
		sum += v
	}
	return sum, nil
}

// CountSequences returns the number of sequences of length presses on the
// standard keypad with the reference vowel budget of 2, using all CPUs.
func CountSequences(length int) uint64 {
	c, err := New(keypad.Standard(), DefaultOptions(0))
	if err != nil {
		panic(err)
	}
	n, err := c.Count(context.Background(), length)
	if err != nil {
		// Only cancellation fails a count and Background is never cancelled.
		panic(fmt.Sprintf("sequence: count failed: %v", err))
	}
	return n
}
