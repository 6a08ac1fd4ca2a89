package precompute

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"knight-sequences/internal/sequence"
)

// Entry is one row of a count table.
type Entry struct {
	Length int
	Count  uint64
}

// ComputeTable counts sequences for every length in [from, to] using a pool of
// workers, each length with its own fresh cache. Entries come back sorted by
// length.
//
// workers: Number of lengths computed at once. If 0 or negative, uses runtime.NumCPU().
// The counter's own Workers option still bounds parallelism inside one length.
func ComputeTable(ctx context.Context, counter *sequence.Counter, from, to int, workers int, progressCallback func(string)) ([]Entry, error) {
	if from > to {
		return nil, fmt.Errorf("invalid length range %d..%d", from, to)
	}

	workerPoolSize := workers
	if workerPoolSize <= 0 {
		workerPoolSize = runtime.NumCPU()
	}
	total := to - from + 1
	if workerPoolSize > total {
		workerPoolSize = total
	}

	if progressCallback != nil {
		progressCallback(fmt.Sprintf("Computing lengths %d..%d with %d workers...", from, to, workerPoolSize))
	}

	lengths := make(chan int, total)
	results := make(chan Entry, workerPoolSize)

	// Start worker pool
	eg, egCtx := errgroup.WithContext(ctx)
	for w := 1; w <= workerPoolSize; w++ {
		eg.Go(func() error {
			return computeLengthsWorker(egCtx, w, counter, lengths, results, progressCallback)
		})
	}

	for length := from; length <= to; length++ {
		lengths <- length
	}
	close(lengths)

	// Collect results in a separate goroutine
	var entries []Entry
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range results {
			entries = append(entries, e)

			if progressCallback != nil && (len(entries)%10 == 0 || len(entries) == total) {
				progressCallback(fmt.Sprintf("    Computed %d/%d lengths", len(entries), total))
			}
		}
	}()

	err := eg.Wait()
	close(results)
	<-done
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Length < entries[j].Length })

	if progressCallback != nil {
		progressCallback(fmt.Sprintf("  Table complete: %d lengths", len(entries)))
	}

	return entries, nil
}

// computeLengthsWorker counts each length it receives until the channel is
// drained or the context is cancelled.
func computeLengthsWorker(ctx context.Context, id int, counter *sequence.Counter, lengths <-chan int, results chan<- Entry, progressCallback func(string)) error {
	processCount := 0
	for length := range lengths {
		n, err := counter.Count(ctx, length)
		if err != nil {
			return fmt.Errorf("worker %d: %w", id, err)
		}
		processCount++

		select {
		case results <- Entry{Length: length, Count: n}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if progressCallback != nil {
		progressCallback(fmt.Sprintf("  Worker %d finished after %d lengths", id, processCount))
	}
	return nil
}

// Mismatch is a length whose counts differ between two tables.
type Mismatch struct {
	Length int
	Want   uint64
	Got    uint64
	// Missing is set when got has no entry for Length.
	Missing bool
}

// CompareTables checks got against want and returns every length in want that
// got disagrees with or lacks.
func CompareTables(want, got []Entry) []Mismatch {
	byLength := make(map[int]uint64, len(got))
	for _, e := range got {
		byLength[e.Length] = e.Count
	}

	var mismatches []Mismatch
	for _, e := range want {
		n, ok := byLength[e.Length]
		switch {
		case !ok:
			mismatches = append(mismatches, Mismatch{Length: e.Length, Want: e.Count, Missing: true})
		case n != e.Count:
			mismatches = append(mismatches, Mismatch{Length: e.Length, Want: e.Count, Got: n})
		}
	}
	return mismatches
}
