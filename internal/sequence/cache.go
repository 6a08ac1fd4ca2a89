package sequence

import (
	"sync"
	"sync/atomic"
)

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// hashKey hashes a memo key to a shard number using FNV-1a over its bytes.
func hashKey(k memoKey, numShards int) int {
	h := uint64(fnvOffset64)
	for i := 0; i < 8; i++ {
		h ^= uint64(k>>(8*i)) & 0xFF
		h *= fnvPrime64
	}
	return int(h % uint64(numShards))
}

type shard struct {
	mu      sync.RWMutex
	entries map[memoKey]uint64
}

// memoCache is the per-run subproblem cache shared by every branch of one
// count. Each shard has its own lock, so writers to different shards never
// contend. Concurrent stores of the same key are allowed: the value is a pure
// function of the key and the last write wins.
type memoCache struct {
	shards []shard

	hits   atomic.Uint64
	misses atomic.Uint64
	stores atomic.Uint64
}

func newMemoCache(numShards, expectedEntries int) *memoCache {
	if numShards < 1 {
		numShards = 1
	}
	perShard := max(expectedEntries, 0)/numShards + 1
	c := &memoCache{shards: make([]shard, numShards)}
	for i := range c.shards {
		c.shards[i].entries = make(map[memoKey]uint64, perShard)
	}
	return c
}

func (c *memoCache) shardFor(k memoKey) *shard {
	return &c.shards[hashKey(k, len(c.shards))]
}

func (c *memoCache) load(k memoKey) (uint64, bool) {
	s := c.shardFor(k)
	s.mu.RLock()
	v, ok := s.entries[k]
	s.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

func (c *memoCache) store(k memoKey, v uint64) {
	s := c.shardFor(k)
	s.mu.Lock()
	s.entries[k] = v
	s.mu.Unlock()
	c.stores.Add(1)
}

// len returns the number of distinct keys cached.
func (c *memoCache) len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}
