package ui

import (
	"hash/fnv"
	"sync"
)

// RenderCache memoises expensive renders such as glamour output, keyed by
// a hash of the render inputs.
type RenderCache struct {
	mu      sync.Mutex
	entries map[uint64]string
	order   []uint64
	maxSize int
	hits    int
	misses  int
}

// NewRenderCache creates a cache holding at most maxSize entries; the
// oldest entry is evicted first.
func NewRenderCache(maxSize int) *RenderCache {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &RenderCache{
		entries: make(map[uint64]string, maxSize),
		maxSize: maxSize,
	}
}

// ComputeKey generates a cache key from strings, ints and bools.
func ComputeKey(inputs ...any) uint64 {
	h := fnv.New64a()
	var b [8]byte

	for _, input := range inputs {
		switch v := input.(type) {
		case string:
			h.Write([]byte(v))
			h.Write([]byte{0})
		case int:
			u := uint64(v)
			for i := range b {
				b[i] = byte(u >> (8 * i))
			}
			h.Write(b[:])
		case bool:
			if v {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}

	return h.Sum64()
}

// GetOrCompute retrieves from cache or computes if missing.
func (rc *RenderCache) GetOrCompute(key uint64, compute func() string) string {
	rc.mu.Lock()
	if content, ok := rc.entries[key]; ok {
		rc.hits++
		rc.mu.Unlock()
		return content
	}
	rc.misses++
	rc.mu.Unlock()

	content := compute()

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if _, ok := rc.entries[key]; !ok {
		if len(rc.order) >= rc.maxSize {
			oldest := rc.order[0]
			rc.order = rc.order[1:]
			delete(rc.entries, oldest)
		}
		rc.order = append(rc.order, key)
	}
	rc.entries[key] = content
	return content
}

// Len returns the number of cached entries.
func (rc *RenderCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.entries)
}

// Stats returns hit and miss counts.
func (rc *RenderCache) Stats() (hits, misses int) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.hits, rc.misses
}

// Clear empties the cache.
func (rc *RenderCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries = make(map[uint64]string, rc.maxSize)
	rc.order = nil
}
