package wealthsheet

import (
	"encoding/json"
	"fmt"
	"sync"
)

// defaultMemoLimit is the entry count past which the cache clears itself.
const defaultMemoLimit = 256

// Memo is a bounded memoization cache for aggregation helpers. It is an
// explicit object with a reset lifecycle owned by the caller (typically one
// per viewed year), not a process-global map, so invalidation is
// deterministic and concurrent callers can shard per view. Eviction is
// clear-everything once the map exceeds its limit.
type Memo struct {
	mu      sync.Mutex
	limit   int
	entries map[string]any
}

// NewMemo returns a cache that clears itself past limit entries. A
// non-positive limit selects the default.
func NewMemo(limit int) *Memo {
	if limit <= 0 {
		limit = defaultMemoLimit
	}
	return &Memo{limit: limit, entries: make(map[string]any)}
}

// Key builds a cache key from a function name and its serialized arguments.
func (m *Memo) Key(fn string, args ...any) string {
	b, err := json.Marshal(args)
	if err != nil {
		// Unserializable arguments still deserve a stable-ish key.
		return fmt.Sprintf("%s:%v", fn, args)
	}
	return fn + ":" + string(b)
}

// Do returns the cached result for the key, computing and storing it on miss.
func (m *Memo) Do(key string, compute func() any) any {
	m.mu.Lock()
	if v, ok := m.entries[key]; ok {
		m.mu.Unlock()
		return v
	}
	m.mu.Unlock()

	v := compute()

	m.mu.Lock()
	if len(m.entries) >= m.limit {
		m.entries = make(map[string]any)
	}
	m.entries[key] = v
	m.mu.Unlock()
	return v
}

// Len returns the number of cached entries.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Reset drops every cached entry.
func (m *Memo) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]any)
}
