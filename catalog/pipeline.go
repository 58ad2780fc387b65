package catalog

import "sync"

// ComputeVisible filters records by f and orders the survivors by the
// selected comparator.
func ComputeVisible(records []Vehicle, f FilterState) []Vehicle {
	return Sort(Filter(records, f), f.SortBy, f.SortOrder)
}

// defaultMemoSize bounds how many distinct filter states are remembered per
// snapshot version.
const defaultMemoSize = 256

// Memo caches ComputeVisible results keyed on a snapshot version and the
// filter state. Results are shared between callers and must be treated as
// read-only. Safe for concurrent use.
type Memo struct {
	mu      sync.Mutex
	version uint64
	size    int
	entries map[string][]Vehicle
	hits    uint64
	misses  uint64
}

// NewMemo returns a memo holding at most size results per version; size
// below 1 selects a default.
func NewMemo(size int) *Memo {
	if size < 1 {
		size = defaultMemoSize
	}
	return &Memo{size: size, entries: make(map[string][]Vehicle)}
}

// Visible returns ComputeVisible(records, f), reusing a previous result when
// version and f are unchanged. A different version drops everything cached
// for the old one.
func (m *Memo) Visible(version uint64, records []Vehicle, f FilterState) []Vehicle {
	out, _ := m.Query(version, records, f)
	return out
}

// Query is Visible that also reports whether the result came from the memo.
func (m *Memo) Query(version uint64, records []Vehicle, f FilterState) ([]Vehicle, bool) {
	key := f.Key()

	m.mu.Lock()
	if version != m.version {
		m.version = version
		m.entries = make(map[string][]Vehicle)
	}
	if out, ok := m.entries[key]; ok {
		m.hits++
		m.mu.Unlock()
		return out, true
	}
	m.misses++
	m.mu.Unlock()

	out := ComputeVisible(records, f)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.version != version {
		return out, false
	}
	if len(m.entries) >= m.size {
		m.entries = make(map[string][]Vehicle)
	}
	m.entries[key] = out
	return out, false
}

// Stats returns cache hits and misses since construction.
func (m *Memo) Stats() (hits, misses uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}
