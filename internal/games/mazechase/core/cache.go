package core

type canGoKey struct {
	cell   CellPos
	dir    Dir
	radius float64
}

type canGoEntry struct {
	gen uint64
	ok  bool
}

// canGoMemo memoizes traversability answers for a single tick. Entries from
// an older generation are treated as missing, so bumping the generation
// invalidates the whole table without clearing it.
type canGoMemo struct {
	gen     uint64
	entries map[canGoKey]canGoEntry
}

func newCanGoMemo() *canGoMemo {
	return &canGoMemo{entries: make(map[canGoKey]canGoEntry)}
}

// advance starts a new generation.
func (m *canGoMemo) advance() {
	m.gen++
	// Keep the table from growing across generations.
	if len(m.entries) > 4096 {
		m.entries = make(map[canGoKey]canGoEntry)
	}
}

func (m *canGoMemo) lookup(k canGoKey) (ok, hit bool) {
	e, found := m.entries[k]
	if !found || e.gen != m.gen {
		return false, false
	}
	return e.ok, true
}

func (m *canGoMemo) store(k canGoKey, ok bool) {
	m.entries[k] = canGoEntry{gen: m.gen, ok: ok}
}
