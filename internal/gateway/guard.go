package gateway

import "sync"

// SeqGuard orders the results of concurrent status lookups. Every dispatch takes a
// sequence number from one monotonic counter; a result commits only when no
// later-issued dispatch for the same contribution has committed already.
type SeqGuard struct {
	mu      sync.Mutex
	next    uint64
	entries map[string]*guardEntry
}

type guardEntry struct {
	mu        sync.Mutex
	committed uint64
}

func NewSeqGuard() *SeqGuard {
	return &SeqGuard{entries: make(map[string]*guardEntry)}
}

func (g *SeqGuard) entry(id string) *guardEntry {
	e, ok := g.entries[id]
	if !ok {
		e = &guardEntry{}
		g.entries[id] = e
	}
	return e
}

// Issue returns the sequence number of a new dispatch for id.
func (g *SeqGuard) Issue(id string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	g.entry(id)
	return g.next
}

// Commit runs write for the dispatch seq of id unless a later dispatch has committed.
// Writes for one id never overlap. It reports whether write ran and succeeded.
func (g *SeqGuard) Commit(id string, seq uint64, write func() error) (bool, error) {
	g.mu.Lock()
	e := g.entry(id)
	g.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if seq <= e.committed {
		return false, nil
	}
	if err := write(); err != nil {
		return false, err
	}
	e.committed = seq
	return true, nil
}

// Retain drops the state of every id for which keep is false. Callers must only drop
// ids with no dispatch in flight.
func (g *SeqGuard) Retain(keep func(id string) bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for id := range g.entries {
		if !keep(id) {
			delete(g.entries, id)
		}
	}
}

// Committed returns the sequence number of the last committed dispatch for id, or 0.
func (g *SeqGuard) Committed(id string) uint64 {
	g.mu.Lock()
	e, ok := g.entries[id]
	g.mu.Unlock()
	if !ok {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.committed
}
