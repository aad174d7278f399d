package live

import (
	"sync"

	"github.com/lokaclean/backoffice/internal/domain"
)

// Feed owns the current cleaner snapshot for the dashboard. Wholesale
// fetches call Replace; pushed updates call Apply; readers get a copy of the
// slice that shares element pointers with the snapshot.
type Feed struct {
	mu       sync.RWMutex
	cleaners []*domain.Cleaner
	loaded   bool

	// NewOrders counts bare new-order notifications since the last Drain.
	newOrders int
}

func NewFeed() *Feed {
	return &Feed{}
}

// Replace swaps in a wholesale snapshot.
func (f *Feed) Replace(cleaners []domain.Cleaner) {
	next := make([]*domain.Cleaner, len(cleaners))
	for i := range cleaners {
		c := cleaners[i]
		next[i] = &c
	}
	f.mu.Lock()
	f.cleaners = next
	f.loaded = true
	f.mu.Unlock()
}

// Apply merges one pushed update; reports whether anything matched.
func (f *Feed) Apply(upd LocationUpdate) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Merge(f.cleaners, upd)
}

// Snapshot returns the current cleaners and whether a wholesale load has
// happened at all.
func (f *Feed) Snapshot() ([]*domain.Cleaner, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*domain.Cleaner, len(f.cleaners))
	copy(out, f.cleaners)
	return out, f.loaded
}

// NoteNewOrder records one new-order push.
func (f *Feed) NoteNewOrder() {
	f.mu.Lock()
	f.newOrders++
	f.mu.Unlock()
}

// DrainNewOrders returns and resets the pending new-order count.
func (f *Feed) DrainNewOrders() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.newOrders
	f.newOrders = 0
	return n
}
