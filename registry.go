package virtkit

import "sync"

// Registry stores Virtualizer instances for immediate-mode hosts that
// re-declare their lists every frame. Entries are marked as used when
// fetched; NextFrame closes and drops instances not touched in the previous
// frame, so scroll subscriptions and idle timers of disappeared lists are
// always torn down without explicit caller bookkeeping.
//
// Usage:
//
//	var lists = virtkit.NewRegistry()
//
//	// Each frame, per visible list:
//	v := lists.Get("sidebar", func() *virtkit.Virtualizer {
//	    return virtkit.New(rowCount, virtkit.FixedHeight(24))
//	})
//	v.SetItemCount(rowCount)
//
//	// Once per frame:
//	lists.NextFrame()
type Registry struct {
	mu      sync.Mutex
	entries map[ID]*registryEntry
	frame   uint64
}

type registryEntry struct {
	v         *Virtualizer
	lastFrame uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ID]*registryEntry)}
}

// Get returns the instance stored under label, creating it with create on
// first use. The entry is marked as used this frame.
func (r *Registry) Get(label string, create func() *Virtualizer) *Virtualizer {
	id := IDOf(label)

	r.mu.Lock()
	if entry, ok := r.entries[id]; ok {
		entry.lastFrame = r.frame
		r.mu.Unlock()
		return entry.v
	}
	r.mu.Unlock()

	// Build outside the lock; create may attach surfaces or log.
	v := create()

	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[id]; ok {
		// Lost the race with another creator for the same label.
		entry.lastFrame = r.frame
		v.Close()
		return entry.v
	}
	r.entries[id] = &registryEntry{v: v, lastFrame: r.frame}
	return v
}

// Lookup returns the instance stored under label without creating or
// marking it used, or nil if absent.
func (r *Registry) Lookup(label string) *Virtualizer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[IDOf(label)]; ok {
		return entry.v
	}
	return nil
}

// NextFrame advances the frame counter and closes every instance that was
// not fetched in the previous frame. Call once per host frame.
func (r *Registry) NextFrame() {
	r.mu.Lock()
	r.frame++
	threshold := r.frame - 1
	var stale []*Virtualizer
	for id, entry := range r.entries {
		if entry.lastFrame < threshold {
			stale = append(stale, entry.v)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	for _, v := range stale {
		v.Close()
	}
	if len(stale) > 0 {
		virtLogger.Debug("registry cleanup", "closed", len(stale))
	}
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Clear closes and removes all instances immediately.
func (r *Registry) Clear() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[ID]*registryEntry)
	r.mu.Unlock()

	for _, entry := range entries {
		entry.v.Close()
	}
}
