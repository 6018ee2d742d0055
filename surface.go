package virtkit

import "sync"

// Surface is the contract a host scroll surface provides. It is the entire
// boundary between the windowing core and whatever actually scrolls: a GLFW
// window, a terminal pane, or an in-memory surface in tests. Keeping the
// boundary this small keeps the core pure and testable without a real
// rendering surface.
//
// OnScroll and OnResize return a remove function that unsubscribes the
// callback; a Virtualizer calls these on Close so no callback outlives its
// owner.
type Surface interface {
	// OnScroll registers fn to be called with the new scroll offset on
	// every scroll event.
	OnScroll(fn func(offset float32)) (remove func())

	// OnResize registers fn to be called with the new viewport extent when
	// the surface is resized.
	OnResize(fn func(extent float32)) (remove func())

	// ScrollOffset returns the current scroll offset from the top.
	ScrollOffset() float32

	// SetScrollOffset moves the surface to the given offset. Implementations
	// clamp to their own valid bounds and emit a scroll event.
	SetScrollOffset(offset float32)

	// ViewportExtent returns the current visible extent of the surface.
	ViewportExtent() float32
}

// ProgramSurface is an in-memory Surface for hosts without a native scroll
// event source: terminal UIs drive it from key and mouse messages, tests
// drive it directly.
//
// Scroll offsets are clamped to [0, contentExtent-viewportExtent] once a
// content extent has been supplied.
type ProgramSurface struct {
	mu            sync.Mutex
	offset        float32
	extent        float32
	contentExtent float32
	nextSub       int
	scrollSubs    map[int]func(float32)
	resizeSubs    map[int]func(float32)
}

// NewProgramSurface creates a surface with the given viewport extent.
func NewProgramSurface(extent float32) *ProgramSurface {
	return &ProgramSurface{
		extent:     extent,
		scrollSubs: make(map[int]func(float32)),
		resizeSubs: make(map[int]func(float32)),
	}
}

// OnScroll implements Surface.
func (s *ProgramSurface) OnScroll(fn func(float32)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.scrollSubs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.scrollSubs, id)
		s.mu.Unlock()
	}
}

// OnResize implements Surface.
func (s *ProgramSurface) OnResize(fn func(float32)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.resizeSubs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.resizeSubs, id)
		s.mu.Unlock()
	}
}

// ScrollOffset implements Surface.
func (s *ProgramSurface) ScrollOffset() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// SetScrollOffset implements Surface. The offset is clamped and scroll
// subscribers are notified even if the clamped value is unchanged, matching
// how a real surface keeps emitting events while pinned at an edge.
func (s *ProgramSurface) SetScrollOffset(offset float32) {
	s.mu.Lock()
	offset = s.clampOffset(offset)
	s.offset = offset
	subs := s.snapshotScrollSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(offset)
	}
}

// ScrollBy scrolls relative to the current offset.
func (s *ProgramSurface) ScrollBy(delta float32) {
	s.SetScrollOffset(s.ScrollOffset() + delta)
}

// ViewportExtent implements Surface.
func (s *ProgramSurface) ViewportExtent() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extent
}

// SetViewportExtent resizes the surface and notifies resize subscribers.
func (s *ProgramSurface) SetViewportExtent(extent float32) {
	s.mu.Lock()
	s.extent = extent
	s.offset = s.clampOffset(s.offset)
	subs := make([]func(float32), 0, len(s.resizeSubs))
	for _, fn := range s.resizeSubs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(extent)
	}
}

// SetContentExtent supplies the total content extent used for clamping.
// Hosts feed Virtualizer.TotalHeight back through this after each rebuild.
func (s *ProgramSurface) SetContentExtent(extent float32) {
	s.mu.Lock()
	s.contentExtent = extent
	s.offset = s.clampOffset(s.offset)
	s.mu.Unlock()
}

// ContentExtent returns the current content extent.
func (s *ProgramSurface) ContentExtent() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contentExtent
}

// clampOffset clamps to valid scroll bounds. Caller holds s.mu.
func (s *ProgramSurface) clampOffset(offset float32) float32 {
	if s.contentExtent <= 0 {
		return maxf(0, offset)
	}
	return clampf(offset, 0, maxf(0, s.contentExtent-s.extent))
}

// snapshotScrollSubs copies subscribers so callbacks run outside the lock.
// Caller holds s.mu.
func (s *ProgramSurface) snapshotScrollSubs() []func(float32) {
	subs := make([]func(float32), 0, len(s.scrollSubs))
	for _, fn := range s.scrollSubs {
		subs = append(subs, fn)
	}
	return subs
}
