package virtkit

import (
	"sync"
	"time"
)

// Virtualizer is the windowing pipeline for one scrollable list: it owns
// the offset index, the viewport state fed by its attached Surface, and the
// debounced is-scrolling flag, and resolves the visible item window on
// demand.
//
// All geometry is recomputed synchronously inside the scroll/resize event
// or the caller's render pass; there is no background work beyond the
// single idle timer behind IsScrolling. Each instance owns its state
// exclusively, so one mutex is all the coordination required (the timer
// callback is the only other writer).
//
// Usage:
//
//	v := virtkit.New(len(rows), virtkit.FixedHeight(24), virtkit.Overscan(4))
//	v.Attach(surface)
//	defer v.Close()
//
//	// Render pass: container sized to v.TotalHeight(), each item drawn
//	// absolutely at item.Start with height item.Size.
//	for _, item := range v.Items() {
//	    drawRow(item.Index, item.Start, item.Size)
//	}
type Virtualizer struct {
	mu sync.Mutex

	// Configuration
	count       int
	policy      HeightPolicy
	overscan    int
	idleDelay   time.Duration
	fixedExtent float32

	// Derived, rebuilt on count/policy change
	idx *OffsetIndex

	// Viewport state, fed by the attached surface
	scrollTop float32
	extent    float32

	// Is-scrolling debounce
	isScrolling bool
	idleTimer   *time.Timer
	idleGen     uint64

	// Attachment
	surface      Surface
	removeScroll func()
	removeResize func()

	onUpdate func()
	closed   bool
}

// New creates a Virtualizer for count items under the given height policy.
// The offset index is built immediately; attach a Surface to start
// receiving scroll and resize events.
func New(count int, policy HeightPolicy, opts ...Option) *Virtualizer {
	o := applyOptions(opts)

	v := &Virtualizer{
		count:       maxi(0, count),
		policy:      policy,
		overscan:    maxi(0, GetOpt(o, OptOverscan)),
		idleDelay:   GetOpt(o, OptIdleDelay),
		fixedExtent: GetOpt(o, OptViewportExtent),
	}
	v.extent = v.fixedExtent
	v.idx = BuildOffsetIndex(v.count, v.policy)
	return v
}

// Attach subscribes to the surface's scroll events and, unless a fixed
// viewport extent was configured, its resize events. A previous attachment
// is torn down first; there is never more than one live subscription pair.
func (v *Virtualizer) Attach(s Surface) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.detachLocked()
	v.surface = s
	v.scrollTop = maxf(0, s.ScrollOffset())
	if v.fixedExtent <= 0 {
		v.extent = s.ViewportExtent()
	}
	v.removeScroll = s.OnScroll(v.handleScroll)
	if v.fixedExtent <= 0 {
		// Explicit configuration wins over automatic measurement: with a
		// fixed extent no resize watcher is attached at all.
		v.removeResize = s.OnResize(v.handleResize)
	}
	v.mu.Unlock()

	virtLogger.Debug("virtualizer attached",
		"items", v.count,
		"extent", v.extent,
		"fixedExtent", v.fixedExtent > 0)
}

// Close tears the instance down: scroll and resize subscriptions are
// removed and any pending idle timer is cancelled, so no callback can fire
// against a detached surface. Close is idempotent.
func (v *Virtualizer) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.detachLocked()
	v.cancelIdleTimerLocked()
	v.isScrolling = false
	v.mu.Unlock()

	virtLogger.Debug("virtualizer closed", "items", v.count)
}

// detachLocked removes surface subscriptions. Caller holds v.mu.
func (v *Virtualizer) detachLocked() {
	if v.removeScroll != nil {
		v.removeScroll()
		v.removeScroll = nil
	}
	if v.removeResize != nil {
		v.removeResize()
		v.removeResize = nil
	}
	v.surface = nil
}

// cancelIdleTimerLocked stops a pending idle timer. Bumping the generation
// invalidates a callback that already fired but has not run yet. Caller
// holds v.mu.
func (v *Virtualizer) cancelIdleTimerLocked() {
	v.idleGen++
	if v.idleTimer != nil {
		v.idleTimer.Stop()
		v.idleTimer = nil
	}
}

// handleScroll is the per-scroll-event path; it must stay cheap because
// surfaces fire it at input rate.
func (v *Virtualizer) handleScroll(offset float32) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.scrollTop = maxf(0, offset)
	v.isScrolling = true

	// Debounce, not throttle: every event cancels the pending timer and
	// arms a fresh one, so the flag clears only after genuine idle.
	v.cancelIdleTimerLocked()
	gen := v.idleGen
	delay := v.idleDelay
	v.idleTimer = time.AfterFunc(delay, func() {
		v.idleExpired(gen)
	})
	fn := v.onUpdate
	v.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// idleExpired clears the is-scrolling flag if no scroll event intervened.
func (v *Virtualizer) idleExpired(gen uint64) {
	v.mu.Lock()
	if v.closed || gen != v.idleGen {
		v.mu.Unlock()
		return
	}
	v.isScrolling = false
	v.idleTimer = nil
	fn := v.onUpdate
	v.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (v *Virtualizer) handleResize(extent float32) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.extent = extent
	fn := v.onUpdate
	v.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// OnUpdate registers a callback invoked after viewport state changes
// (scroll, resize, idle expiry). Hosts that need an explicit redraw signal
// set this; immediate-mode hosts that already render every frame don't.
func (v *Virtualizer) OnUpdate(fn func()) {
	v.mu.Lock()
	v.onUpdate = fn
	v.mu.Unlock()
}

// SetItemCount rebuilds the offset index for a new item count.
// The rebuild happens before any subsequent resolve, never concurrently
// with one.
func (v *Virtualizer) SetItemCount(count int) {
	count = maxi(0, count)
	v.mu.Lock()
	if count != v.count {
		v.count = count
		v.idx = BuildOffsetIndex(v.count, v.policy)
	}
	v.mu.Unlock()
}

// SetHeightPolicy installs a new height policy and rebuilds the index.
func (v *Virtualizer) SetHeightPolicy(policy HeightPolicy) {
	v.mu.Lock()
	v.policy = policy
	v.idx = BuildOffsetIndex(v.count, v.policy)
	v.mu.Unlock()
}

// ItemCount returns the current item count.
func (v *Virtualizer) ItemCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.count
}

// TotalHeight returns the total content extent. The caller renders its
// container at this size so the surface exposes correct scroll bounds.
func (v *Virtualizer) TotalHeight() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.idx.Total()
}

// ScrollTop returns the current scroll offset as last reported by the
// surface.
func (v *Virtualizer) ScrollTop() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrollTop
}

// ViewportExtent returns the current viewport extent.
func (v *Virtualizer) ViewportExtent() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.extent
}

// IsScrolling reports whether a scroll event arrived within the idle delay.
// Purely a rendering hint (suppress transitions while true).
func (v *Virtualizer) IsScrolling() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.isScrolling
}

// VisibleRange resolves the current visible index range including overscan.
func (v *Virtualizer) VisibleRange() Range {
	v.mu.Lock()
	defer v.mu.Unlock()
	return ResolveRange(v.idx, v.scrollTop, v.extent, v.overscan)
}

// Items resolves and materializes the current visible window.
func (v *Virtualizer) Items() []VirtualItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	r := ResolveRange(v.idx, v.scrollTop, v.extent, v.overscan)
	return MaterializeRange(v.idx, r)
}

// Item returns the positioned item at index, or false when out of range.
func (v *Virtualizer) Item(index int) (VirtualItem, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if index < 0 || index >= v.idx.Len() {
		return VirtualItem{}, false
	}
	return v.idx.Item(index), true
}

// ScrollToIndex computes the offset that brings index into view under the
// given alignment, clamps it to valid scroll bounds, and sets it on the
// surface. The resulting scroll event drives the resolver; this method does
// not resolve anything itself. An out-of-range index is a no-op.
func (v *Virtualizer) ScrollToIndex(index int, align Align) {
	v.mu.Lock()
	if v.closed || index < 0 || index >= v.idx.Len() {
		v.mu.Unlock()
		return
	}
	target := scrollTarget(v.idx, index, align, v.extent)
	s := v.surface
	v.mu.Unlock()

	virtLogger.Debug("scroll to index",
		"index", index,
		"align", align.String(),
		"target", target)

	if s != nil {
		s.SetScrollOffset(target)
		return
	}
	// No surface attached: apply the offset directly so programmatic use
	// still works.
	v.mu.Lock()
	v.scrollTop = target
	v.mu.Unlock()
}

// scrollTarget computes the clamped target offset for an alignment.
func scrollTarget(idx *OffsetIndex, index int, align Align, extent float32) float32 {
	start := idx.Start(index)
	size := idx.Size(index)

	var target float32
	switch align {
	case AlignCenter:
		target = start - extent/2 + size/2
	case AlignEnd:
		target = start - extent + size
	default:
		target = start
	}

	// Never past the top, never past the point where the last item's bottom
	// meets the viewport bottom. Shorter-than-viewport content pins to 0.
	return clampf(target, 0, maxf(0, idx.Total()-extent))
}
