// Package opengl provides a GLFW/OpenGL host backend for virtkit: a
// Surface over a GLFW window plus a minimal quad renderer for drawing the
// materialized items.
package opengl

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/virtkit/virtkit"
)

// defaultScrollStep is how many pixels one mouse-wheel tick scrolls.
const defaultScrollStep = 30

// WindowSurface adapts a glfw.Window into a virtkit.Surface.
//
// It installs the window's scroll and framebuffer-size callbacks, so it
// must be the sole owner of those two callbacks on the window. Wheel ticks
// accumulate into a scroll offset clamped to the content extent the host
// feeds back via SetContentExtent.
type WindowSurface struct {
	window *glfw.Window

	mu            sync.Mutex
	offset        float32
	extent        float32
	contentExtent float32
	scrollStep    float32
	nextSub       int
	scrollSubs    map[int]func(float32)
	resizeSubs    map[int]func(float32)
}

// SurfaceOption configures a WindowSurface.
type SurfaceOption func(*WindowSurface)

// WithScrollStep sets the pixels scrolled per wheel tick (default 30).
func WithScrollStep(px float32) SurfaceOption {
	return func(s *WindowSurface) { s.scrollStep = px }
}

// NewWindowSurface wraps the window. The viewport extent starts at the
// current framebuffer height and follows framebuffer-size events.
func NewWindowSurface(window *glfw.Window, opts ...SurfaceOption) *WindowSurface {
	_, h := window.GetFramebufferSize()

	s := &WindowSurface{
		window:     window,
		extent:     float32(h),
		scrollStep: defaultScrollStep,
		scrollSubs: make(map[int]func(float32)),
		resizeSubs: make(map[int]func(float32)),
	}
	for _, opt := range opts {
		opt(s)
	}

	window.SetScrollCallback(s.scrollCallback)
	window.SetFramebufferSizeCallback(s.framebufferSizeCallback)

	return s
}

// Detach removes the window callbacks installed by NewWindowSurface.
func (s *WindowSurface) Detach() {
	s.window.SetScrollCallback(nil)
	s.window.SetFramebufferSizeCallback(nil)
}

func (s *WindowSurface) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	// Wheel up (positive yoff) scrolls content up, decreasing the offset.
	s.SetScrollOffset(s.ScrollOffset() - float32(yoff)*s.scrollStep)
}

func (s *WindowSurface) framebufferSizeCallback(w *glfw.Window, width, height int) {
	s.mu.Lock()
	s.extent = float32(height)
	s.offset = s.clampOffset(s.offset)
	subs := make([]func(float32), 0, len(s.resizeSubs))
	for _, fn := range s.resizeSubs {
		subs = append(subs, fn)
	}
	extent := s.extent
	s.mu.Unlock()

	for _, fn := range subs {
		fn(extent)
	}
}

// OnScroll implements virtkit.Surface.
func (s *WindowSurface) OnScroll(fn func(float32)) func() {
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

// OnResize implements virtkit.Surface.
func (s *WindowSurface) OnResize(fn func(float32)) func() {
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

// ScrollOffset implements virtkit.Surface.
func (s *WindowSurface) ScrollOffset() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// SetScrollOffset implements virtkit.Surface.
func (s *WindowSurface) SetScrollOffset(offset float32) {
	s.mu.Lock()
	offset = s.clampOffset(offset)
	s.offset = offset
	subs := make([]func(float32), 0, len(s.scrollSubs))
	for _, fn := range s.scrollSubs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(offset)
	}
}

// ViewportExtent implements virtkit.Surface.
func (s *WindowSurface) ViewportExtent() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extent
}

// SetContentExtent supplies the total content extent used for scroll
// clamping. Feed Virtualizer.TotalHeight through this after every rebuild.
func (s *WindowSurface) SetContentExtent(extent float32) {
	s.mu.Lock()
	s.contentExtent = extent
	s.offset = s.clampOffset(s.offset)
	s.mu.Unlock()
}

// clampOffset clamps to valid scroll bounds. Caller holds s.mu.
func (s *WindowSurface) clampOffset(offset float32) float32 {
	if offset < 0 {
		return 0
	}
	max := s.contentExtent - s.extent
	if max < 0 {
		max = 0
	}
	if offset > max {
		return max
	}
	return offset
}

var _ virtkit.Surface = (*WindowSurface)(nil)
