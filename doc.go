/*
Package virtkit implements windowed (virtual) scrolling for large lists and
grids, designed as idiomatic Go behind a five-method Surface boundary.

# Overview

Rendering a list of a million rows is cheap if only the thirty rows inside
the viewport ever exist. virtkit does the arithmetic for that: it keeps a
prefix-sum index of item offsets, binary-searches it for the first visible
item on every scroll event, extends linearly to the last visible item, pads
both ends with an overscan margin, and hands the caller a small slice of
positioned items to draw.

The core is a pure recompute-on-input-change pipeline. The only time-based
state is the debounced is-scrolling flag, a rendering hint that stays true
through a burst of scroll events and clears 150ms after genuine idle.

# Quick Start

	v := virtkit.New(len(rows), virtkit.FixedHeight(24),
	    virtkit.Overscan(4))
	v.Attach(surface)
	defer v.Close()

	// Each render pass:
	//  - size the content container to v.TotalHeight()
	//  - draw each item absolutely at item.Start with height item.Size
	for _, item := range v.Items() {
	    drawRow(item.Index, item.Start, item.Size)
	}

	// Jump anywhere:
	v.ScrollToIndex(5000, virtkit.AlignCenter)

Variable row heights use a height function instead of a constant:

	v := virtkit.New(n, virtkit.VariableHeight(func(i int) float32 {
	    if expanded[i] {
	        return 96
	    }
	    return 24
	}))

Changing the collection or the policy rebuilds the offset index in full;
there is no incremental patching and no caller coordination needed.

# Surfaces

The core never touches a window system. Hosts implement Surface (subscribe
to scroll, subscribe to resize, get/set the scroll offset, report the
viewport extent) and everything else stays pure and testable.

Two surfaces ship with the module: backend/opengl wraps a GLFW window, and
ProgramSurface is an in-memory surface driven programmatically (used by the
tui adapter and by tests). Supplying a fixed viewport extent via the
ViewportExtent option disables resize observation entirely.

# Caller obligations

The caller renders a container sized to TotalHeight, positions each
returned item absolutely at its Start offset with height Size, attaches the
virtualizer to the real scroll surface, and supplies its own stable
per-item keys for render caching. virtkit owns none of that.

# Immediate-mode hosts

Hosts that re-declare their UI every frame keep instances in a Registry:
fetched entries are marked used, and Registry.NextFrame closes whatever the
previous frame stopped declaring, guaranteeing scroll listeners and idle
timers never leak.
*/
package virtkit
