// Package virtkit provides windowed ("virtual") scrolling for large lists:
// only the items intersecting the current viewport, plus a small overscan
// margin, are materialized, bounding per-frame rendering cost independent
// of total item count.
package virtkit

// VirtualItem is one positioned, renderable unit inside the visible window.
// Items are ephemeral: they are recreated whenever the visible range changes,
// so callers must not hold on to them across passes.
type VirtualItem struct {
	Index int     // Logical item index
	Start float32 // Start offset along the scroll axis
	Size  float32 // Extent along the scroll axis
	End   float32 // Start + Size
}

// Range is an inclusive index range [Start, End].
// The empty range is encoded as End < Start.
type Range struct {
	Start, End int
}

// EmptyRange returns the canonical empty range.
func EmptyRange() Range {
	return Range{Start: 0, End: -1}
}

// Len returns the number of indices in the range, 0 for an empty range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains returns true if the index falls inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i <= r.End
}

// Align selects where ScrollToIndex places the target item in the viewport.
type Align int

const (
	AlignStart  Align = iota // Item's top edge at the viewport top
	AlignCenter              // Item centered in the viewport
	AlignEnd                 // Item's bottom edge at the viewport bottom
)

// String returns the align name for debug logging.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// maxi returns the maximum of two ints.
func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// mini returns the minimum of two ints.
func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}
