package virtkit

import "sort"

// ResolveRange returns the inclusive index range of items that intersect
// the viewport [scrollTop, scrollTop+viewportExtent), widened by overscan
// items on each side and clamped to [0, N-1].
//
// The start bound is located with a lower-bound binary search over item
// bottom edges (O(log N), so an arbitrary jump after a fling or a
// programmatic scroll stays cheap); the end bound is then extended by a
// linear scan, which amortizes well because the visible window is small
// relative to N.
//
// A viewportExtent <= 0 means the container has not been measured yet; the
// resolver returns a minimal range around the first visible item instead
// of crashing. An empty index resolves to the empty range.
func ResolveRange(idx *OffsetIndex, scrollTop, viewportExtent float32, overscan int) Range {
	n := idx.Len()
	if n == 0 {
		return EmptyRange()
	}
	if scrollTop < 0 {
		scrollTop = 0
	}
	if overscan < 0 {
		overscan = 0
	}

	// First item whose bottom edge lies strictly past scrollTop. The strict
	// comparison is the tie-break: when an item boundary coincides exactly
	// with scrollTop, the item starting at scrollTop is the range start, not
	// the one ending there.
	first := sort.Search(n, func(i int) bool {
		return idx.End(i) > scrollTop
	})
	if first == n {
		// Scrolled past all content; the last item is the nearest anchor.
		first = n - 1
	}

	start := maxi(0, first-overscan)

	if viewportExtent <= 0 {
		return Range{Start: start, End: mini(n-1, first+overscan)}
	}

	bottom := scrollTop + viewportExtent
	end := first
	for end < n-1 && idx.End(end) < bottom {
		end++
	}
	end = mini(n-1, end+overscan)

	return Range{Start: start, End: end}
}

// MaterializeRange maps a resolved range into positioned items in ascending
// index order. Pure function of its inputs; the result is rebuilt in full
// on every range change, which is fine because the range is bounded by the
// viewport plus overscan, not by N.
func MaterializeRange(idx *OffsetIndex, r Range) []VirtualItem {
	if idx.Len() == 0 || r.Len() == 0 {
		return nil
	}

	items := make([]VirtualItem, 0, r.Len())
	for i := r.Start; i <= r.End; i++ {
		items = append(items, idx.Item(i))
	}
	return items
}
