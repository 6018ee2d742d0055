package virtkit

// OffsetIndex holds precomputed prefix sums of item heights: each item's
// start offset along the scroll axis plus the total content extent.
//
// The index is rebuilt from scratch (never patched in place) whenever the
// item count or height policy changes, so callers must not assume slice
// identity across rebuilds. Building is pure: no side effects, safe to
// rerun on every relevant change without coordination.
type OffsetIndex struct {
	offsets []float32
	total   float32
}

// BuildOffsetIndex computes start offsets and total extent for count items
// under the given height policy. O(count) time and space.
//
// Invariants: offsets[0] == 0, offsets[i] == offsets[i-1] + height(i-1),
// total == offsets[count-1] + height(count-1). A zero count yields an
// empty index with total 0. Zero heights are legal; offsets stay
// non-decreasing.
func BuildOffsetIndex(count int, policy HeightPolicy) *OffsetIndex {
	if count <= 0 {
		return &OffsetIndex{}
	}

	offsets := make([]float32, count)
	var running float32

	// Match on the policy tag once, not per item.
	if policy.IsVariable() {
		for i := 0; i < count; i++ {
			offsets[i] = running
			running += policy.HeightOf(i)
		}
	} else {
		h := policy.HeightOf(0)
		for i := 0; i < count; i++ {
			offsets[i] = running
			running += h
		}
	}

	return &OffsetIndex{offsets: offsets, total: running}
}

// Len returns the number of indexed items.
func (x *OffsetIndex) Len() int {
	return len(x.offsets)
}

// Total returns the total content extent (sum of all item heights).
func (x *OffsetIndex) Total() float32 {
	return x.total
}

// Start returns the start offset of item i.
func (x *OffsetIndex) Start(i int) float32 {
	return x.offsets[i]
}

// Size returns the height of item i, derived from adjacent offsets so the
// height function is never re-invoked after the build.
func (x *OffsetIndex) Size(i int) float32 {
	if i == len(x.offsets)-1 {
		return x.total - x.offsets[i]
	}
	return x.offsets[i+1] - x.offsets[i]
}

// End returns the end offset (bottom edge) of item i.
func (x *OffsetIndex) End(i int) float32 {
	if i == len(x.offsets)-1 {
		return x.total
	}
	return x.offsets[i+1]
}

// Item returns the positioned item at index i.
func (x *OffsetIndex) Item(i int) VirtualItem {
	start := x.offsets[i]
	end := x.End(i)
	return VirtualItem{Index: i, Start: start, Size: end - start, End: end}
}
