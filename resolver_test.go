package virtkit_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtkit/virtkit"
)

func TestResolveRangeUniformRows(t *testing.T) {
	// 1000 rows of 50px, a 400px viewport scrolled to 1000, overscan 3.
	idx := virtkit.BuildOffsetIndex(1000, virtkit.FixedHeight(50))

	r := virtkit.ResolveRange(idx, 1000, 400, 3)

	// Item 20 starts exactly at the scroll position (offset 1000) and is the
	// first visible item; item 27's bottom edge meets the viewport bottom at
	// 1400 and is the last. Overscan widens both ends by 3.
	assert.Equal(t, 17, r.Start)
	assert.Equal(t, 30, r.End)
}

func TestResolveRangeBoundaryTieBreak(t *testing.T) {
	idx := virtkit.BuildOffsetIndex(100, virtkit.FixedHeight(50))

	// No overscan: range starts at the item whose offset equals scrollTop,
	// not at the item ending there.
	r := virtkit.ResolveRange(idx, 500, 100, 0)
	assert.Equal(t, 10, r.Start)
	assert.Equal(t, 11, r.End)
}

func TestResolveRangeEmptyIndex(t *testing.T) {
	idx := virtkit.BuildOffsetIndex(0, virtkit.FixedHeight(50))

	r := virtkit.ResolveRange(idx, 0, 400, 3)
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, virtkit.MaterializeRange(idx, r))
}

func TestResolveRangeUnmeasuredViewport(t *testing.T) {
	idx := virtkit.BuildOffsetIndex(100, virtkit.FixedHeight(50))

	// Container not measured yet: a minimal range around the first visible
	// item, no crash.
	r := virtkit.ResolveRange(idx, 0, 0, 3)
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, 3, r.End)

	r = virtkit.ResolveRange(idx, 500, -1, 2)
	assert.Equal(t, 8, r.Start)
	assert.Equal(t, 12, r.End)
}

func TestResolveRangeScrolledPastContent(t *testing.T) {
	idx := virtkit.BuildOffsetIndex(10, virtkit.FixedHeight(50))

	r := virtkit.ResolveRange(idx, 10_000, 400, 3)
	assert.LessOrEqual(t, r.Start, 9)
	assert.Equal(t, 9, r.End)
}

func TestResolveRangeNegativeScrollClamps(t *testing.T) {
	idx := virtkit.BuildOffsetIndex(100, virtkit.FixedHeight(50))

	assert.Equal(t, virtkit.ResolveRange(idx, 0, 400, 0), virtkit.ResolveRange(idx, -250, 400, 0))
}

func TestResolveRangeContainment(t *testing.T) {
	// Without overscan every resolved item intersects the viewport, and the
	// items just outside the range don't.
	heights := func(i int) float32 {
		return float32(10 + (i*7)%40)
	}
	idx := virtkit.BuildOffsetIndex(300, virtkit.VariableHeight(heights))
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		scrollTop := rng.Float32() * idx.Total()
		extent := 50 + rng.Float32()*300

		r := virtkit.ResolveRange(idx, scrollTop, extent, 0)
		require.Greater(t, r.Len(), 0)

		bottom := scrollTop + extent
		for i := r.Start; i <= r.End; i++ {
			assert.Less(t, idx.Start(i), bottom, "item %d starts past the viewport (scrollTop=%v extent=%v)", i, scrollTop, extent)
			assert.Greater(t, idx.End(i), scrollTop, "item %d ends above the viewport (scrollTop=%v extent=%v)", i, scrollTop, extent)
		}
		if r.End+1 < idx.Len() {
			assert.GreaterOrEqual(t, idx.Start(r.End+1), bottom, "item %d past the range is visible", r.End+1)
		}
	}
}

func TestResolveRangeOverscanWidening(t *testing.T) {
	idx := virtkit.BuildOffsetIndex(200, virtkit.VariableHeight(func(i int) float32 {
		return float32(20 + i%30)
	}))
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 100; trial++ {
		scrollTop := rng.Float32() * idx.Total()
		extent := 50 + rng.Float32()*200
		k := rng.Intn(8)

		base := virtkit.ResolveRange(idx, scrollTop, extent, 0)
		wide := virtkit.ResolveRange(idx, scrollTop, extent, k)

		// Superset, widened by at most k per side, clamped to bounds.
		assert.LessOrEqual(t, wide.Start, base.Start)
		assert.GreaterOrEqual(t, wide.End, base.End)
		assert.LessOrEqual(t, base.Start-wide.Start, k)
		assert.LessOrEqual(t, wide.End-base.End, k)
		assert.GreaterOrEqual(t, wide.Start, 0)
		assert.Less(t, wide.End, idx.Len())
	}
}

func TestResolveRangeIdempotent(t *testing.T) {
	idx := virtkit.BuildOffsetIndex(500, virtkit.VariableHeight(func(i int) float32 {
		return float32(15 + i%25)
	}))

	first := virtkit.ResolveRange(idx, 3333, 250, 5)
	second := virtkit.ResolveRange(idx, 3333, 250, 5)
	assert.Equal(t, first, second)
}

func TestMaterializeRange(t *testing.T) {
	idx := virtkit.BuildOffsetIndex(100, virtkit.FixedHeight(50))

	items := virtkit.MaterializeRange(idx, virtkit.Range{Start: 10, End: 12})
	require.Len(t, items, 3)
	assert.Equal(t, virtkit.VirtualItem{Index: 10, Start: 500, Size: 50, End: 550}, items[0])
	assert.Equal(t, virtkit.VirtualItem{Index: 11, Start: 550, Size: 50, End: 600}, items[1])
	assert.Equal(t, virtkit.VirtualItem{Index: 12, Start: 600, Size: 50, End: 650}, items[2])

	assert.Nil(t, virtkit.MaterializeRange(idx, virtkit.EmptyRange()))
}

func BenchmarkResolveRangeUniform(b *testing.B) {
	idx := virtkit.BuildOffsetIndex(1_000_000, virtkit.FixedHeight(24))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scrollTop := float32(i%100_000) * 17
		virtkit.ResolveRange(idx, scrollTop, 800, 5)
	}
}

func BenchmarkResolveAndMaterialize(b *testing.B) {
	idx := virtkit.BuildOffsetIndex(1_000_000, virtkit.VariableHeight(func(i int) float32 {
		return float32(16 + i%48)
	}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scrollTop := float32(i%100_000) * 23
		r := virtkit.ResolveRange(idx, scrollTop, 800, 5)
		virtkit.MaterializeRange(idx, r)
	}
}

func BenchmarkBuildOffsetIndex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		virtkit.BuildOffsetIndex(100_000, virtkit.FixedHeight(24))
	}
}
