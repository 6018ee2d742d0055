package virtkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtkit/virtkit"
)

func newTestGrid(itemCount int, opts ...virtkit.Option) (*virtkit.Grid, *virtkit.ProgramSurface) {
	surface := virtkit.NewProgramSurface(300)
	g := virtkit.NewGrid(itemCount, virtkit.FixedHeight(100), opts...)
	g.Attach(surface)
	surface.SetContentExtent(g.TotalHeight())
	return g, surface
}

func TestGridRowMath(t *testing.T) {
	g, _ := newTestGrid(10, virtkit.Columns(3), virtkit.CellWidth(120))
	defer g.Close()

	// 10 items over 3 columns is 4 rows, the last one partial.
	assert.Equal(t, float32(400), g.TotalHeight())
	assert.Equal(t, 3, g.Columns())
}

func TestGridCellsPositioned(t *testing.T) {
	g, _ := newTestGrid(10, virtkit.Columns(3), virtkit.CellWidth(120), virtkit.Overscan(0))
	defer g.Close()

	cells := g.Cells()
	require.NotEmpty(t, cells)

	// 300px viewport at offset 0 shows rows 0-2 fully: nine cells.
	assert.Len(t, cells, 9)

	assert.Equal(t, virtkit.Cell{Index: 0, Row: 0, Col: 0, X: 0, Y: 0, W: 120, H: 100}, cells[0])
	assert.Equal(t, virtkit.Cell{Index: 4, Row: 1, Col: 1, X: 120, Y: 100, W: 120, H: 100}, cells[4])

	for i := 1; i < len(cells); i++ {
		assert.Equal(t, cells[i-1].Index+1, cells[i].Index, "cells must be in ascending item order")
	}
}

func TestGridPartialLastRow(t *testing.T) {
	g, surface := newTestGrid(10, virtkit.Columns(3), virtkit.CellWidth(120), virtkit.Overscan(0))
	defer g.Close()

	surface.SetScrollOffset(100)

	cells := g.Cells()
	require.NotEmpty(t, cells)

	// Rows 1-3 are visible; row 3 has a single item (index 9).
	last := cells[len(cells)-1]
	assert.Equal(t, 9, last.Index)
	assert.Equal(t, 3, last.Row)
	assert.Equal(t, 0, last.Col)
	assert.Len(t, cells, 7)
}

func TestGridEmpty(t *testing.T) {
	g, _ := newTestGrid(0, virtkit.Columns(4))
	defer g.Close()

	assert.Nil(t, g.Cells())
	assert.Equal(t, float32(0), g.TotalHeight())
	g.ScrollToItem(0, virtkit.AlignStart) // no-op, no panic
}

func TestGridScrollToItem(t *testing.T) {
	g, surface := newTestGrid(100, virtkit.Columns(4), virtkit.Overscan(0))
	defer g.Close()

	// Item 42 lives in row 10, which starts at offset 1000.
	g.ScrollToItem(42, virtkit.AlignStart)
	assert.Equal(t, float32(1000), surface.ScrollOffset())

	g.ScrollToItem(-1, virtkit.AlignStart)
	g.ScrollToItem(100, virtkit.AlignStart)
	assert.Equal(t, float32(1000), surface.ScrollOffset())
}

func TestGridSetItemCount(t *testing.T) {
	g, surface := newTestGrid(10, virtkit.Columns(3))
	defer g.Close()

	g.SetItemCount(31)
	surface.SetContentExtent(g.TotalHeight())

	// 31 items over 3 columns is 11 rows.
	assert.Equal(t, float32(1100), g.TotalHeight())
}

func TestGridSingleColumnDefaults(t *testing.T) {
	g, _ := newTestGrid(5)
	defer g.Close()

	cells := g.Cells()
	require.NotEmpty(t, cells)
	for _, c := range cells {
		assert.Equal(t, 0, c.Col)
		assert.Equal(t, c.Index, c.Row)
		assert.Equal(t, float32(0), c.X)
	}
}
