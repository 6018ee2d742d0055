package virtkit

// Cell is one positioned grid cell inside the visible window.
type Cell struct {
	Index int // Logical item index
	Row   int
	Col   int
	X, Y  float32 // Top-left position (X is 0 when no cell width is set)
	W, H  float32
}

// Grid windows a two-dimensional layout over the one-dimensional core: items
// flow row-major across a fixed column count, rows are virtualized exactly
// like list items, and visible rows expand into positioned cells.
//
// The row height policy receives row indices, not item indices. Cell X/W
// come from the CellWidth option; when unset the caller positions cells by
// Col itself.
type Grid struct {
	v         *Virtualizer
	itemCount int
	cols      int
	cellWidth float32
}

// NewGrid creates a Grid for itemCount items laid out across the column
// count from the Columns option (default 1).
func NewGrid(itemCount int, rowPolicy HeightPolicy, opts ...Option) *Grid {
	o := applyOptions(opts)
	cols := maxi(1, GetOpt(o, OptColumns))
	itemCount = maxi(0, itemCount)

	return &Grid{
		v:         New(rowsFor(itemCount, cols), rowPolicy, opts...),
		itemCount: itemCount,
		cols:      cols,
		cellWidth: GetOpt(o, OptCellWidth),
	}
}

func rowsFor(itemCount, cols int) int {
	return (itemCount + cols - 1) / cols
}

// Attach subscribes the underlying virtualizer to the surface.
func (g *Grid) Attach(s Surface) {
	g.v.Attach(s)
}

// Close tears down the underlying virtualizer.
func (g *Grid) Close() {
	g.v.Close()
}

// SetItemCount updates the item count and rebuilds the row index.
func (g *Grid) SetItemCount(itemCount int) {
	g.itemCount = maxi(0, itemCount)
	g.v.SetItemCount(rowsFor(g.itemCount, g.cols))
}

// Columns returns the column count.
func (g *Grid) Columns() int {
	return g.cols
}

// TotalHeight returns the total content extent across all rows.
func (g *Grid) TotalHeight() float32 {
	return g.v.TotalHeight()
}

// IsScrolling reports the underlying is-scrolling hint.
func (g *Grid) IsScrolling() bool {
	return g.v.IsScrolling()
}

// Cells materializes the visible rows into positioned cells in ascending
// item order. The last row may be partial.
func (g *Grid) Cells() []Cell {
	rows := g.v.Items()
	if len(rows) == 0 {
		return nil
	}

	cells := make([]Cell, 0, len(rows)*g.cols)
	for _, row := range rows {
		for col := 0; col < g.cols; col++ {
			index := row.Index*g.cols + col
			if index >= g.itemCount {
				break
			}
			cells = append(cells, Cell{
				Index: index,
				Row:   row.Index,
				Col:   col,
				X:     float32(col) * g.cellWidth,
				Y:     row.Start,
				W:     g.cellWidth,
				H:     row.Size,
			})
		}
	}
	return cells
}

// ScrollToItem scrolls the row containing the item into view.
// An out-of-range index is a no-op.
func (g *Grid) ScrollToItem(index int, align Align) {
	if index < 0 || index >= g.itemCount {
		return
	}
	g.v.ScrollToIndex(index/g.cols, align)
}
