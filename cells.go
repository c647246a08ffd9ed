package scroller

import "math"

// Cell is one visible grid cell. Left and Top are viewport offsets; Width and
// Height are already zoomed.
type Cell struct {
	Row, Col      int
	Left, Top     float64
	Width, Height float64
	Zoom          float64
}

// CellGrid distributes a uniform cell grid over the content and reports
// which cells are visible for a scroll position. Call Setup again whenever
// the viewport, content or cell size changes.
type CellGrid struct {
	clientWidth, clientHeight   float64
	contentWidth, contentHeight float64
	cellWidth, cellHeight       float64
}

// Setup configures the grid. Sizes are unzoomed except the client size.
func (g *CellGrid) Setup(clientWidth, clientHeight, contentWidth, contentHeight, cellWidth, cellHeight float64) {
	g.clientWidth = clientWidth
	g.clientHeight = clientHeight
	g.contentWidth = contentWidth
	g.contentHeight = contentHeight
	g.cellWidth = cellWidth
	g.cellHeight = cellHeight
}

// Render calls paint for every cell visible at the given scroll position,
// row by row. left and top are zoomed, as reported by a RenderFunc.
// Negative (over-scrolled) positions shift the whole grid instead of
// revealing rows before the first.
func (g *CellGrid) Render(left, top, zoom float64, paint func(Cell)) {
	if g.cellWidth <= 0 || g.cellHeight <= 0 || zoom <= 0 {
		return
	}
	cellW := g.cellWidth * zoom
	cellH := g.cellHeight * zoom

	startRow := max(int(math.Floor(top/cellH)), 0)
	startCol := max(int(math.Floor(left/cellW)), 0)

	startTop, rows := span(top, cellH, g.clientHeight)
	startLeft, cols := span(left, cellW, g.clientWidth)

	rows = min(rows, int(math.Ceil(g.contentHeight/g.cellHeight))-startRow)
	cols = min(cols, int(math.Ceil(g.contentWidth/g.cellWidth))-startCol)

	y := startTop
	for row := startRow; row < startRow+rows; row++ {
		x := startLeft
		for col := startCol; col < startCol+cols; col++ {
			paint(Cell{
				Row: row, Col: col,
				Left: x, Top: y,
				Width: cellW, Height: cellH,
				Zoom: zoom,
			})
			x += cellW
		}
		y += cellH
	}
}

// Visible returns the cells Render would paint.
func (g *CellGrid) Visible(left, top, zoom float64) []Cell {
	var cells []Cell
	g.Render(left, top, zoom, func(c Cell) {
		cells = append(cells, c)
	})
	return cells
}

// span returns the offset of the first cell along one axis and how many
// cells cover the client extent from there.
func span(pos, cell, client float64) (start float64, n int) {
	if pos >= 0 {
		start = -math.Mod(pos, cell)
	} else {
		start = -pos
	}

	n = int(math.Floor(client / cell))
	if math.Mod(pos, cell) > 0 {
		n++
	}
	if start+float64(n)*cell < client {
		n++
	}
	return start, n
}
