package world

// Grid stores one level's tiles in row-major order.
type Grid struct {
	Width  int
	Height int
	cells  []Tile
}

// NewGrid creates a grid filled with the given tile.
func NewGrid(width, height int, fill Tile) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Tile, width*height),
	}
	g.Fill(fill)
	return g
}

// InBounds returns true if (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the tile at (x, y), or TileBoundary outside the grid.
func (g *Grid) Get(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileBoundary
	}
	return g.cells[y*g.Width+x]
}

// Set writes a tile at (x, y). Writes outside the grid are ignored and
// report false.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.Width+x] = t
	return true
}

// Fill sets every cell to t.
func (g *Grid) Fill(t Tile) {
	for i := range g.cells {
		g.cells[i] = t
	}
}

// Count returns the number of cells holding t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Equal reports whether both grids have the same dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Center returns the geometric center cell.
func (g *Grid) Center() (int, int) {
	return g.Width / 2, g.Height / 2
}

// Find returns the first cell holding t in left-to-right, top-to-bottom order.
func (g *Grid) Find(t Tile) (int, int, bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y*g.Width+x] == t {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
