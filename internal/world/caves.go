package world

// carveCaves runs every cave pass configured for the profile.
func (g *generator) carveCaves() {
	for _, cs := range g.spec.caves {
		grid := g.w.levels[cs.level]
		if grid == nil {
			continue
		}
		g.seedCaves(grid, cs)
		for range cs.iterations {
			SmoothCaves(grid, cs.fromRow, cs.solid, cs.open)
		}
		if cs.border {
			drawBorder(grid, cs.solid)
		}
	}
}

// seedCaves randomly fills rows from cs.fromRow down.
func (g *generator) seedCaves(grid *Grid, cs caveSpec) {
	for x := 0; x < grid.Width; x++ {
		for y := cs.fromRow; y < grid.Height; y++ {
			if g.rng.Float64() < cs.fillChance {
				grid.Set(x, y, cs.fill)
			} else if cs.other != TileBoundary {
				grid.Set(x, y, cs.other)
			}
		}
	}
}

// SmoothCaves applies one cellular-automata step to the interior cells at or
// below fromRow and returns how many cells changed. Any tile other than open
// counts as solid. A cell with more than 4 solid neighbors becomes solid,
// fewer than 4 becomes open, exactly 4 is left alone. All cells are updated
// from the same snapshot.
func SmoothCaves(grid *Grid, fromRow int, solid, open Tile) int {
	prev := grid.Clone()
	changed := 0

	for x := 1; x < grid.Width-1; x++ {
		for y := max(fromRow, 1); y < grid.Height-1; y++ {
			count := solidNeighbors(prev, x, y, open)

			var next Tile
			switch {
			case count > 4:
				next = solid
			case count < 4:
				next = open
			default:
				continue
			}
			if prev.Get(x, y) != next {
				grid.Set(x, y, next)
				changed++
			}
		}
	}
	return changed
}

// solidNeighbors counts the 8-neighborhood cells that are not open.
func solidNeighbors(grid *Grid, x, y int, open Tile) int {
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !grid.InBounds(nx, ny) {
				continue
			}
			if grid.Get(nx, ny) != open {
				count++
			}
		}
	}
	return count
}

// drawBorder forces a one-tile ring of t around the grid.
func drawBorder(grid *Grid, t Tile) {
	for x := 0; x < grid.Width; x++ {
		grid.Set(x, 0, t)
		grid.Set(x, grid.Height-1, t)
	}
	for y := 0; y < grid.Height; y++ {
		grid.Set(0, y, t)
		grid.Set(grid.Width-1, y, t)
	}
}
