package world

import (
	"math/rand"
	"slices"
)

// placeVeins grows every configured ore vein.
func (g *generator) placeVeins() {
	for _, vs := range g.spec.veins {
		grid := g.w.levels[vs.level]
		if grid == nil {
			continue
		}
		for range vs.attempts {
			x := g.rng.Intn(grid.Width)
			y := intRange(g.rng, vs.minRow, vs.maxRow)
			size := intRange(g.rng, vs.minSize, vs.maxSize)
			GrowVein(grid, g.rng, x, y, size, vs.ore, g.spec.veinSources)
		}
	}
}

// GrowVein random-walks size steps from (x, y), converting each visited cell
// that holds one of sources into ore. The walk may leave the grid; those
// steps write nothing. It returns the number of cells converted, which is
// never more than size.
func GrowVein(grid *Grid, rng *rand.Rand, x, y, size int, ore Tile, sources []Tile) int {
	placed := 0
	for range size {
		if slices.Contains(sources, grid.Get(x, y)) {
			grid.Set(x, y, ore)
			placed++
		}
		x += rng.Intn(3) - 1
		y += rng.Intn(3) - 1
	}
	return placed
}
