package world

// Side-view tree parameters.
const (
	treeColumnStep = 4
	treeChance     = 0.3
	treeMinHeight  = 3
	treeMaxHeight  = 5
	treeMinRow     = 5 // Trees need headroom above the surface
)

// Top-down decoration counts, placed in this order.
const (
	groveCount    = 10
	groveMinSize  = 3
	groveMaxSize  = 6
	scatterTrees  = 200
	scatterBushes = 150
	scatterFlower = 100
)

// sideViewTrees plants wood trunks on grass in forest bands. Trunks only grow
// into air.
func (g *generator) sideViewTrees() {
	w := g.w
	grid := w.levels[LevelSurface]

	for x := 0; x < w.Width; x += treeColumnStep {
		if w.Biomes[x] != BiomeForest || g.rng.Float64() >= treeChance {
			continue
		}

		surfaceY := -1
		for y := 0; y < w.Height; y++ {
			if grid.Get(x, y) == TileGrass {
				surfaceY = y
				break
			}
		}
		if surfaceY <= treeMinRow {
			continue
		}

		height := intRange(g.rng, treeMinHeight, treeMaxHeight)
		for i := 1; i <= height; i++ {
			if grid.Get(x, surfaceY-i) == TileAir {
				grid.Set(x, surfaceY-i, TileWood)
			}
		}
	}
}

// topDownDecorate layers groves, lone trees, bushes and flowers onto the
// surface. Every pass writes over plain grass only.
func (g *generator) topDownDecorate() {
	grid := g.w.levels[LevelSurface]

	for range groveCount {
		cx := g.rng.Intn(grid.Width)
		cy := g.rng.Intn(grid.Height)
		size := intRange(g.rng, groveMinSize, groveMaxSize)
		half := size / 2
		for range size * size / 2 {
			x := cx + intRange(g.rng, -half, half)
			y := cy + intRange(g.rng, -half, half)
			placeOnGrass(grid, x, y, TileTree)
		}
	}

	g.scatter(grid, scatterTrees, TileTree)
	g.scatter(grid, scatterBushes, TileBush)
	g.scatter(grid, scatterFlower, TileFlower)
}

// scatter tries n random cells, converting the grassy ones to t.
func (g *generator) scatter(grid *Grid, n int, t Tile) {
	for range n {
		x := g.rng.Intn(grid.Width)
		y := g.rng.Intn(grid.Height)
		placeOnGrass(grid, x, y, t)
	}
}
