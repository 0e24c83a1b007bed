package world

// Top-down water parameters.
const (
	lakeCount     = 5
	lakeMinRadius = 3
	lakeMaxRadius = 7
	lakeMargin    = 10
)

// sideViewTerrain assigns biome bands and fills each column from its noise
// height: air, one surface tile, subsoil, then stone.
func (g *generator) sideViewTerrain() {
	w := g.w
	grid := w.levels[LevelSurface]

	w.Biomes = make([]Biome, w.Width)
	current := BiomeForest
	for x := 0; x < w.Width; x++ {
		if x%BiomeBandWidth == 0 {
			current = Biome(g.rng.Intn(2))
		}
		w.Biomes[x] = current
	}

	for x := 0; x < w.Width; x++ {
		surfaceY := SurfaceHeight + Variation(x)
		desert := w.Biomes[x] == BiomeDesert

		for y := 0; y < w.Height; y++ {
			var t Tile
			switch {
			case y < surfaceY:
				t = TileAir
			case y == surfaceY && desert:
				t = TileSand
			case y == surfaceY:
				t = TileGrass
			case y <= surfaceY+subsoilDepth && desert:
				t = TileSand
			case y <= surfaceY+subsoilDepth:
				t = TileDirt
			default:
				t = TileStone
			}
			grid.Set(x, y, t)
		}
	}
}

// topDownTerrain lays grass over the whole surface and floods a few lakes.
func (g *generator) topDownTerrain() {
	grid := g.w.levels[LevelSurface]
	grid.Fill(TileGrassFloor)

	for range lakeCount {
		cx := intRange(g.rng, lakeMargin, grid.Width-lakeMargin-1)
		cy := intRange(g.rng, lakeMargin, grid.Height-lakeMargin-1)
		r := intRange(g.rng, lakeMinRadius, lakeMaxRadius)
		g.fillCircle(grid, cx, cy, r, TileWater)
	}
}

// fillCircle writes t over grass inside a filled circle.
func (g *generator) fillCircle(grid *Grid, cx, cy, r int, t Tile) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			placeOnGrass(grid, cx+dx, cy+dy, t)
		}
	}
}

// placeOnGrass writes t only if the cell currently holds plain grass.
func placeOnGrass(grid *Grid, x, y int, t Tile) bool {
	if grid.Get(x, y) != TileGrassFloor {
		return false
	}
	return grid.Set(x, y, t)
}
