package world

// Spawn locator parameters.
const (
	spawnHeadroom      = 3   // Tiles above the ground for side-view spawns
	spawnFallbackRow   = 10  // Side-view row when the center column is empty
	spawnSampleCount   = 100 // Random top-down probes before scanning
	portalSampleCount  = 100
	portalMargin       = 10
	portalRoomHalfSize = 1 // Underground portal rooms are 3x3
)

// Spawn is a starting location. Verified is false when the locator fell back
// to a position it did not check for passability.
type Spawn struct {
	Level    Level   `json:"level"`
	TileX    int     `json:"tileX"`
	TileY    int     `json:"tileY"`
	X        float64 `json:"x"` // World pixels
	Y        float64 `json:"y"`
	Verified bool    `json:"verified"`
}

func newSpawn(level Level, tx, ty int, verified bool) Spawn {
	return Spawn{
		Level:    level,
		TileX:    tx,
		TileY:    ty,
		X:        float64(tx * TileSize),
		Y:        float64(ty * TileSize),
		Verified: verified,
	}
}

// sideViewSpawn drops the player a few tiles above the first non-air tile of
// the center column.
func (g *generator) sideViewSpawn() Spawn {
	grid := g.w.levels[LevelSurface]
	x := grid.Width / 2

	for y := 0; y < grid.Height; y++ {
		if grid.Get(x, y) != TileAir {
			ty := y - spawnHeadroom
			return newSpawn(LevelSurface, x, ty, !grid.Get(x, ty).Solid())
		}
	}
	return newSpawn(LevelSurface, x, spawnFallbackRow, !grid.Get(x, spawnFallbackRow).Solid())
}

// topDownSpawn probes random grass cells between the top-left quarter point
// and the center, then scans the whole surface, then gives up and returns the
// center unverified.
func (g *generator) topDownSpawn() Spawn {
	grid := g.w.levels[LevelSurface]
	cx, cy := grid.Center()

	for range spawnSampleCount {
		x := intRange(g.rng, grid.Width/4, cx)
		y := intRange(g.rng, grid.Height/4, cy)
		if grid.Get(x, y) == TileGrassFloor {
			return newSpawn(LevelSurface, x, y, true)
		}
	}

	if x, y, ok := grid.Find(TileGrassFloor); ok {
		return newSpawn(LevelSurface, x, y, true)
	}
	return newSpawn(LevelSurface, cx, cy, false)
}

// topDownPortals places a linked portal pair at the same coordinates on both
// levels. The underground end is cleared to a small room so it is never
// walled in by the cave pass.
func (g *generator) topDownPortals() {
	surface := g.w.levels[LevelSurface]
	under := g.w.levels[LevelUnderground]

	px, py := surface.Center()
	for range portalSampleCount {
		x := intRange(g.rng, portalMargin, surface.Width-portalMargin-1)
		y := intRange(g.rng, portalMargin, surface.Height-portalMargin-1)
		if surface.Get(x, y) == TileGrassFloor {
			px, py = x, y
			break
		}
	}

	surface.Set(px, py, TilePortalDown)
	for dy := -portalRoomHalfSize; dy <= portalRoomHalfSize; dy++ {
		for dx := -portalRoomHalfSize; dx <= portalRoomHalfSize; dx++ {
			under.Set(px+dx, py+dy, TileCaveFloor)
		}
	}
	under.Set(px, py, TilePortalUp)
}
