package world

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Config selects what kind of world to generate.
type Config struct {
	// Seed for the world's random generator. A seed of 0 means a random seed
	// will be chosen; the chosen value is recorded on the World.
	Seed    int64
	Profile Profile
}

// Stats summarizes a generated world.
type Stats struct {
	IronOre           int `json:"ironOre"`
	DiamondOre        int `json:"diamondOre"`
	Trees             int `json:"trees"`
	Water             int `json:"water"`
	CaveRegions       int `json:"caveRegions"`
	LargestCaveRegion int `json:"largestCaveRegion"`
}

// World owns the grids of one play session.
type World struct {
	ID      uuid.UUID
	Seed    int64
	Profile Profile
	Width   int
	Height  int
	Biomes  []Biome // Per column, side-view only
	Stats   Stats

	levels [levelCount]*Grid
	spawn  Spawn
	rng    *rand.Rand
}

// New generates a world. Generation runs to completion before New returns.
func New(ctx context.Context, cfg Config) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = 1 + rand.New(rand.NewSource(time.Now().UnixNano())).Int63n(999999)
	}

	spec := specFor(cfg.Profile)
	w := &World{
		ID:      uuid.New(),
		Seed:    seed,
		Profile: cfg.Profile,
		Width:   spec.width,
		Height:  spec.height,
		rng:     rand.New(rand.NewSource(seed)),
	}
	for _, level := range spec.levels {
		w.levels[level] = NewGrid(spec.width, spec.height, TileAir)
	}

	g := &generator{w: w, rng: w.rng, spec: spec}
	g.run(ctx)
	return w
}

// Grid returns the grid for a level, or nil if the world has no such level.
func (w *World) Grid(level Level) *Grid {
	if level < 0 || level >= levelCount {
		return nil
	}
	return w.levels[level]
}

// Levels returns the levels present in this world.
func (w *World) Levels() []Level {
	levels := make([]Level, 0, levelCount)
	for l := Level(0); l < levelCount; l++ {
		if w.levels[l] != nil {
			levels = append(levels, l)
		}
	}
	return levels
}

// Tile returns the tile at the given tile coordinates. Coordinates outside the
// level, or a level the world does not have, read as TileBoundary.
func (w *World) Tile(level Level, x, y int) Tile {
	g := w.Grid(level)
	if g == nil {
		return TileBoundary
	}
	return g.Get(x, y)
}

// SetTile writes a tile and reports whether the write was applied. It does not
// check whether the previous tile was minable; callers own that decision.
func (w *World) SetTile(level Level, x, y int, t Tile) bool {
	g := w.Grid(level)
	if g == nil {
		return false
	}
	return g.Set(x, y, t)
}

// TileAtPixel returns the tile under a world pixel position.
func (w *World) TileAtPixel(level Level, px, py float64) Tile {
	return w.Tile(level, int(math.Floor(px/TileSize)), int(math.Floor(py/TileSize)))
}

// ClearedTile is the passable tile left behind when a tile on level is mined.
func (w *World) ClearedTile(level Level) Tile {
	if w.Profile == ProfileSideView {
		return TileAir
	}
	if level == LevelUnderground {
		return TileCaveFloor
	}
	return TileGrassFloor
}

// PortalPosition returns the tile coordinates of the first portal of the given
// type on level, or the level's center if there is none.
func (w *World) PortalPosition(level Level, portal Tile) (int, int) {
	g := w.Grid(level)
	if g == nil {
		return w.Width / 2, w.Height / 2
	}
	if x, y, ok := g.Find(portal); ok {
		return x, y
	}
	return g.Center()
}

// LinkedPortal returns the level and portal tile reached through portal.
func LinkedPortal(portal Tile) (Level, Tile, bool) {
	switch portal {
	case TilePortalDown:
		return LevelUnderground, TilePortalUp, true
	case TilePortalUp:
		return LevelSurface, TilePortalDown, true
	default:
		return LevelSurface, TileBoundary, false
	}
}

// Spawn returns the spawn point computed during generation.
func (w *World) Spawn() Spawn {
	return w.spawn
}

// BiomeAt returns the biome of a side-view column.
func (w *World) BiomeAt(x int) Biome {
	if x < 0 || x >= len(w.Biomes) {
		return BiomeForest
	}
	return w.Biomes[x]
}
