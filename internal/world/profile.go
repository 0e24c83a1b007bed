package world

import "fmt"

// TileSize is the edge length of one tile in world pixel units.
const TileSize = 16

// Side-view world constants.
const (
	SideViewWidth  = 200
	SideViewHeight = 100
	SurfaceHeight  = 30 // Base surface row before noise variation
	CaveStartDepth = 40 // First row eligible for cave carving
	BiomeBandWidth = 30 // Columns per biome band
	subsoilDepth   = 5  // Rows of dirt/sand under the surface tile
)

// TopDownSize is the width and height of each top-down level.
const TopDownSize = 150

// Profile selects the shape of a generated world.
type Profile int

const (
	// ProfileSideView is a single height-based level seen from the side.
	ProfileSideView Profile = iota
	// ProfileTopDown is a decorated surface plus an underground cave level.
	ProfileTopDown
)

// String returns the profile's config name.
func (p Profile) String() string {
	switch p {
	case ProfileSideView:
		return "sideview"
	case ProfileTopDown:
		return "topdown"
	default:
		return "unknown"
	}
}

// ParseProfile converts a config name into a Profile.
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "sideview", "side-view", "side":
		return ProfileSideView, nil
	case "topdown", "top-down", "top":
		return ProfileTopDown, nil
	default:
		return ProfileSideView, fmt.Errorf("unknown world profile %q", s)
	}
}

// Level names one grid of a world.
type Level int

const (
	LevelSurface Level = iota
	LevelUnderground

	levelCount
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelSurface:
		return "surface"
	case LevelUnderground:
		return "underground"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name into a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "surface":
		return LevelSurface, nil
	case "underground":
		return LevelUnderground, nil
	default:
		return LevelSurface, fmt.Errorf("unknown level %q", s)
	}
}

// Biome tags a band of side-view columns.
type Biome int

const (
	BiomeForest Biome = iota
	BiomeDesert
)

// String returns the biome name.
func (b Biome) String() string {
	switch b {
	case BiomeForest:
		return "forest"
	case BiomeDesert:
		return "desert"
	default:
		return "unknown"
	}
}

// caveSpec configures one cellular-automata pass over a level.
type caveSpec struct {
	level      Level
	fromRow    int  // First row seeded and smoothed
	fill       Tile // Tile seeded with probability fillChance
	fillChance float64
	other      Tile // Tile written otherwise; TileBoundary keeps the existing tile
	solid      Tile // Written when a cell has more than 4 solid neighbors
	open       Tile // Written when a cell has fewer than 4 solid neighbors
	iterations int
	border     bool // Force a one-tile ring of solid tiles afterwards
}

// veinSpec configures random-walk ore deposits.
type veinSpec struct {
	level    Level
	ore      Tile
	attempts int
	minSize  int
	maxSize  int
	minRow   int
	maxRow   int // Inclusive
}

// profileSpec parameterizes the generation pipeline.
type profileSpec struct {
	width, height int
	levels        []Level
	terrain       func(g *generator)
	caves         []caveSpec
	veins         []veinSpec
	veinSources   []Tile
	decorate      func(g *generator)
	portals       func(g *generator)
	spawn         func(g *generator) Spawn
}

func specFor(p Profile) profileSpec {
	if p == ProfileTopDown {
		return topDownSpec()
	}
	return sideViewSpec()
}

func sideViewSpec() profileSpec {
	return profileSpec{
		width:   SideViewWidth,
		height:  SideViewHeight,
		levels:  []Level{LevelSurface},
		terrain: (*generator).sideViewTerrain,
		caves: []caveSpec{{
			level:      LevelSurface,
			fromRow:    CaveStartDepth,
			fill:       TileAir,
			fillChance: 0.45,
			other:      TileBoundary,
			solid:      TileStone,
			open:       TileAir,
			iterations: 3,
		}},
		veins: []veinSpec{
			{level: LevelSurface, ore: TileIronOre, attempts: 200, minSize: 3, maxSize: 3,
				minRow: SurfaceHeight + 10, maxRow: SideViewHeight - 10},
			{level: LevelSurface, ore: TileDiamondOre, attempts: 50, minSize: 2, maxSize: 2,
				minRow: SurfaceHeight + 40, maxRow: SideViewHeight - 5},
		},
		veinSources: []Tile{TileStone},
		decorate:    (*generator).sideViewTrees,
		spawn:       (*generator).sideViewSpawn,
	}
}

func topDownSpec() profileSpec {
	return profileSpec{
		width:   TopDownSize,
		height:  TopDownSize,
		levels:  []Level{LevelSurface, LevelUnderground},
		terrain: (*generator).topDownTerrain,
		caves: []caveSpec{{
			level:      LevelUnderground,
			fromRow:    0,
			fill:       TileCaveWall,
			fillChance: 0.45,
			other:      TileCaveFloor,
			solid:      TileCaveWall,
			open:       TileCaveFloor,
			iterations: 4,
			border:     true,
		}},
		veins: []veinSpec{
			{level: LevelUnderground, ore: TileIronOre, attempts: 80, minSize: 1, maxSize: 3,
				minRow: 0, maxRow: TopDownSize - 1},
			{level: LevelUnderground, ore: TileDiamondOre, attempts: 20, minSize: 1, maxSize: 2,
				minRow: 0, maxRow: TopDownSize - 1},
		},
		veinSources: []Tile{TileCaveWall, TileStone},
		decorate:    (*generator).topDownDecorate,
		portals:     (*generator).topDownPortals,
		spawn:       (*generator).topDownSpawn,
	}
}
