package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavecrawler/internal/telemetry"
)

// generator runs the profile's stages against a world. Every stage draws from
// the same rng so the whole world is a function of the seed.
type generator struct {
	w    *World
	rng  *rand.Rand
	spec profileSpec
}

// stage is one named step of the pipeline.
type stage struct {
	name string
	run  func(g *generator)
}

// stages returns the pipeline in order. Each stage reads the tiles left by
// the previous one.
func (g *generator) stages() []stage {
	stages := []stage{
		{"terrain", g.spec.terrain},
		{"caves", (*generator).carveCaves},
		{"veins", (*generator).placeVeins},
		{"decorate", g.spec.decorate},
	}
	if g.spec.portals != nil {
		stages = append(stages, stage{"portals", g.spec.portals})
	}
	stages = append(stages, stage{"spawn", func(g *generator) {
		g.w.spawn = g.spec.spawn(g)
	}})
	return stages
}

// run executes every stage and records the world summary.
func (g *generator) run(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	for _, s := range g.stages() {
		_, stageSpan := tracer.Start(ctx, "world."+s.name)
		s.run(g)
		stageSpan.End()
	}

	g.summarize()

	w := g.w
	span.SetAttributes(
		attribute.String("world.id", w.ID.String()),
		attribute.Int64("world.seed", w.Seed),
		attribute.String("world.profile", w.Profile.String()),
		attribute.Int("world.width", w.Width),
		attribute.Int("world.height", w.Height),
		attribute.Int("world.iron_ore", w.Stats.IronOre),
		attribute.Int("world.diamond_ore", w.Stats.DiamondOre),
		attribute.Int("world.cave_regions", w.Stats.CaveRegions),
		attribute.Int("world.largest_cave_region", w.Stats.LargestCaveRegion),
		attribute.Bool("spawn.verified", w.spawn.Verified),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// summarize fills World.Stats from the finished grids.
func (g *generator) summarize() {
	w := g.w
	stats := Stats{}
	for _, level := range w.Levels() {
		grid := w.levels[level]
		stats.IronOre += grid.Count(TileIronOre)
		stats.DiamondOre += grid.Count(TileDiamondOre)
		stats.Trees += grid.Count(TileTree) + grid.Count(TileWood)
		stats.Water += grid.Count(TileWater)
	}

	for _, cs := range g.spec.caves {
		grid := w.levels[cs.level]
		open := cs.open
		regions := OpenRegions(grid, cs.fromRow, func(t Tile) bool { return t == open })
		stats.CaveRegions += len(regions)
		if len(regions) > 0 && regions[0].Size > stats.LargestCaveRegion {
			stats.LargestCaveRegion = regions[0].Size
		}
	}
	w.Stats = stats
}

// intRange returns a uniform int in [lo, hi].
func intRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
