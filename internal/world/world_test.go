package world

import (
	"context"
	"testing"
)

func TestWorldReproducibility(t *testing.T) {
	ctx := context.Background()

	for _, profile := range []Profile{ProfileSideView, ProfileTopDown} {
		t.Run(profile.String(), func(t *testing.T) {
			// Generate two worlds with the same seed
			w1 := New(ctx, Config{Seed: 12345, Profile: profile})
			w2 := New(ctx, Config{Seed: 12345, Profile: profile})

			if w1.ID == w2.ID {
				t.Error("worlds share an ID")
			}
			for _, level := range w1.Levels() {
				if !w1.Grid(level).Equal(w2.Grid(level)) {
					t.Errorf("%v grids differ for the same seed", level)
				}
			}
			if w1.Spawn() != w2.Spawn() {
				t.Errorf("spawn mismatch: %+v != %+v", w1.Spawn(), w2.Spawn())
			}
			if w1.Stats != w2.Stats {
				t.Errorf("stats mismatch: %+v != %+v", w1.Stats, w2.Stats)
			}
		})
	}
}

func TestWorldDifferentSeeds(t *testing.T) {
	ctx := context.Background()

	for _, profile := range []Profile{ProfileSideView, ProfileTopDown} {
		w1 := New(ctx, Config{Seed: 12345, Profile: profile})
		w2 := New(ctx, Config{Seed: 54321, Profile: profile})

		identical := true
		for _, level := range w1.Levels() {
			if !w1.Grid(level).Equal(w2.Grid(level)) {
				identical = false
			}
		}
		if identical {
			t.Errorf("%v worlds with different seeds should not be identical", profile)
		}
	}
}

func TestRandomSeedIsRecorded(t *testing.T) {
	w := New(context.Background(), Config{})
	if w.Seed == 0 {
		t.Fatal("Seed = 0, want a chosen seed")
	}

	again := New(context.Background(), Config{Seed: w.Seed})
	if !again.Grid(LevelSurface).Equal(w.Grid(LevelSurface)) {
		t.Error("regenerating from the recorded seed produced a different world")
	}
}

func TestSideViewLayers(t *testing.T) {
	w := New(context.Background(), Config{Seed: 12345, Profile: ProfileSideView})
	g := w.Grid(LevelSurface)

	if w.Width != SideViewWidth || w.Height != SideViewHeight {
		t.Fatalf("size = %dx%d, want %dx%d", w.Width, w.Height, SideViewWidth, SideViewHeight)
	}
	if len(w.Levels()) != 1 {
		t.Errorf("side-view world has %d levels, want 1", len(w.Levels()))
	}

	for x := 0; x < w.Width; x++ {
		if w.BiomeAt(x) != w.BiomeAt(x-x%BiomeBandWidth) {
			t.Fatalf("column %d does not share its band's biome", x)
		}

		surfaceY := SurfaceHeight + Variation(x)
		desert := w.BiomeAt(x) == BiomeDesert

		// Rows above the cave start are only touched by terrain and trees.
		for y := 0; y < CaveStartDepth; y++ {
			got := g.Get(x, y)
			switch {
			case y < surfaceY:
				if got != TileAir && got != TileWood {
					t.Errorf("(%d,%d) = %v above the surface", x, y, got)
				}
			case y == surfaceY:
				want := TileGrass
				if desert {
					want = TileSand
				}
				if got != want {
					t.Errorf("surface (%d,%d) = %v, want %v", x, y, got, want)
				}
			case y <= surfaceY+subsoilDepth:
				want := TileDirt
				if desert {
					want = TileSand
				}
				if got != want {
					t.Errorf("subsoil (%d,%d) = %v, want %v", x, y, got, want)
				}
			default:
				// Iron veins can wander a couple of rows above their band.
				if got != TileStone && got != TileIronOre {
					t.Errorf("(%d,%d) = %v, want stone", x, y, got)
				}
			}
		}
	}
}

func TestSideViewTreesOnlyInForest(t *testing.T) {
	w := New(context.Background(), Config{Seed: 54321, Profile: ProfileSideView})
	g := w.Grid(LevelSurface)

	for x := 0; x < w.Width; x++ {
		for y := 0; y < SurfaceHeight; y++ {
			if g.Get(x, y) != TileWood {
				continue
			}
			if x%treeColumnStep != 0 || w.BiomeAt(x) != BiomeForest {
				t.Errorf("tree at column %d (biome %v)", x, w.BiomeAt(x))
			}
		}
	}
}

func TestTopDownDiamondBound(t *testing.T) {
	// 20 attempts with size at most 2
	for seed := int64(1); seed <= 20; seed++ {
		w := New(context.Background(), Config{Seed: seed, Profile: ProfileTopDown})
		diamonds := w.Grid(LevelUnderground).Count(TileDiamondOre)
		if diamonds < 0 || diamonds > 40 {
			t.Errorf("seed %d: %d diamond tiles, want 0..40", seed, diamonds)
		}
		if w.Stats.DiamondOre != diamonds {
			t.Errorf("seed %d: Stats.DiamondOre = %d, grid has %d", seed, w.Stats.DiamondOre, diamonds)
		}
		if w.Grid(LevelSurface).Count(TileDiamondOre) != 0 {
			t.Errorf("seed %d: diamonds on the surface", seed)
		}
	}
}

func TestTopDownLevels(t *testing.T) {
	w := New(context.Background(), Config{Seed: 12345, Profile: ProfileTopDown})
	surface := w.Grid(LevelSurface)
	under := w.Grid(LevelUnderground)

	if surface == nil || under == nil {
		t.Fatal("top-down world must have both levels")
	}
	if surface.Width != TopDownSize || under.Height != TopDownSize {
		t.Errorf("level size = %dx%d, want %d", surface.Width, under.Height, TopDownSize)
	}

	// The outer ring stays solid even where veins replaced wall with ore.
	for x := 0; x < under.Width; x++ {
		for _, y := range []int{0, under.Height - 1} {
			if !under.Get(x, y).Solid() {
				t.Errorf("underground border (%d,%d) = %v", x, y, under.Get(x, y))
			}
		}
	}
	for y := 0; y < under.Height; y++ {
		for _, x := range []int{0, under.Width - 1} {
			if !under.Get(x, y).Solid() {
				t.Errorf("underground border (%d,%d) = %v", x, y, under.Get(x, y))
			}
		}
	}

	for _, tile := range []Tile{TileAir, TileDirt, TileStone, TileSand} {
		if n := surface.Count(tile); n != 0 {
			t.Errorf("surface has %d %v tiles", n, tile)
		}
	}
}

func TestTopDownPortalsLinked(t *testing.T) {
	for _, seed := range []int64{12345, 54321, 7} {
		w := New(context.Background(), Config{Seed: seed, Profile: ProfileTopDown})

		dx, dy := w.PortalPosition(LevelSurface, TilePortalDown)
		ux, uy := w.PortalPosition(LevelUnderground, TilePortalUp)

		if w.Tile(LevelSurface, dx, dy) != TilePortalDown {
			t.Fatalf("seed %d: no down portal on the surface", seed)
		}
		if w.Tile(LevelUnderground, ux, uy) != TilePortalUp {
			t.Fatalf("seed %d: no up portal underground", seed)
		}
		if dx != ux || dy != uy {
			t.Errorf("seed %d: portals at (%d,%d) and (%d,%d), want matching", seed, dx, dy, ux, uy)
		}

		for oy := -1; oy <= 1; oy++ {
			for ox := -1; ox <= 1; ox++ {
				if tile := w.Tile(LevelUnderground, ux+ox, uy+oy); tile.Solid() {
					t.Errorf("seed %d: portal room cell (%d,%d) = %v", seed, ux+ox, uy+oy, tile)
				}
			}
		}
	}
}

func TestSpawnNotSolid(t *testing.T) {
	ctx := context.Background()
	for _, profile := range []Profile{ProfileSideView, ProfileTopDown} {
		for _, seed := range []int64{12345, 54321, 1, 99} {
			w := New(ctx, Config{Seed: seed, Profile: profile})
			s := w.Spawn()

			if !s.Verified {
				t.Errorf("%v seed %d: spawn not verified", profile, seed)
			}
			if tile := w.Tile(s.Level, s.TileX, s.TileY); tile.Solid() {
				t.Errorf("%v seed %d: spawn tile (%d,%d) = %v", profile, seed, s.TileX, s.TileY, tile)
			}
			if s.X != float64(s.TileX*TileSize) || s.Y != float64(s.TileY*TileSize) {
				t.Errorf("%v seed %d: spawn pixels (%v,%v) do not match tile (%d,%d)",
					profile, seed, s.X, s.Y, s.TileX, s.TileY)
			}
		}
	}
}

func TestSideViewSpawnAboveGround(t *testing.T) {
	w := New(context.Background(), Config{Seed: 12345, Profile: ProfileSideView})
	s := w.Spawn()

	if s.TileX != w.Width/2 {
		t.Errorf("spawn column = %d, want %d", s.TileX, w.Width/2)
	}
	if got := w.Tile(LevelSurface, s.TileX, s.TileY+spawnHeadroom); got == TileAir {
		t.Errorf("tile %d below spawn is air, want ground", spawnHeadroom)
	}
	for dy := 0; dy < spawnHeadroom; dy++ {
		if got := w.Tile(LevelSurface, s.TileX, s.TileY+dy); got != TileAir {
			t.Errorf("headroom tile +%d = %v, want air", dy, got)
		}
	}
}

func TestWorldBoundarySurface(t *testing.T) {
	w := New(context.Background(), Config{Seed: 12345, Profile: ProfileSideView})

	// A side-view world has no underground grid.
	if got := w.Tile(LevelUnderground, 1, 1); got != TileBoundary {
		t.Errorf("Tile(underground) = %v, want %v", got, TileBoundary)
	}
	if w.SetTile(LevelUnderground, 1, 1, TileAir) {
		t.Error("SetTile(underground) applied on a side-view world")
	}
	if w.SetTile(LevelSurface, -1, 0, TileAir) {
		t.Error("SetTile() applied out of bounds")
	}

	if !w.SetTile(LevelSurface, 3, 4, TileIronOre) {
		t.Fatal("SetTile() in bounds was not applied")
	}
	if got := w.TileAtPixel(LevelSurface, 3*TileSize+15.9, 4*TileSize); got != TileIronOre {
		t.Errorf("TileAtPixel() = %v, want %v", got, TileIronOre)
	}
	if got := w.TileAtPixel(LevelSurface, -0.5, 0); got != TileBoundary {
		t.Errorf("TileAtPixel(-0.5, 0) = %v, want %v", got, TileBoundary)
	}

	// Portals are absent; the lookup falls back to the center.
	x, y := w.PortalPosition(LevelSurface, TilePortalDown)
	if x != w.Width/2 || y != w.Height/2 {
		t.Errorf("PortalPosition() = (%d,%d), want center", x, y)
	}
}

func TestClearedTile(t *testing.T) {
	side := New(context.Background(), Config{Seed: 1, Profile: ProfileSideView})
	top := New(context.Background(), Config{Seed: 1, Profile: ProfileTopDown})

	tests := []struct {
		w     *World
		level Level
		want  Tile
	}{
		{side, LevelSurface, TileAir},
		{top, LevelSurface, TileGrassFloor},
		{top, LevelUnderground, TileCaveFloor},
	}
	for _, tt := range tests {
		if got := tt.w.ClearedTile(tt.level); got != tt.want {
			t.Errorf("ClearedTile(%v, %v) = %v, want %v", tt.w.Profile, tt.level, got, tt.want)
		}
	}
}

func TestLinkedPortal(t *testing.T) {
	level, tile, ok := LinkedPortal(TilePortalDown)
	if !ok || level != LevelUnderground || tile != TilePortalUp {
		t.Errorf("LinkedPortal(down) = (%v, %v, %v)", level, tile, ok)
	}
	level, tile, ok = LinkedPortal(TilePortalUp)
	if !ok || level != LevelSurface || tile != TilePortalDown {
		t.Errorf("LinkedPortal(up) = (%v, %v, %v)", level, tile, ok)
	}
	if _, _, ok := LinkedPortal(TileStone); ok {
		t.Error("LinkedPortal(stone) succeeded")
	}
}
