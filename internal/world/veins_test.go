package world

import (
	"math/rand"
	"testing"
)

func TestGrowVeinBoundedBySize(t *testing.T) {
	rng := rand.New(rand.NewSource(54321))
	sources := []Tile{TileStone}

	for size := 0; size <= 10; size++ {
		g := NewGrid(30, 30, TileStone)
		placed := GrowVein(g, rng, 15, 15, size, TileIronOre, sources)
		if placed > size {
			t.Errorf("GrowVein(size=%d) placed %d", size, placed)
		}
		if got := g.Count(TileIronOre); got != placed {
			t.Errorf("GrowVein(size=%d) reported %d, grid has %d", size, placed, got)
		}
	}
}

func TestGrowVeinOnlyReplacesSources(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	g := NewGrid(9, 9, TileAir)
	g.Set(4, 4, TileStone)

	for range 50 {
		GrowVein(g, rng, 4, 4, 8, TileDiamondOre, []Tile{TileStone})
	}

	if got := g.Count(TileAir); got != 80 {
		t.Errorf("air cells = %d, want 80", got)
	}
	if got := g.Get(4, 4); got != TileDiamondOre {
		t.Errorf("source cell = %v, want %v", got, TileDiamondOre)
	}
}

func TestGrowVeinOutsideGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewGrid(10, 10, TileStone)

	if placed := GrowVein(g, rng, -100, -100, 5, TileIronOre, []Tile{TileStone}); placed != 0 {
		t.Errorf("GrowVein() outside the grid placed %d", placed)
	}
	if got := g.Count(TileStone); got != 100 {
		t.Errorf("stone cells = %d, want 100", got)
	}
}
