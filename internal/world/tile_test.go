package world

import "testing"

func TestTileCapabilities(t *testing.T) {
	tests := []struct {
		tile     Tile
		solid    bool
		minable  bool
		resource Item
	}{
		{TileAir, false, false, ""},
		{TileDirt, true, true, ItemDirt},
		{TileStone, true, true, ItemStone},
		{TileGrass, true, true, ItemDirt},
		{TileWood, true, true, ItemWood},
		{TileSand, true, true, ItemSand},
		{TileIronOre, true, true, ItemIron},
		{TileDiamondOre, true, true, ItemDiamond},
		{TileCaveWall, true, true, ItemStone},
		{TileCaveFloor, false, false, ""},
		{TileGrassFloor, false, false, ""},
		{TileWater, true, false, ""},
		{TileTree, true, true, ItemWood},
		{TileBush, true, true, ItemApple},
		{TileFlower, false, false, ""},
		{TilePortalDown, false, false, ""},
		{TilePortalUp, false, false, ""},
		{TileBoundary, true, false, ""},
	}

	if len(tests) != int(tileCount) {
		t.Fatalf("table covers %d tiles, want %d", len(tests), tileCount)
	}

	for _, tt := range tests {
		if got := tt.tile.Solid(); got != tt.solid {
			t.Errorf("%v.Solid() = %v, want %v", tt.tile, got, tt.solid)
		}
		if got := tt.tile.Minable(); got != tt.minable {
			t.Errorf("%v.Minable() = %v, want %v", tt.tile, got, tt.minable)
		}
		res, ok := tt.tile.Resource()
		if res != tt.resource || ok != (tt.resource != "") {
			t.Errorf("%v.Resource() = (%q, %v), want %q", tt.tile, res, ok, tt.resource)
		}
	}
}

func TestParseTile(t *testing.T) {
	for _, tile := range AllTiles() {
		got, ok := ParseTile(tile.String())
		if !ok || got != tile {
			t.Errorf("ParseTile(%q) = (%v, %v), want (%v, true)", tile.String(), got, ok, tile)
		}
	}
	if _, ok := ParseTile("lava"); ok {
		t.Error("ParseTile(lava) succeeded")
	}
}

func TestUnknownTileActsAsBoundary(t *testing.T) {
	unknown := Tile(200)
	if !unknown.Solid() || unknown.Minable() {
		t.Errorf("Tile(200) solid=%v minable=%v, want solid and not minable", unknown.Solid(), unknown.Minable())
	}
}
