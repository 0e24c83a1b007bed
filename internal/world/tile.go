// Package world provides procedural world generation and tile storage.
package world

// Tile identifies the contents of a single grid cell.
type Tile uint8

const (
	// TileAir is empty space in side-view worlds.
	TileAir Tile = iota
	TileDirt
	TileStone
	// TileGrass is the solid surface block of side-view worlds.
	TileGrass
	TileWood
	TileSand
	TileIronOre
	TileDiamondOre
	TileCaveWall
	TileCaveFloor
	// TileGrassFloor is walkable grass in top-down worlds.
	TileGrassFloor
	TileWater
	TileTree
	TileBush
	TileFlower
	// TilePortalDown leads from the surface to the underground.
	TilePortalDown
	// TilePortalUp leads from the underground back to the surface.
	TilePortalUp
	// TileBoundary is returned for every coordinate outside a grid.
	TileBoundary

	tileCount
)

// Item is a resource produced by mining a tile.
type Item string

const (
	ItemWood    Item = "wood"
	ItemStone   Item = "stone"
	ItemIron    Item = "iron"
	ItemDiamond Item = "diamond"
	ItemDirt    Item = "dirt"
	ItemSand    Item = "sand"
	ItemApple   Item = "apple"
	ItemMeat    Item = "meat"
)

// properties is the capability row for one tile type.
type properties struct {
	name     string
	solid    bool
	minable  bool
	resource Item
}

// tileProperties is the single source of truth for tile behavior.
// Collision and mining both read from it.
var tileProperties = [tileCount]properties{
	TileAir:        {name: "air"},
	TileDirt:       {name: "dirt", solid: true, minable: true, resource: ItemDirt},
	TileStone:      {name: "stone", solid: true, minable: true, resource: ItemStone},
	TileGrass:      {name: "grass", solid: true, minable: true, resource: ItemDirt},
	TileWood:       {name: "wood", solid: true, minable: true, resource: ItemWood},
	TileSand:       {name: "sand", solid: true, minable: true, resource: ItemSand},
	TileIronOre:    {name: "iron_ore", solid: true, minable: true, resource: ItemIron},
	TileDiamondOre: {name: "diamond_ore", solid: true, minable: true, resource: ItemDiamond},
	TileCaveWall:   {name: "cave_wall", solid: true, minable: true, resource: ItemStone},
	TileCaveFloor:  {name: "cave_floor"},
	TileGrassFloor: {name: "grass_floor"},
	TileWater:      {name: "water", solid: true},
	TileTree:       {name: "tree", solid: true, minable: true, resource: ItemWood},
	TileBush:       {name: "bush", solid: true, minable: true, resource: ItemApple},
	TileFlower:     {name: "flower"},
	TilePortalDown: {name: "portal_down"},
	TilePortalUp:   {name: "portal_up"},
	TileBoundary:   {name: "boundary", solid: true},
}

func (t Tile) props() properties {
	if t >= tileCount {
		return tileProperties[TileBoundary]
	}
	return tileProperties[t]
}

// Solid reports whether the tile blocks actor movement.
func (t Tile) Solid() bool {
	return t.props().solid
}

// Minable reports whether the tile can be mined into a resource.
func (t Tile) Minable() bool {
	return t.props().minable
}

// Resource returns the item yielded by mining the tile.
func (t Tile) Resource() (Item, bool) {
	p := t.props()
	if !p.minable || p.resource == "" {
		return "", false
	}
	return p.resource, true
}

// IsPortal reports whether the tile links two levels.
func (t Tile) IsPortal() bool {
	return t == TilePortalDown || t == TilePortalUp
}

// String returns the tile's stable name.
func (t Tile) String() string {
	return t.props().name
}

// AllTiles returns every defined tile type in code order.
func AllTiles() []Tile {
	tiles := make([]Tile, 0, tileCount)
	for t := Tile(0); t < tileCount; t++ {
		tiles = append(tiles, t)
	}
	return tiles
}

// ParseTile returns the tile with the given name.
func ParseTile(name string) (Tile, bool) {
	for t := Tile(0); t < tileCount; t++ {
		if tileProperties[t].name == name {
			return t, true
		}
	}
	return TileBoundary, false
}
