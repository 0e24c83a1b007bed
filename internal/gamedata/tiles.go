package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TileStyleDef describes how a tile type is drawn in the terminal. Tile
// matches the world's tile name.
type TileStyleDef struct {
	Tile  string `json:"tile"`
	Glyph string `json:"glyph"`
	FG    string `json:"fg"`
	BG    string `json:"bg"` // Empty means the level background shows through
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileStyleDef `json:"tiles"`
}

// TileStyle is a resolved TileStyleDef.
type TileStyle struct {
	Glyph       rune
	FG, BG      tcell.Color
	Transparent bool // BG unset
}

// TileStyles maps tile names to their resolved styles.
type TileStyles map[string]TileStyle

// LoadTileStyles loads and resolves the embedded tiles.json.
func LoadTileStyles() (TileStyles, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}

	styles := make(TileStyles, len(file.Tiles))
	for _, def := range file.Tiles {
		fg, err := ParseHexColor(def.FG)
		if err != nil {
			return nil, fmt.Errorf("tile %s fg: %w", def.Tile, err)
		}
		style := TileStyle{Glyph: ' ', FG: fg, Transparent: def.BG == ""}
		if len(def.Glyph) > 0 {
			style.Glyph = rune(def.Glyph[0])
		}
		if !style.Transparent {
			if style.BG, err = ParseHexColor(def.BG); err != nil {
				return nil, fmt.Errorf("tile %s bg: %w", def.Tile, err)
			}
		}
		styles[def.Tile] = style
	}
	return styles, nil
}

// MustLoadTileStyles loads tile styles, panicking on error.
func MustLoadTileStyles() TileStyles {
	styles, err := LoadTileStyles()
	if err != nil {
		panic(err)
	}
	return styles
}

// Lookup returns the style for a tile name, or a '?' placeholder.
func (s TileStyles) Lookup(name string) TileStyle {
	if style, ok := s[name]; ok {
		return style
	}
	return TileStyle{Glyph: '?', FG: tcell.ColorFuchsia, Transparent: true}
}
