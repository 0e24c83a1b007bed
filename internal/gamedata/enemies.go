package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID             string  `json:"id"`             // Unique identifier (e.g., "zombie")
	Name           string  `json:"name"`           // Display name
	Glyph          string  `json:"glyph"`          // Single character for rendering
	Color          string  `json:"color"`          // Hex color code
	HP             int     `json:"hp"`             // Starting health
	Speed          float64 `json:"speed"`          // Pixels per frame while chasing
	Damage         int     `json:"damage"`         // Health removed per attack
	DetectionRange float64 `json:"detectionRange"` // Chase radius in pixels
	Drop           string  `json:"drop"`           // Item left on death, empty for none
	SpawnWeight    int     `json:"spawnWeight"`    // Relative spawn frequency
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
