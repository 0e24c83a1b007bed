package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavecrawler/internal/entity"
	"github.com/samdwyer/cavecrawler/internal/gamedata"
	"github.com/samdwyer/cavecrawler/internal/world"
)

// HUDHeight is the number of rows reserved below the map.
const HUDHeight = 2

// Frame is everything the renderer needs to draw one frame.
type Frame struct {
	World   *world.World
	Player  *entity.Player
	Enemies []*entity.Enemy
	Time    int
	Status  string // Shown when not playing, e.g. "PAUSED"
	Message string
}

// Renderer handles drawing the game to the screen. One terminal cell shows
// one tile.
type Renderer struct {
	screen *Screen
	styles gamedata.TileStyles
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, styles gamedata.TileStyles) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// Viewport returns the top-left tile of a w×h view centered on (cx, cy) and
// clamped to the grid. Grids smaller than the view are pinned to 0.
func Viewport(cx, cy, w, h, gridW, gridH int) (int, int) {
	x := max(0, min(cx-w/2, gridW-w))
	y := max(0, min(cy-h/2, gridH-h))
	return x, y
}

// Render draws the player's level, entities and HUD.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	p := f.Player
	grid := f.World.Grid(p.Level)
	width, height := r.screen.Size()
	viewH := max(0, height-HUDHeight)

	ptx, pty := p.TileUnder()
	ox, oy := Viewport(ptx, pty, width, viewH, grid.Width, grid.Height)

	bg := world.BackgroundColor(p.Level, f.Time)
	bgColor := gamedata.RGBColor(bg.R, bg.G, bg.B)

	for sy := range viewH {
		for sx := range width {
			tile := grid.Get(ox+sx, oy+sy)
			st := r.styles.Lookup(tile.String())
			style := tcell.StyleDefault.Foreground(st.FG).Background(st.BG)
			if st.Transparent {
				style = style.Background(bgColor)
			}
			r.screen.SetContent(sx, sy, st.Glyph, style)
		}
	}

	// Mining target
	if target, progress, ok := p.MiningProgress(); ok {
		sx, sy := target.X-ox, target.Y-oy
		if sx >= 0 && sx < width && sy >= 0 && sy < viewH {
			glyph := []rune("░▒▓")[min(2, int(progress*3))]
			r.screen.SetContent(sx, sy, glyph, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(bgColor))
		}
	}

	for _, e := range f.Enemies {
		if e.Level != p.Level || !e.Alive() {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.Color()).Background(bgColor).Bold(true)
		r.drawBody(e.X, e.Y, e.H, ox, oy, width, viewH, e.Symbol(), style)
	}

	playerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(bgColor).Bold(true)
	r.drawBody(p.X, p.Y, p.H, ox, oy, width, viewH, '@', playerStyle)

	r.renderHUD(f, viewH, width)
	r.screen.Show()
}

// drawBody fills every tile row a body's footprint covers in its column.
func (r *Renderer) drawBody(x, y, h float64, ox, oy, width, viewH int, glyph rune, style tcell.Style) {
	tx := int(x+world.TileSize/2) / world.TileSize
	rows := max(1, int(h)/world.TileSize)
	ty := int(y+world.TileSize/2) / world.TileSize
	for i := range rows {
		sx, sy := tx-ox, ty+i-oy
		if sx >= 0 && sx < width && sy >= 0 && sy < viewH {
			r.screen.SetContent(sx, sy, glyph, style)
		}
	}
}

func (r *Renderer) renderHUD(f Frame, y, width int) {
	p := f.Player

	period := "Day"
	if world.IsNight(f.Time) {
		period = "Night"
	}
	tool := "Hands"
	if p.Tool != nil {
		tool = p.Tool.Name
	}
	status := fmt.Sprintf("HP %3.0f/%.0f  Food %3.0f/%.0f  %s  %s  Tool: %s",
		p.Health, entity.MaxHealth, p.Hunger, entity.MaxHunger, period, p.Level, tool)
	if f.Status != "" {
		status += "  [" + f.Status + "]"
	}
	r.RenderMessage(status, y, width, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	var parts []string
	for _, s := range p.Inventory.Stacks() {
		parts = append(parts, fmt.Sprintf("%s:%d", s.Item, s.Count))
	}
	line := strings.Join(parts, " ")
	if f.Message != "" {
		line = f.Message + "  " + line
	}
	r.RenderMessage(line, y+1, width, tcell.StyleDefault.Foreground(tcell.ColorSilver))
}

// RenderMessage writes msg on row y, truncated to width.
func (r *Renderer) RenderMessage(msg string, y, width int, style tcell.Style) {
	x := 0
	for _, ch := range msg {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
