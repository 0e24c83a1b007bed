package inspect

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/samdwyer/cavecrawler/internal/gamedata"
	"github.com/samdwyer/cavecrawler/internal/world"
)

// WorldResponse is the world manifest.
type WorldResponse struct {
	ID      string      `json:"id"`
	Seed    int64       `json:"seed"`
	Profile string      `json:"profile"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Levels  []string    `json:"levels"`
	Spawn   world.Spawn `json:"spawn"`
	Stats   world.Stats `json:"stats"`
	Biomes  []BiomeSpan `json:"biomes,omitempty"`
}

// BiomeSpan is a run of columns sharing a biome.
type BiomeSpan struct {
	Biome string `json:"biome"`
	From  int    `json:"from"`
	To    int    `json:"to"` // Inclusive
}

// LevelResponse is one level's grid drawn with tile glyphs.
type LevelResponse struct {
	Level  string         `json:"level"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Counts map[string]int `json:"counts"`
	Rows   []string       `json:"rows"`
}

// TileResponse describes a single cell.
type TileResponse struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Tile     string `json:"tile"`
	Solid    bool   `json:"solid"`
	Minable  bool   `json:"minable"`
	Resource string `json:"resource,omitempty"`
}

// PortalResponse locates a level's portal.
type PortalResponse struct {
	Tile  string `json:"tile"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Leads string `json:"leadsTo"`
	ExitX int    `json:"exitX"`
	ExitY int    `json:"exitY"`
}

// SkyResponse is the background at a simulation time.
type SkyResponse struct {
	Time    int    `json:"time"`
	Night   bool   `json:"night"`
	Surface string `json:"surface"`
	Cave    string `json:"underground"`
}

// WorldHandler handles world endpoints
type WorldHandler struct {
	world  *world.World
	styles gamedata.TileStyles
}

// NewWorldHandler creates a new WorldHandler
func NewWorldHandler(w *world.World, styles gamedata.TileStyles) *WorldHandler {
	return &WorldHandler{world: w, styles: styles}
}

// GetWorld handles GET /api/world - returns the world manifest
func (h *WorldHandler) GetWorld(w http.ResponseWriter, r *http.Request) {
	resp := WorldResponse{
		ID:      h.world.ID.String(),
		Seed:    h.world.Seed,
		Profile: h.world.Profile.String(),
		Width:   h.world.Width,
		Height:  h.world.Height,
		Spawn:   h.world.Spawn(),
		Stats:   h.world.Stats,
		Biomes:  biomeSpans(h.world.Biomes),
	}
	for _, l := range h.world.Levels() {
		resp.Levels = append(resp.Levels, l.String())
	}
	respondJSON(w, http.StatusOK, resp)
}

func biomeSpans(biomes []world.Biome) []BiomeSpan {
	var spans []BiomeSpan
	for x, b := range biomes {
		if n := len(spans); n > 0 && spans[n-1].Biome == b.String() {
			spans[n-1].To = x
			continue
		}
		spans = append(spans, BiomeSpan{Biome: b.String(), From: x, To: x})
	}
	return spans
}

// level resolves the {level} URL parameter to an existing grid.
func (h *WorldHandler) level(w http.ResponseWriter, r *http.Request) (world.Level, *world.Grid, bool) {
	level, err := world.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return 0, nil, false
	}
	grid := h.world.Grid(level)
	if grid == nil {
		respondError(w, http.StatusNotFound, "World has no "+level.String()+" level")
		return 0, nil, false
	}
	return level, grid, true
}

// GetLevel handles GET /api/levels/{level} - returns the level as glyph rows
func (h *WorldHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	level, grid, ok := h.level(w, r)
	if !ok {
		return
	}

	resp := LevelResponse{
		Level:  level.String(),
		Width:  grid.Width,
		Height: grid.Height,
		Counts: make(map[string]int),
		Rows:   make([]string, 0, grid.Height),
	}
	for _, t := range world.AllTiles() {
		if n := grid.Count(t); n > 0 {
			resp.Counts[t.String()] = n
		}
	}

	var row strings.Builder
	for y := range grid.Height {
		row.Reset()
		for x := range grid.Width {
			row.WriteRune(h.styles.Lookup(grid.Get(x, y).String()).Glyph)
		}
		resp.Rows = append(resp.Rows, row.String())
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetTile handles GET /api/levels/{level}/tiles/{x}/{y} - returns one cell
func (h *WorldHandler) GetTile(w http.ResponseWriter, r *http.Request) {
	_, grid, ok := h.level(w, r)
	if !ok {
		return
	}

	x, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	y, err := strconv.Atoi(chi.URLParam(r, "y"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if !grid.InBounds(x, y) {
		respondError(w, http.StatusNotFound, "Coordinates outside the level")
		return
	}

	tile := grid.Get(x, y)
	resp := TileResponse{
		X:       x,
		Y:       y,
		Tile:    tile.String(),
		Solid:   tile.Solid(),
		Minable: tile.Minable(),
	}
	if item, ok := tile.Resource(); ok {
		resp.Resource = string(item)
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetPortal handles GET /api/levels/{level}/portal - returns the level's
// portal and where it leads
func (h *WorldHandler) GetPortal(w http.ResponseWriter, r *http.Request) {
	level, grid, ok := h.level(w, r)
	if !ok {
		return
	}

	portal := world.TilePortalDown
	if level == world.LevelUnderground {
		portal = world.TilePortalUp
	}
	x, y, found := grid.Find(portal)
	exitLevel, exit, linked := world.LinkedPortal(portal)
	if !found || !linked || h.world.Grid(exitLevel) == nil {
		respondError(w, http.StatusNotFound, "Level has no portal")
		return
	}

	ex, ey := h.world.PortalPosition(exitLevel, exit)
	respondJSON(w, http.StatusOK, PortalResponse{
		Tile:  portal.String(),
		X:     x,
		Y:     y,
		Leads: exitLevel.String(),
		ExitX: ex,
		ExitY: ey,
	})
}

// GetSky handles GET /api/sky?t= - returns background colours at time t
func (h *WorldHandler) GetSky(w http.ResponseWriter, r *http.Request) {
	t := 0
	if v := r.URL.Query().Get("t"); v != "" {
		var err error
		if t, err = strconv.Atoi(v); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid time")
			return
		}
	}

	sky := world.BackgroundColor(world.LevelSurface, t)
	cave := world.BackgroundColor(world.LevelUnderground, t)
	respondJSON(w, http.StatusOK, SkyResponse{
		Time:    t,
		Night:   world.IsNight(t),
		Surface: gamedata.HexString(sky.R, sky.G, sky.B),
		Cave:    gamedata.HexString(cave.R, cave.G, cave.B),
	})
}
