package game

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/cavecrawler/internal/combat"
	"github.com/samdwyer/cavecrawler/internal/entity"
	"github.com/samdwyer/cavecrawler/internal/gamedata"
	"github.com/samdwyer/cavecrawler/internal/physics"
	"github.com/samdwyer/cavecrawler/internal/telemetry"
	"github.com/samdwyer/cavecrawler/internal/world"
)

// Session tuning, in pixels and frames.
const (
	MiningReach       = 100.0
	EnemySpawnChance  = 0.01
	MaxEnemies        = 20
	spawnMinDistance  = 400.0
	spawnMaxDistance  = 600.0
	spawnHeightOffset = 100.0
)

// Session is one play-through of a generated world. All methods run on the
// simulation goroutine.
type Session struct {
	World   *world.World
	Player  *entity.Player
	Enemies []*entity.Enemy
	Time    int // Frames since the session started
	State   State
	Message string

	registry *gamedata.EnemyRegistry
	rng      *rand.Rand
	tracer   trace.Tracer
}

// NewSession generates a world and places the player at its spawn. An
// unverified spawn is logged and its tile cleared so the player never starts
// inside a wall.
func NewSession(ctx context.Context, cfg Config, enemies *gamedata.EnemyRegistry, tools *gamedata.ToolRegistry) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	tool := tools.GetByID(cfg.Tool)
	if tool == nil {
		return nil, fmt.Errorf("unknown tool %q", cfg.Tool)
	}

	w := world.New(ctx, world.Config{Seed: cfg.Seed, Profile: cfg.Profile})
	spawn := w.Spawn()
	if !spawn.Verified {
		log.Printf("Warning: spawn (%d,%d) on %v was not verified, clearing it", spawn.TileX, spawn.TileY, spawn.Level)
		w.SetTile(spawn.Level, spawn.TileX, spawn.TileY, w.ClearedTile(spawn.Level))
	}

	span.SetAttributes(
		attribute.String("world.id", w.ID.String()),
		attribute.Int64("world.seed", w.Seed),
		attribute.String("world.profile", w.Profile.String()),
		attribute.Int("player.start_x", spawn.TileX),
		attribute.Int("player.start_y", spawn.TileY),
		attribute.Bool("spawn.verified", spawn.Verified),
		attribute.String("player.tool", tool.ID),
	)

	return &Session{
		World:    w,
		Player:   entity.NewPlayer(spawn, w.Profile, tool),
		State:    StatePlaying,
		registry: enemies,
		// Offset so gameplay draws do not replay the generator's stream.
		rng:    rand.New(rand.NewSource(w.Seed + 1)),
		tracer: tracer,
	}, nil
}

// Step advances the simulation by one frame.
func (s *Session) Step(in entity.Input) {
	if s.State != StatePlaying {
		return
	}

	s.Player.Update(in, s.World)
	if !s.Player.Alive() {
		s.State = StateDead
		s.Message = "You died."
		return
	}

	alive := s.Enemies[:0]
	for _, e := range s.Enemies {
		e.Update(s.Player, s.World, s.rng)
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	s.Enemies = alive

	if world.IsNight(s.Time) && len(s.Enemies) < MaxEnemies && s.rng.Float64() < EnemySpawnChance {
		s.spawnEnemy()
	}

	s.Time++
}

// TogglePause switches between playing and paused.
func (s *Session) TogglePause() {
	switch s.State {
	case StatePlaying:
		s.State = StatePaused
	case StatePaused:
		s.State = StatePlaying
	}
}

// InReach reports whether tile (tx, ty) is close enough to the player to mine.
// Distance is measured between the player's center and the tile's center.
func (s *Session) InReach(tx, ty int) bool {
	px, py := s.Player.Center()
	cx := float64(tx*world.TileSize) + world.TileSize/2
	cy := float64(ty*world.TileSize) + world.TileSize/2
	return math.Hypot(px-cx, py-cy) <= MiningReach
}

// FacingTile returns the tile beside the player in the direction they face,
// level with the middle of their body.
func (s *Session) FacingTile() (int, int) {
	tx, ty := s.Player.TileUnder()
	if s.Player.FacingRight {
		return tx + 1, ty
	}
	return tx - 1, ty
}

// TileBelow returns the tile directly under the player's feet.
func (s *Session) TileBelow() (int, int) {
	cx, _ := s.Player.Center()
	return int(cx) / world.TileSize, int(s.Player.Y+s.Player.H) / world.TileSize
}

// Mine advances mining of tile (tx, ty) by one frame if it is within reach.
func (s *Session) Mine(ctx context.Context, tx, ty int) (entity.MineResult, bool) {
	if s.State != StatePlaying {
		return entity.MineResult{}, false
	}
	if !s.InReach(tx, ty) {
		s.Player.StopMining()
		return entity.MineResult{}, false
	}

	result, done := s.Player.Mine(tx, ty, s.World)
	if !done {
		return result, false
	}

	_, span := s.tracer.Start(ctx, "game.mine")
	span.SetAttributes(
		attribute.String("tile", result.Tile.String()),
		attribute.String("level", s.Player.Level.String()),
		attribute.Int("tile.x", tx),
		attribute.Int("tile.y", ty),
		attribute.String("item", string(result.Item)),
	)
	span.End()

	if result.Yield {
		s.Message = fmt.Sprintf("Mined %s (+1 %s)", result.Tile, result.Item)
	}
	return result, true
}

// Attack swings at the nearest living enemy on the player's level within
// entity.AttackRange. A kill adds the enemy's drop to the inventory.
func (s *Session) Attack(ctx context.Context) combat.StrikeResult {
	if s.State != StatePlaying {
		return combat.StrikeResult{}
	}

	var nearby []*entity.Enemy
	for _, e := range s.Enemies {
		if e.Level == s.Player.Level {
			nearby = append(nearby, e)
		}
	}
	target, ok := combat.Nearest(nearby, s.Player.X, s.Player.Y, entity.AttackRange)
	if !ok {
		s.Message = "Nothing to hit."
		return combat.StrikeResult{Message: s.Message}
	}

	result := combat.Strike(s.Player.AttackPower(), target)
	if !result.Success {
		return result
	}
	s.Player.Swing()

	if result.Killed && target.Def.Drop != "" {
		s.Player.Inventory.Add(world.Item(target.Def.Drop), 1)
		result.Message += fmt.Sprintf(" (+1 %s)", target.Def.Drop)
	}
	s.Message = result.Message

	_, span := s.tracer.Start(ctx, "game.attack")
	span.SetAttributes(
		attribute.String("enemy.id", target.ID.String()),
		attribute.String("enemy.type", target.Def.ID),
		attribute.Int("damage", result.Damage),
		attribute.Bool("killed", result.Killed),
	)
	span.End()
	return result
}

// Eat eats the most filling food the player carries.
func (s *Session) Eat() bool {
	if s.State != StatePlaying {
		return false
	}
	if !s.Player.EatAny() {
		s.Message = "Nothing to eat."
		return false
	}
	s.Message = "Ate some food."
	return true
}

// UsePortal takes the player through the portal they stand on. Enemies do not
// follow.
func (s *Session) UsePortal() bool {
	if s.State != StatePlaying || !s.Player.UsePortal(s.World) {
		return false
	}
	s.Message = fmt.Sprintf("Entered the %v.", s.Player.Level)
	return true
}

// spawnEnemy places a weighted-random enemy off screen to the left or right
// of the player, above their head so it falls into place. Spawns that would
// start inside terrain are skipped.
func (s *Session) spawnEnemy() *entity.Enemy {
	def := s.registry.SpawnRandom(s.rng)
	if def == nil {
		return nil
	}

	p := s.Player
	dist := spawnMinDistance + s.rng.Float64()*(spawnMaxDistance-spawnMinDistance)
	if s.rng.Intn(2) == 0 {
		dist = -dist
	}

	x := p.X + dist
	y := p.Y - spawnHeightOffset
	if s.World.Profile == world.ProfileTopDown {
		// No gravity: place it level with the player instead.
		y = p.Y
	}
	maxX := float64(s.World.Width*world.TileSize - world.TileSize)
	x = max(0, min(x, maxX))

	e := entity.NewEnemyFromDef(def, x, y, p.Level, s.World.Profile, s.rng)
	if physics.OverlapsSolid(e.Rect(), s.World.Grid(p.Level), world.TileSize) {
		return nil
	}
	s.Enemies = append(s.Enemies, e)
	return e
}
