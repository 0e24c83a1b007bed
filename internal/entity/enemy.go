package entity

import (
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/cavecrawler/internal/gamedata"
	"github.com/samdwyer/cavecrawler/internal/physics"
	"github.com/samdwyer/cavecrawler/internal/world"
)

// Enemy AI tuning, in pixels and frames.
const (
	chaseDeadZone       = 10.0
	enemyJumpFactor     = 0.8
	AttackRange         = 40.0
	enemyAttackCooldown = 60
	wanderInterval      = 120
	wanderSpeedFactor   = 0.5
)

// Enemy is a hostile creature that chases the player at night.
type Enemy struct {
	physics.Body

	ID          uuid.UUID
	Def         *gamedata.EnemyDef
	Level       world.Level
	HP          int
	MaxHP       int
	FacingRight bool

	attackCooldown int
	wanderTimer    int
	wanderX        int // -1, 0 or 1
	wanderY        int // Top-down only
	blocked        bool
}

// NewEnemyFromDef creates an enemy from a data-driven definition. Enemies are
// one tile wide and, like the player, two tiles tall in side-view worlds.
func NewEnemyFromDef(def *gamedata.EnemyDef, x, y float64, level world.Level, profile world.Profile, rng *rand.Rand) *Enemy {
	h := float64(world.TileSize * 2)
	if profile == world.ProfileTopDown {
		h = world.TileSize
	}
	wander := 1
	if rng.Intn(2) == 0 {
		wander = -1
	}
	return &Enemy{
		Body:        physics.Body{X: x, Y: y, W: world.TileSize, H: h},
		ID:          uuid.New(),
		Def:         def,
		Level:       level,
		HP:          def.HP,
		MaxHP:       def.HP,
		FacingRight: true,
		wanderX:     wander,
	}
}

// Name returns the enemy's display name.
func (e *Enemy) Name() string {
	return e.Def.Name
}

// Symbol returns the display glyph.
func (e *Enemy) Symbol() rune {
	return e.Def.GlyphRune()
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	return e.Def.TCellColor()
}

// Alive reports whether the enemy has health left.
func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// Damage lowers HP, never below zero, and returns the damage dealt.
func (e *Enemy) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, e.HP)
	e.HP -= actual
	return actual
}

// Position returns the footprint's top-left corner.
func (e *Enemy) Position() (float64, float64) {
	return e.X, e.Y
}

// DistanceTo returns the distance between the footprints' top-left corners.
func (e *Enemy) DistanceTo(p *Player) float64 {
	return math.Hypot(p.X-e.X, p.Y-e.Y)
}

// Update runs one frame of AI and movement. It returns the damage dealt to
// the player this frame.
func (e *Enemy) Update(p *Player, w *world.World, rng *rand.Rand) int {
	grid := w.Grid(e.Level)
	if grid == nil {
		return 0
	}
	topDown := w.Profile == world.ProfileTopDown
	dealt := 0

	if !topDown {
		e.VY = min(e.VY+physics.Gravity, physics.MaxFallSpeed)
	}

	dist := e.DistanceTo(p)
	if p.Level == e.Level && dist < e.Def.DetectionRange {
		e.chase(p, dist, topDown)
		if dist < AttackRange && e.attackCooldown == 0 {
			dealt = e.Def.Damage
			p.Damage(float64(dealt))
			e.attackCooldown = enemyAttackCooldown
		}
	} else {
		e.wander(rng, topDown)
	}

	e.X += e.VX
	e.blocked = physics.Resolve(&e.Body, physics.AxisX, grid, world.TileSize).Blocked
	e.Y += e.VY
	if topDown {
		e.blocked = physics.Resolve(&e.Body, physics.AxisY, grid, world.TileSize).Blocked || e.blocked
	} else {
		physics.Resolve(&e.Body, physics.AxisY, grid, world.TileSize)
	}

	if e.attackCooldown > 0 {
		e.attackCooldown--
	}
	return dealt
}

func (e *Enemy) chase(p *Player, dist float64, topDown bool) {
	dx := p.X - e.X
	dy := p.Y - e.Y

	if topDown {
		if dist <= chaseDeadZone {
			e.VX, e.VY = 0, 0
			return
		}
		e.VX = dx / dist * e.Def.Speed
		e.VY = dy / dist * e.Def.Speed
		e.FacingRight = dx > 0
		return
	}

	if math.Abs(dx) <= chaseDeadZone {
		e.VX = 0
		return
	}
	if dx > 0 {
		e.VX = e.Def.Speed
		e.FacingRight = true
	} else {
		e.VX = -e.Def.Speed
		e.FacingRight = false
	}
	if e.Grounded && e.blocked {
		e.VY = JumpStrength * enemyJumpFactor
	}
}

func (e *Enemy) wander(rng *rand.Rand, topDown bool) {
	e.wanderTimer++
	if e.wanderTimer > wanderInterval {
		e.wanderX = rng.Intn(3) - 1
		if topDown {
			e.wanderY = rng.Intn(3) - 1
		}
		e.wanderTimer = 0
	}

	if e.blocked {
		e.wanderX = -e.wanderX
		e.wanderY = -e.wanderY
	}

	speed := e.Def.Speed * wanderSpeedFactor
	e.VX = float64(e.wanderX) * speed
	if topDown {
		e.VY = float64(e.wanderY) * speed
	}
	if e.VX != 0 {
		e.FacingRight = e.VX > 0
	}
}
