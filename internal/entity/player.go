// Package entity provides the player and the enemies that hunt them.
package entity

import (
	"github.com/samdwyer/cavecrawler/internal/gamedata"
	"github.com/samdwyer/cavecrawler/internal/physics"
	"github.com/samdwyer/cavecrawler/internal/world"
)

// Player tuning, in pixels and frames.
const (
	PlayerSpeed      = 5.0
	JumpStrength     = -15.0
	MaxHealth        = 100.0
	MaxHunger        = 100.0
	HungerRate       = 0.01 // Hunger lost per frame
	StarvationDamage = 0.05 // Health lost per frame at zero hunger
	MiningBaseTime   = 60   // Frames to mine a tile with bare hands
	AttackCooldown   = 20
)

// Food values restore hunger when eaten.
var foodValues = map[world.Item]float64{
	world.ItemApple: 20,
	world.ItemMeat:  40,
}

// Input is the held movement keys for one frame.
type Input struct {
	Left, Right, Up, Down bool
	Jump                  bool
}

// Player is the character controlled by the user.
type Player struct {
	physics.Body

	Level       world.Level
	Health      float64
	Hunger      float64
	Inventory   *Inventory
	Tool        *gamedata.ToolDef
	FacingRight bool

	mining         bool
	mineTarget     world.Point
	mineProgress   int
	attackCooldown int
}

// NewPlayer places a player at a spawn point. Top-down players occupy one
// tile; side-view players are two tiles tall.
func NewPlayer(spawn world.Spawn, profile world.Profile, tool *gamedata.ToolDef) *Player {
	h := float64(world.TileSize * 2)
	if profile == world.ProfileTopDown {
		h = world.TileSize
	}
	return &Player{
		Body: physics.Body{
			X: spawn.X,
			Y: spawn.Y,
			W: world.TileSize,
			H: h,
		},
		Level:       spawn.Level,
		Health:      MaxHealth,
		Hunger:      MaxHunger,
		Inventory:   NewInventory(),
		Tool:        tool,
		FacingRight: true,
	}
}

// Update applies one frame of input, moves the player through the world and
// ticks hunger.
func (p *Player) Update(in Input, w *world.World) physics.Motion {
	var m physics.Motion
	grid := w.Grid(p.Level)
	if grid == nil {
		return m
	}

	p.VX = 0
	if in.Left {
		p.VX = -PlayerSpeed
		p.FacingRight = false
	}
	if in.Right {
		p.VX = PlayerSpeed
		p.FacingRight = true
	}

	if w.Profile == world.ProfileTopDown {
		p.VY = 0
		if in.Up {
			p.VY = -PlayerSpeed
		}
		if in.Down {
			p.VY = PlayerSpeed
		}
		m = physics.StepTopDown(&p.Body, grid, world.TileSize)
	} else {
		if (in.Jump || in.Up) && p.Grounded {
			p.VY = JumpStrength
			p.Grounded = false
		}
		m = physics.StepPlatformer(&p.Body, grid, world.TileSize)
	}

	p.Hunger -= HungerRate
	if p.Hunger < 0 {
		p.Hunger = 0
		p.Health -= StarvationDamage
	}
	p.Health = max(0, min(p.Health, MaxHealth))

	if p.attackCooldown > 0 {
		p.attackCooldown--
	}
	return m
}

// MiningTime returns the frames needed to mine one tile with the current tool.
func (p *Player) MiningTime() float64 {
	speed := 1.0
	if p.Tool != nil && p.Tool.MiningSpeed > 0 {
		speed = p.Tool.MiningSpeed
	}
	return MiningBaseTime / speed
}

// MiningProgress returns the current target and the fraction mined.
func (p *Player) MiningProgress() (world.Point, float64, bool) {
	if !p.mining {
		return world.Point{}, 0, false
	}
	return p.mineTarget, float64(p.mineProgress) / p.MiningTime(), true
}

// MineResult reports a completed mining action.
type MineResult struct {
	Tile  world.Tile
	Item  world.Item
	Yield bool // An item was added to the inventory
}

// Mine advances mining of tile (tx, ty) by one frame. Moving to a new target
// restarts progress. When progress reaches the tool's mining time the tile is
// replaced with the level's cleared tile and its resource is collected.
// Tiles that cannot be mined make no progress.
func (p *Player) Mine(tx, ty int, w *world.World) (MineResult, bool) {
	target := world.Point{X: tx, Y: ty}
	if !p.mining || p.mineTarget != target {
		p.mining = true
		p.mineTarget = target
		p.mineProgress = 0
	}

	tile := w.Tile(p.Level, tx, ty)
	if !tile.Minable() {
		p.StopMining()
		return MineResult{}, false
	}

	p.mineProgress++
	if float64(p.mineProgress) < p.MiningTime() {
		return MineResult{}, false
	}

	p.StopMining()
	result := MineResult{Tile: tile}
	if item, ok := tile.Resource(); ok {
		p.Inventory.Add(item, 1)
		result.Item = item
		result.Yield = true
	}
	w.SetTile(p.Level, tx, ty, w.ClearedTile(p.Level))
	return result, true
}

// StopMining discards any partial progress.
func (p *Player) StopMining() {
	p.mining = false
	p.mineProgress = 0
}

// Eat consumes one food item and restores hunger.
func (p *Player) Eat(item world.Item) bool {
	value, ok := foodValues[item]
	if !ok || !p.Inventory.Remove(item, 1) {
		return false
	}
	p.Hunger = min(MaxHunger, p.Hunger+value)
	return true
}

// EatAny eats the most filling food held.
func (p *Player) EatAny() bool {
	return p.Eat(world.ItemMeat) || p.Eat(world.ItemApple)
}

// Damage lowers health, never below zero.
func (p *Player) Damage(amount float64) {
	p.Health = max(0, p.Health-amount)
}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// AttackPower returns the damage of one swing, or 0 while recovering.
func (p *Player) AttackPower() int {
	if p.attackCooldown > 0 {
		return 0
	}
	if p.Tool == nil {
		return 1
	}
	return p.Tool.Attack
}

// Swing starts the attack cooldown.
func (p *Player) Swing() {
	p.attackCooldown = AttackCooldown
}

// TileUnder returns the tile coordinates under the footprint's center.
func (p *Player) TileUnder() (int, int) {
	cx, cy := p.Center()
	return int(cx) / world.TileSize, int(cy) / world.TileSize
}

// UsePortal moves the player through the portal they stand on to the linked
// portal on the other level.
func (p *Player) UsePortal(w *world.World) bool {
	tx, ty := p.TileUnder()
	level, exit, ok := world.LinkedPortal(w.Tile(p.Level, tx, ty))
	if !ok || w.Grid(level) == nil {
		return false
	}

	ex, ey := w.PortalPosition(level, exit)
	p.Level = level
	p.X = float64(ex * world.TileSize)
	p.Y = float64(ey * world.TileSize)
	p.VX, p.VY = 0, 0
	p.StopMining()
	return true
}
