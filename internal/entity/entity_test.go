package entity

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/samdwyer/cavecrawler/internal/gamedata"
	"github.com/samdwyer/cavecrawler/internal/world"
)

var (
	bareHands = &gamedata.ToolDef{ID: gamedata.NoTool, Name: "Bare Hands", MiningSpeed: 1, Attack: 2}
	zombieDef = &gamedata.EnemyDef{ID: "zombie", Name: "Zombie", Glyph: "Z", HP: 30, Speed: 2, Damage: 5, DetectionRange: 200, SpawnWeight: 1}
)

func sideViewWorld(t *testing.T) *world.World {
	t.Helper()
	return world.New(context.Background(), world.Config{Seed: 12345, Profile: world.ProfileSideView})
}

// groundBelow returns the first solid tile row under the spawn column.
func groundBelow(t *testing.T, w *world.World, s world.Spawn) int {
	t.Helper()
	for y := s.TileY; y < w.Height; y++ {
		if w.Tile(s.Level, s.TileX, y).Solid() {
			return y
		}
	}
	t.Fatal("no ground under spawn")
	return 0
}

func TestMineTileBelowSpawn(t *testing.T) {
	w := sideViewWorld(t)
	s := w.Spawn()
	if w.Tile(s.Level, s.TileX, s.TileY).Solid() {
		t.Fatalf("spawn tile is solid")
	}

	p := NewPlayer(s, w.Profile, bareHands)
	gy := groundBelow(t, w, s)
	tile := w.Tile(s.Level, s.TileX, gy)
	item, ok := tile.Resource()
	if !ok {
		t.Fatalf("ground tile %v yields nothing", tile)
	}

	for i := 1; i < 60; i++ {
		if _, done := p.Mine(s.TileX, gy, w); done {
			t.Fatalf("mining finished after %d frames, want 60", i)
		}
	}
	if got := w.Tile(s.Level, s.TileX, gy); got != tile {
		t.Fatalf("tile changed to %v before mining finished", got)
	}

	result, done := p.Mine(s.TileX, gy, w)
	if !done {
		t.Fatal("mining not finished after 60 frames")
	}
	if got := w.Tile(s.Level, s.TileX, gy); got != world.TileAir {
		t.Errorf("mined tile = %v, want air", got)
	}
	if !result.Yield || result.Item != item || result.Tile != tile {
		t.Errorf("Mine() = %+v, want %v from %v", result, item, tile)
	}
	if got := p.Inventory.Count(item); got != 1 {
		t.Errorf("inventory has %d %s, want 1", got, item)
	}
}

func TestMiningSwitchTargetResets(t *testing.T) {
	w := sideViewWorld(t)
	s := w.Spawn()
	p := NewPlayer(s, w.Profile, bareHands)
	gy := groundBelow(t, w, s)

	for range 59 {
		p.Mine(s.TileX, gy, w)
	}
	// One frame on a neighboring tile discards the progress.
	p.Mine(s.TileX, gy+1, w)
	if _, done := p.Mine(s.TileX, gy, w); done {
		t.Error("progress survived a target switch")
	}
	if _, frac, ok := p.MiningProgress(); !ok || frac <= 0 || frac >= 1 {
		t.Errorf("MiningProgress() = (%v, %v)", frac, ok)
	}
}

func TestMiningUnminable(t *testing.T) {
	w := sideViewWorld(t)
	s := w.Spawn()
	p := NewPlayer(s, w.Profile, bareHands)

	for range 100 {
		if _, done := p.Mine(s.TileX, s.TileY, w); done {
			t.Fatal("mined an air tile")
		}
	}
	if _, done := p.Mine(-5, -5, w); done {
		t.Fatal("mined the boundary")
	}
}

func TestFasterToolMinesSooner(t *testing.T) {
	w := sideViewWorld(t)
	s := w.Spawn()
	p := NewPlayer(s, w.Profile, &gamedata.ToolDef{ID: "diamond_pickaxe", MiningSpeed: 8})
	gy := groundBelow(t, w, s)

	frames := 0
	for {
		frames++
		if _, done := p.Mine(s.TileX, gy, w); done {
			break
		}
		if frames > 60 {
			t.Fatal("diamond pickaxe took longer than bare hands")
		}
	}
	if frames != 8 {
		t.Errorf("mining took %d frames, want 8", frames)
	}
}

func TestPlayerLandsAfterSpawn(t *testing.T) {
	w := sideViewWorld(t)
	s := w.Spawn()
	p := NewPlayer(s, w.Profile, bareHands)

	for range 120 {
		p.Update(Input{}, w)
	}
	if !p.Grounded {
		t.Fatal("player never landed")
	}
	gy := groundBelow(t, w, s)
	if got := p.Rect().Bottom(); got != float64(gy*world.TileSize) {
		t.Errorf("player bottom = %v, want %v", got, gy*world.TileSize)
	}

	p.Update(Input{Jump: true}, w)
	if p.Grounded || p.VY >= 0 {
		t.Errorf("jump did not leave the ground: grounded=%v vy=%v", p.Grounded, p.VY)
	}
}

func TestHungerAndStarvation(t *testing.T) {
	w := sideViewWorld(t)
	p := NewPlayer(w.Spawn(), w.Profile, bareHands)

	for range 100 {
		p.Update(Input{}, w)
	}
	if p.Hunger < 98.99 || p.Hunger > 99.01 {
		t.Errorf("hunger after 100 frames = %v, want 99", p.Hunger)
	}
	if p.Health != MaxHealth {
		t.Errorf("health = %v while fed, want %v", p.Health, MaxHealth)
	}

	p.Hunger = 0
	p.Update(Input{}, w)
	if p.Hunger != 0 {
		t.Errorf("hunger = %v, want 0", p.Hunger)
	}
	if want := MaxHealth - StarvationDamage; math.Abs(p.Health-want) > 1e-9 {
		t.Errorf("health = %v, want %v", p.Health, want)
	}
}

func TestEat(t *testing.T) {
	w := sideViewWorld(t)
	p := NewPlayer(w.Spawn(), w.Profile, bareHands)
	p.Hunger = 50

	if p.Eat(world.ItemApple) {
		t.Fatal("ate an apple that was not held")
	}

	p.Inventory.Add(world.ItemApple, 1)
	p.Inventory.Add(world.ItemMeat, 1)
	p.Inventory.Add(world.ItemStone, 1)

	if !p.Eat(world.ItemApple) || p.Hunger != 70 {
		t.Errorf("after apple hunger = %v, want 70", p.Hunger)
	}
	if p.Eat(world.ItemStone) {
		t.Error("ate stone")
	}
	if !p.EatAny() || p.Hunger != MaxHunger {
		t.Errorf("after meat hunger = %v, want %v", p.Hunger, MaxHunger)
	}
	if p.EatAny() {
		t.Error("EatAny() succeeded with no food left")
	}
}

func TestUsePortal(t *testing.T) {
	w := world.New(context.Background(), world.Config{Seed: 12345, Profile: world.ProfileTopDown})
	p := NewPlayer(w.Spawn(), w.Profile, bareHands)

	// Spawn is always on plain grass.
	if p.UsePortal(w) {
		t.Fatal("used a portal while not standing on one")
	}

	dx, dy := w.PortalPosition(world.LevelSurface, world.TilePortalDown)
	p.Level = world.LevelSurface
	p.X, p.Y = float64(dx*world.TileSize), float64(dy*world.TileSize)

	if !p.UsePortal(w) {
		t.Fatal("UsePortal() = false on the down portal")
	}
	if p.Level != world.LevelUnderground {
		t.Fatalf("level = %v, want underground", p.Level)
	}
	if tx, ty := p.TileUnder(); w.Tile(p.Level, tx, ty) != world.TilePortalUp {
		t.Errorf("arrived on %v, want the up portal", w.Tile(p.Level, tx, ty))
	}

	if !p.UsePortal(w) || p.Level != world.LevelSurface {
		t.Errorf("return trip failed: level = %v", p.Level)
	}
}

func TestPlayerTopDownMovement(t *testing.T) {
	w := world.New(context.Background(), world.Config{Seed: 54321, Profile: world.ProfileTopDown})
	p := NewPlayer(w.Spawn(), w.Profile, bareHands)

	if p.H != world.TileSize {
		t.Errorf("top-down player height = %v, want %v", p.H, world.TileSize)
	}

	startY := p.Y
	for range 20 {
		p.Update(Input{Down: true}, w)
	}
	if p.Y < startY {
		t.Errorf("moving down decreased Y: %v -> %v", startY, p.Y)
	}
	if p.VX != 0 {
		t.Errorf("VX = %v with no horizontal input", p.VX)
	}
}

func TestInventory(t *testing.T) {
	inv := NewInventory()
	inv.Add(world.ItemStone, 3)
	inv.Add(world.ItemWood, 1)
	inv.Add(world.ItemIron, 0)

	if inv.Remove(world.ItemStone, 4) {
		t.Error("removed more stone than held")
	}
	if inv.Count(world.ItemStone) != 3 {
		t.Errorf("failed removal changed count to %d", inv.Count(world.ItemStone))
	}
	if !inv.Remove(world.ItemStone, 3) || inv.Has(world.ItemStone, 1) {
		t.Error("removing all stone failed")
	}

	stacks := inv.Stacks()
	if len(stacks) != 1 || stacks[0].Item != world.ItemWood || stacks[0].Count != 1 {
		t.Errorf("Stacks() = %+v, want [wood x1]", stacks)
	}
}

func TestEnemyAttackCooldown(t *testing.T) {
	w := sideViewWorld(t)
	p := NewPlayer(w.Spawn(), w.Profile, bareHands)
	rng := rand.New(rand.NewSource(1))
	e := NewEnemyFromDef(zombieDef, p.X, p.Y, p.Level, w.Profile, rng)

	if dealt := e.Update(p, w, rng); dealt != 5 {
		t.Fatalf("first attack dealt %d, want 5", dealt)
	}
	if p.Health != MaxHealth-5 {
		t.Errorf("player health = %v, want %v", p.Health, MaxHealth-5)
	}

	for i := 1; i < enemyAttackCooldown; i++ {
		e.X, e.Y = p.X, p.Y
		if dealt := e.Update(p, w, rng); dealt != 0 {
			t.Fatalf("attacked again after %d frames", i)
		}
	}
	e.X, e.Y = p.X, p.Y
	if dealt := e.Update(p, w, rng); dealt != 5 {
		t.Errorf("attack after cooldown dealt %d, want 5", dealt)
	}
}

func TestEnemyIgnoresDistantPlayer(t *testing.T) {
	w := sideViewWorld(t)
	p := NewPlayer(w.Spawn(), w.Profile, bareHands)
	rng := rand.New(rand.NewSource(2))
	e := NewEnemyFromDef(zombieDef, p.X-1000, p.Y, p.Level, w.Profile, rng)

	for range 200 {
		if dealt := e.Update(p, w, rng); dealt != 0 {
			t.Fatal("distant enemy attacked")
		}
	}
	if p.Health != MaxHealth {
		t.Errorf("player health = %v, want %v", p.Health, MaxHealth)
	}
}

func TestEnemyChasesTowardPlayer(t *testing.T) {
	w := sideViewWorld(t)
	p := NewPlayer(w.Spawn(), w.Profile, bareHands)
	rng := rand.New(rand.NewSource(3))

	left := NewEnemyFromDef(zombieDef, p.X-100, p.Y, p.Level, w.Profile, rng)
	left.FacingRight = false
	left.Update(p, w, rng)
	if !left.FacingRight {
		t.Error("enemy left of the player did not turn right")
	}

	right := NewEnemyFromDef(zombieDef, p.X+100, p.Y, p.Level, w.Profile, rng)
	right.Update(p, w, rng)
	if right.FacingRight {
		t.Error("enemy right of the player did not turn left")
	}
}

func TestEnemyDamage(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	e := NewEnemyFromDef(zombieDef, 0, 0, world.LevelSurface, world.ProfileSideView, rng)

	if got := e.Damage(-3); got != 0 {
		t.Errorf("Damage(-3) = %d, want 0", got)
	}
	if got := e.Damage(25); got != 25 || !e.Alive() {
		t.Errorf("Damage(25) = %d, alive=%v", got, e.Alive())
	}
	if got := e.Damage(25); got != 5 || e.Alive() {
		t.Errorf("Damage(25) = %d, alive=%v, want 5 and dead", got, e.Alive())
	}
}
