package gamedata

import (
	"errors"
	"math/rand"
)

// EnemyRegistry holds loaded enemy definitions and picks spawns by weight.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects an enemy definition with probability proportional to
// its spawnWeight. It returns nil if no enemy has a positive weight.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}
	return &r.enemies[0]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// ToolRegistry
// =============================================================================

// ToolRegistry holds tool definitions in upgrade order.
type ToolRegistry struct {
	tools map[string]*ToolDef
	all   []ToolDef
}

// NewToolRegistry creates a registry from loaded tool definitions.
func NewToolRegistry(tools []ToolDef) *ToolRegistry {
	registry := &ToolRegistry{
		tools: make(map[string]*ToolDef),
		all:   tools,
	}
	for i := range tools {
		registry.tools[tools[i].ID] = &tools[i]
	}
	return registry
}

// LoadToolRegistry loads and creates a registry from the embedded tools.json.
func LoadToolRegistry() (*ToolRegistry, error) {
	tools, err := LoadTools()
	if err != nil {
		return nil, err
	}
	registry := NewToolRegistry(tools)
	if registry.GetByID(NoTool) == nil {
		return nil, errors.New("tools.json has no bare-hands tool")
	}
	return registry, nil
}

// MustLoadToolRegistry loads a registry, panicking on error.
func MustLoadToolRegistry() *ToolRegistry {
	registry, err := LoadToolRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the tool definition with the given ID, or nil if not found.
func (r *ToolRegistry) GetByID(id string) *ToolDef {
	return r.tools[id]
}

// All returns all tool definitions.
func (r *ToolRegistry) All() []ToolDef {
	return r.all
}

// Count returns the number of tools in the registry.
func (r *ToolRegistry) Count() int {
	return len(r.all)
}
