// Package combat resolves melee strikes between the player and enemies.
package combat

import "fmt"

// Combatant is anything that can be struck.
type Combatant interface {
	// Identity
	Name() string
	Alive() bool

	// Position of the footprint's top-left corner, in pixels.
	Position() (x, y float64)

	// Damage applies amount and returns the damage actually taken.
	Damage(amount int) int
}

// StrikeResult contains the outcome of one swing.
type StrikeResult struct {
	Success bool
	Damage  int    // Damage actually dealt
	Killed  bool   // True if the strike brought the target to zero
	Message string // Human-readable description
}

// Strike applies power to target. A swing with no power (still recovering)
// or at a dead target does nothing.
func Strike(power int, target Combatant) StrikeResult {
	if target == nil || !target.Alive() {
		return StrikeResult{Message: "Nothing to hit."}
	}
	if power <= 0 {
		return StrikeResult{Message: "Too tired to swing."}
	}

	dealt := target.Damage(power)
	result := StrikeResult{
		Success: true,
		Damage:  dealt,
		Killed:  !target.Alive(),
		Message: fmt.Sprintf("You hit the %s for %d.", target.Name(), dealt),
	}
	if result.Killed {
		result.Message = fmt.Sprintf("You killed the %s!", target.Name())
	}
	return result
}

// Nearest returns the living target closest to (x, y) within reach, or nil.
// Ties go to the earliest target.
func Nearest[T Combatant](targets []T, x, y, reach float64) (T, bool) {
	var best T
	found := false
	bestDist := reach * reach
	for _, t := range targets {
		if !t.Alive() {
			continue
		}
		tx, ty := t.Position()
		d := (tx-x)*(tx-x) + (ty-y)*(ty-y)
		if d <= bestDist && (!found || d < bestDist) {
			best, bestDist, found = t, d, true
		}
	}
	return best, found
}
