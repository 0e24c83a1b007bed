// Package game runs a play session: the simulation step, player actions and
// the terminal loop around them.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying advances the simulation every frame.
	StatePlaying State = iota
	// StatePaused freezes the simulation.
	StatePaused
	// StateDead is entered when the player's health reaches zero.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
