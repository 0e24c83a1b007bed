package physics

// Platformer motion constants, in pixels per frame.
const (
	Gravity      = 0.8
	MaxFallSpeed = 20.0
)

// Body is a moving footprint. Position is the top-left corner.
type Body struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Grounded bool
}

// Rect returns the body's current footprint.
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the footprint midpoint.
func (b *Body) Center() (float64, float64) {
	return b.Rect().Center()
}

// Motion is the outcome of one step, one contact per axis.
type Motion struct {
	X, Y Contact
}

// StepPlatformer applies gravity, then moves and resolves horizontally, then
// vertically.
func StepPlatformer(b *Body, tiles Tiles, tileSize float64) Motion {
	b.VY = min(b.VY+Gravity, MaxFallSpeed)
	return step(b, tiles, tileSize)
}

// StepTopDown moves and resolves horizontally, then vertically, with no
// gravity.
func StepTopDown(b *Body, tiles Tiles, tileSize float64) Motion {
	return step(b, tiles, tileSize)
}

func step(b *Body, tiles Tiles, tileSize float64) Motion {
	var m Motion
	b.X += b.VX
	m.X = Resolve(b, AxisX, tiles, tileSize)
	b.Y += b.VY
	m.Y = Resolve(b, AxisY, tiles, tileSize)
	return m
}
