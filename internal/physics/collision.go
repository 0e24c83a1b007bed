// Package physics resolves actor footprints against a tile grid.
package physics

import (
	"math"

	"github.com/samdwyer/cavecrawler/internal/world"
)

// maxPasses bounds how many times one axis is re-scanned after a snap.
const maxPasses = 8

// Tiles is the read side of a level that collision needs. *world.Grid
// satisfies it; out-of-range reads must return a solid tile.
type Tiles interface {
	Get(x, y int) world.Tile
}

// Axis selects which component of motion is being resolved.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate just past the rectangle.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate just past the rectangle.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the rectangle's midpoint.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether the rectangles share any area. Touching edges do
// not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// tileSpan returns the inclusive tile index range covered by r.
func (r Rect) tileSpan(tileSize float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X / tileSize))
	y0 = int(math.Floor(r.Y / tileSize))
	x1 = int(math.Ceil(r.Right()/tileSize)) - 1
	y1 = int(math.Ceil(r.Bottom()/tileSize)) - 1
	return x0, y0, x1, y1
}

// TileRect returns the pixel rectangle of tile (tx, ty).
func TileRect(tx, ty int, tileSize float64) Rect {
	return Rect{X: float64(tx) * tileSize, Y: float64(ty) * tileSize, W: tileSize, H: tileSize}
}

// Contact describes what one Resolve call ran into.
type Contact struct {
	Blocked  bool // At least one solid tile stopped the motion
	Grounded bool // The body landed on something while moving down
	Hits     int  // Snaps applied
}

// Resolve pushes b out of the solid tiles it overlaps after moving along
// axis. The caller has already added the velocity to the position.
//
// Tiles are visited row by row. Each overlapping solid tile snaps the leading
// edge flush against it, and later tiles in the same scan may snap again.
// The scan repeats until nothing overlaps or maxPasses is reached. Any snap
// zeroes the velocity on that axis. Resolving AxisY clears b.Grounded and
// sets it again if the body landed.
func Resolve(b *Body, axis Axis, tiles Tiles, tileSize float64) Contact {
	var c Contact
	v := b.VX
	if axis == AxisY {
		v = b.VY
		b.Grounded = false
	}
	if v == 0 {
		return c
	}

	for range maxPasses {
		snapped := false

		x0, y0, x1, y1 := b.Rect().tileSpan(tileSize)
		switch {
		case axis == AxisX && v > 0:
			x1++
		case axis == AxisX:
			x0--
		case v > 0:
			y1++
		default:
			y0--
		}

		for ty := y0; ty <= y1; ty++ {
			for tx := x0; tx <= x1; tx++ {
				if !tiles.Get(tx, ty).Solid() {
					continue
				}
				tile := TileRect(tx, ty, tileSize)
				if !b.Rect().Overlaps(tile) {
					continue
				}

				b.snap(axis, v, tile)
				snapped = true
				c.Hits++
			}
		}
		if !snapped {
			break
		}
	}

	if c.Hits == 0 {
		return c
	}
	c.Blocked = true
	if axis == AxisX {
		b.VX = 0
		return c
	}
	b.VY = 0
	if v > 0 {
		b.Grounded = true
		c.Grounded = true
	}
	return c
}

// snap moves b so its leading edge on axis rests against tile.
func (b *Body) snap(axis Axis, v float64, tile Rect) {
	switch {
	case axis == AxisX && v > 0:
		b.X = tile.X - b.W
	case axis == AxisX:
		b.X = tile.Right()
	case v > 0:
		b.Y = tile.Y - b.H
	default:
		b.Y = tile.Bottom()
	}
}

// OverlapsSolid reports whether r overlaps any solid tile.
func OverlapsSolid(r Rect, tiles Tiles, tileSize float64) bool {
	x0, y0, x1, y1 := r.tileSpan(tileSize)
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if tiles.Get(tx, ty).Solid() && r.Overlaps(TileRect(tx, ty, tileSize)) {
				return true
			}
		}
	}
	return false
}
