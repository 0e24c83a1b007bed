package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Region is a 4-connected group of open tiles.
type Region struct {
	Size int   `json:"size"`
	Seed Point `json:"seed"` // First cell reached, in scan order
}

var neighbors4 = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// OpenRegions flood-fills every open cell at or below fromRow and returns the
// connected regions, largest first. Ties keep scan order.
func OpenRegions(grid *Grid, fromRow int, isOpen func(Tile) bool) []Region {
	visited := mapset.New[Point]()
	var regions []Region

	for y := max(fromRow, 0); y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			start := Point{x, y}
			if visited.Has(start) || !isOpen(grid.Get(x, y)) {
				continue
			}
			regions = append(regions, Region{
				Size: floodFill(grid, start, fromRow, isOpen, visited),
				Seed: start,
			})
		}
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Size > regions[j].Size
	})
	return regions
}

// floodFill marks the region containing start and returns its size.
func floodFill(grid *Grid, start Point, fromRow int, isOpen func(Tile) bool, visited mapset.Set[Point]) int {
	queue := []Point{start}
	visited.Put(start)
	size := 0

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		size++

		for _, d := range neighbors4 {
			n := Point{p.X + d.X, p.Y + d.Y}
			if n.Y < fromRow || visited.Has(n) || !isOpen(grid.Get(n.X, n.Y)) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return size
}
