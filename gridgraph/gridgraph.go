// Package gridgraph provides utilities to treat a rectangular buffer of cells
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of passable cells
//   - The Chebyshev metric for 8-directional movement
package gridgraph

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor deltas for c. The returned slice is shared and
// must not be modified. Unknown values fall back to Conn4.
func Offsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Chebyshev returns max(|dx|,|dy|) between a and b.
func Chebyshev(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// Adjacent reports whether a and b are distinct cells one step apart under c.
func Adjacent(a, b Point, c Connectivity) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return false
	}
	return c == Conn8 || dx == 0 || dy == 0
}

// NewGridGraph samples passable(x, y) for every cell of a width×height buffer.
// Returns ErrEmptyGrid for non-positive dimensions, ErrNilPassable if passable
// is nil and ErrBadConnectivity for an unknown opts.Conn.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(width, height int, passable func(x, y int) bool, opts GridOptions) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if passable == nil {
		return nil, ErrNilPassable
	}
	if !opts.Conn.Valid() {
		return nil, ErrBadConnectivity
	}
	cells := make([]bool, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = passable(x, y)
		}
	}

	return &GridGraph{
		Width:           width,
		Height:          height,
		Conn:            opts.Conn,
		passable:        cells,
		neighborOffsets: Offsets(opts.Conn),
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is in bounds and passable.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.passable[gg.index(x, y)]
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
