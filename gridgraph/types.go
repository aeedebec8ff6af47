// Package gridgraph defines core types, options, and label sentinels
// for the gridgraph subpackage of github.com/katalvlaran/sectorgrid.
package gridgraph

import "fmt"

// Label sentinels stored in a label buffer.
const (
	// Unlabeled marks a passable cell that has not been reached yet.
	Unlabeled = -1
	// Blocked marks a cell that is not passable.
	Blocked = -2
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// String returns "conn4", "conn8" or "conn(?)".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("conn(%d)", int(c))
	}
}

// ParseConnectivity maps "4", "conn4", "8", "conn8" to a Connectivity.
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4", "conn4":
		return Conn4, nil
	case "8", "conn8":
		return Conn8, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadConnectivity, s)
	}
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Less orders points by row first, then column: (y, x) ascending.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an inclusive rectangle: both Min and Max lie inside it.
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int { return r.Max.X - r.Min.X + 1 }

// Height returns the number of rows covered by r.
func (r Rect) Height() int { return r.Max.Y - r.Min.Y + 1 }

// Area returns Width×Height.
func (r Rect) Area() int { return r.Width() * r.Height() }

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn8,
	}
}

// GridGraph treats a Width×Height buffer of cells as a graph.
// Passability is sampled once at construction; the graph is immutable after that.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	passable        []bool
	neighborOffsets [][2]int
}
