// Package grid defines the tile, sector, region and threshold types
// together with the handles that address them.
package grid

import (
	"sort"

	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// NoRoom is the room label of a region that has not been labeled yet.
const NoRoom = -1

// RegionID is a stable handle of a Region. Handles grow monotonically and
// are never reused; zero is never a valid handle.
type RegionID int

// NoRegion is the zero RegionID.
const NoRegion RegionID = 0

// ThresholdID is a stable handle of a Threshold; zero is never valid.
type ThresholdID int

// Tile is a single grid cell. The grid owns exactly one Tile per coordinate
// for its whole lifetime, so *Tile values may be compared by identity.
// Traversability changes only through Grid.SetTileTraversable.
type Tile struct {
	X, Y        int
	traversable bool
}

// Traversable reports whether the tile can be walked on.
func (t *Tile) Traversable() bool { return t.traversable }

// Point returns the tile coordinate.
func (t *Tile) Point() gridgraph.Point { return gridgraph.Point{X: t.X, Y: t.Y} }

// Sector is a static rectangle of the grid. Lower and Upper are inclusive.
type Sector struct {
	Index        int
	Lower, Upper gridgraph.Point
}

// Contains reports whether p lies inside the sector.
func (s Sector) Contains(p gridgraph.Point) bool {
	return s.Rect().Contains(p)
}

// Rect returns the sector bounds as a gridgraph.Rect.
func (s Sector) Rect() gridgraph.Rect {
	return gridgraph.Rect{Min: s.Lower, Max: s.Upper}
}

// Width returns the number of columns in the sector.
func (s Sector) Width() int { return s.Upper.X - s.Lower.X + 1 }

// Height returns the number of rows in the sector.
func (s Sector) Height() int { return s.Upper.Y - s.Lower.Y + 1 }

// Region is a maximal connected set of traversable tiles inside one sector.
//
// A Region is replaced wholesale whenever a tile of its sector changes;
// only its thresholds and its room label are updated in place.
type Region struct {
	ID     RegionID
	Sector int

	// Bounding box of the member tiles.
	MinX, MaxX, MinY, MaxY int

	// Room is the connectivity label, NoRoom until labeled.
	Room int

	g     *Grid
	tiles []*Tile
	nodes map[gridgraph.Point]ThresholdID
}

// Size returns the number of tiles in the region.
func (r *Region) Size() int { return len(r.tiles) }

// Tiles returns the member tiles in row-major order. The slice is fresh.
func (r *Region) Tiles() []*Tile {
	out := make([]*Tile, len(r.tiles))
	copy(out, r.tiles)
	return out
}

// Contains reports whether t is a member of r.
func (r *Region) Contains(t *Tile) bool {
	if t == nil || t.X < r.MinX || t.X > r.MaxX || t.Y < r.MinY || t.Y > r.MaxY {
		return false
	}
	return r.g.owns(t) && r.g.tileRegion[r.g.tileIndex(t.X, t.Y)] == r.ID
}

// Thresholds returns the threshold coordinates of r in (y, x) order.
func (r *Region) Thresholds() []gridgraph.Point {
	out := make([]gridgraph.Point, 0, len(r.nodes))
	for p := range r.nodes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// ThresholdNodes returns the threshold nodes of r in coordinate order.
func (r *Region) ThresholdNodes() []*Threshold {
	pts := r.Thresholds()
	out := make([]*Threshold, 0, len(pts))
	for _, p := range pts {
		out = append(out, r.g.thresholds[r.nodes[p]])
	}
	return out
}

// HasThreshold reports whether p is in the threshold set of r.
func (r *Region) HasThreshold(p gridgraph.Point) bool {
	_, ok := r.nodes[p]
	return ok
}

// Link is a weighted edge between two threshold nodes.
type Link struct {
	To       ThresholdID
	Distance int
}

// Threshold is a node of the region adjacency graph: one threshold coordinate
// of one region.
//
// Intra links join every other threshold of the same region with the
// Chebyshev distance between the coordinates. Inter links join thresholds of
// other regions registered at the same coordinate (distance 0) or one
// movement step away (distance 1). All links are symmetric.
type Threshold struct {
	ID     ThresholdID
	Region RegionID
	At     gridgraph.Point
	Room   int

	intra []Link
	inter []Link
}

// Intra returns a copy of the same-region links.
func (t *Threshold) Intra() []Link { return append([]Link(nil), t.intra...) }

// Inter returns a copy of the cross-region links.
func (t *Threshold) Inter() []Link { return append([]Link(nil), t.inter...) }

// Neighbors returns intra links followed by inter links as a fresh slice.
func (t *Threshold) Neighbors() []Link {
	out := make([]Link, 0, len(t.intra)+len(t.inter))
	out = append(out, t.intra...)
	return append(out, t.inter...)
}

func (t *Threshold) unlink(id ThresholdID) {
	t.intra = dropLink(t.intra, id)
	t.inter = dropLink(t.inter, id)
}

func dropLink(links []Link, id ThresholdID) []Link {
	for i, l := range links {
		if l.To == id {
			return append(links[:i], links[i+1:]...)
		}
	}
	return links
}

// Stats counts the work performed by a Grid since construction.
type Stats struct {
	Mutations            int
	SectorRebuilds       int
	ThresholdRebuilds    int
	RoomFloods           int
	FlatSearches         int
	HierarchicalSearches int
}
