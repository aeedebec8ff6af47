package grid

import (
	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the grid width and height.
func (g *Grid) Size() (w, h int) { return g.width, g.height }

// SectorSize returns the nominal sector width and height.
func (g *Grid) SectorSize() (w, h int) { return g.sectorW, g.sectorH }

// Options returns the options the grid was built with.
func (g *Grid) Options() Options { return g.opts }

// GetTile returns the tile at (x, y), or nil outside the grid.
func (g *Grid) GetTile(x, y int) *Tile {
	if !g.inBounds(x, y) {
		return nil
	}
	return &g.tiles[g.tileIndex(x, y)]
}

// GetNeighbors returns the in-bounds movement neighbors of t regardless of
// traversability: up to 8 under Conn8, up to 4 under Conn4.
func (g *Grid) GetNeighbors(t *Tile) []*Tile {
	if !g.owns(t) {
		return nil
	}
	offs := gridgraph.Offsets(g.opts.Movement)
	out := make([]*Tile, 0, len(offs))
	for _, d := range offs {
		if nb := g.GetTile(t.X+d[0], t.Y+d[1]); nb != nil {
			out = append(out, nb)
		}
	}
	return out
}

// GetTileSector returns the sector containing t. ok is false for a nil or
// foreign tile.
func (g *Grid) GetTileSector(t *Tile) (s Sector, ok bool) {
	if !g.owns(t) {
		return Sector{}, false
	}
	return g.sectors[g.sectorOf(t.Point())], true
}

// GetTileRegion returns the region containing t, or nil for a blocked,
// nil or foreign tile.
func (g *Grid) GetTileRegion(t *Tile) *Region {
	if !g.owns(t) {
		return nil
	}
	return g.regions[g.tileRegion[g.tileIndex(t.X, t.Y)]]
}

// GetTileRoom returns the room of t, or NoRoom when t has no region.
func (g *Grid) GetTileRoom(t *Tile) int {
	if r := g.GetTileRegion(t); r != nil {
		return r.Room
	}
	return NoRoom
}

// SameRoom reports whether a and b are both traversable and share a room.
// It is a necessary and sufficient condition for a path between them.
func (g *Grid) SameRoom(a, b *Tile) bool {
	ra, rb := g.GetTileRegion(a), g.GetTileRegion(b)
	return ra != nil && rb != nil && ra.Room == rb.Room
}

// GetRegionNeighbors returns the regions sharing a threshold coordinate
// with r, ordered by handle.
func (g *Grid) GetRegionNeighbors(r *Region) []*Region {
	if r == nil || g.regions[r.ID] != r {
		return nil
	}
	ids := g.neighborIDs(r)
	out := make([]*Region, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.regions[id])
	}
	return out
}

// GetSectors returns a copy of all sectors in row-major order.
func (g *Grid) GetSectors() []Sector {
	return append([]Sector(nil), g.sectors...)
}

// GetRegions returns every live region ordered by handle.
func (g *Grid) GetRegions() []*Region {
	ids := g.sortedRegionIDs()
	out := make([]*Region, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.regions[id])
	}
	return out
}

// SectorRegions returns the live regions of sector s, or nil for an unknown index.
func (g *Grid) SectorRegions(s int) []*Region {
	if s < 0 || s >= len(g.sectorRegions) {
		return nil
	}
	out := make([]*Region, 0, len(g.sectorRegions[s]))
	for _, id := range g.sectorRegions[s] {
		out = append(out, g.regions[id])
	}
	return out
}

// Region resolves a handle; stale handles yield nil.
func (g *Grid) Region(id RegionID) *Region { return g.regions[id] }

// Threshold resolves a handle; stale handles yield nil.
func (g *Grid) Threshold(id ThresholdID) *Threshold { return g.thresholds[id] }

// ThresholdCount returns the number of live threshold nodes.
func (g *Grid) ThresholdCount() int { return len(g.thresholds) }

// Rooms maps every room id to its regions, ordered by handle.
func (g *Grid) Rooms() map[int][]RegionID {
	out := make(map[int][]RegionID, len(g.roomSize))
	for _, id := range g.sortedRegionIDs() {
		r := g.regions[id]
		out[r.Room] = append(out[r.Room], id)
	}
	return out
}

// Stats returns the work counters accumulated since construction.
func (g *Grid) Stats() Stats { return g.stats }
