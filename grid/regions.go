package grid

import (
	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// rebuildSector discards every region of sector s and flood-fills new ones
// from the current tile state. Thresholds of the new regions are not built
// here; callers generate them once all regions are in place.
// Returns the handles of the new regions in creation order.
func (g *Grid) rebuildSector(s int) []RegionID {
	g.stats.SectorRebuilds++
	sec := g.sectors[s]

	// 1) Discard the previous regions of the sector.
	for _, id := range g.sectorRegions[s] {
		g.discardRegion(id)
	}

	// 2) Label the sector-local buffer.
	gg, err := gridgraph.NewGridGraph(sec.Width(), sec.Height(), func(x, y int) bool {
		return g.tiles[g.tileIndex(sec.Lower.X+x, sec.Lower.Y+y)].traversable
	}, gridgraph.GridOptions{Conn: g.opts.RegionConn})
	if err != nil {
		// Sector dimensions and connectivity are validated at construction.
		panic(err)
	}

	// 3) One region per component.
	comps := gg.ConnectedComponents()
	fresh := make([]RegionID, 0, len(comps))
	for _, comp := range comps {
		r := &Region{
			ID:     g.nextRegion,
			Sector: s,
			MinX:   sec.Upper.X,
			MaxX:   sec.Lower.X,
			MinY:   sec.Upper.Y,
			MaxY:   sec.Lower.Y,
			Room:   NoRoom,
			g:      g,
			tiles:  make([]*Tile, 0, len(comp)),
			nodes:  make(map[gridgraph.Point]ThresholdID),
		}
		g.nextRegion++
		for _, li := range comp {
			lx, ly := gg.Coordinate(li)
			x, y := sec.Lower.X+lx, sec.Lower.Y+ly
			t := &g.tiles[g.tileIndex(x, y)]
			r.tiles = append(r.tiles, t)
			g.tileRegion[g.tileIndex(x, y)] = r.ID
			r.MinX, r.MaxX = min(r.MinX, x), max(r.MaxX, x)
			r.MinY, r.MaxY = min(r.MinY, y), max(r.MaxY, y)
		}
		g.regions[r.ID] = r
		fresh = append(fresh, r.ID)
	}
	g.sectorRegions[s] = fresh

	return fresh
}

// discardRegion removes a region together with its thresholds, its tile
// ownership and its room membership.
func (g *Grid) discardRegion(id RegionID) {
	r := g.regions[id]
	if r == nil {
		return
	}
	g.clearThresholds(r)
	for _, t := range r.tiles {
		i := g.tileIndex(t.X, t.Y)
		if g.tileRegion[i] == id {
			g.tileRegion[i] = NoRegion
		}
	}
	g.leaveRoom(r)
	delete(g.regions, id)
}
