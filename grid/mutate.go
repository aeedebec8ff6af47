package grid

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// SetTileTraversable changes the traversability of t and brings regions,
// thresholds and rooms back in line with it. Only the tile's sector is
// rebuilt; thresholds are regenerated for regions whose openings may have
// changed; rooms are relabeled for the components touched by the change.
//
// It is a no-op when t is nil, does not belong to g, or already has state s.
func (g *Grid) SetTileTraversable(t *Tile, s bool) {
	if !g.owns(t) || t.traversable == s {
		return
	}
	g.stats.Mutations++
	p := t.Point()
	sec := g.sectorOf(p)

	// 1) Mutate.
	t.traversable = s

	// 2) Remember who bordered the sector before it is torn down.
	affected := mapset.New[RegionID]()
	for _, id := range g.sectorRegions[sec] {
		for _, nb := range g.neighborIDs(g.regions[id]) {
			affected.Put(nb)
		}
	}
	var prior []RegionID
	if !s {
		prior = g.regionsAt(p)
	}

	// 3) Rebuild the sector.
	fresh := g.rebuildSector(sec)
	for _, id := range fresh {
		g.generateThresholds(g.regions[id])
		affected.Put(id)
	}

	// 4) Regenerate thresholds of regions whose openings touch p.
	regen := mapset.New[RegionID]()
	for _, id := range prior {
		regen.Put(id)
	}
	for _, d := range gridgraph.Offsets(g.opts.Movement) {
		q := p.Add(d[0], d[1])
		if g.traversable(q) {
			regen.Put(g.regionAt(q))
		}
	}
	for _, id := range sortedIDs(regen) {
		r := g.regions[id]
		if r == nil || r.Sector == sec {
			continue
		}
		g.generateThresholds(r)
		affected.Put(id)
	}

	// 5) Relabel rooms of the touched components.
	g.relabel(affected, !s)

	g.log.Debug("tile toggled",
		"x", t.X, "y", t.Y, "traversable", s,
		"sector", sec, "regions", len(fresh), "affected", affected.Size())
}

func sortedIDs(set mapset.Set[RegionID]) []RegionID {
	ids := make([]RegionID, 0, set.Size())
	set.Each(func(id RegionID) { ids = append(ids, id) })
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
