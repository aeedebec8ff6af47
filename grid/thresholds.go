package grid

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// opening returns the canonical coordinate of the opening between a and b:
// the greater of the two in (y, x) order. Both regions of the opening
// register this single coordinate.
func opening(a, b gridgraph.Point) gridgraph.Point {
	if a.Less(b) {
		return b
	}
	return a
}

// generateThresholds rebuilds the threshold set and threshold nodes of r.
func (g *Grid) generateThresholds(r *Region) {
	g.stats.ThresholdRebuilds++
	g.clearThresholds(r)

	// 1) Collect canonical opening coordinates.
	found := mapset.New[gridgraph.Point]()
	for _, t := range r.tiles {
		p := t.Point()
		for _, d := range gridgraph.Offsets(g.opts.Movement) {
			q := p.Add(d[0], d[1])
			if !g.traversable(q) || g.regionAt(q) == r.ID {
				continue
			}
			found.Put(opening(p, q))
		}
	}
	coords := make([]gridgraph.Point, 0, found.Size())
	found.Each(func(p gridgraph.Point) { coords = append(coords, p) })
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })

	// 2) Register in the reverse index and create nodes.
	created := make([]*Threshold, 0, len(coords))
	for _, c := range coords {
		set, ok := g.index[c]
		if !ok {
			set = mapset.New[RegionID]()
			g.index[c] = set
		}
		set.Put(r.ID)

		th := &Threshold{ID: g.nextThreshold, Region: r.ID, At: c, Room: r.Room}
		g.nextThreshold++
		g.thresholds[th.ID] = th
		r.nodes[c] = th.ID
		created = append(created, th)
	}

	// 3) Intra links: complete graph with Chebyshev distances.
	for i := 0; i < len(created); i++ {
		for j := i + 1; j < len(created); j++ {
			a, b := created[i], created[j]
			d := gridgraph.Chebyshev(a.At, b.At)
			a.intra = append(a.intra, Link{To: b.ID, Distance: d})
			b.intra = append(b.intra, Link{To: a.ID, Distance: d})
		}
	}

	// 4) Inter links to other regions at the same or an adjacent coordinate.
	for _, th := range created {
		g.eachInterCandidate(th, func(other *Threshold, d int) {
			th.inter = append(th.inter, Link{To: other.ID, Distance: d})
			other.inter = append(other.inter, Link{To: th.ID, Distance: d})
		})
	}
}

// eachInterCandidate calls fn for every threshold of a region other than
// th.Region registered at th.At or one movement step from it, in a fixed order.
func (g *Grid) eachInterCandidate(th *Threshold, fn func(other *Threshold, d int)) {
	at := th.At
	for k := -1; k < len(gridgraph.Offsets(g.opts.Movement)); k++ {
		q := at
		if k >= 0 {
			d := gridgraph.Offsets(g.opts.Movement)[k]
			q = at.Add(d[0], d[1])
		}
		for _, rid := range g.regionsAt(q) {
			if rid == th.Region {
				continue
			}
			other := g.thresholds[g.regions[rid].nodes[q]]
			fn(other, gridgraph.Chebyshev(at, q))
		}
	}
}

// clearThresholds unregisters every threshold coordinate of r and deletes
// its nodes, unlinking them from their neighbors.
func (g *Grid) clearThresholds(r *Region) {
	for c, id := range r.nodes {
		if set, ok := g.index[c]; ok {
			set.Remove(r.ID)
			if set.Size() == 0 {
				delete(g.index, c)
			}
		}
		g.killThreshold(id)
	}
	r.nodes = make(map[gridgraph.Point]ThresholdID)
}

func (g *Grid) killThreshold(id ThresholdID) {
	th := g.thresholds[id]
	if th == nil {
		return
	}
	for _, l := range th.Neighbors() {
		if other := g.thresholds[l.To]; other != nil {
			other.unlink(id)
		}
	}
	delete(g.thresholds, id)
}

// regionsAt returns the regions registered at p in the reverse index, sorted.
func (g *Grid) regionsAt(p gridgraph.Point) []RegionID {
	set, ok := g.index[p]
	if !ok {
		return nil
	}
	out := make([]RegionID, 0, set.Size())
	set.Each(func(id RegionID) { out = append(out, id) })
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// neighborIDs returns the regions sharing a threshold coordinate with r, sorted.
func (g *Grid) neighborIDs(r *Region) []RegionID {
	seen := mapset.New[RegionID]()
	for c := range r.nodes {
		if set, ok := g.index[c]; ok {
			set.Each(func(id RegionID) {
				if id != r.ID {
					seen.Put(id)
				}
			})
		}
	}
	out := make([]RegionID, 0, seen.Size())
	seen.Each(func(id RegionID) { out = append(out, id) })
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
