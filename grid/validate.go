package grid

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/sectorgrid/bfs"
	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// Validate recomputes every structural invariant from the tile state and
// compares it with the maintained structures. The first mismatch is
// returned wrapped in ErrInvariant; nil means the grid is consistent.
//
// Checks, in order:
//
//   - partition: every traversable tile is in exactly one region, blocked tiles in none;
//   - regions: one sector each, connected and maximal under region connectivity;
//   - thresholds: each region's set equals the canonical openings it takes part in;
//   - reverse index: exactly the registered (coordinate, region) pairs;
//   - links: intra complete, inter as defined, all symmetric and live;
//   - rooms: equal labels iff connected through region adjacency, counts exact.
//
// Complexity: O(W·H·d + T²) where T is the largest threshold count of a region.
func (g *Grid) Validate() error {
	for _, check := range []func() error{
		g.checkPartition,
		g.checkRegions,
		g.checkThresholds,
		g.checkIndex,
		g.checkLinks,
		g.checkRooms,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func breach(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

func (g *Grid) checkPartition() error {
	seen := 0
	for i := range g.tiles {
		t := &g.tiles[i]
		id := g.tileRegion[i]
		switch {
		case !t.traversable && id != NoRegion:
			return breach("blocked tile %s owned by region %d", t.Point(), id)
		case t.traversable && g.regions[id] == nil:
			return breach("traversable tile %s has no live region", t.Point())
		}
		if t.traversable {
			seen++
		}
	}
	total := 0
	for _, r := range g.regions {
		for _, t := range r.tiles {
			if g.tileRegion[g.tileIndex(t.X, t.Y)] != r.ID {
				return breach("region %d lists tile %s owned by %d", r.ID, t.Point(), g.tileRegion[g.tileIndex(t.X, t.Y)])
			}
		}
		total += len(r.tiles)
	}
	if total != seen {
		return breach("regions hold %d tiles, %d traversable", total, seen)
	}
	return nil
}

func (g *Grid) checkRegions() error {
	for s, ids := range g.sectorRegions {
		for _, id := range ids {
			if r := g.regions[id]; r == nil || r.Sector != s {
				return breach("sector %d lists region %d it does not own", s, id)
			}
		}
	}
	for _, r := range g.regions {
		sec := g.sectors[r.Sector]
		if len(r.tiles) == 0 {
			return breach("region %d is empty", r.ID)
		}
		for _, t := range r.tiles {
			if !sec.Contains(t.Point()) {
				return breach("region %d tile %s outside sector %d", r.ID, t.Point(), r.Sector)
			}
		}

		// Flood from the first tile under region connectivity, staying in the sector.
		inSector := func(p gridgraph.Point) []gridgraph.Point {
			var out []gridgraph.Point
			for _, d := range gridgraph.Offsets(g.opts.RegionConn) {
				if q := p.Add(d[0], d[1]); sec.Contains(q) && g.traversable(q) {
					out = append(out, q)
				}
			}
			return out
		}
		res, err := bfs.BFS(r.tiles[0].Point(), inSector,
			bfs.WithSizeHint[gridgraph.Point](len(r.tiles)),
			bfs.WithOnVisit(func(q gridgraph.Point, _ int) error {
				if g.regionAt(q) != r.ID {
					return breach("region %d is not maximal: reaches %s", r.ID, q)
				}
				return nil
			}))
		if err != nil {
			return err
		}
		if len(res.Order) != len(r.tiles) {
			return breach("region %d is not connected", r.ID)
		}
	}
	return nil
}

// expectedThresholds recomputes the canonical opening coordinates of r.
func (g *Grid) expectedThresholds(r *Region) []gridgraph.Point {
	set := mapset.New[gridgraph.Point]()
	for _, t := range r.tiles {
		p := t.Point()
		for _, d := range gridgraph.Offsets(g.opts.Movement) {
			q := p.Add(d[0], d[1])
			if g.traversable(q) && g.regionAt(q) != r.ID {
				set.Put(opening(p, q))
			}
		}
	}
	out := make([]gridgraph.Point, 0, set.Size())
	set.Each(func(p gridgraph.Point) { out = append(out, p) })
	sortPoints(out)
	return out
}

func (g *Grid) checkThresholds() error {
	for _, r := range g.regions {
		want := g.expectedThresholds(r)
		got := r.Thresholds()
		if len(want) != len(got) {
			return breach("region %d has %d thresholds, want %d", r.ID, len(got), len(want))
		}
		for i := range want {
			if want[i] != got[i] {
				return breach("region %d threshold %s, want %s", r.ID, got[i], want[i])
			}
		}
		for p, id := range r.nodes {
			th := g.thresholds[id]
			if th == nil || th.Region != r.ID || th.At != p || th.Room != r.Room {
				return breach("region %d node at %s is stale", r.ID, p)
			}
		}
	}
	return nil
}

func (g *Grid) checkIndex() error {
	pairs := 0
	for p, set := range g.index {
		if set.Size() == 0 {
			return breach("empty index entry at %s", p)
		}
		var err error
		set.Each(func(id RegionID) {
			if r := g.regions[id]; err == nil && (r == nil || !r.HasThreshold(p)) {
				err = breach("index lists region %d at %s", id, p)
			}
		})
		if err != nil {
			return err
		}
		pairs += set.Size()
	}
	want := 0
	for _, r := range g.regions {
		want += len(r.nodes)
	}
	if pairs != want {
		return breach("index holds %d entries, regions hold %d thresholds", pairs, want)
	}
	return nil
}

func (g *Grid) checkLinks() error {
	live := 0
	for _, r := range g.regions {
		live += len(r.nodes)
	}
	if live != len(g.thresholds) {
		return breach("%d threshold nodes, %d registered", len(g.thresholds), live)
	}
	for _, th := range g.thresholds {
		for _, l := range th.Neighbors() {
			other := g.thresholds[l.To]
			if other == nil {
				return breach("threshold %d links dead node %d", th.ID, l.To)
			}
			if !hasLink(other.Neighbors(), th.ID, l.Distance) {
				return breach("link %d→%d is one-sided", th.ID, l.To)
			}
		}
		if len(th.intra) != len(g.regions[th.Region].nodes)-1 {
			return breach("threshold %d has %d intra links", th.ID, len(th.intra))
		}
		for _, l := range th.intra {
			if other := g.thresholds[l.To]; other.Region != th.Region || l.Distance != gridgraph.Chebyshev(th.At, other.At) {
				return breach("threshold %d intra link %d is wrong", th.ID, l.To)
			}
		}
		wantInter := 0
		var err error
		g.eachInterCandidate(th, func(other *Threshold, d int) {
			wantInter++
			if err == nil && !hasLink(th.inter, other.ID, d) {
				err = breach("threshold %d misses inter link to %d", th.ID, other.ID)
			}
		})
		if err != nil {
			return err
		}
		if wantInter != len(th.inter) {
			return breach("threshold %d has %d inter links, want %d", th.ID, len(th.inter), wantInter)
		}
	}
	return nil
}

func hasLink(links []Link, to ThresholdID, d int) bool {
	for _, l := range links {
		if l.To == to && l.Distance == d {
			return true
		}
	}
	return false
}

func (g *Grid) checkRooms() error {
	counts := make(map[int]int)
	for _, r := range g.regions {
		if r.Room == NoRoom {
			return breach("region %d has no room", r.ID)
		}
		counts[r.Room]++
	}
	if len(counts) != len(g.roomSize) {
		return breach("%d rooms in use, %d counted", len(counts), len(g.roomSize))
	}
	for room, n := range counts {
		if g.roomSize[room] != n {
			return breach("room %d has %d regions, counted %d", room, n, g.roomSize[room])
		}
	}

	// Every component carries one room and no two components share it.
	visited := mapset.New[RegionID]()
	owner := make(map[int]RegionID)
	for _, id := range g.sortedRegionIDs() {
		if visited.Has(id) {
			continue
		}
		room := g.regions[id].Room
		if prev, taken := owner[room]; taken {
			return breach("room %d spans disconnected regions %d and %d", room, prev, id)
		}
		owner[room] = id
		_, err := bfs.BFS(id, g.adjacentRegions, bfs.WithOnVisit(func(cur RegionID, _ int) error {
			visited.Put(cur)
			if r := g.regions[cur].Room; r != room {
				return breach("regions %d and %d are connected but in rooms %d and %d", id, cur, room, r)
			}
			return nil
		}))
		if err != nil {
			return err
		}
	}
	return nil
}

// sortPoints orders ps in place by (y, x).
func sortPoints(ps []gridgraph.Point) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
}
