package grid

import (
	"github.com/katalvlaran/sectorgrid/astar"
	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// tileGraph exposes the traversable tiles of a grid to astar.Search.
type tileGraph struct{ g *Grid }

func (tg tileGraph) Neighbors(p gridgraph.Point, visit func(gridgraph.Point, int)) {
	for _, d := range gridgraph.Offsets(tg.g.opts.Movement) {
		q := p.Add(d[0], d[1])
		if tg.g.traversable(q) {
			visit(q, gridgraph.Chebyshev(p, q))
		}
	}
}

func (tg tileGraph) Heuristic(p, goal gridgraph.Point) int {
	return gridgraph.Chebyshev(p, goal)
}

// Virtual endpoints of the coarse search.
const (
	coarseStart ThresholdID = -1
	coarseEnd   ThresholdID = -2
)

// coarseGraph is the threshold graph extended with the two query endpoints.
type coarseGraph struct {
	g          *Grid
	start, end gridgraph.Point
	from, to   *Region
}

func (cg coarseGraph) pos(id ThresholdID) gridgraph.Point {
	switch id {
	case coarseStart:
		return cg.start
	case coarseEnd:
		return cg.end
	default:
		return cg.g.thresholds[id].At
	}
}

func (cg coarseGraph) Neighbors(id ThresholdID, visit func(ThresholdID, int)) {
	switch id {
	case coarseStart:
		for _, th := range cg.from.ThresholdNodes() {
			visit(th.ID, gridgraph.Chebyshev(cg.start, th.At))
		}
	case coarseEnd:
	default:
		th := cg.g.thresholds[id]
		for _, l := range th.intra {
			visit(l.To, l.Distance)
		}
		for _, l := range th.inter {
			visit(l.To, l.Distance)
		}
		if th.Region == cg.to.ID {
			visit(coarseEnd, gridgraph.Chebyshev(th.At, cg.end))
		}
	}
}

func (cg coarseGraph) Heuristic(id, _ ThresholdID) int {
	return gridgraph.Chebyshev(cg.pos(id), cg.end)
}

// endpoints validates a query pair and resolves it to coordinates.
func (g *Grid) endpoints(start, end *Tile) (a, b gridgraph.Point, ok bool) {
	if !g.owns(start) || !g.owns(end) || !start.traversable || !end.traversable {
		return a, b, false
	}
	return start.Point(), end.Point(), true
}

// FindPath returns a shortest tile path from start to end using tile-level
// A* with Chebyshev step costs. The path excludes start and includes end.
// When start == end the path is empty and ok is true. A nil, foreign or
// blocked endpoint, or an unreachable end, yields nil and false.
func (g *Grid) FindPath(start, end *Tile) ([]*Tile, bool) {
	a, b, ok := g.endpoints(start, end)
	if !ok {
		return nil, false
	}
	if start == end {
		return []*Tile{}, true
	}
	if g.opts.RoomPrecheck && !g.SameRoom(start, end) {
		return nil, false
	}
	return g.flat(a, b)
}

func (g *Grid) flat(a, b gridgraph.Point) ([]*Tile, bool) {
	g.stats.FlatSearches++
	res, err := astar.Search[gridgraph.Point](tileGraph{g}, a, b)
	if err != nil {
		return nil, false
	}
	return g.toTiles(res.Path), true
}

// FindPathHierarchical first routes through the threshold graph and then
// stitches consecutive waypoints with tile-level A*. The result is a valid
// path with the same reachability as FindPath; it is not always shortest.
// Endpoints in one region, or a failed stitch, fall back to flat search.
func (g *Grid) FindPathHierarchical(start, end *Tile) ([]*Tile, bool) {
	a, b, ok := g.endpoints(start, end)
	if !ok {
		return nil, false
	}
	if start == end {
		return []*Tile{}, true
	}
	if !g.SameRoom(start, end) {
		return nil, false
	}
	from, to := g.GetTileRegion(start), g.GetTileRegion(end)
	if from == to {
		return g.flat(a, b)
	}

	g.stats.HierarchicalSearches++
	coarse, err := astar.Search[ThresholdID](coarseGraph{g: g, start: a, end: b, from: from, to: to}, coarseStart, coarseEnd)
	if err != nil {
		g.log.Warn("coarse route missing inside one room", "from", a.String(), "to", b.String())
		return g.flat(a, b)
	}

	// Waypoints: start, every threshold coordinate on the route, end.
	waypoints := []gridgraph.Point{a}
	for _, id := range coarse.Path {
		p := b
		if id != coarseEnd {
			p = g.thresholds[id].At
		}
		if p != waypoints[len(waypoints)-1] {
			waypoints = append(waypoints, p)
		}
	}

	var path []gridgraph.Point
	for i := 1; i < len(waypoints); i++ {
		seg, err := astar.Search[gridgraph.Point](tileGraph{g}, waypoints[i-1], waypoints[i])
		if err != nil {
			return g.flat(a, b)
		}
		path = append(path, seg.Path...)
	}
	return g.toTiles(path), true
}

// Path dispatches to FindPath or FindPathHierarchical according to
// Options.Strategy.
func (g *Grid) Path(start, end *Tile) ([]*Tile, bool) {
	switch g.opts.Strategy {
	case StrategyFlat:
		return g.FindPath(start, end)
	case StrategyHierarchical:
		return g.FindPathHierarchical(start, end)
	default:
		if g.width*g.height >= g.opts.HierarchicalMinArea {
			return g.FindPathHierarchical(start, end)
		}
		return g.FindPath(start, end)
	}
}

func (g *Grid) toTiles(ps []gridgraph.Point) []*Tile {
	out := make([]*Tile, len(ps))
	for i, p := range ps {
		out[i] = &g.tiles[g.tileIndex(p.X, p.Y)]
	}
	return out
}
