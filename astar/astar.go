// Package astar implements A* search over generic graphs.
//
// Notes on implementation choices:
//
//   - The open set is a zyedidia/generic min-heap ordered by (f, h, seq).
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and skipping entries that are closed or carry an outdated g.
//   - The goal test happens when a node is popped, not when it is pushed,
//     so the returned path is optimal for admissible heuristics.
package astar

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Search finds a least-cost path from start to goal in g.
//
// Returns:
//
//   - Result with Path excluding start and including goal, in forward order.
//   - ErrNilGraph if g is nil.
//   - ErrNoPath if goal is unreachable or the expansion cap was reached.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V + E)
func Search[N comparable](g Graph[N], start, goal N, opts ...Option) (Result[N], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return Result[N]{}, ErrNilGraph
	}

	// 3) Initialize runner state and run the main loop.
	r := &runner[N]{
		g:      g,
		goal:   goal,
		opts:   cfg,
		gScore: make(map[N]int),
		parent: make(map[N]N),
		closed: mapset.New[N](),
		open:   heap.New[node[N]](lessNode[N]),
	}
	r.init(start)

	return r.process(start)
}

// node is an open-set entry: a graph node with the g and h it was pushed with.
type node[N comparable] struct {
	id  N
	g   int
	h   int
	seq int
}

// lessNode orders entries by lowest f, then lowest h, then earliest push.
func lessNode[N comparable](a, b node[N]) bool {
	fa, fb := a.g+a.h, b.g+b.h
	if fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// runner holds the mutable state for a single search.
type runner[N comparable] struct {
	g        Graph[N]
	goal     N
	opts     Options
	gScore   map[N]int
	parent   map[N]N
	closed   mapset.Set[N]
	open     *heap.Heap[node[N]]
	seq      int
	expanded int
}

// init records start with g=0 and pushes it onto the open set.
func (r *runner[N]) init(start N) {
	r.gScore[start] = 0
	r.push(start, 0)
}

func (r *runner[N]) push(id N, g int) {
	r.open.Push(node[N]{id: id, g: g, h: r.g.Heuristic(id, r.goal), seq: r.seq})
	r.seq++
}

// process pops the best entry until the goal is expanded or the open set is empty.
func (r *runner[N]) process(start N) (Result[N], error) {
	for r.open.Size() > 0 {
		cur, _ := r.open.Pop()

		// Skip stale entries.
		if r.closed.Has(cur.id) || cur.g > r.gScore[cur.id] {
			continue
		}
		r.closed.Put(cur.id)
		r.expanded++

		if cur.id == r.goal {
			return Result[N]{
				Path:     r.retrace(start),
				Cost:     cur.g,
				Expanded: r.expanded,
			}, nil
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			break
		}

		r.relax(cur)
	}

	return Result[N]{Expanded: r.expanded}, ErrNoPath
}

// relax pushes every neighbor of cur whose g-score improves.
func (r *runner[N]) relax(cur node[N]) {
	r.g.Neighbors(cur.id, func(next N, cost int) {
		if r.closed.Has(next) {
			return
		}
		ng := cur.g + cost
		if old, seen := r.gScore[next]; seen && ng >= old {
			return
		}
		r.gScore[next] = ng
		r.parent[next] = cur.id
		r.push(next, ng)
	})
}

// retrace walks parent links back from the goal, excluding start.
func (r *runner[N]) retrace(start N) []N {
	path := make([]N, 0, 16)
	for at := r.goal; at != start; at = r.parent[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
