// Package astar provides a generic A* shortest-path search over any graph whose
// nodes are comparable values and whose edge costs are non-negative integers.
//
// Overview:
//
//   - Search expands nodes in order of increasing f = g + h, where g is the cost
//     from the start and h is the caller-supplied heuristic estimate to the goal.
//   - Ties on f are broken by the lower h (prefer nodes closer to the goal), then
//     by insertion order, so results are deterministic for a deterministic graph.
//   - The open set is a binary min-heap with lazy decrease-key: improved entries
//     are pushed again and stale entries are skipped when popped.
//
// When to use:
//
//   - Tile grids: nodes are coordinates, Neighbors yields the passable adjacent
//     cells, Heuristic is the Chebyshev or Manhattan distance.
//   - Abstract graphs: nodes are handles into an arena (threshold graphs,
//     waypoint networks) with cached edge distances.
//
// Heuristic contract:
//
//   - Heuristic(n, goal) must never exceed the true remaining cost (admissible).
//     With a consistent heuristic every node is expanded at most once and the
//     returned path is optimal.
//
// Performance and complexity:
//
//   - Time:  O(E log V) in the worst case (E relaxations, each a heap push).
//   - Space: O(V) for g-scores, parents and the closed set, O(E) heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:  the graph argument is nil.
//   - ErrNoPath:    the open set emptied, or the expansion cap was reached,
//     before the goal was expanded.
//   - ErrBadLimit:  WithMaxExpansions received a negative value (panics).
//
// API reference:
//
//	func Search[N comparable](
//	    g Graph[N],
//	    start, goal N,
//	    opts ...Option,
//	) (Result[N], error)
//
//	  - Result.Path:     nodes after start up to and including goal, forward order.
//	                     Empty (not nil) when start == goal.
//	  - Result.Cost:     total edge cost of Path.
//	  - Result.Expanded: number of nodes popped and expanded.
//
// Thread safety:
//
//   - Search keeps all state local to the call; concurrent searches are safe as
//     long as the Graph implementation tolerates concurrent reads.
package astar
