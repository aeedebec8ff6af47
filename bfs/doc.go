// Package bfs provides breadth-first search over any comparable node type,
// returning unweighted distances, parent links and visit order.
//
// What
//
//   - Explores nodes in non-decreasing edge count from a start node.
//   - The graph is a neighbor function, so callers search their own index
//     structures (region handles, grid points) without building a graph.
//   - Hooks: OnEnqueue on discovery, OnVisit on dequeue (may abort).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds depth.
//
// Determinism
//
//	Neighbors are enqueued in the order the neighbor function returns them,
//	so a function with a stable order gives a reproducible visit sequence.
//
// Complexity (V = nodes reached, E = edges scanned)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, depth and parent maps.
//
// Example:
//
//	res, err := bfs.BFS(1, func(n int) []int { return adj[n] })
//	if err != nil {
//		// handle error
//	}
//	path, _ := res.PathTo(7)
package bfs
