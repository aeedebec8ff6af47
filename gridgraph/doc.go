// Package gridgraph treats a rectangular buffer of cells as a graph, enabling
// component labeling under a fixed connectivity policy.
//
// What:
//
//   - Point and Rect describe integer coordinates and inclusive rectangles.
//   - Connectivity selects Conn4 (orthogonal) or Conn8 (orthogonal + diagonal)
//     adjacency; Offsets returns the matching neighbor deltas.
//   - GridGraph wraps a Width×Height passability predicate and labels its
//     connected components of passable cells.
//   - Chebyshev returns max(|dx|,|dy|), the step cost and heuristic used for
//     8-directional movement.
//
// Why:
//
//   - Sector flood fills: every sector of a large tile grid is labeled
//     independently into regions.
//   - Topology analysis: count enclosed areas and their sizes.
//
// Complexity:
//
//   - Label / ConnectedComponents: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//
// Label values:
//
//   - Blocked (-2): the cell is not passable and never receives a component id.
//   - Unlabeled (-1): transient state of passable cells during labeling.
//   - 0..n-1: component id, assigned in row-major order of each component's
//     first cell.
//
// Labeling uses an explicit worklist instead of recursion, so the call stack
// stays flat for any buffer size.
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrBadConnectivity: unknown Connectivity value.
//   - ErrNilPassable: no passability predicate supplied.
package gridgraph
