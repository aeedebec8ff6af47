// Package grid maintains a hierarchical spatial index over a 2-D tile grid
// and answers path-existence and shortest-path queries on it.
//
// What:
//
//   - Tiles: one per coordinate, traversable or blocked.
//   - Sectors: a static row-major partition into sectorW×sectorH rectangles;
//     edge sectors shrink to fit the grid.
//   - Regions: connected components of traversable tiles inside one sector.
//   - Thresholds: the coordinates where a region opens onto another region,
//     kept as nodes of a weighted graph (intra-region and inter-region links).
//   - Rooms: labels shared by regions that are mutually reachable; two
//     traversable tiles are connected iff their regions share a room.
//
// Why:
//
//   - Flat A* on a large map touches every tile in the worst case. Rooms answer
//     "is there a path" in O(1) and the threshold graph lets a search cross a
//     map in region-sized hops before tile-level A* fills in the steps.
//   - A tile change rebuilds only its own sector, regenerates thresholds of the
//     bordering regions and relabels the touched components.
//
// Openings and thresholds:
//
// Two movement-adjacent traversable tiles a and b in different regions form
// an opening. Its canonical coordinate is the greater of a and b in (y, x)
// order, and that single coordinate enters the threshold sets of both regions.
// Equivalently, a tile registers itself when the outside neighbor lies below
// it, or directly left of it on the same row, and registers the neighbor
// coordinate otherwise. The reverse index maps each coordinate to the regions
// registered there; GetRegionNeighbors is a union over that index.
//
// Options:
//
//   - WithMovement(Conn8|Conn4): step connectivity for paths and openings (Conn8 default).
//   - WithRegionConnectivity(Conn8|Conn4): flood-fill connectivity (Conn8 default);
//     may not be wider than movement, otherwise New returns ErrConnectivity.
//   - WithMergePolicy(p): picks the surviving room when regions merge (MajorityRoom default).
//   - WithStrategy(s), WithHierarchicalMinArea(n): path search selection for Path.
//   - WithRoomPrecheck(bool): FindPath rejects cross-room queries without searching.
//   - WithLogger(*slog.Logger): Debug traces for construction and mutations,
//     Error before an invariant panic.
//
// Handles:
//
// Regions and thresholds live in grid-owned arenas addressed by RegionID and
// ThresholdID. Handles grow monotonically and are never reused, so a handle
// kept across a mutation resolves to nil instead of to an unrelated object.
// *Region and *Threshold values returned by queries are views valid until the
// next SetTileTraversable call.
//
// Complexity:
//
//   - New: O(W·H·d) for labeling plus O(Σ T²) for intra links, T thresholds per region.
//   - SetTileTraversable: O(S·d) for a sector of S tiles plus O(Σ T²) over the
//     regenerated regions plus the size of the relabeled components.
//   - FindPath: O(E log V) over the tiles explored by A*.
//
// Errors:
//
//   - ErrBadDimensions, ErrBadSectorSize, ErrConnectivity, ErrNilSource from constructors.
//   - ErrBadOption panics from options given out-of-domain values.
//   - ErrInvariant: wrapped by Validate; the panic payload when a coordinate
//     resolves to no sector.
//
// Queries never fail on bad input: out-of-grid, nil or foreign tiles yield
// nil, false or NoRoom.
//
// Concurrency:
//
// A Grid is not safe for concurrent use. SetTileTraversable replaces regions
// non-atomically, so callers must serialize it against every other call.
package grid
