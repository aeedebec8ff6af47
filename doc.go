// Package sectorgrid is a hierarchical spatial index for large 2-D tile maps.
// It keeps path-existence and shortest-path queries fast while single tiles
// toggle between traversable and blocked.
//
// What is inside?
//
//	The map is cut into fixed sectors. Each sector is flood-filled into
//	regions, regions are linked through thresholds (the tiles where one
//	region opens onto another), and mutually reachable regions share a room
//	label. A tile change rebuilds one sector and relabels only the touched
//	rooms, so mutation cost follows the sector size rather than the map size.
//
// Packages:
//
//	gridgraph/        coordinates, connectivity (Conn4/Conn8), Chebyshev metric,
//	                  iterative component labeling of a cell buffer
//	astar/            generic A* over any comparable node type
//	bfs/              generic breadth-first search driven by a neighbor function
//	grid/             tiles, sectors, regions, thresholds, rooms; incremental
//	                  maintenance; flat and hierarchical pathfinding; Validate
//	mapgen/           traversability bitmaps: open, Perlin terrain, cross walls, PNG
//	config/           YAML configuration for the tools
//	logging/          log/slog logger construction
//	cmd/sectorbench   random mutation/query workload with timing and invariant checks
//	examples/doors    a door closing and opening between two halls
//
// Quick start:
//
//	g, err := grid.New(512, 512, 16, 16)
//	if err != nil {
//		log.Fatal(err)
//	}
//	g.SetTileTraversable(g.GetTile(10, 10), false)
//	if g.SameRoom(g.GetTile(0, 0), g.GetTile(511, 511)) {
//		path, _ := g.Path(g.GetTile(0, 0), g.GetTile(511, 511))
//		fmt.Println(len(path))
//	}
//
// A Grid is single-writer: serialize SetTileTraversable against every other
// call on the same Grid.
package sectorgrid
