package grid_test

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sectorgrid/grid"
	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// ------------------------------------------------------------------------
// 1. Construction
// ------------------------------------------------------------------------

func TestNew_Errors(t *testing.T) {
	_, err := grid.New(0, 5, 2, 2)
	assert.ErrorIs(t, err, grid.ErrBadDimensions)

	_, err = grid.New(5, 5, 0, 2)
	assert.ErrorIs(t, err, grid.ErrBadSectorSize)

	_, err = grid.New(5, 5, 2, 2, grid.WithMovement(gridgraph.Conn4))
	assert.ErrorIs(t, err, grid.ErrConnectivity, "region Conn8 is wider than movement Conn4")

	_, err = grid.New(5, 5, 2, 2, grid.WithMovement(gridgraph.Connectivity(7)))
	assert.ErrorIs(t, err, grid.ErrConnectivity)

	_, err = grid.NewFromSource(nil, 2, 2)
	assert.ErrorIs(t, err, grid.ErrNilSource)

	_, err = grid.NewFromImage(nil, 2, 2)
	assert.ErrorIs(t, err, grid.ErrNilSource)

	assert.PanicsWithValue(t, grid.ErrBadOption.Error(), func() {
		_, _ = grid.New(5, 5, 2, 2, grid.WithHierarchicalMinArea(-1))
	})
}

func TestNew_SectorPartition(t *testing.T) {
	g, err := grid.New(7, 7, 5, 5)
	require.NoError(t, err)

	secs := g.GetSectors()
	require.Len(t, secs, 4)
	assert.Equal(t, grid.Sector{Index: 0, Lower: gridgraph.Point{X: 0, Y: 0}, Upper: gridgraph.Point{X: 4, Y: 4}}, secs[0])
	assert.Equal(t, grid.Sector{Index: 1, Lower: gridgraph.Point{X: 5, Y: 0}, Upper: gridgraph.Point{X: 6, Y: 4}}, secs[1])
	assert.Equal(t, grid.Sector{Index: 3, Lower: gridgraph.Point{X: 5, Y: 5}, Upper: gridgraph.Point{X: 6, Y: 6}}, secs[3])

	// Every tile lies in exactly one sector.
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			n := 0
			for _, s := range secs {
				if s.Contains(gridgraph.Point{X: x, Y: y}) {
					n++
				}
			}
			assert.Equal(t, 1, n, "tile (%d,%d)", x, y)
		}
	}

	s, ok := g.GetTileSector(g.GetTile(6, 6))
	require.True(t, ok)
	assert.Equal(t, 3, s.Index)
	assert.Equal(t, 2, s.Width())
	assert.Equal(t, 2, s.Height())
}

func TestNewFromImage(t *testing.T) {
	// Offset bounds: pixel (Min.X+x, Min.Y+y) is tile (x, y).
	img := image.NewRGBA(image.Rect(2, 3, 6, 5))
	for y := 3; y < 5; y++ {
		for x := 2; x < 6; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(3, 4, color.Black)
	img.Set(5, 3, color.RGBA{R: 255, G: 255, B: 254, A: 255})

	g, err := grid.NewFromImage(img, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.False(t, g.GetTile(1, 1).Traversable())
	assert.False(t, g.GetTile(3, 0).Traversable())
	assert.True(t, g.GetTile(0, 0).Traversable())
	require.NoError(t, g.Validate())
}

func TestTraversablePixel(t *testing.T) {
	assert.True(t, grid.TraversablePixel(color.White))
	assert.True(t, grid.TraversablePixel(color.Gray{Y: 0xff}))
	assert.False(t, grid.TraversablePixel(color.Black))
	assert.False(t, grid.TraversablePixel(color.RGBA{R: 255, G: 255, B: 254, A: 255}), "off-white")
	assert.False(t, grid.TraversablePixel(color.Transparent))
}

// ------------------------------------------------------------------------
// 2. Queries
// ------------------------------------------------------------------------

func TestQueries_Bounds(t *testing.T) {
	g, err := grid.New(4, 3, 2, 2)
	require.NoError(t, err)
	other, err := grid.New(4, 3, 2, 2)
	require.NoError(t, err)

	assert.Nil(t, g.GetTile(-1, 0))
	assert.Nil(t, g.GetTile(4, 0))
	assert.Nil(t, g.GetTile(0, 3))

	foreign := other.GetTile(1, 1)
	assert.Nil(t, g.GetTileRegion(foreign))
	assert.Nil(t, g.GetNeighbors(foreign))
	_, ok := g.GetTileSector(nil)
	assert.False(t, ok)
	assert.Equal(t, grid.NoRoom, g.GetTileRoom(nil))
	assert.Nil(t, g.GetRegionNeighbors(nil))

	// Foreign tiles are never mutated through g.
	g.SetTileTraversable(foreign, false)
	assert.True(t, foreign.Traversable())
	assert.Equal(t, 0, g.Stats().Mutations)
}

func TestGetNeighbors(t *testing.T) {
	g8, err := grid.New(3, 3, 3, 3)
	require.NoError(t, err)
	assert.Len(t, g8.GetNeighbors(g8.GetTile(0, 0)), 3)
	assert.Len(t, g8.GetNeighbors(g8.GetTile(1, 1)), 8)
	assert.Len(t, g8.GetNeighbors(g8.GetTile(1, 0)), 5)

	g4, err := grid.New(3, 3, 3, 3, grid.WithMovement(gridgraph.Conn4), grid.WithRegionConnectivity(gridgraph.Conn4))
	require.NoError(t, err)
	assert.Len(t, g4.GetNeighbors(g4.GetTile(1, 1)), 4)
	assert.Len(t, g4.GetNeighbors(g4.GetTile(0, 0)), 2)

	// Blocked neighbors are still listed.
	g8.SetTileTraversable(g8.GetTile(1, 1), false)
	assert.Contains(t, g8.GetNeighbors(g8.GetTile(0, 0)), g8.GetTile(1, 1))
}

func TestRegion_Accessors(t *testing.T) {
	g, err := grid.NewFromSource(rows{
		"..#.",
		"#.#.",
	}, 4, 2)
	require.NoError(t, err)

	left := g.GetTileRegion(g.GetTile(0, 0))
	require.NotNil(t, left)
	assert.Equal(t, 3, left.Size())
	assert.Equal(t, 0, left.MinX)
	assert.Equal(t, 1, left.MaxX)
	assert.Equal(t, 0, left.MinY)
	assert.Equal(t, 1, left.MaxY)
	assert.True(t, left.Contains(g.GetTile(1, 1)))
	assert.False(t, left.Contains(g.GetTile(0, 1)), "blocked tile inside the bounding box")
	assert.False(t, left.Contains(g.GetTile(3, 0)))
	assert.Nil(t, g.GetTileRegion(g.GetTile(2, 0)))
	assert.Same(t, left, g.Region(left.ID))

	tiles := left.Tiles()
	tiles[0] = nil
	assert.NotNil(t, left.Tiles()[0], "Tiles returns a copy")
}

// ------------------------------------------------------------------------
// 3. Thresholds
// ------------------------------------------------------------------------

func TestThresholds_CanonicalOpening(t *testing.T) {
	// Horizontal opening: the right-hand tile is booked by both sides.
	h, err := grid.New(4, 1, 2, 1)
	require.NoError(t, err)
	regs := h.GetRegions()
	require.Len(t, regs, 2)
	assert.Equal(t, pts(2, 0), regs[0].Thresholds())
	assert.Equal(t, pts(2, 0), regs[1].Thresholds())

	// Vertical opening: the lower tile is booked.
	v, err := grid.New(1, 4, 1, 2)
	require.NoError(t, err)
	regs = v.GetRegions()
	assert.Equal(t, pts(0, 2), regs[0].Thresholds())
	assert.Equal(t, pts(0, 2), regs[1].Thresholds())
}

func TestThresholds_LinksAndStaleHandles(t *testing.T) {
	g, err := grid.New(6, 1, 2, 1)
	require.NoError(t, err)
	regs := g.GetRegions()
	require.Len(t, regs, 3)
	west, mid, east := regs[0], regs[1], regs[2]

	// 1) mid opens at (2,0) onto west and at (4,0) onto east.
	require.Equal(t, pts(2, 0, 4, 0), mid.Thresholds())
	nodes := mid.ThresholdNodes()
	require.Len(t, nodes, 2)
	wn, en := west.ThresholdNodes()[0], east.ThresholdNodes()[0]

	assert.Equal(t, []grid.Link{{To: nodes[1].ID, Distance: 2}}, nodes[0].Intra())
	assert.Equal(t, []grid.Link{{To: wn.ID, Distance: 0}}, nodes[0].Inter())
	assert.Equal(t, []grid.Link{{To: nodes[1].ID, Distance: 2}, {To: wn.ID, Distance: 0}}, nodes[0].Neighbors())
	assert.Equal(t, []grid.Link{{To: en.ID, Distance: 0}}, nodes[1].Inter())
	assert.Equal(t, []grid.Link{{To: nodes[0].ID, Distance: 0}}, wn.Inter())
	assert.Empty(t, wn.Intra())

	// 2) Blocking (3,0) cuts east off; old handles go stale.
	oldMid, oldNode := mid.ID, nodes[1].ID
	g.SetTileTraversable(g.GetTile(3, 0), false)
	require.NoError(t, g.Validate())

	assert.Nil(t, g.Region(oldMid))
	assert.Nil(t, g.Threshold(oldNode))
	assert.Empty(t, east.Thresholds())
	assert.Equal(t, pts(2, 0), g.GetTileRegion(g.GetTile(2, 0)).Thresholds())
	assert.Equal(t, map[int][]grid.RegionID{1: {west.ID, 4}, 2: {east.ID}}, g.Rooms())

	// 3) Reopening merges everything into the lowest of the tied rooms.
	g.SetTileTraversable(g.GetTile(3, 0), true)
	require.NoError(t, g.Validate())
	assert.Equal(t, map[int][]grid.RegionID{1: {west.ID, east.ID, 5}}, g.Rooms())
	for _, r := range g.GetRegions() {
		for _, th := range r.ThresholdNodes() {
			assert.Equal(t, 1, th.Room, "threshold %s carries its region's room", th.At)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Incremental maintenance properties
// ------------------------------------------------------------------------

func TestMutations_RandomizedInvariants(t *testing.T) {
	cases := []struct {
		name     string
		movement gridgraph.Connectivity
		region   gridgraph.Connectivity
	}{
		{"conn8/conn8", gridgraph.Conn8, gridgraph.Conn8},
		{"conn8/conn4", gridgraph.Conn8, gridgraph.Conn4},
		{"conn4/conn4", gridgraph.Conn4, gridgraph.Conn4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.NewFromSource(newNoise(23, 17, 30, 1), 5, 4,
				grid.WithMovement(tc.movement), grid.WithRegionConnectivity(tc.region))
			require.NoError(t, err)
			require.NoError(t, g.Validate())

			r := rand.New(rand.NewSource(2))
			for step := 0; step < 300; step++ {
				tile := g.GetTile(r.Intn(g.Width()), r.Intn(g.Height()))
				g.SetTileTraversable(tile, !tile.Traversable())
				require.NoError(t, g.Validate(), "step %d toggling %s", step, tile.Point())

				// Rooms agree with whole-grid movement connectivity.
				if step%10 == 0 {
					labels := movementLabels(t, g, tc.movement)
					for k := 0; k < 40; k++ {
						a := g.GetTile(r.Intn(g.Width()), r.Intn(g.Height()))
						b := g.GetTile(r.Intn(g.Width()), r.Intn(g.Height()))
						want := a.Traversable() && b.Traversable() &&
							labels[a.Y*g.Width()+a.X] == labels[b.Y*g.Width()+b.X]
						assert.Equal(t, want, g.SameRoom(a, b), "%s ↔ %s", a.Point(), b.Point())
					}
				}
			}
		})
	}
}

func TestSetTileTraversable_Idempotent(t *testing.T) {
	g, err := grid.NewFromSource(newNoise(12, 12, 25, 3), 4, 4)
	require.NoError(t, err)

	before := takeSnapshot(g)
	ids := g.GetRegions()
	stats := g.Stats()
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			tile := g.GetTile(x, y)
			g.SetTileTraversable(tile, tile.Traversable())
		}
	}
	assert.Equal(t, before, takeSnapshot(g))
	assert.Equal(t, ids, g.GetRegions(), "no region was replaced")
	assert.Equal(t, stats, g.Stats())
}

func TestSetTileTraversable_RoundTrip(t *testing.T) {
	g, err := grid.NewFromSource(newNoise(15, 11, 20, 4), 4, 3)
	require.NoError(t, err)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile := g.GetTile(x, y)
			state := tile.Traversable()
			before := takeSnapshot(g)

			g.SetTileTraversable(tile, !state)
			g.SetTileTraversable(tile, state)

			require.Equal(t, before, takeSnapshot(g), "round trip at %s", tile.Point())
		}
	}
	require.NoError(t, g.Validate())
}

func TestMergePolicy_OnlyLabelsChange(t *testing.T) {
	src := newNoise(20, 20, 35, 5)
	majority, err := grid.NewFromSource(src, 5, 5)
	require.NoError(t, err)
	fresh, err := grid.NewFromSource(src, 5, 5, grid.WithMergePolicy(grid.FreshRoom))
	require.NoError(t, err)

	r := rand.New(rand.NewSource(6))
	for step := 0; step < 200; step++ {
		x, y := r.Intn(20), r.Intn(20)
		s := r.Intn(2) == 0
		majority.SetTileTraversable(majority.GetTile(x, y), s)
		fresh.SetTileTraversable(fresh.GetTile(x, y), s)
	}
	require.NoError(t, majority.Validate())
	require.NoError(t, fresh.Validate())
	assert.Equal(t, takeSnapshot(majority), takeSnapshot(fresh))
}

func TestMajorityRoom(t *testing.T) {
	assert.Equal(t, grid.NoRoom, grid.MajorityRoom(nil))
	assert.Equal(t, 7, grid.MajorityRoom(map[int]int{7: 1}))
	assert.Equal(t, 3, grid.MajorityRoom(map[int]int{3: 9, 1: 2}))
	assert.Equal(t, 1, grid.MajorityRoom(map[int]int{3: 5, 1: 5, 7: 2}), "ties go to the lowest id")
	assert.Equal(t, grid.NoRoom, grid.FreshRoom(map[int]int{1: 1}))
}

func TestMergePolicy_InvalidPickFallsBackToFresh(t *testing.T) {
	bogus := func(map[int]int) int { return 12345 }
	g, err := grid.New(6, 1, 2, 1, grid.WithMergePolicy(bogus))
	require.NoError(t, err)

	g.SetTileTraversable(g.GetTile(3, 0), false)
	g.SetTileTraversable(g.GetTile(3, 0), true)
	require.NoError(t, g.Validate())
	assert.NotContains(t, g.Rooms(), 12345)
	assert.Len(t, g.Rooms(), 1)
}

// ------------------------------------------------------------------------
// 5. Pathfinding
// ------------------------------------------------------------------------

func TestFindPath_EdgeCases(t *testing.T) {
	g, err := grid.NewFromSource(rows{
		"...",
		".#.",
		"...",
	}, 3, 3)
	require.NoError(t, err)

	path, ok := g.FindPath(g.GetTile(0, 0), g.GetTile(0, 0))
	assert.True(t, ok)
	assert.NotNil(t, path)
	assert.Empty(t, path)

	_, ok = g.FindPath(g.GetTile(0, 0), g.GetTile(1, 1))
	assert.False(t, ok, "blocked end")
	_, ok = g.FindPath(nil, g.GetTile(1, 1))
	assert.False(t, ok)

	start, end := g.GetTile(0, 0), g.GetTile(2, 2)
	path, ok = g.FindPath(start, end)
	require.True(t, ok)
	assert.Len(t, path, 3)
	requireValidPath(t, g, start, end, path)
}

func TestFindPath_RoomPrecheck(t *testing.T) {
	src := rows{
		"..#..",
		"..#..",
	}
	on, err := grid.NewFromSource(src, 5, 2)
	require.NoError(t, err)
	off, err := grid.NewFromSource(src, 5, 2, grid.WithRoomPrecheck(false))
	require.NoError(t, err)

	_, ok := on.FindPath(on.GetTile(0, 0), on.GetTile(4, 1))
	assert.False(t, ok)
	assert.Equal(t, 0, on.Stats().FlatSearches, "rejected without searching")

	_, ok = off.FindPath(off.GetTile(0, 0), off.GetTile(4, 1))
	assert.False(t, ok)
	assert.Equal(t, 1, off.Stats().FlatSearches)
}

func TestFindPathHierarchical_MatchesFlat(t *testing.T) {
	g, err := grid.NewFromSource(newNoise(48, 40, 28, 8), 8, 8)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	r := rand.New(rand.NewSource(9))
	for k := 0; k < 150; k++ {
		start := g.GetTile(r.Intn(g.Width()), r.Intn(g.Height()))
		end := g.GetTile(r.Intn(g.Width()), r.Intn(g.Height()))

		flat, okFlat := g.FindPath(start, end)
		hier, okHier := g.FindPathHierarchical(start, end)
		require.Equal(t, okFlat, okHier, "%s → %s", start.Point(), end.Point())
		if !okFlat || start == end {
			continue
		}
		requireValidPath(t, g, start, end, hier)
		assert.GreaterOrEqual(t, len(hier), len(flat))
	}
	assert.Positive(t, g.Stats().HierarchicalSearches)
}

func TestPath_Strategy(t *testing.T) {
	small, err := grid.New(10, 10, 5, 5)
	require.NoError(t, err)
	_, ok := small.Path(small.GetTile(0, 0), small.GetTile(9, 9))
	require.True(t, ok)
	assert.Equal(t, 1, small.Stats().FlatSearches, "auto picks flat below the area threshold")
	assert.Equal(t, 0, small.Stats().HierarchicalSearches)

	auto, err := grid.New(10, 10, 5, 5, grid.WithHierarchicalMinArea(100))
	require.NoError(t, err)
	_, ok = auto.Path(auto.GetTile(0, 0), auto.GetTile(9, 9))
	require.True(t, ok)
	assert.Equal(t, 1, auto.Stats().HierarchicalSearches)

	forced, err := grid.New(10, 10, 5, 5, grid.WithStrategy(grid.StrategyFlat), grid.WithHierarchicalMinArea(0))
	require.NoError(t, err)
	_, ok = forced.Path(forced.GetTile(0, 0), forced.GetTile(9, 9))
	require.True(t, ok)
	assert.Equal(t, 0, forced.Stats().HierarchicalSearches)

	assert.Equal(t, "hierarchical", grid.StrategyHierarchical.String())
}

// ------------------------------------------------------------------------
// 6. Logging and stats
// ------------------------------------------------------------------------

func TestLogger_TracesMutations(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g, err := grid.New(4, 4, 2, 2, grid.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "grid built")

	g.SetTileTraversable(g.GetTile(1, 1), false)
	assert.Contains(t, buf.String(), "tile toggled")
	assert.Contains(t, buf.String(), "traversable=false")
}

func TestStats(t *testing.T) {
	g, err := grid.New(10, 10, 5, 5)
	require.NoError(t, err)
	st := g.Stats()
	assert.Equal(t, 4, st.SectorRebuilds)
	assert.Equal(t, 4, st.ThresholdRebuilds)
	assert.Equal(t, 0, st.Mutations)

	g.SetTileTraversable(g.GetTile(2, 2), false)
	st = g.Stats()
	assert.Equal(t, 1, st.Mutations)
	assert.Equal(t, 5, st.SectorRebuilds)
	assert.Positive(t, st.RoomFloods)
}
