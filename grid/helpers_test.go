package grid_test

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sectorgrid/grid"
	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// rows is a Source over strings of '.' (traversable) and '#' (blocked), rows[y][x].
type rows []string

func (r rows) Size() (int, int) { return len(r[0]), len(r) }

func (r rows) Traversable(x, y int) bool { return r[y][x] == '.' }

// noise is a Source with roughly pct percent blocked cells.
type noise struct {
	w, h  int
	cells []bool
}

func newNoise(w, h int, pct int, seed int64) noise {
	r := rand.New(rand.NewSource(seed))
	n := noise{w: w, h: h, cells: make([]bool, w*h)}
	for i := range n.cells {
		n.cells[i] = r.Intn(100) >= pct
	}
	return n
}

func (n noise) Size() (int, int) { return n.w, n.h }

func (n noise) Traversable(x, y int) bool { return n.cells[y*n.w+x] }

func pts(ps ...int) []gridgraph.Point {
	out := make([]gridgraph.Point, 0, len(ps)/2)
	for i := 0; i+1 < len(ps); i += 2 {
		out = append(out, gridgraph.Point{X: ps[i], Y: ps[i+1]})
	}
	return out
}

// snapshot is a handle-free view of the grid structure: region tile sets,
// their threshold coordinates and the room partition.
type snapshot struct {
	Regions    []string
	Thresholds map[string]string
	Rooms      []string
}

func regionKey(r *grid.Region) string {
	return fmt.Sprintf("%s#%d", r.Tiles()[0].Point(), r.Size())
}

func takeSnapshot(g *grid.Grid) snapshot {
	s := snapshot{Thresholds: make(map[string]string)}
	byRoom := make(map[int][]string)
	for _, r := range g.GetRegions() {
		k := regionKey(r)
		s.Regions = append(s.Regions, k)
		s.Thresholds[k] = fmt.Sprint(r.Thresholds())
		byRoom[r.Room] = append(byRoom[r.Room], k)
	}
	sort.Strings(s.Regions)
	for _, keys := range byRoom {
		sort.Strings(keys)
		s.Rooms = append(s.Rooms, strings.Join(keys, " "))
	}
	sort.Strings(s.Rooms)
	return s
}

// movementLabels labels the whole grid under conn, ignoring sectors.
func movementLabels(t *testing.T, g *grid.Grid, conn gridgraph.Connectivity) []int {
	t.Helper()
	gg, err := gridgraph.NewGridGraph(g.Width(), g.Height(), func(x, y int) bool {
		return g.GetTile(x, y).Traversable()
	}, gridgraph.GridOptions{Conn: conn})
	require.NoError(t, err)
	labels, _ := gg.Label()
	return labels
}

// requireValidPath checks that path walks from start to end in movement steps
// over traversable tiles.
func requireValidPath(t *testing.T, g *grid.Grid, start, end *grid.Tile, path []*grid.Tile) {
	t.Helper()
	conn := g.Options().Movement
	require.NotEmpty(t, path)
	require.Same(t, end, path[len(path)-1])
	prev := start
	for i, tile := range path {
		require.True(t, tile.Traversable(), "step %d %s blocked", i, tile.Point())
		require.True(t, gridgraph.Adjacent(prev.Point(), tile.Point(), conn), "step %d %s→%s", i, prev.Point(), tile.Point())
		prev = tile
	}
}
