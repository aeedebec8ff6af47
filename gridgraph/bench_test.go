package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// BenchmarkLabel measures Label on a randomly generated 1000×1000 buffer
// with roughly 60% passable cells.
// Complexity: O(W×H×d)
func BenchmarkLabel(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(42))
	cells := make([]bool, n*n)
	for i := range cells {
		cells[i] = r.Intn(5) > 1
	}
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		gg, err := gridgraph.NewGridGraph(n, n, func(x, y int) bool { return cells[y*n+x] }, gridgraph.GridOptions{Conn: conn})
		if err != nil {
			b.Fatalf("setup NewGridGraph failed: %v", err)
		}
		b.Run(conn.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = gg.Label()
			}
		})
	}
}
