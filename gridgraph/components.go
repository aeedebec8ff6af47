package gridgraph

// Label assigns a component id to every passable cell, according to gg.Conn.
// The returned buffer is row-major (index = y*Width + x); blocked cells hold
// Blocked. Ids are dense in [0, count) and follow the row-major order of each
// component's first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for the label buffer and the worklist.
func (gg *GridGraph) Label() (labels []int, count int) {
	total := gg.Width * gg.Height
	labels = make([]int, total)
	for i := range labels {
		if gg.passable[i] {
			labels[i] = Unlabeled
		} else {
			labels[i] = Blocked
		}
	}

	stack := make([]int, 0, 64)
	for i0 := 0; i0 < total; i0++ {
		if labels[i0] != Unlabeled {
			continue
		}
		labels[i0] = count
		stack = append(stack[:0], i0)

		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ux, uy := gg.Coordinate(u)
			for _, d := range gg.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				vi := gg.index(vx, vy)
				if labels[vi] == Unlabeled {
					labels[vi] = count
					stack = append(stack, vi)
				}
			}
		}
		count++
	}

	return labels, count
}

// ConnectedComponents groups the cell indices of every component found by Label.
// comps[i] lists the row-major indices labeled i, in ascending order.
//
// To convert an index back to (x,y), use Coordinate(idx).
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels, count := gg.Label()
	comps := make([][]int, count)
	for i, l := range labels {
		if l >= 0 {
			comps[l] = append(comps[l], i)
		}
	}
	return comps
}
