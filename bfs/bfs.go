package bfs

import (
	"fmt"
)

// queueItem pairs a node with its depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable search state.
type walker[N comparable] struct {
	neighbors func(N) []N
	opts      Options[N]
	queue     []queueItem[N]
	head      int
	res       *Result[N]
}

// BFS runs breadth-first search from start. neighbors lists the successors
// of a node; the order it returns them in fixes the visit order.
// Returns ErrNilNeighbors, ErrOptionViolation, or any OnVisit error.
func BFS[N comparable](start N, neighbors func(N) []N, opts ...Option[N]) (*Result[N], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		neighbors: neighbors,
		opts:      o,
		queue:     make([]queueItem[N], 0, o.SizeHint),
		res: &Result[N]{
			Start:  start,
			Order:  make([]N, 0, o.SizeHint),
			Depth:  make(map[N]int, o.SizeHint),
			Parent: make(map[N]N, o.SizeHint),
		},
	}
	w.enqueue(start, 0, start, false)
	return w.res, w.loop()
}

// enqueue records depth and parent of n and appends it to the queue.
func (w *walker[N]) enqueue(n N, d int, parent N, hasParent bool) {
	w.res.Depth[n] = d
	if hasParent {
		w.res.Parent[n] = parent
	}
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{node: n, depth: d})
}

func (w *walker[N]) loop() error {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor of item.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.neighbors(item.node) {
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, next, item.node, true)
		}
	}
}
