package bfs

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// ErrNilNeighbors is returned when no neighbor function is given.
var ErrNilNeighbors = errors.New("bfs: neighbor function is nil")

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// BFS is invoked.
type Option[N comparable] func(*Options[N])

// Options holds parameters and callbacks for one search.
type Options[N comparable] struct {
	// OnEnqueue is called when a node is first discovered.
	OnEnqueue func(n N, depth int)

	// OnVisit is called when a node is dequeued. A non-nil error aborts
	// the search and is returned wrapped.
	OnVisit func(n N, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 disables the limit.
	MaxDepth int

	// FilterNeighbor skips the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor N) bool

	// SizeHint preallocates the result for about this many nodes.
	SizeHint int

	err error
}

// DefaultOptions returns no hooks, no depth limit and no filtering.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnEnqueue:      func(N, int) {},
		OnVisit:        func(N, int) error { return nil },
		FilterNeighbor: func(_, _ N) bool { return true },
	}
}

// WithOnEnqueue registers a callback run on discovery.
func WithOnEnqueue[N comparable](fn func(n N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run on visit; an error stops the search.
func WithOnVisit[N comparable](fn func(n N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at depth d (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[N comparable](d int) Option[N] {
	return func(o *Options[N]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithSizeHint preallocates for about n nodes. Negative values are invalid.
func WithSizeHint[N comparable](n int) Option[N] {
	return func(o *Options[N]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: SizeHint cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.SizeHint = n
	}
}

// Result holds the outcome of a traversal:
//   - Order: nodes in visit sequence, start first.
//   - Depth: distance in edges from the start.
//   - Parent: predecessor in the BFS tree; the start has none.
type Result[N comparable] struct {
	Start  N
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// Reached reports whether n was discovered.
func (r *Result[N]) Reached(n N) bool {
	_, ok := r.Depth[n]
	return ok
}

// PathTo reconstructs the fewest-edge path from the start to dest.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := []N{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
