// Package astar defines core types and configuration options
// for the generic A* search.
package astar

import "errors"

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNoPath indicates that the goal was not reached.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrBadLimit indicates that MaxExpansions was set to a negative value.
	ErrBadLimit = errors.New("astar: MaxExpansions must be non-negative")
)

// Graph is the view of a graph that Search needs.
//
// Neighbors calls visit once for every node reachable from n in one step,
// together with the non-negative cost of that step.
// Heuristic estimates the remaining cost from n to goal; it must not overestimate.
type Graph[N comparable] interface {
	Neighbors(n N, visit func(next N, cost int))
	Heuristic(n, goal N) int
}

// Result is the outcome of a successful Search.
type Result[N comparable] struct {
	Path     []N // nodes after start through goal
	Cost     int // sum of step costs along Path
	Expanded int // nodes expanded before reaching goal
}

// Options configures the behavior of Search.
//
// MaxExpansions – optional cap on expanded nodes; 0 means unlimited.
type Options struct {
	MaxExpansions int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMaxExpansions caps the number of expanded nodes. When the cap is hit
// before the goal is expanded, Search returns ErrNoPath.
// Negative values panic with ErrBadLimit.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadLimit.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns Options with no expansion cap.
func DefaultOptions() Options {
	return Options{MaxExpansions: 0}
}

// GraphFunc adapts a pair of functions to the Graph interface.
type GraphFunc[N comparable] struct {
	NeighborsFn func(n N, visit func(next N, cost int))
	HeuristicFn func(n, goal N) int
}

// Neighbors calls f.NeighborsFn.
func (f GraphFunc[N]) Neighbors(n N, visit func(next N, cost int)) { f.NeighborsFn(n, visit) }

// Heuristic calls f.HeuristicFn, or returns 0 (plain Dijkstra) when it is nil.
func (f GraphFunc[N]) Heuristic(n, goal N) int {
	if f.HeuristicFn == nil {
		return 0
	}
	return f.HeuristicFn(n, goal)
}
