package grid

import (
	"log/slog"

	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// Strategy selects the search used by Grid.Path.
type Strategy int

const (
	// StrategyAuto uses hierarchical search on grids whose area reaches
	// Options.HierarchicalMinArea and flat search otherwise.
	StrategyAuto Strategy = iota
	// StrategyFlat always uses tile-level A*.
	StrategyFlat
	// StrategyHierarchical always routes through the threshold graph first.
	StrategyHierarchical
)

// String returns "auto", "flat", "hierarchical" or "strategy(?)".
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyFlat:
		return "flat"
	case StrategyHierarchical:
		return "hierarchical"
	default:
		return "strategy(?)"
	}
}

// DefaultHierarchicalMinArea is the grid area from which StrategyAuto
// switches to hierarchical search.
const DefaultHierarchicalMinArea = 4096

// Options configures a Grid.
//
// Movement    – connectivity of path steps and threshold openings.
// RegionConn  – connectivity of the per-sector flood fill; must not be wider than Movement.
// Merge       – room merge policy applied when a tile becomes traversable.
// Strategy    – search used by Path.
// HierarchicalMinArea – area threshold for StrategyAuto.
// RoomPrecheck – FindPath rejects pairs in different rooms without searching.
// Logger      – structured logger; nil means slog.Default().
type Options struct {
	Movement            gridgraph.Connectivity
	RegionConn          gridgraph.Connectivity
	Merge               MergePolicy
	Strategy            Strategy
	HierarchicalMinArea int
	RoomPrecheck        bool
	Logger              *slog.Logger
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// DefaultOptions returns 8-directional movement and regions, majority-vote
// merging, StrategyAuto and room pre-checks enabled.
func DefaultOptions() Options {
	return Options{
		Movement:            gridgraph.Conn8,
		RegionConn:          gridgraph.Conn8,
		Merge:               MajorityRoom,
		Strategy:            StrategyAuto,
		HierarchicalMinArea: DefaultHierarchicalMinArea,
		RoomPrecheck:        true,
	}
}

// WithMovement sets the movement connectivity.
func WithMovement(c gridgraph.Connectivity) Option {
	return func(o *Options) { o.Movement = c }
}

// WithRegionConnectivity sets the connectivity of region flood fills.
func WithRegionConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) { o.RegionConn = c }
}

// WithMergePolicy replaces the room merge policy. A nil policy restores MajorityRoom.
func WithMergePolicy(p MergePolicy) Option {
	return func(o *Options) {
		if p == nil {
			p = MajorityRoom
		}
		o.Merge = p
	}
}

// WithStrategy sets the search used by Path.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithHierarchicalMinArea sets the StrategyAuto switch-over area.
// Negative values panic with ErrBadOption.
func WithHierarchicalMinArea(area int) Option {
	return func(o *Options) {
		if area < 0 {
			panic(ErrBadOption.Error())
		}
		o.HierarchicalMinArea = area
	}
}

// WithRoomPrecheck toggles the room comparison done by FindPath before searching.
func WithRoomPrecheck(on bool) Option {
	return func(o *Options) { o.RoomPrecheck = on }
}

// WithLogger sets the logger used for mutation tracing and invariant breaches.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
