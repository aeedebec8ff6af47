package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrBadConnectivity indicates a Connectivity value other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("gridgraph: unknown connectivity")
	// ErrNilPassable indicates a missing passability predicate.
	ErrNilPassable = errors.New("gridgraph: passable predicate is nil")
)
