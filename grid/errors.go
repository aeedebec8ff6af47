package grid

import "errors"

// Sentinel errors returned or raised by the grid package.
var (
	// ErrBadDimensions indicates a non-positive grid width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")

	// ErrBadSectorSize indicates a non-positive sector width or height.
	ErrBadSectorSize = errors.New("grid: sector width and height must be positive")

	// ErrConnectivity indicates an unknown connectivity value, or region
	// connectivity that is wider than movement connectivity.
	ErrConnectivity = errors.New("grid: invalid connectivity")

	// ErrNilSource indicates a nil Source or image passed to a constructor.
	ErrNilSource = errors.New("grid: source is nil")

	// ErrBadOption indicates an option value outside its domain (panics).
	ErrBadOption = errors.New("grid: invalid option value")

	// ErrInvariant indicates a broken internal invariant. It is the panic payload
	// of sector lookup failures and the error wrapped by Validate.
	ErrInvariant = errors.New("grid: invariant violated")
)
