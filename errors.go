package integrate

import "errors"

var (
	// ErrUnsupportedGeometry indicates a geometry outside the supported
	// variant set.
	ErrUnsupportedGeometry = errors.New("integrate: unsupported geometry")
	// ErrUnsupportedCombination indicates a (geometry, integral kind,
	// algorithm) combination with no valid quadrature path.
	ErrUnsupportedCombination = errors.New("integrate: unsupported geometry/algorithm combination")
	// ErrSignatureMismatch indicates an integrand that does not take a
	// single point argument.
	ErrSignatureMismatch = errors.New("integrate: integrand does not take a single point argument")
	// ErrDegenerateGeometry indicates a geometry that collapses to a point
	// or another measure-zero set.
	ErrDegenerateGeometry = errors.New("integrate: degenerate geometry")
	// ErrEmptyTrajectory indicates a trajectory with fewer than two points.
	ErrEmptyTrajectory = errors.New("integrate: trajectory needs at least two points")
)
