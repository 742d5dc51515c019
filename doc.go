// Package integrate computes integrals of scalar-, vector-, and
// unit-carrying-valued functions over curve-like geometric domains embedded
// in n-dimensional space, using numerical quadrature.
//
// # Geometries
//
// Integration domains are described by the [Geometry] interface, whose
// implementations form a closed set:
//
//   - [Segment], an oriented straight line segment
//   - [Trajectory], a composite path through a point sequence, open
//     ([Rope]) or closed ([Ring])
//   - [Bezier], a Bézier curve of arbitrary degree
//   - [Curve], an arbitrary parametric curve with an optional exact
//     derivative
//   - [Ray] and [Line], unbounded straight domains
//   - [Plane], the one two-dimensional domain
//
// Each geometry resolves internally to a canonical parametrization and a
// differential scale factor; the user's integrand is composed with both and
// handed to the quadrature algorithm in parameter space. Composite
// trajectories are integrated sub-segment by sub-segment and summed.
//
// # Integrands
//
// An integrand is any function from one point to a real or complex scalar
// or fixed-length vector, optionally carrying a unit; see [Integrand] for
// the exact signatures. Results come back as tagged [Quantity] values that
// preserve the integrand's numeric kind, shape, and unit. Functions of any
// other signature are rejected with [ErrSignatureMismatch] before they are
// ever evaluated.
//
// # Algorithms
//
// Three interchangeable quadrature algorithms are provided: fixed-order
// [GaussLegendre] (the default, a point estimate with no error bound),
// adaptive [GaussKronrod] and h-adaptive [Cubature] (both return a
// conservative error bound). Not every algorithm is valid on every
// geometry: unbounded domains exclude the fixed-order rule and the plane
// admits only cubature. Invalid combinations fail with
// [ErrUnsupportedCombination] rather than returning an unchecked numeric
// result.
//
// Fixed-order node placement is delegated to gonum's integrate/quad;
// numeric differentiation for curves without a closed-form derivative is
// delegated to gonum's diff/fd; unit arithmetic follows gonum's unit
// package, with plain coordinates read as SI meters.
//
// # Purity
//
// Every exported call is a pure function of its arguments. Nothing is
// cached or shared between calls, inputs are never mutated, and concurrent
// calls never interact. Failures from the integrand propagate unmodified;
// there are no partial results. The package defines no cancellation
// mechanism; callers that need one should wrap the call.
package integrate
