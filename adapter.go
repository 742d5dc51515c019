package integrate

import (
	"fmt"
	"math"
)

// A parametrization maps a geometry's canonical parameter domain onto the
// geometry, together with the differential scale that converts
// parameter-space measure into geometric measure:
//
//	∫ f dμ = ∫_domain f(pos(u))·scale(u) du
//
// The parametrization is a bijection from the domain onto the geometry up to
// measure-zero sets, and scale is nonnegative everywhere on the domain.
type parametrization struct {
	dim    int          // parametric dimension
	bounds [][2]float64 // per-axis domain bounds, possibly infinite
	pos    func(u []float64) Point
	scale  func(u []float64) float64
	// tangent is the unnormalized direction of travel at u. It is set for
	// oriented one-dimensional geometries only and drives directional
	// (work) integrals.
	tangent func(u []float64) Vec
}

// resolve maps a geometry to its canonical parametrization. Trajectories
// are composite and are decomposed into segments by the aggregator before
// resolution; resolving one directly is an error.
func resolve(g Geometry) (parametrization, error) {
	switch g := g.(type) {
	case Segment:
		d := g.P1.Sub(g.P0)
		length := d.Norm()
		if length == 0 {
			return parametrization{}, fmt.Errorf("%w: segment endpoints coincide", ErrDegenerateGeometry)
		}
		return parametrization{
			dim:     1,
			bounds:  [][2]float64{{0, 1}},
			pos:     func(u []float64) Point { return g.Eval(u[0]) },
			scale:   func(u []float64) float64 { return length },
			tangent: func(u []float64) Vec { return d },
		}, nil

	case Bezier:
		if len(g.Control) < 2 {
			return parametrization{}, fmt.Errorf("%w: Bézier needs at least two control points", ErrDegenerateGeometry)
		}
		if degenerateControl(g.Control) {
			return parametrization{}, fmt.Errorf("%w: Bézier control points coincide", ErrDegenerateGeometry)
		}
		// The hodograph gives the exact derivative, so the differential
		// scale is analytic.
		hodo := g.Derivative()
		deriv := func(u []float64) Vec { return Vec(hodo.Eval(u[0])) }
		return parametrization{
			dim:     1,
			bounds:  [][2]float64{{0, 1}},
			pos:     func(u []float64) Point { return g.Eval(u[0]) },
			scale:   func(u []float64) float64 { return deriv(u).Norm() },
			tangent: deriv,
		}, nil

	case Curve:
		if g.F == nil {
			panic("integrate: Curve with nil position function")
		}
		if g.T0 == g.T1 {
			return parametrization{}, fmt.Errorf("%w: curve parameter interval is empty", ErrDegenerateGeometry)
		}
		deriv := g.Deriv
		if deriv == nil {
			deriv = func(t float64) Vec { return Derivative(g.F, t, g.T0, g.T1) }
		}
		return parametrization{
			dim:     1,
			bounds:  [][2]float64{{g.T0, g.T1}},
			pos:     func(u []float64) Point { return g.F(u[0]) },
			scale:   func(u []float64) float64 { return deriv(u[0]).Norm() },
			tangent: func(u []float64) Vec { return deriv(u[0]) },
		}, nil

	case Ray:
		speed := g.Dir.Norm()
		if speed == 0 {
			return parametrization{}, fmt.Errorf("%w: ray with zero direction", ErrDegenerateGeometry)
		}
		return parametrization{
			dim:     1,
			bounds:  [][2]float64{{0, math.Inf(1)}},
			pos:     func(u []float64) Point { return g.Eval(u[0]) },
			scale:   func(u []float64) float64 { return speed },
			tangent: func(u []float64) Vec { return g.Dir },
		}, nil

	case Line:
		speed := g.Dir.Norm()
		if speed == 0 {
			return parametrization{}, fmt.Errorf("%w: line with zero direction", ErrDegenerateGeometry)
		}
		return parametrization{
			dim:     1,
			bounds:  [][2]float64{{math.Inf(-1), math.Inf(1)}},
			pos:     func(u []float64) Point { return g.Eval(u[0]) },
			scale:   func(u []float64) float64 { return speed },
			tangent: func(u []float64) Vec { return g.Dir },
		}, nil

	case Plane:
		area := g.areaElement()
		if area == 0 {
			return parametrization{}, fmt.Errorf("%w: plane spanned by parallel directions", ErrDegenerateGeometry)
		}
		return parametrization{
			dim: 2,
			bounds: [][2]float64{
				{math.Inf(-1), math.Inf(1)},
				{math.Inf(-1), math.Inf(1)},
			},
			pos:   func(u []float64) Point { return g.Eval(u[0], u[1]) },
			scale: func(u []float64) float64 { return area },
		}, nil

	case Trajectory:
		return parametrization{}, fmt.Errorf("%w: composite trajectory has no single parametrization", ErrUnsupportedGeometry)

	default:
		return parametrization{}, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
	}
}

// degenerateControl reports whether all control points coincide, collapsing
// the curve to a single point.
func degenerateControl(pts []Point) bool {
	for _, pt := range pts[1:] {
		if !pt.Sub(pts[0]).IsZero() {
			return false
		}
	}
	return true
}

// probePoint returns a point in the interior of the domain, used to size
// vector-valued integrands before quadrature starts.
func (pm parametrization) probePoint() Point {
	u := make([]float64, pm.dim)
	for i, b := range pm.bounds {
		lo, hi := b[0], b[1]
		switch {
		case !math.IsInf(lo, 0) && !math.IsInf(hi, 0):
			u[i] = 0.5 * (lo + hi)
		case !math.IsInf(lo, 0):
			u[i] = lo + 1
		case !math.IsInf(hi, 0):
			u[i] = hi - 1
		default:
			u[i] = 0
		}
	}
	return pm.pos(u)
}
