package integrate

import (
	"fmt"

	"gonum.org/v1/gonum/unit"
)

// Integrand is a function from one ambient point to a real or complex
// scalar or fixed-length vector, optionally carrying a unit. The supported
// signatures form a closed set:
//
//	func(Point) float64
//	func(Point) complex128
//	func(Point) []float64
//	func(Point) []complex128
//	func(Point) *unit.Unit
//	func(Point) []*unit.Unit
//
// Anything else is rejected with [ErrSignatureMismatch] before it is ever
// evaluated. The alias exists because the set is closed but heterogeneous.
type Integrand = any

// integrand is an Integrand flattened to real components for quadrature,
// paired with the inverse that rebuilds the tagged result value.
type integrand struct {
	n       int // flattened component count
	eval    func(pt Point) []float64
	rebuild func(vals []float64) Quantity
}

// checkSignature validates f's signature without evaluating it.
func checkSignature(f Integrand) error {
	switch f.(type) {
	case func(Point) float64,
		func(Point) complex128,
		func(Point) []float64,
		func(Point) []complex128,
		func(Point) *unit.Unit,
		func(Point) []*unit.Unit:
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrSignatureMismatch, f)
	}
}

// wrapIntegrand binds f into flattened form. Vector- and unit-valued
// integrands are evaluated once at probe, a point on the geometry, to fix
// the vector length and the unit dimensions; both are assumed constant
// across the domain. Mis-signatured integrands are rejected without any
// evaluation.
func wrapIntegrand(f Integrand, probe Point) (integrand, error) {
	switch f := f.(type) {
	case func(Point) float64:
		return integrand{
			n: 1,
			eval: func(pt Point) []float64 {
				return []float64{f(pt)}
			},
			rebuild: func(vals []float64) Quantity {
				return Quantity{re: []float64{vals[0]}}
			},
		}, nil

	case func(Point) complex128:
		return integrand{
			n: 2,
			eval: func(pt Point) []float64 {
				v := f(pt)
				return []float64{real(v), imag(v)}
			},
			rebuild: func(vals []float64) Quantity {
				return Quantity{re: []float64{vals[0]}, im: []float64{vals[1]}}
			},
		}, nil

	case func(Point) []float64:
		k := len(f(probe))
		return integrand{
			n: k,
			eval: func(pt Point) []float64 {
				v := f(pt)
				out := make([]float64, k)
				copy(out, v)
				return out
			},
			rebuild: func(vals []float64) Quantity {
				re := make([]float64, k)
				copy(re, vals)
				return Quantity{re: re, vector: true}
			},
		}, nil

	case func(Point) []complex128:
		k := len(f(probe))
		return integrand{
			n: 2 * k,
			eval: func(pt Point) []float64 {
				v := f(pt)
				out := make([]float64, 2*k)
				for i, c := range v {
					out[2*i] = real(c)
					out[2*i+1] = imag(c)
				}
				return out
			},
			rebuild: func(vals []float64) Quantity {
				re := make([]float64, k)
				im := make([]float64, k)
				for i := range re {
					re[i] = vals[2*i]
					im[i] = vals[2*i+1]
				}
				return Quantity{re: re, im: im, vector: true}
			},
		}, nil

	case func(Point) *unit.Unit:
		dims := cloneDims(f(probe).Dimensions())
		return integrand{
			n: 1,
			eval: func(pt Point) []float64 {
				return []float64{f(pt).Value()}
			},
			rebuild: func(vals []float64) Quantity {
				return Quantity{re: []float64{vals[0]}, dims: cloneDims(dims)}
			},
		}, nil

	case func(Point) []*unit.Unit:
		us := f(probe)
		k := len(us)
		var dims unit.Dimensions
		if k > 0 {
			dims = cloneDims(us[0].Dimensions())
		}
		return integrand{
			n: k,
			eval: func(pt Point) []float64 {
				v := f(pt)
				out := make([]float64, k)
				for i, u := range v {
					out[i] = u.Value()
				}
				return out
			},
			rebuild: func(vals []float64) Quantity {
				re := make([]float64, k)
				copy(re, vals)
				return Quantity{re: re, vector: true, dims: cloneDims(dims)}
			},
		}, nil

	default:
		return integrand{}, fmt.Errorf("%w: %T", ErrSignatureMismatch, f)
	}
}
