package integrate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// DefaultOrder is the Gauss-Legendre order used when no algorithm, or a
// zero-valued [GaussLegendre], is given.
const DefaultOrder = 32

// DefaultTolerance is the absolute tolerance used by adaptive algorithms
// when none is given.
const DefaultTolerance = 1e-8

// Algorithm selects the quadrature method used to evaluate an integral. The
// set of algorithms is closed: [GaussLegendre], [GaussKronrod] and
// [Cubature].
type Algorithm interface {
	algKind() algKind
}

type algKind uint8

const (
	algGaussLegendre algKind = iota
	algGaussKronrod
	algCubature
)

func (k algKind) String() string {
	switch k {
	case algGaussLegendre:
		return "GaussLegendre"
	case algGaussKronrod:
		return "GaussKronrod"
	case algCubature:
		return "Cubature"
	default:
		panic("unreachable")
	}
}

// GaussLegendre is fixed-order Gauss-Legendre quadrature. It returns a point
// estimate with no error bound. An Order of 0 means [DefaultOrder].
type GaussLegendre struct {
	Order int
}

func (GaussLegendre) algKind() algKind { return algGaussLegendre }

// GaussKronrod is adaptive Gauss-Kronrod quadrature with a 7-15 point pair
// and recursive interval bisection. It returns an estimate together with a
// conservative error bound. A Tolerance of 0 means [DefaultTolerance]; a
// MaxDepth of 0 means 30.
type GaussKronrod struct {
	Tolerance float64
	MaxDepth  int
}

func (GaussKronrod) algKind() algKind { return algGaussKronrod }

// Cubature is h-adaptive cubature: hierarchical subdivision of the domain
// into boxes, always refining the box with the largest error estimate. It
// returns an estimate together with a conservative error bound. A Tolerance
// of 0 means [DefaultTolerance]; a MaxRegions of 0 means 1<<14.
type Cubature struct {
	Tolerance  float64
	MaxRegions int
}

func (Cubature) algKind() algKind { return algCubature }

// integralKind distinguishes the integral operations that can be requested
// over a geometry.
type integralKind uint8

const (
	lineKind integralKind = iota
	surfaceKind
	workKind
)

func (k integralKind) String() string {
	switch k {
	case lineKind:
		return "line"
	case surfaceKind:
		return "surface"
	case workKind:
		return "work"
	default:
		panic("unreachable")
	}
}

// capability is one row of the support table.
type capability struct {
	line, surface, work                   bool
	gaussLegendre, gaussKronrod, cubature bool
}

// capabilities maps each geometry kind to the integral kinds and algorithms
// that are valid for it. Missing cells are deliberate rejections, never
// silent approximations: fixed-order Gauss-Legendre cannot handle the
// endpoint singularities that mapping an unbounded domain onto a finite one
// introduces, and the Gauss-Kronrod pair is one-dimensional only. Adding a
// geometry kind means one resolve case plus one row here.
var capabilities = map[Kind]capability{
	SegmentKind:    {line: true, work: true, gaussLegendre: true, gaussKronrod: true, cubature: true},
	TrajectoryKind: {line: true, work: true, gaussLegendre: true, gaussKronrod: true, cubature: true},
	BezierKind:     {line: true, work: true, gaussLegendre: true, gaussKronrod: true, cubature: true},
	CurveKind:      {line: true, work: true, gaussLegendre: true, gaussKronrod: true, cubature: true},
	RayKind:        {line: true, work: true, gaussKronrod: true, cubature: true},
	LineKind:       {line: true, work: true, gaussKronrod: true, cubature: true},
	PlaneKind:      {surface: true, cubature: true},
}

func (c capability) supportsKind(k integralKind) bool {
	switch k {
	case lineKind:
		return c.line
	case surfaceKind:
		return c.surface
	case workKind:
		return c.work
	default:
		panic("unreachable")
	}
}

func (c capability) supportsAlg(a algKind) bool {
	switch a {
	case algGaussLegendre:
		return c.gaussLegendre
	case algGaussKronrod:
		return c.gaussKronrod
	case algCubature:
		return c.cubature
	default:
		panic("unreachable")
	}
}

// checkSupport validates a (geometry kind, integral kind, algorithm) cell
// against the capability table.
func checkSupport(g Kind, kind integralKind, alg Algorithm) error {
	c, ok := capabilities[g]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedGeometry, g)
	}
	if !c.supportsKind(kind) || !c.supportsAlg(alg.algKind()) {
		return fmt.Errorf("%w: %v integral over %v with %v", ErrUnsupportedCombination, kind, g, alg.algKind())
	}
	return nil
}

// dispatch runs the chosen quadrature over the flattened parameter-space
// integrand h with n components. Support must have been checked already;
// unbounded axes are folded away before the algorithm sees the domain.
func dispatch(alg Algorithm, pm parametrization, h func(u []float64) []float64, n int) (vals []float64, bound float64, hasBound bool) {
	bounds, h := finiteDomain(pm.bounds, h)
	switch alg := alg.(type) {
	case GaussLegendre:
		order := alg.Order
		if order <= 0 {
			order = DefaultOrder
		}
		return fixedLegendre(h, n, bounds[0][0], bounds[0][1], order), 0, false

	case GaussKronrod:
		tol := alg.Tolerance
		if tol <= 0 {
			tol = DefaultTolerance
		}
		maxDepth := alg.MaxDepth
		if maxDepth <= 0 {
			maxDepth = 30
		}
		h1 := func(t float64) []float64 { return h([]float64{t}) }
		vals, bound := kronrodQuad(h1, n, bounds[0][0], bounds[0][1], tol, maxDepth)
		return vals, bound, true

	case Cubature:
		tol := alg.Tolerance
		if tol <= 0 {
			tol = DefaultTolerance
		}
		maxRegions := alg.MaxRegions
		if maxRegions <= 0 {
			maxRegions = 1 << 14
		}
		vals, bound := cubatureQuad(h, n, bounds, tol, maxRegions)
		return vals, bound, true

	default:
		panic("unreachable")
	}
}

// fixedLegendre integrates the vector-valued h over [a, b] with an
// order-point Gauss-Legendre rule. Nodes and weights come from gonum's
// Legendre rule; one evaluation of h covers all components.
func fixedLegendre(h func([]float64) []float64, n int, a, b float64, order int) []float64 {
	x := make([]float64, order)
	w := make([]float64, order)
	quad.Legendre{}.FixedLocations(x, w, a, b)
	vals := make([]float64, n)
	u := make([]float64, 1)
	for i, xi := range x {
		u[0] = xi
		hv := h(u)
		for j := range vals {
			vals[j] += w[i] * hv[j]
		}
	}
	return vals
}

// finiteDomain rewrites unbounded axes with the substitutions
//
//	t = a + u/(1−u)       on [a, ∞),  u ∈ [0, 1)
//	t = u/(1−u²)          on (−∞, ∞), u ∈ (−1, 1)
//
// folding the Jacobian into h. Bounded axes pass through unchanged. The
// quadrature rules never sample domain endpoints, so the singular images at
// u = ±1 are not evaluated.
func finiteDomain(bounds [][2]float64, h func([]float64) []float64) ([][2]float64, func([]float64) []float64) {
	maps := make([]func(u float64) (t, jac float64), len(bounds))
	out := make([][2]float64, len(bounds))
	unbounded := false
	for i, b := range bounds {
		lo, hi := b[0], b[1]
		switch {
		case !math.IsInf(lo, 0) && !math.IsInf(hi, 0):
			out[i] = b
		case !math.IsInf(lo, 0) && math.IsInf(hi, 1):
			unbounded = true
			out[i] = [2]float64{0, 1}
			maps[i] = func(u float64) (float64, float64) {
				mu := 1 - u
				return lo + u/mu, 1 / (mu * mu)
			}
		case math.IsInf(lo, -1) && math.IsInf(hi, 1):
			unbounded = true
			out[i] = [2]float64{-1, 1}
			maps[i] = func(u float64) (float64, float64) {
				mu := 1 - u*u
				return u / mu, (1 + u*u) / (mu * mu)
			}
		default:
			panic("unreachable")
		}
	}
	if !unbounded {
		return bounds, h
	}
	wrapped := func(u []float64) []float64 {
		t := make([]float64, len(u))
		jac := 1.0
		for i, ui := range u {
			if maps[i] == nil {
				t[i] = ui
				continue
			}
			ti, j := maps[i](ui)
			t[i] = ti
			jac *= j
		}
		vals := h(t)
		for i := range vals {
			vals[i] *= jac
		}
		return vals
	}
	return out, wrapped
}
