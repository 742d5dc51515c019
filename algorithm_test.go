package integrate

import (
	"errors"
	"math"
	"testing"
)

func TestFixedLegendre(t *testing.T) {
	// Gauss-Legendre of order n is exact for polynomials up to degree 2n−1.
	h := func(u []float64) []float64 {
		return []float64{u[0] * u[0], u[0] * u[0] * u[0]}
	}
	got := fixedLegendre(h, 2, 0, 1, 8)
	if !approxEqual(got[0], 1.0/3, 1e-14) {
		t.Errorf("got ∫x² = %v, expected 1/3", got[0])
	}
	if !approxEqual(got[1], 1.0/4, 1e-14) {
		t.Errorf("got ∫x³ = %v, expected 1/4", got[1])
	}
}

func TestFiniteDomainBounded(t *testing.T) {
	// Bounded axes pass through untouched, integrand included.
	h := func(u []float64) []float64 { return []float64{u[0]} }
	bounds, g := finiteDomain([][2]float64{{2, 5}}, h)
	diff(t, [][2]float64{{2, 5}}, bounds)
	diff(t, []float64{3}, g([]float64{3}))
}

func TestFiniteDomainHalfLine(t *testing.T) {
	// ∫₀^∞ e⁻ᵗ dt = 1 after t = u/(1−u).
	h := func(u []float64) []float64 { return []float64{math.Exp(-u[0])} }
	bounds, g := finiteDomain([][2]float64{{0, math.Inf(1)}}, h)
	diff(t, [][2]float64{{0, 1}}, bounds)
	got, _ := kronrodQuad(func(t float64) []float64 { return g([]float64{t}) }, 1, 0, 1, 1e-10, 30)
	if !approxEqual(got[0], 1, 1e-8) {
		t.Errorf("got %v, expected 1", got[0])
	}
}

func TestFiniteDomainFullLine(t *testing.T) {
	// ∫₋∞^∞ e^(−t²) dt = √π after t = u/(1−u²).
	h := func(u []float64) []float64 { return []float64{math.Exp(-u[0] * u[0])} }
	bounds, g := finiteDomain([][2]float64{{math.Inf(-1), math.Inf(1)}}, h)
	diff(t, [][2]float64{{-1, 1}}, bounds)
	got, _ := kronrodQuad(func(t float64) []float64 { return g([]float64{t}) }, 1, -1, 1, 1e-10, 30)
	if !approxEqual(got[0], math.SqrtPi, 1e-8) {
		t.Errorf("got %v, expected √π", got[0])
	}
}

// supportMatrix drives every cell of the capability table through the public
// surface. Integrands over unbounded geometries decay so that the supported
// cells converge.
func TestSupportMatrix(t *testing.T) {
	decay := func(pt Point) float64 {
		r2 := 0.0
		for _, c := range pt {
			r2 += c * c
		}
		return math.Exp(-r2)
	}
	decayField := func(pt Point) Vec {
		return V(decay(pt), 0)
	}

	geoms := []Geometry{
		Segment{Pt(0, 0), Pt(1, 0)},
		Rope(Pt(0, 0), Pt(1, 0), Pt(1, 1)),
		Bezier{Control: []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}},
		Curve{F: func(t float64) Point { return Pt(t, t*t) }, T0: 0, T1: 1},
		Ray{Origin: Pt(0, 0), Dir: V(1, 0)},
		Line{Origin: Pt(0, 0), Dir: V(1, 0)},
		Plane{Origin: Pt(0, 0), U: V(1, 0), V: V(0, 1)},
	}
	algs := []Algorithm{GaussLegendre{}, GaussKronrod{}, Cubature{}}

	for _, g := range geoms {
		c := capabilities[g.Kind()]
		for _, alg := range algs {
			algOK := c.supportsAlg(alg.algKind())

			_, err := LineIntegral(alg, decay, g)
			checkCell(t, g.Kind(), alg.algKind(), lineKind, c.line && algOK, err)

			_, err = SurfaceIntegral(alg, decay, g)
			checkCell(t, g.Kind(), alg.algKind(), surfaceKind, c.surface && algOK, err)

			_, err = WorkIntegral(alg, decayField, g)
			checkCell(t, g.Kind(), alg.algKind(), workKind, c.work && algOK, err)
		}
	}
}

func checkCell(t *testing.T, g Kind, a algKind, k integralKind, supported bool, err error) {
	t.Helper()
	if supported {
		if err != nil {
			t.Errorf("(%v, %v, %v): got error %v, expected success", g, k, a, err)
		}
	} else if !errors.Is(err, ErrUnsupportedCombination) {
		t.Errorf("(%v, %v, %v): got error %v, expected ErrUnsupportedCombination", g, k, a, err)
	}
}

func TestUnsupportedCellReturnsNoValue(t *testing.T) {
	// A rejected cell must never perform integrand evaluations.
	evals := 0
	f := func(pt Point) float64 {
		evals++
		return 1
	}
	res, err := IntegralWith(GaussLegendre{}, f, Ray{Origin: Pt(0, 0), Dir: V(1, 0)})
	if !errors.Is(err, ErrUnsupportedCombination) {
		t.Errorf("got error %v, expected ErrUnsupportedCombination", err)
	}
	if evals != 0 {
		t.Errorf("integrand was evaluated %d times for a rejected combination", evals)
	}
	if res.HasBound || res.Value.Len() != 0 {
		t.Errorf("got %+v, expected the zero Result", res)
	}
}

func TestAlgorithmDefaults(t *testing.T) {
	// A zero-valued GaussLegendre means the documented default order; the
	// default algorithm of Integral is exactly that.
	f := func(pt Point) float64 { return pt[0] }
	s := Segment{Pt(0, 0), Pt(1, 0)}
	a, err := Integral(f, s)
	if err != nil {
		t.Fatal(err)
	}
	b, err := IntegralWith(GaussLegendre{Order: DefaultOrder}, f, s)
	if err != nil {
		t.Fatal(err)
	}
	if a.Value.Float() != b.Value.Float() {
		t.Errorf("got %v and %v, expected identical results", a.Value.Float(), b.Value.Float())
	}
	if a.HasBound {
		t.Error("fixed-order quadrature must not report an error bound")
	}
}
