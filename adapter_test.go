package integrate

import (
	"errors"
	"math"
	"testing"
)

func TestResolveSegment(t *testing.T) {
	pm, err := resolve(Segment{Pt(1, 0, 0), Pt(0, 1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if pm.dim != 1 {
		t.Errorf("got parametric dimension %d, expected 1", pm.dim)
	}
	diff(t, [][2]float64{{0, 1}}, pm.bounds)
	diff(t, Point{0.5, 0.5, 0}, pm.pos([]float64{0.5}))
	if got := pm.scale([]float64{0.5}); !approxEqual(got, math.Sqrt2, 1e-15) {
		t.Errorf("got scale %v, expected √2", got)
	}
	diff(t, Vec{-1, 1, 0}, pm.tangent([]float64{0.5}))
}

func TestResolveBezier(t *testing.T) {
	b := Bezier{Control: []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}}
	pm, err := resolve(b)
	if err != nil {
		t.Fatal(err)
	}
	// The parabola's derivative at t=1/2 is (2, 0), so the analytic scale
	// there is 2.
	if got := pm.scale([]float64{0.5}); !approxEqual(got, 2, 1e-15) {
		t.Errorf("got scale %v, expected 2", got)
	}
	diff(t, Vec{2, 0}, pm.tangent([]float64{0.5}))
}

func TestResolveCurveFallback(t *testing.T) {
	// Without an exact derivative the scale comes from finite differences.
	c := Curve{
		F:  func(t float64) Point { return Pt(math.Cos(t), math.Sin(t)) },
		T0: 0,
		T1: math.Pi,
	}
	pm, err := resolve(c)
	if err != nil {
		t.Fatal(err)
	}
	if got := pm.scale([]float64{1}); !approxEqual(got, 1, 1e-6) {
		t.Errorf("got scale %v, expected 1", got)
	}

	// An exact derivative takes precedence over finite differences.
	c.Deriv = func(t float64) Vec { return V(-2*math.Sin(t), 2*math.Cos(t)) }
	pm, err = resolve(c)
	if err != nil {
		t.Fatal(err)
	}
	if got := pm.scale([]float64{1}); got != 2 {
		t.Errorf("got scale %v, expected 2", got)
	}
}

func TestResolveUnbounded(t *testing.T) {
	pm, err := resolve(Ray{Origin: Pt(0, 0), Dir: V(0, 3)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, [][2]float64{{0, math.Inf(1)}}, pm.bounds)
	if got := pm.scale([]float64{7}); got != 3 {
		t.Errorf("got scale %v, expected 3", got)
	}

	pm, err = resolve(Line{Origin: Pt(0, 0), Dir: V(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, [][2]float64{{math.Inf(-1), math.Inf(1)}}, pm.bounds)

	pm, err = resolve(Plane{Origin: Pt(0, 0, 0), U: V(2, 0, 0), V: V(0, 2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if pm.dim != 2 {
		t.Errorf("got parametric dimension %d, expected 2", pm.dim)
	}
	if got := pm.scale([]float64{0, 0}); got != 4 {
		t.Errorf("got area element %v, expected 4", got)
	}
}

func TestResolveSkewPlane(t *testing.T) {
	// Non-orthogonal spanning directions: |u||v|sinθ = 1·2·sin(π/4) = √2.
	p := Plane{Origin: Pt(0, 0, 0), U: V(1, 0, 0), V: V(math.Sqrt2, math.Sqrt2, 0)}
	pm, err := resolve(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := pm.scale([]float64{0, 0}); !approxEqual(got, math.Sqrt2, 1e-12) {
		t.Errorf("got area element %v, expected √2", got)
	}
}

func TestResolveDegenerate(t *testing.T) {
	for _, g := range []Geometry{
		Segment{Pt(1, 2), Pt(1, 2)},
		Bezier{Control: []Point{Pt(1, 1), Pt(1, 1), Pt(1, 1)}},
		Bezier{Control: []Point{Pt(1, 1)}},
		Curve{F: func(float64) Point { return Pt(0) }, T0: 2, T1: 2},
		Ray{Origin: Pt(0, 0), Dir: V(0, 0)},
		Line{Origin: Pt(0, 0), Dir: V(0, 0)},
		Plane{Origin: Pt(0, 0, 0), U: V(1, 0, 0), V: V(2, 0, 0)},
		Plane{Origin: Pt(0, 0, 0), U: V(1, 0, 0), V: V(0, 0, 0)},
	} {
		if _, err := resolve(g); !errors.Is(err, ErrDegenerateGeometry) {
			t.Errorf("%v: got error %v, expected ErrDegenerateGeometry", g.Kind(), err)
		}
	}
}

func TestResolveUnsupported(t *testing.T) {
	if _, err := resolve(fakeGeometry{}); !errors.Is(err, ErrUnsupportedGeometry) {
		t.Errorf("got error %v, expected ErrUnsupportedGeometry", err)
	}
	// Trajectories are composite; they are decomposed by the aggregator, not
	// resolved directly.
	if _, err := resolve(Rope(Pt(0, 0), Pt(1, 1))); !errors.Is(err, ErrUnsupportedGeometry) {
		t.Errorf("got error %v, expected ErrUnsupportedGeometry", err)
	}
}

func TestProbePoint(t *testing.T) {
	pm, _ := resolve(Segment{Pt(0, 0), Pt(2, 0)})
	diff(t, Point{1, 0}, pm.probePoint())

	pm, _ = resolve(Ray{Origin: Pt(1, 1), Dir: V(1, 0)})
	diff(t, Point{2, 1}, pm.probePoint())

	pm, _ = resolve(Line{Origin: Pt(0, 5), Dir: V(1, 0)})
	diff(t, Point{0, 5}, pm.probePoint())
}
