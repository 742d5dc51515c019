package integrate

import (
	"fmt"
	"math"
	"slices"
)

// Kind identifies a geometry variant. The set of variants is closed; the
// capability table in algorithm.go decides which integral kinds and
// quadrature algorithms are valid for each of them.
type Kind uint8

const (
	SegmentKind Kind = iota + 1
	TrajectoryKind
	BezierKind
	CurveKind
	RayKind
	LineKind
	PlaneKind
)

func (k Kind) String() string {
	switch k {
	case SegmentKind:
		return "Segment"
	case TrajectoryKind:
		return "Trajectory"
	case BezierKind:
		return "Bezier"
	case CurveKind:
		return "Curve"
	case RayKind:
		return "Ray"
	case LineKind:
		return "Line"
	case PlaneKind:
		return "Plane"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Geometry describes a domain that integrals can be computed over. The
// implementations in this package form a closed set; values of other types
// are rejected with [ErrUnsupportedGeometry].
type Geometry interface {
	// Kind returns the geometry's variant tag.
	Kind() Kind
	// Dim returns the dimension of the ambient space.
	Dim() int
}

var _ Geometry = Segment{}
var _ Geometry = Trajectory{}
var _ Geometry = Bezier{}
var _ Geometry = Curve{}
var _ Geometry = Ray{}
var _ Geometry = Line{}
var _ Geometry = Plane{}

// Segment is an oriented straight line segment from P0 to P1, parametrized
// over [0, 1].
type Segment struct {
	P0 Point
	P1 Point
}

func (s Segment) Kind() Kind { return SegmentKind }
func (s Segment) Dim() int   { return len(s.P0) }

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P0.Distance(s.P1)
}

// Eval evaluates the segment at parameter t ∈ [0, 1].
func (s Segment) Eval(t float64) Point {
	return s.P0.Lerp(s.P1, t)
}

// Reverse returns the segment with its orientation flipped.
func (s Segment) Reverse() Segment {
	return Segment{s.P1, s.P0}
}

// Trajectory is an ordered sequence of points joined by straight
// sub-segments. Point order defines the orientation. A closed trajectory
// (ring) implicitly contains the sub-segment from the last point back to
// the first; an open one (rope) does not.
type Trajectory struct {
	Points []Point
	Closed bool
}

// Rope returns the open trajectory through the given points.
func Rope(pts ...Point) Trajectory {
	return Trajectory{Points: pts}
}

// Ring returns the closed trajectory through the given points. The closing
// sub-segment back to the first point is implicit and must not be spelled
// out.
func Ring(pts ...Point) Trajectory {
	return Trajectory{Points: pts, Closed: true}
}

func (tr Trajectory) Kind() Kind { return TrajectoryKind }

func (tr Trajectory) Dim() int {
	if len(tr.Points) == 0 {
		return 0
	}
	return len(tr.Points[0])
}

// Segments returns the consecutive sub-segments of the trajectory,
// including the implicit closing sub-segment for rings.
func (tr Trajectory) Segments() []Segment {
	if len(tr.Points) < 2 {
		return nil
	}
	n := len(tr.Points) - 1
	if tr.Closed {
		n++
	}
	segs := make([]Segment, n)
	for i := 0; i < len(tr.Points)-1; i++ {
		segs[i] = Segment{tr.Points[i], tr.Points[i+1]}
	}
	if tr.Closed {
		segs[n-1] = Segment{tr.Points[len(tr.Points)-1], tr.Points[0]}
	}
	return segs
}

// Length returns the total length of the trajectory's sub-segments.
func (tr Trajectory) Length() float64 {
	var sum float64
	for _, s := range tr.Segments() {
		sum += s.Length()
	}
	return sum
}

// Reverse returns the trajectory with its orientation flipped.
func (tr Trajectory) Reverse() Trajectory {
	pts := make([]Point, len(tr.Points))
	for i, pt := range tr.Points {
		pts[len(pts)-1-i] = pt
	}
	return Trajectory{Points: pts, Closed: tr.Closed}
}

// Rotate returns the trajectory with its starting point cyclically shifted
// by k positions. For closed trajectories this describes the same geometry;
// the measure integral is invariant under the rotation.
func (tr Trajectory) Rotate(k int) Trajectory {
	n := len(tr.Points)
	if n == 0 {
		return tr
	}
	k = ((k % n) + n) % n
	pts := make([]Point, 0, n)
	pts = append(pts, tr.Points[k:]...)
	pts = append(pts, tr.Points[:k]...)
	return Trajectory{Points: pts, Closed: tr.Closed}
}

// Bezier is a Bézier curve of arbitrary degree in n-dimensional space,
// parametrized over [0, 1]. The degree is len(Control)-1.
type Bezier struct {
	Control []Point
}

func (b Bezier) Kind() Kind { return BezierKind }

func (b Bezier) Dim() int {
	if len(b.Control) == 0 {
		return 0
	}
	return len(b.Control[0])
}

// Degree returns the degree of the curve.
func (b Bezier) Degree() int {
	return len(b.Control) - 1
}

// Eval evaluates the curve at parameter t ∈ [0, 1], using de Casteljau's
// algorithm.
func (b Bezier) Eval(t float64) Point {
	pts := slices.Clone(b.Control)
	for n := len(pts) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			pts[i] = pts[i].Lerp(pts[i+1], t)
		}
	}
	return pts[0]
}

// Derivative returns the hodograph of the curve, the Bézier of one degree
// lower whose evaluation is the derivative of b. Its points are read as
// vectors.
func (b Bezier) Derivative() Bezier {
	deg := float64(b.Degree())
	ctrl := make([]Point, len(b.Control)-1)
	for i := range ctrl {
		ctrl[i] = Point(b.Control[i+1].Sub(b.Control[i]).Mul(deg))
	}
	return Bezier{Control: ctrl}
}

// Start returns the first control point.
func (b Bezier) Start() Point { return b.Control[0] }

// End returns the last control point.
func (b Bezier) End() Point { return b.Control[len(b.Control)-1] }

// Curve is an arbitrary parametric curve t ↦ F(t) over [T0, T1].
//
// Deriv, if non-nil, returns the exact derivative of F and yields an
// analytic differential scale. A nil Deriv falls back to symmetric finite
// differences (see [Derivative]), which never evaluate F outside [T0, T1].
type Curve struct {
	F     func(t float64) Point
	Deriv func(t float64) Vec
	T0    float64
	T1    float64
}

func (c Curve) Kind() Kind { return CurveKind }

func (c Curve) Dim() int {
	if c.F == nil {
		return 0
	}
	return len(c.F(c.T0))
}

// Ray is a half-line from Origin in direction Dir, parametrized over
// [0, ∞).
type Ray struct {
	Origin Point
	Dir    Vec
}

func (r Ray) Kind() Kind { return RayKind }
func (r Ray) Dim() int   { return len(r.Origin) }

// Eval evaluates the ray at parameter t ≥ 0.
func (r Ray) Eval(t float64) Point {
	return r.Origin.Translate(r.Dir.Mul(t))
}

// Line is an infinite straight line through Origin in direction Dir,
// parametrized over (−∞, ∞).
type Line struct {
	Origin Point
	Dir    Vec
}

func (l Line) Kind() Kind { return LineKind }
func (l Line) Dim() int   { return len(l.Origin) }

// Eval evaluates the line at parameter t.
func (l Line) Eval(t float64) Point {
	return l.Origin.Translate(l.Dir.Mul(t))
}

// Plane is the two-dimensional affine plane spanned by U and V at Origin,
// parametrized over (−∞, ∞)².
type Plane struct {
	Origin Point
	U      Vec
	V      Vec
}

func (p Plane) Kind() Kind { return PlaneKind }
func (p Plane) Dim() int   { return len(p.Origin) }

// Eval evaluates the plane at parameters (u, v).
func (p Plane) Eval(u, v float64) Point {
	return p.Origin.Translate(p.U.Mul(u)).Translate(p.V.Mul(v))
}

// areaElement returns the constant differential area element of the plane,
// the square root of the Gram determinant of (U, V).
func (p Plane) areaElement() float64 {
	uu := p.U.Norm2()
	vv := p.V.Norm2()
	uv := p.U.Dot(p.V)
	gram := uu*vv - uv*uv
	if gram <= 0 {
		// U and V are parallel (or one is zero); the plane collapses.
		return 0
	}
	return math.Sqrt(gram)
}

// Measure returns the measure of g: length for one-dimensional geometries,
// area for two-dimensional ones. Closed forms are used where they exist;
// (only) Bézier and parametric curves fall back to adaptive quadrature at
// the given accuracy. Rays, lines and planes have infinite measure.
func Measure(g Geometry, accuracy float64) (float64, error) {
	switch g := g.(type) {
	case Segment:
		if g.Length() == 0 {
			return 0, fmt.Errorf("%w: segment endpoints coincide", ErrDegenerateGeometry)
		}
		return g.Length(), nil
	case Trajectory:
		if len(g.Points) < 2 {
			return 0, ErrEmptyTrajectory
		}
		return g.Length(), nil
	case Ray, Line, Plane:
		if _, err := resolve(g); err != nil {
			return 0, err
		}
		return math.Inf(1), nil
	case Bezier, Curve:
		res, err := IntegralWith(GaussKronrod{Tolerance: accuracy}, func(Point) float64 { return 1 }, g)
		if err != nil {
			return 0, err
		}
		return res.Value.Float(), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
	}
}
