package integrate

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Point is a location in n-dimensional Euclidean space. Coordinates are
// plain numbers; where units matter, they are read as SI meters.
type Point []float64

// Pt returns the point with the given coordinates.
func Pt(coords ...float64) Point {
	return Point(coords)
}

// Dim returns the dimension of the space the point lives in.
func (pt Point) Dim() int {
	return len(pt)
}

func (pt Point) String() string {
	return formatCoords(pt, "(", ")")
}

// Clone returns a copy of the point that shares no memory with it.
func (pt Point) Clone() Point {
	out := make(Point, len(pt))
	copy(out, pt)
	return out
}

// Sub computes pt−o. It panics if the dimensions differ.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec {
	out := make(Vec, len(pt))
	floats.SubTo(out, pt, o)
	return out
}

// Translate returns the point moved by v. It panics if the dimensions
// differ.
func (pt Point) Translate(v Vec) Point {
	out := make(Point, len(pt))
	floats.AddTo(out, pt, v)
	return out
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	out := make(Point, len(pt))
	for i := range pt {
		out[i] = pt[i] + t*(o[i]-pt[i])
	}
	return out
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return pt.Lerp(o, 0.5)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return floats.Distance(pt, o, 2)
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point) IsInf() bool {
	for _, c := range pt {
		if math.IsInf(c, 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point) IsNaN() bool {
	for _, c := range pt {
		if math.IsNaN(c) {
			return true
		}
	}
	return false
}

// Vec is a vector in n-dimensional Euclidean space.
type Vec []float64

// V returns the vector with the given components.
func V(comps ...float64) Vec {
	return Vec(comps)
}

// Dim returns the dimension of the space the vector lives in.
func (v Vec) Dim() int {
	return len(v)
}

func (v Vec) String() string {
	return formatCoords(v, "⟨", "⟩")
}

// Dot returns the dot product of v and o. It panics if the dimensions
// differ.
func (v Vec) Dot(o Vec) float64 {
	return floats.Dot(v, o)
}

// Norm returns the magnitude of the vector.
func (v Vec) Norm() float64 {
	return floats.Norm(v, 2)
}

// Norm2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec.Norm].
func (v Vec) Norm2() float64 {
	return floats.Dot(v, v)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec) Add(o Vec) Vec {
	out := make(Vec, len(v))
	floats.AddTo(out, v, o)
	return out
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec) Sub(o Vec) Vec {
	out := make(Vec, len(v))
	floats.SubTo(out, v, o)
	return out
}

// Mul returns the vector scaled by f.
func (v Vec) Mul(f float64) Vec {
	out := make(Vec, len(v))
	floats.ScaleTo(out, f, v)
	return out
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vec) Negate() Vec {
	return v.Mul(-1)
}

// IsZero reports whether all components are zero.
func (v Vec) IsZero() bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}

func formatCoords(coords []float64, opening, closing string) string {
	sb := &strings.Builder{}
	sb.WriteString(opening)
	for i, c := range coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%g", c)
	}
	sb.WriteString(closing)
	return sb.String()
}
