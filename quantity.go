package integrate

import (
	"gonum.org/v1/gonum/unit"
)

// Quantity is a numeric value produced by integration: a real or complex
// scalar or fixed-length vector, optionally tagged with physical unit
// dimensions. The tag set makes numeric-type promotion explicit: scaling by
// a plain number and adding a like-shaped, like-unit quantity are the only
// arithmetic operations, and both preserve the tags.
type Quantity struct {
	re     []float64
	im     []float64 // nil for real-valued quantities
	vector bool      // distinguishes a 1-vector from a scalar
	dims   unit.Dimensions
}

// IsComplex reports whether the quantity is complex-valued.
func (q Quantity) IsComplex() bool { return q.im != nil }

// IsVector reports whether the quantity is a vector.
func (q Quantity) IsVector() bool { return q.vector }

// HasUnit reports whether the quantity carries unit dimensions.
func (q Quantity) HasUnit() bool { return len(q.dims) > 0 }

// Dims returns the quantity's unit dimensions, or nil if it is unitless.
func (q Quantity) Dims() unit.Dimensions { return cloneDims(q.dims) }

// Len returns the number of elements: 1 for scalars, the vector length
// otherwise.
func (q Quantity) Len() int { return len(q.re) }

// Float returns the value of a real scalar quantity. It panics for complex
// or vector quantities.
func (q Quantity) Float() float64 {
	if q.vector || q.im != nil {
		panic("integrate: Quantity is not a real scalar")
	}
	return q.re[0]
}

// Complex returns the value of a complex scalar quantity. Real scalars are
// widened with a zero imaginary part. It panics for vector quantities.
func (q Quantity) Complex() complex128 {
	if q.vector {
		panic("integrate: Quantity is not a scalar")
	}
	if q.im == nil {
		return complex(q.re[0], 0)
	}
	return complex(q.re[0], q.im[0])
}

// Vector returns the elements of a real vector quantity. It panics for
// complex or scalar quantities.
func (q Quantity) Vector() []float64 {
	if !q.vector || q.im != nil {
		panic("integrate: Quantity is not a real vector")
	}
	out := make([]float64, len(q.re))
	copy(out, q.re)
	return out
}

// ComplexVector returns the elements of a complex vector quantity. Real
// vectors are widened with zero imaginary parts. It panics for scalar
// quantities.
func (q Quantity) ComplexVector() []complex128 {
	if !q.vector {
		panic("integrate: Quantity is not a vector")
	}
	out := make([]complex128, len(q.re))
	for i := range out {
		if q.im == nil {
			out[i] = complex(q.re[i], 0)
		} else {
			out[i] = complex(q.re[i], q.im[i])
		}
	}
	return out
}

// Unit returns a real scalar quantity as a unit-carrying value. It panics
// for complex or vector quantities.
func (q Quantity) Unit() *unit.Unit {
	if q.vector || q.im != nil {
		panic("integrate: Quantity is not a real scalar")
	}
	return unit.New(q.re[0], cloneDims(q.dims))
}

// UnitVector returns a real vector quantity as a slice of unit-carrying
// values that share the quantity's dimensions. It panics for complex or
// scalar quantities.
func (q Quantity) UnitVector() []*unit.Unit {
	if !q.vector || q.im != nil {
		panic("integrate: Quantity is not a real vector")
	}
	out := make([]*unit.Unit, len(q.re))
	for i, v := range q.re {
		out[i] = unit.New(v, cloneDims(q.dims))
	}
	return out
}

// Scale returns the quantity multiplied element-wise by the plain number c.
// Shape and unit dimensions are preserved.
func (q Quantity) Scale(c float64) Quantity {
	out := Quantity{
		re:     make([]float64, len(q.re)),
		vector: q.vector,
		dims:   cloneDims(q.dims),
	}
	for i, v := range q.re {
		out.re[i] = c * v
	}
	if q.im != nil {
		out.im = make([]float64, len(q.im))
		for i, v := range q.im {
			out.im[i] = c * v
		}
	}
	return out
}

// Add returns the element-wise sum of two quantities. It panics unless both
// have the same shape and unit dimensions; numeric kind is promoted to
// complex if either summand is complex.
func (q Quantity) Add(o Quantity) Quantity {
	if q.vector != o.vector || len(q.re) != len(o.re) {
		panic("integrate: shape mismatch in Quantity addition")
	}
	if !dimsEqual(q.dims, o.dims) {
		panic("integrate: unit mismatch in Quantity addition")
	}
	out := Quantity{
		re:     make([]float64, len(q.re)),
		vector: q.vector,
		dims:   cloneDims(q.dims),
	}
	for i := range out.re {
		out.re[i] = q.re[i] + o.re[i]
	}
	if q.im != nil || o.im != nil {
		out.im = make([]float64, len(q.re))
		for i := range out.im {
			if q.im != nil {
				out.im[i] += q.im[i]
			}
			if o.im != nil {
				out.im[i] += o.im[i]
			}
		}
	}
	return out
}

func cloneDims(d unit.Dimensions) unit.Dimensions {
	if len(d) == 0 {
		return nil
	}
	out := make(unit.Dimensions, len(d))
	for k, v := range d {
		if v != 0 {
			out[k] = v
		}
	}
	return out
}

func dimsEqual(a, b unit.Dimensions) bool {
	for k, v := range a {
		if v != 0 && b[k] != v {
			return false
		}
	}
	for k, v := range b {
		if v != 0 && a[k] != v {
			return false
		}
	}
	return true
}

// withLengthDims returns the quantity's dimensions with Length^power mixed
// in, the unit a measure-weighted integral over a power-dimensional domain
// gains. Unitless quantities stay unitless.
func withLengthDims(d unit.Dimensions, power int) unit.Dimensions {
	if len(d) == 0 {
		return nil
	}
	out := cloneDims(d)
	if out == nil {
		out = make(unit.Dimensions, 1)
	}
	out[unit.LengthDim] += power
	if out[unit.LengthDim] == 0 {
		delete(out, unit.LengthDim)
	}
	return out
}
