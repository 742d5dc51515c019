package integrate

import (
	"container/heap"
	"math"
)

// region is one box of an h-adaptive subdivision, with its Kronrod estimate
// and error bound.
type region struct {
	lo, hi []float64
	vals   []float64
	bound  float64
}

// regionQueue orders regions by error bound, worst first.
type regionQueue []*region

func (q regionQueue) Len() int            { return len(q) }
func (q regionQueue) Less(i, j int) bool  { return q[i].bound > q[j].bound }
func (q regionQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *regionQueue) Push(x any)         { *q = append(*q, x.(*region)) }
func (q *regionQueue) Pop() any {
	old := *q
	n := len(old)
	r := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return r
}

// cubatureQuad integrates the vector-valued h over a box to the given
// absolute tolerance by hierarchical subdivision: the box with the largest
// error estimate is bisected along its widest axis until the summed bound
// is within tolerance or maxRegions boxes exist. Estimates and bounds come
// from the tensor-product Gauss-Kronrod 7-15 pair. It returns the estimate
// and a conservative error bound.
func cubatureQuad(h func([]float64) []float64, n int, bounds [][2]float64, tol float64, maxRegions int) ([]float64, float64) {
	lo := make([]float64, len(bounds))
	hi := make([]float64, len(bounds))
	for i, b := range bounds {
		lo[i], hi[i] = b[0], b[1]
	}
	q := regionQueue{evalRegion(h, n, lo, hi)}
	totalBound := q[0].bound
	heap.Init(&q)
	for totalBound > tol && len(q) < maxRegions {
		worst := heap.Pop(&q).(*region)

		axis := 0
		for i := range worst.lo {
			if worst.hi[i]-worst.lo[i] > worst.hi[axis]-worst.lo[axis] {
				axis = i
			}
		}
		mid := 0.5 * (worst.lo[axis] + worst.hi[axis])

		lhi := append([]float64(nil), worst.hi...)
		lhi[axis] = mid
		rlo := append([]float64(nil), worst.lo...)
		rlo[axis] = mid

		left := evalRegion(h, n, worst.lo, lhi)
		right := evalRegion(h, n, rlo, worst.hi)
		totalBound += left.bound + right.bound - worst.bound
		heap.Push(&q, left)
		heap.Push(&q, right)
	}

	vals := make([]float64, n)
	var bound float64
	for _, r := range q {
		for i := range vals {
			vals[i] += r.vals[i]
		}
		bound += r.bound
	}
	return vals, bound
}

// evalRegion computes the tensor-product 7-15 pair over a box of dimension
// one or two.
func evalRegion(h func([]float64) []float64, n int, lo, hi []float64) *region {
	k := make([]float64, n)
	g := make([]float64, n)
	switch len(lo) {
	case 1:
		c := 0.5 * (lo[0] + hi[0])
		hw := 0.5 * (hi[0] - lo[0])
		u := make([]float64, 1)
		for _, ci := range gaussKronrodCoeffs15 {
			wk, wg, x := ci[0], ci[1], ci[2]
			u[0] = c + hw*x
			v := h(u)
			for j := 0; j < n; j++ {
				k[j] += wk * v[j] * hw
				g[j] += wg * v[j] * hw
			}
		}
	case 2:
		c0 := 0.5 * (lo[0] + hi[0])
		hw0 := 0.5 * (hi[0] - lo[0])
		c1 := 0.5 * (lo[1] + hi[1])
		hw1 := 0.5 * (hi[1] - lo[1])
		u := make([]float64, 2)
		for _, ci := range gaussKronrodCoeffs15 {
			for _, cj := range gaussKronrodCoeffs15 {
				u[0] = c0 + hw0*ci[2]
				u[1] = c1 + hw1*cj[2]
				v := h(u)
				wk := ci[0] * cj[0] * hw0 * hw1
				wg := ci[1] * cj[1] * hw0 * hw1
				for j := 0; j < n; j++ {
					k[j] += wk * v[j]
					g[j] += wg * v[j]
				}
			}
		}
	default:
		panic("unreachable")
	}
	var bound float64
	for i := range k {
		bound = max(bound, math.Abs(k[i]-g[i]))
	}
	return &region{
		lo:    append([]float64(nil), lo...),
		hi:    append([]float64(nil), hi...),
		vals:  k,
		bound: bound,
	}
}
