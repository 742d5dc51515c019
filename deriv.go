package integrate

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// derivStepScale is the finite-difference step relative to the width of the
// parameter domain. Central differences with h = ∛ε·width balance truncation
// against roundoff; on smooth curves the relative error of the estimate is
// on the order of 1e-10.
var derivStepScale = math.Cbrt(2.220446049250313e-16)

// Derivative estimates g'(t) component-wise using finite differences,
// without ever evaluating g outside [t0, t1]. Interior points use symmetric
// (central) differences; points within one step of a domain boundary use the
// one-sided formula that stays inside the domain.
//
// The step is scaled to the width of the parameter domain; for unbounded
// domains the magnitude of t takes the width's place.
func Derivative(g func(float64) Point, t, t0, t1 float64) Vec {
	width := t1 - t0
	if math.IsInf(width, 0) {
		width = max(1, math.Abs(t))
	}
	step := derivStepScale * width

	formula := fd.Central
	switch {
	case t-step < t0:
		formula = fd.Forward
	case t+step > t1:
		formula = fd.Backward
	}

	out := make(Vec, len(g(t)))
	settings := &fd.Settings{Formula: formula, Step: step}
	for i := range out {
		out[i] = fd.Derivative(func(x float64) float64 {
			return g(x)[i]
		}, t, settings)
	}
	return out
}
