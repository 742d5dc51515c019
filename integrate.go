package integrate

// Result is the outcome of an integration. Adaptive algorithms report a
// conservative absolute error bound; fixed-order Gauss-Legendre reports a
// point estimate only, with HasBound left false.
type Result struct {
	Value    Quantity
	Bound    float64
	HasBound bool
}

// Integral computes the measure-weighted integral of f over g with
// fixed-order Gauss-Legendre quadrature at [DefaultOrder]: the line integral
// ∫ f ds for one-dimensional geometries, the surface integral ∫ f dA for
// planes. See [Integrand] for the accepted signatures of f.
//
// Every call is a pure function of its arguments: no state is shared
// between calls, and concurrent calls are independent.
func Integral(f Integrand, g Geometry) (Result, error) {
	return IntegralWith(GaussLegendre{}, f, g)
}

// IntegralWith is [Integral] with an explicit quadrature algorithm. The
// (geometry, algorithm) combination must be a supported cell of the
// capability table, otherwise it fails with [ErrUnsupportedCombination].
func IntegralWith(alg Algorithm, f Integrand, g Geometry) (Result, error) {
	kind := lineKind
	if g.Kind() == PlaneKind {
		kind = surfaceKind
	}
	return integral(alg, f, g, kind)
}

// LineIntegral computes ∫ f ds over a one-dimensional geometry. Requesting
// it over a two-dimensional geometry fails with
// [ErrUnsupportedCombination].
func LineIntegral(alg Algorithm, f Integrand, g Geometry) (Result, error) {
	return integral(alg, f, g, lineKind)
}

// SurfaceIntegral computes ∫ f dA over a two-dimensional geometry.
// Requesting it over a one-dimensional geometry fails with
// [ErrUnsupportedCombination].
func SurfaceIntegral(alg Algorithm, f Integrand, g Geometry) (Result, error) {
	return integral(alg, f, g, surfaceKind)
}

func integral(alg Algorithm, f Integrand, g Geometry, kind integralKind) (Result, error) {
	if tr, ok := g.(Trajectory); ok {
		return trajectoryIntegral(alg, f, tr, kind)
	}
	if err := checkSupport(g.Kind(), kind, alg); err != nil {
		return Result{}, err
	}
	pm, err := resolve(g)
	if err != nil {
		return Result{}, err
	}
	wi, err := wrapIntegrand(f, pm.probePoint())
	if err != nil {
		return Result{}, err
	}
	h := func(u []float64) []float64 {
		vals := wi.eval(pm.pos(u))
		s := pm.scale(u)
		for i := range vals {
			vals[i] *= s
		}
		return vals
	}
	vals, bound, hasBound := dispatch(alg, pm, h, wi.n)
	q := wi.rebuild(vals)
	q.dims = withLengthDims(q.dims, pm.dim)
	return Result{Value: q, Bound: bound, HasBound: hasBound}, nil
}

// WorkIntegral computes the directional line integral ∫ F·dr of the vector
// field F along the oriented one-dimensional geometry g. The sign follows
// the geometry's orientation: reversing it negates the result. F must map
// points to vectors of the ambient dimension.
func WorkIntegral(alg Algorithm, F func(Point) Vec, g Geometry) (Result, error) {
	if F == nil {
		panic("integrate: nil vector field")
	}
	if tr, ok := g.(Trajectory); ok {
		return trajectoryWork(alg, F, tr)
	}
	if err := checkSupport(g.Kind(), workKind, alg); err != nil {
		return Result{}, err
	}
	pm, err := resolve(g)
	if err != nil {
		return Result{}, err
	}
	// F·r′ dt already contains the differential scale: the tangent is the
	// unnormalized derivative of the parametrization.
	h := func(u []float64) []float64 {
		return []float64{F(pm.pos(u)).Dot(pm.tangent(u))}
	}
	vals, bound, hasBound := dispatch(alg, pm, h, 1)
	return Result{Value: Quantity{re: vals}, Bound: bound, HasBound: hasBound}, nil
}

// trajectoryIntegral sums the sub-segment integrals of a composite
// trajectory. Zero-length sub-segments (repeated consecutive points)
// contribute nothing; a trajectory whose points all coincide collapses to a
// point and fails with [ErrDegenerateGeometry].
func trajectoryIntegral(alg Algorithm, f Integrand, tr Trajectory, kind integralKind) (Result, error) {
	if len(tr.Points) < 2 {
		return Result{}, ErrEmptyTrajectory
	}
	if err := checkSupport(TrajectoryKind, kind, alg); err != nil {
		return Result{}, err
	}
	if err := checkSignature(f); err != nil {
		return Result{}, err
	}
	var total Result
	got := false
	for _, s := range tr.Segments() {
		if s.Length() == 0 {
			continue
		}
		res, err := integral(alg, f, s, kind)
		if err != nil {
			return Result{}, err
		}
		if !got {
			total = res
			got = true
		} else {
			total.Value = total.Value.Add(res.Value)
			total.Bound += res.Bound
		}
	}
	if !got {
		return Result{}, ErrDegenerateGeometry
	}
	return total, nil
}

func trajectoryWork(alg Algorithm, F func(Point) Vec, tr Trajectory) (Result, error) {
	if len(tr.Points) < 2 {
		return Result{}, ErrEmptyTrajectory
	}
	if err := checkSupport(TrajectoryKind, workKind, alg); err != nil {
		return Result{}, err
	}
	var total Result
	got := false
	for _, s := range tr.Segments() {
		if s.Length() == 0 {
			continue
		}
		res, err := WorkIntegral(alg, F, s)
		if err != nil {
			return Result{}, err
		}
		if !got {
			total = res
			got = true
		} else {
			total.Value = total.Value.Add(res.Value)
			total.Bound += res.Bound
		}
	}
	if !got {
		return Result{}, ErrDegenerateGeometry
	}
	return total, nil
}
