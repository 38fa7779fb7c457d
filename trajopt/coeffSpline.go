package trajopt

// PolynomialVars exposes one segment's raw polynomial coefficients as a variable block.
type PolynomialVars struct {
	name string
	poly *CoeffPolynomial
}

// NewPolynomialVars wraps a polynomial as the variable block named name.
func NewPolynomialVars(name string, poly *CoeffPolynomial) *PolynomialVars {
	return &PolynomialVars{name: name, poly: poly}
}

// Name returns the block's identifier within a composite.
func (pv *PolynomialVars) Name() string {
	return pv.name
}

// Polynomial returns the wrapped polynomial.
func (pv *PolynomialVars) Polynomial() *CoeffPolynomial {
	return pv.poly
}

// Values returns the coefficients, dimension-major, lowest order first.
func (pv *PolynomialVars) Values() []float64 {
	vals := make([]float64, 0, pv.poly.Dim()*(pv.poly.Order()+1))
	for d := 0; d < pv.poly.Dim(); d++ {
		for k := 0; k <= pv.poly.Order(); k++ {
			vals = append(vals, pv.poly.Coeff(d, k))
		}
	}
	return vals
}

// SetValues assigns the coefficients from a flat vector.
func (pv *PolynomialVars) SetValues(vals []float64) error {
	want := pv.poly.Dim() * (pv.poly.Order() + 1)
	if len(vals) != want {
		return NewValueCountError(pv.name, want, len(vals))
	}
	i := 0
	for d := 0; d < pv.poly.Dim(); d++ {
		for k := 0; k <= pv.poly.Order(); k++ {
			pv.poly.SetCoeff(d, k, vals[i])
			i++
		}
	}
	return nil
}

// Bounds leaves every coefficient free.
func (pv *PolynomialVars) Bounds() []Bound {
	bounds := make([]Bound, pv.poly.Dim()*(pv.poly.Order()+1))
	for i := range bounds {
		bounds[i] = unbounded()
	}
	return bounds
}

// Evaluate samples the polynomial at a local time offset.
func (pv *PolynomialVars) Evaluate(t float64) State {
	return pv.poly.Evaluate(t)
}

// CoeffSpline strings per-segment coefficient polynomials over fixed durations into one
// samplable trajectory. The segment blocks are added to the composite individually as
// free variables; the spline itself is added only for lookup and contributes no values of
// its own. Continuity between segments is left to external constraints.
type CoeffSpline struct {
	name      string
	durations []float64
	segments  []*PolynomialVars
}

// NewCoeffSpline returns an empty coefficient spline over the given segment durations.
func NewCoeffSpline(name string, durations []float64) *CoeffSpline {
	owned := make([]float64, len(durations))
	copy(owned, durations)
	return &CoeffSpline{name: name, durations: owned}
}

// Name returns the spline's identifier within a composite.
func (s *CoeffSpline) Name() string {
	return s.name
}

// AddSegment appends the next segment's variable block.
func (s *CoeffSpline) AddSegment(vars *PolynomialVars) {
	s.segments = append(s.segments, vars)
}

// SegmentCount returns the number of segments added so far.
func (s *CoeffSpline) SegmentCount() int {
	return len(s.segments)
}

// TotalTime is the sum of the segment durations.
func (s *CoeffSpline) TotalTime() float64 {
	return totalTime(s.durations)
}

// InitializeVariables seeds every segment so the initial guess is the straight line from
// start to end over the whole spline: constant and linear coefficients set, the rest zero.
func (s *CoeffSpline) InitializeVariables(start, end []float64) {
	total := totalTime(s.durations)
	elapsed := 0.0
	for i, seg := range s.segments {
		for d := 0; d < seg.poly.Dim(); d++ {
			slope := 0.0
			if total > 0 {
				slope = (end[d] - start[d]) / total
			}
			for k := 0; k <= seg.poly.Order(); k++ {
				seg.poly.SetCoeff(d, k, 0)
			}
			seg.poly.SetCoeff(d, 0, start[d]+slope*elapsed)
			if seg.poly.Order() >= 1 {
				seg.poly.SetCoeff(d, 1, slope)
			}
		}
		elapsed += s.durations[i]
	}
}

// Values contributes nothing: the free values live in the per-segment blocks.
func (s *CoeffSpline) Values() []float64 {
	return nil
}

// SetValues accepts only an empty assignment, matching Values.
func (s *CoeffSpline) SetValues(vals []float64) error {
	if len(vals) != 0 {
		return NewValueCountError(s.name, 0, len(vals))
	}
	return nil
}

// Bounds contributes nothing, matching Values.
func (s *CoeffSpline) Bounds() []Bound {
	return nil
}

// Evaluate locates the segment containing t and samples it at the local time offset.
func (s *CoeffSpline) Evaluate(t float64) State {
	i, local := segmentIndex(s.durations, t)
	return s.segments[i].Evaluate(local)
}
