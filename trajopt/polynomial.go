package trajopt

// cubicHermite evaluates the cubic polynomial interpolating (p0, v0) at local time 0 and
// (p1, v1) at local time d, at local time t.
func cubicHermite(p0, v0, p1, v1, d, t float64) (pos, vel, acc float64) {
	if d <= 0 {
		return p0, v0, 0
	}
	// coefficients of a + b*t + c*t^2 + e*t^3
	a := p0
	b := v0
	c := (3*(p1-p0)/d - 2*v0 - v1) / d
	e := (2*(p0-p1)/d + v0 + v1) / (d * d)

	pos = a + t*(b+t*(c+t*e))
	vel = b + t*(2*c+t*3*e)
	acc = 2*c + 6*e*t
	return pos, vel, acc
}

// CoeffPolynomial stores raw polynomial coefficients per dimension, lowest order first.
// It is the storage and evaluation backing of the coefficient base representation; it
// knows nothing about continuity with its neighbors.
type CoeffPolynomial struct {
	dim   int
	coeff [][]float64
}

// NewCoeffPolynomial returns a zero polynomial of the given order for each of dim
// dimensions.
func NewCoeffPolynomial(order, dim int) *CoeffPolynomial {
	coeff := make([][]float64, dim)
	for i := range coeff {
		coeff[i] = make([]float64, order+1)
	}
	return &CoeffPolynomial{dim: dim, coeff: coeff}
}

// Dim returns the spatial dimensionality of the polynomial.
func (p *CoeffPolynomial) Dim() int {
	return p.dim
}

// Order returns the polynomial order.
func (p *CoeffPolynomial) Order() int {
	return len(p.coeff[0]) - 1
}

// Coeff returns the coefficient of t^k in the given dimension.
func (p *CoeffPolynomial) Coeff(dim, k int) float64 {
	return p.coeff[dim][k]
}

// SetCoeff assigns the coefficient of t^k in the given dimension.
func (p *CoeffPolynomial) SetCoeff(dim, k int, v float64) {
	p.coeff[dim][k] = v
}

// Evaluate samples the polynomial and its first two derivatives at local time t.
func (p *CoeffPolynomial) Evaluate(t float64) State {
	state := newState(p.dim)
	for d := 0; d < p.dim; d++ {
		tk := 1.0
		for k := 0; k <= p.Order(); k++ {
			state.Pos[d] += p.coeff[d][k] * tk
			tk *= t
		}
		tk = 1.0
		for k := 1; k <= p.Order(); k++ {
			state.Vel[d] += float64(k) * p.coeff[d][k] * tk
			tk *= t
		}
		tk = 1.0
		for k := 2; k <= p.Order(); k++ {
			state.Acc[d] += float64(k*(k-1)) * p.coeff[d][k] * tk
			tk *= t
		}
	}
	return state
}
