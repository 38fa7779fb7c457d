package trajopt

import (
	"testing"

	"go.viam.com/test"
)

func TestCubicHermiteEndpoints(t *testing.T) {
	p0, v0 := 1.0, -0.5
	p1, v1 := 3.0, 2.0
	d := 0.7

	pos, vel, _ := cubicHermite(p0, v0, p1, v1, d, 0)
	test.That(t, pos, test.ShouldAlmostEqual, p0)
	test.That(t, vel, test.ShouldAlmostEqual, v0)

	pos, vel, _ = cubicHermite(p0, v0, p1, v1, d, d)
	test.That(t, pos, test.ShouldAlmostEqual, p1, 1e-9)
	test.That(t, vel, test.ShouldAlmostEqual, v1, 1e-9)
}

func TestCubicHermiteDerivatives(t *testing.T) {
	p0, v0 := 0.0, 1.0
	p1, v1 := 2.0, -1.0
	d := 1.3
	h := 1e-6

	for _, at := range []float64{0.2, 0.65, 1.1} {
		before, _, _ := cubicHermite(p0, v0, p1, v1, d, at-h)
		after, _, _ := cubicHermite(p0, v0, p1, v1, d, at+h)
		_, vel, acc := cubicHermite(p0, v0, p1, v1, d, at)
		test.That(t, vel, test.ShouldAlmostEqual, (after-before)/(2*h), 1e-4)

		_, velBefore, _ := cubicHermite(p0, v0, p1, v1, d, at-h)
		_, velAfter, _ := cubicHermite(p0, v0, p1, v1, d, at+h)
		test.That(t, acc, test.ShouldAlmostEqual, (velAfter-velBefore)/(2*h), 1e-4)
	}
}

func TestCoeffPolynomialEvaluate(t *testing.T) {
	poly := NewCoeffPolynomial(2, 1)
	// 1 + 2t + 3t^2
	poly.SetCoeff(0, 0, 1)
	poly.SetCoeff(0, 1, 2)
	poly.SetCoeff(0, 2, 3)

	state := poly.Evaluate(2)
	test.That(t, state.Pos[0], test.ShouldAlmostEqual, 17)
	test.That(t, state.Vel[0], test.ShouldAlmostEqual, 14)
	test.That(t, state.Acc[0], test.ShouldAlmostEqual, 6)

	state = poly.Evaluate(0)
	test.That(t, state.Pos[0], test.ShouldAlmostEqual, 1)
	test.That(t, state.Vel[0], test.ShouldAlmostEqual, 2)
	test.That(t, state.Acc[0], test.ShouldAlmostEqual, 6)
}
