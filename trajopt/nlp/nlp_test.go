package nlp

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/locomotion/trajopt"
)

type quadraticCost struct{}

func (c quadraticCost) Name() string { return "quadratic" }

func (c quadraticCost) Evaluate(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

type sumConstraint struct{ target float64 }

func (c sumConstraint) Name() string { return "sum" }

func (c sumConstraint) Evaluate(x []float64) []float64 {
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return []float64{sum}
}

func (c sumConstraint) Bounds() []trajopt.Bound {
	return []trajopt.Bound{{c.target, c.target}}
}

func newTestProblem(t *testing.T) *Problem {
	t.Helper()
	vars := trajopt.NewComposite("vars")
	schedule, err := trajopt.NewContactSchedule("schedule", []trajopt.ContactPhase{
		{Duration: 0.5, InContact: true},
		{Duration: 0.5, InContact: false},
	}, 0.1, 1.0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, vars.AddComponent(schedule, true), test.ShouldBeNil)
	return NewProblem(vars)
}

func TestProblemCosts(t *testing.T) {
	p := newTestProblem(t)
	test.That(t, p.EvaluateCosts([]float64{3, 4}), test.ShouldAlmostEqual, 0)

	p.AddCost(quadraticCost{})
	p.AddCost(quadraticCost{})
	test.That(t, p.EvaluateCosts([]float64{3, 4}), test.ShouldAlmostEqual, 50)
}

func TestProblemConstraints(t *testing.T) {
	p := newTestProblem(t)
	p.AddConstraint(sumConstraint{target: 1})
	test.That(t, len(p.Constraints()), test.ShouldEqual, 1)
	test.That(t, p.Constraints()[0].Evaluate([]float64{0.25, 0.75}), test.ShouldResemble, []float64{1.0})
}

func TestProblemIterates(t *testing.T) {
	p := newTestProblem(t)
	test.That(t, p.IterationCount(), test.ShouldEqual, 0)
	_, err := p.IterateValues(0)
	test.That(t, err, test.ShouldNotBeNil)

	x := []float64{0.4, 0.6}
	p.RecordIterate(x)
	x[0] = 99 // recorded iterates are snapshots
	p.RecordIterate([]float64{0.2, 0.8})

	test.That(t, p.IterationCount(), test.ShouldEqual, 2)
	first, err := p.IterateValues(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, first, test.ShouldResemble, []float64{0.4, 0.6})
	second, err := p.IterateValues(1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, second, test.ShouldResemble, []float64{0.2, 0.8})

	_, err = p.IterateValues(2)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestIterateRoundTrip(t *testing.T) {
	p := newTestProblem(t)
	vals := p.Variables().Values()
	p.RecordIterate(vals)

	recorded, err := p.IterateValues(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Variables().SetValues(recorded), test.ShouldBeNil)
	test.That(t, p.Variables().Values(), test.ShouldResemble, vals)
}
