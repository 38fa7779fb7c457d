// Package nlp assembles the nonlinear program around a variable composite and adapts it to
// an external solver. Costs and constraints are produced by external factories; this
// package only defines the interfaces they satisfy and records per-iteration variable
// snapshots for trajectory playback.
package nlp

import (
	"go.viam.com/locomotion/trajopt"
)

// Cost is a scalar objective term over the flattened variable vector.
type Cost interface {
	Name() string
	Evaluate(x []float64) float64
}

// Constraint is a vector-valued function of the flattened variable vector whose rows must
// stay within Bounds. Rows with equal lower and upper bound are equalities.
type Constraint interface {
	Name() string
	Evaluate(x []float64) []float64
	Bounds() []trajopt.Bound
}

// Factory produces the costs and constraints of a problem from its variable set. It is the
// external collaborator that owns the numeric formulation.
type Factory interface {
	Costs(vars *trajopt.Composite) []Cost
	Constraints(vars *trajopt.Composite) []Constraint
}

// Problem owns one optimization problem's variables, costs and constraints, plus the
// variable snapshots recorded while solving. Whatever the solver last assigned stays in
// the composite, converged or not.
type Problem struct {
	vars        *trajopt.Composite
	costs       []Cost
	constraints []Constraint
	iterates    [][]float64
}

// NewProblem wraps a fully assembled composite.
func NewProblem(vars *trajopt.Composite) *Problem {
	return &Problem{vars: vars}
}

// Variables returns the problem's composite.
func (p *Problem) Variables() *trajopt.Composite {
	return p.vars
}

// AddCost appends an objective term.
func (p *Problem) AddCost(c Cost) {
	p.costs = append(p.costs, c)
}

// AddConstraint appends a constraint set.
func (p *Problem) AddConstraint(c Constraint) {
	p.constraints = append(p.constraints, c)
}

// Constraints returns the registered constraint sets.
func (p *Problem) Constraints() []Constraint {
	return p.constraints
}

// EvaluateCosts sums all objective terms at x. A problem with no costs is a pure
// feasibility problem and scores zero everywhere.
func (p *Problem) EvaluateCosts(x []float64) float64 {
	sum := 0.0
	for _, c := range p.costs {
		sum += c.Evaluate(x)
	}
	return sum
}

// RecordIterate stores a copy of x as the next solver iterate.
func (p *Problem) RecordIterate(x []float64) {
	snap := make([]float64, len(x))
	copy(snap, x)
	p.iterates = append(p.iterates, snap)
}

// IterationCount returns the number of recorded iterates.
func (p *Problem) IterationCount() int {
	return len(p.iterates)
}

// IterateValues returns the variable snapshot recorded at iteration i.
func (p *Problem) IterateValues(i int) ([]float64, error) {
	if i < 0 || i >= len(p.iterates) {
		return nil, NewIterateIndexError(i, len(p.iterates))
	}
	vals := make([]float64, len(p.iterates[i]))
	copy(vals, p.iterates[i])
	return vals, nil
}
