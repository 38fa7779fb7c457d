//go:build !windows && !no_cgo

package nlp

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/go-nlopt/nlopt"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var errEmptyProblem = errors.New("cannot solve a problem with no free variables")

const (
	// Stop optimizing when iterations change by less than this much.
	defaultFtolRel = 1e-6
	defaultXtolRel = 1e-6
	defaultMaxEval = 4001

	// finite-difference step for numeric gradients
	defaultJump = 1e-8
)

// Solve hands the problem to nlopt and blocks until the solver terminates. The composite
// is left holding the last values nlopt assigned, and every objective evaluation is
// recorded as an iterate for later trajectory playback. A non-convergence status is
// returned as an error, but the recorded iterates and final values remain usable.
func Solve(problem *Problem, kind SolverKind, logger golog.Logger) error {
	x := problem.Variables().Values()
	if len(x) == 0 {
		return errEmptyProblem
	}

	algorithm, err := algorithmFor(kind)
	if err != nil {
		return err
	}
	opt, err := nlopt.NewNLopt(algorithm, uint(len(x)))
	if err != nil {
		return errors.Wrap(err, "nlopt creation error")
	}
	defer opt.Destroy()

	bounds := problem.Variables().Bounds()
	lower := make([]float64, len(bounds))
	upper := make([]float64, len(bounds))
	for i, b := range bounds {
		lower[i] = b.Lower
		upper[i] = b.Upper
	}

	// Gradient is, under the hood, an unsafe C structure that we are meant to mutate in
	// place.
	minFunc := func(x, gradient []float64) float64 {
		cost := problem.EvaluateCosts(x)
		if len(gradient) > 0 {
			numericGradient(x, gradient, cost, problem.EvaluateCosts)
		}
		problem.RecordIterate(x)
		return cost
	}

	err = multierr.Combine(
		opt.SetLowerBounds(lower),
		opt.SetUpperBounds(upper),
		opt.SetFtolRel(defaultFtolRel),
		opt.SetXtolRel(defaultXtolRel),
		opt.SetMaxEval(defaultMaxEval),
		opt.SetMinObjective(minFunc),
	)
	for _, constraint := range problem.Constraints() {
		err = multierr.Combine(err, addConstraint(opt, constraint))
	}
	if err != nil {
		return errors.Wrap(err, "nlopt setup error")
	}

	solution, score, solveErr := opt.Optimize(x)
	if solution != nil {
		if err := problem.Variables().SetValues(solution); err != nil {
			return err
		}
		problem.RecordIterate(solution)
	}
	if solveErr != nil {
		return errors.Wrap(solveErr, "nlopt failed to converge")
	}
	logger.Debugw("nlopt finished", "score", score, "iterates", problem.IterationCount())
	return nil
}

func algorithmFor(kind SolverKind) (nlopt.Algorithm, error) {
	switch kind {
	case SolverSLSQP:
		return nlopt.LD_SLSQP, nil
	case SolverLBFGS:
		return nlopt.LD_LBFGS, nil
	default:
		return 0, NewSolverKindError(kind)
	}
}

// numericGradient fills gradient with forward finite differences of eval around x, reusing
// the already-computed value at x.
func numericGradient(x, gradient []float64, at float64, eval func([]float64) float64) {
	for i := range gradient {
		orig := x[i]
		x[i] = orig + defaultJump
		gradient[i] = (eval(x) - at) / defaultJump
		x[i] = orig
	}
}

// addConstraint registers one constraint set with nlopt. Rows with equal bounds become
// equality constraints h(x)=0; every finite side of the remaining rows becomes one
// inequality, g(x)-ub<=0 or lb-g(x)<=0.
func addConstraint(opt *nlopt.NLopt, constraint Constraint) error {
	bounds := constraint.Bounds()

	var eqRows []int
	var ineqSides []ineqSide
	for i, b := range bounds {
		switch {
		case b.Lower == b.Upper:
			eqRows = append(eqRows, i)
		default:
			if !math.IsInf(b.Upper, 1) {
				ineqSides = append(ineqSides, ineqSide{row: i, upper: true})
			}
			if !math.IsInf(b.Lower, -1) {
				ineqSides = append(ineqSides, ineqSide{row: i, upper: false})
			}
		}
	}

	var err error
	if len(eqRows) > 0 {
		eqFunc := func(result, x, gradient []float64) {
			evaluateResiduals(result, x, gradient, func(x []float64) []float64 {
				g := constraint.Evaluate(x)
				out := make([]float64, len(eqRows))
				for m, r := range eqRows {
					out[m] = g[r] - bounds[r].Lower
				}
				return out
			})
		}
		err = multierr.Append(err, opt.AddEqualityMConstraint(eqFunc, make([]float64, len(eqRows))))
	}
	if len(ineqSides) > 0 {
		ineqFunc := func(result, x, gradient []float64) {
			evaluateResiduals(result, x, gradient, func(x []float64) []float64 {
				g := constraint.Evaluate(x)
				out := make([]float64, len(ineqSides))
				for m, side := range ineqSides {
					if side.upper {
						out[m] = g[side.row] - bounds[side.row].Upper
					} else {
						out[m] = bounds[side.row].Lower - g[side.row]
					}
				}
				return out
			})
		}
		err = multierr.Append(err, opt.AddInequalityMConstraint(ineqFunc, make([]float64, len(ineqSides))))
	}
	return err
}

type ineqSide struct {
	row   int
	upper bool
}

// evaluateResiduals fills result with residuals(x) and, when nlopt asks for it, the m x n
// jacobian by forward finite differences.
func evaluateResiduals(result, x, gradient []float64, residuals func([]float64) []float64) {
	at := residuals(x)
	copy(result, at)
	if len(gradient) == 0 {
		return
	}
	n := len(x)
	for i := 0; i < n; i++ {
		orig := x[i]
		x[i] = orig + defaultJump
		shifted := residuals(x)
		x[i] = orig
		for m := range at {
			gradient[m*n+i] = (shifted[m] - at[m]) / defaultJump
		}
	}
}
