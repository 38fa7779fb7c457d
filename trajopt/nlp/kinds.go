package nlp

// SolverKind selects the external solver algorithm a problem is handed to. An
// unrecognized kind is a configuration error and aborts before solving.
type SolverKind int

// The supported solver algorithms.
const (
	// SolverSLSQP is sequential quadratic programming, the only kind that handles
	// equality and inequality constraints.
	SolverSLSQP SolverKind = iota
	// SolverLBFGS is quasi-Newton descent for unconstrained or bound-only problems.
	SolverLBFGS
)
