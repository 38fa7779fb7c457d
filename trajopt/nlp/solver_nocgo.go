//go:build windows || no_cgo

package nlp

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
)

var errNotSupported = errors.New("nlopt solving is not supported on this build")

// Solve is unavailable without cgo; problem assembly and trajectory extraction still work.
func Solve(problem *Problem, kind SolverKind, logger golog.Logger) error {
	return errNotSupported
}
