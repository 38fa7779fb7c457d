package locomotion

import "github.com/pkg/errors"

func NewBaseRepresentationError(rep BaseRepresentation) error {
	return errors.Errorf("base representation %d is not defined", rep)
}

func NewLimbCountError(model, params int) error {
	return errors.Errorf("model has %d limbs but parameters carry %d contact timings", model, params)
}

func NewNoProblemError() error {
	return errors.New("no problem built yet, call SolveProblem first")
}
