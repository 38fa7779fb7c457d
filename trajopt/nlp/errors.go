package nlp

import "github.com/pkg/errors"

func NewSolverKindError(kind SolverKind) error {
	return errors.Errorf("solver kind %d is not defined", kind)
}

func NewIterateIndexError(i, count int) error {
	return errors.Errorf("no iterate %d recorded, have %d", i, count)
}
