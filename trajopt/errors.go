package trajopt

import "github.com/pkg/errors"

func NewDuplicateComponentError(name string) error {
	return errors.Errorf("component %q already added to composite", name)
}

func NewComponentNotFoundError(composite, name string) error {
	return errors.Errorf("no component named %q in composite %q", name, composite)
}

func NewComponentCapabilityError(composite, name string) error {
	return errors.Errorf("component %q in composite %q does not provide the requested capability", name, composite)
}

func NewValueCountError(name string, want, got int) error {
	return errors.Errorf("%q holds %d values but %d were assigned", name, want, got)
}

func NewPhaseDurationError(name string, duration float64) error {
	return errors.Errorf("contact schedule %q requires positive phase durations, got %f", name, duration)
}
