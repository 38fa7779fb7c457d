// Package trajopt builds the decision-variable model of a legged-robot trajectory
// optimization problem: per-limb contact schedules, phase-based motion and force splines,
// base-pose splines, and the composite that flattens all of them into the value and bound
// vectors consumed by an external nonlinear-program solver.
package trajopt

import "math"

// Bound restricts one scalar decision value to the interval [Lower, Upper].
type Bound struct {
	Lower float64
	Upper float64
}

func unbounded() Bound {
	return Bound{math.Inf(-1), math.Inf(1)}
}

func equality(v float64) Bound {
	return Bound{v, v}
}

// Component is one named block of decision values. Values and Bounds are index-aligned;
// SetValues must accept exactly what Values returned.
type Component interface {
	Name() string
	Values() []float64
	SetValues(vals []float64) error
	Bounds() []Bound
}

type compositeEntry struct {
	component Component
	variable  bool
}

// Composite is an ordered, named aggregate of variable blocks. Blocks added with
// variable=false are retrievable and evaluable but contribute nothing to the flattened
// optimization vector.
type Composite struct {
	name    string
	order   []string
	entries map[string]compositeEntry
}

// NewComposite returns an empty composite with the given name.
func NewComposite(name string) *Composite {
	return &Composite{
		name:    name,
		entries: map[string]compositeEntry{},
	}
}

// Name returns the name of the composite.
func (c *Composite) Name() string {
	return c.name
}

// AddComponent inserts a block under its own name. Names are unique within a composite.
func (c *Composite) AddComponent(comp Component, variable bool) error {
	name := comp.Name()
	if _, ok := c.entries[name]; ok {
		return NewDuplicateComponentError(name)
	}
	c.order = append(c.order, name)
	c.entries[name] = compositeEntry{comp, variable}
	return nil
}

// ComponentNames returns the names of all blocks in insertion order.
func (c *Composite) ComponentNames() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// HasComponent reports whether a block with the given name was added.
func (c *Composite) HasComponent(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// GetComponent retrieves the block stored under name, asserting that it provides the
// requested capability. A missing name or a capability mismatch signals a wiring bug and
// fails rather than returning a partial value.
func GetComponent[T any](c *Composite, name string) (T, error) {
	var zero T
	entry, ok := c.entries[name]
	if !ok {
		return zero, NewComponentNotFoundError(c.name, name)
	}
	typed, ok := entry.component.(T)
	if !ok {
		return zero, NewComponentCapabilityError(c.name, name)
	}
	return typed, nil
}

// Rows returns the total number of free scalars across all variable blocks.
func (c *Composite) Rows() int {
	n := 0
	for _, name := range c.order {
		entry := c.entries[name]
		if entry.variable {
			n += len(entry.component.Values())
		}
	}
	return n
}

// Values returns the flattened free values of all variable blocks in insertion order.
func (c *Composite) Values() []float64 {
	vals := make([]float64, 0, c.Rows())
	for _, name := range c.order {
		entry := c.entries[name]
		if entry.variable {
			vals = append(vals, entry.component.Values()...)
		}
	}
	return vals
}

// Bounds returns the bounds matching Values index for index.
func (c *Composite) Bounds() []Bound {
	bounds := make([]Bound, 0, c.Rows())
	for _, name := range c.order {
		entry := c.entries[name]
		if entry.variable {
			bounds = append(bounds, entry.component.Bounds()...)
		}
	}
	return bounds
}

// SetValues distributes a flattened value vector back onto the variable blocks, restoring
// exactly the block-local interpretation that Values flattened.
func (c *Composite) SetValues(vals []float64) error {
	if len(vals) != c.Rows() {
		return NewValueCountError(c.name, c.Rows(), len(vals))
	}
	offset := 0
	for _, name := range c.order {
		entry := c.entries[name]
		if !entry.variable {
			continue
		}
		n := len(entry.component.Values())
		if err := entry.component.SetValues(vals[offset : offset+n]); err != nil {
			return err
		}
		offset += n
	}
	return nil
}
