package trajopt

// Axis indexes one spatial dimension of a spline value.
type Axis int

// The three spatial axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// AllAxes returns every axis of a dim-dimensional spline.
func AllAxes(dim int) []Axis {
	axes := make([]Axis, dim)
	for i := range axes {
		axes[i] = Axis(i)
	}
	return axes
}

// ValueKind selects which part of a node a boundary constraint targets.
type ValueKind int

// The two node value kinds.
const (
	Position ValueKind = iota
	Velocity
)

// Node is a control point of a hermite spline, carrying position and velocity per
// dimension.
type Node struct {
	Pos []float64
	Vel []float64
}

// boundaryBound fixes a subset of axes of the first or last node to an exact value.
// Axes not listed stay free; multiple bounds may target the same node on disjoint axes.
type boundaryBound struct {
	kind  ValueKind
	axes  []Axis
	value []float64
	last  bool
}

// NodeSpline is a piecewise-cubic hermite spline fully determined by its nodes: position
// and velocity continuity between segments hold by construction. Each node's position and
// velocity components are free scalars unless a boundary bound pins them.
type NodeSpline struct {
	name      string
	dim       int
	nodes     []Node
	durations []float64
	boundary  []boundaryBound
}

// NewNodeSpline returns a spline with segmentCount cubic segments (segmentCount+1 nodes),
// all values zero and all segment durations unset until InitializeVariables is called.
func NewNodeSpline(name string, dim, segmentCount int) *NodeSpline {
	nodes := make([]Node, segmentCount+1)
	for i := range nodes {
		nodes[i] = Node{Pos: make([]float64, dim), Vel: make([]float64, dim)}
	}
	return &NodeSpline{
		name:      name,
		dim:       dim,
		nodes:     nodes,
		durations: make([]float64, segmentCount),
	}
}

// Name returns the spline's identifier within a composite.
func (s *NodeSpline) Name() string {
	return s.name
}

// Dim returns the spatial dimensionality of the spline.
func (s *NodeSpline) Dim() int {
	return s.dim
}

// NodeCount returns the number of nodes.
func (s *NodeSpline) NodeCount() int {
	return len(s.nodes)
}

// Node returns the i-th node.
func (s *NodeSpline) Node(i int) Node {
	return s.nodes[i]
}

// SegmentDurations returns the current per-segment durations.
func (s *NodeSpline) SegmentDurations() []float64 {
	durations := make([]float64, len(s.durations))
	copy(durations, s.durations)
	return durations
}

// TotalTime is the sum of the segment durations.
func (s *NodeSpline) TotalTime() float64 {
	return totalTime(s.durations)
}

// InitializeVariables seeds every node position by linear interpolation between start and
// end, proportioned by cumulative segment time, and zeroes all velocities. Boundary bounds
// added before or after initialization still win: they rewrite the node values they pin.
func (s *NodeSpline) InitializeVariables(start, end, durations []float64) {
	copy(s.durations, durations)
	total := totalTime(s.durations)
	elapsed := 0.0
	for i := range s.nodes {
		fraction := 0.0
		if total > 0 {
			fraction = elapsed / total
		}
		for d := 0; d < s.dim; d++ {
			s.nodes[i].Pos[d] = start[d] + fraction*(end[d]-start[d])
			s.nodes[i].Vel[d] = 0
		}
		if i < len(s.durations) {
			elapsed += s.durations[i]
		}
	}
	for _, bb := range s.boundary {
		s.applyBoundValue(bb)
	}
}

// AddStartBound pins the listed axes of the first node to value, writing the value into
// the node and recording an equality bound for the solver.
func (s *NodeSpline) AddStartBound(kind ValueKind, axes []Axis, value []float64) {
	s.addBound(boundaryBound{kind: kind, axes: axes, value: value, last: false})
}

// AddFinalBound pins the listed axes of the last node to value.
func (s *NodeSpline) AddFinalBound(kind ValueKind, axes []Axis, value []float64) {
	s.addBound(boundaryBound{kind: kind, axes: axes, value: value, last: true})
}

func (s *NodeSpline) addBound(bb boundaryBound) {
	s.boundary = append(s.boundary, bb)
	s.applyBoundValue(bb)
}

func (s *NodeSpline) applyBoundValue(bb boundaryBound) {
	node := &s.nodes[0]
	if bb.last {
		node = &s.nodes[len(s.nodes)-1]
	}
	for _, axis := range bb.axes {
		if bb.kind == Position {
			node.Pos[axis] = bb.value[axis]
		} else {
			node.Vel[axis] = bb.value[axis]
		}
	}
}

// scalarIndex maps (node, kind, axis) to the flat index used by Values and Bounds. The
// layout is node-major: node 0 positions, node 0 velocities, node 1 positions, ...
func (s *NodeSpline) scalarIndex(node int, kind ValueKind, axis Axis) int {
	idx := node * 2 * s.dim
	if kind == Velocity {
		idx += s.dim
	}
	return idx + int(axis)
}

// Values returns all node positions and velocities, node-major.
func (s *NodeSpline) Values() []float64 {
	vals := make([]float64, 2*s.dim*len(s.nodes))
	for i, node := range s.nodes {
		copy(vals[s.scalarIndex(i, Position, 0):], node.Pos)
		copy(vals[s.scalarIndex(i, Velocity, 0):], node.Vel)
	}
	return vals
}

// SetValues assigns all node positions and velocities from a flat vector.
func (s *NodeSpline) SetValues(vals []float64) error {
	if len(vals) != 2*s.dim*len(s.nodes) {
		return NewValueCountError(s.name, 2*s.dim*len(s.nodes), len(vals))
	}
	for i := range s.nodes {
		copy(s.nodes[i].Pos, vals[s.scalarIndex(i, Position, 0):s.scalarIndex(i, Position, 0)+s.dim])
		copy(s.nodes[i].Vel, vals[s.scalarIndex(i, Velocity, 0):s.scalarIndex(i, Velocity, 0)+s.dim])
	}
	return nil
}

// Bounds returns unbounded intervals for every scalar except those pinned by boundary
// bounds, which become equalities.
func (s *NodeSpline) Bounds() []Bound {
	bounds := make([]Bound, 2*s.dim*len(s.nodes))
	for i := range bounds {
		bounds[i] = unbounded()
	}
	s.applyBoundaryBounds(bounds)
	return bounds
}

func (s *NodeSpline) applyBoundaryBounds(bounds []Bound) {
	for _, bb := range s.boundary {
		node := 0
		if bb.last {
			node = len(s.nodes) - 1
		}
		for _, axis := range bb.axes {
			bounds[s.scalarIndex(node, bb.kind, axis)] = equality(bb.value[axis])
		}
	}
}

// Evaluate locates the segment containing t and evaluates its cubic hermite polynomial and
// derivatives at the local time offset. Boundary instants belong to the later segment.
func (s *NodeSpline) Evaluate(t float64) State {
	i, local := segmentIndex(s.durations, t)
	state := newState(s.dim)
	from, to := s.nodes[i], s.nodes[i+1]
	for d := 0; d < s.dim; d++ {
		state.Pos[d], state.Vel[d], state.Acc[d] = cubicHermite(
			from.Pos[d], from.Vel[d], to.Pos[d], to.Vel[d], s.durations[i], local)
	}
	return state
}
