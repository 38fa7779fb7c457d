package trajopt

// PhaseNodes is a hermite node spline whose segments are laid out according to a contact
// schedule's phases: one segment per swing phase and a configurable number per stance
// phase. It observes its schedule; a timing change only re-times the existing segments,
// the node count never changes after construction.
type PhaseNodes struct {
	*NodeSpline
	phases            []ContactPhase
	segmentsPerStance int
	forceLimit        float64
}

// NewMotionNodes builds the node spline parameterizing one limb's motion over the given
// phase sequence, with a single segment per phase.
func NewMotionNodes(dim int, phases []ContactPhase, name string) *PhaseNodes {
	return newPhaseNodes(dim, phases, name, 1, 0)
}

// NewForceNodes builds the node spline parameterizing one limb's contact force, with
// segmentsPerStance segments per stance phase so the force profile can be shaped within a
// stance. Force values are bounded by forceLimit, the vertical component is unilateral,
// and nodes in swing phases are pinned to zero.
func NewForceNodes(dim int, phases []ContactPhase, name string, segmentsPerStance int, forceLimit float64) *PhaseNodes {
	return newPhaseNodes(dim, phases, name, segmentsPerStance, forceLimit)
}

func newPhaseNodes(dim int, phases []ContactPhase, name string, segmentsPerStance int, forceLimit float64) *PhaseNodes {
	owned := make([]ContactPhase, len(phases))
	copy(owned, phases)

	segments := 0
	for _, phase := range owned {
		segments += segmentsInPhase(phase, segmentsPerStance)
	}
	pn := &PhaseNodes{
		NodeSpline:        NewNodeSpline(name, dim, segments),
		phases:            owned,
		segmentsPerStance: segmentsPerStance,
		forceLimit:        forceLimit,
	}
	pn.retime(timePerPhase(owned))
	return pn
}

func segmentsInPhase(phase ContactPhase, segmentsPerStance int) int {
	if phase.InContact {
		return segmentsPerStance
	}
	return 1
}

func timePerPhase(phases []ContactPhase) []float64 {
	durations := make([]float64, len(phases))
	for i, phase := range phases {
		durations[i] = phase.Duration
	}
	return durations
}

// retime re-derives segment durations from phase durations: each phase's time is split
// evenly across the segments hosted in it.
func (pn *PhaseNodes) retime(phaseDurations []float64) {
	idx := 0
	for i, phase := range pn.phases {
		n := segmentsInPhase(phase, pn.segmentsPerStance)
		for k := 0; k < n; k++ {
			pn.durations[idx] = phaseDurations[i] / float64(n)
			idx++
		}
	}
}

// PhaseDurationsChanged re-times the spline's segments when the observed schedule's phase
// durations change. Node count and node values are untouched.
func (pn *PhaseNodes) PhaseDurationsChanged(durations []float64) {
	pn.retime(durations)
}

// InitializeVariables seeds node positions by linear interpolation between start and end
// over cumulative phase time, with zero velocities.
func (pn *PhaseNodes) InitializeVariables(start, end, phaseDurations []float64) {
	pn.retime(phaseDurations)
	pn.NodeSpline.InitializeVariables(start, end, pn.durations)
}

// nodePhase resolves the phase a node belongs to. A node on a phase boundary belongs to
// the later phase, mirroring the time tie rule; the last node belongs to the last phase.
func (pn *PhaseNodes) nodePhase(node int) ContactPhase {
	segment := 0
	for _, phase := range pn.phases {
		n := segmentsInPhase(phase, pn.segmentsPerStance)
		if node < segment+n {
			return phase
		}
		segment += n
	}
	return pn.phases[len(pn.phases)-1]
}

// Bounds restricts force nodes to the physical force envelope: tangential components
// within [-forceLimit, forceLimit], the vertical component within [0, forceLimit]
// (unilateral contact), and swing-phase nodes pinned to zero force. Motion nodes are
// unbounded except for boundary bounds.
func (pn *PhaseNodes) Bounds() []Bound {
	if pn.forceLimit == 0 {
		return pn.NodeSpline.Bounds()
	}
	bounds := make([]Bound, 2*pn.dim*len(pn.nodes))
	for i := range bounds {
		bounds[i] = unbounded()
	}
	for i := range pn.nodes {
		if !pn.nodePhase(i).InContact {
			for d := 0; d < pn.dim; d++ {
				bounds[pn.scalarIndex(i, Position, Axis(d))] = equality(0)
				bounds[pn.scalarIndex(i, Velocity, Axis(d))] = equality(0)
			}
			continue
		}
		for d := 0; d < pn.dim; d++ {
			bounds[pn.scalarIndex(i, Position, Axis(d))] = Bound{-pn.forceLimit, pn.forceLimit}
		}
		if pn.dim > int(AxisZ) {
			bounds[pn.scalarIndex(i, Position, AxisZ)] = Bound{0, pn.forceLimit}
		}
	}
	pn.applyBoundaryBounds(bounds)
	return bounds
}
