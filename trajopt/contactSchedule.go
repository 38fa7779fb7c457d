package trajopt

// ContactPhase is a maximal time interval during which one limb's contact state is constant.
type ContactPhase struct {
	Duration  float64
	InContact bool
}

// PhaseObserver is notified synchronously whenever the phase durations of an observed
// contact schedule change. The set of phases is fixed for the life of a schedule, so
// observers only ever re-derive timing, never structure.
type PhaseObserver interface {
	PhaseDurationsChanged(durations []float64)
}

// ContactSchedule owns the ordered contact phases of one limb. When phase timing is itself
// optimized, each phase duration is a free scalar bounded by the configured min and max
// phase durations; mutation redistributes durations but never adds or removes phases.
type ContactSchedule struct {
	name             string
	phases           []ContactPhase
	minPhaseDuration float64
	maxPhaseDuration float64
	observers        []PhaseObserver
}

// NewContactSchedule builds a schedule from a fixed initial phase sequence and the bounds
// each duration must stay within while solving.
func NewContactSchedule(name string, phases []ContactPhase, minDuration, maxDuration float64) (*ContactSchedule, error) {
	if len(phases) == 0 {
		return nil, NewPhaseDurationError(name, 0)
	}
	owned := make([]ContactPhase, len(phases))
	copy(owned, phases)
	for _, phase := range owned {
		if phase.Duration <= 0 {
			return nil, NewPhaseDurationError(name, phase.Duration)
		}
	}
	return &ContactSchedule{
		name:             name,
		phases:           owned,
		minPhaseDuration: minDuration,
		maxPhaseDuration: maxDuration,
	}, nil
}

// Name returns the schedule's identifier within a composite.
func (cs *ContactSchedule) Name() string {
	return cs.name
}

// TotalTime is the sum of the current phase durations.
func (cs *ContactSchedule) TotalTime() float64 {
	sum := 0.0
	for _, phase := range cs.phases {
		sum += phase.Duration
	}
	return sum
}

// TimePerPhase returns the current phase durations in order.
func (cs *ContactSchedule) TimePerPhase() []float64 {
	durations := make([]float64, len(cs.phases))
	for i, phase := range cs.phases {
		durations[i] = phase.Duration
	}
	return durations
}

// ContactSequence returns a copy of the phase sequence.
func (cs *ContactSchedule) ContactSequence() []ContactPhase {
	phases := make([]ContactPhase, len(cs.phases))
	copy(phases, cs.phases)
	return phases
}

// IsInContact reports the contact flag of the phase containing t. An instant exactly on a
// phase boundary belongs to the later phase; t outside [0, TotalTime] is clamped.
func (cs *ContactSchedule) IsInContact(t float64) bool {
	if t < 0 {
		return cs.phases[0].InContact
	}
	start := 0.0
	for i, phase := range cs.phases {
		if t < start+phase.Duration || i == len(cs.phases)-1 {
			return phase.InContact
		}
		start += phase.Duration
	}
	return cs.phases[len(cs.phases)-1].InContact
}

// AddObserver registers a subscriber for phase timing changes.
func (cs *ContactSchedule) AddObserver(obs PhaseObserver) {
	cs.observers = append(cs.observers, obs)
}

// Values returns the phase durations as the schedule's free scalars.
func (cs *ContactSchedule) Values() []float64 {
	return cs.TimePerPhase()
}

// SetValues assigns new phase durations and notifies all observers before returning, so
// that dependent splines are re-timed by the time the solver next evaluates them.
func (cs *ContactSchedule) SetValues(vals []float64) error {
	if len(vals) != len(cs.phases) {
		return NewValueCountError(cs.name, len(cs.phases), len(vals))
	}
	for i, d := range vals {
		cs.phases[i].Duration = d
	}
	durations := cs.TimePerPhase()
	for _, obs := range cs.observers {
		obs.PhaseDurationsChanged(durations)
	}
	return nil
}

// Bounds restricts every phase duration to the configured interval.
func (cs *ContactSchedule) Bounds() []Bound {
	bounds := make([]Bound, len(cs.phases))
	for i := range bounds {
		bounds[i] = Bound{cs.minPhaseDuration, cs.maxPhaseDuration}
	}
	return bounds
}
