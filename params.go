package locomotion

import "go.viam.com/locomotion/trajopt"

// BaseRepresentation selects how the 6-DOF base pose is parameterized. It is a
// configuration choice made once per problem; both representations satisfy the same
// sampling contract but expose different identifiers and variable counts.
type BaseRepresentation int

// The supported base representations.
const (
	// CubicHermite represents each base axis-group by position/velocity nodes with cubic
	// interpolation, continuous by construction.
	CubicHermite BaseRepresentation = iota
	// PolyCoeff represents each base axis-group by raw per-segment polynomial
	// coefficients; continuity is left to external constraints.
	PolyCoeff
)

// default values for problem parameters.
const (
	defaultCoeffPolyOrder         = 4
	defaultBasePolyCount          = 4
	defaultMinPhaseDuration       = 0.1
	defaultMaxPhaseDuration       = 1.0
	defaultForceSegmentsPerStance = 3
)

// OptimizationParameters configures how one problem instance is built.
type OptimizationParameters struct {
	BaseRepresentation BaseRepresentation

	// CoeffPolyOrder is the polynomial order per segment under PolyCoeff.
	CoeffPolyOrder int

	// BasePolyCount is the number of base spline segments under either representation.
	BasePolyCount int

	// ContactTimings is each limb's initial phase sequence. All limbs must cover the
	// same total time.
	ContactTimings [][]trajopt.ContactPhase

	// MinPhaseDuration and MaxPhaseDuration bound each phase duration when phase timing
	// is optimized.
	MinPhaseDuration float64
	MaxPhaseDuration float64

	// ForceSegmentsPerStance is how many force segments shape each stance phase.
	ForceSegmentsPerStance int

	// OptimizePhaseDurations adds the phase durations themselves to the optimization
	// vector.
	OptimizePhaseDurations bool
}

// TotalTime is the duration covered by the contact timings.
func (p *OptimizationParameters) TotalTime() float64 {
	if len(p.ContactTimings) == 0 {
		return 0
	}
	sum := 0.0
	for _, phase := range p.ContactTimings[0] {
		sum += phase.Duration
	}
	return sum
}

// BasePolyDurations splits the total time into BasePolyCount equal base spline segments.
func (p *OptimizationParameters) BasePolyDurations() []float64 {
	durations := make([]float64, p.BasePolyCount)
	per := p.TotalTime() / float64(p.BasePolyCount)
	for i := range durations {
		durations[i] = per
	}
	return durations
}

// QuadrupedTrotParameters returns parameters for a two-step trot of a quadruped: diagonal
// limb pairs swing alternately, bracketed by full-stance phases.
func QuadrupedTrotParameters() *OptimizationParameters {
	const (
		stance      = 0.4
		swing       = 0.2
		finalStance = 0.8
	)
	// limbs LF, RH swing first; RF, LH swing second
	first := []trajopt.ContactPhase{
		{Duration: stance, InContact: true},
		{Duration: swing, InContact: false},
		{Duration: stance, InContact: true},
		{Duration: swing, InContact: false},
		{Duration: finalStance, InContact: true},
	}
	second := []trajopt.ContactPhase{
		{Duration: stance + swing + stance, InContact: true},
		{Duration: swing, InContact: false},
		{Duration: finalStance, InContact: true},
	}
	return &OptimizationParameters{
		BaseRepresentation:     CubicHermite,
		CoeffPolyOrder:         defaultCoeffPolyOrder,
		BasePolyCount:          defaultBasePolyCount,
		ContactTimings:         [][]trajopt.ContactPhase{first, second, second, first},
		MinPhaseDuration:       defaultMinPhaseDuration,
		MaxPhaseDuration:       defaultMaxPhaseDuration,
		ForceSegmentsPerStance: defaultForceSegmentsPerStance,
	}
}
