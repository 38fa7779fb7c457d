package locomotion

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/locomotion/trajopt"
)

// a one-limb hopper covering exactly one second, for sample-count arithmetic
func newHopperOptimizer(t *testing.T) *MotionOptimizer {
	t.Helper()
	model := &RobotModel{
		Name:          "hopper",
		LimbNames:     []string{"FOOT"},
		NominalStance: []r3.Vector{{Z: -0.4}},
		Mass:          10,
		ForceLimit:    500,
	}
	params := &OptimizationParameters{
		BaseRepresentation: CubicHermite,
		CoeffPolyOrder:     defaultCoeffPolyOrder,
		BasePolyCount:      2,
		ContactTimings: [][]trajopt.ContactPhase{{
			{Duration: 0.5, InContact: true},
			{Duration: 0.3, InContact: false},
			{Duration: 0.2, InContact: true},
		}},
		MinPhaseDuration:       defaultMinPhaseDuration,
		MaxPhaseDuration:       defaultMaxPhaseDuration,
		ForceSegmentsPerStance: 2,
	}
	return NewMotionOptimizer(model, params, golog.NewTestLogger(t))
}

func TestTrajectorySampleCounts(t *testing.T) {
	m := newHopperOptimizer(t)
	vars, err := m.BuildVariables()
	test.That(t, err, test.ShouldBeNil)

	for _, c := range []struct {
		dt   float64
		want int
	}{
		// the accumulated 0.1 steps land within epsilon of T=1.0 and the final
		// sample is still taken
		{0.1, 11},
		{0.2, 6},
		{0.25, 5},
		{0.33, 4},
		{1.0, 2},
	} {
		trajectory, err := m.BuildTrajectory(vars, c.dt)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(trajectory), test.ShouldEqual, c.want)

		test.That(t, trajectory[0].T, test.ShouldAlmostEqual, 0)
		last := trajectory[len(trajectory)-1]
		test.That(t, last.T, test.ShouldBeLessThanOrEqualTo, 1.0)
		for i := 1; i < len(trajectory); i++ {
			test.That(t, trajectory[i].T, test.ShouldBeGreaterThan, trajectory[i-1].T)
		}
	}
}

func TestTrajectoryFinalSampleClamped(t *testing.T) {
	m := newHopperOptimizer(t)
	vars, err := m.BuildVariables()
	test.That(t, err, test.ShouldBeNil)

	trajectory, err := m.BuildTrajectory(vars, 0.1)
	test.That(t, err, test.ShouldBeNil)
	// the 11th sample sits exactly at the schedule's last valid instant
	test.That(t, trajectory[len(trajectory)-1].T, test.ShouldAlmostEqual, 1.0, trajectoryEpsilon)
}

func TestTrajectoryContactFlags(t *testing.T) {
	m := newHopperOptimizer(t)
	vars, err := m.BuildVariables()
	test.That(t, err, test.ShouldBeNil)

	trajectory, err := m.BuildTrajectory(vars, 0.1)
	test.That(t, err, test.ShouldBeNil)

	contact := make([]bool, len(trajectory))
	for i, state := range trajectory {
		contact[i] = state.Limbs[0].InContact
	}
	// stance [0,0.5), swing [0.5,0.8), stance [0.8,1.0]
	test.That(t, contact, test.ShouldResemble,
		[]bool{true, true, true, true, true, false, false, false, true, true, true})
}

func TestTrajectoryDeterminism(t *testing.T) {
	m := newTrotOptimizer(t)
	vars, err := m.BuildVariables()
	test.That(t, err, test.ShouldBeNil)

	first, err := m.BuildTrajectory(vars, 0.15)
	test.That(t, err, test.ShouldBeNil)
	second, err := m.BuildTrajectory(vars, 0.15)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, second, test.ShouldResemble, first)
}

func TestTrajectoryStandingStill(t *testing.T) {
	m := newHopperOptimizer(t)
	// final base equals the default initial base: nothing should move
	m.SetFinalBase(m.initialBase)
	vars, err := m.BuildVariables()
	test.That(t, err, test.ShouldBeNil)

	trajectory, err := m.BuildTrajectory(vars, 0.1)
	test.That(t, err, test.ShouldBeNil)

	for _, state := range trajectory {
		test.That(t, state.BaseLinear.Pos.X, test.ShouldAlmostEqual, 0)
		test.That(t, state.BaseLinear.Pos.Y, test.ShouldAlmostEqual, 0)
		test.That(t, state.BaseLinear.Pos.Z, test.ShouldAlmostEqual, 0.4)
		test.That(t, state.BaseLinear.Vel.Norm(), test.ShouldAlmostEqual, 0)
		test.That(t, state.BaseAngular.Orientation.Yaw, test.ShouldAlmostEqual, 0)
		test.That(t, state.Limbs[0].Pos.X, test.ShouldAlmostEqual, 0)
		test.That(t, state.Limbs[0].Pos.Z, test.ShouldAlmostEqual, 0)
		test.That(t, state.Limbs[0].Force.Z, test.ShouldAlmostEqual, m.model.StandingZForce())
	}
}

func TestTrajectoryBaseReachesGoal(t *testing.T) {
	m := newTrotOptimizer(t)
	vars, err := m.BuildVariables()
	test.That(t, err, test.ShouldBeNil)

	trajectory, err := m.BuildTrajectory(vars, 0.1)
	test.That(t, err, test.ShouldBeNil)

	last := trajectory[len(trajectory)-1]
	test.That(t, last.BaseLinear.Pos.X, test.ShouldAlmostEqual, 1, 1e-9)
	test.That(t, last.BaseLinear.Pos.Y, test.ShouldAlmostEqual, 0, 1e-9)
}
