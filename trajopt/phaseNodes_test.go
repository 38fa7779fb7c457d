package trajopt

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/floats"
)

func TestMotionNodesLayout(t *testing.T) {
	motion := NewMotionNodes(3, walkPhases, "motion")
	// one segment per phase
	test.That(t, len(motion.SegmentDurations()), test.ShouldEqual, len(walkPhases))
	test.That(t, motion.NodeCount(), test.ShouldEqual, len(walkPhases)+1)
	test.That(t, motion.SegmentDurations(), test.ShouldResemble, []float64{0.5, 0.3, 0.2})
	test.That(t, motion.TotalTime(), test.ShouldAlmostEqual, 1.0)
}

func TestForceNodesLayout(t *testing.T) {
	force := NewForceNodes(3, walkPhases, "force", 3, 1000)
	// three segments per stance phase, one per swing
	test.That(t, len(force.SegmentDurations()), test.ShouldEqual, 3+1+3)
	test.That(t, force.NodeCount(), test.ShouldEqual, 8)

	durations := force.SegmentDurations()
	for _, i := range []int{0, 1, 2} {
		test.That(t, durations[i], test.ShouldAlmostEqual, 0.5/3)
	}
	test.That(t, durations[3], test.ShouldAlmostEqual, 0.3)
	for _, i := range []int{4, 5, 6} {
		test.That(t, durations[i], test.ShouldAlmostEqual, 0.2/3)
	}
	test.That(t, floats.Sum(durations), test.ShouldAlmostEqual, 1.0)
}

func TestPhaseNodesRetiming(t *testing.T) {
	cs, err := NewContactSchedule("schedule", walkPhases, 0.1, 1.0)
	test.That(t, err, test.ShouldBeNil)

	force := NewForceNodes(3, cs.ContactSequence(), "force", 2, 1000)
	cs.AddObserver(force)

	before := force.Values()
	nodesBefore := force.NodeCount()

	err = cs.SetValues([]float64{0.6, 0.2, 0.4})
	test.That(t, err, test.ShouldBeNil)

	// only timing changed: segment boundaries shift, node count and values are unchanged
	test.That(t, force.NodeCount(), test.ShouldEqual, nodesBefore)
	test.That(t, force.Values(), test.ShouldResemble, before)
	test.That(t, force.SegmentDurations(), test.ShouldResemble, []float64{0.3, 0.3, 0.2, 0.2, 0.2})
	test.That(t, force.TotalTime(), test.ShouldAlmostEqual, cs.TotalTime())
}

func TestPhaseNodesInitialization(t *testing.T) {
	motion := NewMotionNodes(1, []ContactPhase{
		{Duration: 0.5, InContact: true},
		{Duration: 0.5, InContact: false},
	}, "motion")
	motion.InitializeVariables([]float64{0}, []float64{1}, []float64{0.5, 0.5})

	test.That(t, motion.Node(0).Pos[0], test.ShouldAlmostEqual, 0)
	test.That(t, motion.Node(1).Pos[0], test.ShouldAlmostEqual, 0.5)
	test.That(t, motion.Node(2).Pos[0], test.ShouldAlmostEqual, 1)
}

func TestForceBounds(t *testing.T) {
	const limit = 500.0
	force := NewForceNodes(3, walkPhases, "force", 1, limit)
	bounds := force.Bounds()

	// node 0 starts the first stance phase
	test.That(t, bounds[force.scalarIndex(0, Position, AxisX)], test.ShouldResemble, Bound{-limit, limit})
	test.That(t, bounds[force.scalarIndex(0, Position, AxisZ)], test.ShouldResemble, Bound{0, limit})

	// node 1 starts the swing phase: zero force
	for d := 0; d < 3; d++ {
		test.That(t, bounds[force.scalarIndex(1, Position, Axis(d))], test.ShouldResemble, Bound{0, 0})
		test.That(t, bounds[force.scalarIndex(1, Velocity, Axis(d))], test.ShouldResemble, Bound{0, 0})
	}

	// node 2 starts the final stance, node 3 ends it
	test.That(t, bounds[force.scalarIndex(2, Position, AxisZ)], test.ShouldResemble, Bound{0, limit})
	test.That(t, bounds[force.scalarIndex(3, Position, AxisZ)], test.ShouldResemble, Bound{0, limit})
}

func TestMotionBoundsUnbounded(t *testing.T) {
	motion := NewMotionNodes(3, walkPhases, "motion")
	for _, b := range motion.Bounds() {
		test.That(t, math.IsInf(b.Lower, -1), test.ShouldBeTrue)
		test.That(t, math.IsInf(b.Upper, 1), test.ShouldBeTrue)
	}
}

func TestPhaseSplinePartition(t *testing.T) {
	for _, segsPerStance := range []int{1, 2, 4} {
		force := NewForceNodes(3, walkPhases, "force", segsPerStance, 1000)
		test.That(t, floats.Sum(force.SegmentDurations()), test.ShouldAlmostEqual, 1.0)
	}
}
