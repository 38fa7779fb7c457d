package locomotion

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/locomotion/spatialmath"
	"go.viam.com/locomotion/trajopt"
)

// trajectoryEpsilon guards the final sample against floating-point truncation: a sample
// time fractionally past the total time is still taken, at the last valid instant.
const trajectoryEpsilon = 1e-5

// LinearState is a position/velocity pair in the world frame.
type LinearState struct {
	Pos r3.Vector
	Vel r3.Vector
}

// LimbState is one limb's slice of a RobotState.
type LimbState struct {
	InContact bool
	Pos       r3.Vector
	Force     r3.Vector
}

// RobotState is a timestamped snapshot of the full robot along an extracted trajectory.
// It is produced read-only and never mutated after creation.
type RobotState struct {
	T           float64
	BaseLinear  LinearState
	BaseAngular spatialmath.AngularState
	Limbs       []LimbState
}

func vec3(vals []float64) r3.Vector {
	return r3.Vector{X: vals[0], Y: vals[1], Z: vals[2]}
}

// buildTrajectory samples a fully assigned composite at a fixed time step. The total time
// comes from limb 0's contact schedule; samples run t = 0, dt, 2dt, ... while
// t <= T+epsilon, each evaluated at min(t, T). The result is a pure function of the
// composite contents and dt.
func buildTrajectory(vars *trajopt.Composite, limbCount int, dt float64) ([]RobotState, error) {
	referenceSchedule, err := trajopt.GetComponent[*trajopt.ContactSchedule](vars, trajopt.LimbScheduleID(0))
	if err != nil {
		return nil, err
	}
	total := referenceSchedule.TotalTime()

	baseLinear, err := trajopt.GetComponent[trajopt.Spline](vars, trajopt.BaseLinearID)
	if err != nil {
		return nil, err
	}
	baseAngular, err := trajopt.GetComponent[trajopt.Spline](vars, trajopt.BaseAngularID)
	if err != nil {
		return nil, err
	}

	var trajectory []RobotState
	for t := 0.0; t <= total+trajectoryEpsilon; t += dt {
		ts := math.Min(t, total)

		lin := baseLinear.Evaluate(ts)
		ang := baseAngular.Evaluate(ts)
		state := RobotState{
			T:           ts,
			BaseLinear:  LinearState{Pos: vec3(lin.Pos), Vel: vec3(lin.Vel)},
			BaseAngular: spatialmath.NewAngularState(vec3(ang.Pos), vec3(ang.Vel)),
			Limbs:       make([]LimbState, limbCount),
		}

		for limb := 0; limb < limbCount; limb++ {
			schedule, err := trajopt.GetComponent[*trajopt.ContactSchedule](vars, trajopt.LimbScheduleID(limb))
			if err != nil {
				return nil, err
			}
			motion, err := trajopt.GetComponent[trajopt.Spline](vars, trajopt.LimbMotionID(limb))
			if err != nil {
				return nil, err
			}
			force, err := trajopt.GetComponent[trajopt.Spline](vars, trajopt.LimbForceID(limb))
			if err != nil {
				return nil, err
			}
			state.Limbs[limb] = LimbState{
				InContact: schedule.IsInContact(ts),
				Pos:       vec3(motion.Evaluate(ts).Pos),
				Force:     vec3(force.Evaluate(ts).Pos),
			}
		}

		trajectory = append(trajectory, state)
	}
	return trajectory, nil
}
