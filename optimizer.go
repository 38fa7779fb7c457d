package locomotion

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"go.viam.com/locomotion/trajopt"
	"go.viam.com/locomotion/trajopt/nlp"
)

// BasePose holds the linear and angular components of a base state. The angular component
// stores euler angles and their rates, the raw form the optimizer works with.
type BasePose struct {
	Lin LinearState
	Ang LinearState
}

// MotionOptimizer assembles the variable set of one trajectory optimization problem,
// hands it to the external solver, and reconstructs robot trajectories from the solved
// (or partially solved) values.
type MotionOptimizer struct {
	model  *RobotModel
	params *OptimizationParameters
	logger golog.Logger

	initialBase BasePose
	finalBase   BasePose
	initialFeet []r3.Vector

	problem *nlp.Problem
}

// NewMotionOptimizer returns an optimizer with the default initial state derived from the
// model: base standing at nominal height over the origin, feet at their nominal stance
// offsets projected onto flat ground.
func NewMotionOptimizer(model *RobotModel, params *OptimizationParameters, logger golog.Logger) *MotionOptimizer {
	m := &MotionOptimizer{
		model:  model,
		params: params,
		logger: logger,
	}
	m.buildDefaultInitialState()
	return m
}

func (m *MotionOptimizer) buildDefaultInitialState() {
	m.initialBase.Lin.Pos = r3.Vector{Z: -m.model.NominalStance[0].Z}
	m.initialFeet = make([]r3.Vector, m.model.LimbCount())
	for limb, nominal := range m.model.NominalStance {
		foot := nominal.Add(m.initialBase.Lin.Pos)
		foot.Z = 0
		m.initialFeet[limb] = foot
	}
}

// SetInitialBase overrides the default initial base pose.
func (m *MotionOptimizer) SetInitialBase(pose BasePose) {
	m.initialBase = pose
}

// SetFinalBase sets the desired final base pose.
func (m *MotionOptimizer) SetFinalBase(pose BasePose) {
	m.finalBase = pose
}

// SetInitialFootPosition overrides one limb's default initial foot position (world frame).
func (m *MotionOptimizer) SetInitialFootPosition(limb int, pos r3.Vector) {
	m.initialFeet[limb] = pos
}

// BuildVariables constructs the complete variable composite: base representation blocks,
// then per limb a contact schedule, a motion spline and a force spline, with the splines
// registered as observers of their schedule.
func (m *MotionOptimizer) BuildVariables() (*trajopt.Composite, error) {
	if m.model.LimbCount() != len(m.params.ContactTimings) {
		return nil, NewLimbCountError(m.model.LimbCount(), len(m.params.ContactTimings))
	}
	vars := trajopt.NewComposite("nlp_variables")

	switch m.params.BaseRepresentation {
	case CubicHermite:
		if err := m.addBaseHermite(vars); err != nil {
			return nil, err
		}
	case PolyCoeff:
		if err := m.addBaseCoeff(vars); err != nil {
			return nil, err
		}
	default:
		return nil, NewBaseRepresentationError(m.params.BaseRepresentation)
	}

	schedules := make([]*trajopt.ContactSchedule, 0, m.model.LimbCount())
	for limb := 0; limb < m.model.LimbCount(); limb++ {
		schedule, err := trajopt.NewContactSchedule(
			trajopt.LimbScheduleID(limb),
			m.params.ContactTimings[limb],
			m.params.MinPhaseDuration,
			m.params.MaxPhaseDuration,
		)
		if err != nil {
			return nil, err
		}
		if err := vars.AddComponent(schedule, m.params.OptimizePhaseDurations); err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	for limb, schedule := range schedules {
		motion := trajopt.NewMotionNodes(3, schedule.ContactSequence(), trajopt.LimbMotionID(limb))
		finalFoot := m.finalBase.Lin.Pos.Add(m.model.NominalStance[limb])
		motion.InitializeVariables(
			vecSlice(m.initialFeet[limb]),
			vecSlice(finalFoot),
			schedule.TimePerPhase(),
		)
		// only x/y: initial foot height is terrain business
		motion.AddStartBound(trajopt.Position, []trajopt.Axis{trajopt.AxisX, trajopt.AxisY}, vecSlice(m.initialFeet[limb]))
		if err := vars.AddComponent(motion, true); err != nil {
			return nil, err
		}
		schedule.AddObserver(motion)
	}

	standing := []float64{0, 0, m.model.StandingZForce()}
	for limb, schedule := range schedules {
		force := trajopt.NewForceNodes(
			3,
			schedule.ContactSequence(),
			trajopt.LimbForceID(limb),
			m.params.ForceSegmentsPerStance,
			m.model.ForceLimit,
		)
		force.InitializeVariables(standing, standing, schedule.TimePerPhase())
		if err := vars.AddComponent(force, true); err != nil {
			return nil, err
		}
		schedule.AddObserver(force)
	}

	m.logger.Debugw("built variables", "composite", vars.Name(), "components", len(vars.ComponentNames()), "rows", vars.Rows())
	return vars, nil
}

func (m *MotionOptimizer) addBaseHermite(vars *trajopt.Composite) error {
	durations := m.params.BasePolyDurations()
	groups := []struct {
		id      string
		initial LinearState
		final   LinearState
	}{
		{trajopt.BaseLinearID, m.initialBase.Lin, m.finalBase.Lin},
		{trajopt.BaseAngularID, m.initialBase.Ang, m.finalBase.Ang},
	}
	for _, group := range groups {
		spline := trajopt.NewNodeSpline(group.id, 3, len(durations))
		spline.InitializeVariables(vecSlice(group.initial.Pos), vecSlice(group.final.Pos), durations)

		all := trajopt.AllAxes(3)
		spline.AddStartBound(trajopt.Position, all, vecSlice(group.initial.Pos))
		spline.AddStartBound(trajopt.Velocity, all, vecSlice(group.initial.Vel))
		spline.AddFinalBound(trajopt.Velocity, all, vecSlice(group.final.Vel))

		switch group.id {
		case trajopt.BaseLinearID:
			// only x/y, final height is constrained externally by terrain
			spline.AddFinalBound(trajopt.Position, []trajopt.Axis{trajopt.AxisX, trajopt.AxisY}, vecSlice(group.final.Pos))
		case trajopt.BaseAngularID:
			// only yaw, roll/pitch stay free for other constraints to resolve
			spline.AddFinalBound(trajopt.Position, []trajopt.Axis{trajopt.AxisZ}, vecSlice(group.final.Pos))
		}

		if err := vars.AddComponent(spline, true); err != nil {
			return err
		}
	}
	return nil
}

func (m *MotionOptimizer) addBaseCoeff(vars *trajopt.Composite) error {
	durations := m.params.BasePolyDurations()
	groups := []struct {
		id      string
		initial LinearState
		final   LinearState
	}{
		{trajopt.BaseAngularID, m.initialBase.Ang, m.finalBase.Ang},
		{trajopt.BaseLinearID, m.initialBase.Lin, m.finalBase.Lin},
	}
	for _, group := range groups {
		spline := trajopt.NewCoeffSpline(group.id, durations)
		for i := range durations {
			poly := trajopt.NewCoeffPolynomial(m.params.CoeffPolyOrder, 3)
			segment := trajopt.NewPolynomialVars(trajopt.BasePolyID(group.id, i), poly)
			if err := vars.AddComponent(segment, true); err != nil {
				return err
			}
			spline.AddSegment(segment)
		}
		spline.InitializeVariables(vecSlice(group.initial.Pos), vecSlice(group.final.Pos))
		// added just for easy access later
		if err := vars.AddComponent(spline, false); err != nil {
			return err
		}
	}
	return nil
}

// SolveProblem builds the variables, assembles costs and constraints from the factory if
// one is given, and runs the external solver. The problem, including every recorded
// iterate, stays available for trajectory extraction whether or not solving converged.
func (m *MotionOptimizer) SolveProblem(kind nlp.SolverKind, factory nlp.Factory) error {
	vars, err := m.BuildVariables()
	if err != nil {
		return err
	}
	m.problem = nlp.NewProblem(vars)
	if factory != nil {
		for _, cost := range factory.Costs(vars) {
			m.problem.AddCost(cost)
		}
		for _, constraint := range factory.Constraints(vars) {
			m.problem.AddConstraint(constraint)
		}
	}
	return nlp.Solve(m.problem, kind, m.logger)
}

// Problem returns the last built problem.
func (m *MotionOptimizer) Problem() *nlp.Problem {
	return m.problem
}

// GetTrajectories reconstructs one trajectory per recorded solver iterate, each sampled at
// dt.
func (m *MotionOptimizer) GetTrajectories(dt float64) ([][]RobotState, error) {
	if m.problem == nil {
		return nil, NewNoProblemError()
	}
	trajectories := make([][]RobotState, 0, m.problem.IterationCount())
	for iter := 0; iter < m.problem.IterationCount(); iter++ {
		vals, err := m.problem.IterateValues(iter)
		if err != nil {
			return nil, err
		}
		if err := m.problem.Variables().SetValues(vals); err != nil {
			return nil, err
		}
		trajectory, err := m.BuildTrajectory(m.problem.Variables(), dt)
		if err != nil {
			return nil, err
		}
		trajectories = append(trajectories, trajectory)
	}
	return trajectories, nil
}

// BuildTrajectory samples a fully assigned composite into an ordered robot state sequence.
func (m *MotionOptimizer) BuildTrajectory(vars *trajopt.Composite, dt float64) ([]RobotState, error) {
	return buildTrajectory(vars, m.model.LimbCount(), dt)
}

func vecSlice(v r3.Vector) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
