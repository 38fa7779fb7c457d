// Package main builds a quadruped trot optimization problem and prints the trajectory
// reconstructed from the variable set.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/utils"

	"go.viam.com/locomotion"
	"go.viam.com/locomotion/trajopt/nlp"
)

var logger = golog.NewDevelopmentLogger("gaitdemo")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	flags := flag.NewFlagSet("gaitdemo", flag.ContinueOnError)
	dt := flags.Float64("dt", 0.1, "trajectory sample step in seconds")
	goalX := flags.Float64("goal", 1.0, "desired final base x position in meters")
	solve := flags.Bool("solve", false, "run the nlopt solver before extracting")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	model := locomotion.QuadrupedModel()
	params := locomotion.QuadrupedTrotParameters()
	optimizer := locomotion.NewMotionOptimizer(model, params, logger)
	optimizer.SetFinalBase(locomotion.BasePose{
		Lin: locomotion.LinearState{Pos: r3.Vector{X: *goalX, Z: -model.NominalStance[0].Z}},
	})

	vars, err := optimizer.BuildVariables()
	if err != nil {
		return err
	}
	logger.Infow("problem built", "components", len(vars.ComponentNames()), "free variables", vars.Rows())

	if *solve {
		if err := optimizer.SolveProblem(nlp.SolverSLSQP, nil); err != nil {
			logger.Warnw("solve did not converge, extracting last values anyway", "error", err)
		}
		vars = optimizer.Problem().Variables()
	}

	trajectory, err := optimizer.BuildTrajectory(vars, *dt)
	if err != nil {
		return err
	}
	for _, state := range trajectory {
		contacts := ""
		for limb, limbState := range state.Limbs {
			if limbState.InContact {
				contacts += model.LimbNames[limb] + " "
			}
		}
		fmt.Printf("t=%5.2f base=(%6.3f %6.3f %6.3f) yaw=%6.3f contact=[%s]\n",
			state.T,
			state.BaseLinear.Pos.X, state.BaseLinear.Pos.Y, state.BaseLinear.Pos.Z,
			state.BaseAngular.Orientation.Yaw,
			contacts)
	}
	return nil
}
