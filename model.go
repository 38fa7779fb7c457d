// Package locomotion formulates legged-robot trajectory optimization problems and
// reconstructs time-sampled robot trajectories from solved variable sets.
package locomotion

import "github.com/golang/geo/r3"

const gravity = 9.81

// RobotModel is the read-only description of a legged robot that problem construction
// consumes: limb identities, nominal stance offsets relative to the base, and the force
// envelope.
type RobotModel struct {
	Name string

	// LimbNames identifies the ground-contact points, in the index order used by all
	// per-limb variable blocks.
	LimbNames []string

	// NominalStance is each limb's standing foot position expressed in the base frame.
	NominalStance []r3.Vector

	// Mass in kg.
	Mass float64

	// ForceLimit caps the magnitude of any contact force component, in N.
	ForceLimit float64
}

// LimbCount returns the number of limbs.
func (m *RobotModel) LimbCount() int {
	return len(m.LimbNames)
}

// StandingZForce is the vertical force per limb that holds the robot statically, used to
// initialize the force variables.
func (m *RobotModel) StandingZForce() float64 {
	return m.Mass * gravity / float64(m.LimbCount())
}

// QuadrupedModel returns a model of a mid-size quadruped.
func QuadrupedModel() *RobotModel {
	const (
		stanceX = 0.34
		stanceY = 0.19
		stanceZ = -0.42
	)
	return &RobotModel{
		Name:      "quadruped",
		LimbNames: []string{"LF", "RF", "LH", "RH"},
		NominalStance: []r3.Vector{
			{X: stanceX, Y: stanceY, Z: stanceZ},
			{X: stanceX, Y: -stanceY, Z: stanceZ},
			{X: -stanceX, Y: stanceY, Z: stanceZ},
			{X: -stanceX, Y: -stanceY, Z: stanceZ},
		},
		Mass:       30,
		ForceLimit: 1000,
	}
}
