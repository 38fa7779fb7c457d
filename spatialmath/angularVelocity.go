package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// AngularVelocity contains angular velocity in rad/s across x/y/z axes.
type AngularVelocity r3.Vector

// AngularState is the orientation of a body together with its angular velocity, both expressed
// in the world frame. It is the converted form of the raw euler-angle values and rates that an
// optimizer works with.
type AngularState struct {
	Orientation *EulerAngles
	Velocity    AngularVelocity
}

// EulerRatesToAngVel maps the time derivatives of a set of euler angles to the world-frame
// angular velocity of the rotating body.
func EulerRatesToAngVel(eu *EulerAngles, rates r3.Vector) *AngularVelocity {
	return &AngularVelocity{
		X: rates.X - math.Sin(eu.Pitch)*rates.Z,
		Y: math.Cos(eu.Roll)*rates.Y + math.Cos(eu.Pitch)*math.Sin(eu.Roll)*rates.Z,
		Z: -math.Sin(eu.Roll)*rates.Y + math.Cos(eu.Pitch)*math.Cos(eu.Roll)*rates.Z,
	}
}

// NewAngularState converts raw euler-angle positions and rates, as sampled from an angular
// spline, into an AngularState.
func NewAngularState(angles, rates r3.Vector) AngularState {
	eu := &EulerAngles{Roll: angles.X, Pitch: angles.Y, Yaw: angles.Z}
	return AngularState{
		Orientation: eu,
		Velocity:    *EulerRatesToAngVel(eu, rates),
	}
}
