package trajopt

import (
	"fmt"
	"strconv"
)

// Identifiers of the base axis-group blocks within a composite.
const (
	BaseLinearID  = "base_linear"
	BaseAngularID = "base_angular"
)

// LimbScheduleID names the contact schedule block of one limb.
func LimbScheduleID(limb int) string {
	return fmt.Sprintf("limb_schedule_%d", limb)
}

// LimbMotionID names the motion spline block of one limb.
func LimbMotionID(limb int) string {
	return fmt.Sprintf("limb_motion_%d", limb)
}

// LimbForceID names the contact-force spline block of one limb.
func LimbForceID(limb int) string {
	return fmt.Sprintf("limb_force_%d", limb)
}

// BasePolyID names the i-th per-segment coefficient block of a coefficient base spline.
func BasePolyID(base string, i int) string {
	return base + "_" + strconv.Itoa(i)
}
