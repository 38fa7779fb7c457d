package trajopt

// State is a sampled spline value: position, velocity and acceleration per dimension.
type State struct {
	Pos []float64
	Vel []float64
	Acc []float64
}

func newState(dim int) State {
	return State{
		Pos: make([]float64, dim),
		Vel: make([]float64, dim),
		Acc: make([]float64, dim),
	}
}

// Spline is anything that can be sampled for position, velocity and acceleration at a
// global time t in [0, T].
type Spline interface {
	Evaluate(t float64) State
}

// segmentIndex locates the segment containing global time t among contiguous segments of
// the given durations, returning the segment index and the local time offset into it. An
// instant exactly on a segment boundary belongs to the later segment; t outside [0, T] is
// clamped.
func segmentIndex(durations []float64, t float64) (int, float64) {
	if t < 0 {
		return 0, 0
	}
	start := 0.0
	for i, d := range durations {
		if t < start+d || i == len(durations)-1 {
			local := t - start
			if local > d {
				local = d
			}
			return i, local
		}
		start += d
	}
	return 0, 0
}

func totalTime(durations []float64) float64 {
	sum := 0.0
	for _, d := range durations {
		sum += d
	}
	return sum
}
