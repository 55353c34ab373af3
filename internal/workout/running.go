package workout

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// Running computes metrics for a running workout.
type Running struct {
	training
}

// NewRunning builds a running calculator from step count, duration in hours
// and athlete weight in kg.
func NewRunning(action int, duration, weight float64) Running {
	return Running{training{action: action, duration: duration, weight: weight}}
}

func (Running) Type() string {
	return "Running"
}

// SpentCalories reports the calories burned while running.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * (r.duration * minInH)
}
