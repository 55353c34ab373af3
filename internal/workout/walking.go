package workout

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// Walking computes metrics for a sports-walking workout. Height must be
// positive: the calorie formula divides by it.
type Walking struct {
	training
	height float64
}

// NewWalking builds a walking calculator from step count, duration in hours,
// athlete weight in kg and height.
func NewWalking(action int, duration, weight, height float64) Walking {
	return Walking{
		training: training{action: action, duration: duration, weight: weight},
		height:   height,
	}
}

func (Walking) Type() string {
	return "Walking"
}

// SpentCalories reports the calories burned while walking. The speed-squared
// term is floor-divided by height, not truly divided.
func (w Walking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.weight +
		math.Floor(speed*speed/w.height)*walkingSpeedHeightMultiplier*w.weight) *
		(w.duration * minInH)
}
