package workout

const (
	swimmingLenStep                  = 1.38 // kilometres covered per stroke
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming computes metrics for a pool swim. Distance is derived from the
// stroke count, while mean speed comes from the pool geometry; the two are
// independent readings and are not required to agree.
type Swimming struct {
	training
	lengthPool float64 // metres
	countPool  float64 // completed laps
}

// NewSwimming builds a swimming calculator from stroke count, duration in
// hours, athlete weight in kg, pool length in metres and lap count.
func NewSwimming(action int, duration, weight, lengthPool, countPool float64) Swimming {
	return Swimming{
		training:   training{action: action, duration: duration, weight: weight},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

func (Swimming) Type() string {
	return "Swimming"
}

// Distance reports the kilometres covered, using the stroke step length.
func (s Swimming) Distance() float64 {
	return float64(s.action) * swimmingLenStep / mInKm
}

// MeanSpeed reports the average speed from pool length and lap count.
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * s.countPool / mInKm / s.duration
}

// SpentCalories reports the calories burned while swimming.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.weight
}
