// Package workout implements the summary metric formulas for the workout
// variants a tracker package can describe: running, sports walking and
// swimming. Each variant computes distance covered, mean speed and calories
// burned from its raw sensor readings.
package workout

// Conversion constants shared by the calorie formulas.
const (
	lenStep = 0.65 // kilometres covered per step
	mInKm   = 1000
	minInH  = 60
)

// Workout is the capability every calculator variant provides. Distance is
// reported in km, MeanSpeed in km/h.
type Workout interface {
	Type() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// training holds the sensor fields common to every variant. Callers must
// ensure duration is positive: MeanSpeed divides by it.
type training struct {
	action   int     // completed movement units, steps or strokes
	duration float64 // hours
	weight   float64 // kg
}

// Duration reports the workout length in hours.
func (t training) Duration() float64 {
	return t.duration
}

// Distance reports the kilometres covered, assuming the default step length.
func (t training) Distance() float64 {
	return float64(t.action) * lenStep / mInKm
}

// MeanSpeed reports the average speed in km/h.
func (t training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}
