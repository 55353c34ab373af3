// Package report renders computed workout summaries into the fixed
// human-readable line the tracker prints per record.
package report

import (
	"fmt"

	"github.com/Gen121/Activity-Tracker/internal/workout"
)

// InfoMessage is the summary derived from one workout record.
type InfoMessage struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

// New captures a calculator's computed values into an InfoMessage.
func New(w workout.Workout) InfoMessage {
	return InfoMessage{
		TrainingType: w.Type(),
		Duration:     w.Duration(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}

// String renders the fixed output template, all values to three decimals.
func (m InfoMessage) String() string {
	return fmt.Sprintf(
		"Workout type: %s; Duration: %.3f h; Distance: %.3f km; Avg. speed: %.3f km/h; Calories burned: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}
