// Package sensor decodes raw tracker packages into workout calculators.
package sensor

import (
	"errors"
	"fmt"

	"github.com/Gen121/Activity-Tracker/internal/workout"
)

var (
	// ErrUnknownWorkout indicates the package carries a workout-type code
	// with no registered calculator.
	ErrUnknownWorkout = errors.New("unknown workout type")
	// ErrBadPackage indicates the parameter list does not match the
	// variant's field order.
	ErrBadPackage = errors.New("malformed sensor package")
)

// Package is one raw reading from the tracker: a workout-type code plus the
// positional numeric parameters of that variant.
type Package struct {
	Type string
	Data []float64
}

type builder struct {
	arity int
	build func(data []float64) workout.Workout
}

// Positional field order per variant: RUN [action, duration, weight],
// WLK adds height, SWM adds pool length and lap count.
var builders = map[string]builder{
	"RUN": {3, func(d []float64) workout.Workout {
		return workout.NewRunning(int(d[0]), d[1], d[2])
	}},
	"WLK": {4, func(d []float64) workout.Workout {
		return workout.NewWalking(int(d[0]), d[1], d[2], d[3])
	}},
	"SWM": {5, func(d []float64) workout.Workout {
		return workout.NewSwimming(int(d[0]), d[1], d[2], d[3], d[4])
	}},
}

// ReadPackage constructs the calculator for one tracker package. Unrecognized
// codes and parameter lists of the wrong length fail with a typed error; no
// fallback record is ever substituted.
func ReadPackage(workoutType string, data []float64) (workout.Workout, error) {
	b, ok := builders[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkout, workoutType)
	}
	if len(data) != b.arity {
		return nil, fmt.Errorf("%w: %s expects %d parameters, got %d",
			ErrBadPackage, workoutType, b.arity, len(data))
	}
	return b.build(data), nil
}
