package workout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunningDistanceExact(t *testing.T) {
	for _, action := range []int{1, 720, 9000, 15000} {
		r := NewRunning(action, 1, 75)
		require.Equal(t, float64(action)*lenStep/mInKm, r.Distance())
	}
}

func TestRunningScenario(t *testing.T) {
	r := NewRunning(15000, 1, 75)

	require.InDelta(t, 9.75, r.Distance(), 1e-9)
	require.InDelta(t, 9.75, r.MeanSpeed(), 1e-9)
	require.InDelta(t, 699.75, r.SpentCalories(), 1e-9)
}

func TestWalkingScenario(t *testing.T) {
	w := NewWalking(9000, 1, 75, 180)

	require.InDelta(t, 5.85, w.Distance(), 1e-9)
	require.InDelta(t, 5.85, w.MeanSpeed(), 1e-9)
	// speed^2/height = 34.2225/180 floors to zero, so only the weight term
	// contributes: 0.035*75*60.
	require.InDelta(t, 157.5, w.SpentCalories(), 1e-9)
}

func TestWalkingCaloriesFloorsSpeedTerm(t *testing.T) {
	// speed 19.5 km/h: 19.5^2/180 = 2.1125, floored to 2.
	w := NewWalking(30000, 1, 75, 180)
	require.InDelta(t, (0.035*75+2*0.029*75)*60, w.SpentCalories(), 1e-9)
}

func TestSwimmingScenario(t *testing.T) {
	s := NewSwimming(720, 1, 80, 25, 40)

	require.InDelta(t, 0.9936, s.Distance(), 1e-9)
	require.InDelta(t, 1.0, s.MeanSpeed(), 1e-9)
	require.InDelta(t, 336.0, s.SpentCalories(), 1e-9)
}

func TestSwimmingSpeedIndependentOfStrokes(t *testing.T) {
	// Mean speed comes from pool geometry only; the stroke-based distance
	// does not feed into it.
	s := NewSwimming(0, 1, 80, 25, 40)

	require.Zero(t, s.Distance())
	require.InDelta(t, 1.0, s.MeanSpeed(), 1e-9)
}

func TestVariantLabels(t *testing.T) {
	require.Equal(t, "Running", NewRunning(1, 1, 1).Type())
	require.Equal(t, "Walking", NewWalking(1, 1, 1, 1).Type())
	require.Equal(t, "Swimming", NewSwimming(1, 1, 1, 1, 1).Type())
}
