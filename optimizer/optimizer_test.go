package optimizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// The default intensity model over reps 3..8, expressed as fractions of 1RM.
var (
	domainReps        = []int{3, 4, 5, 6, 7, 8}
	domainIntensities = []float64{0.907, 0.8745, 0.843, 0.8125, 0.783, 0.7545}
)

func mustOptimizer(t *testing.T, cfg Config) *Optimizer {
	t.Helper()
	o, err := New(cfg)
	require.NoError(t, err)
	return o
}

func TestNewDefaults(t *testing.T) {
	o := mustOptimizer(t, Config{})
	require.Equal(t, MaxSetsCap, o.maxSets)
	require.Equal(t, 1.0, o.penaltyReps)
	require.Equal(t, 1.0, o.penaltyIntensity)
	require.Equal(t, 1.0, o.rewardDensity)
	require.Equal(t, 0.9, o.penaltySpread)
	require.Equal(t, 0.05, o.tolerance)
	require.Equal(t, 0.35, o.maxRelativeError)
}

func TestNewInvalid(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"max sets above cap", Config{MaxSets: MaxSetsCap + 1}},
		{"negative max sets", Config{MaxSets: -1}},
		{"negative weight", Config{PenaltyReps: -1}},
		{"negative tolerance", Config{Tolerance: -0.1}},
		{"negative relative error", Config{MaxRelativeError: -0.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			require.Error(t, err)
		})
	}
}

func TestRequestValidation(t *testing.T) {
	o := mustOptimizer(t, Config{})
	cases := []struct {
		name string
		req  Request
	}{
		{"empty domain", Request{RepsGoal: 25, IntensityGoal: 0.8}},
		{"length mismatch", Request{Reps: []int{3, 4}, Intensities: []float64{0.9}, RepsGoal: 25, IntensityGoal: 0.8}},
		{"not ascending", Request{Reps: []int{4, 3}, Intensities: []float64{0.87, 0.9}, RepsGoal: 25, IntensityGoal: 0.8}},
		{"zero rep count", Request{Reps: []int{0, 3}, Intensities: []float64{1, 0.9}, RepsGoal: 25, IntensityGoal: 0.8}},
		{"intensity above one", Request{Reps: []int{3}, Intensities: []float64{90.7}, RepsGoal: 25, IntensityGoal: 0.8}},
		{"zero reps goal", Request{Reps: []int{3}, Intensities: []float64{0.9}, IntensityGoal: 0.8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := o.Optimize(tc.req)
			require.Error(t, err)
		})
	}
}

func TestOptimizeSingleRepDomain(t *testing.T) {
	o := mustOptimizer(t, Config{})
	cands, err := o.Optimize(Request{
		Reps:          []int{5},
		Intensities:   []float64{0.85},
		RepsGoal:      25,
		IntensityGoal: 0.85,
	})
	require.NoError(t, err)
	require.Len(t, cands, 1)
	require.Equal(t, []int{5, 5, 5, 5, 5}, cands[0].Reps)
	require.Equal(t, 25, cands[0].TotalReps)
	require.InDelta(t, 0.85, cands[0].AvgIntensity, 1e-9)
	// reps term 0, intensity term 0, full density reward, no spread.
	require.InDelta(t, -1.0, cands[0].Objective, 1e-9)
}

func TestOptimizeRepsNearGoal(t *testing.T) {
	o := mustOptimizer(t, Config{})
	cands, err := o.Optimize(Request{
		Reps:          domainReps,
		Intensities:   domainIntensities,
		RepsGoal:      25,
		IntensityGoal: 0.78,
	})
	require.NoError(t, err)
	require.NotEmpty(t, cands)

	for _, c := range cands {
		require.NotEmpty(t, c.Reps)
		require.LessOrEqual(t, len(c.Reps), MaxSetsCap)
		total := 0
		for i, reps := range c.Reps {
			require.GreaterOrEqual(t, reps, 3)
			require.LessOrEqual(t, reps, 8)
			if i > 0 {
				require.GreaterOrEqual(t, reps, c.Reps[i-1], "sets must be ordered fewest reps first")
			}
			total += reps
		}
		require.Equal(t, total, c.TotalReps)
		require.InDelta(t, c.AvgIntensity, 0.78, 0.16, "average intensity stays attainable")
	}

	// Candidates come back best first.
	for i := 1; i < len(cands); i++ {
		require.LessOrEqual(t, cands[i-1].Objective, cands[i].Objective)
	}
	// Every candidate sits within the tolerance band of the optimum.
	for _, c := range cands {
		require.LessOrEqual(t, c.Objective, cands[0].Objective+o.tolerance+1e-12)
	}
}

// TestOptimizeGoalIntensityBelowRange reproduces the documented scenario:
// reps 3..8 with a 75% goal cannot average below the 8-rep intensity, so the
// goal is recast and the optimizer settles on sets of eight, one repetition
// short of the 25-rep goal.
func TestOptimizeGoalIntensityBelowRange(t *testing.T) {
	o := mustOptimizer(t, Config{})
	cands, err := o.Optimize(Request{
		Reps:          domainReps,
		Intensities:   domainIntensities,
		RepsGoal:      25,
		IntensityGoal: 0.75,
	})
	require.NoError(t, err)
	require.Equal(t, []int{8, 8, 8}, cands[0].Reps)
	require.Equal(t, 24, cands[0].TotalReps)
	require.InDelta(t, 0.7545, cands[0].AvgIntensity, 1e-9)
}

func TestOptimizeGoalIntensityClamping(t *testing.T) {
	o := mustOptimizer(t, Config{})
	req := Request{
		Reps:          domainReps,
		Intensities:   domainIntensities,
		RepsGoal:      25,
		IntensityGoal: 0.95, // above every attainable intensity
	}
	high, err := o.Optimize(req)
	require.NoError(t, err)

	req.IntensityGoal = 0.907 // the attainable maximum
	atMax, err := o.Optimize(req)
	require.NoError(t, err)
	require.Equal(t, atMax, high)
}

func TestOptimizeDeterminism(t *testing.T) {
	o := mustOptimizer(t, Config{})
	req := Request{
		Reps:          domainReps,
		Intensities:   domainIntensities,
		RepsGoal:      28,
		IntensityGoal: 0.8,
	}
	first, err := o.Optimize(req)
	require.NoError(t, err)
	second, err := o.Optimize(req)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestOptimizeInfeasible(t *testing.T) {
	o := mustOptimizer(t, Config{MaxSets: 2})
	_, err := o.Optimize(Request{
		Reps:          []int{3, 4},
		Intensities:   []float64{0.907, 0.8745},
		RepsGoal:      25,
		IntensityGoal: 0.85,
	})
	require.ErrorIs(t, err, ErrNoCandidate)
}

// TestOptimizeIntensityRepsTradeOff pins an intensity goal to the 6-rep
// intensity: the optimizer prefers pure sets of six and accepts a small
// repetition deviation (18 instead of 16) over diluting the intensity.
func TestOptimizeIntensityRepsTradeOff(t *testing.T) {
	o := mustOptimizer(t, Config{})
	cands, err := o.Optimize(Request{
		Reps:          domainReps,
		Intensities:   domainIntensities,
		RepsGoal:      16,
		IntensityGoal: 0.8125, // exactly the 6-rep intensity
	})
	require.NoError(t, err)
	require.LessOrEqual(t, int(math.Abs(float64(cands[0].TotalReps-16))), 2)
	require.InDelta(t, 0.8125, cands[0].AvgIntensity, 1e-9)
}
