package setforge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDynamicExerciseValidate(t *testing.T) {
	cases := []struct {
		name    string
		ex      DynamicExercise
		wantErr bool
		field   string
	}{
		{
			name: "minimal valid",
			ex:   DynamicExercise{Name: "Squats", StartLoad: 100},
		},
		{
			name: "explicit bounds and targets",
			ex: DynamicExercise{
				Name: "Bench press", StartLoad: 80, EndLoad: 90,
				MinReps: 2, MaxReps: 6, TargetReps: 20, TargetIntensity: 80, RoundTo: 1,
			},
		},
		{
			name:    "missing name",
			ex:      DynamicExercise{StartLoad: 100},
			wantErr: true,
			field:   "name",
		},
		{
			name:    "zero start load",
			ex:      DynamicExercise{Name: "Squats"},
			wantErr: true,
			field:   "start_load",
		},
		{
			name:    "negative end load",
			ex:      DynamicExercise{Name: "Squats", StartLoad: 100, EndLoad: -5},
			wantErr: true,
			field:   "end_load",
		},
		{
			name: "end load contradicts growth direction",
			ex: DynamicExercise{
				Name: "Squats", StartLoad: 100, EndLoad: 90, WeeklyGrowthPercent: 1.5,
			},
			wantErr: true,
			field:   "end_load",
		},
		{
			name: "decreasing end load with negative growth is fine",
			ex: DynamicExercise{
				Name: "Deload squats", StartLoad: 100, EndLoad: 90, WeeklyGrowthPercent: -1,
			},
		},
		{
			name:    "negative min reps",
			ex:      DynamicExercise{Name: "Squats", StartLoad: 100, MinReps: -1},
			wantErr: true,
			field:   "min_reps",
		},
		{
			name:    "min reps above max reps",
			ex:      DynamicExercise{Name: "Squats", StartLoad: 100, MinReps: 10, MaxReps: 5},
			wantErr: true,
			field:   "min_reps",
		},
		{
			name:    "negative override",
			ex:      DynamicExercise{Name: "Squats", StartLoad: 100, TargetIntensity: -75},
			wantErr: true,
			field:   "overrides",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.ex.validate()
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.True(t, errors.Is(err, ErrValidation))
			require.Equal(t, tc.field, verr.Field)
			if tc.ex.Name != "" {
				require.Equal(t, tc.ex.Name, verr.Exercise)
			}
		})
	}
}

func TestDynamicExerciseRepBounds(t *testing.T) {
	ex := &DynamicExercise{Name: "Squats", StartLoad: 100}
	min, max := ex.repBounds()
	require.Equal(t, 3, min)
	require.Equal(t, 8, max)

	ex.MinReps, ex.MaxReps = 5, 5
	min, max = ex.repBounds()
	require.Equal(t, 5, min)
	require.Equal(t, 5, max)
}

func TestDynamicExerciseEndLoad(t *testing.T) {
	// Explicit end load wins.
	ex := &DynamicExercise{Name: "Squats", StartLoad: 100, EndLoad: 112.5}
	require.Equal(t, 112.5, ex.endLoad(8))

	// Derived: 100 · (1 + 1.5·4/100) = 106.
	ex = &DynamicExercise{Name: "Squats", StartLoad: 100, WeeklyGrowthPercent: 1.5}
	require.InDelta(t, 106, ex.endLoad(4), 1e-9)

	// Zero growth percent falls back to the default 1.5.
	ex = &DynamicExercise{Name: "Squats", StartLoad: 100}
	require.InDelta(t, 106, ex.endLoad(4), 1e-9)
}

func TestDynamicExerciseWeeklyGrowth(t *testing.T) {
	// 100 → 120 over 2 weeks is 10% per week; over 4 weeks 5%.
	ex := &DynamicExercise{Name: "Squats", StartLoad: 100, EndLoad: 120}
	require.Equal(t, 10.0, ex.WeeklyGrowth(2))
	require.Equal(t, 5.0, ex.WeeklyGrowth(4))

	// Without an end load the configured (or default) percentage is echoed.
	ex = &DynamicExercise{Name: "Squats", StartLoad: 100}
	require.Equal(t, 1.5, ex.WeeklyGrowth(8))
	ex.WeeklyGrowthPercent = 2
	require.Equal(t, 2.0, ex.WeeklyGrowth(8))
}

func TestStaticExerciseValidate(t *testing.T) {
	require.NoError(t, (&StaticExercise{Name: "Curls", Scheme: "3 x 10"}).validate())

	err := (&StaticExercise{Scheme: "3 x 10"}).validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "name", verr.Field)
}
