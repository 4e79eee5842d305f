package setforge

import "math"

// Default repetition bounds and weekly growth for dynamic exercises.
const (
	defaultMinReps      = 3
	defaultMaxReps      = 8
	defaultWeeklyGrowth = 1.5 // percent of start load added per week
)

// Exercise is either a *DynamicExercise or a *StaticExercise.
// The interface is sealed; no other implementations exist.
type Exercise interface {
	// ExerciseName returns the display name of the exercise.
	ExerciseName() string

	isExercise()
}

// Compile-time interface checks.
var (
	_ Exercise = (*DynamicExercise)(nil)
	_ Exercise = (*StaticExercise)(nil)
)

// DynamicExercise is an exercise whose set and repetition scheme is computed
// by the program, varying from week to week.
// Zero values produce sensible defaults; see field comments.
type DynamicExercise struct {
	Name      string
	StartLoad float64 // load at week one, e.g. the current 1RM
	EndLoad   float64 // zero → derived from WeeklyGrowthPercent

	// WeeklyGrowthPercent is the additive weekly load increase, as a percent
	// of the start load. Zero → 1.5. Used only when EndLoad is zero; setting
	// both with contradicting directions is a validation error.
	WeeklyGrowthPercent float64

	MinReps int // zero → 3
	MaxReps int // zero → 8

	TargetReps      int     // per-exercise total reps override; zero → program default
	TargetIntensity float64 // per-exercise intensity override; zero → program default
	RoundTo         float64 // weight rounding granularity override; zero → program default
}

// ExerciseName implements Exercise.
func (e *DynamicExercise) ExerciseName() string { return e.Name }

func (e *DynamicExercise) isExercise() {}

// repBounds returns the resolved inclusive repetition bounds.
func (e *DynamicExercise) repBounds() (min, max int) {
	min, max = e.MinReps, e.MaxReps
	if min == 0 {
		min = defaultMinReps
	}
	if max == 0 {
		max = defaultMaxReps
	}
	return min, max
}

// endLoad returns the resolved end load after the given number of weeks.
// When EndLoad is zero the growth is additive: start · (1 + pct·weeks/100).
func (e *DynamicExercise) endLoad(weeks int) float64 {
	if e.EndLoad != 0 {
		return e.EndLoad
	}
	pct := e.WeeklyGrowthPercent
	if pct == 0 {
		pct = defaultWeeklyGrowth
	}
	return e.StartLoad * (1 + pct*float64(weeks)/100)
}

// WeeklyGrowth returns the percent growth per week implied by the start and
// end loads over the given number of weeks, rounded to one decimal. When no
// end load is set it returns the configured weekly growth percentage.
func (e *DynamicExercise) WeeklyGrowth(weeks int) float64 {
	if e.EndLoad == 0 {
		if e.WeeklyGrowthPercent == 0 {
			return defaultWeeklyGrowth
		}
		return e.WeeklyGrowthPercent
	}
	growth := (e.EndLoad/e.StartLoad - 1) / float64(weeks) * 100
	return math.Round(growth*10) / 10
}

// validate checks the exercise fields eagerly, before any optimization.
func (e *DynamicExercise) validate() error {
	if e.Name == "" {
		return &ValidationError{Field: "name", Reason: "dynamic exercise has no name"}
	}
	if e.StartLoad <= 0 {
		return &ValidationError{Exercise: e.Name, Field: "start_load", Reason: "must be positive"}
	}
	if e.EndLoad < 0 {
		return &ValidationError{Exercise: e.Name, Field: "end_load", Reason: "must not be negative"}
	}
	if e.EndLoad != 0 && e.WeeklyGrowthPercent != 0 &&
		(e.EndLoad-e.StartLoad)*e.WeeklyGrowthPercent < 0 {
		return &ValidationError{
			Exercise: e.Name,
			Field:    "end_load",
			Reason:   "end load is on the wrong side of the start load for the configured growth direction",
		}
	}
	min, max := e.repBounds()
	if min < 1 {
		return &ValidationError{Exercise: e.Name, Field: "min_reps", Reason: "must be at least 1"}
	}
	if min > max {
		return &ValidationError{Exercise: e.Name, Field: "min_reps", Reason: "min_reps exceeds max_reps"}
	}
	if e.TargetReps < 0 || e.TargetIntensity < 0 || e.RoundTo < 0 {
		return &ValidationError{Exercise: e.Name, Field: "overrides", Reason: "must not be negative"}
	}
	return nil
}

// StaticExercise is a fixed prescription carried through to the rendered
// schedule unchanged. The scheme string is opaque: it is never inspected or
// validated beyond being present.
type StaticExercise struct {
	Name   string
	Scheme string // e.g. "4 x 10" or "10 minutes"
}

// ExerciseName implements Exercise.
func (e *StaticExercise) ExerciseName() string { return e.Name }

func (e *StaticExercise) isExercise() {}

func (e *StaticExercise) validate() error {
	if e.Name == "" {
		return &ValidationError{Field: "name", Reason: "static exercise has no name"}
	}
	return nil
}
