package setforge

import (
	"fmt"
	"strings"
)

// SetPrescription is one working set: a repetition count and the weight to
// lift. Intensity is the modeled percentage of 1RM for the set's repetition
// count, informational only.
type SetPrescription struct {
	Reps      int
	Weight    float64
	Intensity float64
}

// ExerciseScheme is the rendered result for one dynamic exercise in one
// week: the ordered working sets (heaviest first) together with the weekly
// targets they were optimized against.
type ExerciseScheme struct {
	Exercise     string
	Week         int
	Sets         []SetPrescription
	TotalReps    int     // sum of repetitions over all sets
	AvgIntensity float64 // rep-weighted average intensity, percent of 1RM
	Target       WeekTarget
}

// Intensities returns the per-set intensities in set order.
func (es ExerciseScheme) Intensities() []float64 {
	out := make([]float64, len(es.Sets))
	for i, set := range es.Sets {
		out[i] = set.Intensity
	}
	return out
}

// String formats the scheme as "reps x weight" pairs, e.g.
// "3 x 55 | 5 x 52.5 | 8 x 47.5".
func (es ExerciseScheme) String() string {
	parts := make([]string, len(es.Sets))
	for i, set := range es.Sets {
		parts[i] = fmt.Sprintf("%d x %g", set.Reps, set.Weight)
	}
	return strings.Join(parts, " | ")
}

func (es ExerciseScheme) clone() ExerciseScheme {
	out := es
	out.Sets = append([]SetPrescription(nil), es.Sets...)
	return out
}

type schemeKey struct {
	week     int
	day      int
	exercise string
}

type staticKey struct {
	day      int
	exercise string
}

// Schedule is the immutable result of rendering a program: a mapping from
// (week, day, exercise) to the chosen scheme. It is safe to share read-only
// across any number of consumers.
type Schedule struct {
	Duration int
	Units    string // display-only unit label, e.g. "kg"

	schemes map[schemeKey]ExerciseScheme
	statics map[staticKey]string
}

// Scheme returns the rendered scheme for a dynamic exercise. Week counts
// from 1, day from 0. The returned value is a copy; mutating it does not
// affect the schedule. Returns ErrNoScheme for unknown keys.
func (s *Schedule) Scheme(week, day int, exercise string) (ExerciseScheme, error) {
	es, ok := s.schemes[schemeKey{week: week, day: day, exercise: exercise}]
	if !ok {
		return ExerciseScheme{}, fmt.Errorf("%w: week %d, day %d, exercise %q",
			ErrNoScheme, week, day, exercise)
	}
	return es.clone(), nil
}

// StaticScheme returns the literal prescription string of a static exercise,
// unchanged from how it was configured. Day counts from 0.
func (s *Schedule) StaticScheme(day int, exercise string) (string, error) {
	str, ok := s.statics[staticKey{day: day, exercise: exercise}]
	if !ok {
		return "", fmt.Errorf("%w: day %d, exercise %q", ErrNoScheme, day, exercise)
	}
	return str, nil
}
