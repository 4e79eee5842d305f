package setforge

import "math"

// Progression maps a week number in [1, duration] to a normalized progress
// fraction in [0, 1]. Every shape must satisfy the boundary conditions
// progression(1, d) = 0 and progression(d, d) = 1 for any duration d ≥ 1.
type Progression func(week, duration int) float64

// Constants of the sinusoidal shape: one undulation cycle every four weeks
// with a relative amplitude of 2.5% of the full progress range.
const (
	sinusoidalPeriod = 4
	sinusoidalScale  = 0.025
)

// ProgressionLinear interpolates progress evenly across the program.
// A duration of one week yields 0.
func ProgressionLinear(week, duration int) float64 {
	if duration <= 1 {
		return 0
	}
	return float64(week-1) / float64(duration-1)
}

// ProgressionSinusoidal overlays a periodic oscillation on the linear trend,
// producing undulating weekly loads while keeping the same endpoints. The
// oscillation is tapered by 4p(1-p) so it vanishes exactly at the first and
// last week.
func ProgressionSinusoidal(week, duration int) float64 {
	p := ProgressionLinear(week, duration)
	wave := math.Sin(2 * math.Pi * float64(week-1) / sinusoidalPeriod)
	taper := 4 * p * (1 - p)
	return clamp01(p + sinusoidalScale*wave*taper)
}

// WeekTarget holds the derived weekly targets for one exercise: the load to
// work toward, the total repetition count and the average intensity.
type WeekTarget struct {
	Week      int
	Load      float64
	TotalReps int
	Intensity float64
}

// weekLoads computes the per-week target loads from start to end: the
// progress fraction is mapped onto [start, end], quantized to the rounding
// granularity and clamped between start and end. The resulting series is
// forced monotone in the direction of growth so quantization jitter from an
// undulating shape never reverses the trend.
func weekLoads(start, end float64, duration int, roundTo float64, prog Progression) []float64 {
	lo, hi := math.Min(start, end), math.Max(start, end)
	loads := make([]float64, duration)
	for w := 1; w <= duration; w++ {
		l := start + prog(w, duration)*(end-start)
		l = roundToNearest(l, roundTo)
		l = math.Min(math.Max(l, lo), hi)
		loads[w-1] = l
	}
	if end >= start {
		for w := 1; w < duration; w++ {
			loads[w] = math.Max(loads[w], loads[w-1])
		}
	} else {
		for w := 1; w < duration; w++ {
			loads[w] = math.Min(loads[w], loads[w-1])
		}
	}
	return loads
}

// roundToNearest rounds x to the nearest multiple of nearest.
func roundToNearest(x, nearest float64) float64 {
	return nearest * math.Round(x/nearest)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
