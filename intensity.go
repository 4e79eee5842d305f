package setforge

import "math"

// RepsToIntensity maps a repetition count to the estimated percentage of a
// one-repetition maximum at which that many repetitions can be performed.
// A model must be deterministic and monotonically non-increasing over the
// supported domain (roughly 1 through 12 repetitions).
type RepsToIntensity func(reps int) float64

// intensityDomainMax bounds the repetition range considered when inverting
// an intensity model or sanity-checking a custom one.
const intensityDomainMax = 20

// intensityModel builds the standard model family:
//
//	intensity = constant + slope·(reps-1) + 0.05·(reps-1)²
//
// The small quadratic term flattens the curve at higher repetitions.
func intensityModel(slope, constant float64) RepsToIntensity {
	return func(reps int) float64 {
		r := float64(reps - 1)
		return constant + slope*r + 0.05*r*r
	}
}

var (
	// RepsToIntensityDefault is the default intensity model
	// (slope -3.5, constant 97.5).
	RepsToIntensityDefault = intensityModel(-3.5, 97.5)

	// RepsToIntensityTight drops intensity more slowly per repetition
	// (slope -3.25). Suited to lifters who grind out heavy repetitions.
	RepsToIntensityTight = intensityModel(-3.25, 97.5)

	// RepsToIntensityRelaxed drops intensity faster per repetition
	// (slope -3.75).
	RepsToIntensityRelaxed = intensityModel(-3.75, 97.5)
)

// IntensityToReps approximately inverts an intensity model: it returns the
// repetition count in [1, 20] whose modeled intensity is closest to the given
// percentage. Ties resolve to the lower repetition count. Since repetitions
// are discrete the inversion is exact only for intensities the model attains.
func IntensityToReps(model RepsToIntensity, intensity float64) int {
	best := 1
	bestDiff := math.Inf(1)
	for reps := 1; reps <= intensityDomainMax; reps++ {
		diff := math.Abs(model(reps) - intensity)
		if diff < bestDiff {
			best = reps
			bestDiff = diff
		}
	}
	return best
}

// validIntensityModel reports whether the model is non-increasing and maps
// the supported repetition range into (0, 110].
func validIntensityModel(model RepsToIntensity) bool {
	prev := model(1)
	if prev <= 0 || prev > 110 {
		return false
	}
	for reps := 2; reps <= intensityDomainMax; reps++ {
		cur := model(reps)
		if cur > prev {
			return false
		}
		prev = cur
	}
	return true
}
