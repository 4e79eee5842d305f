package optimizer

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// MaxSetsCap is the hard upper bound on the number of working sets per
// exercise. It keeps the search space small enough for exhaustive
// enumeration.
const MaxSetsCap = 10

// epsDenom guards divisions when a goal coincides with an attainable
// extreme.
const epsDenom = 1e-4

var (
	// ErrNoCandidate is returned when no set combination approaches the
	// repetition goal within the configured maximum relative error.
	ErrNoCandidate = errors.New("optimizer: no candidate within tolerance of the reps goal")

	// ErrEmptyDomain is returned when the request carries no repetition counts.
	ErrEmptyDomain = errors.New("optimizer: empty repetition domain")
)

// Config configures an Optimizer.
// Zero values are replaced with sensible defaults; see field comments.
//
// The four objective weights trade off, in comparable normalized units,
// how much the optimizer cares about hitting the repetition goal, hitting
// the intensity goal, using many distinct repetition counts (dense schemes)
// and keeping the used repetition range narrow.
type Config struct {
	MaxSets          int     // sets per scheme; zero → 10, capped at MaxSetsCap
	PenaltyReps      float64 // weight of |Σreps - goal|/goal; zero → 1.0
	PenaltyIntensity float64 // weight of the normalized intensity slack; zero → 1.0
	RewardDensity    float64 // reward per fraction of distinct rep counts used; zero → 1.0
	PenaltySpread    float64 // weight of (max used rep - min used rep)/domain spread; zero → 0.9
	Tolerance        float64 // near-optimal objective band; zero → 0.05
	MaxRelativeError float64 // feasibility bound on |Σreps - goal|/goal; zero → 0.35
}

// Optimizer searches set schemes by bounded exhaustive enumeration.
type Optimizer struct {
	maxSets          int
	penaltyReps      float64
	penaltyIntensity float64
	rewardDensity    float64
	penaltySpread    float64
	tolerance        float64
	maxRelativeError float64
}

// New creates an Optimizer from the given config.
// Zero-valued fields are filled with defaults; invalid values return an error.
func New(cfg Config) (*Optimizer, error) {
	o := &Optimizer{
		maxSets:          cfg.MaxSets,
		penaltyReps:      cfg.PenaltyReps,
		penaltyIntensity: cfg.PenaltyIntensity,
		rewardDensity:    cfg.RewardDensity,
		penaltySpread:    cfg.PenaltySpread,
		tolerance:        cfg.Tolerance,
		maxRelativeError: cfg.MaxRelativeError,
	}
	if o.maxSets == 0 {
		o.maxSets = MaxSetsCap
	}
	if o.maxSets < 1 || o.maxSets > MaxSetsCap {
		return nil, fmt.Errorf("optimizer: max sets %d out of range [1, %d]", cfg.MaxSets, MaxSetsCap)
	}
	if o.penaltyReps == 0 {
		o.penaltyReps = 1.0
	}
	if o.penaltyIntensity == 0 {
		o.penaltyIntensity = 1.0
	}
	if o.rewardDensity == 0 {
		o.rewardDensity = 1.0
	}
	if o.penaltySpread == 0 {
		o.penaltySpread = 0.9
	}
	if o.penaltyReps < 0 || o.penaltyIntensity < 0 || o.rewardDensity < 0 || o.penaltySpread < 0 {
		return nil, errors.New("optimizer: objective weights must not be negative")
	}
	if o.tolerance == 0 {
		o.tolerance = 0.05
	}
	if o.tolerance < 0 {
		return nil, fmt.Errorf("optimizer: tolerance %f must not be negative", cfg.Tolerance)
	}
	if o.maxRelativeError == 0 {
		o.maxRelativeError = 0.35
	}
	if o.maxRelativeError < 0 {
		return nil, fmt.Errorf("optimizer: max relative error %f must not be negative", cfg.MaxRelativeError)
	}
	return o, nil
}

// Request describes one week's targets for one exercise.
type Request struct {
	Reps          []int     // allowed repetition counts, strictly ascending
	Intensities   []float64 // per-rep intensity as a fraction of 1RM, aligned with Reps
	RepsGoal      int       // desired total repetitions
	IntensityGoal float64   // desired rep-weighted average intensity, fraction of 1RM
}

func (r Request) validate() error {
	if len(r.Reps) == 0 {
		return ErrEmptyDomain
	}
	if len(r.Intensities) != len(r.Reps) {
		return fmt.Errorf("optimizer: %d intensities for %d repetition counts",
			len(r.Intensities), len(r.Reps))
	}
	for j, reps := range r.Reps {
		if reps < 1 {
			return fmt.Errorf("optimizer: repetition count %d must be at least 1", reps)
		}
		if j > 0 && reps <= r.Reps[j-1] {
			return errors.New("optimizer: repetition counts must be strictly ascending")
		}
		if r.Intensities[j] <= 0 || r.Intensities[j] > 1 {
			return fmt.Errorf("optimizer: intensity %f for %d reps out of range (0, 1]",
				r.Intensities[j], reps)
		}
	}
	if r.RepsGoal < 1 {
		return fmt.Errorf("optimizer: reps goal %d must be at least 1", r.RepsGoal)
	}
	return nil
}

// Candidate is one scored set scheme.
type Candidate struct {
	Reps         []int   // per-set repetition counts, fewest reps (heaviest set) first
	Counts       []int   // number of sets per repetition count, aligned with the request domain
	TotalReps    int     // Σ sets·reps
	AvgIntensity float64 // rep-weighted average intensity, fraction of 1RM
	Objective    float64
}

// Optimize searches every scheme of 1..MaxSets sets over the request's
// repetition domain and returns the candidates whose objective lies within
// Tolerance of the minimum, best first. Ties order by fewer sets, then by
// the repetition sequence. An intensity goal outside the attainable range is
// clamped to the nearest attainable value before scoring.
//
// Returns ErrNoCandidate when even the best scheme misses the repetition
// goal by more than MaxRelativeError.
func (o *Optimizer) Optimize(req Request) ([]Candidate, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	minI, maxI := req.Intensities[0], req.Intensities[0]
	for _, i := range req.Intensities[1:] {
		minI = math.Min(minI, i)
		maxI = math.Max(maxI, i)
	}

	// An unattainable intensity goal is recast to the nearest attainable value.
	goalI := math.Min(math.Max(req.IntensityGoal, minI), maxI)
	goalR := float64(req.RepsGoal)

	n := len(req.Reps)
	counts := make([]int, n)
	var cands []Candidate
	best := math.Inf(1)

	var walk func(j, sets, repsSum int)
	walk = func(j, sets, repsSum int) {
		if j == n {
			if sets == 0 {
				return
			}
			c := o.evaluate(req, counts, goalI, minI, maxI)
			if c.Objective < best {
				best = c.Objective
			}
			if c.Objective <= best+o.tolerance {
				cands = append(cands, c)
			}
			return
		}
		for k := 0; sets+k <= o.maxSets; k++ {
			sum := repsSum + k*req.Reps[j]
			// Deeper assignments only add repetitions, so once the reps term
			// alone exceeds the best objective plus the full density reward
			// and the tolerance band, the whole subtree is hopeless.
			if sum > req.RepsGoal &&
				o.penaltyReps*(float64(sum)-goalR)/goalR-o.rewardDensity > best+o.tolerance {
				break
			}
			counts[j] = k
			walk(j+1, sets+k, sum)
		}
		counts[j] = 0
	}
	walk(0, 0, 0)

	// The band is tracked against a running minimum, so prune stale entries.
	kept := cands[:0]
	for _, c := range cands {
		if c.Objective <= best+o.tolerance {
			kept = append(kept, c)
		}
	}
	cands = kept

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Objective != cands[j].Objective {
			return cands[i].Objective < cands[j].Objective
		}
		if len(cands[i].Reps) != len(cands[j].Reps) {
			return len(cands[i].Reps) < len(cands[j].Reps)
		}
		return lessIntSlice(cands[i].Reps, cands[j].Reps)
	})

	if len(cands) == 0 {
		return nil, fmt.Errorf("%w: goal %d reps over domain %v", ErrNoCandidate, req.RepsGoal, req.Reps)
	}
	if relErr := math.Abs(float64(cands[0].TotalReps)-goalR) / goalR; relErr > o.maxRelativeError {
		return nil, fmt.Errorf("%w: goal %d reps, closest scheme reaches %d",
			ErrNoCandidate, req.RepsGoal, cands[0].TotalReps)
	}
	return cands, nil
}

// evaluate scores one complete assignment of sets to repetition counts.
//
// Objective terms, all normalized to comparable unitless magnitudes:
//
//	+ PenaltyReps      · |Σreps − goal| / goal
//	+ PenaltyIntensity · slack / distance to the nearest attainable extreme
//	− RewardDensity    · (distinct rep counts used) / (domain size)
//	+ PenaltySpread    · (max used rep − min used rep) / (domain spread)
//
// The intensity slack is asymmetric: undershooting is normalized by the
// room below the goal, overshooting by the room above it.
func (o *Optimizer) evaluate(req Request, counts []int, goalI, minI, maxI float64) Candidate {
	var (
		totalSets int
		totalReps int
		weighted  float64 // Σ sets·reps·intensity
		distinct  int
		minUsed   = -1
		maxUsed   int
	)
	for j, k := range counts {
		if k == 0 {
			continue
		}
		reps := req.Reps[j]
		totalSets += k
		totalReps += k * reps
		weighted += float64(k*reps) * req.Intensities[j]
		distinct++
		if minUsed < 0 {
			minUsed = reps
		}
		maxUsed = reps
	}

	goalR := float64(req.RepsGoal)
	obj := o.penaltyReps * math.Abs(float64(totalReps)-goalR) / goalR

	diff := goalI*float64(totalReps) - weighted
	if diff > 0 {
		obj += o.penaltyIntensity * diff / math.Max(goalI-minI, epsDenom)
	} else {
		obj += o.penaltyIntensity * -diff / math.Max(maxI-goalI, epsDenom)
	}

	obj -= o.rewardDensity * float64(distinct) / float64(len(req.Reps))

	domainSpread := float64(req.Reps[len(req.Reps)-1] - req.Reps[0])
	obj += o.penaltySpread * float64(maxUsed-minUsed) / math.Max(domainSpread, epsDenom)

	reps := make([]int, 0, totalSets)
	for j, k := range counts {
		for ; k > 0; k-- {
			reps = append(reps, req.Reps[j])
		}
	}

	return Candidate{
		Reps:         reps,
		Counts:       append([]int(nil), counts...),
		TotalReps:    totalReps,
		AvgIntensity: weighted / float64(totalReps),
		Objective:    obj,
	}
}

func lessIntSlice(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
