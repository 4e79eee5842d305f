package setforge

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/setforge/setforge/optimizer"
)

// ProgramConfig configures a Program.
// Zero values produce sensible defaults; see field comments.
type ProgramConfig struct {
	Name            string  // zero → "Untitled"
	Duration        int     // program length in weeks; zero → 8
	RepsPerExercise int     // default total reps per dynamic exercise per week; zero → 25
	Intensity       float64 // default average intensity, percent of 1RM; zero → 75
	Units           string  // display-only unit label; zero → "kg"
	RoundTo         float64 // weight rounding granularity; zero → 2.5

	// RepScalers and IntensityScalers modulate the weekly targets: the
	// default target is multiplied by the scaler at (week-1) mod len. nil or
	// length 1 means no modulation. All values must be positive.
	RepScalers       []float64
	IntensityScalers []float64

	Progression     Progression     // nil → ProgressionSinusoidal
	RepsToIntensity RepsToIntensity // nil → RepsToIntensityDefault

	// ConstantWeight prescribes every set at the week's target intensity
	// instead of pyramid loading, where each set's weight follows its own
	// repetition count.
	ConstantWeight bool

	HistoryWindow int              // variety lookback in weeks; zero → 2
	Optimizer     optimizer.Config // zero fields → optimizer defaults
}

// Program is a container for days and exercises together with everything
// needed to render them into weekly set schemes. A Program starts out
// unrendered: schedule accessors fail with ErrNotRendered until Render has
// completed. Rendering again replaces the schedule wholesale.
type Program struct {
	name             string
	duration         int
	repsPerExercise  int
	intensity        float64
	units            string
	roundTo          float64
	repScalers       []float64
	intensityScalers []float64
	progression      Progression
	repsToIntensity  RepsToIntensity
	constantWeight   bool
	historyWindow    int
	opt              *optimizer.Optimizer

	days     []*Day
	schedule *Schedule
}

// NewProgram creates a Program from the given config.
// Zero-value fields are filled with defaults; invalid values return an error.
func NewProgram(cfg ProgramConfig) (*Program, error) {
	p := &Program{
		name:             cfg.Name,
		duration:         cfg.Duration,
		repsPerExercise:  cfg.RepsPerExercise,
		intensity:        cfg.Intensity,
		units:            cfg.Units,
		roundTo:          cfg.RoundTo,
		repScalers:       cfg.RepScalers,
		intensityScalers: cfg.IntensityScalers,
		progression:      cfg.Progression,
		repsToIntensity:  cfg.RepsToIntensity,
		constantWeight:   cfg.ConstantWeight,
		historyWindow:    cfg.HistoryWindow,
	}
	if p.name == "" {
		p.name = "Untitled"
	}
	if p.duration == 0 {
		p.duration = 8
	}
	if p.duration < 1 {
		return nil, &ValidationError{Field: "duration", Reason: "must be at least 1 week"}
	}
	if p.repsPerExercise == 0 {
		p.repsPerExercise = 25
	}
	if p.repsPerExercise < 1 {
		return nil, &ValidationError{Field: "reps_per_exercise", Reason: "must be at least 1"}
	}
	if p.intensity == 0 {
		p.intensity = 75
	}
	if p.intensity < 0 {
		return nil, &ValidationError{Field: "intensity", Reason: "must be positive"}
	}
	if p.units == "" {
		p.units = "kg"
	}
	if p.roundTo == 0 {
		p.roundTo = 2.5
	}
	if p.roundTo < 0 {
		return nil, &ValidationError{Field: "round_to", Reason: "rounding granularity must be positive"}
	}
	if err := validScalers(p.repScalers); err != nil {
		return nil, &ValidationError{Field: "rep_scalers", Reason: err.Error()}
	}
	if err := validScalers(p.intensityScalers); err != nil {
		return nil, &ValidationError{Field: "intensity_scalers", Reason: err.Error()}
	}
	if p.progression == nil {
		p.progression = ProgressionSinusoidal
	}
	if p.repsToIntensity == nil {
		p.repsToIntensity = RepsToIntensityDefault
	}
	if !validIntensityModel(p.repsToIntensity) {
		return nil, &ValidationError{
			Field:  "reps_to_intensity",
			Reason: "model must be non-increasing and map into (0, 110]",
		}
	}
	if p.historyWindow == 0 {
		p.historyWindow = optimizer.DefaultHistoryWindow
	}
	if p.historyWindow < 1 {
		return nil, &ValidationError{Field: "history_window", Reason: "must be at least 1"}
	}

	opt, err := optimizer.New(cfg.Optimizer)
	if err != nil {
		return nil, err
	}
	p.opt = opt
	return p, nil
}

func validScalers(scalers []float64) error {
	for _, s := range scalers {
		if s <= 0 {
			return fmt.Errorf("scaler %g must be positive", s)
		}
	}
	return nil
}

// Name returns the program name.
func (p *Program) Name() string { return p.name }

// Duration returns the program length in weeks.
func (p *Program) Duration() int { return p.duration }

// Units returns the display-only unit label.
func (p *Program) Units() string { return p.units }

// Days returns the program's days in order. The slice is a copy.
func (p *Program) Days() []*Day {
	return append([]*Day(nil), p.days...)
}

// AddDays appends days to the program, validating every exercise eagerly.
// On error nothing is appended.
func (p *Program) AddDays(days ...*Day) error {
	for _, day := range days {
		if err := day.validate(); err != nil {
			return err
		}
	}
	p.days = append(p.days, days...)
	return nil
}

// Rendered reports whether the program has a computed schedule.
func (p *Program) Rendered() bool { return p.schedule != nil }

// Schedule returns the rendered schedule, or ErrNotRendered before Render
// has completed.
func (p *Program) Schedule() (*Schedule, error) {
	if p.schedule == nil {
		return nil, ErrNotRendered
	}
	return p.schedule, nil
}

// Scheme returns the rendered scheme for a dynamic exercise. Week counts
// from 1, day from 0. Returns ErrNotRendered before Render has completed.
func (p *Program) Scheme(week, day int, exercise string) (ExerciseScheme, error) {
	if p.schedule == nil {
		return ExerciseScheme{}, ErrNotRendered
	}
	return p.schedule.Scheme(week, day, exercise)
}

// WeekTargets derives the weekly targets for one exercise: target load from
// the progression shape, target reps and intensity from the program or
// per-exercise defaults modulated by the cyclic scalers. Pure; independent
// of render state.
func (p *Program) WeekTargets(ex *DynamicExercise) []WeekTarget {
	loads := weekLoads(ex.StartLoad, ex.endLoad(p.duration), p.duration,
		p.exerciseRounding(ex), p.progression)

	targetReps := ex.TargetReps
	if targetReps == 0 {
		targetReps = p.repsPerExercise
	}
	targetIntensity := ex.TargetIntensity
	if targetIntensity == 0 {
		targetIntensity = p.intensity
	}

	targets := make([]WeekTarget, p.duration)
	for w := 1; w <= p.duration; w++ {
		targets[w-1] = WeekTarget{
			Week:      w,
			Load:      loads[w-1],
			TotalReps: int(math.Round(float64(targetReps) * scalerAt(p.repScalers, w))),
			Intensity: math.Round(targetIntensity * scalerAt(p.intensityScalers, w)),
		}
	}
	return targets
}

// scalerAt returns the cyclic scaler for a week, 1 when no scalers are set.
func scalerAt(scalers []float64, week int) float64 {
	if len(scalers) == 0 {
		return 1
	}
	return scalers[(week-1)%len(scalers)]
}

func (p *Program) exerciseRounding(ex *DynamicExercise) float64 {
	if ex.RoundTo != 0 {
		return ex.RoundTo
	}
	return p.roundTo
}

// Render computes the full schedule: for every dynamic exercise, the weekly
// targets are derived and the optimizer searches the best-matching set
// scheme week by week, with the variety selection biasing against recently
// used rep patterns. Exercises are independent and rendered concurrently;
// weeks within one exercise are rendered in order.
//
// Render is fail-fast: on any validation or infeasibility error no schedule
// is installed and a previously rendered schedule is kept unchanged.
func (p *Program) Render() error {
	if len(p.days) == 0 {
		return &ValidationError{Field: "days", Reason: "program has no days"}
	}
	for i, day := range p.days {
		if day.Name == "" {
			day.Name = fmt.Sprintf("Day %d", i+1)
		}
		if err := day.validate(); err != nil {
			return err
		}
		seen := make(map[string]bool, len(day.Exercises))
		for _, ex := range day.Exercises {
			if seen[ex.ExerciseName()] {
				return &ValidationError{
					Exercise: ex.ExerciseName(),
					Field:    "name",
					Reason:   "duplicate exercise name in " + day.Name,
				}
			}
			seen[ex.ExerciseName()] = true
		}
	}

	type job struct {
		day int
		ex  *DynamicExercise
	}
	var jobs []job
	statics := make(map[staticKey]string)
	for di, day := range p.days {
		for _, ex := range day.Exercises {
			switch e := ex.(type) {
			case *DynamicExercise:
				jobs = append(jobs, job{day: di, ex: e})
			case *StaticExercise:
				statics[staticKey{day: di, exercise: e.Name}] = e.Scheme
			}
		}
	}

	// Each exercise owns its private variety history, so the per-exercise
	// week loops are mutually independent.
	results := make([][]ExerciseScheme, len(jobs))
	var g errgroup.Group
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			schemes, err := p.renderExercise(j.ex)
			if err != nil {
				return err
			}
			results[i] = schemes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	schedule := &Schedule{
		Duration: p.duration,
		Units:    p.units,
		schemes:  make(map[schemeKey]ExerciseScheme, len(jobs)*p.duration),
		statics:  statics,
	}
	for i, j := range jobs {
		for w, es := range results[i] {
			schedule.schemes[schemeKey{week: w + 1, day: j.day, exercise: j.ex.Name}] = es
		}
	}
	p.schedule = schedule
	return nil
}

// renderExercise renders all weeks of one dynamic exercise in order.
func (p *Program) renderExercise(ex *DynamicExercise) ([]ExerciseScheme, error) {
	minReps, maxReps := ex.repBounds()
	roundTo := p.exerciseRounding(ex)

	reps := make([]int, 0, maxReps-minReps+1)
	intensities := make([]float64, 0, maxReps-minReps+1)
	for r := minReps; r <= maxReps; r++ {
		reps = append(reps, r)
		intensities = append(intensities, p.repsToIntensity(r)/100)
	}

	targets := p.WeekTargets(ex)
	hist := optimizer.NewHistory(p.historyWindow)
	schemes := make([]ExerciseScheme, p.duration)

	for w := 1; w <= p.duration; w++ {
		target := targets[w-1]
		cands, err := p.opt.Optimize(optimizer.Request{
			Reps:          reps,
			Intensities:   intensities,
			RepsGoal:      target.TotalReps,
			IntensityGoal: target.Intensity / 100,
		})
		if err != nil {
			return nil, &InfeasibleError{Exercise: ex.Name, Week: w, Err: err}
		}
		chosen := optimizer.Select(cands, hist)
		hist.Push(chosen.Reps)

		sets := make([]SetPrescription, len(chosen.Reps))
		for i, r := range chosen.Reps {
			modeled := p.repsToIntensity(r)
			weight := target.Load * modeled / 100
			if p.constantWeight {
				weight = target.Load * target.Intensity / 100
			}
			sets[i] = SetPrescription{
				Reps:      r,
				Weight:    roundToNearest(weight, roundTo),
				Intensity: modeled,
			}
		}
		schemes[w-1] = ExerciseScheme{
			Exercise:     ex.Name,
			Week:         w,
			Sets:         sets,
			TotalReps:    chosen.TotalReps,
			AvgIntensity: chosen.AvgIntensity * 100,
			Target:       target,
		}
	}
	return schemes, nil
}
