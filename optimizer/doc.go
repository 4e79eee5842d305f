// Package optimizer searches for the set scheme that best satisfies a
// week's repetition and intensity targets.
//
// It provides two capabilities:
//
//   - [Optimizer.Optimize] enumerates every assignment of sets to the
//     allowed repetition counts (bounded by MaxSets, so the space is finite)
//     and scores each against the targets with a fixed goal-programming
//     objective, returning the near-optimal candidates in a deterministic
//     order.
//
//   - [Select] picks, among those near-optimal candidates, the one least
//     similar to the schemes recently accepted for the same exercise, so an
//     exercise does not repeat an identical set pattern needlessly.
//
// # Usage
//
//	opt, err := optimizer.New(optimizer.Config{})
//	cands, err := opt.Optimize(optimizer.Request{
//	    Reps:          []int{3, 4, 5, 6, 7, 8},
//	    Intensities:   []float64{0.907, 0.8745, 0.843, 0.8125, 0.783, 0.7545},
//	    RepsGoal:      25,
//	    IntensityGoal: 0.78,
//	})
//	hist := optimizer.NewHistory(2)
//	chosen := optimizer.Select(cands, hist)
//	hist.Push(chosen.Reps)
//
// Both Optimize and Select are pure: identical inputs and history always
// yield identical output.
package optimizer
