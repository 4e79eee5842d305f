// Package setforge generates periodized strength-training programs.
//
// setforge computes, for each dynamic exercise and each week of a program,
// an ordered list of (repetitions, weight) working sets that trend from a
// starting load toward a target load while matching weekly volume and
// intensity goals. The set search itself lives in the setforge/optimizer
// subpackage.
//
// Basic usage:
//
//	p, err := setforge.NewProgram(setforge.ProgramConfig{Duration: 8})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	day := setforge.NewDay("Monday",
//	    &setforge.DynamicExercise{Name: "Bench press", StartLoad: 60, EndLoad: 80},
//	    &setforge.StaticExercise{Name: "Curls", Scheme: "4 x 10"},
//	)
//	if err := p.AddDays(day); err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.Render(); err != nil {
//	    log.Fatal(err)
//	}
//	scheme, err := p.Scheme(1, 0, "Bench press")
package setforge
