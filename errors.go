package setforge

import (
	"errors"
	"fmt"
)

// Sentinel errors for the setforge package.
// Use errors.Is to check: errors.Is(err, setforge.ErrInfeasible)
var (
	ErrNotRendered = errors.New("setforge: program not rendered")
	ErrValidation  = errors.New("setforge: invalid program input")
	ErrInfeasible  = errors.New("setforge: no feasible set scheme")
	ErrNoScheme    = errors.New("setforge: no scheme for the given week, day and exercise")
)

// ValidationError reports an invalid field detected before any optimization.
// Exercise is empty when the field belongs to the program itself.
type ValidationError struct {
	Exercise string
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Exercise == "" {
		return fmt.Sprintf("setforge: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("setforge: exercise %q: %s: %s", e.Exercise, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InfeasibleError reports that the optimizer could not approach the weekly
// targets for one exercise. It identifies the failing week and exercise and
// wraps the optimizer's cause.
type InfeasibleError struct {
	Exercise string
	Week     int
	Err      error
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("setforge: exercise %q, week %d: %v", e.Exercise, e.Week, e.Err)
}

func (e *InfeasibleError) Unwrap() []error { return []error{ErrInfeasible, e.Err} }
