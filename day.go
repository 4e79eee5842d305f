package setforge

// Day is an ordered container of exercises trained together.
// Build one with NewDay and append further exercises with Add.
type Day struct {
	Name      string
	Exercises []Exercise
}

// NewDay creates a day with the given name and exercises, in order.
func NewDay(name string, exercises ...Exercise) *Day {
	d := &Day{Name: name}
	return d.Add(exercises...)
}

// Add appends exercises to the day, preserving order. It returns the day so
// calls can be chained.
func (d *Day) Add(exercises ...Exercise) *Day {
	d.Exercises = append(d.Exercises, exercises...)
	return d
}

// validate checks the day and every exercise in it.
func (d *Day) validate() error {
	if len(d.Exercises) == 0 {
		return &ValidationError{Field: "exercises", Reason: "day " + d.Name + " has no exercises"}
	}
	for _, ex := range d.Exercises {
		var err error
		switch e := ex.(type) {
		case *DynamicExercise:
			err = e.validate()
		case *StaticExercise:
			err = e.validate()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
