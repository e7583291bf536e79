package domain

import "fmt"

// MissingRequiredFieldError reports a mandatory input (age, weight, height)
// that was not supplied. No calculation runs when it is returned.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field %q: age, weight and height are required", e.Field)
}

// InvalidInputError reports a value that is non-numeric or outside the
// domain of a formula.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// MenuUnsatisfiableError reports a calorie target that no catalog meal fits.
type MenuUnsatisfiableError struct {
	Target   float64
	Cheapest int
}

func (e *MenuUnsatisfiableError) Error() string {
	return fmt.Sprintf("cannot build a menu for %.0f kcal: the cheapest meal has %d kcal", e.Target, e.Cheapest)
}
