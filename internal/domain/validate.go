package domain

import (
	"fmt"
	"math"
)

// Validate is the gate every calculation passes first. Age, weight and
// height must be supplied; everything else may be missing but must be in
// range when present.
func (p PersonalInfo) Validate() error {
	required := []struct {
		field string
		value float64
	}{
		{"age", p.Age},
		{"weight", p.Weight},
		{"height", p.Height},
	}
	for _, r := range required {
		if r.value == 0 {
			return &MissingRequiredFieldError{Field: r.field}
		}
	}
	for _, r := range required {
		if !isFinite(r.value) || r.value < 0 {
			return &InvalidInputError{Field: r.field, Value: formatFloat(r.value), Reason: "must be a positive number"}
		}
	}

	optional := []struct {
		field string
		value float64
	}{
		{"waist", p.Waist},
		{"hip", p.Hip},
		{"neck", p.Neck},
	}
	for _, o := range optional {
		if !isFinite(o.value) || o.value < 0 {
			return &InvalidInputError{Field: o.field, Value: formatFloat(o.value), Reason: "must not be negative"}
		}
	}

	if !p.Gender.Valid() {
		return &InvalidInputError{Field: "gender", Value: string(p.Gender), Reason: "must be male or female"}
	}
	if !p.ActivityLevel.Valid() {
		return &InvalidInputError{Field: "activity level", Value: string(p.ActivityLevel), Reason: "unknown level"}
	}
	if !p.Goal.Valid() {
		return &InvalidInputError{Field: "goal", Value: string(p.Goal), Reason: "must be lose, maintain or gain"}
	}
	return nil
}

// Validate checks an exercise entry's intensity, duration and frequency.
// Unknown types are allowed.
func (e ExerciseEntry) Validate() error {
	if !e.Intensity.Valid() {
		return &InvalidInputError{Field: "intensity", Value: string(e.Intensity), Reason: "must be light, medium or high"}
	}
	if !isFinite(e.Duration) || e.Duration < 0 {
		return &InvalidInputError{Field: "duration", Value: formatFloat(e.Duration), Reason: "must not be negative"}
	}
	if !isFinite(e.Frequency) || e.Frequency < 0 {
		return &InvalidInputError{Field: "frequency", Value: formatFloat(e.Frequency), Reason: "must not be negative"}
	}
	return nil
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func formatFloat(f float64) string { return fmt.Sprintf("%g", f) }
