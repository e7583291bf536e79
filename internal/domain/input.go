package domain

import (
	"math"
	"strconv"
	"strings"
)

// RawPersonalInfo carries personal info exactly as a form collected it.
type RawPersonalInfo struct {
	Gender        string `json:"gender"         form:"gender"`
	Age           string `json:"age"            form:"age"`
	Weight        string `json:"weight"         form:"weight"`
	Height        string `json:"height"         form:"height"`
	ActivityLevel string `json:"activity_level" form:"activity_level"`
	Goal          string `json:"goal"           form:"goal"`
	Waist         string `json:"waist"          form:"waist"`
	Hip           string `json:"hip"            form:"hip"`
	Neck          string `json:"neck"           form:"neck"`
}

// RawExerciseEntry carries one exercise row as a form collected it.
type RawExerciseEntry struct {
	Type      string `json:"type"`
	Intensity string `json:"intensity"`
	Duration  string `json:"duration"`
	Frequency string `json:"frequency"`
}

// ParsePersonalInfo converts raw form fields into PersonalInfo. Age, weight
// and height are required; waist, hip and neck may be blank. Gender,
// activity level and goal default to male, sedentary and maintain.
func ParsePersonalInfo(raw RawPersonalInfo) (PersonalInfo, error) {
	var info PersonalInfo
	var err error

	required := []struct {
		field string
		value string
		dest  *float64
	}{
		{"age", raw.Age, &info.Age},
		{"weight", raw.Weight, &info.Weight},
		{"height", raw.Height, &info.Height},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return PersonalInfo{}, &MissingRequiredFieldError{Field: r.field}
		}
	}
	for _, r := range required {
		if *r.dest, err = parsePositive(r.field, r.value); err != nil {
			return PersonalInfo{}, err
		}
	}

	optional := []struct {
		field string
		value string
		dest  *float64
	}{
		{"waist", raw.Waist, &info.Waist},
		{"hip", raw.Hip, &info.Hip},
		{"neck", raw.Neck, &info.Neck},
	}
	for _, o := range optional {
		if *o.dest, err = parseOptional(o.field, o.value); err != nil {
			return PersonalInfo{}, err
		}
	}

	if info.Gender, err = ParseGender(raw.Gender); err != nil {
		return PersonalInfo{}, err
	}
	if info.ActivityLevel, err = ParseActivityLevel(raw.ActivityLevel); err != nil {
		return PersonalInfo{}, err
	}
	if info.Goal, err = ParseGoal(raw.Goal); err != nil {
		return PersonalInfo{}, err
	}
	return info, nil
}

// ParseGender accepts "male" or "female", case-insensitively. Blank means male.
func ParseGender(s string) (Gender, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return GenderMale, nil
	}
	g := Gender(s)
	if !g.Valid() {
		return "", &InvalidInputError{Field: "gender", Value: s, Reason: "must be male or female"}
	}
	return g, nil
}

// ParseGoal accepts "lose", "maintain" or "gain". Blank means maintain.
func ParseGoal(s string) (Goal, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return GoalMaintain, nil
	}
	g := Goal(s)
	if !g.Valid() {
		return "", &InvalidInputError{Field: "goal", Value: s, Reason: "must be lose, maintain or gain"}
	}
	return g, nil
}

// ParseActivityLevel accepts a level name or its multiplier ("1.55").
// Blank means sedentary.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ActivitySedentary, nil
	}
	if a := ActivityLevel(strings.ReplaceAll(s, "-", "_")); a.Valid() {
		return a, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		for _, a := range ActivityLevels {
			if a.Multiplier() == f {
				return a, nil
			}
		}
	}
	return "", &InvalidInputError{
		Field:  "activity level",
		Value:  s,
		Reason: "must be one of sedentary, light, moderate, active, very_active or 1.2, 1.375, 1.55, 1.725, 1.9",
	}
}

// ParseIntensity accepts "light", "medium" or "high". Blank means medium.
func ParseIntensity(s string) (Intensity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return IntensityMedium, nil
	}
	i := Intensity(s)
	if !i.Valid() {
		return "", &InvalidInputError{Field: "intensity", Value: s, Reason: "must be light, medium or high"}
	}
	return i, nil
}

// ParseExercise converts one raw exercise row. Frequency defaults to 1.
// The type is not checked against the catalog: unknown types contribute
// no energy.
func ParseExercise(raw RawExerciseEntry) (ExerciseEntry, error) {
	var e ExerciseEntry
	var err error

	e.Type = strings.TrimSpace(raw.Type)
	if e.Type == "" {
		return ExerciseEntry{}, &InvalidInputError{Field: "exercise type", Reason: "must not be empty"}
	}
	if e.Intensity, err = ParseIntensity(raw.Intensity); err != nil {
		return ExerciseEntry{}, err
	}
	if e.Duration, err = parseNonNegative("duration", raw.Duration); err != nil {
		return ExerciseEntry{}, err
	}
	e.Frequency = 1
	if strings.TrimSpace(raw.Frequency) != "" {
		if e.Frequency, err = parseNonNegative("frequency", raw.Frequency); err != nil {
			return ExerciseEntry{}, err
		}
	}
	return e, nil
}

// ParseExerciseSpec parses the compact "type:intensity:minutes[:frequency]" form.
func ParseExerciseSpec(spec string) (ExerciseEntry, error) {
	parts := strings.Split(strings.TrimSpace(spec), ":")
	if len(parts) < 3 || len(parts) > 4 {
		return ExerciseEntry{}, &InvalidInputError{
			Field:  "exercise",
			Value:  spec,
			Reason: "expected type:intensity:minutes[:frequency]",
		}
	}
	raw := RawExerciseEntry{Type: parts[0], Intensity: parts[1], Duration: parts[2]}
	if len(parts) == 4 {
		raw.Frequency = parts[3]
	}
	return ParseExercise(raw)
}

// ParseExerciseList parses a comma-separated list of exercise specs.
// A blank list yields no entries.
func ParseExerciseList(list string) ([]ExerciseEntry, error) {
	var entries []ExerciseEntry
	for _, spec := range strings.Split(list, ",") {
		if strings.TrimSpace(spec) == "" {
			continue
		}
		e, err := ParseExerciseSpec(spec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseNumber(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &InvalidInputError{Field: field, Value: s, Reason: "not a number"}
	}
	return f, nil
}

func parsePositive(field, s string) (float64, error) {
	f, err := parseNumber(field, s)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, &InvalidInputError{Field: field, Value: strings.TrimSpace(s), Reason: "must be greater than zero"}
	}
	return f, nil
}

func parseNonNegative(field, s string) (float64, error) {
	f, err := parseNumber(field, s)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, &InvalidInputError{Field: field, Value: strings.TrimSpace(s), Reason: "must not be negative"}
	}
	return f, nil
}

// parseOptional treats blank and zero as "not supplied".
func parseOptional(field, s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return parseNonNegative(field, s)
}
