package domain

import (
	"fmt"
	"math"
)

// DefaultMaxAttempts bounds the number of random picks in one menu generation.
const DefaultMaxAttempts = 10000

// CalculatorConfig holds the reference catalogs and tuning loaded from .nutricalc.yaml.
type CalculatorConfig struct {
	Meals     []Meal          `yaml:"meals"     json:"meals,omitempty"`
	Exercises ExerciseCatalog `yaml:"exercises" json:"exercises,omitempty"`
	Menu      MenuConfig      `yaml:"menu"      json:"menu,omitempty"`
}

// MenuConfig tunes menu generation.
type MenuConfig struct {
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts,omitempty"`
}

// DefaultConfig returns the built-in catalogs and limits.
func DefaultConfig() CalculatorConfig {
	return CalculatorConfig{
		Meals:     DefaultMeals(),
		Exercises: DefaultExerciseCatalog(),
		Menu:      MenuConfig{MaxAttempts: DefaultMaxAttempts},
	}
}

// WithDefaults fills every unset section from DefaultConfig. Explicit values win.
func (c CalculatorConfig) WithDefaults() CalculatorConfig {
	d := DefaultConfig()
	if len(c.Meals) > 0 {
		d.Meals = c.Meals
	}
	if len(c.Exercises) > 0 {
		d.Exercises = c.Exercises
	}
	if c.Menu.MaxAttempts > 0 {
		d.Menu.MaxAttempts = c.Menu.MaxAttempts
	}
	return d
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c CalculatorConfig) Validate() error {
	// 1. meals need a name and a positive calorie value
	for i, m := range c.Meals {
		if m.Name == "" {
			return fmt.Errorf("meals[%d].name must not be empty", i)
		}
		if m.Calories <= 0 {
			return fmt.Errorf("meals[%d] %q: calories must be > 0 (got %d)", i, m.Name, m.Calories)
		}
		if m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 {
			return fmt.Errorf("meals[%d] %q: macronutrients must not be negative", i, m.Name)
		}
	}

	// 2. activities need an id unique across categories and a positive MET
	seen := make(map[string]string)
	for _, cat := range c.Exercises.Categories() {
		if cat == "" {
			return fmt.Errorf("exercise category name must not be empty")
		}
		for i, a := range c.Exercises[cat] {
			if a.ID == "" {
				return fmt.Errorf("exercises.%s[%d].id must not be empty", cat, i)
			}
			if a.MET <= 0 || math.IsNaN(a.MET) || math.IsInf(a.MET, 0) {
				return fmt.Errorf("exercises.%s[%d] %q: met must be > 0", cat, i, a.ID)
			}
			if other, dup := seen[a.ID]; dup {
				return fmt.Errorf("exercise id %q appears in both %s and %s", a.ID, other, cat)
			}
			seen[a.ID] = cat
		}
	}

	// 3. menu limits
	if c.Menu.MaxAttempts < 0 {
		return fmt.Errorf("menu.max_attempts must be >= 0 (got %d)", c.Menu.MaxAttempts)
	}

	return nil
}
