package domain

import (
	"sort"
	"strings"

	"github.com/fatih/camelcase"
)

// ExerciseActivity is a catalog activity with its MET value.
type ExerciseActivity struct {
	ID  string  `yaml:"id"  json:"id"`
	MET float64 `yaml:"met" json:"met"`
}

// DisplayName turns a camelCase id into title-cased words ("jumpRope" -> "Jump Rope").
func (a ExerciseActivity) DisplayName() string {
	words := camelcase.Split(a.ID)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ExerciseCatalog maps a category name to its activities.
type ExerciseCatalog map[string][]ExerciseActivity

// Categories returns the category names in sorted order.
func (c ExerciseCatalog) Categories() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Index flattens the catalog into an id lookup. Ids are unique across
// categories once the catalog has passed CalculatorConfig.Validate.
func (c ExerciseCatalog) Index() map[string]ExerciseActivity {
	idx := make(map[string]ExerciseActivity)
	for _, name := range c.Categories() {
		for _, a := range c[name] {
			if _, dup := idx[a.ID]; !dup {
				idx[a.ID] = a
			}
		}
	}
	return idx
}

// DefaultExerciseCatalog returns the built-in activities. MET values follow
// the Compendium of Physical Activities.
func DefaultExerciseCatalog() ExerciseCatalog {
	return ExerciseCatalog{
		"cardio": {
			{ID: "walking", MET: 3.5},
			{ID: "running", MET: 9.8},
			{ID: "cycling", MET: 7.5},
			{ID: "swimming", MET: 8.0},
			{ID: "jumpRope", MET: 12.3},
			{ID: "rowing", MET: 7.0},
		},
		"strength": {
			{ID: "weightLifting", MET: 5.0},
			{ID: "bodyweightTraining", MET: 3.8},
			{ID: "circuitTraining", MET: 8.0},
		},
		"flexibility": {
			{ID: "yoga", MET: 2.5},
			{ID: "pilates", MET: 3.0},
			{ID: "stretching", MET: 2.3},
		},
		"sports": {
			{ID: "football", MET: 7.0},
			{ID: "basketball", MET: 6.5},
			{ID: "badminton", MET: 5.5},
			{ID: "tennis", MET: 7.3},
		},
	}
}

// DefaultMeals returns the built-in sample meals.
func DefaultMeals() []Meal {
	return []Meal{
		{Name: "Chicken rice", Calories: 500, Protein: 30, Carbs: 50, Fat: 10},
		{Name: "Tuna salad", Calories: 300, Protein: 25, Carbs: 20, Fat: 12},
		{Name: "Beef and broccoli stir-fry", Calories: 400, Protein: 35, Carbs: 15, Fat: 18},
		{Name: "Chicken soup", Calories: 250, Protein: 20, Carbs: 30, Fat: 8},
	}
}
