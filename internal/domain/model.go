package domain

import "time"

// Gender selects the gender-specific variant of the BMR and body-fat formulas.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool { return g == GenderMale || g == GenderFemale }

// Goal is the user's stated weight goal.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

func (g Goal) Valid() bool {
	return g == GoalLose || g == GoalMaintain || g == GoalGain
}

// Delta is the fixed daily calorie adjustment for the goal: roughly 1 lb per
// week of change. It is a heuristic, not a personalized clinical value.
func (g Goal) Delta() float64 {
	switch g {
	case GoalLose:
		return -500
	case GoalGain:
		return 500
	default:
		return 0
	}
}

// Intensity scales an exercise's MET value.
type Intensity string

const (
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

var intensityMultipliers = map[Intensity]float64{
	IntensityLight:  0.8,
	IntensityMedium: 1.0,
	IntensityHigh:   1.2,
}

func (i Intensity) Valid() bool {
	_, ok := intensityMultipliers[i]
	return ok
}

// Multiplier returns the MET scaling factor, or 0 for an unknown intensity.
func (i Intensity) Multiplier() float64 { return intensityMultipliers[i] }

// ActivityLevel is the everyday activity factor applied to BMR.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ActivityLevels lists the levels from least to most active.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

func (a ActivityLevel) Valid() bool {
	_, ok := activityMultipliers[a]
	return ok
}

// Multiplier returns the TDEE factor, or 0 for an unknown level.
func (a ActivityLevel) Multiplier() float64 { return activityMultipliers[a] }

// PersonalInfo holds one person's measurements for a single calculation.
// A zero numeric field means the value was not supplied.
type PersonalInfo struct {
	Gender        Gender        `json:"gender"`
	Age           float64       `json:"age"`
	Weight        float64       `json:"weight_kg"`
	Height        float64       `json:"height_cm"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
	Waist         float64       `json:"waist_cm,omitempty"`
	Hip           float64       `json:"hip_cm,omitempty"`
	Neck          float64       `json:"neck_cm,omitempty"`
}

// ExerciseEntry is one logged exercise. Type references an activity id in
// the exercise catalog.
type ExerciseEntry struct {
	Type      string    `json:"type"`
	Intensity Intensity `json:"intensity"`
	Duration  float64   `json:"duration_min"`
	Frequency float64   `json:"frequency"`
}

// Meal is a catalog dish with its energy and macronutrients (grams).
type Meal struct {
	Name     string  `yaml:"name"     json:"name"`
	Calories int     `yaml:"calories" json:"calories"`
	Protein  float64 `yaml:"protein"  json:"protein"`
	Carbs    float64 `yaml:"carbs"    json:"carbs"`
	Fat      float64 `yaml:"fat"      json:"fat"`
}

// Warnings flags results the user should reconsider.
type Warnings struct {
	LowCalorie bool `json:"low_calorie"`
	HighWHR    bool `json:"high_whr"`
}

// CalculationResult is the derived metric set of one calculation pass.
type CalculationResult struct {
	BMR              int           `json:"bmr"`
	TDEE             int           `json:"tdee"`
	TargetCalories   int           `json:"target_calories"`
	ExerciseCalories int           `json:"exercise_calories"`
	BMI              string        `json:"bmi"`
	BMICategory      string        `json:"bmi_category"`
	BodyFat          *string       `json:"body_fat,omitempty"`
	WHR              *string       `json:"whr,omitempty"`
	Warnings         Warnings      `json:"warnings"`
	Exercises        []EntryEnergy `json:"exercises,omitempty"`
}

// EntryEnergy is the energy one exercise entry contributed. Found is false
// when the entry's type is not in the catalog.
type EntryEnergy struct {
	Entry    ExerciseEntry `json:"entry"`
	Found    bool          `json:"found"`
	Calories float64       `json:"calories"`
}

// MenuTotals sums energy and macronutrients over a menu.
type MenuTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyMenu is a generated meal plan in acceptance order.
type DailyMenu struct {
	Meals  []Meal     `json:"meals"`
	Totals MenuTotals `json:"totals"`
}

// NewDailyMenu wraps meals and computes their totals.
func NewDailyMenu(meals []Meal) DailyMenu {
	m := DailyMenu{Meals: meals}
	for _, meal := range meals {
		m.Totals.Calories += meal.Calories
		m.Totals.Protein += meal.Protein
		m.Totals.Carbs += meal.Carbs
		m.Totals.Fat += meal.Fat
	}
	if m.Meals == nil {
		m.Meals = []Meal{}
	}
	return m
}

// Calculation pairs a result with the menu generated in the same pass.
type Calculation struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Result    CalculationResult `json:"result"`
	Menu      DailyMenu         `json:"menu"`
}
