// Package energy turns BMR and logged exercise into daily energy figures.
package energy

import "github.com/nutricalc/nutricalc/internal/domain"

// Breakdown is the exercise energy of a set of entries.
type Breakdown struct {
	Total   float64
	Entries []domain.EntryEnergy
}

// ExerciseEnergy sums the extra kcal burned by the logged entries:
// MET × intensity × weight × hours × frequency. Entries whose type is not in
// the catalog contribute zero and are marked not found.
func ExerciseEnergy(entries []domain.ExerciseEntry, weightKG float64, catalog domain.ExerciseCatalog) Breakdown {
	idx := catalog.Index()
	b := Breakdown{Entries: make([]domain.EntryEnergy, 0, len(entries))}
	for _, e := range entries {
		activity, found := idx[e.Type]
		if !found {
			b.Entries = append(b.Entries, domain.EntryEnergy{Entry: e})
			continue
		}
		kcal := activity.MET * e.Intensity.Multiplier() * weightKG * (e.Duration / 60) * e.Frequency
		b.Entries = append(b.Entries, domain.EntryEnergy{Entry: e, Found: true, Calories: kcal})
		b.Total += kcal
	}
	return b
}

// TDEE is BMR scaled by the activity level plus exercise energy.
func TDEE(bmr float64, level domain.ActivityLevel, exerciseKcal float64) float64 {
	return bmr*level.Multiplier() + exerciseKcal
}

// TargetCalories applies the goal's fixed adjustment to TDEE.
func TargetCalories(tdee float64, goal domain.Goal) float64 {
	return tdee + goal.Delta()
}
