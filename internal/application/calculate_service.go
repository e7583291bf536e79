package application

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nutricalc/nutricalc/internal/domain"
	"github.com/nutricalc/nutricalc/internal/domain/energy"
	"github.com/nutricalc/nutricalc/internal/domain/menu"
	"github.com/nutricalc/nutricalc/internal/domain/metrics"
)

// CalculateService orchestrates one calculation pass:
// validate → BMR → BMI → body fat → WHR → exercise energy → TDEE → target → warnings → menu.
type CalculateService struct {
	meals     []domain.Meal
	exercises domain.ExerciseCatalog
	generator *menu.Generator
	logger    *slog.Logger
	now       func() time.Time
}

// NewCalculateService builds a service over the catalogs in cfg. Unset
// config sections fall back to the built-in defaults. A nil logger discards.
func NewCalculateService(cfg domain.CalculatorConfig, rng menu.RandomSource, logger *slog.Logger) *CalculateService {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CalculateService{
		meals:     cfg.Meals,
		exercises: cfg.Exercises,
		generator: menu.New(rng, cfg.Menu.MaxAttempts),
		logger:    logger,
		now:       time.Now,
	}
}

// Meals returns the meal catalog the service draws from.
func (s *CalculateService) Meals() []domain.Meal { return s.meals }

// Exercises returns the exercise catalog the service looks activities up in.
func (s *CalculateService) Exercises() domain.ExerciseCatalog { return s.exercises }

// Calculate runs a full pass and returns the result together with the menu
// generated from its target. Any error aborts the pass.
func (s *CalculateService) Calculate(info domain.PersonalInfo, exercises []domain.ExerciseEntry) (*domain.Calculation, error) {
	// 1. Validation gate
	if err := info.Validate(); err != nil {
		return nil, err
	}
	for i, e := range exercises {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("exercise %d: %w", i+1, err)
		}
	}

	// 2. Body metrics
	bmr, err := metrics.BMR(info.Gender, info.Weight, info.Height, info.Age)
	if err != nil {
		return nil, err
	}
	bmi, err := metrics.BMI(info.Weight, info.Height)
	if err != nil {
		return nil, err
	}
	bodyFat, hasBodyFat, err := metrics.BodyFat(info.Gender, info.Waist, info.Neck, info.Height)
	if err != nil {
		return nil, err
	}
	whr, hasWHR := metrics.WHR(info.Waist, info.Hip)

	// 3. Energy
	exercise := energy.ExerciseEnergy(exercises, info.Weight, s.exercises)
	tdee := energy.TDEE(bmr, info.ActivityLevel, exercise.Total)
	target := energy.TargetCalories(tdee, info.Goal)

	result := domain.CalculationResult{
		BMR:              metrics.Round(bmr),
		TDEE:             metrics.Round(tdee),
		TargetCalories:   metrics.Round(target),
		ExerciseCalories: metrics.Round(exercise.Total),
		BMI:              metrics.Fixed(bmi, 1),
		BMICategory:      metrics.BMICategory(bmi),
		Exercises:        exercise.Entries,
		Warnings: domain.Warnings{
			LowCalorie: target < bmr,
			HighWHR:    hasWHR && whr > metrics.HighWHRThreshold,
		},
	}
	if hasBodyFat {
		v := metrics.Fixed(bodyFat, 1)
		result.BodyFat = &v
	}
	if hasWHR {
		v := metrics.Fixed(whr, 2)
		result.WHR = &v
	}

	// 4. Menu
	meals, err := s.generator.Generate(target, s.meals)
	if err != nil {
		return nil, fmt.Errorf("generating menu: %w", err)
	}

	calc := &domain.Calculation{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Result:    result,
		Menu:      domain.NewDailyMenu(meals),
	}

	s.logger.Debug("calculation complete",
		slog.String("id", calc.ID),
		slog.Int("bmr", result.BMR),
		slog.Int("tdee", result.TDEE),
		slog.Int("target", result.TargetCalories),
		slog.Int("meals", len(calc.Menu.Meals)),
		slog.Int("menu_kcal", calc.Menu.Totals.Calories),
	)
	for _, e := range exercise.Entries {
		if !e.Found {
			s.logger.Debug("unknown exercise type skipped", slog.String("type", e.Entry.Type))
		}
	}

	return calc, nil
}
