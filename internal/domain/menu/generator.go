// Package menu builds randomized daily meal plans under a calorie budget.
package menu

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/nutricalc/nutricalc/internal/domain"
)

// RandomSource picks an index in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG source seeded from seed, or from the clock
// when seed is 0.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator greedily fills a calorie budget with randomly picked meals.
// It is safe for concurrent use.
type Generator struct {
	mu          sync.Mutex
	rng         RandomSource
	maxAttempts int
}

// New creates a Generator. maxAttempts <= 0 selects domain.DefaultMaxAttempts.
func New(rng RandomSource, maxAttempts int) *Generator {
	if rng == nil {
		rng = NewRandomSource(0)
	}
	if maxAttempts <= 0 {
		maxAttempts = domain.DefaultMaxAttempts
	}
	return &Generator{rng: rng, maxAttempts: maxAttempts}
}

// Generate picks meals uniformly at random, keeping each pick that fits the
// remaining budget, until the budget is spent. The loop also ends once the
// remainder is below the cheapest meal or maxAttempts picks were made, so it
// always terminates. The returned meals are in acceptance order and their
// calories never exceed target.
//
// A target that no meal fits yields a MenuUnsatisfiableError.
func (g *Generator) Generate(target float64, catalog []domain.Meal) ([]domain.Meal, error) {
	if len(catalog) == 0 {
		return nil, &domain.InvalidInputError{Field: "meal catalog", Reason: "must not be empty"}
	}
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return nil, &domain.InvalidInputError{Field: "target calories", Reason: "must be a finite number"}
	}

	cheapest := catalog[0].Calories
	for _, m := range catalog {
		if m.Calories <= 0 {
			return nil, &domain.InvalidInputError{Field: "meal catalog", Value: m.Name, Reason: "calories must be greater than zero"}
		}
		cheapest = min(cheapest, m.Calories)
	}
	if target <= 0 || target < float64(cheapest) {
		return nil, &domain.MenuUnsatisfiableError{Target: target, Cheapest: cheapest}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	var meals []domain.Meal
	remaining := target
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if remaining <= 0 || remaining < float64(cheapest) {
			break
		}
		m := catalog[g.rng.IntN(len(catalog))]
		if float64(m.Calories) <= remaining {
			meals = append(meals, m)
			remaining -= float64(m.Calories)
		}
	}
	return meals, nil
}
