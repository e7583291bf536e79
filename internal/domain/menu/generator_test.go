package menu_test

import (
	"errors"
	"testing"

	"github.com/nutricalc/nutricalc/internal/domain"
	"github.com/nutricalc/nutricalc/internal/domain/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceSource replays a fixed index sequence, wrapping at the end.
type sequenceSource struct {
	seq   []int
	pos   int
	calls int
}

func (s *sequenceSource) IntN(n int) int {
	s.calls++
	v := s.seq[s.pos%len(s.seq)] % n
	s.pos++
	return v
}

func catalog() []domain.Meal {
	return []domain.Meal{
		{Name: "Chicken rice", Calories: 500, Protein: 30, Carbs: 60, Fat: 10},
		{Name: "Tuna salad", Calories: 300, Protein: 25, Carbs: 10, Fat: 15},
		{Name: "Beef stir-fry", Calories: 400, Protein: 35, Carbs: 20, Fat: 18},
		{Name: "Chicken soup", Calories: 250, Protein: 20, Carbs: 15, Fat: 8},
	}
}

func sum(meals []domain.Meal) int {
	total := 0
	for _, m := range meals {
		total += m.Calories
	}
	return total
}

func TestGenerate_FollowsRandomPicks(t *testing.T) {
	rng := &sequenceSource{seq: []int{0, 0, 0, 1, 3}}
	g := menu.New(rng, 0)

	meals, err := g.Generate(1300, catalog())
	require.NoError(t, err)

	// 500, 500, then 500 > 300 rejected, then 300 fills the budget exactly.
	names := make([]string, 0, len(meals))
	for _, m := range meals {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Chicken rice", "Chicken rice", "Tuna salad"}, names)
	assert.Equal(t, 1300, sum(meals))
	assert.Equal(t, 4, rng.calls)
}

func TestGenerate_StopsBelowCheapest(t *testing.T) {
	rng := &sequenceSource{seq: []int{0}}
	g := menu.New(rng, 0)

	meals, err := g.Generate(700, catalog())
	require.NoError(t, err)
	assert.Len(t, meals, 1)
	assert.Equal(t, 500, sum(meals))
	assert.Equal(t, 1, rng.calls, "200 kcal left is below the cheapest meal")
}

func TestGenerate_NeverExceedsTarget(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		g := menu.New(menu.NewRandomSource(seed), 0)
		for _, target := range []float64{250, 333.3, 1200, 2102.214, 3500} {
			meals, err := g.Generate(target, catalog())
			require.NoError(t, err)
			require.NotEmpty(t, meals)
			assert.LessOrEqual(t, float64(sum(meals)), target, "seed %d target %v", seed, target)
		}
	}
}

func TestGenerate_SameSeedSameMenu(t *testing.T) {
	a, err := menu.New(menu.NewRandomSource(42), 0).Generate(2000, catalog())
	require.NoError(t, err)
	b, err := menu.New(menu.NewRandomSource(42), 0).Generate(2000, catalog())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_BoundedByMaxAttempts(t *testing.T) {
	// Always picks the 500 kcal meal, which never fits a 400 kcal budget.
	rng := &sequenceSource{seq: []int{0}}
	g := menu.New(rng, 25)

	meals, err := g.Generate(400, catalog())
	require.NoError(t, err)
	assert.Empty(t, meals)
	assert.Equal(t, 25, rng.calls)
}

func TestGenerate_Unsatisfiable(t *testing.T) {
	g := menu.New(&sequenceSource{seq: []int{0}}, 0)
	for _, target := range []float64{0, -150, 249.9} {
		_, err := g.Generate(target, catalog())
		var unsat *domain.MenuUnsatisfiableError
		require.True(t, errors.As(err, &unsat), "target %v: got %v", target, err)
		assert.Equal(t, 250, unsat.Cheapest)
	}
}

func TestGenerate_InvalidCatalog(t *testing.T) {
	g := menu.New(nil, 0)
	var invalid *domain.InvalidInputError

	_, err := g.Generate(1000, nil)
	assert.True(t, errors.As(err, &invalid))

	_, err = g.Generate(1000, []domain.Meal{{Name: "Air", Calories: 0}})
	assert.True(t, errors.As(err, &invalid))
}
