package domain_test

import (
	"testing"

	"github.com/nutricalc/nutricalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseActivity_DisplayName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"running", "Running"},
		{"jumpRope", "Jump Rope"},
		{"weightLifting", "Weight Lifting"},
		{"bodyweightTraining", "Bodyweight Training"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ExerciseActivity{ID: tt.id}.DisplayName())
	}
}

func TestExerciseCatalog_Categories_Sorted(t *testing.T) {
	cats := domain.DefaultExerciseCatalog().Categories()
	assert.Equal(t, []string{"cardio", "flexibility", "sports", "strength"}, cats)
}

func TestExerciseCatalog_Index(t *testing.T) {
	idx := domain.DefaultExerciseCatalog().Index()

	running, ok := idx["running"]
	require.True(t, ok)
	assert.InDelta(t, 9.8, running.MET, 1e-9)

	_, ok = idx["yoga"]
	assert.True(t, ok, "activities from every category are indexed")

	_, ok = idx["teleporting"]
	assert.False(t, ok)
}

func TestDefaultCatalogs_AreValid(t *testing.T) {
	require.NoError(t, domain.DefaultConfig().Validate())
	assert.Len(t, domain.DefaultMeals(), 4)
}
