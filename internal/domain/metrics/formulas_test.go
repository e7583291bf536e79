package metrics_test

import (
	"errors"
	"math"
	"testing"

	"github.com/nutricalc/nutricalc/internal/domain"
	"github.com/nutricalc/nutricalc/internal/domain/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMR(t *testing.T) {
	male, err := metrics.BMR(domain.GenderMale, 70, 175, 30)
	require.NoError(t, err)
	assert.InDelta(t, 1701.845, male, 1e-9)
	assert.Equal(t, 1702, metrics.Round(male))

	female, err := metrics.BMR(domain.GenderFemale, 60, 165, 30)
	require.NoError(t, err)
	assert.InDelta(t, 1393.85, female, 1e-9)
}

func TestBMR_RejectsNonPositive(t *testing.T) {
	tests := []struct {
		name                string
		weight, height, age float64
		field               string
	}{
		{"zero weight", 0, 175, 30, "weight"},
		{"negative height", 70, -1, 30, "height"},
		{"NaN age", 70, 175, math.NaN(), "age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := metrics.BMR(domain.GenderMale, tt.weight, tt.height, tt.age)
			var invalid *domain.InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestBMR_UnknownGender(t *testing.T) {
	_, err := metrics.BMR("robot", 70, 175, 30)
	var invalid *domain.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "gender", invalid.Field)
}

func TestBMI(t *testing.T) {
	bmi, err := metrics.BMI(70, 175)
	require.NoError(t, err)
	assert.InDelta(t, 22.857, bmi, 1e-3)
	assert.Equal(t, "22.9", metrics.Fixed(bmi, 1))

	_, err = metrics.BMI(70, 0)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "underweight", metrics.BMICategory(18.4))
	assert.Equal(t, "normal", metrics.BMICategory(18.5))
	assert.Equal(t, "normal", metrics.BMICategory(22.99))
	assert.Equal(t, "overweight", metrics.BMICategory(23))
}

func TestBodyFat(t *testing.T) {
	male, ok, err := metrics.BodyFat(domain.GenderMale, 85, 38, 178)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 22.955, male, 1e-2)
	assert.Equal(t, "23.0", metrics.Fixed(male, 1))

	female, ok, err := metrics.BodyFat(domain.GenderFemale, 100, 32, 160)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 5.38, female, 1e-2)
}

func TestBodyFat_AbsentInputs(t *testing.T) {
	for _, in := range [][3]float64{{0, 38, 178}, {85, 0, 178}, {85, 38, 0}} {
		_, ok, err := metrics.BodyFat(domain.GenderMale, in[0], in[1], in[2])
		assert.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestBodyFat_WaistNotAboveNeck(t *testing.T) {
	for _, waist := range []float64{38, 30} {
		_, ok, err := metrics.BodyFat(domain.GenderMale, waist, 38, 178)
		assert.False(t, ok)
		var invalid *domain.InvalidInputError
		require.True(t, errors.As(err, &invalid), "waist %v", waist)
		assert.Equal(t, "waist", invalid.Field)
	}
}

func TestWHR(t *testing.T) {
	whr, ok := metrics.WHR(90, 100)
	require.True(t, ok)
	assert.Equal(t, "0.90", metrics.Fixed(whr, 2))
	assert.False(t, whr > metrics.HighWHRThreshold, "exactly 0.9 is not high")

	whr, ok = metrics.WHR(95, 100)
	require.True(t, ok)
	assert.True(t, whr > metrics.HighWHRThreshold)

	_, ok = metrics.WHR(90, 0)
	assert.False(t, ok)
	_, ok = metrics.WHR(0, 100)
	assert.False(t, ok)
}

func TestRoundAndFixed(t *testing.T) {
	assert.Equal(t, 3, metrics.Round(2.5))
	assert.Equal(t, -3, metrics.Round(-2.5))
	assert.Equal(t, 1393, metrics.Round(1393.49))
	assert.Equal(t, "5.4", metrics.Fixed(5.38, 1))
	assert.Equal(t, "1.00", metrics.Fixed(1, 2))
}
