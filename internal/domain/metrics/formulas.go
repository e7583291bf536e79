package metrics

import (
	"math"
	"strconv"

	"github.com/nutricalc/nutricalc/internal/domain"
)

// BMR returns the Basal Metabolic Rate in kcal/day using the revised
// Harris-Benedict equation.
func BMR(gender domain.Gender, weightKG, heightCM, ageYears float64) (float64, error) {
	if err := requirePositive("weight", weightKG); err != nil {
		return 0, err
	}
	if err := requirePositive("height", heightCM); err != nil {
		return 0, err
	}
	if err := requirePositive("age", ageYears); err != nil {
		return 0, err
	}

	switch gender {
	case domain.GenderMale:
		return 66.47 + 13.75*weightKG + 5.003*heightCM - 6.755*ageYears, nil
	case domain.GenderFemale:
		return 655.1 + 9.563*weightKG + 1.850*heightCM - 4.676*ageYears, nil
	default:
		return 0, &domain.InvalidInputError{Field: "gender", Value: string(gender), Reason: "must be male or female"}
	}
}

// BMI returns weight / height(m)^2.
func BMI(weightKG, heightCM float64) (float64, error) {
	if err := requirePositive("weight", weightKG); err != nil {
		return 0, err
	}
	if err := requirePositive("height", heightCM); err != nil {
		return 0, err
	}
	m := heightCM / 100
	return weightKG / (m * m), nil
}

// BMICategory classifies a BMI with the 18.5 / 23 cut-offs.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 23:
		return "normal"
	default:
		return "overweight"
	}
}

// BodyFat estimates body-fat percentage with the US Navy method. ok is false
// when waist, neck or height was not supplied (zero); that is not an error.
// waist <= neck puts log10 outside its domain and is an InvalidInputError.
func BodyFat(gender domain.Gender, waistCM, neckCM, heightCM float64) (pct float64, ok bool, err error) {
	if waistCM == 0 || neckCM == 0 || heightCM == 0 {
		return 0, false, nil
	}
	for _, f := range []struct {
		name  string
		value float64
	}{{"waist", waistCM}, {"neck", neckCM}, {"height", heightCM}} {
		if err := requirePositive(f.name, f.value); err != nil {
			return 0, false, err
		}
	}
	if waistCM-neckCM <= 0 {
		return 0, false, &domain.InvalidInputError{
			Field:  "waist",
			Value:  strconv.FormatFloat(waistCM, 'f', -1, 64),
			Reason: "must be greater than neck circumference",
		}
	}

	logWaistNeck := math.Log10(waistCM - neckCM)
	logHeight := math.Log10(heightCM)
	switch gender {
	case domain.GenderMale:
		return 86.010*logWaistNeck - 70.041*logHeight + 36.76, true, nil
	case domain.GenderFemale:
		return 163.205*logWaistNeck - 97.684*logHeight - 78.387, true, nil
	default:
		return 0, false, &domain.InvalidInputError{Field: "gender", Value: string(gender), Reason: "must be male or female"}
	}
}

// WHR returns the waist-hip ratio. ok is false when either measurement is
// missing or the ratio is not finite.
func WHR(waistCM, hipCM float64) (float64, bool) {
	if waistCM <= 0 || hipCM <= 0 {
		return 0, false
	}
	r := waistCM / hipCM
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

// HighWHRThreshold is the ratio above which cardiovascular risk is flagged.
const HighWHRThreshold = 0.9

func requirePositive(field string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return &domain.InvalidInputError{
			Field:  field,
			Value:  strconv.FormatFloat(v, 'g', -1, 64),
			Reason: "must be a positive finite number",
		}
	}
	return nil
}
