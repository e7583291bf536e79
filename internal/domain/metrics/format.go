package metrics

import (
	"math"
	"strconv"
)

// Round returns v rounded to the nearest integer kcal.
func Round(v float64) int { return int(math.Round(v)) }

// Fixed formats v with the given number of decimals.
func Fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
