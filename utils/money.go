package utils

import "math"

// Round2 rounds a monetary amount to 2 decimal places, half up at the cent.
// Amounts are rounded once when computed, never re-rounded across
// intermediate aggregation steps.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
