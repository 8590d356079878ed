// Package planetmath derives presentation attributes for catalog
// entries from raw archive measurements.
package planetmath

import "math"

// ParsecInLightYears converts the archive's distance unit.
const ParsecInLightYears = 3.26156

// Gravity computes surface gravity in Earth units from mass and
// radius (both in Earth units), rounded to two decimals. Returns nil
// when either measurement is missing.
func Gravity(mass, radius *float64) *float64 {
	if mass == nil || radius == nil {
		return nil
	}
	g := round2(*mass / (*radius * *radius))
	return &g
}

// Vibe classifies a planet for the catalog from its equilibrium
// temperature (Kelvin) and radius (Earth radii).
func Vibe(tempKelvin, radius *float64) string {
	if tempKelvin == nil {
		return "Mysterious"
	}

	tempC := *tempKelvin - 273.15

	if radius != nil && *radius > 6 {
		if tempC > 1000 {
			return "Hot Jupiter"
		}
		return "Gas Giant"
	}

	switch {
	case tempC < -100:
		return "Ice World"
	case tempC >= -50 && tempC <= 50:
		return "Habitable Paradise"
	case tempC > 50 && tempC < 200:
		return "Sauna World"
	case tempC >= 200 && tempC < 1000:
		return "Molten Rock"
	case tempC >= 1000:
		return "Literal Hellscape"
	}

	return "Barren Wasteland"
}

// ParsecsToLightYears converts and rounds a catalog distance.
func ParsecsToLightYears(parsecs float64) float64 {
	return round2(parsecs * ParsecInLightYears)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
