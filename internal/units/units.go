// Package units is the pure conversion table between metric base units
// and display units. No rounding happens here except through Round2,
// which callers apply only at display and report boundaries.
package units

import (
	"math"

	"geoquote/internal/domain/entities"
)

const (
	// SqFeetPerSqMeter converts square meters to square feet.
	SqFeetPerSqMeter = 10.76391041671
	// FeetPerMeter converts meters to feet.
	FeetPerMeter = 3.2808398950131
	// FeetPerMile is the survey-standard mile.
	FeetPerMile = 5280.0
	// MilesPerKilometer converts kilometers to miles.
	MilesPerKilometer = 0.621371
)

// AreaToDisplay converts an area in square meters to the display unit of
// the given system (square feet for imperial, square meters for metric).
func AreaToDisplay(valueSqMeters float64, system entities.UnitSystem) float64 {
	if system == entities.UnitSystemImperial {
		return valueSqMeters * SqFeetPerSqMeter
	}
	return valueSqMeters
}

// AreaFromDisplay is the inverse of AreaToDisplay.
func AreaFromDisplay(value float64, system entities.UnitSystem) float64 {
	if system == entities.UnitSystemImperial {
		return value / SqFeetPerSqMeter
	}
	return value
}

// LengthToDisplay converts a length in meters to the display unit of the
// given system (feet for imperial, meters for metric).
func LengthToDisplay(valueMeters float64, system entities.UnitSystem) float64 {
	if system == entities.UnitSystemImperial {
		return valueMeters * FeetPerMeter
	}
	return valueMeters
}

// LengthFromDisplay is the inverse of LengthToDisplay.
func LengthFromDisplay(value float64, system entities.UnitSystem) float64 {
	if system == entities.UnitSystemImperial {
		return value / FeetPerMeter
	}
	return value
}

// RadiusToMiles converts a circle-tool radius entered in the active unit
// system (feet or meters) to miles.
func RadiusToMiles(radius float64, system entities.UnitSystem) float64 {
	if system == entities.UnitSystemImperial {
		return radius / FeetPerMile
	}
	return radius / 1000 * MilesPerKilometer
}

// QuantityForLabel converts a metric base measurement to the billing unit
// named by a service template's unit label. Unknown labels fall through to
// the metric base value.
func QuantityForLabel(metricValue float64, unitLabel string) float64 {
	switch unitLabel {
	case "sqft":
		return metricValue * SqFeetPerSqMeter
	case "ft":
		return metricValue * FeetPerMeter
	case "mi":
		return metricValue * FeetPerMeter / FeetPerMile
	default: // sqm, m, unit
		return metricValue
	}
}

// Round2 rounds to 2 decimal places for display and report output.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
