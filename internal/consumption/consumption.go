// Package consumption holds the pure metric computations: per-fill-up
// consumption and cost derivation, chart aggregations, and trip cost
// estimates. Nothing here touches storage.
package consumption

import "math"

// Metrics are the derived values of a single fill-up. AverageConsumption is
// kept at full precision; use Round2 for display. CostPerDistance is nil
// when no positive amount was paid.
type Metrics struct {
	AverageConsumption float64
	CostPerDistance    *float64
}

// Compute derives the metrics for a fill-up. The caller guarantees
// odometer > previousOdometer and liters > 0, so Compute never fails.
// amountPaid may be nil.
func Compute(previousOdometer, odometer, liters float64, amountPaid *float64) Metrics {
	distance := odometer - previousOdometer
	m := Metrics{AverageConsumption: distance / liters}
	if amountPaid != nil && *amountPaid > 0 && distance > 0 {
		cost := *amountPaid / distance
		m.CostPerDistance = &cost
	}
	return m
}

// Round2 rounds v to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
