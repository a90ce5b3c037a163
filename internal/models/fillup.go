package models

import "strconv"

// FillUp represents one fuel fill-up, always scoped to a single vehicle.
// IDs are time-based millisecond strings, strictly increasing with creation
// order, and double as the sort key. Field names follow the companion app's
// storage schema.
type FillUp struct {
	ID                 string   `json:"id"`
	Date               string   `json:"data"`
	Odometer           float64  `json:"quilometragem"`
	Liters             float64  `json:"litros"`
	FuelType           string   `json:"combustivel"`
	AmountPaid         *float64 `json:"valor"`
	AverageConsumption float64  `json:"consumoMedio"`
	CostPerDistance    *float64 `json:"custoPorKm"`
}

// NumericID parses a record id for ordering. Unparseable ids sort first.
func NumericID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
