package consumption

import (
	"sort"

	"github.com/ldmoreira/fuellog/internal/apperr"
	"github.com/ldmoreira/fuellog/internal/models"
)

// SeriesPoint is one chronological sample for the consumption line chart.
type SeriesPoint struct {
	Date               string  `json:"data"`
	AverageConsumption float64 `json:"consumoMedio"`
}

// Series returns fill-ups as a chronological consumption series, oldest
// first, with values rounded for display.
func Series(fillUps []models.FillUp) []SeriesPoint {
	ordered := make([]models.FillUp, len(fillUps))
	copy(ordered, fillUps)
	sort.Slice(ordered, func(i, j int) bool {
		return models.NumericID(ordered[i].ID) < models.NumericID(ordered[j].ID)
	})

	points := make([]SeriesPoint, 0, len(ordered))
	for _, f := range ordered {
		points = append(points, SeriesPoint{
			Date:               f.Date,
			AverageConsumption: Round2(f.AverageConsumption),
		})
	}
	return points
}

// FuelAverage is the mean consumption observed for one fuel type.
type FuelAverage struct {
	FuelType           string  `json:"combustivel"`
	AverageConsumption float64 `json:"consumoMedio"`
	Count              int     `json:"registros"`
}

// AveragesByFuel aggregates mean consumption per fuel type, ordered by fuel
// type name for stable output.
func AveragesByFuel(fillUps []models.FillUp) []FuelAverage {
	type acc struct {
		total float64
		count int
	}
	byFuel := make(map[string]*acc)
	for _, f := range fillUps {
		a, ok := byFuel[f.FuelType]
		if !ok {
			a = &acc{}
			byFuel[f.FuelType] = a
		}
		a.total += f.AverageConsumption
		a.count++
	}

	fuels := make([]string, 0, len(byFuel))
	for fuel := range byFuel {
		fuels = append(fuels, fuel)
	}
	sort.Strings(fuels)

	averages := make([]FuelAverage, 0, len(fuels))
	for _, fuel := range fuels {
		a := byFuel[fuel]
		averages = append(averages, FuelAverage{
			FuelType:           fuel,
			AverageConsumption: Round2(a.total / float64(a.count)),
			Count:              a.count,
		})
	}
	return averages
}

// EstimateTripCost projects the fuel cost of a planned trip from its
// distance, the fuel price per liter, the vehicle's average consumption
// (distance per liter) and any fixed extra costs.
func EstimateTripCost(distance, fuelPrice, avgConsumption, otherCosts float64) (float64, error) {
	if distance <= 0 {
		return 0, apperr.NewValidation("distancia", "must be greater than zero")
	}
	if fuelPrice <= 0 {
		return 0, apperr.NewValidation("precoCombustivel", "must be greater than zero")
	}
	if avgConsumption <= 0 {
		return 0, apperr.NewValidation("consumoMedio", "must be greater than zero")
	}
	if otherCosts < 0 {
		return 0, apperr.NewValidation("outrosCustos", "must not be negative")
	}
	liters := distance / avgConsumption
	return Round2(liters*fuelPrice + otherCosts), nil
}
