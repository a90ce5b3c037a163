package consumption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldmoreira/fuellog/internal/apperr"
	"github.com/ldmoreira/fuellog/internal/models"
)

func sampleFillUps() []models.FillUp {
	return []models.FillUp{
		{ID: "3000", Date: "2024-03-01", FuelType: "gasolina", AverageConsumption: 12.0},
		{ID: "1000", Date: "2024-01-01", FuelType: "gasolina", AverageConsumption: 10.0},
		{ID: "2000", Date: "2024-02-01", FuelType: "etanol", AverageConsumption: 8.125},
	}
}

func TestSeries_ChronologicalOrder(t *testing.T) {
	points := Series(sampleFillUps())

	require.Len(t, points, 3)
	assert.Equal(t, "2024-01-01", points[0].Date)
	assert.Equal(t, "2024-02-01", points[1].Date)
	assert.Equal(t, "2024-03-01", points[2].Date)
	assert.Equal(t, 8.13, points[1].AverageConsumption)
}

func TestSeries_DoesNotMutateInput(t *testing.T) {
	fillUps := sampleFillUps()
	Series(fillUps)
	assert.Equal(t, "3000", fillUps[0].ID)
}

func TestSeries_Empty(t *testing.T) {
	assert.Empty(t, Series(nil))
}

func TestAveragesByFuel(t *testing.T) {
	averages := AveragesByFuel(sampleFillUps())

	require.Len(t, averages, 2)
	assert.Equal(t, "etanol", averages[0].FuelType)
	assert.Equal(t, 8.13, averages[0].AverageConsumption)
	assert.Equal(t, 1, averages[0].Count)
	assert.Equal(t, "gasolina", averages[1].FuelType)
	assert.Equal(t, 11.0, averages[1].AverageConsumption)
	assert.Equal(t, 2, averages[1].Count)
}

func TestEstimateTripCost(t *testing.T) {
	// 300 km at 10 km/l is 30 liters; 30 * 6.00 + 20 = 200
	total, err := EstimateTripCost(300, 6.0, 10.0, 20.0)
	require.NoError(t, err)
	assert.Equal(t, 200.0, total)
}

func TestEstimateTripCost_Invalid(t *testing.T) {
	cases := []struct {
		name                                       string
		distance, price, avgConsumption, otherCost float64
	}{
		{"zero distance", 0, 6, 10, 0},
		{"zero price", 300, 0, 10, 0},
		{"zero consumption", 300, 6, 0, 0},
		{"negative other costs", 300, 6, 10, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EstimateTripCost(tc.distance, tc.price, tc.avgConsumption, tc.otherCost)
			assert.True(t, apperr.IsValidation(err))
		})
	}
}
