package handlers

import (
	"net/http"

	"github.com/ldmoreira/fuellog/internal/consumption"
	"github.com/ldmoreira/fuellog/internal/ledger"
)

// StatsHandler serves derived statistics: chart series and trip cost
// estimates.
type StatsHandler struct {
	ledger *ledger.Ledger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(l *ledger.Ledger) *StatsHandler {
	return &StatsHandler{ledger: l}
}

// VehicleStats returns the consumption series and per-fuel averages for a
// vehicle.
func (h *StatsHandler) VehicleStats(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")
	fillUps, err := h.ledger.ListFillUps(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}

	response := struct {
		Series         []consumption.SeriesPoint `json:"serie"`
		AveragesByFuel []consumption.FuelAverage `json:"mediasPorCombustivel"`
	}{
		Series:         consumption.Series(fillUps),
		AveragesByFuel: consumption.AveragesByFuel(fillUps),
	}
	writeJSON(w, http.StatusOK, response)
}

// TripEstimate projects the fuel cost of a planned trip.
func (h *StatsHandler) TripEstimate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Distance       float64 `json:"distancia"`
		FuelPrice      float64 `json:"precoCombustivel"`
		AvgConsumption float64 `json:"consumoMedio"`
		OtherCosts     float64 `json:"outrosCustos"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	total, err := consumption.EstimateTripCost(req.Distance, req.FuelPrice, req.AvgConsumption, req.OtherCosts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"custoTotal": total})
}
