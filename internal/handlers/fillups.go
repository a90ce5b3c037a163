package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ldmoreira/fuellog/internal/events"
	"github.com/ldmoreira/fuellog/internal/ledger"
)

// FillUpHandler serves the fill-up ledger endpoints.
type FillUpHandler struct {
	ledger    *ledger.Ledger
	publisher events.Publisher
}

// NewFillUpHandler creates a new fill-up handler.
func NewFillUpHandler(l *ledger.Ledger, publisher events.Publisher) *FillUpHandler {
	return &FillUpHandler{ledger: l, publisher: publisher}
}

// List returns a vehicle's fill-ups, newest first.
func (h *FillUpHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")
	fillUps, err := h.ledger.ListFillUps(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fillUps)
}

// Add records a fill-up against a vehicle.
func (h *FillUpHandler) Add(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")

	var input ledger.FillUpInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	fillUp, err := h.ledger.AddFillUp(r.Context(), vehicleID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	h.publisher.FillUpRecorded(vehicleID, *fillUp)
	log.WithFields(log.Fields{
		"vehicle_id": vehicleID,
		"fillup_id":  fillUp.ID,
		"odometer":   fillUp.Odometer,
		"liters":     fillUp.Liters,
	}).Info("Fill-up recorded")
	writeJSON(w, http.StatusCreated, fillUp)
}

// Delete removes one fill-up record.
func (h *FillUpHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")
	fillUpID := r.PathValue("fillUpID")

	if err := h.ledger.DeleteFillUp(r.Context(), vehicleID, fillUpID); err != nil {
		writeError(w, err)
		return
	}
	log.WithFields(log.Fields{"vehicle_id": vehicleID, "fillup_id": fillUpID}).Info("Fill-up deleted")
	w.WriteHeader(http.StatusNoContent)
}
