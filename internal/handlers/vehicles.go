package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ldmoreira/fuellog/internal/registry"
)

// VehicleHandler serves the vehicle registry endpoints.
type VehicleHandler struct {
	registry *registry.Registry
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(reg *registry.Registry) *VehicleHandler {
	return &VehicleHandler{registry: reg}
}

// List returns all vehicles in insertion order.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.registry.ListVehicles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// Add registers a new vehicle.
func (h *VehicleHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input registry.AddVehicleInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	vehicle, err := h.registry.AddVehicle(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	log.WithFields(log.Fields{"vehicle_id": vehicle.ID, "name": vehicle.Name}).Info("Vehicle added")
	writeJSON(w, http.StatusCreated, vehicle)
}

// Delete removes a vehicle and its fill-up history.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.registry.DeleteVehicle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	log.WithField("vehicle_id", id).Info("Vehicle deleted")
	w.WriteHeader(http.StatusNoContent)
}

// GetActive returns the active vehicle, or 204 when none is set.
func (h *VehicleHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.registry.ActiveVehicle(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicle == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// SetActive points the active-vehicle pointer at an existing vehicle.
func (h *VehicleHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.registry.SetActiveVehicle(r.Context(), req.ID); err != nil {
		writeError(w, err)
		return
	}
	log.WithField("vehicle_id", req.ID).Info("Active vehicle changed")
	w.WriteHeader(http.StatusNoContent)
}

// LastOdometer returns the vehicle's last known odometer reading.
func (h *VehicleHandler) LastOdometer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	odometer, err := h.registry.LastKnownOdometer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"kmAnterior": odometer})
}
