// Package registry owns the set of vehicles and the active-vehicle pointer.
package registry

import (
	"context"
	"strings"

	"github.com/ldmoreira/fuellog/internal/apperr"
	"github.com/ldmoreira/fuellog/internal/db"
	"github.com/ldmoreira/fuellog/internal/models"
)

// Registry resolves the current vehicle context: which vehicles exist,
// which one is active, and what its last known odometer reading is.
type Registry struct {
	store db.RecordStore
}

// New returns a Registry backed by store.
func New(store db.RecordStore) *Registry {
	return &Registry{store: store}
}

// AddVehicleInput carries the fields of a new vehicle. Name and
// InitialOdometer are required; the rest is optional free text.
type AddVehicleInput struct {
	Name            string  `json:"nome"`
	InitialOdometer float64 `json:"kmInicial"`
	Make            string  `json:"marca"`
	Model           string  `json:"modelo"`
	Year            *int    `json:"ano"`
	Plate           *string `json:"placa"`
	Color           *string `json:"cor"`
}

// ListVehicles returns all vehicles in insertion order.
func (r *Registry) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if _, err := r.store.Get(ctx, db.VehiclesKey, &vehicles); err != nil {
		return nil, err
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return vehicles, nil
}

// AddVehicle validates the input, appends the vehicle, persists the list
// and makes the vehicle active when no active vehicle is set yet.
func (r *Registry) AddVehicle(ctx context.Context, input AddVehicleInput) (*models.Vehicle, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperr.NewValidation("nome", "must not be empty")
	}
	if input.InitialOdometer <= 0 {
		return nil, apperr.NewValidation("kmInicial", "must be greater than zero")
	}

	vehicles, err := r.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	var lastID int64
	for _, v := range vehicles {
		if n := models.NumericID(v.ID); n > lastID {
			lastID = n
		}
	}

	vehicle := models.Vehicle{
		ID:              models.NewTimeID(lastID),
		Name:            input.Name,
		Make:            orDefault(input.Make),
		Model:           orDefault(input.Model),
		Year:            input.Year,
		InitialOdometer: input.InitialOdometer,
		Plate:           input.Plate,
		Color:           input.Color,
	}

	vehicles = append(vehicles, vehicle)
	if err := r.store.Set(ctx, db.VehiclesKey, vehicles); err != nil {
		return nil, err
	}

	activeID, err := r.ActiveVehicleID(ctx)
	if err != nil {
		return nil, err
	}
	if activeID == "" {
		if err := r.SetActiveVehicle(ctx, vehicle.ID); err != nil {
			return nil, err
		}
	}
	return &vehicle, nil
}

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// DeleteVehicle removes the vehicle, its fill-up history and, when it was
// active, reassigns the active pointer to the first remaining vehicle or
// clears it. Deleting an unknown id is a no-op.
//
// Write order matters for recoverability: the fill-up history and the
// active pointer are settled before the vehicle list itself is rewritten,
// so a failure partway leaves the vehicle listed and the delete can be
// re-attempted.
func (r *Registry) DeleteVehicle(ctx context.Context, id string) error {
	vehicles, err := r.ListVehicles(ctx)
	if err != nil {
		return err
	}

	remaining := make([]models.Vehicle, 0, len(vehicles))
	found := false
	for _, v := range vehicles {
		if v.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, v)
	}
	if !found {
		return nil
	}

	if err := r.store.Remove(ctx, db.FillUpsKey(id)); err != nil {
		return err
	}

	activeID, err := r.ActiveVehicleID(ctx)
	if err != nil {
		return err
	}
	if activeID == id {
		if len(remaining) > 0 {
			if err := r.store.Set(ctx, db.ActiveVehicleKey, remaining[0].ID); err != nil {
				return err
			}
		} else {
			if err := r.store.Remove(ctx, db.ActiveVehicleKey); err != nil {
				return err
			}
		}
	}

	return r.store.Set(ctx, db.VehiclesKey, remaining)
}

// SetActiveVehicle persists id as the active vehicle pointer.
func (r *Registry) SetActiveVehicle(ctx context.Context, id string) error {
	vehicle, err := r.findVehicle(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return apperr.NewNotFound("vehicle", id)
	}
	return r.store.Set(ctx, db.ActiveVehicleKey, id)
}

// ActiveVehicleID returns the persisted active vehicle id, or "" when
// unset.
func (r *Registry) ActiveVehicleID(ctx context.Context) (string, error) {
	var id string
	if _, err := r.store.Get(ctx, db.ActiveVehicleKey, &id); err != nil {
		return "", err
	}
	return id, nil
}

// ActiveVehicle resolves the active pointer to a full vehicle. An unset or
// dangling pointer resolves to nil, not an error: having no active vehicle
// is an expected steady state.
func (r *Registry) ActiveVehicle(ctx context.Context) (*models.Vehicle, error) {
	id, err := r.ActiveVehicleID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	return r.findVehicle(ctx, id)
}

// LastKnownOdometer returns the newest fill-up's odometer for the vehicle,
// or its initial odometer when no fill-up exists.
func (r *Registry) LastKnownOdometer(ctx context.Context, vehicleID string) (float64, error) {
	vehicle, err := r.findVehicle(ctx, vehicleID)
	if err != nil {
		return 0, err
	}
	if vehicle == nil {
		return 0, apperr.NewNotFound("vehicle", vehicleID)
	}

	var fillUps []models.FillUp
	if _, err := r.store.Get(ctx, db.FillUpsKey(vehicleID), &fillUps); err != nil {
		return 0, err
	}
	newest := -1
	var best int64
	for i, f := range fillUps {
		if n := models.NumericID(f.ID); newest == -1 || n > best {
			newest, best = i, n
		}
	}
	if newest >= 0 {
		return fillUps[newest].Odometer, nil
	}
	return vehicle.InitialOdometer, nil
}

// UpdateOdometerBaseline rewrites the vehicle's cached odometer baseline.
// The ledger calls this after every insert and after deletes that change
// the newest remaining reading.
func (r *Registry) UpdateOdometerBaseline(ctx context.Context, vehicleID string, odometer float64) error {
	vehicles, err := r.ListVehicles(ctx)
	if err != nil {
		return err
	}
	for i := range vehicles {
		if vehicles[i].ID == vehicleID {
			vehicles[i].InitialOdometer = odometer
			return r.store.Set(ctx, db.VehiclesKey, vehicles)
		}
	}
	return apperr.NewNotFound("vehicle", vehicleID)
}

func (r *Registry) findVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicles, err := r.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vehicles {
		if vehicles[i].ID == id {
			return &vehicles[i], nil
		}
	}
	return nil, nil
}
