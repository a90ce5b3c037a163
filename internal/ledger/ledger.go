// Package ledger owns the per-vehicle fill-up collections and the odometer
// monotonicity invariant.
package ledger

import (
	"context"
	"sort"
	"strings"

	"github.com/ldmoreira/fuellog/internal/apperr"
	"github.com/ldmoreira/fuellog/internal/consumption"
	"github.com/ldmoreira/fuellog/internal/db"
	"github.com/ldmoreira/fuellog/internal/models"
)

// Ledger records and lists fill-ups. Each vehicle's history lives under its
// own storage key, so reads and writes only ever touch one vehicle's data
// and the monotonicity check needs nothing but the newest record.
type Ledger struct {
	store    db.RecordStore
	registry Registry
}

// Registry is the slice of the vehicle registry the ledger depends on.
type Registry interface {
	LastKnownOdometer(ctx context.Context, vehicleID string) (float64, error)
	UpdateOdometerBaseline(ctx context.Context, vehicleID string, odometer float64) error
}

// New returns a Ledger backed by store and reg.
func New(store db.RecordStore, reg Registry) *Ledger {
	return &Ledger{store: store, registry: reg}
}

// FillUpInput carries the user-entered fields of a new fill-up. Derived
// metrics are always recomputed here, never accepted from the caller.
type FillUpInput struct {
	Date       string   `json:"data"`
	Odometer   float64  `json:"quilometragem"`
	Liters     float64  `json:"litros"`
	FuelType   string   `json:"combustivel"`
	AmountPaid *float64 `json:"valor"`
}

// ListFillUps returns the vehicle's fill-ups, newest first.
func (l *Ledger) ListFillUps(ctx context.Context, vehicleID string) ([]models.FillUp, error) {
	fillUps, err := l.load(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	sortByIDDesc(fillUps)
	return fillUps, nil
}

// AddFillUp validates the input against the vehicle's last known odometer,
// derives the consumption metrics, persists the record and advances the
// vehicle's odometer baseline. Nothing is written before validation passes.
func (l *Ledger) AddFillUp(ctx context.Context, vehicleID string, input FillUpInput) (*models.FillUp, error) {
	previousOdometer, err := l.registry.LastKnownOdometer(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if input.Odometer <= 0 {
		return nil, apperr.NewValidation("quilometragem", "must be greater than zero")
	}
	if input.Liters <= 0 {
		return nil, apperr.NewValidation("litros", "must be greater than zero")
	}
	if strings.TrimSpace(input.Date) == "" {
		return nil, apperr.NewValidation("data", "must not be empty")
	}
	if strings.TrimSpace(input.FuelType) == "" {
		return nil, apperr.NewValidation("combustivel", "must not be empty")
	}
	if input.Odometer <= previousOdometer {
		return nil, apperr.NewValidation("quilometragem", "must be greater than the previous reading")
	}

	metrics := consumption.Compute(previousOdometer, input.Odometer, input.Liters, input.AmountPaid)

	fillUps, err := l.load(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	var lastID int64
	for _, f := range fillUps {
		if n := models.NumericID(f.ID); n > lastID {
			lastID = n
		}
	}

	fillUp := models.FillUp{
		ID:                 models.NewTimeID(lastID),
		Date:               input.Date,
		Odometer:           input.Odometer,
		Liters:             input.Liters,
		FuelType:           input.FuelType,
		AmountPaid:         input.AmountPaid,
		AverageConsumption: metrics.AverageConsumption,
		CostPerDistance:    metrics.CostPerDistance,
	}

	fillUps = append(fillUps, fillUp)
	sortByIDDesc(fillUps)
	if err := l.store.Set(ctx, db.FillUpsKey(vehicleID), fillUps); err != nil {
		return nil, err
	}
	if err := l.registry.UpdateOdometerBaseline(ctx, vehicleID, fillUp.Odometer); err != nil {
		return nil, err
	}
	return &fillUp, nil
}

// DeleteFillUp removes one record from the vehicle's history and persists
// the remainder. Deleting an unknown id is a no-op. The vehicle's odometer
// baseline is recomputed from the newest remaining fill-up; when the
// history becomes empty the baseline keeps its current value, since the
// reading it held before any fill-up existed was overwritten at insert
// time.
func (l *Ledger) DeleteFillUp(ctx context.Context, vehicleID, fillUpID string) error {
	fillUps, err := l.load(ctx, vehicleID)
	if err != nil {
		return err
	}

	remaining := make([]models.FillUp, 0, len(fillUps))
	found := false
	for _, f := range fillUps {
		if f.ID == fillUpID {
			found = true
			continue
		}
		remaining = append(remaining, f)
	}
	if !found {
		return nil
	}

	sortByIDDesc(remaining)
	if err := l.store.Set(ctx, db.FillUpsKey(vehicleID), remaining); err != nil {
		return err
	}
	if len(remaining) > 0 {
		return l.registry.UpdateOdometerBaseline(ctx, vehicleID, remaining[0].Odometer)
	}
	return nil
}

func (l *Ledger) load(ctx context.Context, vehicleID string) ([]models.FillUp, error) {
	var fillUps []models.FillUp
	if _, err := l.store.Get(ctx, db.FillUpsKey(vehicleID), &fillUps); err != nil {
		return nil, err
	}
	if fillUps == nil {
		fillUps = []models.FillUp{}
	}
	return fillUps, nil
}

func sortByIDDesc(fillUps []models.FillUp) {
	sort.Slice(fillUps, func(i, j int) bool {
		return models.NumericID(fillUps[i].ID) > models.NumericID(fillUps[j].ID)
	})
}
