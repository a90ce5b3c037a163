package db

// Storage keys. The pt-BR names are the storage schema of the companion
// mobile app; key construction is centralized here so no caller ever
// concatenates key strings itself.
const (
	// VehiclesKey holds the ordered list of vehicles.
	VehiclesKey = "veiculos"
	// ActiveVehicleKey holds the id of the currently active vehicle.
	ActiveVehicleKey = "veiculoAtivoId"
	// UsersKey holds the registered owner accounts.
	UsersKey = "usuarios"

	fillUpsPrefix = "abastecimentos_"
)

// FillUpsKey returns the storage key for a vehicle's fill-up history.
func FillUpsKey(vehicleID string) string {
	return fillUpsPrefix + vehicleID
}
