package models

// Vehicle represents a registered vehicle. JSON field names follow the
// pt-BR storage schema of the companion mobile app so persisted records
// stay interchangeable with it.
type Vehicle struct {
	ID              string  `json:"id"`
	Name            string  `json:"nome"`
	Make            string  `json:"marca"`
	Model           string  `json:"modelo"`
	Year            *int    `json:"ano"`
	InitialOdometer float64 `json:"kmInicial"`
	Plate           *string `json:"placa"`
	Color           *string `json:"cor"`
}
