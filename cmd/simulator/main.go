// Simulator registers demo vehicles and posts realistic fill-ups against
// the API on a ticker. Useful for demos and for exercising the stats
// endpoints with non-trivial history.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// Vehicle mirrors the API's vehicle creation payload.
type Vehicle struct {
	Name            string  `json:"nome"`
	Make            string  `json:"marca"`
	Model           string  `json:"modelo"`
	InitialOdometer float64 `json:"kmInicial"`
}

// FillUp mirrors the API's fill-up creation payload.
type FillUp struct {
	Date       string   `json:"data"`
	Odometer   float64  `json:"quilometragem"`
	Liters     float64  `json:"litros"`
	FuelType   string   `json:"combustivel"`
	AmountPaid *float64 `json:"valor"`
}

// fuelProfile drives how far a simulated vehicle travels per liter and what
// a liter costs, per fuel type.
type fuelProfile struct {
	kmPerLiter float64
	pricePerL  float64
}

var fuelProfiles = map[string]fuelProfile{
	"gasolina": {kmPerLiter: 11.5, pricePerL: 6.10},
	"etanol":   {kmPerLiter: 8.0, pricePerL: 4.20},
	"diesel":   {kmPerLiter: 13.5, pricePerL: 6.40},
}

var authToken string

func authorizedPost(url string, body *bytes.Buffer) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func createVehicle(apiURL string, index int) (string, float64, error) {
	makes := []string{"Volkswagen", "Fiat", "Chevrolet", "Toyota", "Honda"}
	modelsByMake := map[string][]string{
		"Volkswagen": {"Gol", "Polo", "T-Cross"},
		"Fiat":       {"Uno", "Argo", "Toro"},
		"Chevrolet":  {"Onix", "Tracker", "S10"},
		"Toyota":     {"Corolla", "Hilux", "Yaris"},
		"Honda":      {"Civic", "Fit", "HR-V"},
	}

	vmake := makes[rand.Intn(len(makes))]
	vmodel := modelsByMake[vmake][rand.Intn(len(modelsByMake[vmake]))]
	initialOdometer := 10000 + rand.Float64()*90000

	vehicle := Vehicle{
		Name:            fmt.Sprintf("%s %s #%d", vmake, vmodel, index),
		Make:            vmake,
		Model:           vmodel,
		InitialOdometer: initialOdometer,
	}

	data, err := json.Marshal(vehicle)
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal vehicle: %w", err)
	}

	resp, err := authorizedPost(apiURL+"/vehicles", bytes.NewBuffer(data))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create vehicle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", 0, fmt.Errorf("vehicle creation failed with status: %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", 0, fmt.Errorf("failed to decode response: %w", err)
	}

	vehicleID, ok := result["id"].(string)
	if !ok {
		return "", 0, fmt.Errorf("invalid vehicle ID in response")
	}

	log.WithFields(log.Fields{
		"vehicle_id": vehicleID,
		"make":       vmake,
		"model":      vmodel,
		"odometer":   initialOdometer,
	}).Info("Created vehicle")

	return vehicleID, initialOdometer, nil
}

// vehicleState tracks a simulated vehicle between fill-ups.
type vehicleState struct {
	VehicleID string
	Odometer  float64
	FuelType  string
}

func nextFillUp(s *vehicleState) FillUp {
	profile := fuelProfiles[s.FuelType]

	liters := 20 + rand.Float64()*30
	// consumption noise of +-15% around the fuel profile
	kmPerLiter := profile.kmPerLiter * (0.85 + rand.Float64()*0.3)
	distance := liters * kmPerLiter
	price := profile.pricePerL * (0.9 + rand.Float64()*0.2)

	s.Odometer += distance
	amount := liters * price

	return FillUp{
		Date:       time.Now().Format("2006-01-02"),
		Odometer:   s.Odometer,
		Liters:     liters,
		FuelType:   s.FuelType,
		AmountPaid: &amount,
	}
}

func sendFillUp(apiURL string, s *vehicleState) {
	fillUp := nextFillUp(s)
	data, err := json.Marshal(fillUp)
	if err != nil {
		log.WithError(err).Error("Failed to marshal fill-up")
		return
	}
	resp, err := authorizedPost(fmt.Sprintf("%s/vehicles/%s/fillups", apiURL, s.VehicleID), bytes.NewBuffer(data))
	if err != nil {
		log.WithError(err).Error("Failed to send fill-up")
		return
	}
	defer resp.Body.Close()
	log.WithFields(log.Fields{
		"vehicle_id": s.VehicleID,
		"odometer":   fillUp.Odometer,
		"status":     resp.Status,
	}).Info("Sent fill-up")
}

func simulateVehicle(apiURL string, s *vehicleState, interval time.Duration) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for range tick.C {
		sendFillUp(apiURL, s)
	}
}

func main() {
	// Optional JWT for protected API
	authToken = os.Getenv("SIM_AUTH_TOKEN")

	fleetSize := 3
	if val := os.Getenv("FLEET_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			fleetSize = n
		}
	}

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	interval := 5 * time.Second
	if v := os.Getenv("SIM_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			interval = time.Duration(n) * time.Second
		}
	}

	log.WithFields(log.Fields{
		"fleet_size": fleetSize,
		"api_url":    apiURL,
		"interval":   interval,
	}).Info("Starting fill-up simulation")

	fuels := []string{"gasolina", "etanol", "diesel"}
	states := make([]*vehicleState, 0, fleetSize)
	for i := 0; i < fleetSize; i++ {
		vehicleID, odometer, err := createVehicle(apiURL, i+1)
		if err != nil {
			log.WithError(err).Error("Failed to create vehicle")
			continue
		}
		states = append(states, &vehicleState{
			VehicleID: vehicleID,
			Odometer:  odometer,
			FuelType:  fuels[rand.Intn(len(fuels))],
		})
	}

	log.WithField("created_vehicles", len(states)).Info("Vehicle creation completed")
	if len(states) == 0 {
		log.Error("No vehicles created. Ensure SIM_AUTH_TOKEN is valid and API is reachable. Exiting.")
		time.Sleep(2 * time.Second)
		return
	}

	for _, s := range states {
		go simulateVehicle(apiURL, s, interval)
	}

	log.Info("Fill-up simulation started")
	select {} // Block forever
}
