package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextFillUpAdvancesOdometer(t *testing.T) {
	s := &vehicleState{VehicleID: "1", Odometer: 10000, FuelType: "gasolina"}

	previous := s.Odometer
	for i := 0; i < 10; i++ {
		fillUp := nextFillUp(s)
		assert.Greater(t, fillUp.Odometer, previous)
		assert.Equal(t, fillUp.Odometer, s.Odometer)
		assert.GreaterOrEqual(t, fillUp.Liters, 20.0)
		assert.LessOrEqual(t, fillUp.Liters, 50.0)
		require.NotNil(t, fillUp.AmountPaid)
		assert.Greater(t, *fillUp.AmountPaid, 0.0)
		assert.Equal(t, "gasolina", fillUp.FuelType)
		previous = fillUp.Odometer
	}
}

func TestFuelProfilesCoverSimulatedFuels(t *testing.T) {
	for _, fuel := range []string{"gasolina", "etanol", "diesel"} {
		profile, ok := fuelProfiles[fuel]
		require.True(t, ok, "missing profile for %s", fuel)
		assert.Greater(t, profile.kmPerLiter, 0.0)
		assert.Greater(t, profile.pricePerL, 0.0)
	}
}

func TestCreateVehicle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/vehicles", r.URL.Path)

		var payload Vehicle
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotEmpty(t, payload.Name)
		assert.Greater(t, payload.InitialOdometer, 0.0)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "1715000000000"})
	}))
	defer server.Close()

	id, odometer, err := createVehicle(server.URL, 1)
	require.NoError(t, err)
	assert.Equal(t, "1715000000000", id)
	assert.Greater(t, odometer, 0.0)
}

func TestCreateVehicleServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, _, err := createVehicle(server.URL, 1)
	assert.Error(t, err)
}

func TestAuthorizedPostSetsHeaders(t *testing.T) {
	authToken = "test-token"
	defer func() { authToken = "" }()

	var gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	body, err := json.Marshal(map[string]string{"k": "v"})
	require.NoError(t, err)
	resp, err := authorizedPost(server.URL, bytes.NewBuffer(body))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}
