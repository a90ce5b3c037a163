package main

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ldmoreira/fuellog/internal/auth"
	"github.com/ldmoreira/fuellog/internal/config"
	"github.com/ldmoreira/fuellog/internal/db"
	"github.com/ldmoreira/fuellog/internal/events"
	"github.com/ldmoreira/fuellog/internal/handlers"
	"github.com/ldmoreira/fuellog/internal/ledger"
	"github.com/ldmoreira/fuellog/internal/middleware"
	"github.com/ldmoreira/fuellog/internal/registry"
)

func newRouter(reg *registry.Registry, l *ledger.Ledger, users *db.UserStore, authService *auth.Service, publisher events.Publisher) *http.ServeMux {
	vehicleHandler := handlers.NewVehicleHandler(reg)
	fillUpHandler := handlers.NewFillUpHandler(l, publisher)
	statsHandler := handlers.NewStatsHandler(l)
	authHandler := handlers.NewAuthHandler(authService, users)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	mux.HandleFunc("GET /api/vehicles", vehicleHandler.List)
	mux.HandleFunc("POST /api/vehicles", vehicleHandler.Add)
	mux.HandleFunc("DELETE /api/vehicles/{id}", vehicleHandler.Delete)
	mux.HandleFunc("GET /api/vehicles/active", vehicleHandler.GetActive)
	mux.HandleFunc("PUT /api/vehicles/active", vehicleHandler.SetActive)
	mux.HandleFunc("GET /api/vehicles/{id}/odometer", vehicleHandler.LastOdometer)

	mux.HandleFunc("GET /api/vehicles/{id}/fillups", fillUpHandler.List)
	mux.HandleFunc("POST /api/vehicles/{id}/fillups", fillUpHandler.Add)
	mux.HandleFunc("DELETE /api/vehicles/{id}/fillups/{fillUpID}", fillUpHandler.Delete)

	mux.HandleFunc("GET /api/vehicles/{id}/stats", statsHandler.VehicleStats)
	mux.HandleFunc("POST /api/stats/trip-estimate", statsHandler.TripEstimate)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

func main() {
	cfg := config.Load()

	var store db.RecordStore
	if cfg.MongoURI != "" {
		client, err := db.ConnectMongo(cfg.MongoURI)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to MongoDB")
		}
		defer client.Disconnect(context.Background())
		store = db.NewMongoRecordStore(client.Database(cfg.MongoDB))
		log.WithField("database", cfg.MongoDB).Info("Connected to MongoDB")
	} else {
		store = db.NewMemoryRecordStore()
		log.Warn("MONGO_URI not set, using in-memory store; data will not survive restarts")
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.MQTTBroker != "" {
		mqttPublisher, err := events.NewMQTTPublisher(cfg.MQTTBroker, cfg.MQTTClientID)
		if err != nil {
			log.WithError(err).Warn("MQTT broker unreachable, fill-up events disabled")
		} else {
			defer mqttPublisher.Close()
			publisher = mqttPublisher
			log.WithField("broker", cfg.MQTTBroker).Info("Connected to MQTT broker")
		}
	}

	reg := registry.New(store)
	l := ledger.New(store, reg)
	users := db.NewUserStore(store)
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	mux := newRouter(reg, l, users, authService, publisher)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()
	handler := rateLimiter.RateLimit(120, 60)(authMiddleware.Authenticate(mux))

	log.WithField("port", cfg.Port).Info("HTTP server listening")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.WithError(err).Fatal("HTTP server stopped")
	}
}
