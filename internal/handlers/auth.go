package handlers

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ldmoreira/fuellog/internal/apperr"
	"github.com/ldmoreira/fuellog/internal/auth"
	"github.com/ldmoreira/fuellog/internal/db"
	"github.com/ldmoreira/fuellog/internal/models"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *auth.Service
	users       *db.UserStore
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.Service, users *db.UserStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		users:       users,
	}
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq models.LoginRequest
	if err := decodeBody(r, &loginReq); err != nil {
		writeError(w, err)
		return
	}

	if loginReq.Username == "" || loginReq.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "username and password are required"})
		return
	}

	user, err := h.users.FindUserByUsername(r.Context(), loginReq.Username)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid credentials"})
		return
	}

	if !h.authService.CheckPassword(loginReq.Password, user.PasswordHash) {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid credentials"})
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.users.UpdateLastLogin(r.Context(), user.ID); err != nil {
		log.WithError(err).Error("Failed to update last login")
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{Token: token, User: *user})
}

// Register handles owner account registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq models.RegisterRequest
	if err := decodeBody(r, &registerReq); err != nil {
		writeError(w, err)
		return
	}

	if err := h.authService.ValidateUsername(registerReq.Username); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	if err := h.authService.ValidatePassword(registerReq.Password); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	if _, err := h.users.FindUserByUsername(r.Context(), registerReq.Username); err == nil {
		writeJSON(w, http.StatusConflict, errorBody{Error: "username already exists"})
		return
	} else if !apperr.IsNotFound(err) {
		writeError(w, err)
		return
	}

	passwordHash, err := h.authService.HashPassword(registerReq.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.users.InsertUser(r.Context(), models.User{
		Username:     registerReq.Username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		writeError(w, err)
		return
	}

	log.WithField("username", user.Username).Info("Account registered")
	writeJSON(w, http.StatusCreated, models.LoginResponse{Token: token, User: *user})
}
