package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldmoreira/fuellog/internal/auth"
	"github.com/ldmoreira/fuellog/internal/db"
	"github.com/ldmoreira/fuellog/internal/models"
)

func newAuthHandler() *AuthHandler {
	service := auth.NewService("test-secret", time.Hour)
	users := db.NewUserStore(db.NewMemoryRecordStore())
	return NewAuthHandler(service, users)
}

func registerOwner(t *testing.T, h *AuthHandler) models.LoginResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", postJSON(t, models.RegisterRequest{
		Username: "owner",
		Password: "password123",
	}))
	w := httptest.NewRecorder()
	h.Register(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	h := newAuthHandler()
	registered := registerOwner(t, h)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "owner", registered.User.Username)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", postJSON(t, models.LoginRequest{
		Username: "owner",
		Password: "password123",
	}))
	w := httptest.NewRecorder()
	h.Login(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	h := newAuthHandler()
	registerOwner(t, h)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", postJSON(t, models.RegisterRequest{
		Username: "owner",
		Password: "password123",
	}))
	w := httptest.NewRecorder()
	h.Register(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_RegisterWeakPassword(t *testing.T) {
	h := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", postJSON(t, models.RegisterRequest{
		Username: "owner",
		Password: "short",
	}))
	w := httptest.NewRecorder()
	h.Register(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	h := newAuthHandler()
	registerOwner(t, h)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", postJSON(t, models.LoginRequest{
		Username: "owner",
		Password: "wrong-password",
	}))
	w := httptest.NewRecorder()
	h.Login(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LoginUnknownUser(t *testing.T) {
	h := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", postJSON(t, models.LoginRequest{
		Username: "ghost",
		Password: "password123",
	}))
	w := httptest.NewRecorder()
	h.Login(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
