package handlers_test

import (
	"net/http"
	"testing"

	"hospital-gin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newEnv(t)

	payload := map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret1",
		"name":     "Alice",
	}
	w := do(r, http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/auth/register", "", payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RolePatient, resp.Role)

	// Registered patients can reach their portal with the issued token.
	w = do(r, http.MethodGet, "/patient/profile", resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, db := newEnv(t)
	seedUser(t, db, "alice@example.com", models.RolePatient, "secret1", true)

	w := do(r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	r, db := newEnv(t)
	seedUser(t, db, "gone@example.com", models.RolePatient, "secret1", false)

	w := do(r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "gone@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
