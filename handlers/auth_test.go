package handlers

import (
	"net/http"
	"testing"

	"inventory-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@shop.com", models.RoleAdmin)

	w := env.request(t, "POST", "/login", "", gin.H{"email": "admin@shop.com", "password": "secret123"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), `"admin@shop.com"`)
	// The hash must never leave the store.
	assert.NotContains(t, w.Body.String(), `"password"`)
}

func TestLoginFailureIsUniform(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@shop.com", models.RoleAdmin)

	wrongPassword := env.request(t, "POST", "/login", "", gin.H{"email": "admin@shop.com", "password": "nope"})
	unknownEmail := env.request(t, "POST", "/login", "", gin.H{"email": "ghost@shop.com", "password": "nope"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "POST", "/login", "", gin.H{"email": "admin@shop.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "GET", "/api/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, "GET", "/api/products", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
