package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHealthChecker is a mock implementation of HealthChecker for testing.
type mockHealthChecker struct {
	returnError error
}

// HealthCheck implements HealthChecker.
func (m *mockHealthChecker) HealthCheck(ctx context.Context) error {
	return m.returnError
}

// TestHealthHandler_Check_OK verifies the healthy response.
func TestHealthHandler_Check_OK(t *testing.T) {
	h := NewHealthHandler(&mockHealthChecker{})

	app := fiber.New()
	app.Get("/healthz", h.Check)

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

// TestHealthHandler_Check_Degraded verifies upstream failures report 503.
func TestHealthHandler_Check_Degraded(t *testing.T) {
	h := NewHealthHandler(&mockHealthChecker{returnError: errors.New("unreachable")})

	app := fiber.New()
	app.Get("/healthz", h.Check)

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "degraded", body["status"])
}
