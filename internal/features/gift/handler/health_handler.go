package handler

import (
	"context"

	"gift-lookup/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker verifies upstream connectivity.
type HealthChecker interface {
	// HealthCheck returns an error when the upstream store is unreachable
	// or the credentials are rejected.
	HealthCheck(ctx context.Context) error
}

// HealthHandler answers liveness probes including upstream reachability.
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{
		checker: checker,
	}
}

// Check handles GET /healthz.
// @Summary Service health
// @Description Reports whether the service and its upstream store connection are healthy.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.checker.HealthCheck(c.Context()); err != nil {
		logger.Get().Warn("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
