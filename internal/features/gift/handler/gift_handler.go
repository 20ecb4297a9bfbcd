package handler

import (
	"strings"

	"gift-lookup/internal/core/logger"
	"gift-lookup/internal/features/gift/domain"
	"gift-lookup/internal/features/gift/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GiftHandler handles HTTP requests for the gift message lookup.
type GiftHandler struct {
	// service is the LookupService instance.
	service *service.LookupService
}

// NewGiftHandler creates a new instance of GiftHandler.
func NewGiftHandler(s *service.LookupService) *GiftHandler {
	return &GiftHandler{
		service: s,
	}
}

// LookupResponse is the structured (format=json) response payload.
type LookupResponse struct {
	// Status is the outcome category.
	Status string `json:"status"`
	// Message is the gift message text; empty when not applicable.
	Message string `json:"message"`
}

// lookupParams carries the request fields across all accepted encodings.
type lookupParams struct {
	LastName string `json:"last_name" form:"last_name" query:"last_name"`
	Postcode string `json:"postcode" form:"postcode" query:"postcode"`
	Format   string `json:"format" form:"format" query:"format"`
}

// Lookup handles the gift message lookup request.
// Every resolved outcome, including failures, answers with HTTP 200 and the
// outcome encoded in the payload, so the storefront embed only ever deals
// with one response shape.
// @Summary Look up a gift message
// @Description Finds the most recent order matching the given last name and postcode and returns its gift message.
// @Tags gift
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Produce html
// @Param last_name query string true "Customer last name"
// @Param postcode query string true "Shipping postcode"
// @Param format query string false "Response format: json for a structured payload, anything else for an embeddable HTML fragment"
// @Success 200 {object} LookupResponse
// @Router /gift-lookup [get]
// @Router /gift-lookup [post]
func (h *GiftHandler) Lookup(c *fiber.Ctx) error {
	params := parseParams(c)

	result := h.service.Lookup(c.Context(), params.LastName, params.Postcode)

	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	switch result.Status {
	case domain.StatusUpstreamError:
		logger.Get().Warn("Lookup hit upstream failure",
			zap.Int("upstream_code", result.UpstreamCode),
			zap.String("ray_id", rayID),
		)
	case domain.StatusInternalError:
		logger.Get().Error("Lookup failed internally",
			zap.String("ray_id", rayID),
		)
	}

	c.Set(fiber.HeaderCacheControl, "no-store")

	if params.Format == "json" {
		return c.Status(fiber.StatusOK).JSON(LookupResponse{
			Status:  string(result.Status),
			Message: result.Message,
		})
	}

	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	return c.Status(fiber.StatusOK).SendString(renderFragment(result))
}

// parseParams decodes the lookup fields from the body (JSON or urlencoded
// form, selected by Content-Type) with query parameters as fallback, so GET
// and POST callers share one contract.
func parseParams(c *fiber.Ctx) lookupParams {
	var params lookupParams

	if c.Method() == fiber.MethodPost && len(c.Body()) > 0 {
		if err := c.BodyParser(&params); err != nil {
			logger.Get().Debug("Request body not parseable, falling back to query", zap.Error(err))
		}
	}

	if params.LastName == "" {
		params.LastName = c.Query("last_name")
	}
	if params.Postcode == "" {
		params.Postcode = c.Query("postcode")
	}
	if params.Format == "" {
		params.Format = c.Query("format")
	}

	params.Format = strings.ToLower(strings.TrimSpace(params.Format))

	return params
}
