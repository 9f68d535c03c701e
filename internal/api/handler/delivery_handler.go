package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

// DeliveryHandler handles HTTP requests for delivery estimates and the
// vehicle catalogue.
type DeliveryHandler struct {
	service ports.DeliveryService
	stats   ports.QuoteStatsService
}

func NewDeliveryHandler(service ports.DeliveryService, stats ports.QuoteStatsService) *DeliveryHandler {
	return &DeliveryHandler{service: service, stats: stats}
}

// Estimate handles POST /v1/delivery/estimate.
//
// @Summary      Estimate delivery cost for a cart
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Param        body  body      estimateRequest  true  "Cart items, distance, optional vehicle"
// @Success      200   {object}  estimateResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/delivery/estimate [post]
func (h *DeliveryHandler) Estimate(c echo.Context) error {
	var req estimateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Estimate(c.Request().Context(), toEstimateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEstimateResponse(result))
}

// MultiSellerEstimate handles POST /v1/delivery/estimate/multi.
//
// @Summary      Estimate delivery for a cart spanning multiple sellers
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Param        body  body      multiSellerEstimateRequest  true  "Per-seller item groups"
// @Success      200   {object}  multiSellerEstimateResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/delivery/estimate/multi [post]
func (h *DeliveryHandler) MultiSellerEstimate(c echo.Context) error {
	var req multiSellerEstimateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.MultiSellerEstimate(c.Request().Context(), toMultiSellerInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMultiSellerResponse(result))
}

// Vehicles handles GET /v1/delivery/vehicles.
//
// @Summary      List the delivery fleet
// @Tags         delivery
// @Produce      json
// @Success      200  {object}  vehiclesResponse
// @Router       /v1/delivery/vehicles [get]
func (h *DeliveryHandler) Vehicles(c echo.Context) error {
	return c.JSON(http.StatusOK, toVehiclesResponse(h.service.Vehicles()))
}

// QuoteStats handles GET /v1/delivery/stats.
//
// @Summary      Aggregated quote statistics per vehicle
// @Tags         delivery
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  errorResponse
// @Router       /v1/delivery/stats [get]
func (h *DeliveryHandler) QuoteStats(c echo.Context) error {
	stats, err := h.stats.QuoteStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"vehicles": stats})
}
