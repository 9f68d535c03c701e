package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

// OrderHandler handles HTTP requests for order placement and retrieval.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /v1/orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Buyer, per-seller item groups, delivery preferences"
// @Success      201   {object}  createOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.CreateOrder(c.Request().Context(), toCreateOrderInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCreateOrderResponse(result))
}

// Get handles GET /v1/orders/:reference.
//
// @Summary      Get an order by reference
// @Tags         orders
// @Produce      json
// @Param        reference  path      string  true  "Order reference (e.g. HC-7A8B9C2D)"
// @Success      200        {object}  getOrderResponse
// @Failure      404        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /v1/orders/{reference} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.GetOrder(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGetOrderResponse(order))
}

// List handles GET /v1/orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        buyer_id   query     string  false  "Filter by buyer"
// @Param        seller_id  query     string  false  "Filter by seller"
// @Param        date_from  query     string  false  "RFC3339 lower bound on created_at"
// @Param        date_to    query     string  false  "RFC3339 upper bound on created_at"
// @Param        page       query     int     false  "Page number (1-based)"
// @Param        limit      query     int     false  "Page size (max 100)"
// @Success      200        {object}  listOrdersResponse
// @Failure      400        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	input := ports.ListOrdersInput{
		BuyerID:  c.QueryParam("buyer_id"),
		SellerID: c.QueryParam("seller_id"),
	}

	if raw := c.QueryParam("date_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_from must be RFC3339")
		}
		input.DateFrom = t
	}
	if raw := c.QueryParam("date_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_to must be RFC3339")
		}
		input.DateTo = t
	}
	if raw := c.QueryParam("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "page must be an integer")
		}
		input.Page = n
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		input.Limit = n
	}

	result, err := h.service.ListOrders(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListOrdersResponse(result))
}
