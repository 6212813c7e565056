package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nirvana-admin-backend/internal/domains/orders/model"
	"nirvana-admin-backend/internal/domains/orders/service"
	"nirvana-admin-backend/internal/shared/response"
	"nirvana-admin-backend/internal/upstream"
)

// =====================================================
// ORDER HANDLER
// =====================================================

type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("", h.ListOrders)          // GET /api/orders?search=...
		orders.GET("/:id", h.GetOrder)        // GET /api/orders/:id
		orders.PUT("/:id", h.UpdateStatus)    // PUT /api/orders/:id
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var query model.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	orders, err := h.orderService.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"orders": orders}, &response.Meta{
		Total: len(orders),
	})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// =====================================================
// ERROR MAPPING
// =====================================================

func (h *OrderHandler) handleServiceError(c *gin.Context, err error) {
	var orderErr *model.OrderError
	code := ""
	if errors.As(err, &orderErr) {
		code = orderErr.Code
	}

	switch {
	case errors.Is(err, model.ErrOrderNotFound):
		response.ErrorResponse(c, http.StatusNotFound, code, err.Error())
	case errors.Is(err, model.ErrInvalidStatus):
		response.ErrorResponse(c, http.StatusUnprocessableEntity, code, err.Error())
	default:
		h.handleUpstreamError(c, err)
	}
}

func (h *OrderHandler) handleUpstreamError(c *gin.Context, err error) {
	var netErr *upstream.NetworkError
	if errors.As(err, &netErr) {
		response.ErrorResponse(c, http.StatusBadGateway, model.ErrCodeUpstream, "Commerce API unreachable, please retry")
		return
	}

	var srvErr *upstream.ServerError
	if errors.As(err, &srvErr) {
		status := srvErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		response.ErrorResponse(c, status, model.ErrCodeUpstream, srvErr.Message)
		return
	}

	response.InternalServerError(c, "Unexpected error")
}
