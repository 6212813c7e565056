package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nirvana-admin-backend/internal/domains/customers/model"
	"nirvana-admin-backend/internal/domains/customers/service"
	"nirvana-admin-backend/internal/shared/response"
	"nirvana-admin-backend/internal/upstream"
)

// =====================================================
// CUSTOMER HANDLER
// =====================================================

type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.GET("", h.ListCustomers) // GET /api/customers?search=...&limit=...
	}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var query model.ListCustomersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if err := query.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	page, err := h.customerService.List(c.Request.Context(), query)
	if err != nil {
		h.handleUpstreamError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"users": page.Users}, &response.Meta{
		Total: page.TotalUsers,
	})
}

// =====================================================
// ERROR MAPPING
// =====================================================

func (h *CustomerHandler) handleUpstreamError(c *gin.Context, err error) {
	var netErr *upstream.NetworkError
	if errors.As(err, &netErr) {
		response.ErrorResponse(c, http.StatusBadGateway, "CUSTOMER_001", "Commerce API unreachable, please retry")
		return
	}

	var srvErr *upstream.ServerError
	if errors.As(err, &srvErr) {
		status := srvErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		response.ErrorResponse(c, status, "CUSTOMER_001", srvErr.Message)
		return
	}

	response.InternalServerError(c, "Unexpected error")
}
