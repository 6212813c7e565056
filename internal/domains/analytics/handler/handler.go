package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nirvana-admin-backend/internal/domains/analytics/service"
	"nirvana-admin-backend/internal/shared/response"
	"nirvana-admin-backend/internal/upstream"
)

// =====================================================
// ANALYTICS HANDLER
// =====================================================

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// RegisterRoutes registers all analytics routes
func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	analytics := router.Group("/analytics")
	{
		analytics.GET("/dashboard", h.Dashboard) // GET /api/analytics/dashboard
	}
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	report, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		h.handleUpstreamError(c, err)
		return
	}

	response.Success(c, http.StatusOK, report)
}

// =====================================================
// ERROR MAPPING
// =====================================================

func (h *AnalyticsHandler) handleUpstreamError(c *gin.Context, err error) {
	var netErr *upstream.NetworkError
	if errors.As(err, &netErr) {
		response.ErrorResponse(c, http.StatusBadGateway, "ANALYTICS_001", "Commerce API unreachable, please retry")
		return
	}

	var srvErr *upstream.ServerError
	if errors.As(err, &srvErr) {
		status := srvErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		response.ErrorResponse(c, status, "ANALYTICS_001", srvErr.Message)
		return
	}

	if errors.Is(err, upstream.ErrMalformedResponse) {
		response.ErrorResponse(c, http.StatusBadGateway, "ANALYTICS_001", err.Error())
		return
	}

	response.InternalServerError(c, "Unexpected error")
}
