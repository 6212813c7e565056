package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nirvana-admin-backend/internal/domains/returns/model"
	"nirvana-admin-backend/internal/domains/returns/service"
	"nirvana-admin-backend/internal/shared/response"
	"nirvana-admin-backend/internal/upstream"
)

// =====================================================
// RETURN HANDLER
// =====================================================

type ReturnHandler struct {
	returnService service.ReturnService
}

// NewReturnHandler creates a new return handler
func NewReturnHandler(returnService service.ReturnService) *ReturnHandler {
	return &ReturnHandler{
		returnService: returnService,
	}
}

// RegisterRoutes registers all return routes
func (h *ReturnHandler) RegisterRoutes(router *gin.RouterGroup) {
	returns := router.Group("/returns")
	{
		returns.GET("", h.ListReturns)          // GET /api/returns?status=pending&search=...
		returns.GET("/:id", h.GetReturn)        // GET /api/returns/:id
		returns.PATCH("/:id", h.ProcessReturn)  // PATCH /api/returns/:id
	}
}

// =====================================================
// LIST RETURNS
// =====================================================

func (h *ReturnHandler) ListReturns(c *gin.Context) {
	var query model.ListReturnsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if err := query.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	requests, err := h.returnService.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"returns": requests}, &response.Meta{
		Total: len(requests),
	})
}

// =====================================================
// GET RETURN DETAIL
// =====================================================

func (h *ReturnHandler) GetReturn(c *gin.Context) {
	detail, err := h.returnService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// =====================================================
// PROCESS RETURN (APPROVE / REJECT)
// =====================================================

func (h *ReturnHandler) ProcessReturn(c *gin.Context) {
	var req model.DecideReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()

	var (
		updated *model.ReturnRequest
		err     error
	)
	switch req.Action {
	case model.ActionApprove:
		updated, err = h.returnService.Approve(ctx, id, req.Percentage(), req.RefundReason)
	case model.ActionReject:
		updated, err = h.returnService.Reject(ctx, id, req.RefundReason)
	default:
		// Unreachable after Validate, kept for safety.
		response.BadRequest(c, model.ErrInvalidAction.Error())
		return
	}

	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// =====================================================
// ERROR MAPPING
// =====================================================

// handleServiceError translates workflow and upstream errors into the API
// envelope. Validation failures never reached the network; upstream
// failures leave local state unchanged so every error here is retryable
// from the caller's point of view.
func (h *ReturnHandler) handleServiceError(c *gin.Context, err error) {
	var returnErr *model.ReturnError
	code := ""
	if errors.As(err, &returnErr) {
		code = returnErr.Code
	}

	switch {
	case errors.Is(err, model.ErrRequestNotFound):
		response.ErrorResponse(c, http.StatusNotFound, code, err.Error())
	case errors.Is(err, model.ErrInvalidPercentage):
		response.ErrorResponse(c, http.StatusUnprocessableEntity, code, err.Error())
	case errors.Is(err, model.ErrAlreadyProcessing),
		errors.Is(err, model.ErrInvalidTransition):
		response.ErrorResponse(c, http.StatusConflict, code, err.Error())
	case errors.Is(err, model.ErrMalformedResponse):
		response.ErrorResponse(c, http.StatusBadGateway, model.ErrCodeMalformedResponse, err.Error())
	default:
		h.handleUpstreamError(c, err)
	}
}

func (h *ReturnHandler) handleUpstreamError(c *gin.Context, err error) {
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
