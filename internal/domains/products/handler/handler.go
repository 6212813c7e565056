package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nirvana-admin-backend/internal/domains/products/model"
	"nirvana-admin-backend/internal/domains/products/service"
	"nirvana-admin-backend/internal/shared/response"
	"nirvana-admin-backend/internal/upstream"
)

// =====================================================
// PRODUCT HANDLER
// =====================================================

type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)         // GET /api/products
		products.POST("", h.CreateProduct)       // POST /api/products
		products.GET("/:id", h.GetProduct)       // GET /api/products/:id
		products.PUT("/:id", h.UpdateProduct)    // PUT /api/products/:id
		products.DELETE("/:id", h.DeleteProduct) // DELETE /api/products/:id
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"products": products}, &response.Meta{
		Total: len(products),
	})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req model.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req model.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// =====================================================
// ERROR MAPPING
// =====================================================

func (h *ProductHandler) handleServiceError(c *gin.Context, err error) {
	var productErr *model.ProductError
	code := ""
	if errors.As(err, &productErr) {
		code = productErr.Code
	}

	switch {
	case errors.Is(err, model.ErrProductNotFound):
		response.ErrorResponse(c, http.StatusNotFound, code, err.Error())
	case errors.Is(err, upstream.ErrMalformedResponse):
		response.ErrorResponse(c, http.StatusBadGateway, model.ErrCodeUpstream, err.Error())
	default:
		h.handleUpstreamError(c, err)
	}
}

func (h *ProductHandler) handleUpstreamError(c *gin.Context, err error) {
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
