package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"api_vendas/internal/products"
)

// productsHandler implements the product CRUD endpoints.
type productsHandler struct {
	productsService *products.Service
	logger          *zap.Logger
}

// NewProductsHandler creates a new products handler.
func NewProductsHandler(productsService *products.Service, logger *zap.Logger) *productsHandler {
	return &productsHandler{
		productsService: productsService,
		logger:          logger,
	}
}

type productRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	// Pointer so a missing stock is distinguishable from zero.
	Stock *int `json:"stock"`
}

func (h *productsHandler) handleCreate(ctx *gin.Context) {
	var req productRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if req.Stock == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": products.ErrMissingFields.Error()})
		return
	}

	p, err := h.productsService.Create(ctx.Request.Context(), req.Name, req.Price, *req.Stock)
	if err != nil {
		h.writeError(ctx, err, "failed to create product")
		return
	}
	ctx.JSON(http.StatusCreated, p)
}

func (h *productsHandler) handleList(ctx *gin.Context) {
	list, err := h.productsService.List(ctx.Request.Context())
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	ctx.JSON(http.StatusOK, list)
}

func (h *productsHandler) handleGet(ctx *gin.Context) {
	p, err := h.productsService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		h.writeError(ctx, err, "failed to get product")
		return
	}
	ctx.JSON(http.StatusOK, p)
}

func (h *productsHandler) handleUpdate(ctx *gin.Context) {
	var req productRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if req.Stock == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": products.ErrMissingFields.Error()})
		return
	}

	p, err := h.productsService.Update(ctx.Request.Context(), ctx.Param("id"), req.Name, req.Price, *req.Stock)
	if err != nil {
		h.writeError(ctx, err, "failed to update product")
		return
	}
	ctx.JSON(http.StatusOK, p)
}

func (h *productsHandler) handleDelete(ctx *gin.Context) {
	if err := h.productsService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		h.writeError(ctx, err, "failed to delete product")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *productsHandler) writeError(ctx *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, products.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, products.ErrMissingFields), errors.Is(err, products.ErrInvalidPrice):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error(msg, zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
