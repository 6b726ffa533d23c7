package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"api_vendas/internal/sales"
)

// salesHandler holds the ledger service and implements HTTP handlers for
// sales operations.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleCreate handles the POST /sales endpoint.
func (h *salesHandler) handleCreate(ctx *gin.Context) {
	var req struct {
		CustomerID string `json:"customer_id"`
		Produtos   []struct {
			ProdutoID     string          `json:"produto_id"`
			Quantidade    int             `json:"quantidade"`
			PrecoUnitario decimal.Decimal `json:"preco_unitario"`
		} `json:"produtos"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	lines := make([]sales.LineItem, 0, len(req.Produtos))
	for _, p := range req.Produtos {
		lines = append(lines, sales.LineItem{
			ProdutoID:     p.ProdutoID,
			Quantidade:    p.Quantidade,
			PrecoUnitario: p.PrecoUnitario,
		})
	}

	sale, err := h.salesService.CreateSale(ctx.Request.Context(), req.CustomerID, lines)
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrValidation):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, sales.ErrForeignRef):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "customer or product not found"})
		case errors.Is(err, sales.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to create sale", zap.String("customer_id", req.CustomerID), zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sale"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// handleList handles the GET /sales endpoint.
func (h *salesHandler) handleList(ctx *gin.Context) {
	results, err := h.salesService.ListSales(ctx.Request.Context())
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sales"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// handleGet handles the GET /sales/:id endpoint.
func (h *salesHandler) handleGet(ctx *gin.Context) {
	sale, err := h.salesService.GetSale(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, sales.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
			return
		}
		h.logger.Error("failed to get sale", zap.String("sale_id", ctx.Param("id")), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get sale"})
		return
	}
	ctx.JSON(http.StatusOK, sale)
}

// handleDelete handles the DELETE /sales/:id endpoint.
func (h *salesHandler) handleDelete(ctx *gin.Context) {
	err := h.salesService.DeleteSale(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, sales.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
			return
		}
		h.logger.Error("failed to delete sale", zap.String("sale_id", ctx.Param("id")), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sale"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "sale deleted"})
}
