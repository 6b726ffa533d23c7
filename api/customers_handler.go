package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_vendas/internal/customers"
)

// customersHandler implements the customer CRUD endpoints.
type customersHandler struct {
	customersService *customers.Service
	logger           *zap.Logger
}

// NewCustomersHandler creates a new customers handler.
func NewCustomersHandler(customersService *customers.Service, logger *zap.Logger) *customersHandler {
	return &customersHandler{
		customersService: customersService,
		logger:           logger,
	}
}

type customerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *customersHandler) handleCreate(ctx *gin.Context) {
	var req customerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	c, err := h.customersService.Create(ctx.Request.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		h.writeError(ctx, err, "failed to create customer")
		return
	}
	ctx.JSON(http.StatusCreated, c)
}

func (h *customersHandler) handleList(ctx *gin.Context) {
	list, err := h.customersService.List(ctx.Request.Context())
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}
	ctx.JSON(http.StatusOK, list)
}

func (h *customersHandler) handleGet(ctx *gin.Context) {
	c, err := h.customersService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		h.writeError(ctx, err, "failed to get customer")
		return
	}
	ctx.JSON(http.StatusOK, c)
}

func (h *customersHandler) handleUpdate(ctx *gin.Context) {
	var req customerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	c, err := h.customersService.Update(ctx.Request.Context(), ctx.Param("id"), req.Name, req.Email, req.Phone)
	if err != nil {
		h.writeError(ctx, err, "failed to update customer")
		return
	}
	ctx.JSON(http.StatusOK, c)
}

func (h *customersHandler) handleDelete(ctx *gin.Context) {
	if err := h.customersService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		h.writeError(ctx, err, "failed to delete customer")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}

func (h *customersHandler) writeError(ctx *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, customers.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
	case errors.Is(err, customers.ErrMissingFields):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error(msg, zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
