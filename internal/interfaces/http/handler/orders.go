package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/interfaces/http/dto"
)

// OrderHandler serves placed orders
type OrderHandler struct {
	BaseHandler
	orders storefront.OrderService
}

// NewOrderHandler creates an OrderHandler
func NewOrderHandler(orders storefront.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// GetByCode returns the order with the :code path parameter
func (h *OrderHandler) GetByCode(c *gin.Context) {
	var req dto.OrderCodeRequest
	if !h.BindURI(c, &req) {
		return
	}

	order, err := h.orders.GetByCode(c.Request.Context(), req.Code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
