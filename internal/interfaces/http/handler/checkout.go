package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/interfaces/http/dto"
)

// CheckoutHandler turns carts into orders
type CheckoutHandler struct {
	BaseHandler
	checkout storefront.CheckoutService
}

// NewCheckoutHandler creates a CheckoutHandler
func NewCheckoutHandler(checkout storefront.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// PlaceOrder places an order for the cart and returns its code
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.checkout.PlaceOrder(c.Request.Context(), req.CartID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}
