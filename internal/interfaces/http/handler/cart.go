package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/interfaces/http/dto"
)

// CartHandler serves the shopper's active cart
type CartHandler struct {
	BaseHandler
	cart storefront.CartService
}

// NewCartHandler creates a CartHandler
func NewCartHandler(cart storefront.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// GetActiveCart returns the cart of the X-User-ID user
func (h *CartHandler) GetActiveCart(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	cart, err := h.cart.GetActiveCart(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem adds a variant to a cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.cart.AddItem(c.Request.Context(), req.ToInput()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
