package dto

import (
	"github.com/fredonbytes/backend/internal/domain/storefront"
)

// SignInRequest is the body of POST /auth/sign-in
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ToInput converts the request to the contract input
func (r SignInRequest) ToInput() storefront.SignInInput {
	return storefront.SignInInput{Email: r.Email, Password: r.Password}
}

// AddCartItemRequest is the body of POST /cart/items
type AddCartItemRequest struct {
	CartID    string `json:"cartId" binding:"required"`
	VariantID string `json:"variantId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
}

// ToInput converts the request to the contract input
func (r AddCartItemRequest) ToInput() storefront.AddCartItemInput {
	return storefront.AddCartItemInput{CartID: r.CartID, VariantID: r.VariantID, Quantity: r.Quantity}
}

// PlaceOrderRequest is the body of POST /checkout
type PlaceOrderRequest struct {
	CartID string `json:"cartId" binding:"required"`
}

// OrderCodeRequest binds the :code path parameter
type OrderCodeRequest struct {
	Code string `uri:"code" binding:"required,max=64"`
}

// ClientConfigResponse is the browser-safe provider configuration
type ClientConfigResponse struct {
	Mode   storefront.Mode `json:"mode"`
	Config any             `json:"config"`
}

// HealthResponse reports process and dependency health
type HealthResponse struct {
	Status string            `json:"status"`
	Mode   storefront.Mode   `json:"mode"`
	Checks map[string]string `json:"checks,omitempty"`
}
