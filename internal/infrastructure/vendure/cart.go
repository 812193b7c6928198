package vendure

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// CartService implements storefront.CartService on the session's active order
type CartService struct {
	client *Client
}

// NewCartService creates a CartService
func NewCartService(client *Client) *CartService {
	return &CartService{client: client}
}

// GetActiveCart returns the active order as a cart. A missing order or field
// falls back to the unknown-cart sentinel and a zero total.
func (s *CartService) GetActiveCart(ctx context.Context, userID string) (*storefront.Cart, error) {
	var data activeOrderData
	err := s.client.query(ctx, ActiveOrderDocument, map[string]any{"userId": userID}, &data)
	if err != nil {
		logger.L(ctx).Warn("vendure active order query failed", zap.String("user_id", userID), zap.Error(err))
		return nil, shared.WrapProviderError("VENDURE_CART_FETCH_FAILED", err)
	}

	cart := &storefront.Cart{ID: storefront.UnknownCartID, Total: decimal.Zero}
	if order := data.ActiveOrder; order != nil {
		if order.ID != "" {
			cart.ID = order.ID
		}
		if order.TotalWithTax.Valid {
			cart.Total = order.TotalWithTax.Decimal
		}
	}
	return cart, nil
}

// AddItem adds a variant to the active order. The input is sent as the
// operation variables unchanged.
func (s *CartService) AddItem(ctx context.Context, input storefront.AddCartItemInput) error {
	var data addItemData
	err := s.client.mutate(ctx, AddItemToOrderDocument, map[string]any{
		"cartId":    input.CartID,
		"variantId": input.VariantID,
		"quantity":  input.Quantity,
	}, &data)
	if err == nil && data.AddItemToOrder != nil {
		err = data.AddItemToOrder.err()
	}
	if err != nil {
		logger.L(ctx).Warn("vendure add item failed",
			zap.String("cart_id", input.CartID),
			zap.String("variant_id", input.VariantID),
			zap.Error(err),
		)
		return shared.WrapProviderError("VENDURE_CART_ADD_FAILED", err)
	}
	return nil
}
