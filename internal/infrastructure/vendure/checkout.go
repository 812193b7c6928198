package vendure

import (
	"context"

	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// CheckoutService implements storefront.CheckoutService
type CheckoutService struct {
	client *Client
}

// NewCheckoutService creates a CheckoutService
func NewCheckoutService(client *Client) *CheckoutService {
	return &CheckoutService{client: client}
}

// PlaceOrder places the active order and returns its code, or UNKNOWN when
// the engine does not report one
func (s *CheckoutService) PlaceOrder(ctx context.Context, cartID string) (*storefront.PlaceOrderResult, error) {
	log := logger.L(ctx).With(zap.String("cart_id", cartID))

	var data placeOrderData
	err := s.client.mutate(ctx, PlaceOrderDocument, map[string]any{"cartId": cartID}, &data)
	if err == nil && data.PlaceOrder != nil {
		err = data.PlaceOrder.err()
	}
	if err != nil {
		log.Warn("vendure place order failed", zap.Error(err))
		return nil, shared.WrapProviderError("VENDURE_CHECKOUT_FAILED", err)
	}

	code := DefaultOrderCode
	if data.PlaceOrder != nil && data.PlaceOrder.Code != "" {
		code = data.PlaceOrder.Code
	}
	log.Info("order placed", zap.String("order_code", code))
	return &storefront.PlaceOrderResult{OrderCode: code}, nil
}
