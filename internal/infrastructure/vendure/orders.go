package vendure

import (
	"context"

	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// OrderService implements storefront.OrderService
type OrderService struct {
	client *Client
}

// NewOrderService creates an OrderService
func NewOrderService(client *Client) *OrderService {
	return &OrderService{client: client}
}

// GetByCode looks an order up by its public code. The engine's order doubles
// as its cart, so CartID is the order id.
func (s *OrderService) GetByCode(ctx context.Context, code string) (*storefront.Order, error) {
	var data orderByCodeData
	if err := s.client.query(ctx, OrderByCodeDocument, map[string]any{"code": code}, &data); err != nil {
		logger.L(ctx).Warn("vendure order lookup failed", zap.String("code", code), zap.Error(err))
		return nil, shared.WrapProviderError("VENDURE_ORDER_LOOKUP_FAILED", err)
	}

	order := data.OrderByCode
	if order == nil {
		return nil, shared.NewNotFoundError("ORDER_NOT_FOUND", "Order not found")
	}
	if order.Code == "" {
		order.Code = code
	}

	return &storefront.Order{
		ID:     order.ID,
		Code:   order.Code,
		Status: order.State,
		CartID: order.ID,
	}, nil
}
