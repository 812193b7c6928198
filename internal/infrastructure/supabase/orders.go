package supabase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// OrderService implements storefront.OrderService over the orders table
type OrderService struct {
	db RecordReader
}

// NewOrderService creates an OrderService
func NewOrderService(db RecordReader) *OrderService {
	return &OrderService{db: db}
}

// GetByCode returns the order with the given public code
func (s *OrderService) GetByCode(ctx context.Context, code string) (*storefront.Order, error) {
	var row orderRow
	found, err := s.db.SelectOne(ctx, Query{
		Table:   tableOrders,
		Columns: []string{"id", "code", "status", "cart_id"},
		Filters: []Filter{Eq("code", code)},
	}, &row)
	if err != nil {
		logger.L(ctx).Warn("supabase order lookup failed", zap.String("code", code), zap.Error(err))
		return nil, shared.NewProviderError("SUPABASE_ORDER_LOOKUP_FAILED", err.Error()).WithCause(err)
	}
	if !found {
		return nil, shared.NewNotFoundError("ORDER_NOT_FOUND", "Order not found")
	}

	return &storefront.Order{
		ID:     row.ID,
		Code:   row.Code,
		Status: row.Status,
		CartID: row.CartID,
	}, nil
}
