package supabase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// CheckoutService implements storefront.CheckoutService by recording an order row
type CheckoutService struct {
	db    RecordReader
	newID func() uuid.UUID
}

// NewCheckoutService creates a CheckoutService. Orders need db to also be a RecordWriter.
func NewCheckoutService(db RecordReader) *CheckoutService {
	return &CheckoutService{db: db, newID: uuid.New}
}

// PlaceOrder records a Created order for the cart and returns its code
func (s *CheckoutService) PlaceOrder(ctx context.Context, cartID string) (*storefront.PlaceOrderResult, error) {
	writer, ok := s.db.(RecordWriter)
	if !ok {
		return nil, shared.NewProviderError("SUPABASE_ORDER_CREATE_FAILED", ErrWriteUnavailable.Error()).WithCause(ErrWriteUnavailable)
	}

	id := s.newID()
	code := storefront.NewOrderCode(id)

	err := writer.Insert(ctx, tableOrders, map[string]any{
		"id":      id.String(),
		"code":    code,
		"status":  storefront.OrderStatusCreated,
		"cart_id": cartID,
	})
	if err != nil {
		logger.L(ctx).Warn("supabase order create failed", zap.String("cart_id", cartID), zap.Error(err))
		return nil, shared.NewProviderError("SUPABASE_ORDER_CREATE_FAILED", err.Error()).WithCause(err)
	}

	return &storefront.PlaceOrderResult{OrderCode: code}, nil
}
