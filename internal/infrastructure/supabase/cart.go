package supabase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// ErrWriteUnavailable is the cause of write failures on a read-only connection
var ErrWriteUnavailable = errors.New("insert capability unavailable")

// CartService implements storefront.CartService over carts and cart_items
type CartService struct {
	db RecordReader
}

// NewCartService creates a CartService. Writes need db to also be a RecordWriter.
func NewCartService(db RecordReader) *CartService {
	return &CartService{db: db}
}

// GetActiveCart returns the user's cart with a total computed from its items,
// or the unknown-cart sentinel when the user has none.
func (s *CartService) GetActiveCart(ctx context.Context, userID string) (*storefront.Cart, error) {
	log := logger.L(ctx).With(zap.String("user_id", userID))

	var cart cartRow
	found, err := s.db.SelectOne(ctx, Query{
		Table:   tableCarts,
		Columns: []string{"id", "total"},
		Filters: []Filter{Eq("user_id", userID)},
	}, &cart)
	if err != nil {
		log.Warn("supabase cart lookup failed", zap.Error(err))
		return nil, shared.NewProviderError("SUPABASE_CART_LOOKUP_FAILED", err.Error()).WithCause(err)
	}
	if !found {
		return &storefront.Cart{ID: storefront.UnknownCartID, Total: decimal.Zero}, nil
	}

	var rows []cartItemRow
	err = s.db.SelectMany(ctx, Query{
		Table:   tableCartItems,
		Columns: []string{"cart_id", "variant_id", "quantity", "unit_price"},
		Filters: []Filter{Eq("cart_id", cart.ID)},
	}, &rows)
	if err != nil {
		log.Warn("supabase cart items lookup failed", zap.String("cart_id", cart.ID), zap.Error(err))
		return nil, shared.NewProviderError("SUPABASE_CART_ITEMS_FAILED", err.Error()).WithCause(err)
	}

	items := make([]storefront.CartItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, storefront.CartItem{
			CartID:    r.CartID,
			VariantID: r.VariantID,
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
		})
	}

	return &storefront.Cart{
		ID:    cart.ID,
		Total: storefront.CartTotal(items, orZero(cart.Total)),
	}, nil
}

// AddItem inserts a cart line
func (s *CartService) AddItem(ctx context.Context, input storefront.AddCartItemInput) error {
	writer, ok := s.db.(RecordWriter)
	if !ok {
		return shared.NewProviderError("SUPABASE_CART_ADD_FAILED", ErrWriteUnavailable.Error()).WithCause(ErrWriteUnavailable)
	}

	err := writer.Insert(ctx, tableCartItems, map[string]any{
		"cart_id":    input.CartID,
		"variant_id": input.VariantID,
		"quantity":   input.Quantity,
	})
	if err != nil {
		logger.L(ctx).Warn("supabase cart add failed",
			zap.String("cart_id", input.CartID),
			zap.String("variant_id", input.VariantID),
			zap.Error(err),
		)
		return shared.NewProviderError("SUPABASE_CART_ADD_FAILED", err.Error()).WithCause(err)
	}
	return nil
}
