package supabase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// CatalogService implements storefront.CatalogService over the products and collections tables
type CatalogService struct {
	db RecordReader
}

// NewCatalogService creates a CatalogService
func NewCatalogService(db RecordReader) *CatalogService {
	return &CatalogService{db: db}
}

// ListProducts returns every product. A null price is reported as 0.
func (s *CatalogService) ListProducts(ctx context.Context) ([]storefront.Product, error) {
	var rows []productRow
	err := s.db.SelectMany(ctx, Query{
		Table:   tableProducts,
		Columns: []string{"id", "name", "price"},
	}, &rows)
	if err != nil {
		logger.L(ctx).Warn("supabase products list failed", zap.Error(err))
		return nil, shared.NewProviderError("SUPABASE_PRODUCTS_LIST_FAILED", err.Error()).WithCause(err)
	}

	products := make([]storefront.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, storefront.Product{
			ID:    r.ID,
			Name:  r.Name,
			Price: orZero(r.Price),
		})
	}
	return products, nil
}

// ListCollections returns every collection
func (s *CatalogService) ListCollections(ctx context.Context) ([]storefront.Collection, error) {
	var rows []collectionRow
	err := s.db.SelectMany(ctx, Query{
		Table:   tableCollections,
		Columns: []string{"id", "name", "slug"},
	}, &rows)
	if err != nil {
		logger.L(ctx).Warn("supabase collections list failed", zap.Error(err))
		return nil, shared.NewProviderError("SUPABASE_COLLECTIONS_LIST_FAILED", err.Error()).WithCause(err)
	}

	collections := make([]storefront.Collection, 0, len(rows))
	for _, r := range rows {
		collections = append(collections, storefront.Collection{ID: r.ID, Name: r.Name, Slug: r.Slug})
	}
	return collections, nil
}
