package vendure

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// CatalogService implements storefront.CatalogService with Shop API list queries
type CatalogService struct {
	client *Client
}

// NewCatalogService creates a CatalogService
func NewCatalogService(client *Client) *CatalogService {
	return &CatalogService{client: client}
}

// ListProducts returns every product priced at its first variant
func (s *CatalogService) ListProducts(ctx context.Context) ([]storefront.Product, error) {
	var data productsData
	if err := s.client.query(ctx, ProductsDocument, nil, &data); err != nil {
		logger.L(ctx).Warn("vendure products query failed", zap.Error(err))
		return nil, shared.WrapProviderError("VENDURE_QUERY_FAILED", err)
	}

	products := make([]storefront.Product, 0, len(data.Products.Items))
	for _, item := range data.Products.Items {
		price := decimal.Zero
		if len(item.Variants) > 0 {
			price = item.Variants[0].PriceWithTax
		}
		products = append(products, storefront.Product{
			ID:    item.ID,
			Name:  item.Name,
			Price: price,
		})
	}
	return products, nil
}

// ListCollections returns every collection of the channel
func (s *CatalogService) ListCollections(ctx context.Context) ([]storefront.Collection, error) {
	var data collectionsData
	if err := s.client.query(ctx, CollectionsDocument, nil, &data); err != nil {
		logger.L(ctx).Warn("vendure collections query failed", zap.Error(err))
		return nil, shared.WrapProviderError("VENDURE_QUERY_FAILED", err)
	}

	collections := make([]storefront.Collection, 0, len(data.Collections.Items))
	for _, item := range data.Collections.Items {
		collections = append(collections, storefront.Collection{
			ID:   item.ID,
			Name: item.Name,
			Slug: item.Slug,
		})
	}
	return collections, nil
}
