package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fredonbytes/backend/internal/domain/storefront"
)

// CatalogHandler serves products and collections
type CatalogHandler struct {
	BaseHandler
	catalog storefront.CatalogService
}

// NewCatalogHandler creates a CatalogHandler
func NewCatalogHandler(catalog storefront.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts returns every product
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if products == nil {
		products = []storefront.Product{}
	}
	h.Success(c, products)
}

// ListCollections returns every collection
func (h *CatalogHandler) ListCollections(c *gin.Context) {
	collections, err := h.catalog.ListCollections(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if collections == nil {
		collections = []storefront.Collection{}
	}
	h.Success(c, collections)
}
