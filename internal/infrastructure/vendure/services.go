package vendure

import (
	"github.com/fredonbytes/backend/internal/domain/storefront"
)

// NewServices builds the storefront services on one client
func NewServices(client *Client) *storefront.Services {
	return &storefront.Services{
		Auth:     NewAuthService(client),
		Catalog:  NewCatalogService(client),
		Cart:     NewCartService(client),
		Checkout: NewCheckoutService(client),
		Orders:   NewOrderService(client),
		Accounts: NewAccountService(client),
	}
}
