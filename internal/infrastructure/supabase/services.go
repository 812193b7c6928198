package supabase

import (
	"github.com/fredonbytes/backend/internal/domain/storefront"
)

// NewServices builds the storefront services on the public connection.
// The admin connection is never handed to a service.
func NewServices(clients *Clients) *storefront.Services {
	conn := clients.Public
	return &storefront.Services{
		Auth:     NewAuthService(conn),
		Catalog:  NewCatalogService(conn),
		Cart:     NewCartService(conn),
		Checkout: NewCheckoutService(conn),
		Orders:   NewOrderService(conn),
		Accounts: NewAccountService(conn),
	}
}
