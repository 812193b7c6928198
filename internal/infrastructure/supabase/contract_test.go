package supabase

import (
	"testing"

	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/domain/storefront/contract"
)

// contractDB is the minimal fake the shared provider contracts run against
func contractDB() *fakeDB {
	db := newFakeDB().
		seed(tableProducts, map[string]any{"id": "p1", "name": "Mug", "price": 12}).
		seed(tableCarts, map[string]any{"id": contract.ContractCartID, "user_id": contract.ContractUserID, "total": 0}).
		seed(tableOrders, map[string]any{
			"id": "o-1", "code": contract.ContractOrderCode, "status": storefront.OrderStatusCreated, "cart_id": contract.ContractCartID,
		}).
		seed(tableProfiles, map[string]any{"id": contract.ContractUserID, "email": "ok@site.com"})
	db.user = &AuthUser{ID: "supabase-user"}
	return db
}

func TestSupabaseContracts(t *testing.T) {
	contract.Suite{
		Provider: "supabase",
		Auth:     func() storefront.AuthService { return NewAuthService(contractDB()) },
		Catalog:  func() storefront.CatalogService { return NewCatalogService(contractDB()) },
		Cart:     func() storefront.CartService { return NewCartService(contractDB()) },
		Checkout: func() storefront.CheckoutService { return NewCheckoutService(contractDB()) },
		Orders:   func() storefront.OrderService { return NewOrderService(contractDB()) },
		Accounts: func() storefront.AccountService { return NewAccountService(contractDB()) },
	}.Run(t)
}
