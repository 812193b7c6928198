// Package contract holds the behavioral suite every storefront provider adapter
// must pass. Adapter packages run it from their own tests with a minimal fake
// transport, which proves the adapters are interchangeable behind the contracts.
package contract

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredonbytes/backend/internal/domain/storefront"
)

const (
	// ContractUserID is the user id the suite passes to user-scoped operations
	ContractUserID = "contract-user"
	// ContractCartID is the cart id the suite checks out and adds items to
	ContractCartID = "contract-cart"
	// ContractOrderCode is the order code the suite looks up.
	// Orders factories must return a service that knows this code.
	ContractOrderCode = "ORD-C0FFEE00"
)

// RunAuthContract asserts that a valid-looking sign in resolves to a user id
func RunAuthContract(t *testing.T, provider string, makeAuth func() storefront.AuthService) {
	t.Helper()

	t.Run(fmt.Sprintf("%s auth contract", provider), func(t *testing.T) {
		t.Run("returns userId on valid sign in", func(t *testing.T) {
			auth := makeAuth()

			result, err := auth.SignIn(context.Background(), storefront.SignInInput{
				Email:    "ok@site.com",
				Password: "pass",
			})

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotEmpty(t, result.UserID)
		})
	})
}

// Suite is the full set of contract checks for one provider.
// A nil factory skips that contract.
type Suite struct {
	Provider string
	Auth     func() storefront.AuthService
	Catalog  func() storefront.CatalogService
	Cart     func() storefront.CartService
	Checkout func() storefront.CheckoutService
	Orders   func() storefront.OrderService
	Accounts func() storefront.AccountService
}

// Run executes every contract in the suite
func (s Suite) Run(t *testing.T) {
	t.Helper()

	if s.Auth != nil {
		RunAuthContract(t, s.Provider, s.Auth)
	}

	s.run(t, "catalog", s.Catalog != nil, func(t *testing.T) {
		products, err := s.Catalog().ListProducts(context.Background())
		require.NoError(t, err)
		for _, p := range products {
			assert.NotEmpty(t, p.ID)
			assert.False(t, p.Price.IsNegative(), "product %s has negative price", p.ID)
		}
	})

	s.run(t, "cart", s.Cart != nil, func(t *testing.T) {
		svc := s.Cart()

		cart, err := svc.GetActiveCart(context.Background(), ContractUserID)
		require.NoError(t, err)
		require.NotNil(t, cart)
		assert.NotEmpty(t, cart.ID)
		assert.False(t, cart.Total.IsNegative())

		err = svc.AddItem(context.Background(), storefront.AddCartItemInput{
			CartID:    ContractCartID,
			VariantID: "contract-variant",
			Quantity:  1,
		})
		assert.NoError(t, err)
	})

	s.run(t, "checkout", s.Checkout != nil, func(t *testing.T) {
		result, err := s.Checkout().PlaceOrder(context.Background(), ContractCartID)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.OrderCode)
	})

	s.run(t, "orders", s.Orders != nil, func(t *testing.T) {
		order, err := s.Orders().GetByCode(context.Background(), ContractOrderCode)
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, ContractOrderCode, order.Code)
	})

	s.run(t, "accounts", s.Accounts != nil, func(t *testing.T) {
		profile, err := s.Accounts().GetProfile(context.Background(), ContractUserID)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, ContractUserID, profile.UserID)
	})
}

func (s Suite) run(t *testing.T, contract string, enabled bool, fn func(t *testing.T)) {
	t.Helper()
	t.Run(fmt.Sprintf("%s %s contract", s.Provider, contract), func(t *testing.T) {
		if !enabled {
			t.Skipf("no %s factory for %s", contract, s.Provider)
		}
		fn(t)
	})
}
