package storefront

import "context"

// ---------------------------------------------------------------------------
// Mode identifies the backing provider
// ---------------------------------------------------------------------------

// Mode identifies which provider adapter backs the storefront services
type Mode string

const (
	// ModeSupabase is the managed Postgres/auth platform (profile store)
	ModeSupabase Mode = "supabase"
	// ModeVendure is the headless commerce GraphQL API (commerce engine)
	ModeVendure Mode = "vendure"
)

// IsValid returns true if the mode is supported
func (m Mode) IsValid() bool {
	switch m {
	case ModeSupabase, ModeVendure:
		return true
	default:
		return false
	}
}

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// ---------------------------------------------------------------------------
// Service contracts
// ---------------------------------------------------------------------------

// AuthService signs storefront users in and out
type AuthService interface {
	// SignIn verifies the credentials with the provider and returns the user id
	SignIn(ctx context.Context, input SignInInput) (*SignInResult, error)
	// SignOut ends the provider session. Session tokens live in the transport layer.
	SignOut(ctx context.Context) error
}

// CatalogService reads the product catalog
type CatalogService interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListCollections(ctx context.Context) ([]Collection, error)
}

// CartService reads and mutates the shopper's active cart
type CartService interface {
	// GetActiveCart returns the cart owned by userID, or the UnknownCartID
	// sentinel with a zero total when the user has no cart
	GetActiveCart(ctx context.Context, userID string) (*Cart, error)
	AddItem(ctx context.Context, input AddCartItemInput) error
}

// CheckoutService turns a cart into an order
type CheckoutService interface {
	PlaceOrder(ctx context.Context, cartID string) (*PlaceOrderResult, error)
}

// OrderService reads placed orders
type OrderService interface {
	GetByCode(ctx context.Context, code string) (*Order, error)
}

// AccountService reads customer profiles
type AccountService interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}

// Services is the bundle every provider adapter produces.
// View code treats it as opaque and only calls through the contracts.
type Services struct {
	Auth     AuthService
	Catalog  CatalogService
	Cart     CartService
	Checkout CheckoutService
	Orders   OrderService
	Accounts AccountService
}
