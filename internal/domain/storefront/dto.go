package storefront

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// UnknownCartID is returned as the cart id when the user has no cart
	UnknownCartID = "unknown"
	// OrderStatusCreated is the status of a freshly placed order
	OrderStatusCreated = "Created"
	// OrderCodePrefix starts every generated order code
	OrderCodePrefix = "ORD-"
	// orderCodeHexLength is the number of id characters kept in an order code
	orderCodeHexLength = 8
)

// SignInInput carries the credentials for AuthService.SignIn
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResult identifies the signed-in user
type SignInResult struct {
	UserID string `json:"userId"`
}

// Product is a catalog row normalized across providers
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Collection groups products in the catalog
type Collection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Cart is the summary of the shopper's active cart
type Cart struct {
	ID    string          `json:"id"`
	Total decimal.Decimal `json:"total"`
}

// CartItem is a line in a cart. UnitPrice is invalid when the provider has no price for it.
type CartItem struct {
	CartID    string              `json:"cartId"`
	VariantID string              `json:"variantId"`
	Quantity  int64               `json:"quantity"`
	UnitPrice decimal.NullDecimal `json:"unitPrice"`
}

// AddCartItemInput adds a variant to a cart
type AddCartItemInput struct {
	CartID    string `json:"cartId"`
	VariantID string `json:"variantId"`
	Quantity  int64  `json:"quantity"`
}

// PlaceOrderResult is returned by CheckoutService.PlaceOrder
type PlaceOrderResult struct {
	OrderCode string `json:"orderCode"`
}

// Order is a placed order. It is read-only after checkout.
type Order struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Status string `json:"status"`
	CartID string `json:"cartId"`
}

// Profile is a read-only projection of the provider's customer record
type Profile struct {
	UserID    string  `json:"userId"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// CartTotal computes the cart total from its items.
// The sum of quantity × unit price is used only when there is at least one item
// and every item is priced; otherwise the provider's stored total is returned.
func CartTotal(items []CartItem, stored decimal.Decimal) decimal.Decimal {
	if len(items) == 0 {
		return stored
	}
	total := decimal.Zero
	for _, item := range items {
		if !item.UnitPrice.Valid {
			return stored
		}
		total = total.Add(item.UnitPrice.Decimal.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}

// NewOrderCode derives the public order code from an order id:
// "ORD-" followed by the first 8 hex characters of the id, upper-cased.
func NewOrderCode(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return OrderCodePrefix + strings.ToUpper(hex[:orderCodeHexLength])
}
