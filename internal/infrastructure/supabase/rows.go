package supabase

import "github.com/shopspring/decimal"

// Table and column names of the storefront schema
const (
	tableProducts    = "products"
	tableCollections = "collections"
	tableCarts       = "carts"
	tableCartItems   = "cart_items"
	tableOrders      = "orders"
	tableProfiles    = "profiles"
)

// storefrontTables lists every table the services read or write
var storefrontTables = []string{
	tableProducts,
	tableCollections,
	tableCarts,
	tableCartItems,
	tableOrders,
	tableProfiles,
}

type productRow struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Price decimal.NullDecimal `json:"price"`
}

type collectionRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type cartRow struct {
	ID    string              `json:"id"`
	Total decimal.NullDecimal `json:"total"`
}

type cartItemRow struct {
	CartID    string              `json:"cart_id"`
	VariantID string              `json:"variant_id"`
	Quantity  int64               `json:"quantity"`
	UnitPrice decimal.NullDecimal `json:"unit_price"`
}

type orderRow struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Status string `json:"status"`
	CartID string `json:"cart_id"`
}

type profileRow struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// orZero returns the decimal value or zero when the column was null or absent
func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
