package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/interfaces/http/dto"
)

func TestAuthHandler(t *testing.T) {
	t.Run("sign in returns user id", func(t *testing.T) {
		auth := &stubAuth{result: &storefront.SignInResult{UserID: "u-1"}}
		h := NewAuthHandler(auth)

		w := serve(t, http.MethodPost, "/auth/sign-in", "/auth/sign-in",
			dto.SignInRequest{Email: "ok@site.com", Password: "pass"}, nil, h.SignIn)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":{"userId":"u-1"}}`, w.Body.String())
		assert.Equal(t, storefront.SignInInput{Email: "ok@site.com", Password: "pass"}, auth.got)
	})

	t.Run("rejected credentials are 401", func(t *testing.T) {
		h := NewAuthHandler(&stubAuth{err: shared.NewAuthError("INVALID_CREDENTIALS", "Invalid login credentials")})

		w := serve(t, http.MethodPost, "/auth/sign-in", "/auth/sign-in",
			dto.SignInRequest{Email: "ok@site.com", Password: "bad"}, nil, h.SignIn)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeResponse(t, w).Error.Code)
	})

	t.Run("invalid email never reaches the provider", func(t *testing.T) {
		auth := &stubAuth{}
		h := NewAuthHandler(auth)

		w := serve(t, http.MethodPost, "/auth/sign-in", "/auth/sign-in",
			`{"email":"not-an-email","password":"x"}`, nil, h.SignIn)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, auth.got.Email)
	})

	t.Run("sign out", func(t *testing.T) {
		auth := &stubAuth{}
		h := NewAuthHandler(auth)

		w := serve(t, http.MethodPost, "/auth/sign-out", "/auth/sign-out", nil, nil, h.SignOut)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, 1, auth.signOuts)
	})
}

func TestCatalogHandler(t *testing.T) {
	t.Run("lists products", func(t *testing.T) {
		h := NewCatalogHandler(&stubCatalog{products: []storefront.Product{
			{ID: "p1", Name: "Mug", Price: decimal.RequireFromString("12.50")},
		}})

		w := serve(t, http.MethodGet, "/catalog/products", "/catalog/products", nil, nil, h.ListProducts)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[{"id":"p1","name":"Mug","price":"12.5"}]}`, w.Body.String())
	})

	t.Run("empty collections are an empty array", func(t *testing.T) {
		h := NewCatalogHandler(&stubCatalog{})

		w := serve(t, http.MethodGet, "/catalog/collections", "/catalog/collections", nil, nil, h.ListCollections)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
	})

	t.Run("provider failure is 502", func(t *testing.T) {
		h := NewCatalogHandler(&stubCatalog{err: shared.WrapProviderError("VENDURE_QUERY_FAILED", errors.New("down"))})

		w := serve(t, http.MethodGet, "/catalog/collections", "/catalog/collections", nil, nil, h.ListCollections)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "ProviderError: down", resp.Error.Message)
		assert.Equal(t, string(shared.KindProvider), resp.Error.Kind)
	})
}

func TestCartHandler(t *testing.T) {
	t.Run("requires user id", func(t *testing.T) {
		cart := &stubCart{}
		h := NewCartHandler(cart)

		w := serve(t, http.MethodGet, "/cart", "/cart", nil, nil, h.GetActiveCart)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, cart.userID)
	})

	t.Run("returns the cart", func(t *testing.T) {
		cart := &stubCart{cart: &storefront.Cart{ID: "c1", Total: decimal.NewFromInt(4000)}}
		h := NewCartHandler(cart)

		w := serve(t, http.MethodGet, "/cart", "/cart", nil, map[string]string{UserIDHeader: "u1"}, h.GetActiveCart)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":{"id":"c1","total":"4000"}}`, w.Body.String())
		assert.Equal(t, "u1", cart.userID)
	})

	t.Run("adds an item", func(t *testing.T) {
		cart := &stubCart{}
		h := NewCartHandler(cart)

		w := serve(t, http.MethodPost, "/cart/items", "/cart/items",
			`{"cartId":"c1","variantId":"v1","quantity":2}`, nil, h.AddItem)
		assert.Equal(t, http.StatusNoContent, w.Code)
		require.Len(t, cart.added, 1)
		assert.Equal(t, storefront.AddCartItemInput{CartID: "c1", VariantID: "v1", Quantity: 2}, cart.added[0])
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		cart := &stubCart{}
		h := NewCartHandler(cart)

		w := serve(t, http.MethodPost, "/cart/items", "/cart/items",
			`{"cartId":"c1","variantId":"v1","quantity":0}`, nil, h.AddItem)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, cart.added)
	})
}

func TestCheckoutHandler(t *testing.T) {
	checkout := &stubCheckout{result: &storefront.PlaceOrderResult{OrderCode: "ORD-1A2B3C4D"}}
	h := NewCheckoutHandler(checkout)

	w := serve(t, http.MethodPost, "/checkout", "/checkout", dto.PlaceOrderRequest{CartID: "c1"}, nil, h.PlaceOrder)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"orderCode":"ORD-1A2B3C4D"}}`, w.Body.String())
	assert.Equal(t, "c1", checkout.cartID)

	w = serve(t, http.MethodPost, "/checkout", "/checkout", `{}`, nil, h.PlaceOrder)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		orders := &stubOrders{order: &storefront.Order{ID: "o1", Code: "ORD-1", Status: storefront.OrderStatusCreated, CartID: "c1"}}
		h := NewOrderHandler(orders)

		w := serve(t, http.MethodGet, "/orders/:code", "/orders/ORD-1", nil, nil, h.GetByCode)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ORD-1", orders.code)
	})

	t.Run("not found is 404", func(t *testing.T) {
		h := NewOrderHandler(&stubOrders{err: shared.NewNotFoundError("ORDER_NOT_FOUND", "Order not found")})

		w := serve(t, http.MethodGet, "/orders/:code", "/orders/NOPE", nil, nil, h.GetByCode)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "ORDER_NOT_FOUND", decodeResponse(t, w).Error.Code)
	})
}

func TestAccountHandler(t *testing.T) {
	first := "Jo"
	accounts := &stubAccounts{profile: &storefront.Profile{UserID: "u1", Email: "jo@site.com", FirstName: &first}}
	h := NewAccountHandler(accounts)

	w := serve(t, http.MethodGet, "/account/profile", "/account/profile", nil, map[string]string{UserIDHeader: "u1"}, h.GetProfile)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"userId":"u1","email":"jo@site.com","firstName":"Jo"}}`, w.Body.String())
	assert.Equal(t, "u1", accounts.userID)
}
