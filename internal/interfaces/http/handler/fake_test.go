package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth struct {
	result   *storefront.SignInResult
	err      error
	got      storefront.SignInInput
	signOuts int
}

func (s *stubAuth) SignIn(ctx context.Context, input storefront.SignInInput) (*storefront.SignInResult, error) {
	s.got = input
	return s.result, s.err
}

func (s *stubAuth) SignOut(ctx context.Context) error {
	s.signOuts++
	return s.err
}

type stubCatalog struct {
	products    []storefront.Product
	collections []storefront.Collection
	err         error
}

func (s *stubCatalog) ListProducts(ctx context.Context) ([]storefront.Product, error) {
	return s.products, s.err
}

func (s *stubCatalog) ListCollections(ctx context.Context) ([]storefront.Collection, error) {
	return s.collections, s.err
}

type stubCart struct {
	cart   *storefront.Cart
	err    error
	userID string
	added  []storefront.AddCartItemInput
	addErr error
}

func (s *stubCart) GetActiveCart(ctx context.Context, userID string) (*storefront.Cart, error) {
	s.userID = userID
	return s.cart, s.err
}

func (s *stubCart) AddItem(ctx context.Context, input storefront.AddCartItemInput) error {
	s.added = append(s.added, input)
	return s.addErr
}

type stubCheckout struct {
	result *storefront.PlaceOrderResult
	err    error
	cartID string
}

func (s *stubCheckout) PlaceOrder(ctx context.Context, cartID string) (*storefront.PlaceOrderResult, error) {
	s.cartID = cartID
	return s.result, s.err
}

type stubOrders struct {
	order *storefront.Order
	err   error
	code  string
}

func (s *stubOrders) GetByCode(ctx context.Context, code string) (*storefront.Order, error) {
	s.code = code
	return s.order, s.err
}

type stubAccounts struct {
	profile *storefront.Profile
	err     error
	userID  string
}

func (s *stubAccounts) GetProfile(ctx context.Context, userID string) (*storefront.Profile, error) {
	s.userID = userID
	return s.profile, s.err
}

// serve runs one request through a bare engine with handler mounted at pattern
func serve(t *testing.T, method, pattern, target string, body any, headers map[string]string, h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	engine := gin.New()
	engine.Handle(method, pattern, h)

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
