package vendure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredonbytes/backend/internal/domain/storefront"
)

func TestClient_MutationChannelIsPreferred(t *testing.T) {
	query := newFakeChannel()
	mutation := newFakeChannel().
		respond(SignInDocument, `{"login":{"id":"u-1"}}`).
		respond(PlaceOrderDocument, `{"placeOrder":{"code":"ORD-1"}}`)
	services := NewServices(NewClient(query.do, mutation.do))
	ctx := context.Background()

	_, err := services.Auth.SignIn(ctx, storefront.SignInInput{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)
	require.NoError(t, services.Cart.AddItem(ctx, storefront.AddCartItemInput{CartID: "c1", VariantID: "v1", Quantity: 1}))
	_, err = services.Checkout.PlaceOrder(ctx, "c1")
	require.NoError(t, err)

	assert.Empty(t, query.calls, "writes must not touch the query channel")
	assert.Equal(t, []string{"SignInDocument", "AddItemToOrderDocument", "PlaceOrderDocument"}, mutation.names())

	_, err = services.Catalog.ListCollections(ctx)
	require.NoError(t, err)
	_, err = services.Orders.GetByCode(ctx, "ORD-1")
	require.Error(t, err) // no canned order
	assert.Equal(t, []string{"CollectionsDocument", "OrderByCodeDocument"}, query.names())
	assert.Len(t, mutation.calls, 3)
}

func TestClient_WritesFallBackToQuery(t *testing.T) {
	query := newFakeChannel()
	services := NewServices(NewClient(query.do, nil))
	ctx := context.Background()

	require.NoError(t, services.Cart.AddItem(ctx, storefront.AddCartItemInput{CartID: "c1", VariantID: "v1", Quantity: 1}))
	_, err := services.Checkout.PlaceOrder(ctx, "c1")
	require.NoError(t, err)

	assert.Equal(t, []string{"AddItemToOrderDocument", "PlaceOrderDocument"}, query.names())
}

func TestClient_DecodeFailure(t *testing.T) {
	query := newFakeChannel().respond(CollectionsDocument, `{"collections":"nope"}`)
	client := NewClient(query.do, nil)

	var data collectionsData
	err := client.query(context.Background(), CollectionsDocument, nil, &data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode CollectionsDocument")
}
