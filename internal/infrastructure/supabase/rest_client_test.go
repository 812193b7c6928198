package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredonbytes/backend/internal/infrastructure/config"
)

// recordedRequest captures what the platform received
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Header http.Header
	Body   []byte
}

func newPlatform(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		q := make(map[string]string)
		for k, v := range r.URL.Query() {
			q[k] = v[0]
		}
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  q,
			Header: r.Header.Clone(),
			Body:   b,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestRESTClient_SelectOne(t *testing.T) {
	srv, reqs := newPlatform(t, http.StatusOK, `[{"id":"o-1","code":"ORD-1","status":"Created","cart_id":"c-1"}]`)
	client := NewRESTClient(srv.URL+"/", "anon-key")

	var row orderRow
	found, err := client.SelectOne(context.Background(), Query{
		Table:   "orders",
		Columns: []string{"id", "code", "status", "cart_id"},
		Filters: []Filter{Eq("code", "ORD-1")},
	}, &row)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, orderRow{ID: "o-1", Code: "ORD-1", Status: "Created", CartID: "c-1"}, row)

	require.Len(t, *reqs, 1)
	req := (*reqs)[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/rest/v1/orders", req.Path)
	assert.Equal(t, map[string]string{
		"select": "id,code,status,cart_id",
		"code":   "eq.ORD-1",
		"limit":  "1",
	}, req.Query)
	assert.Equal(t, "anon-key", req.Header.Get("apikey"))
	assert.Equal(t, "Bearer anon-key", req.Header.Get("Authorization"))
}

func TestRESTClient_SelectOne_Empty(t *testing.T) {
	srv, _ := newPlatform(t, http.StatusOK, `[]`)

	var row orderRow
	found, err := NewRESTClient(srv.URL, "k").SelectOne(context.Background(), Query{Table: "orders"}, &row)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRESTClient_SelectMany(t *testing.T) {
	srv, reqs := newPlatform(t, http.StatusOK, `[{"id":"p1","name":"Mug","price":"9.50"},{"id":"p2","name":"Pin"}]`)

	var rows []productRow
	err := NewRESTClient(srv.URL, "k").SelectMany(context.Background(), Query{Table: "products"}, &rows)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "9.5", rows[0].Price.Decimal.String())
	assert.False(t, rows[1].Price.Valid)

	assert.Equal(t, map[string]string{"select": "*"}, (*reqs)[0].Query)
}

func TestRESTClient_Insert(t *testing.T) {
	srv, reqs := newPlatform(t, http.StatusCreated, ``)

	err := NewRESTClient(srv.URL, "k").Insert(context.Background(), "cart_items", map[string]any{
		"cart_id": "c-1", "variant_id": "v-1", "quantity": 2,
	})
	require.NoError(t, err)

	req := (*reqs)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/rest/v1/cart_items", req.Path)
	assert.Equal(t, "return=minimal", req.Header.Get("Prefer"))
	assert.JSONEq(t, `{"cart_id":"c-1","variant_id":"v-1","quantity":2}`, string(req.Body))
}

func TestRESTClient_SignInWithPassword(t *testing.T) {
	t.Run("returns user", func(t *testing.T) {
		srv, reqs := newPlatform(t, http.StatusOK, `{"access_token":"jwt","user":{"id":"u-1","email":"ok@site.com"}}`)

		user, err := NewRESTClient(srv.URL, "k").SignInWithPassword(context.Background(), "ok@site.com", "pass")
		require.NoError(t, err)
		assert.Equal(t, &AuthUser{ID: "u-1", Email: "ok@site.com"}, user)

		req := (*reqs)[0]
		assert.Equal(t, "/auth/v1/token", req.Path)
		assert.Equal(t, "password", req.Query["grant_type"])
		assert.JSONEq(t, `{"email":"ok@site.com","password":"pass"}`, string(req.Body))
	})

	t.Run("no user", func(t *testing.T) {
		srv, _ := newPlatform(t, http.StatusOK, `{"access_token":"jwt"}`)

		user, err := NewRESTClient(srv.URL, "k").SignInWithPassword(context.Background(), "a", "b")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestRESTClient_RemoteErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"postgrest message", http.StatusBadRequest, `{"message":"column products.sku does not exist"}`, "column products.sku does not exist"},
		{"gotrue msg", http.StatusUnprocessableEntity, `{"msg":"Email not confirmed"}`, "Email not confirmed"},
		{"gotrue error description", http.StatusBadRequest, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`, "Invalid login credentials"},
		{"status text fallback", http.StatusServiceUnavailable, `<html>down</html>`, "503 Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newPlatform(t, tt.status, tt.body)

			var rows []productRow
			err := NewRESTClient(srv.URL, "k").SelectMany(context.Background(), Query{Table: "products"}, &rows)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.ErrorIs(t, err, ErrRemote)

			var remote *RemoteError
			require.True(t, errors.As(err, &remote))
			assert.Equal(t, tt.status, remote.StatusCode)
		})
	}
}

func TestRESTClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewRESTClient(srv.URL, "k", WithTimeout(10*time.Millisecond))
	_, err := client.SelectOne(context.Background(), Query{Table: "orders"}, &orderRow{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRemote)
}

func TestNewClients_KeysByPrivilege(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("apikey"))
		_ = json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	clients := NewClients(&config.SupabaseConfig{
		URL:            srv.URL,
		AnonKey:        "anon",
		ServiceRoleKey: "service",
	}, WithHTTPClient(srv.Client()))

	var rows []productRow
	require.NoError(t, clients.Public.SelectMany(context.Background(), Query{Table: "products"}, &rows))
	require.NoError(t, clients.Admin.SelectMany(context.Background(), Query{Table: "products"}, &rows))

	assert.Equal(t, []string{"anon", "service"}, seen)

	_, writable := clients.Public.(RecordWriter)
	assert.True(t, writable)
}
