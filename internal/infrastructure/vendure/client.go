// Package vendure implements the storefront contracts against a headless
// commerce GraphQL Shop API through two named channels: read-only queries and
// mutations.
package vendure

import (
	"context"
	"encoding/json"
	"fmt"
)

// ProviderName labels logs and spans emitted by this adapter
const ProviderName = "vendure"

// RequestFunc issues one named operation and returns its data payload
type RequestFunc func(ctx context.Context, doc Document, variables map[string]any) (json.RawMessage, error)

// Client routes operations to the query or mutation channel
type Client struct {
	queryFn    RequestFunc
	mutationFn RequestFunc
}

// NewClient creates a Client. When mutation is nil, writes go through query.
func NewClient(query, mutation RequestFunc) *Client {
	if mutation == nil {
		mutation = query
	}
	return &Client{queryFn: query, mutationFn: mutation}
}

// Query issues a read-only operation
func (c *Client) Query(ctx context.Context, doc Document, variables map[string]any) (json.RawMessage, error) {
	return c.queryFn(ctx, doc, variables)
}

// Mutate issues a state-changing operation
func (c *Client) Mutate(ctx context.Context, doc Document, variables map[string]any) (json.RawMessage, error) {
	return c.mutationFn(ctx, doc, variables)
}

func (c *Client) query(ctx context.Context, doc Document, variables map[string]any, dst any) error {
	raw, err := c.Query(ctx, doc, variables)
	if err != nil {
		return err
	}
	return decode(doc, raw, dst)
}

func (c *Client) mutate(ctx context.Context, doc Document, variables map[string]any, dst any) error {
	raw, err := c.Mutate(ctx, doc, variables)
	if err != nil {
		return err
	}
	return decode(doc, raw, dst)
}

func decode(doc Document, raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("vendure: failed to decode %s: %w", doc.Name, err)
	}
	return nil
}
