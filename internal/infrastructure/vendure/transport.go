package vendure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/infrastructure/config"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
	"github.com/fredonbytes/backend/internal/infrastructure/telemetry"
)

// maxResponseSize is the maximum allowed response size from the Shop API (10MB)
const maxResponseSize = 10 * 1024 * 1024

const defaultTimeout = 10 * time.Second

// ChannelTokenHeader selects the sales channel on every request
const ChannelTokenHeader = "vendure-token"

// Transport posts GraphQL operations to one Shop API endpoint
type Transport struct {
	endpoint     string
	channelToken string
	httpClient   *http.Client
}

// TransportOption configures a Transport
type TransportOption func(*Transport)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(c *http.Client) TransportOption {
	return func(t *Transport) {
		if c != nil {
			t.httpClient = c
		}
	}
}

// WithTimeout sets the per-request timeout of the default http.Client
func WithTimeout(d time.Duration) TransportOption {
	return func(t *Transport) {
		if d > 0 {
			t.httpClient = &http.Client{Timeout: d}
		}
	}
}

// NewTransport creates a Transport for the Shop API at endpoint
func NewTransport(endpoint, channelToken string, opts ...TransportOption) *Transport {
	t := &Transport{
		endpoint:     strings.TrimRight(endpoint, "/"),
		channelToken: channelToken,
		httpClient:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewHTTPClient wires a Client whose query and mutation channels share one
// HTTP transport configured from cfg
func NewHTTPClient(cfg *config.VendureConfig, opts ...TransportOption) *Client {
	t := NewTransport(cfg.ShopAPIURL, cfg.ChannelToken, opts...)
	return NewClient(t.Query, t.Mutate)
}

// Query is a RequestFunc for read-only operations
func (t *Transport) Query(ctx context.Context, doc Document, variables map[string]any) (json.RawMessage, error) {
	return t.do(ctx, "query", doc, variables)
}

// Mutate is a RequestFunc for state-changing operations
func (t *Transport) Mutate(ctx context.Context, doc Document, variables map[string]any) (json.RawMessage, error) {
	return t.do(ctx, "mutation", doc, variables)
}

func (t *Transport) do(ctx context.Context, channel string, doc Document, variables map[string]any) (json.RawMessage, error) {
	ctx, span := telemetry.StartProviderSpan(ctx, ProviderName, doc.Name, telemetry.Channel(channel))
	start := time.Now()
	data, err := t.doRequest(ctx, doc, variables)
	telemetry.EndProviderSpan(span, err)

	log := logger.L(ctx).With(
		zap.String("operation", doc.Name),
		zap.String("channel", channel),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		log.Debug("vendure operation failed", zap.Error(err))
		return nil, err
	}
	log.Debug("vendure operation completed")
	return data, nil
}

// doRequest sends one GraphQL POST and returns the data member of the answer
func (t *Transport) doRequest(ctx context.Context, doc Document, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:         doc.Source,
		OperationName: doc.Name,
		Variables:     variables,
	})
	if err != nil {
		return nil, fmt.Errorf("vendure: failed to encode %s: %w", doc.Name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("vendure: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if t.channelToken != "" {
		req.Header.Set(ChannelTokenHeader, t.channelToken)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vendure: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("vendure: failed to read response: %w", err)
	}

	telemetry.RecordHTTPStatus(ctx, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	var gqlResp graphQLResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return nil, fmt.Errorf("vendure: failed to parse response: %w", err)
	}
	if len(gqlResp.Errors) > 0 {
		return nil, GraphQLErrors(gqlResp.Errors)
	}
	return gqlResp.Data, nil
}
