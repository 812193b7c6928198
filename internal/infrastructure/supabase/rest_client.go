package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fredonbytes/backend/internal/infrastructure/telemetry"
)

// maxResponseSize is the maximum allowed response size from the platform (10MB)
const maxResponseSize = 10 * 1024 * 1024

const defaultTimeout = 10 * time.Second

// RESTClient talks to GoTrue and PostgREST over HTTP with a single API key.
// It implements Connection and RecordWriter.
type RESTClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a RESTClient
type Option func(*RESTClient)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(c *http.Client) Option {
	return func(rc *RESTClient) {
		if c != nil {
			rc.httpClient = c
		}
	}
}

// WithTimeout sets the per-request timeout of the default http.Client
func WithTimeout(d time.Duration) Option {
	return func(rc *RESTClient) {
		if d > 0 {
			rc.httpClient = &http.Client{Timeout: d}
		}
	}
}

// NewRESTClient creates a client for the project at baseURL authenticated with apiKey
func NewRESTClient(baseURL, apiKey string, opts ...Option) *RESTClient {
	rc := &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// ---------------------------------------------------------------------------
// Authenticator
// ---------------------------------------------------------------------------

// SignInWithPassword exchanges credentials for a session with the password grant
func (c *RESTClient) SignInWithPassword(ctx context.Context, email, password string) (*AuthUser, error) {
	body, err := json.Marshal(passwordGrantRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("supabase: failed to encode credentials: %w", err)
	}

	ctx, span := telemetry.StartProviderSpan(ctx, ProviderName, "SignInWithPassword")
	respBody, err := c.doRequest(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", bytes.NewReader(body), nil)
	telemetry.EndProviderSpan(span, err)
	if err != nil {
		return nil, err
	}

	var resp tokenResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("supabase: failed to parse token response: %w", err)
	}
	if resp.User == nil || resp.User.ID == "" {
		return nil, nil
	}
	return resp.User, nil
}

// ---------------------------------------------------------------------------
// RecordReader / RecordWriter
// ---------------------------------------------------------------------------

// SelectOne fetches at most one row and decodes it into dst
func (c *RESTClient) SelectOne(ctx context.Context, q Query, dst any) (bool, error) {
	q.Limit = 1
	var rows []json.RawMessage
	if err := c.selectRows(ctx, "SelectOne", q, &rows); err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(rows[0], dst); err != nil {
		return false, fmt.Errorf("supabase: failed to decode %s row: %w", q.Table, err)
	}
	return true, nil
}

// SelectMany fetches every matching row into dst
func (c *RESTClient) SelectMany(ctx context.Context, q Query, dst any) error {
	return c.selectRows(ctx, "SelectMany", q, dst)
}

func (c *RESTClient) selectRows(ctx context.Context, op string, q Query, dst any) error {
	ctx, span := telemetry.StartProviderSpan(ctx, ProviderName, op, telemetry.Table(q.Table))
	respBody, err := c.doRequest(ctx, http.MethodGet, restPath(q), nil, nil)
	telemetry.EndProviderSpan(span, err)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(respBody, dst); err != nil {
		return fmt.Errorf("supabase: failed to decode %s rows: %w", q.Table, err)
	}
	return nil
}

// Insert adds one row without asking for it back
func (c *RESTClient) Insert(ctx context.Context, table string, values map[string]any) error {
	body, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("supabase: failed to encode %s row: %w", table, err)
	}

	headers := map[string]string{"Prefer": "return=minimal"}

	ctx, span := telemetry.StartProviderSpan(ctx, ProviderName, "Insert", telemetry.Table(table))
	_, err = c.doRequest(ctx, http.MethodPost, "/rest/v1/"+url.PathEscape(table), bytes.NewReader(body), headers)
	telemetry.EndProviderSpan(span, err)
	return err
}

// restPath renders /rest/v1/<table>?select=...&<col>=eq.<v>&limit=<n>
func restPath(q Query) string {
	params := url.Values{}
	params.Set("select", q.selectList())
	for _, f := range q.Filters {
		params.Set(f.Column, "eq."+f.Value)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return "/rest/v1/" + url.PathEscape(q.Table) + "?" + params.Encode()
}

// doRequest sends one authenticated request and returns the body of a 2xx answer
func (c *RESTClient) doRequest(ctx context.Context, method, path string, body io.Reader, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("supabase: failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("supabase: failed to read response: %w", err)
	}

	telemetry.RecordHTTPStatus(ctx, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newRemoteError(resp.StatusCode, respBody)
	}
	return respBody, nil
}
