package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"booking-gateway/internal/pkg/config"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	RefreshTokenHeader = "X-Refresh-Token"
	maxErrorBody       = 64 << 10
)

// Client talks to the marketplace REST API. It never retries: every failure is returned to
// the caller as an *APIError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.MarketplaceConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// NewClientWithHTTP is used by tests to point the client at an httptest server.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

type call struct {
	method string
	path   string
	query  url.Values
	tokens *Tokens
	body   any
}

// do performs the call and decodes the data member of the envelope into out, returning
// the envelope message.
func do[T any](ctx context.Context, c *Client, cl call, out *T) (string, error) {
	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return "", &APIError{Kind: KindTransport, Message: "failed to build request", err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", &APIError{Kind: KindTransport, Message: "request canceled", err: err}
		}
		c.logger.WarnContext(ctx, "marketplace call failed",
			slog.String("method", cl.method),
			slog.String("path", cl.path),
			slog.String("error", err.Error()))
		return "", &APIError{Kind: KindTransport, Message: "marketplace unreachable", err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", c.decodeError(ctx, cl, resp)
	}

	var env envelope[T]
	if resp.StatusCode == http.StatusNoContent {
		return "", nil
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return "", &APIError{Kind: KindDecode, Status: resp.StatusCode, Message: "invalid response body", err: err}
	}
	if out != nil {
		*out = env.Data
	}
	return env.Message, nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		raw, err := json.Marshal(cl.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.tokens != nil {
		if cl.tokens.Access != "" {
			req.Header.Set("Authorization", "Bearer "+cl.tokens.Access)
		}
		if cl.tokens.Refresh != "" {
			req.Header.Set(RefreshTokenHeader, cl.tokens.Refresh)
		}
	}
	return req, nil
}

func (c *Client) decodeError(ctx context.Context, cl call, resp *http.Response) error {
	apiErr := &APIError{
		Kind:    kindForStatus(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	var body errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		}
		apiErr.Errors = body.Errors
	}

	level := slog.LevelInfo
	if apiErr.Kind == KindUpstream {
		level = slog.LevelError
	}
	c.logger.Log(ctx, level, "marketplace returned error",
		slog.String("method", cl.method),
		slog.String("path", cl.path),
		slog.Int("status", resp.StatusCode),
		slog.String("kind", string(apiErr.Kind)),
		slog.String("message", apiErr.Message))

	return apiErr
}
