// Package gateway is the client for the consultation backend: JSON and
// multipart HTTP endpoints plus the per-consultation websocket channel.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "http://localhost:8000"

	// RequestIDHeader is set on every outgoing request.
	RequestIDHeader = "X-Request-ID"
)

// ErrNoCredential may be returned by a CredentialSource that has no key.
var ErrNoCredential = errors.New("no credential stored")

// CredentialSource supplies the API key sent as a bearer token.
type CredentialSource interface {
	GetAPIKey() (string, error)
}

type Config struct {
	BaseURL string
	// WebSocketURL defaults to BaseURL with the scheme switched to ws/wss.
	WebSocketURL string
	// Timeout bounds each HTTP request. Zero means no client-side timeout.
	Timeout time.Duration
	// RequestsPerSecond throttles outgoing HTTP requests when positive.
	RequestsPerSecond float64
	Credentials       CredentialSource
	HTTPClient        *http.Client
	Dialer            *websocket.Dialer
}

type Client struct {
	baseURL     string
	wsURL       string
	http        *http.Client
	dialer      *websocket.Dialer
	limiter     *rate.Limiter
	credentials CredentialSource
}

func New(cfg Config) (*Client, error) {
	base := NormalizeBaseURL(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}

	wsURL := NormalizeBaseURL(cfg.WebSocketURL)
	if wsURL == "" {
		wsURL = WebSocketURLFor(base)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	dialer := cfg.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	c := &Client{
		baseURL:     base,
		wsURL:       wsURL,
		http:        httpClient,
		dialer:      dialer,
		credentials: cfg.Credentials,
	}
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return c, nil
}

func (c *Client) BaseURL() string      { return c.baseURL }
func (c *Client) WebSocketURL() string { return c.wsURL }

// NormalizeBaseURL trims whitespace and trailing slashes.
func NormalizeBaseURL(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), "/")
}

// WebSocketURLFor maps an http(s) base URL to the matching ws(s) URL.
func WebSocketURLFor(base string) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	default:
		return base
	}
}

type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	accept      string
}

// do performs req and returns the response body of a 2xx response. Every
// failure comes back as a *FetchError.
func (c *Client) do(ctx context.Context, req request) ([]byte, http.Header, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, nil, &FetchError{Op: req.op, Err: err}
		}
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, req.body)
	if err != nil {
		return nil, nil, &FetchError{Op: req.op, Err: err}
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	accept := req.accept
	if accept == "" {
		accept = "application/json"
	}
	httpReq.Header.Set("Accept", accept)
	httpReq.Header.Set(RequestIDHeader, uuid.NewString())
	if key := c.apiKey(); key != "" {
		httpReq.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, nil, &FetchError{Op: req.op, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &FetchError{Op: req.op, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, &FetchError{
			Op:         req.op,
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(payload),
		}
	}
	return payload, resp.Header, nil
}

func (c *Client) doJSON(ctx context.Context, req request, out any) error {
	payload, _, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &FetchError{Op: req.op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	return c.doJSON(ctx, request{op: op, method: http.MethodGet, path: path}, out)
}

func (c *Client) postJSON(ctx context.Context, op, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &FetchError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
	}
	return c.doJSON(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        path,
		body:        bytes.NewReader(body),
		contentType: "application/json",
	}, out)
}

func (c *Client) apiKey() string {
	if c.credentials == nil {
		return ""
	}
	key, err := c.credentials.GetAPIKey()
	if err != nil {
		if !errors.Is(err, ErrNoCredential) {
			log.Printf("gateway: reading api key: %v", err)
		}
		return ""
	}
	return strings.TrimSpace(key)
}
