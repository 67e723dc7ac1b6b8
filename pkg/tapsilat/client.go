// Package tapsilat is a typed client for the Tapsilat payment-orchestration API.
//
// Every operation is a single synchronous round trip (CreateOrder may add one
// best-effort follow-up). Nothing is retried, cached or logged. Failures are
// always returned as *pkg.APIError.
//
// A Client is immutable after construction and may be reused for sequential
// calls. Concurrent calls are safe only if the configured HTTPDoer is; the
// default *http.Client is.
package tapsilat

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

	"github.com/tapsilat/tapsilat-go/pkg"
	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

const (
	DefaultBaseURL = "https://panel.tapsilat.dev/api/v1"
	DefaultTimeout = 10 * time.Second
)

// HTTPDoer executes HTTP requests. *http.Client implements it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// HTTPClient defaults to a plain *http.Client.
	HTTPClient HTTPDoer
}

type Option func(*Config)

func WithBaseURL(baseURL string) Option {
	return func(c *Config) { c.BaseURL = baseURL }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) { c.Timeout = timeout }
}

func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Config) { c.HTTPClient = doer }
}

type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	http    HTTPDoer
}

func NewClient(apiKey string, opts ...Option) *Client {
	cfg := Config{APIKey: apiKey}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClientFromConfig(cfg)
}

func NewClientFromConfig(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{}
	}
	return &Client{apiKey: cfg.APIKey, baseURL: baseURL, timeout: timeout, http: doer}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// errorEnvelope is the body of every non-2xx API answer.
type errorEnvelope struct {
	Code  any `json:"code"`
	Error any `json:"error"`
}

// execute performs one request and decodes the answer.
//
// Status >= 400 becomes an APIError built from the {"code","error"} envelope,
// falling back to the reason phrase (empty body) or the raw body (not JSON).
// A request that never gets a response, a payload that does not encode, and a
// success body that is not JSON all become status-0 APIErrors. An empty
// success body decodes to an empty object.
func (c *Client) execute(ctx context.Context, method, path string, query url.Values, payload any) (entities.Raw, error) {
	raw, _, err := c.roundTrip(ctx, method, path, query, payload)
	return raw, err
}

// executeInto is execute followed by a typed decode of the answer.
func (c *Client) executeInto(ctx context.Context, method, path string, payload, dst any) error {
	raw, _, err := c.roundTrip(ctx, method, path, nil, payload)
	if err != nil {
		return err
	}
	if err := raw.Decode(dst); err != nil {
		return pkg.NewTransportError(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, payload any) (entities.Raw, int, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return entities.Raw{}, 0, pkg.NewTransportError(fmt.Errorf("encode request: %w", err))
		}
		reqBody = bytes.NewReader(b)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reqBody)
	if err != nil {
		return entities.Raw{}, 0, pkg.NewTransportError(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entities.Raw{}, 0, pkg.NewTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.Raw{}, 0, pkg.NewTransportError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return entities.Raw{}, resp.StatusCode, decodeErrorResponse(resp, body)
	}

	if len(body) == 0 {
		return entities.NewRaw(map[string]any{}), resp.StatusCode, nil
	}
	var out any
	if err := json.Unmarshal(body, &out); err != nil {
		return entities.Raw{}, resp.StatusCode, pkg.NewTransportError(fmt.Errorf("invalid JSON response: %w", err))
	}
	return entities.NewRaw(out), resp.StatusCode, nil
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func decodeErrorResponse(resp *http.Response, body []byte) *pkg.APIError {
	if len(body) == 0 {
		return pkg.NewAPIError(resp.StatusCode, pkg.CodeUnknown, reasonPhrase(resp))
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return pkg.NewAPIError(resp.StatusCode, pkg.CodeUnknown, string(body))
	}

	code := pkg.CodeUnknown
	if n, ok := env.Code.(float64); ok {
		code = int(n)
	}
	msg := string(body)
	if s, ok := env.Error.(string); ok {
		msg = s
	}
	return pkg.NewAPIError(resp.StatusCode, code, msg)
}

// reasonPhrase prefers the phrase the server sent on the status line.
func reasonPhrase(resp *http.Response) string {
	if phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))); phrase != "" {
		return phrase
	}
	if phrase := http.StatusText(resp.StatusCode); phrase != "" {
		return phrase
	}
	return "HTTP error with no content"
}

// pageQuery builds page/per_page parameters, leaving out zero values.
func pageQuery(page, perPage int) url.Values {
	q := url.Values{}
	if page != 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage != 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	return q
}
