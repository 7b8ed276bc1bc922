// Package sigment provides the Sigment Go SDK for interacting with the
// Sigment API: an authenticated, organization-scoped request client plus
// typed service clients for the dashboard's API surface.
package sigment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/sigment/sigment-go/auth"
	"github.com/sigment/sigment-go/headers"
)

const defaultBaseURL = "http://localhost:8000"
const apiPrefix = "/api/v1"
const defaultUserAgent = "sigment-go/" + Version

// Config wires authentication, base URL, and observability for the client.
type Config struct {
	// BaseURL is the API root without the /api/v1 prefix; the prefix is
	// always appended. Defaults to http://localhost:8000.
	BaseURL string

	// Resolver supplies the per-request identity. When nil, a resolver
	// backed by the default credential file is used.
	Resolver auth.Resolver

	// OnUnauthorized fires exactly once per call that ends in HTTP 401.
	// Dashboard callers navigate to /login here; the call itself still
	// fails with UnauthorizedError and is never retried.
	OnUnauthorized func()

	HTTPClient *http.Client
	Telemetry  TelemetryHooks

	// Logger receives debug lines for every request and response.
	// Nil disables logging.
	Logger    *zerolog.Logger
	UserAgent string
}

// Client issues authenticated requests against the Sigment API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	resolver       auth.Resolver
	onUnauthorized func()
	telemetry      TelemetryHooks
	logger         zerolog.Logger
	userAgent      string

	// Grouped service clients.
	Orgs         *OrgsClient
	Notes        *NotesClient
	Feed         *FeedClient
	Clusters     *ClustersClient
	Integrations *IntegrationsClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = defaultResolver()
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client := &Client{
		baseURL:        normalized + apiPrefix,
		httpClient:     httpClient,
		resolver:       resolver,
		onUnauthorized: cfg.OnUnauthorized,
		telemetry:      cfg.Telemetry,
		logger:         logger,
		userAgent:      ua,
	}
	client.Orgs = &OrgsClient{client: client}
	client.Notes = &NotesClient{client: client}
	client.Feed = &FeedClient{client: client}
	client.Clusters = &ClustersClient{client: client}
	client.Integrations = &IntegrationsClient{client: client}
	return client, nil
}

func defaultResolver() auth.Resolver {
	path, err := auth.DefaultStorePath()
	if err != nil {
		return auth.Static{}
	}
	return auth.ChainResolver{Store: auth.NewFileStore(path)}
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ConfigError{Reason: "base URL required"}
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", ConfigError{Reason: fmt.Sprintf("invalid base URL: %v", err)}
	}
	if u.Scheme == "" {
		return "", ConfigError{Reason: "base URL missing scheme (http/https)"}
	}
	if u.Host == "" {
		return "", ConfigError{Reason: "base URL missing host"}
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

// requestOptions is per-call configuration; discarded after the call.
type requestOptions struct {
	headers  http.Header
	skipAuth bool
	identity *auth.Identity
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

// WithHeader adds a caller-supplied header. Caller headers are applied
// last and win over the client's defaults on conflict.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = http.Header{}
		}
		o.headers.Set(key, value)
	}
}

// WithIdentity bypasses the resolver and attaches the given identity.
func WithIdentity(id auth.Identity) RequestOption {
	return func(o *requestOptions) { o.identity = &id }
}

// SkipAuth omits the bearer token and organization id entirely. Used for
// public endpoints; the Content-Type default still applies.
func SkipAuth() RequestOption {
	return func(o *requestOptions) { o.skipAuth = true }
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts...)
}

// Patch issues a PATCH with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPatch, path, body, out, opts...)
}

// Delete issues a DELETE. A 204 response yields no decode.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, opts...)
}

// do performs exactly one network call: no retry, no backoff, no queuing.
func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	var reqOpts requestOptions
	for _, opt := range opts {
		opt(&reqOpts)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: "encode request", Cause: err}
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), reader)
	if err != nil {
		return &TransportError{Op: "build request", Cause: err}
	}
	c.composeHeaders(ctx, req, reqOpts)

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	//nolint:errcheck // best-effort cleanup on return
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: "decode response", Cause: err}
	}
	return nil
}

// composeHeaders layers headers in a fixed order: content type, bearer
// token, organization id, correlation ids, then caller-supplied headers,
// which win on conflict.
func (c *Client) composeHeaders(ctx context.Context, req *http.Request, opts requestOptions) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if !opts.skipAuth {
		var id auth.Identity
		if opts.identity != nil {
			id = *opts.identity
		} else {
			id = c.resolver.Resolve(ctx)
		}
		if id.Token != "" {
			req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(id.Token))
		}
		if id.OrganizationID != "" {
			req.Header.Set(headers.OrganizationID, id.OrganizationID)
		}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(headers.RequestID, uuid.NewString())
	injectTraceparent(ctx, req)

	for key, values := range opts.headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(ctx, req)
	}
	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("http request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(ctx, req, resp, err, latency)
	}
	c.telemetry.metric(ctx, "sigment_http_request_latency_ms", float64(latency.Milliseconds()), map[string]string{
		"path": req.URL.Path,
	})
	if err != nil {
		c.logger.Debug().Err(err).Str("url", req.URL.String()).Msg("http request failed")
		return nil, &TransportError{Op: "request", Cause: err}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("url", req.URL.String()).
		Dur("latency", latency).
		Msg("http response")

	if resp.StatusCode >= 400 {
		defer func() { _ = resp.Body.Close() }()
		apiErr := decodeAPIError(resp)
		var unauthorized *UnauthorizedError
		if errors.As(apiErr, &unauthorized) && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, apiErr
	}
	return resp, nil
}

// buildURL joins the versioned base with a relative endpoint path. The
// leading slash on path is optional and normalized to exactly one.
func (c *Client) buildURL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func injectTraceparent(ctx context.Context, req *http.Request) {
	span := trace.SpanFromContext(ctx)
	sc := span.SpanContext()
	if !sc.IsValid() {
		return
	}
	traceparent := fmt.Sprintf("00-%s-%s-01", sc.TraceID().String(), sc.SpanID().String())
	req.Header.Set("Traceparent", traceparent)
}
