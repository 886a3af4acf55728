package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aurevix/gtjiu-client/pkg/httpclient"
	"github.com/google/uuid"
)

const (
	defaultTimeout  = 30 * time.Second
	headerRequestID = "X-Request-Id"
)

// Client issues requests against a single Endpoint and normalizes every
// response into a decoded value or an error. It holds no per-call state and
// is safe for concurrent use.
type Client struct {
	endpoint   Endpoint
	transport  httpclient.Client
	headers    map[string]string
	extractors []Extractor
	requestIDs bool
	log        Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHeaders sets client-wide headers. They override the JSON default and
// are overridden by per-request headers.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[http.CanonicalHeaderKey(k)] = v
		}
	}
}

// WithExtractors replaces the error-message precedence list.
func WithExtractors(extractors ...Extractor) Option {
	return func(c *Client) {
		if len(extractors) > 0 {
			c.extractors = append([]Extractor(nil), extractors...)
		}
	}
}

// WithLogger attaches a debug logger.
func WithLogger(log Logger) Option {
	return func(c *Client) { c.log = ensureLogger(log) }
}

// WithRequestIDs toggles the generated X-Request-Id header.
func WithRequestIDs(enabled bool) Option {
	return func(c *Client) { c.requestIDs = enabled }
}

// New builds a client for endpoint. A nil transport falls back to a resty client.
func New(endpoint Endpoint, transport httpclient.Client, opts ...Option) (*Client, error) {
	if endpoint.IsZero() {
		return nil, fmt.Errorf("apiclient: endpoint is required")
	}
	if transport == nil {
		transport = httpclient.NewRestyClient(defaultTimeout)
	}
	c := &Client{
		endpoint:   endpoint,
		transport:  transport,
		headers:    map[string]string{"Content-Type": "application/json"},
		extractors: DefaultExtractors(),
		requestIDs: true,
		log:        noopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Endpoint returns the base endpoint the client is bound to.
func (c *Client) Endpoint() Endpoint { return c.endpoint }

// Do performs one round trip and returns the decoded body: a JSON value
// (map[string]any, []any, string, float64, bool), the raw text when the body
// is not JSON, or nil for an empty body. On failure the result is always nil;
// an *Error keeps the decoded failure body in its Body field.
func (c *Client) Do(ctx context.Context, req Request) (any, error) {
	_, decoded, err := c.roundTrip(ctx, req)
	return decoded, err
}

// DoInto performs the call and decodes a successful JSON body into out.
// An empty body leaves out untouched.
func (c *Client) DoInto(ctx context.Context, req Request, out any) error {
	raw, _, err := c.roundTrip(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.method(), req.Path, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, req Request) ([]byte, any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	method := req.method()
	target := c.endpoint.Resolve(req.Path, req.Query)

	var payload []byte
	if req.Body != nil {
		enc, err := json.Marshal(req.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("encode %s %s body: %w", method, req.Path, err)
		}
		payload = enc
	}

	headers := c.mergeHeaders(req)
	start := time.Now()
	resp, err := c.transport.Do(ctx, method, target, headers, payload)
	if err != nil {
		c.log.WarnObj("api request failed", "api_transport_error", map[string]any{
			"method":     method,
			"path":       req.Path,
			"request_id": headers[headerRequestID],
			"error":      err.Error(),
		})
		return nil, nil, &TransportError{Method: method, URL: target, Err: err}
	}

	raw := resp.Body()
	decoded := decodeBody(raw)
	c.log.DebugObj("api request completed", "api_request", map[string]any{
		"method":     method,
		"path":       req.Path,
		"status":     resp.StatusCode(),
		"request_id": headers[headerRequestID],
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	if !resp.IsSuccess() {
		return nil, nil, &Error{
			StatusCode: resp.StatusCode(),
			Message:    extractMessage(c.extractors, decoded),
			Body:       decoded,
		}
	}
	return raw, decoded, nil
}

// mergeHeaders layers defaults, client headers, the credential and caller headers.
func (c *Client) mergeHeaders(req Request) map[string]string {
	out := make(map[string]string, len(c.headers)+len(req.Headers)+2)
	for k, v := range c.headers {
		out[k] = v
	}
	for k, v := range req.Headers {
		out[http.CanonicalHeaderKey(k)] = v
	}
	if auth := req.Credential.Header(); auth != "" {
		out["Authorization"] = auth
	}
	if c.requestIDs {
		if _, ok := out[headerRequestID]; !ok {
			out[headerRequestID] = uuid.NewString()
		}
	}
	return out
}

// decodeBody parses JSON, falling back to the raw text, or nil when empty.
func decodeBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err == nil {
		return v
	}
	return string(raw)
}
