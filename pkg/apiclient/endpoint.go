package apiclient

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoint is the fixed base address every request path is appended to.
// The zero value is unusable; build one with NewEndpoint.
type Endpoint struct {
	base string
}

// NewEndpoint validates raw as an absolute http(s) URL and strips trailing slashes.
func NewEndpoint(raw string) (Endpoint, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return Endpoint{}, fmt.Errorf("base endpoint is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Endpoint{}, fmt.Errorf("parse base endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Endpoint{}, fmt.Errorf("base endpoint %q must use http or https", raw)
	}
	if u.Host == "" {
		return Endpoint{}, fmt.Errorf("base endpoint %q has no host", raw)
	}
	return Endpoint{base: raw}, nil
}

// MustEndpoint is NewEndpoint for static values; it panics on error.
func MustEndpoint(raw string) Endpoint {
	e, err := NewEndpoint(raw)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Endpoint) String() string { return e.base }

// IsZero reports whether the endpoint was never initialized.
func (e Endpoint) IsZero() bool { return e.base == "" }

// Resolve concatenates the base with path and the encoded query.
func (e Endpoint) Resolve(path string, q Query) string {
	target := e.base + path
	qs := q.Encode()
	if qs == "" {
		return target
	}
	if strings.Contains(path, "?") {
		return target + "&" + qs
	}
	return target + "?" + qs
}
