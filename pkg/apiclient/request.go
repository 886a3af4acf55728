package apiclient

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
)

// Request describes a single outgoing call. It is built per call and never shared.
type Request struct {
	Path       string
	Method     string
	Headers    map[string]string
	Query      Query
	Body       any
	Credential Credential
}

func (r Request) method() string {
	if m := strings.ToUpper(strings.TrimSpace(r.Method)); m != "" {
		return m
	}
	return http.MethodGet
}

// Credential is the bearer token attached to authenticated calls.
type Credential struct {
	token string
}

// Bearer wraps a token. An empty token yields a credential that adds no header.
func Bearer(token string) Credential {
	return Credential{token: strings.TrimSpace(token)}
}

// IsZero reports whether the credential carries no token.
func (c Credential) IsZero() bool { return c.token == "" }

// Header renders the Authorization header value.
func (c Credential) Header() string {
	if c.token == "" {
		return ""
	}
	return "Bearer " + c.token
}

// String hides the token.
func (c Credential) String() string {
	if c.token == "" {
		return "<none>"
	}
	return "Bearer <redacted>"
}

type queryParam struct {
	key   string
	value string
}

// Query is an ordered set of query parameters. Absent values are dropped on Add.
type Query struct {
	params []queryParam
}

// Add appends key=value when value is present, non-nil and renders non-empty.
// Pointers are dereferenced.
func (q *Query) Add(key string, value any) *Query {
	key = strings.TrimSpace(key)
	if key == "" {
		return q
	}
	s, ok := queryValue(value)
	if !ok {
		return q
	}
	q.params = append(q.params, queryParam{key: key, value: s})
	return q
}

// Len returns the number of kept parameters.
func (q Query) Len() int { return len(q.params) }

// Encode renders the parameters in insertion order without a leading '?'.
func (q Query) Encode() string {
	if len(q.params) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

func queryValue(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	var s string
	switch v := rv.Interface().(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	if s == "" {
		return "", false
	}
	return s, true
}
