package apiclient

import (
	"testing"
)

func TestQueryDropsAbsentValuesAndKeepsOrder(t *testing.T) {
	var nilStr *string
	sp := "SP"
	zero := 0

	q := Query{}
	q.Add("cidade", "SP").
		Add("bairro", "").
		Add("academia_id", nil).
		Add("faixa", nilStr).
		Add("estado", &sp).
		Add("pagina", &zero).
		Add("", "ignored")

	if got := q.Encode(); got != "cidade=SP&estado=SP&pagina=0" {
		t.Fatalf("Encode = %q", got)
	}
	if q.Len() != 3 {
		t.Fatalf("Len = %d", q.Len())
	}
}

func TestQueryEmptyEncodesToEmptyString(t *testing.T) {
	q := Query{}
	q.Add("bairro", "")
	if q.Encode() != "" {
		t.Fatalf("expected empty query, got %q", q.Encode())
	}
}

func TestEndpointResolve(t *testing.T) {
	e := MustEndpoint("https://gt-jiu-app.onrender.com/")
	if e.String() != "https://gt-jiu-app.onrender.com" {
		t.Fatalf("trailing slash not stripped: %s", e)
	}

	q := Query{}
	q.Add("cidade", "BH")
	if got := e.Resolve("/academias", q); got != "https://gt-jiu-app.onrender.com/academias?cidade=BH" {
		t.Fatalf("Resolve = %s", got)
	}
	if got := e.Resolve("/avisos?tipo=geral", q); got != "https://gt-jiu-app.onrender.com/avisos?tipo=geral&cidade=BH" {
		t.Fatalf("Resolve with existing query = %s", got)
	}
	if got := e.Resolve("/login", Query{}); got != "https://gt-jiu-app.onrender.com/login" {
		t.Fatalf("Resolve without query = %s", got)
	}
}

func TestNewEndpointRejectsInvalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "ftp://host", "gt-jiu-app.onrender.com", "http://"} {
		if _, err := NewEndpoint(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestCredential(t *testing.T) {
	if !Bearer("").IsZero() || Bearer("").Header() != "" {
		t.Fatalf("empty credential must add no header")
	}
	c := Bearer(" abc ")
	if c.Header() != "Bearer abc" {
		t.Fatalf("Header = %q", c.Header())
	}
	if c.String() == "Bearer abc" {
		t.Fatalf("String must not leak the token")
	}
}

func TestRequestMethodDefaultsToGet(t *testing.T) {
	if m := (Request{}).method(); m != "GET" {
		t.Fatalf("method = %s", m)
	}
	if m := (Request{Method: " patch "}).method(); m != "PATCH" {
		t.Fatalf("method = %s", m)
	}
}

func TestExtractMessagePrecedence(t *testing.T) {
	ex := DefaultExtractors()
	cases := []struct {
		decoded any
		want    string
	}{
		{decoded: map[string]any{"detail": "E-mail já cadastrado."}, want: "E-mail já cadastrado."},
		{decoded: map[string]any{"detail": nil}, want: DefaultErrorMessage},
		{decoded: "Internal Server Error", want: "Internal Server Error"},
		{decoded: "  ", want: "  "},
		{decoded: "", want: DefaultErrorMessage},
		{decoded: map[string]any{"detail": false}, want: DefaultErrorMessage},
		{decoded: map[string]any{"detail": 0.0}, want: DefaultErrorMessage},
		{decoded: map[string]any{"detail": ""}, want: DefaultErrorMessage},
		{decoded: map[string]any{"detail": true}, want: "true"},
		{decoded: nil, want: DefaultErrorMessage},
		{decoded: 500.0, want: DefaultErrorMessage},
		{decoded: map[string]any{"detail": 7.0}, want: "7"},
	}
	for _, tc := range cases {
		if got := extractMessage(ex, tc.decoded); got != tc.want {
			t.Fatalf("extractMessage(%#v) = %q, want %q", tc.decoded, got, tc.want)
		}
	}
}

func TestExtractMessageWithoutFallback(t *testing.T) {
	got := extractMessage([]Extractor{nil, PlainString{}}, map[string]any{})
	if got != DefaultErrorMessage {
		t.Fatalf("expected default message when no extractor matches, got %q", got)
	}
	custom := ExtractorFunc(func(any) (string, bool) { return "custom", true })
	if got := extractMessage([]Extractor{custom}, nil); got != "custom" {
		t.Fatalf("ExtractorFunc ignored, got %q", got)
	}
}
