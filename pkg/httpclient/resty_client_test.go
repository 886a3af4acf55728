package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientSendsMethodHeadersAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("X-Test"); got != "1" {
			t.Errorf("missing header, got %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		if string(raw) != `{"a":1}` {
			t.Errorf("unexpected body %q", raw)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	resp, err := client.Do(context.Background(), http.MethodPost, srv.URL, map[string]string{"X-Test": "1"}, []byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode() != http.StatusCreated || !resp.IsSuccess() {
		t.Fatalf("unexpected status %d", resp.StatusCode())
	}
	if string(resp.Body()) != `{"ok":true}` {
		t.Fatalf("unexpected body %q", resp.Body())
	}
}

func TestRestyClientSendsBodyOnGet(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got = string(raw)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewRestyClient(time.Second)
	if _, err := client.Do(context.Background(), http.MethodGet, srv.URL, nil, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got != `{"a":1}` {
		t.Fatalf("GET body not delivered, server saw %q", got)
	}
}

func TestRestyClientReturnsResponseOnNon2xx(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewRestyClient(time.Second)
	resp, err := client.Do(context.Background(), "", srv.URL, nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.IsSuccess() {
		t.Fatalf("expected failure status, got %d", resp.StatusCode())
	}
	if calls != 1 {
		t.Fatalf("expected exactly one round trip, got %d", calls)
	}
}

func TestRestyClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewRestyClient(time.Second)
	if _, err := client.Do(context.Background(), http.MethodGet, url, nil, nil); err == nil {
		t.Fatalf("expected transport error for closed server")
	}
}
