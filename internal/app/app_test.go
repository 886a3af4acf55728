package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aurevix/gtjiu-client/internal/config"
	"github.com/aurevix/gtjiu-client/pkg/gtjiu"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		AppName:                "gtjiu",
		APIBaseURL:             baseURL,
		HTTPTimeout:            2 * time.Second,
		SessionStore:           "memory",
		SessionTTL:             time.Hour,
		SessionCleanupInterval: time.Hour,
		OutputFormat:           "json",
	}
}

func TestAppLoginStoresSessionForLaterCalls(t *testing.T) {
	var lastAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		switch r.URL.Path {
		case "/login":
			_, _ = w.Write([]byte(`{"message":"Login efetuado","token":"tok-1","nome":"Ana"}`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	a, err := New(testConfig(srv.URL), nil, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if _, err := a.RequireToken(); err == nil {
		t.Fatalf("expected not-logged-in error")
	}

	sess, err := a.Service().Login(context.Background(), gtjiu.Credentials{Email: "ana@gt.com", Senha: "x"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := a.SaveSession(sess.Token); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	token, err := a.RequireToken()
	if err != nil || token != "tok-1" {
		t.Fatalf("RequireToken = %q, %v", token, err)
	}
	if _, err := a.Service().MedalhasDoAluno(context.Background(), token, "1"); err != nil {
		t.Fatalf("MedalhasDoAluno: %v", err)
	}
	if lastAuth != "Bearer tok-1" {
		t.Fatalf("stored token not sent, got %q", lastAuth)
	}

	if err := a.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if token, _ := a.Token(); token != "" {
		t.Fatalf("expected cleared session, got %q", token)
	}
}

func TestAppExplicitTokenWins(t *testing.T) {
	a, err := New(testConfig("http://localhost:1"), nil, Options{Token: " explicit "})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if err := a.SaveSession("stored"); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if token, _ := a.Token(); token != "explicit" {
		t.Fatalf("Token = %q", token)
	}
}

func TestAppResolvesProfile(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Env")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	file := filepath.Join(t.TempDir(), "profiles.yaml")
	content := "profiles:\n  - id: local\n    base_url: " + srv.URL + "\n    headers:\n      X-Env: local\n  - id: off\n    base_url: http://off\n    enabled: false\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write profiles: %v", err)
	}

	cfg := testConfig("https://unused.example")
	cfg.ProfilesFile = file

	a, err := New(cfg, nil, Options{Profile: "local"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if a.Endpoint().String() != srv.URL {
		t.Fatalf("profile base url not used: %s", a.Endpoint())
	}
	if _, err := a.Service().ListarAcademias(context.Background(), gtjiu.AcademiaFilter{}); err != nil {
		t.Fatalf("ListarAcademias: %v", err)
	}
	if gotHeader != "local" {
		t.Fatalf("profile header not sent, got %q", gotHeader)
	}

	if _, err := New(cfg, nil, Options{Profile: "off"}); err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Fatalf("expected disabled profile error, got %v", err)
	}
	if _, err := New(cfg, nil, Options{Profile: "nope"}); err == nil {
		t.Fatalf("expected unknown profile error")
	}

	cfg.ProfilesFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := New(cfg, nil, Options{Profile: "local"}); err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing file error, got %v", err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(nil, nil, Options{}); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := New(testConfig("not a url"), nil, Options{}); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
	cfg := testConfig("http://localhost")
	cfg.SessionStore = "redis"
	if _, err := New(cfg, nil, Options{}); err == nil {
		t.Fatalf("expected error for unsupported session store")
	}
}
