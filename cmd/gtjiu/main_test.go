package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aurevix/gtjiu-client/internal/config"
)

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		AppName:                "gtjiu",
		LogLevel:               "error",
		OutputFormat:           "json",
		APIBaseURL:             baseURL,
		HTTPTimeout:            2 * time.Second,
		SessionStore:           "bbolt",
		SessionPath:            filepath.Join(t.TempDir(), "session.db"),
		SessionTTL:             time.Hour,
		SessionCleanupInterval: time.Hour,
	}
}

func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	c := newCLI(func() (*config.Config, error) {
		cp := *cfg
		return &cp, nil
	})
	defer c.close()

	root := c.rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLoginPersistsSessionAcrossInvocations(t *testing.T) {
	var auths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/login":
			_, _ = w.Write([]byte(`{"message":"Login efetuado","token":"tok-9","nome":"Ana"}`))
		case "/avisos":
			_, _ = w.Write([]byte(`{"id":1,"titulo":"Treino"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	cfg := testConfig(t, srv.URL)

	out, err := execute(t, cfg, "login", "--email", "ana@gt.com", "--senha", "x")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	var sess map[string]any
	if err := json.Unmarshal([]byte(out), &sess); err != nil || sess["token"] != "tok-9" {
		t.Fatalf("unexpected login output %q (%v)", out, err)
	}

	if _, err := execute(t, cfg, "avisos", "create", "--titulo", "Treino", "--texto", "Sábado"); err != nil {
		t.Fatalf("avisos create: %v", err)
	}
	if got := auths[len(auths)-1]; got != "Bearer tok-9" {
		t.Fatalf("stored token not used, got %q", got)
	}

	if _, err := execute(t, cfg, "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	_, err = execute(t, cfg, "avisos", "create", "--titulo", "x", "--texto", "y")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected not-logged-in error, got %v", err)
	}
}

func TestListAcademiasYAMLOutput(t *testing.T) {
	var uri string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uri = r.URL.RequestURI()
		_, _ = w.Write([]byte(`[{"id":1,"nome":"GT","mestre":"Zé","cidade":"SP","bairro":"Centro","telefone":"","endereco":"","email":""}]`))
	}))
	defer srv.Close()

	out, err := execute(t, testConfig(t, srv.URL), "academias", "list", "--cidade", "SP", "-o", "yaml")
	if err != nil {
		t.Fatalf("academias list: %v", err)
	}
	if uri != "/academias?cidade=SP" {
		t.Fatalf("uri = %s", uri)
	}
	if !strings.Contains(out, "- id: 1\n") || !strings.Contains(out, "nome: GT\n") {
		t.Fatalf("unexpected yaml output %q", out)
	}
}

func TestAPIErrorMessageIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"E-mail já cadastrado."}`))
	}))
	defer srv.Close()

	_, err := execute(t, testConfig(t, srv.URL), "register", "--nome", "A", "--email", "a@b.com", "--senha", "x")
	if err == nil || err.Error() != "E-mail já cadastrado." {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestRequestCommandPassesThrough(t *testing.T) {
	var (
		method string
		body   []byte
		header string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		body, _ = io.ReadAll(r.Body)
		header = r.Header.Get("X-Debug")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	out, err := execute(t, testConfig(t, srv.URL), "request", "patch", "medalhas/1", "-d", `{"status_validacao":"aprovado"}`, "-H", "X-Debug=1")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if method != http.MethodPatch || string(body) != `{"status_validacao":"aprovado"}` || header != "1" {
		t.Fatalf("unexpected request %s %s %q", method, body, header)
	}
	if strings.TrimSpace(out) != "null" {
		t.Fatalf("expected null output for empty body, got %q", out)
	}

	if _, err := execute(t, testConfig(t, srv.URL), "request", "post", "/x", "-d", "{"); err == nil {
		t.Fatalf("expected invalid json error")
	}
}

func TestFilterFlagSortsKeys(t *testing.T) {
	f := filterFlag(map[string]string{"z": "1", "a": "", "m": "2"})
	if len(f) != 3 || f[0].Key != "a" || f[1].Key != "m" || f[2].Key != "z" {
		t.Fatalf("unexpected filter %+v", f)
	}
}
