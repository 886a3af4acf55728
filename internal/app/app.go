package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aurevix/gtjiu-client/internal/config"
	"github.com/aurevix/gtjiu-client/internal/logger"
	"github.com/aurevix/gtjiu-client/internal/profiles"
	"github.com/aurevix/gtjiu-client/internal/storage"
	"github.com/aurevix/gtjiu-client/pkg/apiclient"
	"github.com/aurevix/gtjiu-client/pkg/gtjiu"
	"github.com/aurevix/gtjiu-client/pkg/httpclient"
)

// Options carries per-invocation overrides (CLI flags).
type Options struct {
	Profile string
	Token   string
}

// App wires configuration, transport, the request normalizer, the typed
// service and the session store.
type App struct {
	cfg      *config.Config
	log      logger.Logger
	endpoint apiclient.Endpoint
	client   *apiclient.Client
	service  *gtjiu.Service
	store    storage.Store
	token    string
}

// New builds the runtime from config.
func New(cfg *config.Config, log logger.Logger, opts Options) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	target, err := resolveTarget(cfg, opts.Profile)
	if err != nil {
		return nil, err
	}
	endpoint, err := apiclient.NewEndpoint(target.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("api endpoint: %w", err)
	}
	log.InfoObj("api target resolved", "api_target", map[string]any{
		"profile":         target.ID,
		"base_url":        endpoint.String(),
		"timeout_seconds": target.TimeoutSeconds,
	})

	transport := httpclient.NewRestyClient(time.Duration(target.TimeoutSeconds) * time.Second)
	client, err := apiclient.New(endpoint, transport,
		apiclient.WithHeaders(target.Headers),
		apiclient.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	store, err := storage.NewStore(cfg.SessionStore, cfg.SessionPath, storage.Options{
		TokenTTL:        cfg.SessionTTL,
		CleanupInterval: cfg.SessionCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init session storage: %w", err)
	}
	log.DebugObj("session storage initialized", "storage_config", map[string]any{
		"type":                     cfg.SessionStore,
		"path":                     cfg.SessionPath,
		"token_ttl_seconds":        int(cfg.SessionTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.SessionCleanupInterval.Seconds()),
	})

	return &App{
		cfg:      cfg,
		log:      log,
		endpoint: endpoint,
		client:   client,
		service:  gtjiu.NewService(client),
		store:    store,
		token:    strings.TrimSpace(opts.Token),
	}, nil
}

// resolveTarget picks the API target: a named profile when requested,
// otherwise api_base_url from config.
func resolveTarget(cfg *config.Config, override string) (profiles.Profile, error) {
	fallback := profiles.Profile{
		ID:             "default",
		BaseURL:        cfg.APIBaseURL,
		TimeoutSeconds: int(cfg.HTTPTimeout / time.Second),
	}

	name := strings.TrimSpace(override)
	if name == "" {
		name = strings.TrimSpace(cfg.Profile)
	}
	if name == "" {
		return fallback, nil
	}

	reg, err := profiles.Load(cfg.ProfilesFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profiles.Profile{}, fmt.Errorf("profile %q requested but profiles file %q does not exist", name, cfg.ProfilesFile)
		}
		return profiles.Profile{}, fmt.Errorf("load profiles: %w", err)
	}
	p, ok := reg.ByID(name)
	if !ok {
		return profiles.Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	if !p.EnabledValue() {
		return profiles.Profile{}, fmt.Errorf("profile %q is disabled", name)
	}
	return p, nil
}

// Service returns the typed endpoint service.
func (a *App) Service() *gtjiu.Service { return a.service }

// Client returns the raw request normalizer.
func (a *App) Client() *apiclient.Client { return a.client }

// Endpoint returns the resolved base endpoint.
func (a *App) Endpoint() apiclient.Endpoint { return a.endpoint }

// Config returns the loaded configuration.
func (a *App) Config() *config.Config { return a.cfg }

// Token returns the explicit token when set, else the stored session token.
func (a *App) Token() (string, error) {
	if a.token != "" {
		return a.token, nil
	}
	token, found, err := a.store.Token(a.sessionKey())
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	if !found {
		return "", nil
	}
	return token, nil
}

// RequireToken is Token but fails when no token is available.
func (a *App) RequireToken() (string, error) {
	token, err := a.Token()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", fmt.Errorf("not logged in: run `gtjiu login` or pass --token")
	}
	return token, nil
}

// SaveSession stores token for the current endpoint.
func (a *App) SaveSession(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := a.store.SaveToken(a.sessionKey(), token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.log.DebugObj("session saved", "session", map[string]any{"endpoint": a.endpoint.String()})
	return nil
}

// ClearSession forgets the stored token for the current endpoint.
func (a *App) ClearSession() error {
	if err := a.store.Forget(a.sessionKey()); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *App) sessionKey() string { return a.endpoint.String() }

// Close releases the session store, logging any errors encountered.
func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	if err := a.store.Close(); err != nil {
		a.log.ErrorObj("session storage close failed", "error", err)
		return err
	}
	return nil
}
