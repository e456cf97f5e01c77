package app

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"clothiq/internal/catalog"
	"clothiq/internal/domain"
	authsvc "clothiq/internal/services/auth"
	browsesvc "clothiq/internal/services/browse"
	profilesvc "clothiq/internal/services/profile"
	"clothiq/internal/state"
	"clothiq/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	*App

	KV       domain.KeyValueStore
	Accounts domain.AccountStore
	Catalog  domain.Catalog
	HTTP     *http.Client
	Log      *zap.Logger

	closers []io.Closer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	w := &Wire{Log: log}

	// Local key/value persistence
	switch cfg.Store.Backend {
	case BackendSQLite:
		kv, err := store.OpenSQLiteKV(filepath.Join(cfg.Home, store.SQLiteFile))
		if err != nil {
			return nil, err
		}
		w.KV = kv
		w.closers = append(w.closers, kv)
	default:
		if cfg.Store.Passphrase != "" {
			w.KV = store.NewSealedFileKV(cfg.Home, cfg.Store.Passphrase)
		} else {
			w.KV = store.NewFileKV(cfg.Home)
		}
	}
	w.Accounts = store.NewAccounts(w.KV)

	// Catalog client with a bounded per-request timeout
	w.HTTP = cfg.HTTP
	if w.HTTP == nil {
		timeout, err := cfg.CatalogTimeout()
		if err != nil {
			return nil, err
		}
		w.HTTP = &http.Client{Timeout: timeout}
	}
	w.Catalog = catalog.NewHTTP(cfg.Catalog.BaseURL, w.HTTP, log.Named("catalog"))

	// Services and the in-memory session
	w.App = New(
		authsvc.New(w.Accounts, log.Named("auth")),
		profilesvc.New(w.Accounts, log.Named("profile")),
		browsesvc.New(w.Catalog, browsesvc.Options{
			HomeCategories: cfg.Categories(),
			RelatedLimit:   cfg.Catalog.RelatedLimit,
		}, log.Named("browse")),
		state.NewSession(log.Named("state")),
	)

	log.Debug("app wired",
		zap.String("home", cfg.Home),
		zap.String("store", cfg.Store.Backend),
		zap.Bool("sealed", cfg.Store.Passphrase != "" && cfg.Store.Backend == BackendFile),
		zap.String("catalog", cfg.Catalog.BaseURL))
	return w, nil
}

// Close releases backend resources.
func (w *Wire) Close() error {
	var first error
	for _, c := range w.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
