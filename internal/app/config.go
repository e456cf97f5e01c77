package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"clothiq/internal/catalog"
	"clothiq/internal/domain"
	"clothiq/internal/services/browse"
)

// ConfigFile is the name of the optional config file under Home.
const ConfigFile = "config.yaml"

// Store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string        `yaml:"-"`    // data directory, e.g. $HOME/.clothiq
	HTTP    *http.Client  `yaml:"-"`    // optional; defaults to a client with Catalog.Timeout
	Catalog CatalogConfig `yaml:"catalog"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
}

// CatalogConfig points at the product API.
type CatalogConfig struct {
	BaseURL        string   `yaml:"base_url"`
	Timeout        string   `yaml:"timeout"`
	HomeCategories []string `yaml:"home_categories"`
	RelatedLimit   int      `yaml:"related_limit"`
}

// StoreConfig selects the local persistence backend.
type StoreConfig struct {
	Backend    string `yaml:"backend"`    // file | sqlite
	Passphrase string `yaml:"passphrase"` // seals the file backend when set
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
	File  string `yaml:"file"`  // relative to Home; "-" for stderr
}

// DefaultConfig returns the built-in configuration rooted at home.
func DefaultConfig(home string) Config {
	cats := make([]string, len(browse.DefaultHomeCategories))
	for i, c := range browse.DefaultHomeCategories {
		cats[i] = c.String()
	}
	return Config{
		Home: home,
		Catalog: CatalogConfig{
			BaseURL:        catalog.DefaultBaseURL,
			Timeout:        "10s",
			HomeCategories: cats,
			RelatedLimit:   browse.DefaultRelatedLimit,
		},
		Store: StoreConfig{Backend: BackendFile},
		Log:   LogConfig{Level: "info", File: "clothiq.log"},
	}
}

// LoadConfig returns DefaultConfig(home) overlaid with home/config.yaml when
// that file exists.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)
	path := filepath.Join(home, ConfigFile)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	cfg.Home = home
	return cfg, cfg.Validate()
}

// Validate checks the values that cannot be defaulted.
func (c Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("%w: catalog.base_url is empty", ErrInvalidConfig)
	}
	if _, err := c.CatalogTimeout(); err != nil {
		return err
	}
	if c.Catalog.RelatedLimit <= 0 {
		return fmt.Errorf("%w: catalog.related_limit must be positive", ErrInvalidConfig)
	}
	if len(c.Catalog.HomeCategories) == 0 {
		return fmt.Errorf("%w: catalog.home_categories is empty", ErrInvalidConfig)
	}
	switch c.Store.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown store.backend %q", ErrInvalidConfig, c.Store.Backend)
	}
	return nil
}

// CatalogTimeout parses Catalog.Timeout.
func (c Config) CatalogTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Catalog.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: catalog.timeout %q", ErrInvalidConfig, c.Catalog.Timeout)
	}
	return d, nil
}

// Categories returns the configured home categories.
func (c Config) Categories() []domain.Category {
	out := make([]domain.Category, len(c.Catalog.HomeCategories))
	for i, s := range c.Catalog.HomeCategories {
		out[i] = domain.Category(s)
	}
	return out
}
