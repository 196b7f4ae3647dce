// file: internal/config/config.go
// version: 2.0.0
// guid: 4e1c7a92-8d3b-4f60-a5e2-1b9c0d7f3a68

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Provider names accepted in the providers list.
const (
	ProviderGoogleBooks = "google_books"
	ProviderOpenLibrary = "open_library"
)

// EnvPrefix is the prefix viper uses for environment overrides (ISBN_CATALOG_DATABASE_PATH, ...).
const EnvPrefix = "ISBN_CATALOG"

// Config holds application configuration
type Config struct {
	DatabasePath string `yaml:"database_path"`

	// Providers is the ordered list of metadata providers to query.
	Providers          []string      `yaml:"providers"`
	GoogleBooksBaseURL string        `yaml:"google_books_base_url"`
	GoogleBooksAPIKey  string        `yaml:"google_books_api_key"`
	OpenLibraryBaseURL string        `yaml:"open_library_base_url"`
	ProviderTimeout    time.Duration `yaml:"provider_timeout"`
	ProviderRateLimit  float64       `yaml:"provider_rate_limit"`

	LogLevel string `yaml:"log_level"`

	ServeHost string `yaml:"serve_host"`
	ServePort string `yaml:"serve_port"`

	// ServeRateLimit is POST /api/v1/books requests per minute per client.
	ServeRateLimit int `yaml:"serve_rate_limit"`
}

var AppConfig Config

// DefaultDatabasePath returns ~/.isbn-catalog/catalog.db, falling back to the
// working directory when the home directory cannot be resolved.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".isbn-catalog", "catalog.db")
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault("database_path", DefaultDatabasePath())
	viper.SetDefault("providers", []string{ProviderGoogleBooks})
	viper.SetDefault("google_books_base_url", "https://www.googleapis.com/books/v1")
	viper.SetDefault("google_books_api_key", "")
	viper.SetDefault("open_library_base_url", "https://openlibrary.org")
	viper.SetDefault("provider_timeout", "15s")
	viper.SetDefault("provider_rate_limit", 1.0)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("serve_host", "localhost")
	viper.SetDefault("serve_port", "8080")
	viper.SetDefault("serve_rate_limit", 30)
}

// InitConfig initializes the application configuration
func InitConfig() {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	AppConfig = Config{
		DatabasePath:       viper.GetString("database_path"),
		Providers:          normalizeProviders(viper.GetStringSlice("providers")),
		GoogleBooksBaseURL: strings.TrimRight(viper.GetString("google_books_base_url"), "/"),
		GoogleBooksAPIKey:  viper.GetString("google_books_api_key"),
		OpenLibraryBaseURL: strings.TrimRight(viper.GetString("open_library_base_url"), "/"),
		ProviderTimeout:    viper.GetDuration("provider_timeout"),
		ProviderRateLimit:  viper.GetFloat64("provider_rate_limit"),
		LogLevel:           strings.ToLower(strings.TrimSpace(viper.GetString("log_level"))),
		ServeHost:          viper.GetString("serve_host"),
		ServePort:          viper.GetString("serve_port"),
		ServeRateLimit:     viper.GetInt("serve_rate_limit"),
	}

	if AppConfig.DatabasePath == "" {
		AppConfig.DatabasePath = DefaultDatabasePath()
	}
	if AppConfig.ProviderTimeout <= 0 {
		AppConfig.ProviderTimeout = 15 * time.Second
	}
}

// normalizeProviders lowercases names, accepts a single comma-separated
// entry (as env vars deliver it) and drops duplicates.
func normalizeProviders(in []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, entry := range in {
		for _, p := range strings.Split(entry, ",") {
			p = strings.ToLower(strings.TrimSpace(p))
			p = strings.ReplaceAll(p, "-", "_")
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// Validate reports configuration that cannot produce a working catalog.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database_path is required")
	}
	if len(c.Providers) == 0 {
		return fmt.Errorf("at least one metadata provider must be configured")
	}
	for _, p := range c.Providers {
		switch p {
		case ProviderGoogleBooks, ProviderOpenLibrary:
		default:
			return fmt.Errorf("unknown metadata provider %q (want %s or %s)", p, ProviderGoogleBooks, ProviderOpenLibrary)
		}
	}
	if c.ProviderRateLimit < 0 {
		return fmt.Errorf("provider_rate_limit must not be negative, got %v", c.ProviderRateLimit)
	}
	if c.ServeRateLimit < 0 {
		return fmt.Errorf("serve_rate_limit must not be negative, got %d", c.ServeRateLimit)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Masked returns a copy with secrets obscured for display.
func (c Config) Masked() Config {
	c.GoogleBooksAPIKey = MaskSecret(c.GoogleBooksAPIKey)
	return c
}

// fileView mirrors Config with durations spelled the way the config file
// accepts them.
type fileView struct {
	DatabasePath       string   `yaml:"database_path"`
	Providers          []string `yaml:"providers"`
	GoogleBooksBaseURL string   `yaml:"google_books_base_url"`
	GoogleBooksAPIKey  string   `yaml:"google_books_api_key"`
	OpenLibraryBaseURL string   `yaml:"open_library_base_url"`
	ProviderTimeout    string   `yaml:"provider_timeout"`
	ProviderRateLimit  float64  `yaml:"provider_rate_limit"`
	LogLevel           string   `yaml:"log_level"`
	ServeHost          string   `yaml:"serve_host"`
	ServePort          string   `yaml:"serve_port"`
	ServeRateLimit     int      `yaml:"serve_rate_limit"`
}

// YAML renders the config with secrets masked.
func (c Config) YAML() ([]byte, error) {
	m := c.Masked()
	return yaml.Marshal(fileView{
		DatabasePath:       m.DatabasePath,
		Providers:          m.Providers,
		GoogleBooksBaseURL: m.GoogleBooksBaseURL,
		GoogleBooksAPIKey:  m.GoogleBooksAPIKey,
		OpenLibraryBaseURL: m.OpenLibraryBaseURL,
		ProviderTimeout:    m.ProviderTimeout.String(),
		ProviderRateLimit:  m.ProviderRateLimit,
		LogLevel:           m.LogLevel,
		ServeHost:          m.ServeHost,
		ServePort:          m.ServePort,
		ServeRateLimit:     m.ServeRateLimit,
	})
}

// MaskSecret keeps the first three and last four characters of long secrets.
func MaskSecret(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 8:
		return "****"
	default:
		return s[:3] + "****" + s[len(s)-4:]
	}
}
