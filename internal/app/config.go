package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete client configuration, loadable from environment
// variables (VELORA_ prefix), flags, or YAML config files.
type Config struct {
	BaseURL        string        `default:"http://localhost:3000" usage:"Default base URL for all backend services" flag:"base-url"`
	RequestTimeout time.Duration `default:"10s" usage:"Fixed timeout applied to every backend request" flag:"request-timeout"`
	StateDir       string        `usage:"Directory for durable session state (defaults to the user config dir)" flag:"state-dir"`
	Services       ServicesConfig
}

// ServicesConfig carries optional per-family base URL overrides. An empty
// field falls back to the default BaseURL.
type ServicesConfig struct {
	Auth          string `usage:"Auth service base URL"`
	Products      string `usage:"Product service base URL"`
	Categories    string `usage:"Category service base URL"`
	Cart          string `usage:"Cart service base URL"`
	Orders        string `usage:"Order service base URL"`
	Payments      string `usage:"Payment service base URL"`
	Notifications string `usage:"Notification service base URL"`
	Users         string `usage:"User service base URL"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files, then fills in derived defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "VELORA",
		Files:     []string{"config.yaml", "/etc/velora/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolve state dir")
		}
		cfg.StateDir = filepath.Join(base, "velora")
	}

	return &cfg, nil
}

// BackendURLs returns the resolved base URL per service family.
func (c *Config) BackendURLs() map[string]string {
	resolve := func(override string) string {
		if override != "" {
			return override
		}
		return c.BaseURL
	}
	return map[string]string{
		"auth":          resolve(c.Services.Auth),
		"products":      resolve(c.Services.Products),
		"categories":    resolve(c.Services.Categories),
		"cart":          resolve(c.Services.Cart),
		"orders":        resolve(c.Services.Orders),
		"payments":      resolve(c.Services.Payments),
		"notifications": resolve(c.Services.Notifications),
		"users":         resolve(c.Services.Users),
	}
}
