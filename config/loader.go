package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort         = 16181
	DefaultSessionTTL   = 30 * time.Minute
	DefaultLegCacheSize = 1024
	DefaultLogLevel     = "info"

	DefaultCatalogTimeoutMS = 10000
)

// DefaultPaths are searched when no explicit path is given.
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// ErrNotFound is returned when none of the searched paths exist.
var ErrNotFound = errors.New("config file not found")

// LoadAppConfig reads, validates and defaults the configuration.
// With no paths, DefaultPaths are tried in order.
func LoadAppConfig(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return AppConfig{}, ErrNotFound
		}
		return AppConfig{}, err
	}
	return Parse(data)
}

// Parse decodes YAML config bytes. An empty document yields the defaults.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.SessionTTL == 0 {
		cfg.Server.SessionTTL = DefaultSessionTTL
	}
	if cfg.Catalog.TimeoutMS == 0 {
		cfg.Catalog.TimeoutMS = DefaultCatalogTimeoutMS
	}
	if cfg.Navigation.LegCacheSize == 0 {
		cfg.Navigation.LegCacheSize = DefaultLegCacheSize
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}
