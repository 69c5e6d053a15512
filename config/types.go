package config

import "time"

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port       int           `yaml:"port" validate:"gte=0,lte=65535"`
	SessionTTL time.Duration `yaml:"sessionTTL" validate:"gte=0"`
	// MaxSessions caps live trip sessions; 0 means unlimited
	MaxSessions int `yaml:"maxSessions" validate:"gte=0"`
}

// CatalogConfig says where the building catalog is read from
type CatalogConfig struct {
	Source       string `yaml:"source" validate:"omitempty"`
	SnapshotPath string `yaml:"snapshotPath" validate:"omitempty"`
	TimeoutMS    int    `yaml:"timeoutMS" validate:"gte=0"`
}

// NavigationConfig contains wayfinding defaults
type NavigationConfig struct {
	WheelchairDefault bool `yaml:"wheelchairDefault"`
	LegCacheSize      int  `yaml:"legCacheSize" validate:"gte=0"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Navigation NavigationConfig `yaml:"navigation"`
	Logging    LoggingConfig    `yaml:"logging"`
}
