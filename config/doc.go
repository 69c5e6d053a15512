// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The catalog section selects where building data comes from: the embedded
// campus, a local YAML file or an http(s) URL.
package config
