package config

import "time"

// Options configures the config loader.
type Options struct {
	// YAMLPath is the path to the primary YAML config file.
	YAMLPath string

	// EnvPath is the path to the fallback .env file, used only when YAML is absent.
	EnvPath string

	// EnvPrefix scopes environment overrides, e.g. "IMG" maps IMG_LOCK_TTL to lock.ttl.
	// Empty means unprefixed variables.
	EnvPrefix string
}

// ConfigProvider is the interface consumers depend on for reading configuration.
// Implementations must be safe for concurrent use.
type ConfigProvider interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringMap(key string) map[string]interface{}
	IsSet(key string) bool

	// UnmarshalKey decodes the sub-tree rooted at key into out (mapstructure tags).
	UnmarshalKey(key string, out any) error

	// WatchChanges starts watching the config file for changes (YAML only).
	// Non-blocking: spawns a background goroutine.
	WatchChanges()

	// OnChange registers a callback that fires after a successful config reload.
	// Callbacks execute in registration order.
	OnChange(fn func())

	// StopWatching makes later file events no-ops.
	StopWatching()

	// Source returns which config source is active: "yaml" or "env".
	Source() string
}
