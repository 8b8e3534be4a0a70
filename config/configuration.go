package config

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Configuration is an immutable snapshot of loaded key/value settings.
type Configuration struct {
	values map[string]string
}

func newConfiguration(values map[string]string) *Configuration {
	c := &Configuration{values: make(map[string]string, len(values))}
	for k, v := range values {
		c.values[normalizeKey(k)] = v
	}
	return c
}

// Get returns the raw value for key.
func (c *Configuration) Get(key string) (string, bool) {
	v, ok := c.values[normalizeKey(key)]
	return v, ok
}

// String returns the trimmed value for key, or def when unset or blank.
func (c *Configuration) String(key, def string) string {
	if v, ok := c.Get(key); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return def
}

// Int returns the integer value for key, or def when unset or malformed.
func (c *Configuration) Int(key string, def int) int {
	if v, ok := c.Get(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// Bool returns the boolean value for key, or def when unset or malformed.
func (c *Configuration) Bool(key string, def bool) bool {
	if v, ok := c.Get(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}

// Millis reads key as a number of milliseconds.
func (c *Configuration) Millis(key string, def time.Duration) time.Duration {
	n := c.Int(key, -1)
	if n < 0 {
		return def
	}
	return time.Duration(n) * time.Millisecond
}

// Endpoint returns the service base URL with a trailing slash, so relative
// resource paths resolve beneath it. Empty when not configured.
func (c *Configuration) Endpoint() string {
	ep := c.String(KeyEndpoint, "")
	if ep != "" && !strings.HasSuffix(ep, "/") {
		ep += "/"
	}
	return ep
}

// Keys returns the configured keys in sorted order.
func (c *Configuration) Keys() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Map returns a copy of all settings.
func (c *Configuration) Map() map[string]string {
	return maps.Clone(c.values)
}

// Settings returns the typed call settings derived from this configuration.
func (c *Configuration) Settings() Settings {
	s := Settings{
		Endpoint:        c.Endpoint(),
		RequestIDHeader: c.String(KeyRequestIDHeader, ""),
	}
	s.ApplyDefaults()
	return s
}
