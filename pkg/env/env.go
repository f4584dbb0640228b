package env

import "os"

// Prefix matches the envconfig namespace used by pkg/config.
const Prefix = "BOUTIQUE_"

// Get returns the value of the given environment variable or a fallback.
// The BOUTIQUE_-prefixed name wins over the bare one, so variables read
// before config loads (e.g. LOG_FORMAT) follow the same convention.
func Get(key, fallback string) string {
	if val := os.Getenv(Prefix + key); val != "" {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
