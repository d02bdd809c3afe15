// Package cache stores computed plans and rendered artifacts between runs.
//
// The CLI keeps a [FileCache] under the user cache directory; tests and
// --no-cache runs use [NullCache]. Keys come from a [Keyer] so that every
// input that changes the output (the well itself, layout options, output
// format, theme) changes the key.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	// TTLLayout bounds how long a computed plan is reused.
	TTLLayout = 7 * 24 * time.Hour
	// TTLArtifact bounds how long a rendered file is reused.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources.
	Close() error
}
