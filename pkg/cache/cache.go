// Package cache stores simulated frames and rendered artifacts between CLI
// runs.
//
// Rendering a skills file means simulating hundreds of ticks and then
// encoding the final frame in one or more formats. Both steps are
// deterministic in their inputs, so results are cached under keys derived
// from a hash of the skills document plus every option that influences the
// output (see [Keyer]).
//
// Two implementations are provided:
//   - [FileCache]: JSON entry files under a directory, used by the CLI
//   - [NullCache]: stores nothing, used with --no-cache and in tests
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the data for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Default TTLs.
const (
	// FrameTTL bounds how long simulated frames are reused.
	FrameTTL = 7 * 24 * time.Hour

	// ArtifactTTL bounds how long rendered files are reused.
	ArtifactTTL = 7 * 24 * time.Hour
)
