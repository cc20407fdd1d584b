// Package cache stores rendered chart artifacts between runs.
//
// Rendering goes through the Graphviz WebAssembly engine and, for PDF and
// PNG, an rsvg-convert subprocess. Both are slow compared to everything else
// the tool does, so the pipeline keys each artifact by a hash of the DOT
// description and format ([ArtifactKey]) and skips the render when the roster
// has not changed.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under the user cache directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for teams rendering the same rosters
//   - [NullCache]: stores nothing, used with --no-cache
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 7 * 24 * time.Hour
