// Package cache provides caching for discovered module graphs.
//
// Discovery is the slow stage of a ranking run (it walks and reads the
// whole project tree), so its serialized result is cached between
// runs. Ranking itself is always recomputed - it takes milliseconds.
//
// Two backends are provided: FileCache for CLI usage and NullCache to
// disable caching. Keys are generated by a Keyer so that key layout
// stays in one place.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long cached discovery results stay valid.
const DefaultTTL = 15 * time.Minute

// Cache stores opaque byte payloads under string keys with a TTL.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// GraphKeyOpts carries the discovery options that shape a graph and
// therefore belong in its cache key.
type GraphKeyOpts struct {
	Extensions []string
	IgnoreDirs []string
}

// Keyer generates cache keys.
type Keyer interface {
	// GraphKey generates a key for a discovered module graph.
	GraphKey(paths []string, opts GraphKeyOpts) string
}

// DefaultKeyer is the standard key layout: a prefix naming the payload
// type plus a hash of everything that influences the payload.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// GraphKey generates a key for a discovered module graph.
func (k *DefaultKeyer) GraphKey(paths []string, opts GraphKeyOpts) string {
	return hashKey("graph", paths, opts.Extensions, opts.IgnoreDirs)
}
