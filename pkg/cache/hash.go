package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// artifactPrefix namespaces artifact keys, so a shared Redis database can
// hold other data too.
const artifactPrefix = "orgchart:artifact"

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey returns the cache key for the artifact rendered from dot in
// the given format. Identical DOT always maps to the same key.
func ArtifactKey(dot, format string) string {
	return fmt.Sprintf("%s:%s:%s", artifactPrefix, format, Hash([]byte(dot)))
}
