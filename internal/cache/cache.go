// Package cache provides layered caching for evidence API responses
// and fetched articles.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a namespace and request identifier.
// Hashing keeps keys filesystem-safe regardless of the identifier.
func Key(namespace, id string) string {
	hash := sha256.Sum256([]byte(namespace + "\x00" + id))
	return "factguard:v1:" + hex.EncodeToString(hash[:])
}

// Noop is a Cache that stores nothing, used when caching is disabled
type Noop struct{}

func (Noop) Get(string) ([]byte, bool)                 { return nil, false }
func (Noop) Set(string, []byte, time.Duration) error   { return nil }
func (Noop) Delete(string) error                       { return nil }
func (Noop) Clear() error                              { return nil }
