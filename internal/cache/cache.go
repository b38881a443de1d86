package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores serialized reports so re-analyzing an unchanged document
// within one process is free.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the document text, so identical content
// hits regardless of its file path.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "greenclue:v1:" + hex.EncodeToString(hash[:])
}
