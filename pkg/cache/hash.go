package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the SHA-256 digest of data as a 64-character hex string.
// Dataset hashes in gallery records and artifact keys both use it, so
// equal tables always share cache entries.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a "prefix:digest" cache key from the JSON encoding of
// parts. The digest is kept at full length so distinct requests cannot
// collide.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
