package gosugg

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// SuggestionKey generates a cache key from a source-text hash and the target
// locale.
func SuggestionKey(hash, locale string) string {
	return hash + ":" + locale
}

// GroupHash generates a stable identifier for a suggestion group from its
// serialized group key. Useful for keying exported caches by group rather
// than by individual string.
func GroupHash(key GroupKey) string {
	return HashText(key.String())
}
