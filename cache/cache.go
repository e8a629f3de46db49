// Package cache provides suggestion caching implementations.
package cache

// SuggestionCache is the interface for caching computed suggestions, keyed
// by source-text hash and target locale.
type SuggestionCache interface {
	// Get retrieves a cached suggestion. Returns empty string and false if
	// not found or expired.
	Get(key string) (string, bool)

	// Set stores a suggestion in the cache.
	Set(key string, value string) error
}
