package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// ExportFormat is the JSON structure for cache export/import, used to seed a
// fresh process with suggestions computed by an earlier run.
type ExportFormat struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Entries    []ExportEntry     `json:"entries"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ExportEntry is a single cache entry.
type ExportEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Export writes the cache contents to w in JSON format. Only caches that
// expose their entries (currently MemoryCache) can be exported.
func Export(c SuggestionCache, w io.Writer, metadata map[string]string) error {
	mem, ok := c.(*MemoryCache)
	if !ok {
		return fmt.Errorf("cache type %T does not support export", c)
	}

	entries := mem.Entries()
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	export := ExportFormat{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    make([]ExportEntry, 0, len(keys)),
		Metadata:   metadata,
	}
	for _, k := range keys {
		export.Entries = append(export.Entries, ExportEntry{Key: k, Value: entries[k]})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ExportToFile exports the cache to a file.
// The path is provided by the caller and is intentionally user-controlled.
func ExportToFile(c SuggestionCache, path string, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return Export(c, f, metadata)
}

// Import loads exported entries from r into the cache and returns how many
// entries were stored.
func Import(c SuggestionCache, r io.Reader) (int, error) {
	var export ExportFormat
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return 0, fmt.Errorf("decoding JSON: %w", err)
	}

	count := 0
	for _, e := range export.Entries {
		if e.Key == "" {
			continue
		}
		if err := c.Set(e.Key, e.Value); err != nil {
			return count, fmt.Errorf("storing entry %q: %w", e.Key, err)
		}
		count++
	}
	return count, nil
}

// ImportFromFile imports exported entries from a file.
func ImportFromFile(c SuggestionCache, path string) (int, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Import(c, f)
}
