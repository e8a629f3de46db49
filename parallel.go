package gosugg

import "sync"

// SuggestParallel answers a batch of suggestion requests with a bounded
// worker pool. Per-item suggestions are independent pure computations, so
// the only shared state is the read-only group map and the cache, which must
// be safe for concurrent use. Results keep input order.
func (e *Engine[T]) SuggestParallel(items []T, workers int) []Suggestion[T] {
	if workers <= 1 || len(items) < 2 {
		return e.Suggest(items)
	}
	if workers > len(items) {
		workers = len(items)
	}

	out := make([]Suggestion[T], len(items))
	indexes := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				item := items[i]
				text, ok := e.suggestOne(e.getEnglish(item))
				out[i] = Suggestion[T]{Item: item, Text: text, Ok: ok}
			}
		}()
	}

	for i := range items {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return out
}

// ParallelCacheLookup checks the cache for a set of English strings
// concurrently. Returns cached suggestions keyed by text hash, plus the
// strings that missed, deduplicated and in input order.
func ParallelCacheLookup(cache SuggestionCache, englishStrs []string, locale string) (map[string]string, []string) {
	if cache == nil || len(englishStrs) == 0 {
		return make(map[string]string), englishStrs
	}

	type lookupResult struct {
		hash  string
		value string
		found bool
	}

	unique := make(map[string]bool, len(englishStrs))
	for _, s := range englishStrs {
		unique[HashText(s)] = true
	}

	results := make(chan lookupResult, len(unique))
	var wg sync.WaitGroup
	for hash := range unique {
		wg.Add(1)
		go func(h string) {
			defer wg.Done()
			if val, ok := cache.Get(SuggestionKey(h, locale)); ok {
				results <- lookupResult{hash: h, value: val, found: true}
			} else {
				results <- lookupResult{hash: h, found: false}
			}
		}(hash)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	hits := make(map[string]string)
	for r := range results {
		if r.found {
			hits[r.hash] = r.value
		}
	}

	var misses []string
	seen := make(map[string]bool)
	for _, s := range englishStrs {
		h := HashText(s)
		if _, hit := hits[h]; hit || seen[h] {
			continue
		}
		seen[h] = true
		misses = append(misses, s)
	}
	return hits, misses
}
