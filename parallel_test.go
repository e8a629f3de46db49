package gosugg

import (
	"fmt"
	"testing"

	"github.com/lingoreef/gosugg/cache"
)

func TestSuggestParallel_MatchesSequential(t *testing.T) {
	corpus := []corpusItem{
		{English: "simplify $2x$", Translated: "simplifyz $2x$"},
		{English: "solve $y = 1$", Translated: "solvez $y = 1$"},
	}
	e := newTestEngine("fr", corpus)

	var batch []corpusItem
	for i := 0; i < 50; i++ {
		batch = append(batch,
			corpusItem{English: fmt.Sprintf("simplify $%dx$", i)},
			corpusItem{English: fmt.Sprintf("solve $y = %d$", i)},
			corpusItem{English: fmt.Sprintf("no group here %d", i)},
		)
	}

	sequential := e.Suggest(batch)
	parallel := e.SuggestParallel(batch, 8)

	if len(parallel) != len(sequential) {
		t.Fatalf("length mismatch: %d vs %d", len(parallel), len(sequential))
	}
	for i := range sequential {
		if parallel[i].Ok != sequential[i].Ok || parallel[i].Text != sequential[i].Text {
			t.Errorf("index %d: parallel %+v, sequential %+v", i, parallel[i], sequential[i])
		}
	}
}

func TestSuggestParallel_SingleWorkerFallsBack(t *testing.T) {
	e := newTestEngine("fr", []corpusItem{
		{English: "simplify $2x$", Translated: "simplifyz $2x$"},
	})
	got := e.SuggestParallel([]corpusItem{{English: "simplify $3x$"}}, 1)
	if !got[0].Ok || got[0].Text != "simplifyz $3x$" {
		t.Errorf("unexpected result: %+v", got[0])
	}
}

func TestSuggestParallel_ConcurrentCacheWrites(t *testing.T) {
	c := cache.NewMemoryCache(0)
	e := newTestEngine("fr", []corpusItem{
		{English: "simplify $2x$", Translated: "simplifyz $2x$"},
	}, WithCache[corpusItem](c))

	var batch []corpusItem
	for i := 0; i < 100; i++ {
		batch = append(batch, corpusItem{English: fmt.Sprintf("simplify $%dx$", i)})
	}
	got := e.SuggestParallel(batch, 16)
	for i, s := range got {
		if !s.Ok {
			t.Fatalf("index %d missing suggestion", i)
		}
	}
	if c.Len() != 100 {
		t.Errorf("expected 100 cache entries, got %d", c.Len())
	}
}

func TestParallelCacheLookup(t *testing.T) {
	c := cache.NewMemoryCache(0)
	texts := []string{"alpha", "beta", "gamma", "alpha"}

	if err := c.Set(SuggestionKey(HashText("beta"), "fr"), "bêta"); err != nil {
		t.Fatal(err)
	}

	hits, misses := ParallelCacheLookup(c, texts, "fr")
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[HashText("beta")] != "bêta" {
		t.Errorf("hit value: %q", hits[HashText("beta")])
	}
	if len(misses) != 2 || misses[0] != "alpha" || misses[1] != "gamma" {
		t.Errorf("expected deduplicated ordered misses [alpha gamma], got %v", misses)
	}
}

func TestParallelCacheLookup_NilCache(t *testing.T) {
	texts := []string{"a", "b"}
	hits, misses := ParallelCacheLookup(nil, texts, "fr")
	if len(hits) != 0 {
		t.Errorf("expected no hits, got %v", hits)
	}
	if len(misses) != 2 {
		t.Errorf("expected all misses, got %v", misses)
	}
}
