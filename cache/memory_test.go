package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache(0)

	if _, ok := c.Get("missing"); ok {
		t.Error("hit on empty cache")
	}

	if err := c.Set("k1", "v1"); err != nil {
		t.Fatal(err)
	}
	got, ok := c.Get("k1")
	if !ok || got != "v1" {
		t.Errorf("got %q, %v", got, ok)
	}

	// Overwrite
	if err := c.Set("k1", "v2"); err != nil {
		t.Fatal(err)
	}
	if got, _ := c.Get("k1"); got != "v2" {
		t.Errorf("overwrite lost: %q", got)
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(10 * time.Millisecond)
	if err := c.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry expired immediately")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("entry survived past its TTL")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not evicted on read, len=%d", c.Len())
	}
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	c := NewMemoryCache(0)
	if err := c.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("k"); !ok {
		t.Error("zero-TTL entry expired")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(0)
	for i := 0; i < 3; i++ {
		if err := c.Set(fmt.Sprintf("k%d", i), "v"); err != nil {
			t.Fatal(err)
		}
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d", c.Len())
	}
}

func TestMemoryCache_Entries(t *testing.T) {
	c := NewMemoryCache(0)
	if err := c.Set("a", "1"); err != nil {
		t.Fatal(err)
	}
	if err := c.Set("b", "2"); err != nil {
		t.Fatal(err)
	}
	entries := c.Entries()
	if len(entries) != 2 || entries["a"] != "1" || entries["b"] != "2" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestMemoryCache_Concurrent(t *testing.T) {
	c := NewMemoryCache(0)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n%8)
			for j := 0; j < 100; j++ {
				_ = c.Set(key, "v")
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()
	if c.Len() != 8 {
		t.Errorf("expected 8 keys, got %d", c.Len())
	}
}
