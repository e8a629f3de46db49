package gosugg

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimiter_Burst(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 60, BurstSize: 3})

	for i := 0; i < 3; i++ {
		if !r.TryAcquire() {
			t.Fatalf("acquire %d failed within burst", i)
		}
	}
	if r.TryAcquire() {
		t.Error("acquire succeeded past the burst size")
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	// 6000 rpm = 100 tokens per second, so a drained bucket recovers a
	// token within tens of milliseconds.
	r := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 6000, BurstSize: 1})

	if !r.TryAcquire() {
		t.Fatal("initial acquire failed")
	}
	if r.TryAcquire() {
		t.Fatal("acquire succeeded on a drained bucket")
	}

	deadline := time.Now().Add(time.Second)
	for !r.TryAcquire() {
		if time.Now().After(deadline) {
			t.Fatal("bucket did not refill in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{})
	if got := r.Available(); got < 59 || got > 60 {
		t.Errorf("default bucket size: %v", got)
	}
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})
	if !r.TryAcquire() {
		t.Fatal("initial acquire failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := r.Wait(ctx); err == nil {
		t.Error("expected wait to fail on cancelled context")
	}
}

func TestRateLimitedFallback(t *testing.T) {
	calls := 0
	inner := fallbackFunc(func(ctx context.Context, req FallbackRequest) ([]string, error) {
		calls++
		return []string{"ok"}, nil
	})
	p := NewRateLimitedFallback(inner, RateLimitConfig{RequestsPerMinute: 6000, BurstSize: 2})

	for i := 0; i < 2; i++ {
		if _, err := p.Translate(context.Background(), FallbackRequest{Texts: []string{"x"}}); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
	if p.Limiter().Available() >= 1 {
		t.Errorf("expected drained bucket, got %v tokens", p.Limiter().Available())
	}
}

func TestRateLimitedFallback_CancelledWait(t *testing.T) {
	inner := fallbackFunc(func(ctx context.Context, req FallbackRequest) ([]string, error) {
		return []string{"ok"}, nil
	})
	p := NewRateLimitedFallback(inner, RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})
	p.Limiter().TryAcquire() // drain

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.Translate(ctx, FallbackRequest{Texts: []string{"x"}})
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if perr.Retryable {
		t.Error("cancellation must not be marked retryable")
	}
}
