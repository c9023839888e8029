package middleware

import (
	"testing"
	"time"
)

func TestTokenBucketExhausts(t *testing.T) {
	bucket := NewTokenBucket(3, 0.001) // effectively no refill within the test

	for i := 0; i < 3; i++ {
		if !bucket.Allow() {
			t.Fatalf("request %d denied with tokens remaining", i+1)
		}
	}
	if bucket.Allow() {
		t.Error("request allowed after bucket exhausted")
	}
}

func TestTokenBucketRefills(t *testing.T) {
	bucket := NewTokenBucket(1, 100) // 100 tokens/sec

	if !bucket.Allow() {
		t.Fatal("first request denied")
	}
	if bucket.Allow() {
		t.Fatal("second immediate request allowed")
	}

	time.Sleep(20 * time.Millisecond)
	if !bucket.Allow() {
		t.Error("request denied after refill interval")
	}
}

func TestRateLimiterPerKey(t *testing.T) {
	rl := NewRateLimiter(1, 3600)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request for key denied")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("second request for the same key allowed")
	}

	// A different client gets its own bucket.
	if !rl.Allow("10.0.0.2") {
		t.Error("first request for a second key denied")
	}
}
