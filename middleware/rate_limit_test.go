package middleware

import "testing"

func TestRateLimiterStoreAllow(t *testing.T) {
	store := NewRateLimiterStore(4) // burst of 2

	if !store.Allow("10.0.0.1") {
		t.Fatal("first request should pass")
	}
	if !store.Allow("10.0.0.1") {
		t.Fatal("second request should fit in the burst")
	}
	if store.Allow("10.0.0.1") {
		t.Error("third immediate request should be limited")
	}

	// A different client gets its own bucket.
	if !store.Allow("10.0.0.2") {
		t.Error("separate client should not share the exhausted bucket")
	}
}

func TestNewRateLimiterStoreClampsRate(t *testing.T) {
	store := NewRateLimiterStore(0)
	if !store.Allow("10.0.0.1") {
		t.Error("clamped store should still admit one request")
	}
}
