package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("evidence"), time.Minute); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	val, found := c.Get("k")
	if !found {
		t.Fatal("Expected cache hit")
	}
	if string(val) != "evidence" {
		t.Errorf("Expected 'evidence', got %q", val)
	}

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}
}

func TestMemoryCache_IsolatesStoredBytes(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	payload := []byte(`{"verdict":"SUPPORTED"}`)
	_ = c.Set("k", payload, time.Minute)
	payload[2] = 'X'

	first, _ := c.Get("k")
	if string(first) != `{"verdict":"SUPPORTED"}` {
		t.Errorf("Caller mutation reached the cache: %q", first)
	}

	first[2] = 'Y'
	second, _ := c.Get("k")
	if string(second) != `{"verdict":"SUPPORTED"}` {
		t.Errorf("Returned slice aliases the cached entry: %q", second)
	}
}

func TestMemoryCache_DefaultDurations(t *testing.T) {
	c := NewMemoryCache(0, 0)

	_ = c.Set("k", []byte("v"), 0)
	if _, found := c.Get("k"); !found {
		t.Error("Expected entry stored under defaulted TTL")
	}
}
