package cache

import (
	"testing"

	"github.com/go-redis/redis/v8"
)

func TestKeyIsStableAndDistinct(t *testing.T) {
	a := Key("general", "Sugar causes diabetes.")
	b := Key("general", "Sugar causes diabetes.")
	c := Key("pcos", "Sugar causes diabetes.")

	if a != b {
		t.Fatal("same inputs must produce the same key")
	}
	if a == c {
		t.Fatal("different profiles must produce different keys")
	}
	// The parts are separated, so shifting a boundary changes the key.
	if Key("ab", "c") == Key("a", "bc") {
		t.Fatal("key must not be a plain concatenation")
	}
}

func TestCacheDisabledWithoutRedis(t *testing.T) {
	RDB = nil

	if _, err := Get("anything"); err != redis.Nil {
		t.Fatalf("expected redis.Nil without a client, got %v", err)
	}
	if err := Set("anything", "value", 0); err != nil {
		t.Fatalf("Set must be a no-op without a client, got %v", err)
	}
}
