package session

import (
	"testing"
	"time"
)

func TestCreateAndResolve(t *testing.T) {
	store := NewStore(time.Hour)

	token := store.Create("user-1")
	if token == "" {
		t.Fatal("empty token")
	}
	if other := store.Create("user-1"); other == token {
		t.Error("tokens must be unique per login")
	}

	userID, ok := store.Resolve(token)
	if !ok || userID != "user-1" {
		t.Errorf("Resolve = %q, %t", userID, ok)
	}

	if _, ok := store.Resolve("not-a-token"); ok {
		t.Error("unknown token resolved")
	}
}

func TestInvalidate(t *testing.T) {
	store := NewStore(time.Hour)
	token := store.Create("user-1")

	store.Invalidate(token)
	if _, ok := store.Resolve(token); ok {
		t.Error("invalidated token still resolves")
	}

	// Invalidating twice is harmless.
	store.Invalidate(token)
}

func TestExpiry(t *testing.T) {
	store := NewStore(time.Millisecond)
	token := store.Create("user-1")

	time.Sleep(5 * time.Millisecond)
	if _, ok := store.Resolve(token); ok {
		t.Error("expired token resolved")
	}
}

func TestSweep(t *testing.T) {
	store := NewStore(time.Millisecond)
	expired := store.Create("user-1")

	time.Sleep(5 * time.Millisecond)
	store.ttl = time.Hour
	live := store.Create("user-2")

	store.Sweep()

	if _, ok := store.sessions[expired]; ok {
		t.Error("sweep kept an expired session")
	}
	if _, ok := store.Resolve(live); !ok {
		t.Error("sweep dropped a live session")
	}
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	store := NewStore(0)
	if store.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", store.ttl, DefaultTTL)
	}
}
