package kv

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Get(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := store.Set(ctx, "cart", `[]`, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, err := store.Get(ctx, "cart")
	if err != nil || val != `[]` {
		t.Errorf("Get = (%q, %v), want (\"[]\", nil)", val, err)
	}

	if err := store.Remove(ctx, "cart"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "cart"); err != ErrNotFound {
		t.Errorf("Get after Remove error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Set(ctx, "session", "x", 10*time.Millisecond)
	if _, err := store.Get(ctx, "session"); err != nil {
		t.Fatalf("value expired too early: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if _, err := store.Get(ctx, "session"); err != ErrNotFound {
		t.Errorf("Get after ttl error = %v, want ErrNotFound", err)
	}
}
