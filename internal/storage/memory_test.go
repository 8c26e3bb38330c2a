package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryKV(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() on missing key = %v, want ErrNotFound", err)
	}

	if err := kv.Set(ctx, "links", "| a | b |"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	val, err := kv.Get(ctx, "links")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if val != "| a | b |" {
		t.Errorf("Get() = %q, want %q", val, "| a | b |")
	}

	if err := kv.Delete(ctx, "links"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := kv.Get(ctx, "links"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() = %v, want ErrNotFound", err)
	}
	if kv.Len() != 0 {
		t.Errorf("Len() = %d, want 0", kv.Len())
	}
}

func TestMemoryKVOverwrite(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	if err := kv.Set(ctx, "k", "first"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := kv.Set(ctx, "k", "second"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	val, _ := kv.Get(ctx, "k")
	if val != "second" {
		t.Errorf("Get() = %q, want last write to win", val)
	}
}
