package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/rowanvale/templateboard/internal/storage"
)

var ctx = context.Background()

func TestRoundTrip(t *testing.T) {
	s := New()

	if _, err := s.Get(ctx, "k"); !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}

	if err := s.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatal(err)
	}

	value, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if string(value) != "v1" {
		t.Errorf("expected \"v1\", got %q", value)
	}

	if err := s.Remove(ctx, "k"); err != nil {
		t.Error("unexpected error:", err)
	}
	if err := s.Remove(ctx, "k"); !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestValuesAreCopied(t *testing.T) {
	s := New()

	original := []byte("v1")
	if err := s.Set(ctx, "k", original); err != nil {
		t.Fatal(err)
	}
	original[0] = 'x'

	value, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(value) != "v1" {
		t.Errorf("stored value was aliased: %q", value)
	}
}
