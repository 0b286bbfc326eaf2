package kv

import (
	"testing"
	"time"
)

func TestStoreGetMissingKey(t *testing.T) {
	s := NewStore()
	if _, err := s.Get("missing"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreSetThenGet(t *testing.T) {
	s := NewStore()
	s.Set("k", "v", time.Now())
	got, err := s.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "v" {
		t.Fatalf("got = %q, want %q", got, "v")
	}
}

func TestStoreOverwrite(t *testing.T) {
	s := NewStore()
	s.Set("k", "v1", time.Now())
	s.Set("k", "v2", time.Now())
	got, err := s.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "v2" {
		t.Fatalf("got = %q, want %q", got, "v2")
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}
