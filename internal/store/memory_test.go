package store

import (
	"context"
	"testing"
)

func TestMemoryStore_LoadEmpty(t *testing.T) {
	if _, ok := NewMemoryStore().Load(context.Background()); ok {
		t.Fatal("expected nothing stored")
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	want := sampleSuggestions()
	s.Save(context.Background(), want)

	got, ok := s.Load(context.Background())
	if !ok {
		t.Fatal("expected stored snapshot")
	}
	assertSameSuggestions(t, got, want)
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := Open(ctx, BackendFile, t.TempDir(), "")
	if err != nil {
		t.Fatalf("file backend: %v", err)
	}
	closeFn()
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("expected *FileStore, got %T", s)
	}

	s, closeFn, err = Open(ctx, BackendMemory, "", "")
	if err != nil {
		t.Fatalf("memory backend: %v", err)
	}
	closeFn()
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("expected *MemoryStore, got %T", s)
	}

	if _, _, err := Open(ctx, "redis", "", ""); err == nil {
		t.Error("expected error for unknown backend")
	}
}
