package repository

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "resume.json")
	store := NewFileStore(path)

	if _, found, err := store.Load(ctx); err != nil || found {
		t.Fatalf("fresh slot: found=%v err=%v", found, err)
	}

	want := []byte(`{"template":"classic"}`)
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := store.Load(ctx)
	if err != nil || !found {
		t.Fatalf("load after save: found=%v err=%v", found, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("loaded %q, want %q", got, want)
	}
}

func TestFileStoreOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "resume.json")
	store := NewFileStore(path)

	if err := store.Save(ctx, []byte("first")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, []byte("second")); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, _, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("loaded %q, want second", got)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}
