package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	name, err := store.Save(context.Background(), "whiskers.jpg", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(name, ".jpg") {
		t.Fatalf("extension not preserved: %q", name)
	}
	if name == "whiskers.jpg" {
		t.Fatalf("original name must not be reused")
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("content mismatch: %q", data)
	}
}

func TestDiskStore_UniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		name, err := store.Save(context.Background(), "cat.png", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if seen[name] {
			t.Fatalf("duplicate name generated: %q", name)
		}
		seen[name] = true
	}
}

func TestDiskStore_CancelledContext(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Save(ctx, "cat.png", strings.NewReader("x")); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

func TestDiskStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	name, err := store.Save(context.Background(), "whiskers.jpg", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := store.Remove(context.Background(), name); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Fatalf("blob still present after remove: %v", err)
	}
}

func TestDiskStore_Remove_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	outside := filepath.Join(filepath.Dir(dir), "victim.txt")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatalf("write outside file: %v", err)
	}

	_ = store.Remove(context.Background(), "../victim.txt")
	if _, err := os.Stat(outside); err != nil {
		t.Fatalf("file outside the base dir was removed: %v", err)
	}
}

func TestNewDiskStore_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewDiskStore(dir); err != nil {
		t.Fatalf("new store: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("base dir not created: %v", err)
	}
}
