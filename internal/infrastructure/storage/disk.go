// Package storage implements the file store on the local filesystem.
package storage

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore writes uploaded blobs under a base directory and hands back the
// generated filename. The handle is what cat records store as their image
// reference.
type DiskStore struct {
	baseDir string
}

// NewDiskStore creates the base directory if needed.
func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

// Save writes the blob to disk under a random name, preserving the original
// extension, and returns the filename handle.
func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := randomName() + filepath.Ext(originalName)
	path := filepath.Join(s.baseDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}

// Remove deletes a stored blob by its filename handle. The handle is reduced
// to its base name so a crafted value cannot reach outside the base dir.
func (s *DiskStore) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.baseDir, filepath.Base(name)))
}

func randomName() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", os.Getpid())
	}
	return fmt.Sprintf("%x", b)
}
