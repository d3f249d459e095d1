package ports

import (
	"context"
	"io"
)

// FileStore accepts an uploaded binary and returns the filename handle the
// cat record stores as its image reference. Remove discards a stored blob
// whose record never materialised.
type FileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Remove(ctx context.Context, name string) error
}
