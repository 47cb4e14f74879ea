package storage

import (
	"context"
	"io"
)

// ObjectStorage is a key-addressed blob store. Keys look like
// "bucket/object"; the first path segment selects the bucket and the
// remainder is the object name within it.
type ObjectStorage interface {
	Save(ctx context.Context, key string, reader io.Reader, size int64) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}
