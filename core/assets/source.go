package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"hotwire-demo/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNotFound is returned by a Source when the asset does not exist.
var ErrNotFound = errors.New("asset not found")

// Source opens public assets by slash-separated relative name.
type Source interface {
	// Open returns the asset content and its size in bytes.
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
}

// FSSource serves assets from a file system, such as the embedded web files
// or os.DirFS.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a source reading from fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Open opens name from the file system. Directories count as missing.
func (s *FSSource) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	f, err := s.fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open asset %s: %w", name, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat asset %s: %w", name, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, ErrNotFound
	}
	return f, info.Size(), nil
}

// BucketSource serves assets from an object storage bucket under a key prefix.
type BucketSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketSource creates a source reading bucket/prefix/<name>.
func NewBucketSource(client storage.Client, bucket, prefix string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket, prefix: prefix}
}

// Open stats and streams the object for name.
func (s *BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	key := path.Join(s.prefix, name)

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if storage.IsNotFound(err) {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to stat object %s: %w", key, err)
	}

	rc, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	return rc, info.Size, nil
}
