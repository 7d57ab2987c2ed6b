package assets

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path"

	"hotwire-demo/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// SyncOptions controls how assets are uploaded.
type SyncOptions struct {
	// Bucket receives the assets. It is created when missing.
	Bucket string
	// Prefix is prepended to every object key.
	Prefix string
	// Minify shrinks css and js before upload.
	Minify bool
}

// Sync uploads every file of fsys to the bucket and returns the uploaded keys.
func Sync(ctx context.Context, client storage.Client, fsys fs.FS, opts SyncOptions, logger *zap.Logger) ([]string, error) {
	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", opts.Bucket, err)
	}
	if !exists {
		logger.Info("Creating bucket", zap.String("bucket", opts.Bucket))
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", opts.Bucket, err)
		}
	}

	var uploaded []string
	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
		if opts.Minify {
			if data, err = Minify(p, data); err != nil {
				return fmt.Errorf("failed to minify %s: %w", p, err)
			}
		}

		key := path.Join(opts.Prefix, p)
		_, err = client.PutObject(ctx, opts.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType:  contentType(p),
			CacheControl: "public, max-age=3600",
		})
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", key, err)
		}

		logger.Debug("Uploaded asset", zap.String("key", key), zap.Int("size", len(data)))
		uploaded = append(uploaded, key)
		return nil
	})
	if err != nil {
		return uploaded, err
	}
	return uploaded, nil
}
