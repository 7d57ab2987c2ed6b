// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface covering the
// operations the demo needs to publish and serve its public assets from an
// S3-compatible bucket. The interface keeps the assets package testable with
// the testify mock in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: ensure the asset bucket exists before syncing.
//   - PutObject: upload an asset (with content type).
//   - StatObject / GetObject: look up and stream an asset to the client.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
