// Package assets serves and publishes the public css/js files.
//
// # Sources
//
// A Source opens an asset by name. FSSource reads from an fs.FS (the
// embedded web/public tree or a directory on disk); BucketSource reads from
// an S3/MinIO bucket through core/storage.
//
// # Serving
//
// Feature mounts Handler on "<prefix>/*". Names are validated with
// fs.ValidPath, so "..", absolute and empty segments are rejected with 404.
//
// # Publishing
//
// Sync walks a file tree and uploads every file to a bucket, creating the
// bucket when needed and minifying css/js with tdewolff/minify on request.
// It backs `hotwire-demo assets sync`.
package assets
