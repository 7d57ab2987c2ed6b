// Package server holds the HTTP server configuration and constants.
//
// The start command owns the Fiber application itself; this package only
// describes how it is exposed: the listen port, the URL prefix for public
// assets and where those assets are read from.
//
// # Assets Sources
//
//   - embed: the files compiled into the binary (package web).
//   - dir: a directory on disk, useful while editing css/js.
//   - bucket: an S3/MinIO bucket populated by `hotwire-demo assets sync`.
package server
