// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Assigns a Request ID (RayID) to every incoming request,
//     storing it in the context locals and the X-Ray-ID response header.
//   - RequestLog: Writes one structured zap line per request, tagged with the RayID.
//
// Both are registered globally by the start command, rayid first.
package middleware
