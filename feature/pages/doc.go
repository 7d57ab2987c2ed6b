// Package pages serves the content that never changes.
//
// # HTTP Endpoints
//
//   - GET /about               : About page, written in markdown and rendered in the layout.
//   - GET /load-card-component : Card fragment wrapped in <turbo-frame id="lazy-card">,
//     fetched lazily by the frame on the home page.
package pages
