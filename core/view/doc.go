// Package view implements fiber.Views over html/template.
//
// Templates are loaded from an fs.FS (normally the embedded web templates)
// and addressed by path without extension. Pages render inside the
// "partials/layout" template; fragments such as Turbo Streams and Turbo
// Frames render on their own by passing an empty layout to c.Render.
//
// Template funcs:
//
//   - asset: prefixes a public file path with the configured static prefix.
//   - markdown: renders markdown through goldmark and sanitizes it with bluemonday.
package view
