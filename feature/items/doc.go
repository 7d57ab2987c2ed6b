// Package items implements the item list: the home page and the add-item form.
//
// Items live in a Store. MemoryStore (the default) keeps them in process
// memory, seeded with two items; GormStore persists them through GORM when a
// database driver is configured.
//
// # HTTP Endpoints
//
//   - GET  /          : Render the home page listing every item.
//   - POST /add-item  : Append an item from the itemName field. Empty names get
//     a 400 plain-text error. Requests whose Accept header includes
//     text/vnd.turbo-stream.html get a Turbo Stream fragment appending the new
//     item; all others are redirected to /.
//
// Item IDs are assigned as len+1. There is no delete, so they never collide.
package items
