// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its
// enablement check and route registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of available features:
//   - Register() adds a feature
//   - LoadAll() loads every enabled feature in registration order
//
// The demo registers two features: 'items' (the list and the add-item form)
// and 'pages' (about page and the lazily loaded card frame).
package loader
