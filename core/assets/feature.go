package assets

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface and mounts the asset
// handler under a URL prefix.
type Feature struct {
	prefix string
	source Source
}

// NewFeature creates the assets feature serving src under prefix.
func NewFeature(prefix string, src Source) *Feature {
	p := strings.Trim(prefix, "/")
	if p != "" {
		p = "/" + p
	}
	return &Feature{prefix: p, source: src}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "assets"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.source != nil
}

// Load registers the asset route.
func (f *Feature) Load(app fiber.Router) error {
	app.Get(f.prefix+"/*", Handler(f.source))
	return nil
}
