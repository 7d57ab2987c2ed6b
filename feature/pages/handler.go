package pages

import (
	"hotwire-demo/core/view"

	"github.com/gofiber/fiber/v2"
)

const (
	cardTitle   = "Dynamically Loaded Card"
	cardContent = "Hi! This content was loaded from the server via a Turbo Frame!"
)

// Handler serves the static pages and fragments.
type Handler struct {
	about string
}

// NewHandler creates a handler rendering about as the about page body (markdown).
func NewHandler(about string) *Handler {
	return &Handler{about: about}
}

// RegisterRoutes registers the page routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/about", h.HandleAbout)
	app.Get("/load-card-component", h.HandleCardComponent)
}

// HandleAbout renders the about page inside the layout.
func (h *Handler) HandleAbout(c *fiber.Ctx) error {
	return c.Render("pages/about", fiber.Map{
		"Title": "About",
		"Body":  h.about,
	}, view.Layout)
}

// HandleCardComponent renders the card wrapped in its Turbo Frame, without the
// layout, for the lazily loaded frame on the home page.
func (h *Handler) HandleCardComponent(c *fiber.Ctx) error {
	return c.Render("partials/components/card_frame", fiber.Map{
		"Title":   cardTitle,
		"Content": cardContent,
	}, "")
}
