package items

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hotwire-demo/core/logger"
	"hotwire-demo/core/view"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TurboStreamMIME marks requests and responses carrying Turbo Stream fragments.
const TurboStreamMIME = "text/vnd.turbo-stream.html"

const nameRequiredMessage = "Item name is required"

// Handler handles HTTP requests for items.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the item routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
	app.Post("/add-item", h.HandleAddItem)
}

// HandleIndex renders the home page with every item and the add form.
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context())
	if err != nil {
		return err
	}

	return c.Render("pages/index", fiber.Map{
		"Title": "Home",
		"Items": list,
	}, view.Layout)
}

type addItemRequest struct {
	ItemName any `json:"itemName"`
}

// HandleAddItem appends an item from the submitted form.
// Turbo requests get a stream fragment appending the item; plain form posts
// are redirected back to the list.
func (h *Handler) HandleAddItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	item, err := h.service.Add(c.Context(), itemName(c))
	if errors.Is(err, ErrNameRequired) {
		l.Warn("Rejected item without name")
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(fiber.StatusBadRequest).SendString(nameRequiredMessage)
	}
	if err != nil {
		l.Error("Failed to add item", zap.Error(err))
		return err
	}

	if !acceptsTurboStream(c) {
		return c.Redirect("/")
	}

	if err := c.Render("streams/append-item", fiber.Map{"Item": item}, ""); err != nil {
		return err
	}
	// Render always sets text/html, so the stream type goes on afterwards.
	c.Set(fiber.HeaderContentType, TurboStreamMIME+"; charset=utf-8")
	return nil
}

func acceptsTurboStream(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), TurboStreamMIME)
}

// itemName reads the submitted name from a form or JSON body.
func itemName(c *fiber.Ctx) string {
	if !c.Is("json") {
		if form, err := c.MultipartForm(); err == nil {
			if v := form.Value["itemName"]; len(v) > 0 {
				return v[0]
			}
			return ""
		}
		return string(c.Request().PostArgs().Peek("itemName"))
	}

	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		// An unreadable body carries no item name.
		return ""
	}
	return nameFromJSON(req.ItemName)
}

// nameFromJSON formats a decoded JSON value as a name. Falsy values
// (null, false, 0, "") yield "" and so count as missing.
func nameFromJSON(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
