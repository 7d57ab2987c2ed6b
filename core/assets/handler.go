package assets

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Handler serves assets from src. It must be mounted on a wildcard route
// (e.g. "/static/*"); the wildcard value is the asset name.
func Handler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("*")
		if name == "" || !fs.ValidPath(name) {
			return fiber.ErrNotFound
		}

		rc, size, err := src.Open(c.UserContext(), name)
		if errors.Is(err, ErrNotFound) {
			return fiber.ErrNotFound
		}
		if err != nil {
			return err
		}

		c.Set(fiber.HeaderContentType, contentType(name))
		c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
		return c.SendStream(rc, int(size))
	}
}

func contentType(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" {
		return fiber.MIMEOctetStream
	}
	return utils.GetMIME(ext)
}
