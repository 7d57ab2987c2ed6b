package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"hotwire-demo/core/assets"
	"hotwire-demo/core/config"
	"hotwire-demo/core/database"
	"hotwire-demo/core/loader"
	"hotwire-demo/core/middleware/rayid"
	"hotwire-demo/core/middleware/requestlog"
	"hotwire-demo/core/server"
	"hotwire-demo/core/storage"
	"hotwire-demo/core/view"
	"hotwire-demo/feature/items"
	"hotwire-demo/feature/pages"
	"hotwire-demo/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// newApp builds the Fiber application with middleware and every feature loaded.
func newApp(cfg *config.Config, logg *zap.Logger, store items.Store, src assets.Source) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
		Views:                 view.New(web.Templates(), view.Config{StaticPrefix: cfg.Server.StaticPrefix}),
		ErrorHandler:          errorHandler,
	})

	// RayID must be first so every log line can be traced.
	app.Use(rayid.New())
	app.Use(requestlog.New(logg))

	mgr := loader.NewManager()
	mgr.Register(assets.NewFeature(cfg.Server.StaticPrefix, src))
	mgr.Register(items.NewFeature(store, logg))
	mgr.Register(pages.NewFeature(web.AboutMarkdown))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Debug("Features loaded", zap.Strings("features", loaded))

	return app, nil
}

// errorHandler answers with a plain-text status. *fiber.Error keeps its
// message; anything else is reported as a bare 500.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := utils.StatusMessage(code)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(msg)
}

// openStore returns the item store for the configured driver. A database that
// cannot be reached falls back to memory so the demo still starts.
func openStore(ctx context.Context, cfg database.Config, logg *zap.Logger) items.Store {
	if !cfg.Enabled() {
		return items.NewMemoryStore(items.DefaultItems()...)
	}

	store, err := openGormStore(ctx, cfg)
	if err != nil {
		logg.Warn("Optional database connection failed, keeping items in memory", zap.Error(err))
		return items.NewMemoryStore(items.DefaultItems()...)
	}

	logg.Info("Connected to item database", zap.String("driver", cfg.Driver))
	return store
}

func openGormStore(ctx context.Context, cfg database.Config) (*items.GormStore, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	store := items.NewGormStore(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	if _, err := store.Seed(ctx, items.DefaultItems()...); err != nil {
		return nil, err
	}
	return store, nil
}

// openAssets returns the source public assets are served from.
func openAssets(cfg *config.Config) (assets.Source, error) {
	switch cfg.Server.AssetsSource {
	case server.AssetsSourceEmbed:
		return assets.NewFSSource(web.Public()), nil
	case server.AssetsSourceDir:
		return assets.NewFSSource(os.DirFS(cfg.Server.AssetsDir)), nil
	case server.AssetsSourceBucket:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		return assets.NewBucketSource(client, cfg.Storage.Bucket, cfg.Storage.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown assets source %q", cfg.Server.AssetsSource)
	}
}
