package cmd

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"hotwire-demo/core/assets"
	"hotwire-demo/core/config"
	"hotwire-demo/core/database"
	"hotwire-demo/core/middleware/rayid"
	"hotwire-demo/core/server"
	"hotwire-demo/feature/items"
	"hotwire-demo/web"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: server.Config{
			Port:         "3000",
			StaticPrefix: "/static",
			AssetsSource: server.AssetsSourceEmbed,
		},
	}
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := items.NewMemoryStore(items.DefaultItems()...)
	app, err := newApp(testConfig(), zap.NewNop(), store, assets.NewFSSource(web.Public()))
	require.NoError(t, err)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestApp_AddItemFlow(t *testing.T) {
	app := setupTestApp(t)

	resp, body := do(t, app, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 2, strings.Count(body, `class="item"`))
	assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))

	form := url.Values{"itemName": {"Third Item"}}
	req := httptest.NewRequest("POST", "/add-item", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, _ = do(t, app, req)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp, body = do(t, app, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 3, strings.Count(body, `class="item"`))
	assert.Contains(t, body, "First Item")
	assert.Contains(t, body, "Second Item")
	assert.Contains(t, body, "Third Item")
}

func TestApp_Routes(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name   string
		path   string
		status int
		ctype  string
	}{
		{"About", "/about", 200, fiber.MIMETextHTMLCharsetUTF8},
		{"Card", "/load-card-component", 200, fiber.MIMETextHTMLCharsetUTF8},
		{"Stylesheet", "/static/css/style.css", 200, "text/css"},
		{"MissingAsset", "/static/css/none.css", 404, fiber.MIMETextPlainCharsetUTF8},
		{"UnknownRoute", "/nowhere", 404, fiber.MIMETextPlainCharsetUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := do(t, app, httptest.NewRequest("GET", tt.path, nil))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.ctype, resp.Header.Get("Content-Type"))
		})
	}
}

func TestApp_MissingItemName(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("POST", "/add-item", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, body := do(t, app, req)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Item name is required", body)

	_, body = do(t, app, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 2, strings.Count(body, `class="item"`))
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	resp, body := do(t, app, httptest.NewRequest("GET", "/teapot", nil))
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "short and stout", body)

	resp, body = do(t, app, httptest.NewRequest("GET", "/boom", nil))
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", body)
	assert.NotContains(t, body, assert.AnError.Error())
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store := openStore(ctx, database.Config{Driver: database.DriverMemory}, zap.NewNop())
		assert.IsType(t, &items.MemoryStore{}, store)
	})

	t.Run("SQLite", func(t *testing.T) {
		store := openStore(ctx, database.Config{Driver: database.DriverSQLite, Name: ":memory:"}, zap.NewNop())
		require.IsType(t, &items.GormStore{}, store)

		list, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, items.DefaultItems(), list)
	})

	t.Run("FallbackToMemory", func(t *testing.T) {
		store := openStore(ctx, database.Config{Driver: "oracle"}, zap.NewNop())
		assert.IsType(t, &items.MemoryStore{}, store)
	})
}

func TestOpenAssets(t *testing.T) {
	cfg := testConfig()

	src, err := openAssets(cfg)
	require.NoError(t, err)
	assert.IsType(t, &assets.FSSource{}, src)

	cfg.Server.AssetsSource = server.AssetsSourceDir
	cfg.Server.AssetsDir = t.TempDir()
	src, err = openAssets(cfg)
	require.NoError(t, err)
	assert.IsType(t, &assets.FSSource{}, src)

	cfg.Server.AssetsSource = server.AssetsSourceBucket
	cfg.Storage.Endpoint = "localhost:9000"
	cfg.Storage.Bucket = "assets"
	src, err = openAssets(cfg)
	require.NoError(t, err)
	assert.IsType(t, &assets.BucketSource{}, src)

	cfg.Server.AssetsSource = "cdn"
	_, err = openAssets(cfg)
	assert.EqualError(t, err, `unknown assets source "cdn"`)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["start"])
	assert.True(t, names["migrate"])
	assert.True(t, names["assets"])
}
