package view

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Layout is the template pages render inside.
const Layout = "partials/layout"

// Config controls how templates are loaded.
type Config struct {
	// StaticPrefix is prepended by the asset template func.
	StaticPrefix string
	// Extension of template files. Defaults to ".html".
	Extension string
}

// Engine renders html/template views from a file system.
// Templates are named by their path without extension, e.g. "pages/index".
//
// Files under partials/ form a shared base set. Every other file is parsed
// into its own clone of that set and also registered as "content", which the
// layout renders with {{template "content" .}}.
type Engine struct {
	fsys   fs.FS
	config Config
	funcs  template.FuncMap

	mu     sync.RWMutex
	loaded bool
	base   *template.Template
	views  map[string]*template.Template
}

var _ fiber.Views = (*Engine)(nil)

// New creates an engine reading templates from fsys. Call Load (or hand the
// engine to fiber.Config.Views, which calls it) before rendering.
func New(fsys fs.FS, cfg Config) *Engine {
	if cfg.Extension == "" {
		cfg.Extension = ".html"
	}
	e := &Engine{fsys: fsys, config: cfg}
	e.funcs = template.FuncMap{
		"asset":    e.asset,
		"markdown": Markdown,
	}
	return e
}

// Load parses every template. It is safe to call more than once.
func (e *Engine) Load() error {
	base := template.New("").Funcs(e.funcs)
	var viewFiles []string

	err := fs.WalkDir(e.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != e.config.Extension {
			return nil
		}
		if strings.HasPrefix(p, "partials/") {
			return parseFile(base, e.fsys, p, e.nameOf(p))
		}
		viewFiles = append(viewFiles, p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	views := make(map[string]*template.Template, len(viewFiles))
	for _, p := range viewFiles {
		name := e.nameOf(p)
		clone, err := base.Clone()
		if err != nil {
			return fmt.Errorf("clone base for %s: %w", name, err)
		}
		if err := parseFile(clone, e.fsys, p, name); err != nil {
			return err
		}
		// A separate parse keeps the escaper from rewriting one tree under two names.
		if err := parseFile(clone, e.fsys, p, "content"); err != nil {
			return err
		}
		views[name] = clone
	}

	e.mu.Lock()
	e.base = base
	e.views = views
	e.loaded = true
	e.mu.Unlock()
	return nil
}

// Render executes the named template into w. When a non-empty layout is given
// the layout is executed instead and includes the view as "content".
func (e *Engine) Render(w io.Writer, name string, binding interface{}, layout ...string) error {
	e.mu.RLock()
	loaded := e.loaded
	e.mu.RUnlock()
	if !loaded {
		if err := e.Load(); err != nil {
			return err
		}
	}

	e.mu.RLock()
	tmpl, ok := e.views[name]
	if !ok && e.base.Lookup(name) != nil {
		tmpl, ok = e.base, true
	}
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("template %s does not exist", name)
	}

	if len(layout) > 0 && layout[0] != "" {
		if tmpl.Lookup(layout[0]) == nil {
			return fmt.Errorf("layout %s does not exist", layout[0])
		}
		return tmpl.ExecuteTemplate(w, layout[0], binding)
	}
	return tmpl.ExecuteTemplate(w, name, binding)
}

func (e *Engine) nameOf(p string) string {
	return strings.TrimSuffix(p, e.config.Extension)
}

func (e *Engine) asset(p string) string {
	return strings.TrimSuffix(e.config.StaticPrefix, "/") + "/" + strings.TrimPrefix(p, "/")
}

func parseFile(t *template.Template, fsys fs.FS, p, name string) error {
	src, err := fs.ReadFile(fsys, p)
	if err != nil {
		return fmt.Errorf("read template %s: %w", p, err)
	}
	if _, err := t.New(name).Parse(string(src)); err != nil {
		return fmt.Errorf("parse template %s: %w", p, err)
	}
	return nil
}
