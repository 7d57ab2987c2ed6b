package web

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

//go:embed public
var publicFS embed.FS

// AboutMarkdown is the source of the about page body.
//
//go:embed content/about.md
var AboutMarkdown string

// Templates returns the view templates rooted at the templates directory.
func Templates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Public returns the static assets rooted at the public directory.
func Public() fs.FS {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
