package assets

import (
	"path"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minjs "github.com/tdewolff/minify/v2/js"
)

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("application/javascript", minjs.Minify)
	return m
}

// Minify returns the minified content of a css or js asset. Other files
// and already minified (*.min.*) files are returned unchanged.
func Minify(name string, data []byte) ([]byte, error) {
	ext := path.Ext(name)
	if path.Ext(name[:len(name)-len(ext)]) == ".min" {
		return data, nil
	}

	switch ext {
	case ".css":
		return minifier.Bytes("text/css", data)
	case ".js":
		return minifier.Bytes("application/javascript", data)
	default:
		return data, nil
	}
}
