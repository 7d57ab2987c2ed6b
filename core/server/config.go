package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// StaticPrefix is the URL prefix under which public assets are served.
	StaticPrefix string `mapstructure:"static_prefix" default:"/static"`
	// AssetsSource selects where public assets are read from (embed, dir, bucket).
	AssetsSource string `mapstructure:"assets_source" default:"embed"`
	// AssetsDir is the directory used when AssetsSource is "dir".
	AssetsDir string `mapstructure:"assets_dir" default:"public"`
}

const (
	AssetsSourceEmbed  = "embed"
	AssetsSourceDir    = "dir"
	AssetsSourceBucket = "bucket"
)

// IsValidAssetsSource checks if the configured assets source is known.
func (c Config) IsValidAssetsSource() bool {
	switch c.AssetsSource {
	case AssetsSourceEmbed, AssetsSourceDir, AssetsSourceBucket:
		return true
	default:
		return false
	}
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}
