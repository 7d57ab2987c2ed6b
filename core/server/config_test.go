package server_test

import (
	"testing"

	"hotwire-demo/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidAssetsSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"Embed", server.AssetsSourceEmbed, true},
		{"Dir", server.AssetsSourceDir, true},
		{"Bucket", server.AssetsSourceBucket, true},
		{"Invalid", "cdn", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{AssetsSource: tt.source}
			assert.Equal(t, tt.want, c.IsValidAssetsSource())
		})
	}
}

func TestConfig_Addr(t *testing.T) {
	c := server.Config{Port: "3000"}
	assert.Equal(t, ":3000", c.Addr())
}
