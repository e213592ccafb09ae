package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "png", cfg.Render.Format)
	assert.Equal(t, 8.0, cfg.Render.WidthIn)
	assert.Equal(t, 6.0, cfg.Render.HeightIn)
	assert.Equal(t, 24*time.Hour, cfg.AWS.DownloadURLTTL)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestLoadFrom_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RENDER_FORMAT", "SVG")
	t.Setenv("RENDER_WIDTH", "10")
	t.Setenv("DOWNLOAD_URL_TTL", "15m")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "svg", cfg.Render.Format)
	assert.Equal(t, 10.0, cfg.Render.WidthIn)
	assert.Equal(t, 15*time.Minute, cfg.AWS.DownloadURLTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}
