package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "images")
	require.NoError(t, os.MkdirAll(root, 0755))

	yaml := `
server:
  port: "9090"
  mode: release
study:
  root_dir: ` + root + `
  allowed_images:
    - left.png
    - right.png
rate_limit:
  max_requests: 50
  window_minutes: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, root, cfg.Study.RootDir)
	assert.Equal(t, []string{"left.png", "right.png"}, cfg.Study.AllowedImages)
	assert.Equal(t, 50, cfg.RateLimit.MaxRequests)

	// Loading bootstraps the results directory under the study root.
	info, err := os.Stat(filepath.Join(root, "results"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
