package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return buf.Bytes()
}

func TestLoadReturnsImageBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "left.png")
	want := writePNG(t, path)

	svc := NewImageService()
	data, contentType := svc.Load(path)
	assert.Equal(t, want, data)
	assert.Equal(t, "image/png", contentType)
}

func TestLoadMissingFileYieldsPlaceholder(t *testing.T) {
	svc := NewImageService()
	data, contentType := svc.Load(filepath.Join(t.TempDir(), "missing.png"))

	assert.Equal(t, "image/png", contentType)
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
}

func TestLoadNonImageContentYieldsPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("this is not an image at all"), 0644))

	svc := NewImageService()
	data, _ := svc.Load(path)
	assert.Equal(t, svc.Placeholder(), data)
}
