package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"image_study_backend/internal/util"
)

// ImageService loads image bytes for display. A file that cannot be read or
// does not sniff as an image is replaced by a fixed 32x32 neutral
// placeholder so the question flow continues uninterrupted.
type ImageService struct {
	placeholderOnce sync.Once
	placeholder     []byte
}

func NewImageService() *ImageService {
	return &ImageService{}
}

// Load returns the image bytes and content type for path. It never fails;
// unreadable or non-image content yields the placeholder PNG.
func (s *ImageService) Load(path string) ([]byte, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return s.Placeholder(), "image/png"
	}
	if !util.IsImage(util.DetectMimeType(data)) {
		// bmp/tiff sniff as octet-stream in some encoders; trust the
		// catalog extension for those.
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".bmp" && ext != ".tiff" {
			return s.Placeholder(), "image/png"
		}
	}

	contentType, ok := util.ImageMimeTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		contentType = util.DetectMimeType(data)
	}
	return data, contentType
}

// Placeholder lazily renders the gray 32x32 PNG substituted for broken
// images.
func (s *ImageService) Placeholder() []byte {
	s.placeholderOnce.Do(func() {
		img := image.NewRGBA(image.Rect(0, 0, 32, 32))
		gray := color.RGBA{R: 200, G: 200, B: 200, A: 255}
		for y := 0; y < 32; y++ {
			for x := 0; x < 32; x++ {
				img.Set(x, y, gray)
			}
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err == nil {
			s.placeholder = buf.Bytes()
		}
	})
	return s.placeholder
}
