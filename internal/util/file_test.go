package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMimeType(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	assert.Equal(t, "image/png", DetectMimeType(pngHeader))
	assert.True(t, IsImage(DetectMimeType(pngHeader)))

	assert.False(t, IsImage(DetectMimeType([]byte("plain text"))))
}
