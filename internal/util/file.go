package util

import (
	"net/http"
	"strings"
)

// DetectMimeType sniffs the content type from the first bytes of data.
func DetectMimeType(data []byte) string {
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}

// IsImage reports whether a sniffed MIME type is an image type.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
