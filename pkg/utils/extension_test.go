package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExtensionFromMimeType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mimeType string
		want     string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/webp", ".webp"},
		{"image/jpeg; charset=utf-8", ".jpg"},
		{"IMAGE/PNG", ".png"},
		{"application/pdf", ".bin"},
		{"", ".bin"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetExtensionFromMimeType(tt.mimeType), tt.mimeType)
	}
}

func TestFileExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		{"photo.jpg", "jpg"},
		{"photo.JPEG", "jpeg"},
		{"archive.tar.png", "png"},
		{"noext", ""},
		{"trailing.", ""},
		{".hidden", "hidden"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FileExtension(tt.filename), tt.filename)
	}
}
