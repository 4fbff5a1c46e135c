package imaging

import (
	"encoding/base64"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 PNG, the smallest input libvips will accept.
const tinyPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func testImage(t *testing.T) []byte {
	t.Helper()

	skipWithoutLibvips(t)

	data, err := base64.StdEncoding.DecodeString(tinyPNGBase64)
	require.NoError(t, err)

	return data
}

func skipWithoutLibvips(t *testing.T) {
	t.Helper()

	for _, path := range []string{
		"/usr/lib/libvips.so",
		"/usr/lib/x86_64-linux-gnu/libvips.so.42",
		"/usr/lib/aarch64-linux-gnu/libvips.so.42",
		"/usr/local/lib/libvips.dylib",
	} {
		if _, err := os.Stat(path); err == nil {
			return
		}
	}

	t.Skip("libvips not available, skipping image processing tests")
}

func TestThumbnail(t *testing.T) {
	image := testImage(t)

	result, err := NewResizer(80).Thumbnail(image, 100)
	require.NoError(t, err)
	assert.NotEmpty(t, result)

	// JPEG output starts with the SOI marker.
	require.GreaterOrEqual(t, len(result), 2)
	assert.Equal(t, []byte{0xFF, 0xD8}, result[:2])
}

func TestThumbnailInvalidData(t *testing.T) {
	skipWithoutLibvips(t)

	_, err := NewResizer(80).Thumbnail([]byte("not an image"), 100)
	assert.Error(t, err)
}
